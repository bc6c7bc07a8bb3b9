package store

import (
	"context"
	"errors"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RatingPG struct {
	db *pgxpool.Pool
}

func NewRatingPG(db *pgxpool.Pool) *RatingPG {
	return &RatingPG{db: db}
}

func (r *RatingPG) Find(ctx context.Context, bookID int64, userID string) (entity.Rating, error) {
	query := `
	SELECT id, book_id, user_id, score, comment, created_at
	FROM ratings
	WHERE book_id = $1 AND user_id = $2
	LIMIT 1
	`
	var rt entity.Rating
	err := r.db.QueryRow(ctx, query, bookID, userID).
		Scan(&rt.ID, &rt.BookID, &rt.UserID, &rt.Score, &rt.Comment, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Rating{}, usecase.ErrNotFound
		}
		return entity.Rating{}, err
	}
	return rt, nil
}

// Save upserts on the (book_id, user_id) unique constraint. The conflict arm
// leaves created_at alone, so an updated rating keeps its original timestamp;
// the atomic upsert also closes the race between two first-time submissions
// for the same pair.
func (r *RatingPG) Save(ctx context.Context, rt *entity.Rating) error {
	query := `
	INSERT INTO ratings (book_id, user_id, score, comment, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (book_id, user_id)
	DO UPDATE SET score = EXCLUDED.score, comment = EXCLUDED.comment
	RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, rt.BookID, rt.UserID, rt.Score, rt.Comment, rt.CreatedAt).
		Scan(&rt.ID, &rt.CreatedAt)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *RatingPG) ListByBook(ctx context.Context, bookID int64) ([]entity.Rating, error) {
	query := `
	SELECT id, book_id, user_id, score, comment, created_at
	FROM ratings
	WHERE book_id = $1
	ORDER BY id
	`
	return r.list(ctx, query, bookID)
}

func (r *RatingPG) ListByUser(ctx context.Context, userID string) ([]entity.Rating, error) {
	query := `
	SELECT id, book_id, user_id, score, comment, created_at
	FROM ratings
	WHERE user_id = $1
	ORDER BY id
	`
	return r.list(ctx, query, userID)
}

func (r *RatingPG) list(ctx context.Context, query string, arg any) ([]entity.Rating, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []entity.Rating
	for rows.Next() {
		var rt entity.Rating
		if err := rows.Scan(&rt.ID, &rt.BookID, &rt.UserID, &rt.Score, &rt.Comment, &rt.CreatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingPG) SumAndCount(ctx context.Context, bookID int64) (int64, int, error) {
	query := `
	SELECT COALESCE(SUM(score), 0), COUNT(score)
	FROM ratings
	WHERE book_id = $1
	`
	var sum int64
	var count int
	if err := r.db.QueryRow(ctx, query, bookID).Scan(&sum, &count); err != nil {
		return 0, 0, err
	}
	return sum, count, nil
}
