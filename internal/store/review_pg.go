package store

import (
	"context"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewPG struct {
	db *pgxpool.Pool
}

func NewReviewPG(db *pgxpool.Pool) *ReviewPG {
	return &ReviewPG{db: db}
}

func (r *ReviewPG) Save(ctx context.Context, rv *entity.Review) error {
	query := `
	INSERT INTO reviews (book_id, review_text, created_at)
	VALUES ($1, $2, $3)
	RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, rv.BookID, rv.ReviewText, rv.CreatedAt).
		Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *ReviewPG) ListByBook(ctx context.Context, bookID int64) ([]entity.Review, error) {
	query := `
	SELECT id, book_id, review_text, created_at
	FROM reviews
	WHERE book_id = $1
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.BookID, &rv.ReviewText, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
