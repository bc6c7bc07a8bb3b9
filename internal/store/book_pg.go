package store

// Repository implementations (Postgres)

import (
	"context"
	"errors"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

const bookColumns = `id, isbn, title, author, description, publication_date, price, stock_quantity, genre, publisher, average_rating, total_ratings, created_at, updated_at`

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(
		&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Description, &b.PublicationDate,
		&b.Price, &b.StockQuantity, &b.Genre, &b.Publisher,
		&b.AverageRating, &b.TotalRatings, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) Search(ctx context.Context, p usecase.SearchPredicate) ([]entity.Book, error) {
	query := `
	SELECT ` + bookColumns + `
	FROM books
	WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR author ILIKE '%' || $1 || '%')
	AND ($2 = '' OR LOWER(genre) = LOWER($2))
	AND ($3::INT IS NULL OR stock_quantity > $3)
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, p.TitleOrAuthorSubstring, p.GenreEqualsIgnoreCase, p.StockGreaterThan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) Save(ctx context.Context, b *entity.Book) error {
	query := `
	UPDATE books
	SET title = $2, author = $3, description = $4, publication_date = $5,
		price = $6, stock_quantity = $7, genre = $8, publisher = $9,
		average_rating = $10, total_ratings = $11, updated_at = now()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		b.ID, b.Title, b.Author, b.Description, b.PublicationDate,
		b.Price, b.StockQuantity, b.Genre, b.Publisher,
		b.AverageRating, b.TotalRatings,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrNotFound
		}
		return err
	}
	return nil
}

// Create inserts a new catalog entry. Used by the seed tool; books are not
// created through the API. A duplicate ISBN surfaces as usecase.ErrConflict.
func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	query := `
	INSERT INTO books (isbn, title, author, description, publication_date, price, stock_quantity, genre, publisher)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		b.ISBN, b.Title, b.Author, b.Description, b.PublicationDate,
		b.Price, b.StockQuantity, b.Genre, b.Publisher,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}
