package usecase

import (
	"context"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
)

// RatingRepository defines the contract for rating storage.
type RatingRepository interface {
	// Find returns the rating for (bookID, userID) or ErrNotFound.
	Find(ctx context.Context, bookID int64, userID string) (entity.Rating, error)
	ListByBook(ctx context.Context, bookID int64) ([]entity.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Rating, error)
	// Save upserts on (book_id, user_id): an existing row keeps its
	// created_at, only score and comment change. ID and CreatedAt are
	// filled in on return.
	Save(ctx context.Context, r *entity.Rating) error
	// SumAndCount aggregates over the book's current ratings. Integers, not
	// a precomputed average: the mean is derived by the caller so rounding
	// stays exact. A book with no ratings yields (0, 0).
	SumAndCount(ctx context.Context, bookID int64) (int64, int, error)
}
