package usecase

import (
	"context"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
)

// ReviewRepository defines the contract for review storage.
type ReviewRepository interface {
	Save(ctx context.Context, r *entity.Review) error
	ListByBook(ctx context.Context, bookID int64) ([]entity.Review, error)
}
