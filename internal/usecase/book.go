package usecase

import (
	"context"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
)

// SearchPredicate is the filter set the storage layer can evaluate for the
// catalog. Zero-valued fields are not applied.
type SearchPredicate struct {
	// TitleOrAuthorSubstring matches books whose title OR author contains the
	// substring, ignoring case.
	TitleOrAuthorSubstring string
	// GenreEqualsIgnoreCase matches on exact genre, ignoring case.
	GenreEqualsIgnoreCase string
	// StockGreaterThan retains books with stock strictly above the value.
	StockGreaterThan *int
}

// BookRepository defines the contract for book storage.
type BookRepository interface {
	// GetByID returns the book or ErrNotFound.
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	// Search returns books matching the predicate in storage iteration order.
	Search(ctx context.Context, p SearchPredicate) ([]entity.Book, error)
	// Save persists the book's mutable fields, including derived stats.
	Save(ctx context.Context, b *entity.Book) error
}
