package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"
)

// MaxTextLength bounds the review body.
const MaxTextLength = 500

// Service appends free-text reviews to books. Reviews carry no user identity
// and have no effect on a book's derived rating stats.
type Service struct {
	books   usecase.BookRepository
	reviews usecase.ReviewRepository
}

func NewService(books usecase.BookRepository, reviews usecase.ReviewRepository) *Service {
	return &Service{books: books, reviews: reviews}
}

func (s *Service) Create(ctx context.Context, bookID int64, text string) (entity.Review, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.Review{}, fmt.Errorf("%w: review text is required", usecase.ErrInvalidArgument)
	}
	if len(text) > MaxTextLength {
		return entity.Review{}, fmt.Errorf("%w: review text must be at most %d characters", usecase.ErrInvalidArgument, MaxTextLength)
	}
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return entity.Review{}, err
	}

	r := entity.Review{
		BookID:     bookID,
		ReviewText: text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reviews.Save(ctx, &r); err != nil {
		return entity.Review{}, err
	}
	return r, nil
}

func (s *Service) ListForBook(ctx context.Context, bookID int64) ([]entity.Review, error) {
	return s.reviews.ListByBook(ctx, bookID)
}
