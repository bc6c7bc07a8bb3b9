package catalog

import (
	"context"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
	"github.com/FelipePedraza/libreriaSoftware/internal/rating"
	"github.com/FelipePedraza/libreriaSoftware/internal/review"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"
)

// Service is the catalog entry point used by the HTTP layer. Reads never
// mutate state; the only mutations reachable here are RateBook and
// CreateReview, which delegate to the rating and review services.
type Service struct {
	books   usecase.BookRepository
	ratings *rating.Service
	reviews *review.Service
}

func NewService(books usecase.BookRepository, ratings *rating.Service, reviews *review.Service) *Service {
	return &Service{books: books, ratings: ratings, reviews: reviews}
}

// GetAllBooks returns the whole catalog.
func (s *Service) GetAllBooks(ctx context.Context) ([]BookView, error) {
	return s.SearchBooks(ctx, Filters{})
}

// SearchBooks returns the books matching the filters, each with its current
// ratings embedded.
func (s *Service) SearchBooks(ctx context.Context, f Filters) ([]BookView, error) {
	books, err := s.searchBooks(ctx, f)
	if err != nil {
		return nil, err
	}
	views := make([]BookView, 0, len(books))
	for _, b := range books {
		v, err := s.bookView(ctx, b)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// GetBook is a point lookup. An absent book surfaces as usecase.ErrNotFound.
func (s *Service) GetBook(ctx context.Context, id int64) (BookView, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return BookView{}, err
	}
	return s.bookView(ctx, b)
}

// RateBook submits a rating and returns the stored record, with derived book
// stats already updated.
func (s *Service) RateBook(ctx context.Context, bookID int64, userID string, score int, comment string) (RatingView, error) {
	r, err := s.ratings.Submit(ctx, bookID, userID, score, comment)
	if err != nil {
		return RatingView{}, err
	}
	return newRatingView(r), nil
}

func (s *Service) ListBookRatings(ctx context.Context, bookID int64) ([]RatingView, error) {
	rs, err := s.ratings.ListForBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return newRatingViews(rs), nil
}

func (s *Service) ListUserRatings(ctx context.Context, userID string) ([]RatingView, error) {
	rs, err := s.ratings.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newRatingViews(rs), nil
}

func (s *Service) CreateReview(ctx context.Context, bookID int64, text string) (entity.Review, error) {
	return s.reviews.Create(ctx, bookID, text)
}

func (s *Service) ListBookReviews(ctx context.Context, bookID int64) ([]entity.Review, error) {
	return s.reviews.ListForBook(ctx, bookID)
}

func (s *Service) bookView(ctx context.Context, b entity.Book) (BookView, error) {
	rs, err := s.ratings.ListForBook(ctx, b.ID)
	if err != nil {
		return BookView{}, err
	}
	return BookView{Book: b, Ratings: newRatingViews(rs)}, nil
}
