package rating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"
)

// Valid score bounds for a rating.
const (
	MinScore = 1
	MaxScore = 5
)

// Service keeps a book's derived rating stats consistent with its rating
// set. Every rating mutation goes through Submit, which upserts the rating
// and then recomputes the owning book's average and count.
type Service struct {
	books   usecase.BookRepository
	ratings usecase.RatingRepository

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewService(books usecase.BookRepository, ratings usecase.RatingRepository) *Service {
	return &Service{
		books:   books,
		ratings: ratings,
		locks:   make(map[int64]*sync.Mutex),
	}
}

// lockForBook returns the mutex serializing rating writes and stats
// recomputation for one book. Submissions for different books proceed in
// parallel.
func (s *Service) lockForBook(bookID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[bookID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[bookID] = l
	}
	return l
}

// Submit creates or updates the rating for (bookID, userID). A repeat
// submission from the same user replaces score and comment on the existing
// record and keeps its original CreatedAt. All validation happens before any
// write; a missing book is the only fatal precondition.
func (s *Service) Submit(ctx context.Context, bookID int64, userID string, score int, comment string) (entity.Rating, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entity.Rating{}, fmt.Errorf("%w: user id is required", usecase.ErrInvalidArgument)
	}
	if score < MinScore || score > MaxScore {
		return entity.Rating{}, fmt.Errorf("%w: score must be between %d and %d", usecase.ErrInvalidArgument, MinScore, MaxScore)
	}
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return entity.Rating{}, err
	}

	lock := s.lockForBook(bookID)
	lock.Lock()
	defer lock.Unlock()

	r, err := s.ratings.Find(ctx, bookID, userID)
	switch {
	case err == nil:
		r.Score = score
		r.Comment = comment
	case errors.Is(err, usecase.ErrNotFound):
		r = entity.Rating{
			BookID:    bookID,
			UserID:    userID,
			Score:     score,
			Comment:   comment,
			CreatedAt: time.Now().UTC(),
		}
	default:
		return entity.Rating{}, err
	}

	if err := s.ratings.Save(ctx, &r); err != nil {
		return entity.Rating{}, err
	}
	if err := s.recomputeStats(ctx, bookID); err != nil {
		return entity.Rating{}, err
	}
	return r, nil
}

// recomputeStats re-reads the book's rating set and persists the derived
// average and count. It runs after every rating write so the aggregates
// always reflect the rating just stored. Caller holds the book lock.
func (s *Service) recomputeStats(ctx context.Context, bookID int64) error {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	sum, count, err := s.ratings.SumAndCount(ctx, bookID)
	if err != nil {
		return err
	}
	book.AverageRating = averageHalfUp(sum, count)
	book.TotalRatings = count
	return s.books.Save(ctx, &book)
}

// averageHalfUp computes sum/count rounded half-up to 2 decimal places,
// entirely in integers. Rounding the float64 mean instead would misround
// ties like 41/40 = 1.025, whose nearest float64 sits just below the
// decimal value.
func averageHalfUp(sum int64, count int) float64 {
	if count == 0 {
		return 0
	}
	n := int64(count)
	cents := (200*sum + n) / (2 * n)
	return float64(cents) / 100
}

// ListForBook returns all ratings for a book in storage order.
func (s *Service) ListForBook(ctx context.Context, bookID int64) ([]entity.Rating, error) {
	return s.ratings.ListByBook(ctx, bookID)
}

// ListForUser returns all ratings a user has submitted across books.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]entity.Rating, error) {
	return s.ratings.ListByUser(ctx, userID)
}
