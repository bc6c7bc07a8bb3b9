package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/FelipePedraza/libreriaSoftware/internal/catalog"
	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
	"github.com/FelipePedraza/libreriaSoftware/internal/rating"
	"github.com/FelipePedraza/libreriaSoftware/internal/review"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedService(ctrl *gomock.Controller) (*catalog.Service, *mocks.MockBookRepository, *mocks.MockRatingRepository, *mocks.MockReviewRepository) {
	bookRepo := mocks.NewMockBookRepository(ctrl)
	ratingRepo := mocks.NewMockRatingRepository(ctrl)
	reviewRepo := mocks.NewMockReviewRepository(ctrl)

	svc := catalog.NewService(bookRepo,
		rating.NewService(bookRepo, ratingRepo),
		review.NewService(bookRepo, reviewRepo),
	)
	return svc, bookRepo, ratingRepo, reviewRepo
}

func TestService_GetBook_EmbedsRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, bookRepo, ratingRepo, _ := newMockedService(ctrl)
	ctx := context.Background()

	book := entity.Book{ID: 1, Title: "Dune", AverageRating: 4.5, TotalRatings: 2}
	stored := []entity.Rating{
		{ID: 10, BookID: 1, UserID: "u1", Score: 4, CreatedAt: time.Now()},
		{ID: 11, BookID: 1, UserID: "u2", Score: 5, CreatedAt: time.Now()},
	}
	bookRepo.EXPECT().GetByID(ctx, int64(1)).Return(book, nil)
	ratingRepo.EXPECT().ListByBook(ctx, int64(1)).Return(stored, nil)

	view, err := svc.GetBook(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "Dune", view.Title)
	assert.Equal(t, 4.5, view.AverageRating)
	assert.Len(t, view.Ratings, 2)
	assert.Equal(t, 4, view.Ratings[0].Rating)
	assert.Equal(t, "u2", view.Ratings[1].UserID)
}

func TestService_GetBook_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, bookRepo, _, _ := newMockedService(ctrl)
	ctx := context.Background()

	bookRepo.EXPECT().GetByID(ctx, int64(999)).Return(entity.Book{}, usecase.ErrNotFound)

	_, err := svc.GetBook(ctx, 999)

	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestService_RateBook_DelegatesToAggregator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, bookRepo, ratingRepo, _ := newMockedService(ctrl)
	ctx := context.Background()

	book := entity.Book{ID: 1, Title: "Dune"}
	bookRepo.EXPECT().GetByID(ctx, int64(1)).Return(book, nil).Times(2)
	ratingRepo.EXPECT().Find(ctx, int64(1), "u1").Return(entity.Rating{}, usecase.ErrNotFound)
	ratingRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.Rating) error {
		r.ID = 7
		return nil
	})
	ratingRepo.EXPECT().SumAndCount(ctx, int64(1)).Return(int64(4), 1, nil)
	bookRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *entity.Book) error {
		assert.Equal(t, 4.0, b.AverageRating)
		assert.Equal(t, 1, b.TotalRatings)
		return nil
	})

	view, err := svc.RateBook(ctx, 1, "u1", 4, "solid")

	require.NoError(t, err)
	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, int64(1), view.BookID)
	assert.Equal(t, "u1", view.UserID)
	assert.Equal(t, 4, view.Rating)
	assert.Equal(t, "solid", view.Comment)
}

func TestService_CreateReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, bookRepo, _, reviewRepo := newMockedService(ctrl)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		bookRepo.EXPECT().GetByID(ctx, int64(1)).Return(entity.Book{ID: 1}, nil)
		reviewRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.Review) error {
			r.ID = 3
			return nil
		})

		rv, err := svc.CreateReview(ctx, 1, "  a fine read  ")

		require.NoError(t, err)
		assert.Equal(t, int64(3), rv.ID)
		assert.Equal(t, "a fine read", rv.ReviewText, "text is trimmed")
	})

	t.Run("book missing", func(t *testing.T) {
		bookRepo.EXPECT().GetByID(ctx, int64(999)).Return(entity.Book{}, usecase.ErrNotFound)

		_, err := svc.CreateReview(ctx, 999, "text")

		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})

	t.Run("empty text rejected before any read", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, 1, "   ")

		assert.ErrorIs(t, err, usecase.ErrInvalidArgument)
	})
}

func TestService_ListBookReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, reviewRepo := newMockedService(ctrl)
	ctx := context.Background()

	reviewRepo.EXPECT().ListByBook(ctx, int64(1)).Return([]entity.Review{
		{ID: 1, BookID: 1, ReviewText: "a classic"},
		{ID: 2, BookID: 1, ReviewText: "slow start"},
	}, nil)

	reviews, err := svc.ListBookReviews(ctx, 1)

	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, "slow start", reviews[1].ReviewText)
}

func TestService_ListUserRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, ratingRepo, _ := newMockedService(ctrl)
	ctx := context.Background()

	ratingRepo.EXPECT().ListByUser(ctx, "u1").Return([]entity.Rating{
		{ID: 1, BookID: 1, UserID: "u1", Score: 4},
		{ID: 2, BookID: 2, UserID: "u1", Score: 5},
	}, nil)

	views, err := svc.ListUserRatings(ctx, "u1")

	require.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, int64(2), views[1].BookID)
}
