package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
	"github.com/FelipePedraza/libreriaSoftware/internal/testutil"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestBookHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)
	handler := NewBookHandler(svc)

	m.books.EXPECT().Search(gomock.Any(), usecase.SearchPredicate{}).
		Return([]entity.Book{testutil.TestBook}, nil)
	m.ratings.EXPECT().ListByBook(gomock.Any(), testutil.TestBook.ID).Return(nil, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/books", nil)

	handler.List(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, true, resp.Body["success"])
	assert.Contains(t, w.Body.String(), "Dune")
}

func TestBookHandler_Search(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMocks     func(m serviceMocks)
		expectedStatus int
	}{
		{
			name:   "term forwarded to storage",
			target: "/books/search?searchTerm=dune",
			setupMocks: func(m serviceMocks) {
				m.books.EXPECT().
					Search(gomock.Any(), usecase.SearchPredicate{TitleOrAuthorSubstring: "dune"}).
					Return([]entity.Book{testutil.TestBook}, nil)
				m.ratings.EXPECT().ListByBook(gomock.Any(), testutil.TestBook.ID).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "genre and stock filtered in memory",
			target: "/books/search?genre=fantasy&inStock=true",
			setupMocks: func(m serviceMocks) {
				m.books.EXPECT().Search(gomock.Any(), usecase.SearchPredicate{}).
					Return([]entity.Book{testutil.TestBook}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - inStock not boolean",
			target:         "/books/search?inStock=maybe",
			setupMocks:     func(m serviceMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newCatalogService(ctrl)
			tt.setupMocks(m)
			handler := NewBookHandler(svc)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)

			handler.Search(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_SimpleSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)
	handler := NewBookHandler(svc)

	m.books.EXPECT().
		Search(gomock.Any(), usecase.SearchPredicate{TitleOrAuthorSubstring: "herbert"}).
		Return([]entity.Book{testutil.TestBook}, nil)
	m.ratings.EXPECT().ListByBook(gomock.Any(), testutil.TestBook.ID).Return(nil, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/simple-search?q=herbert", nil)

	handler.SimpleSearch(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")
}

func TestBookHandler_Detail(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMocks     func(m serviceMocks)
		expectedStatus int
	}{
		{
			name:   "get by id",
			target: "/books/1",
			setupMocks: func(m serviceMocks) {
				m.books.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testutil.TestBook, nil)
				m.ratings.EXPECT().ListByBook(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "book ratings",
			target: "/books/1/ratings",
			setupMocks: func(m serviceMocks) {
				m.ratings.EXPECT().ListByBook(gomock.Any(), int64(1)).Return([]entity.Rating{
					{ID: 1, BookID: 1, UserID: "u1", Score: 4},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "book reviews",
			target: "/books/1/reviews",
			setupMocks: func(m serviceMocks) {
				m.reviews.EXPECT().ListByBook(gomock.Any(), int64(1)).Return([]entity.Review{
					{ID: 1, BookID: 1, ReviewText: "a classic"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "not found - absent id",
			target: "/books/999",
			setupMocks: func(m serviceMocks) {
				m.books.EXPECT().GetByID(gomock.Any(), int64(999)).Return(entity.Book{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "not found - non-numeric id",
			target:         "/books/abc",
			setupMocks:     func(m serviceMocks) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "not found - unknown subresource",
			target:         "/books/1/reviews/extra",
			setupMocks:     func(m serviceMocks) {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newCatalogService(ctrl)
			tt.setupMocks(m)
			handler := NewBookHandler(svc)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)

			handler.Detail(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
