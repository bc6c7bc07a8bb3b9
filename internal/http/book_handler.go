package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/FelipePedraza/libreriaSoftware/internal/catalog"
	"github.com/FelipePedraza/libreriaSoftware/internal/httpx"
)

type BookHandler struct {
	catalog *catalog.Service
}

func NewBookHandler(catalog *catalog.Service) *BookHandler {
	return &BookHandler{catalog: catalog}
}

// List handles GET /books and returns the whole catalog.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.GetAllBooks(r.Context())
	if err != nil {
		writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, books)
}

// Search handles GET /books/search?searchTerm=&genre=&inStock=.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := catalog.Filters{
		Term:  q.Get("searchTerm"),
		Genre: q.Get("genre"),
	}
	if v := q.Get("inStock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "inStock must be a boolean", nil)
			return
		}
		f.InStock = inStock
	}

	books, err := h.catalog.SearchBooks(r.Context(), f)
	if err != nil {
		writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, books)
}

// SimpleSearch handles GET /simple-search?q= as a term-only alias of Search.
func (h *BookHandler) SimpleSearch(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.SearchBooks(r.Context(), catalog.Filters{Term: r.URL.Query().Get("q")})
	if err != nil {
		writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, books)
}

// Detail dispatches /books/{id}, /books/{id}/ratings and /books/{id}/reviews.
// Crude path param extraction with net/http's ServeMux.
func (h *BookHandler) Detail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "books" {
		http.NotFound(w, r)
		return
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch {
	case len(parts) == 2:
		h.getByID(w, r, id)
	case len(parts) == 3 && parts[2] == "ratings":
		h.listRatings(w, r, id)
	case len(parts) == 3 && parts[2] == "reviews":
		h.listReviews(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *BookHandler) getByID(w http.ResponseWriter, r *http.Request, id int64) {
	book, err := h.catalog.GetBook(r.Context(), id)
	if err != nil {
		writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, book)
}

func (h *BookHandler) listRatings(w http.ResponseWriter, r *http.Request, id int64) {
	ratings, err := h.catalog.ListBookRatings(r.Context(), id)
	if err != nil {
		writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, ratings)
}

func (h *BookHandler) listReviews(w http.ResponseWriter, r *http.Request, id int64) {
	reviews, err := h.catalog.ListBookReviews(r.Context(), id)
	if err != nil {
		writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, reviews)
}
