package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/FelipePedraza/libreriaSoftware/internal/catalog"
	"github.com/FelipePedraza/libreriaSoftware/internal/httpx"
)

type RatingHandler struct {
	catalog *catalog.Service
}

func NewRatingHandler(catalog *catalog.Service) *RatingHandler {
	return &RatingHandler{catalog: catalog}
}

type rateBookRequest struct {
	BookID  int64  `json:"book_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=500"`
}

// RateBook handles POST /books/rate. A repeat submission from the same user
// for the same book updates the existing rating.
func (h *RatingHandler) RateBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body rateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "malformed request body", nil)
		return
	}
	if fieldErrors := ValidateStruct(body); fieldErrors != nil {
		details := make([]httpx.ErrorDetail, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			details = append(details, httpx.ErrorDetail{Field: fe.Field, Message: fe.Message})
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "invalid_argument", "validation failed", details)
		return
	}

	rating, err := h.catalog.RateBook(r.Context(), body.BookID, body.UserID, body.Rating, body.Comment)
	if err != nil {
		writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(w, rating)
}

// ListUserRatings handles GET /ratings/user/{userId}.
func (h *RatingHandler) ListUserRatings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[0] != "ratings" || parts[1] != "user" || parts[2] == "" {
		http.NotFound(w, r)
		return
	}
	userID := parts[2]

	ratings, err := h.catalog.ListUserRatings(r.Context(), userID)
	if err != nil {
		writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, ratings)
}
