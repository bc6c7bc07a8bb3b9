package http

import (
	"encoding/json"
	"net/http"

	"github.com/FelipePedraza/libreriaSoftware/internal/catalog"
	"github.com/FelipePedraza/libreriaSoftware/internal/httpx"
)

type ReviewHandler struct {
	catalog *catalog.Service
}

func NewReviewHandler(catalog *catalog.Service) *ReviewHandler {
	return &ReviewHandler{catalog: catalog}
}

type createReviewRequest struct {
	BookID     int64  `json:"book_id" validate:"required"`
	ReviewText string `json:"review_text" validate:"required,max=500"`
}

// CreateReview handles POST /reviews.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body createReviewRequest
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

	review, err := h.catalog.CreateReview(r.Context(), body.BookID, body.ReviewText)
	if err != nil {
		writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(w, review)
}
