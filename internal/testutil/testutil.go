package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
)

// TestBook is a sample catalog entry for tests.
var TestBook = entity.Book{
	ID:              1,
	ISBN:            "978-0-441-17271-9",
	Title:           "Dune",
	Author:          "Frank Herbert",
	Genre:           "Science Fiction",
	Publisher:       "Ace Books",
	PublicationDate: "1965-08-01",
	Price:           12.99,
	StockQuantity:   7,
	CreatedAt:       time.Now(),
	UpdatedAt:       time.Now(),
}

// NewRequest creates an HTTP request for testing, JSON-encoding body when
// present.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse is a decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorded response body as JSON.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
