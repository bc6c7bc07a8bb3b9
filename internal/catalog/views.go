package catalog

import (
	"time"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
)

// BookView is a book with its rating list embedded, as served to clients.
type BookView struct {
	entity.Book
	Ratings []RatingView `json:"ratings"`
}

// RatingView is the client-facing shape of a rating.
type RatingView struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newRatingView(r entity.Rating) RatingView {
	return RatingView{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Rating:    r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func newRatingViews(rs []entity.Rating) []RatingView {
	views := make([]RatingView, 0, len(rs))
	for _, r := range rs {
		views = append(views, newRatingView(r))
	}
	return views
}
