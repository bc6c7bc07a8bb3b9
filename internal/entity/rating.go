package entity

import "time"

// Rating is one user's score for one book. There is at most one per
// (book, user) pair; resubmitting replaces score and comment in place and
// keeps the original CreatedAt.
type Rating struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	UserID    string    `json:"user_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
