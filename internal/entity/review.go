package entity

import "time"

type Review struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}
