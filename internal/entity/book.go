package entity

import "time"

// Book is a catalog entry. AverageRating and TotalRatings are derived from
// the book's rating set and are only written by the rating service.
type Book struct {
	ID              int64     `json:"id"`
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Description     string    `json:"description,omitempty"`
	PublicationDate string    `json:"publication_date,omitempty"`
	Price           float64   `json:"price"`
	StockQuantity   int       `json:"stock_quantity"`
	Genre           string    `json:"genre,omitempty"`
	Publisher       string    `json:"publisher,omitempty"`
	AverageRating   float64   `json:"average_rating"`
	TotalRatings    int       `json:"total_ratings"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
