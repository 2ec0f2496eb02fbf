package domain

import (
	"errors"
	"math"
	"time"
)

// Review represents a product review submitted by a shopper. Reviews are
// append-only: there is no edit or delete.
type Review struct {
	ID        int64     `json:"id"`
	ProductID int       `json:"product_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
}

// ReviewSummary contains the aggregate rating for a product. It is
// derived from the store contents on every read, never stored.
type ReviewSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Validation errors for review submission
var (
	ErrAuthorRequired   = errors.New("author is required")
	ErrCommentRequired  = errors.New("comment is required")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

// ValidateRating reports whether the rating is on the 1-5 scale
func ValidateRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// ReviewRepository defines the contract for review storage
type ReviewRepository interface {
	Append(review *Review) error
	FindByProductID(productID int) []Review
	Summary(productID int) ReviewSummary
	Count() int
}

// RoundRating rounds an average rating to one decimal place using
// round-half-up
func RoundRating(value float64) float64 {
	return math.Floor(value*10+0.5) / 10
}
