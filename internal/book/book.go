package book

import (
	"errors"
	"regexp"
	"time"
)

// ErrNotFound is returned when a book is not found, either in the store
// or in the external catalog.
var ErrNotFound = errors.New("book not found")

// ErrInvalidISBN is returned when an ISBN fails format validation.
var ErrInvalidISBN = errors.New("invalid isbn")

// ErrCatalogUnavailable is returned when the external catalog cannot be
// reached or answers with a server error.
var ErrCatalogUnavailable = errors.New("isbn catalog unavailable")

// ErrDuplicateISBN is returned when an insert collides with an already
// persisted ISBN.
var ErrDuplicateISBN = errors.New("isbn already exists")

// Book represents a book entity. Books fetched from the external catalog
// are transient: no id, no review, no timestamps.
type Book struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Authors   []string  `json:"authors"`
	Publisher string    `json:"publisher,omitempty"`
	Year      *int      `json:"year,omitempty"`
	ISBN      string    `json:"isbn"`
	Review    *float64  `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// ReviewSummary holds the aggregate over all persisted books.
type ReviewSummary struct {
	AverageReview float64 `json:"averageReview"`
	TopBooks      []Book  `json:"topBooks"`
}

var documentIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// IsDocumentID reports whether s has the shape of a store document id
// (24 lowercase hex characters). ISBNs never match: digit-only ISBNs are
// at most 13 characters and hyphenated ones at most 17.
func IsDocumentID(s string) bool {
	return documentIDPattern.MatchString(s)
}
