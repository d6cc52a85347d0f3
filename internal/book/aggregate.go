package book

import (
	"math"
	"sort"
)

// DefaultTopBooks is the top-N size used when the caller does not request one.
const DefaultTopBooks = 3

// Summarize computes the mean review across all reviewed books and ranks
// the top best-reviewed ones in descending order. Books without a review
// are excluded from the mean and rank below every reviewed book; ties keep
// their original iteration order.
func Summarize(books []Book, top int) ReviewSummary {
	summary := ReviewSummary{TopBooks: []Book{}}
	if len(books) == 0 {
		return summary
	}
	if top < 0 {
		top = 0
	}

	var sum float64
	var reviewed int
	for _, b := range books {
		if b.Review != nil {
			sum += *b.Review
			reviewed++
		}
	}
	if reviewed > 0 {
		summary.AverageReview = sum / float64(reviewed)
	}

	ranked := make([]Book, len(books))
	copy(ranked, books)
	sort.SliceStable(ranked, func(i, j int) bool {
		return reviewValue(ranked[i]) > reviewValue(ranked[j])
	})
	if top < len(ranked) {
		ranked = ranked[:top]
	}
	summary.TopBooks = ranked
	return summary
}

func reviewValue(b Book) float64 {
	if b.Review == nil {
		return math.Inf(-1)
	}
	return *b.Review
}
