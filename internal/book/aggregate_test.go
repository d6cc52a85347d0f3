package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reviewed(title string, score float64) Book {
	return Book{Title: title, Review: &score}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, DefaultTopBooks)

	assert.Equal(t, 0.0, got.AverageReview)
	assert.NotNil(t, got.TopBooks)
	assert.Empty(t, got.TopBooks)
}

func TestSummarize_AverageAndRanking(t *testing.T) {
	books := []Book{
		reviewed("three", 3.0),
		reviewed("five", 5.0),
		reviewed("one", 1.0),
	}

	got := Summarize(books, 2)

	assert.Equal(t, 3.0, got.AverageReview)
	assert.Len(t, got.TopBooks, 2)
	assert.Equal(t, "five", got.TopBooks[0].Title)
	assert.Equal(t, "three", got.TopBooks[1].Title)
}

func TestSummarize_TopLargerThanCollection(t *testing.T) {
	books := []Book{
		reviewed("a", 2.0),
		reviewed("b", 4.0),
		reviewed("c", 3.0),
	}

	got := Summarize(books, 10)

	assert.Len(t, got.TopBooks, 3)
	assert.Equal(t, "b", got.TopBooks[0].Title)
}

func TestSummarize_TopZero(t *testing.T) {
	got := Summarize([]Book{reviewed("a", 2.0)}, 0)

	assert.Equal(t, 2.0, got.AverageReview)
	assert.Empty(t, got.TopBooks)
}

func TestSummarize_TiesKeepIterationOrder(t *testing.T) {
	books := []Book{
		reviewed("first", 4.0),
		reviewed("second", 4.0),
		reviewed("third", 5.0),
	}

	got := Summarize(books, 3)

	assert.Equal(t, "third", got.TopBooks[0].Title)
	assert.Equal(t, "first", got.TopBooks[1].Title)
	assert.Equal(t, "second", got.TopBooks[2].Title)
}

func TestSummarize_UnreviewedBooks(t *testing.T) {
	books := []Book{
		{Title: "unreviewed"},
		reviewed("good", 4.0),
		reviewed("bad", 2.0),
	}

	got := Summarize(books, 3)

	// Unreviewed books do not contribute to the mean and rank last.
	assert.Equal(t, 3.0, got.AverageReview)
	assert.Equal(t, "good", got.TopBooks[0].Title)
	assert.Equal(t, "bad", got.TopBooks[1].Title)
	assert.Equal(t, "unreviewed", got.TopBooks[2].Title)
}

func TestSummarize_AllUnreviewed(t *testing.T) {
	got := Summarize([]Book{{Title: "a"}, {Title: "b"}}, 1)

	assert.Equal(t, 0.0, got.AverageReview)
	assert.Len(t, got.TopBooks, 1)
}
