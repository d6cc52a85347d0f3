package book

import (
	"context"
	"errors"
	"fmt"

	"bookreview/internal/platform/brasilapi"
)

// Service provides book lookup, review and CRUD business logic.
type Service struct {
	repo    Repository
	catalog CatalogClient
}

// NewService creates a new book service.
func NewService(repo Repository, catalog CatalogClient) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Lookup fetches book metadata by ISBN from the external catalog without
// persisting anything.
func (s *Service) Lookup(ctx context.Context, isbn string) (Book, error) {
	if !ValidISBN(isbn) {
		return Book{}, ErrInvalidISBN
	}
	return s.fetch(ctx, isbn)
}

// ReviewAndSave fetches a book by ISBN, attaches the review score and
// upserts it keyed by the normalized ISBN. Exactly one catalog fetch and
// one store write per call.
func (s *Service) ReviewAndSave(ctx context.Context, isbn string, review float64) (Book, error) {
	if !ValidISBN(isbn) {
		return Book{}, ErrInvalidISBN
	}
	b, err := s.fetch(ctx, isbn)
	if err != nil {
		return Book{}, err
	}

	b.Review = &review
	b.ISBN = NormalizeISBN(b.ISBN)

	if err := s.repo.UpsertByISBN(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

func (s *Service) fetch(ctx context.Context, isbn string) (Book, error) {
	meta, err := s.catalog.GetByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, brasilapi.ErrNotFound) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	b := Book{
		Title:     meta.Title,
		Authors:   meta.Authors,
		Publisher: meta.Publisher,
		Year:      meta.Year,
		ISBN:      meta.ISBN,
	}
	if b.ISBN == "" {
		// Some providers omit the isbn field; fall back to the requested one.
		b.ISBN = isbn
	}
	if b.Authors == nil {
		b.Authors = []string{}
	}
	return b, nil
}

// List returns all persisted books.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Get returns a persisted book by its document id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Create persists a new book exactly as given by the caller. The store
// assigns the document id.
func (s *Service) Create(ctx context.Context, b *Book) error {
	b.ID = ""
	return s.repo.Insert(ctx, b)
}

// Update replaces the document at id with the given book's fields.
func (s *Service) Update(ctx context.Context, id string, b *Book) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	b.ID = existing.ID
	return s.repo.Replace(ctx, existing.ID, b)
}

// Delete removes a persisted book by its document id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AverageReview computes the review aggregate across all persisted books.
func (s *Service) AverageReview(ctx context.Context, top int) (ReviewSummary, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return ReviewSummary{}, err
	}
	return Summarize(books, top), nil
}
