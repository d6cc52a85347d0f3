package book

import (
	"context"

	"bookreview/internal/platform/brasilapi"
)

// Repository defines the contract for the book document store.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	Insert(ctx context.Context, b *Book) error
	Replace(ctx context.Context, id string, b *Book) error
	Delete(ctx context.Context, id string) error
	// UpsertByISBN inserts b or replaces the document already persisted
	// under the same non-empty ISBN, in a single atomic store operation.
	// The surviving document id is written back to b.
	UpsertByISBN(ctx context.Context, b *Book) error
}

// CatalogClient fetches book metadata from the external ISBN catalog.
type CatalogClient interface {
	GetByISBN(ctx context.Context, isbn string) (*brasilapi.Book, error)
}
