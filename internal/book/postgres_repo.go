package book

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo persists books in a single table used as a document
// collection: opaque 24-char hex ids, array-valued authors, nullable
// year and review.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const bookColumns = `id, title, authors, publisher, year, isbn, review, created_at, updated_at`

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.Authors, &b.Publisher, &b.Year, &b.ISBN, &b.Review, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	if b.Authors == nil {
		b.Authors = []string{}
	}
	return b, nil
}

// List returns all persisted books in insertion order, which is the
// iteration order the aggregate's tie-breaking relies on.
func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books ORDER BY created_at, id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanBook(r.db.QueryRow(timeoutCtx, query, id))
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1 LIMIT 1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanBook(r.db.QueryRow(timeoutCtx, query, isbn))
}

// Insert persists b as a new document, assigning it a fresh id.
func (r *PostgresRepo) Insert(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (id, title, authors, publisher, year, isbn, review, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING created_at, updated_at`

	b.ID = newDocumentID()
	if b.Authors == nil {
		b.Authors = []string{}
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		b.ID, b.Title, b.Authors, b.Publisher, b.Year, b.ISBN, b.Review,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateISBN
	}
	return err
}

// Replace overwrites the document at id with b's fields.
func (r *PostgresRepo) Replace(ctx context.Context, id string, b *Book) error {
	const query = `
		UPDATE books
		SET title = $2, authors = $3, publisher = $4, year = $5, isbn = $6, review = $7, updated_at = now()
		WHERE id = $1`

	if b.Authors == nil {
		b.Authors = []string{}
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query,
		id, b.Title, b.Authors, b.Publisher, b.Year, b.ISBN, b.Review,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateISBN
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	b.ID = id
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertByISBN inserts b or replaces the document persisted under the
// same ISBN in a single statement, so concurrent calls for one ISBN
// cannot create duplicates. On conflict the existing document keeps its
// id; the surviving id is written back to b.
func (r *PostgresRepo) UpsertByISBN(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (id, title, authors, publisher, year, isbn, review, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (isbn) WHERE isbn <> '' DO UPDATE SET
			title = EXCLUDED.title,
			authors = EXCLUDED.authors,
			publisher = EXCLUDED.publisher,
			year = EXCLUDED.year,
			review = EXCLUDED.review,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	if b.Authors == nil {
		b.Authors = []string{}
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		newDocumentID(), b.Title, b.Authors, b.Publisher, b.Year, b.ISBN, b.Review,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// newDocumentID returns a 24-character hex id, the store's opaque
// document identifier format.
func newDocumentID() string {
	buf := make([]byte, 12)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
