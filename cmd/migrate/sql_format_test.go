package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	dir := repoMigrationsDir(t)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		s := string(b)
		if !strings.Contains(s, "-- +goose Up") {
			t.Fatalf("%s missing '-- +goose Up'", e.Name())
		}
		if !strings.Contains(s, "-- +goose Down") {
			t.Fatalf("%s missing '-- +goose Down'", e.Name())
		}
	}
}

// The store's conditional upsert depends on the partial unique index over
// non-empty isbn values; losing it from the schema would silently turn
// review-and-save into duplicate inserts.
func TestBooksMigration_DeclaresIsbnUpsertIndex(t *testing.T) {
	b, err := os.ReadFile(filepath.Join(repoMigrationsDir(t), "00001_create_books.sql"))
	if err != nil {
		t.Fatalf("read books migration: %v", err)
	}
	s := string(b)

	if !strings.Contains(s, "CREATE TABLE books") {
		t.Fatal("books migration does not create the books table")
	}
	if !strings.Contains(s, "CREATE UNIQUE INDEX books_isbn_uq ON books (isbn) WHERE isbn <> ''") {
		t.Fatal("books migration does not declare the partial unique isbn index")
	}
}
