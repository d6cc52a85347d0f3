package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookreview/internal/book"
)

// Float returns a pointer to v, for fixture literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for fixture literals.
func Int(v int) *int { return &v }

// TestBook is a persisted book fixture.
var TestBook = book.Book{
	ID:        "665f1c2b9d3e4a5b6c7d8e9f",
	Title:     "Quincas Borba",
	Authors:   []string{"Machado de Assis"},
	Publisher: "Companhia das Letras",
	Year:      Int(2012),
	ISBN:      "9788535921779",
	Review:    Float(4.5),
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// NewRequest creates a new HTTP request for testing, JSON-encoding body
// when it is non-nil.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse holds a decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorder into a RecordResponse. The body
// map is nil when the response has no JSON object body.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
