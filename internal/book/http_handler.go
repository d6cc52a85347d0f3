package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookreview/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /api/books
// @Summary List all saved books
// @Tags books
// @Produce json
// @Success 200 {array} book.Book
// @Router /api/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// GetByKey handles GET /api/books/{key}. A 24-char hex key is a store
// document id; anything else is treated as an ISBN and resolved against
// the external catalog.
// @Summary Get a book by store id or by ISBN
// @Tags books
// @Produce json
// @Param key path string true "Document id (24 hex chars) or ISBN"
// @Success 200 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/books/{key} [get]
func (h *HTTPHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	if IsDocumentID(key) {
		b, err := h.service.Get(r.Context(), key)
		if err != nil {
			h.writeError(r, w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, b)
		return
	}

	b, err := h.service.Lookup(r.Context(), key)
	if err != nil {
		h.writeError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// ReviewAndSave handles POST /api/books/{isbn}/save?review={decimal}
// @Summary Fetch a book by ISBN and save it with a review score
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param review query number true "Review score"
// @Success 200 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/books/{isbn}/save [post]
func (h *HTTPHandler) ReviewAndSave(w http.ResponseWriter, r *http.Request) {
	review, err := strconv.ParseFloat(r.URL.Query().Get("review"), 64)
	if err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_REVIEW", "review must be a decimal number")
		return
	}

	b, err := h.service.ReviewAndSave(r.Context(), r.PathValue("isbn"), review)
	if err != nil {
		h.writeError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /api/books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b Book
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		return
	}

	if err := h.service.Create(r.Context(), &b); err != nil {
		h.writeError(r, w, err)
		return
	}
	httpx.JSONCreated(w, "/api/books/"+b.ID, b)
}

// Update handles PUT /api/books/{id}
// @Summary Replace a book
// @Tags books
// @Accept json
// @Param id path string true "Document id (24 hex chars)"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !IsDocumentID(id) {
		h.writeError(r, w, ErrNotFound)
		return
	}

	var b Book
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		return
	}

	if err := h.service.Update(r.Context(), id, &b); err != nil {
		h.writeError(r, w, err)
		return
	}
	httpx.NoContent(w)
}

// Delete handles DELETE /api/books/{id}
// @Summary Delete a book
// @Tags books
// @Param id path string true "Document id (24 hex chars)"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !IsDocumentID(id) {
		h.writeError(r, w, ErrNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(r, w, err)
		return
	}
	httpx.NoContent(w)
}

// AverageReview handles GET /api/books/average-review?top={int}
// @Summary Average review score and top-rated books
// @Tags books
// @Produce json
// @Param top query int false "How many top-rated books to return" default(3)
// @Success 200 {object} book.ReviewSummary
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/books/average-review [get]
func (h *HTTPHandler) AverageReview(w http.ResponseWriter, r *http.Request) {
	top := DefaultTopBooks
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_TOP", "top must be a non-negative integer")
			return
		}
		top = n
	}

	summary, err := h.service.AverageReview(r.Context(), top)
	if err != nil {
		h.writeError(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *HTTPHandler) writeError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidISBN):
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_ISBN", "ISBN must be ISBN-10 or ISBN-13, with or without hyphens")
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found")
	case errors.Is(err, ErrCatalogUnavailable):
		httpx.JSONError(r, w, http.StatusBadGateway, "UPSTREAM_ERROR", "ISBN catalog is unavailable")
	case errors.Is(err, ErrDuplicateISBN):
		httpx.JSONError(r, w, http.StatusConflict, "DUPLICATE_ISBN", "A book with this ISBN already exists")
	default:
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
