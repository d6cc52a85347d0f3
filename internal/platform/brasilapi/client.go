// Package brasilapi implements a client for the BrasilAPI ISBN lookup
// service (https://brasilapi.com.br), which aggregates metadata for books
// published in Brazil.
package brasilapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public BrasilAPI ISBN endpoint.
const DefaultBaseURL = "https://brasilapi.com.br/api/isbn/v1"

// ErrNotFound is returned when the catalog does not know the ISBN.
var ErrNotFound = errors.New("isbn not found in catalog")

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

func NewClient(baseURL, userAgent string, rps int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// Book matches the BrasilAPI ISBN response body.
type Book struct {
	ISBN      string   `json:"isbn"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	Authors   []string `json:"authors"`
	Publisher string   `json:"publisher"`
	Synopsis  string   `json:"synopsis"`
	Year      *int     `json:"year"`
	PageCount int      `json:"page_count"`
	CoverURL  string   `json:"cover_url"`
	Provider  string   `json:"provider"`
}

// GetByISBN fetches metadata for a single ISBN. The catalog accepts both
// hyphenated and raw forms.
func (c *Client) GetByISBN(ctx context.Context, isbn string) (*Book, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(isbn))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var b Book
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode isbn response: %w", err)
	}
	return &b, nil
}
