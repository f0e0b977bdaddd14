package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"bookclub/internal/utils"
)

const (
	defaultSearchBaseURL = "https://openlibrary.org"
	maxSearchResults     = 5
	searchCacheTTL       = 10 * time.Minute
)

// BookSearchService queries the external title-search API.
type BookSearchService struct {
	client  *http.Client
	baseURL string
}

// NewBookSearchService creates a search service instance. The upstream base
// URL comes from BOOK_SEARCH_URL, falling back to the public endpoint.
func NewBookSearchService() *BookSearchService {
	baseURL := os.Getenv("BOOK_SEARCH_URL")
	if baseURL == "" {
		baseURL = defaultSearchBaseURL
	}

	return &BookSearchService{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

var bookSearchService *BookSearchService

// GetBookSearchService returns the search service singleton.
func GetBookSearchService() *BookSearchService {
	if bookSearchService == nil {
		bookSearchService = NewBookSearchService()
	}
	return bookSearchService
}

// searchResponse mirrors the subset of the upstream payload we consume.
type searchResponse struct {
	Docs []struct {
		Title string `json:"title"`
	} `json:"docs"`
}

// SearchTitles queries the upstream by free text and returns at most five
// titles in upstream order. Any network error or non-success status becomes
// ErrUpstream; partial data is never returned.
func (s *BookSearchService) SearchTitles(query string) ([]string, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidation)
	}

	cacheKey := "booksearch:" + query
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if titles, ok := cached.([]string); ok {
			return titles, nil
		}
	}

	searchURL := fmt.Sprintf("%s/search.json?q=%s", s.baseURL, url.QueryEscape(query))
	resp, err := s.client.Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}

	titles := make([]string, 0, maxSearchResults)
	for _, doc := range payload.Docs {
		if len(titles) == maxSearchResults {
			break
		}
		titles = append(titles, doc.Title)
	}

	utils.GetCache().Set(cacheKey, titles, searchCacheTTL)
	return titles, nil
}
