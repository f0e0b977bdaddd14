package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestSearchTitles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			t.Errorf("Expected /search.json, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "dune" {
			t.Errorf("Expected q=dune, got %s", got)
		}

		resp := searchResponse{}
		for _, title := range []string{"Dune", "Dune Messiah", "Children of Dune", "God Emperor of Dune", "Heretics of Dune", "Chapterhouse", "The Dune Encyclopedia"} {
			resp.Docs = append(resp.Docs, struct {
				Title string `json:"title"`
			}{Title: title})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	os.Setenv("BOOK_SEARCH_URL", server.URL)
	// Reset the singleton so it picks up the test URL
	bookSearchService = nil
	s := GetBookSearchService()

	titles, err := s.SearchTitles("dune")
	if err != nil {
		t.Fatalf("SearchTitles failed: %v", err)
	}
	if len(titles) != 5 {
		t.Fatalf("Expected exactly 5 titles, got %d", len(titles))
	}
	want := []string{"Dune", "Dune Messiah", "Children of Dune", "God Emperor of Dune", "Heretics of Dune"}
	for i, title := range want {
		if titles[i] != title {
			t.Errorf("titles[%d] = %q, want %q (upstream order must be preserved)", i, titles[i], title)
		}
	}
}

func TestSearchTitlesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer server.Close()

	os.Setenv("BOOK_SEARCH_URL", server.URL)
	bookSearchService = nil
	s := GetBookSearchService()

	if _, err := s.SearchTitles("unreachable"); !errors.Is(err, ErrUpstream) {
		t.Errorf("Expected ErrUpstream, got %v", err)
	}
}

func TestSearchTitlesEmptyQuery(t *testing.T) {
	bookSearchService = nil
	s := GetBookSearchService()

	if _, err := s.SearchTitles(""); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}
