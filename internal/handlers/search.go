package handlers

import (
	"errors"
	"net/http"

	"bookclub/internal/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

// Search - GET /search?q=..., queries the external title-search API. Upstream
// failure renders a notice, never partial results.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		Render(c, http.StatusOK, "search.html", gin.H{"Title": "Book search"})
		return
	}

	titles, err := services.GetBookSearchService().SearchTitles(query)
	if err != nil {
		msg := "Book search is unavailable right now, try again later"
		if errors.Is(err, services.ErrValidation) {
			msg = err.Error()
		}
		Render(c, http.StatusBadGateway, "search.html", gin.H{
			"Title": "Book search",
			"Query": query,
			"Error": msg,
		})
		return
	}

	Render(c, http.StatusOK, "search.html", gin.H{
		"Title":  "Book search",
		"Query":  query,
		"Titles": titles,
	})
}
