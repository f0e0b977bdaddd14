package handlers

import (
	"net/http"

	"bookclub/internal/services"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home - GET /. Logged-in members see the club shelf with their read state
// plus recent messages from themselves and the people they follow. Anonymous
// visitors get the landing page.
func (h *HomeHandler) Home(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		Render(c, http.StatusOK, "home_anon.html", gin.H{"Title": "Welcome"})
		return
	}

	shelf, err := services.GetShelf(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the shelf")
		return
	}

	messages, _ := services.Timeline(user.ID)
	liked := services.LikedMessageIDs(user.ID)

	Render(c, http.StatusOK, "home.html", gin.H{
		"Title":    "Club shelf",
		"Books":    shelf.Books,
		"ReadIDs":  shelf.ReadIDs,
		"Messages": messages,
		"LikedIDs": liked,
	})
}
