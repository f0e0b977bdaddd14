package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"bookclub/internal/services"
	"bookclub/internal/utils"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct{}

func NewSocialHandler() *SocialHandler {
	return &SocialHandler{}
}

// Follow - POST /users/follow/:id
func (h *SocialHandler) Follow(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	followeeID := utils.StringToUint(c.Param("id"))
	if err := services.Follow(user.ID, followeeID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			flash(c, "danger", "User not found")
		case errors.Is(err, services.ErrValidation):
			flash(c, "danger", "You cannot follow yourself")
		default:
			flash(c, "danger", "Could not follow user")
		}
		c.Redirect(http.StatusFound, "/users")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d/following", user.ID))
}

// StopFollowing - POST /users/stop-following/:id
func (h *SocialHandler) StopFollowing(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	followeeID := utils.StringToUint(c.Param("id"))
	if err := services.Unfollow(user.ID, followeeID); err != nil {
		flash(c, "danger", "Could not unfollow user")
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d/following", user.ID))
}

// Like - POST /users/like/:id
func (h *SocialHandler) Like(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	messageID := utils.StringToUint(c.Param("id"))
	if err := services.LikeMessage(user.ID, messageID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			flash(c, "danger", "Message not found")
		} else {
			flash(c, "danger", "Could not like message")
		}
	}

	c.Redirect(http.StatusFound, "/")
}

// Unlike - POST /users/unlike/:id
func (h *SocialHandler) Unlike(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	messageID := utils.StringToUint(c.Param("id"))
	if err := services.UnlikeMessage(user.ID, messageID); err != nil {
		flash(c, "danger", "Could not unlike message")
	}

	c.Redirect(http.StatusFound, "/")
}
