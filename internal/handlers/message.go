package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"bookclub/internal/db"
	"bookclub/internal/models"
	"bookclub/internal/services"
	"bookclub/internal/utils"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct{}

func NewMessageHandler() *MessageHandler {
	return &MessageHandler{}
}

// ShowCreate - GET /messages/new
func (h *MessageHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "messages/new.html", gin.H{"Title": "New message"})
}

// Create - POST /messages/new
func (h *MessageHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	_, err := services.PostMessage(user.ID, c.PostForm("text"))
	if err != nil {
		msg := "Could not post message"
		if errors.Is(err, services.ErrValidation) {
			msg = err.Error()
		}
		Render(c, http.StatusBadRequest, "messages/new.html", gin.H{
			"Title": "New message",
			"Error": msg,
			"Text":  c.PostForm("text"),
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", user.ID))
}

// Show - GET /messages/:id
func (h *MessageHandler) Show(c *gin.Context) {
	messageID := utils.StringToUint(c.Param("id"))

	var message models.Message
	if err := db.DB.Preload("User").First(&message, messageID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Message not found")
		return
	}

	Render(c, http.StatusOK, "messages/show.html", gin.H{
		"Title":   "Message",
		"Message": message,
		"Body":    utils.RenderMarkdown(message.Text),
	})
}

// Delete - POST /messages/:id/delete, author-only
func (h *MessageHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	messageID := utils.StringToUint(c.Param("id"))
	if err := services.DeleteMessage(user.ID, messageID); err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthorized):
			flash(c, "danger", "Access unauthorized.")
		case errors.Is(err, services.ErrNotFound):
			flash(c, "danger", "Message not found")
		default:
			flash(c, "danger", "Could not delete message")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", user.ID))
}
