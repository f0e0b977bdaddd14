package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"bookclub/internal/db"
	"bookclub/internal/models"
	"bookclub/internal/services"
	"bookclub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// List - member directory /users, optional ?q= username filter
func (h *UserHandler) List(c *gin.Context) {
	search := c.Query("q")

	var users []models.User
	query := db.DB.Order("created_at ASC")
	if search != "" {
		query = query.Where("username LIKE ?", "%"+search+"%")
	}
	query.Find(&users)

	Render(c, http.StatusOK, "users/index.html", gin.H{
		"Title": "Members",
		"Users": users,
		"Query": search,
	})
}

// Profile - public member page /users/:id with their recent messages and
// books read
func (h *UserHandler) Profile(c *gin.Context) {
	userID := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	messages, _ := services.RecentMessages(user.ID)
	books, _ := services.BooksRead(user.ID)

	isFollowing := false
	if current, ok := currentUser(c); ok && current.ID != user.ID {
		isFollowing = services.IsFollowing(current.ID, user.ID)
	}

	Render(c, http.StatusOK, "users/show.html", gin.H{
		"Title":       user.Username,
		"User":        user,
		"Messages":    messages,
		"Books":       books,
		"IsFollowing": isFollowing,
		"DaysSince":   utils.GetDaysSinceJoined(user.CreatedAt),
	})
}

// Following - users this member follows
func (h *UserHandler) Following(c *gin.Context) {
	userID := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	users, _ := services.Following(user.ID)
	Render(c, http.StatusOK, "users/follows.html", gin.H{
		"Title": user.Username + " is following",
		"User":  user,
		"Users": users,
	})
}

// Followers - users following this member
func (h *UserHandler) Followers(c *gin.Context) {
	userID := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	users, _ := services.Followers(user.ID)
	Render(c, http.StatusOK, "users/follows.html", gin.H{
		"Title": "Followers of " + user.Username,
		"User":  user,
		"Users": users,
	})
}

// Likes - messages this member has liked. Owner-only: anyone else gets the
// unauthorized treatment, same as a missing login.
func (h *UserHandler) Likes(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		flash(c, "danger", "Access unauthorized.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	userID := utils.StringToUint(c.Param("id"))
	if current.ID != userID {
		flash(c, "danger", "Access unauthorized.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	messages, _ := services.LikedMessages(current.ID)
	Render(c, http.StatusOK, "messages/liked.html", gin.H{
		"Title":    "Liked messages",
		"Messages": messages,
	})
}

// ShowEditProfile - edit form for the current user
func (h *UserHandler) ShowEditProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	Render(c, http.StatusOK, "users/edit.html", gin.H{
		"Title": "Edit profile",
		"User":  user,
	})
}

// EditProfile - applies profile changes after re-checking the password
func (h *UserHandler) EditProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	input := services.ProfileUpdate{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Bio:      c.PostForm("bio"),
		Location: c.PostForm("location"),
	}

	updated, err := services.UpdateProfile(user.ID, c.PostForm("password"), input)
	if err != nil {
		msg := "Update failed"
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			msg = "Password does not match"
		case errors.Is(err, services.ErrDuplicateIdentity):
			msg = "Username or email already taken"
			code = http.StatusConflict
		}
		Render(c, code, "users/edit.html", gin.H{
			"Title": "Edit profile",
			"Error": msg,
			"User":  user,
		})
		return
	}

	flash(c, "success", "Profile updated")
	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", updated.ID))
}

// Delete - removes the account and everything it owns, then ends the session
func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	if err := services.DeleteAccount(user.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete account")
		return
	}

	c.Redirect(http.StatusFound, "/signup")
}
