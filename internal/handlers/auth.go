package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"bookclub/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := services.Signup(username, email, password)
	if err != nil {
		msg := "Registration failed"
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, services.ErrDuplicateIdentity):
			msg = "Username or email already taken"
			code = http.StatusConflict
		case errors.Is(err, services.ErrValidation):
			msg = err.Error()
		}
		Render(c, code, "auth/register.html", gin.H{
			"Error":    msg,
			"Username": username,
			"Email":    email,
		})
		return
	}

	// Log the new user in right away
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, ok := services.Authenticate(username, password)
	if !ok {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Error":    "Invalid credentials.",
			"Username": username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.AddFlash(fmt.Sprintf("Hello, %s!", user.Username), "success")
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.AddFlash("You have successfully logged out", "success")
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}
