package middleware

import (
	"net/http"

	"bookclub/internal/db"
	"bookclub/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// AuthRequired ensures a user is logged in. Anonymous callers get a notice
// and land back on the home page with no state changed.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			session := sessions.Default(c)
			session.AddFlash("Access unauthorized.", "danger")
			session.Save()
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

// LoadUser resolves the session's user_id into the request context before
// any handler runs. A stale id (deleted account) simply leaves the request
// anonymous.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			result := db.DB.First(&user, userID)
			if result.Error == nil {
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}
