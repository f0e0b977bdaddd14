package handlers

import (
	"bookclub/internal/middleware"
	"bookclub/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user' and pending
// flash notices.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	// Drain flash notices set by earlier requests; an error passed in by the
	// handler takes precedence
	session := sessions.Default(c)
	if flashes := session.Flashes("danger"); len(flashes) > 0 {
		if _, ok := obj["Error"]; !ok {
			obj["Error"] = flashes[0]
		}
	}
	if flashes := session.Flashes("success"); len(flashes) > 0 {
		if _, ok := obj["Success"]; !ok {
			obj["Success"] = flashes[0]
		}
	}
	session.Save()

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// flash queues a notice for the next rendered page. Category is "danger" or
// "success", matching the template styling.
func flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	session.Save()
}

// currentUser returns the user resolved by the LoadUser middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
