package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"bookclub/internal/db"
	"bookclub/internal/middleware"
	"bookclub/internal/router"
	"bookclub/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("bookclub_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("BookClub server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"timeAgo": func(t interface{}) string {
			var timeVal time.Time
			switch v := t.(type) {
			case time.Time:
				timeVal = v
			default:
				return ""
			}

			duration := time.Since(timeVal)
			seconds := int(duration.Seconds())

			if seconds < 60 {
				return fmt.Sprintf("%ds ago", seconds)
			} else if seconds < 3600 {
				return fmt.Sprintf("%dm ago", seconds/60)
			} else if seconds < 86400 {
				return fmt.Sprintf("%dh ago", seconds/3600)
			} else if seconds < 2592000 {
				return fmt.Sprintf("%dd ago", seconds/86400)
			}
			return timeVal.Format("Jan 2, 2006")
		},
		"markdown": utils.RenderMarkdown,
	}

	// Manual registration to ensure keys match handler expectation
	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)

	// Home
	r.AddFromFilesFuncs("home.html", funcMap, assemble(templatesDir+"/views/home.html")...)
	r.AddFromFilesFuncs("home_anon.html", funcMap, assemble(templatesDir+"/views/home_anon.html")...)

	// Users
	r.AddFromFilesFuncs("users/index.html", funcMap, assemble(templatesDir+"/views/users/index.html")...)
	r.AddFromFilesFuncs("users/show.html", funcMap, assemble(templatesDir+"/views/users/show.html")...)
	r.AddFromFilesFuncs("users/edit.html", funcMap, assemble(templatesDir+"/views/users/edit.html")...)
	r.AddFromFilesFuncs("users/follows.html", funcMap, assemble(templatesDir+"/views/users/follows.html")...)

	// Messages
	r.AddFromFilesFuncs("messages/new.html", funcMap, assemble(templatesDir+"/views/messages/new.html")...)
	r.AddFromFilesFuncs("messages/show.html", funcMap, assemble(templatesDir+"/views/messages/show.html")...)
	r.AddFromFilesFuncs("messages/liked.html", funcMap, assemble(templatesDir+"/views/messages/liked.html")...)

	// Search
	r.AddFromFilesFuncs("search.html", funcMap, assemble(templatesDir+"/views/search.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
