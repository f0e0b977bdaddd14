package router

import (
	"bookclub/internal/handlers"
	"bookclub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	userHandler := handlers.NewUserHandler()
	socialHandler := handlers.NewSocialHandler()
	messageHandler := handlers.NewMessageHandler()
	bookHandler := handlers.NewBookHandler()
	homeHandler := handlers.NewHomeHandler()
	searchHandler := handlers.NewSearchHandler()

	// Public Routes
	r.GET("/", homeHandler.Home)
	r.GET("/search", searchHandler.Search)
	r.GET("/users", userHandler.List)
	r.GET("/users/:id", userHandler.Profile)
	r.GET("/users/:id/following", userHandler.Following)
	r.GET("/users/:id/followers", userHandler.Followers)
	r.GET("/messages/:id", messageHandler.Show)

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/users/:id/likes", userHandler.Likes)
		authorized.GET("/users/profile", userHandler.ShowEditProfile)
		authorized.POST("/users/profile", userHandler.EditProfile)
		authorized.POST("/users/delete", userHandler.Delete)

		authorized.POST("/users/follow/:id", socialHandler.Follow)
		authorized.POST("/users/stop-following/:id", socialHandler.StopFollowing)
		authorized.POST("/users/like/:id", socialHandler.Like)
		authorized.POST("/users/unlike/:id", socialHandler.Unlike)

		authorized.GET("/messages/new", messageHandler.ShowCreate)
		authorized.POST("/messages/new", messageHandler.Create)
		authorized.POST("/messages/:id/delete", messageHandler.Delete)

		authorized.POST("/users/books/addread/:id", bookHandler.AddRead)
		authorized.POST("/users/books/deleteread/:id", bookHandler.DeleteRead)
		authorized.POST("/booksread/add", bookHandler.AddBookAndRead)
		authorized.POST("/books/delete/:id", bookHandler.DeleteBook)
	}
}
