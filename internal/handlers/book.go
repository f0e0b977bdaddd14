package handlers

import (
	"errors"
	"net/http"

	"bookclub/internal/services"
	"bookclub/internal/utils"

	"github.com/gin-gonic/gin"
)

type BookHandler struct{}

func NewBookHandler() *BookHandler {
	return &BookHandler{}
}

// AddRead - POST /users/books/addread/:id, marks an existing club book read
func (h *BookHandler) AddRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	bookID := utils.StringToUint(c.Param("id"))
	if err := services.AddRead(user.ID, bookID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			flash(c, "danger", "Book not found")
		} else {
			flash(c, "danger", "Could not add book to your reads")
		}
	}

	c.Redirect(http.StatusFound, "/")
}

// DeleteRead - POST /users/books/deleteread/:id, removes a book from the
// current user's reads
func (h *BookHandler) DeleteRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	bookID := utils.StringToUint(c.Param("id"))
	if err := services.RemoveRead(user.ID, bookID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			flash(c, "danger", "No matching row found to delete.")
		} else {
			flash(c, "danger", "Could not remove book from your reads")
		}
	}

	c.Redirect(http.StatusFound, "/")
}

// AddBookAndRead - POST /booksread/add, creates a book and marks it read in
// one step
func (h *BookHandler) AddBookAndRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	title := c.PostForm("booktitle")
	author := c.PostForm("bookauthor")
	coverURL := c.PostForm("bookimage")

	if _, err := services.AddBookAndRead(user.ID, title, author, coverURL); err != nil {
		if errors.Is(err, services.ErrValidation) {
			flash(c, "danger", "Need to add a booktitle")
		} else {
			flash(c, "danger", "Could not add book")
		}
	}

	c.Redirect(http.StatusFound, "/")
}

// DeleteBook - POST /books/delete/:id, removes a book from the club shelf
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	bookID := utils.StringToUint(c.Param("id"))
	if err := services.DeleteBook(bookID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			flash(c, "danger", "No matching row found to delete.")
		} else {
			flash(c, "danger", "Could not delete book")
		}
	}

	c.Redirect(http.StatusFound, "/")
}
