package web

import (
	"net/http"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) models.User {
	return auth.LoadSession(c).User()
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.tmpl", gin.H{
		"status":  http.StatusNotFound,
		"message": "Page not found",
		"user":    currentUser(c),
	})
}

func forbidden(c *gin.Context) {
	c.HTML(http.StatusForbidden, "error.tmpl", gin.H{
		"status":  http.StatusForbidden,
		"message": "You are not the author of this post",
		"user":    currentUser(c),
	})
}

func serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
		"status":  http.StatusInternalServerError,
		"message": "Something went wrong",
		"user":    currentUser(c),
	})
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
