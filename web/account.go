package web

import (
	"errors"
	"net/http"
	"strings"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// nextParam returns a safe return path from the form or query string.
// Anything that isn't a local absolute path falls back to the front page.
// "//host" and "/\host" are both rejected; browsers treat a backslash after
// the slash as a second slash, making them external redirects.
func nextParam(c *gin.Context) string {
	next := c.PostForm("next")
	if next == "" {
		next = c.Query("next")
	}
	if !strings.HasPrefix(next, "/") ||
		strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"next": nextParam(c),
		"user": currentUser(c),
	})
}

func LoginSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	user, success := models.UserLogin(username, password)
	if !success {
		c.HTML(http.StatusUnauthorized, "login.tmpl", gin.H{
			"next":  nextParam(c),
			"error": "Wrong username or password",
		})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, nextParam(c))
}

func SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{"user": currentUser(c)})
}

func SignupSubmit(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "signup.tmpl", gin.H{"error": "Username and password are required"})
		return
	}
	user, err := models.CreateUser(username, password)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		c.HTML(http.StatusBadRequest, "signup.tmpl", gin.H{"error": "Username is already taken"})
		return
	}
	if err != nil {
		serverError(c)
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}
