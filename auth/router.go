package auth

import (
	"net/http"
	"net/url"

	"blog/models"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/auth/login/"

// HandlerFunc receives the already-authenticated user
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that gates routes behind a login check. Anonymous
// requests are redirected to the login page with a return path instead of
// being served an error page.
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
