package web

import (
	"time"

	"blog/auth"
	"blog/config"
	"blog/db"
	"blog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

// NewRouter assembles the middleware stack and the full routing table.
// Protected routes go through the auth.Router wrapper which redirects
// anonymous visitors to the login page.
func NewRouter() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob(config.TEMPLATES)

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/search"})))
	}
	router.Use(utils.NoCacheMiddleware) // feeds are always rendered fresh

	authRouter := &auth.Router{Base: router}

	// Feeds and detail pages
	router.GET("/", Index)
	router.GET("/group/:slug/", GroupList)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	// Post editor (auth required)
	authRouter.GET("/create/", PostCreateForm)
	authRouter.POST("/create/", PostCreateSubmit)
	authRouter.GET("/posts/:id/edit/", PostEditForm)
	authRouter.POST("/posts/:id/edit/", PostEditSubmit)
	authRouter.POST("/posts/:id/delete/", PostDelete)
	// Search fragment
	router.GET("/search", Search)
	// Account pages
	router.GET("/auth/login/", LoginForm)
	router.POST("/auth/login/", LoginSubmit)
	router.GET("/auth/signup/", SignupForm)
	router.POST("/auth/signup/", SignupSubmit)
	router.POST("/auth/logout/", Logout)
	// Misc
	router.GET("/robots.txt", DisallowRobots)

	return router
}
