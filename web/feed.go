package web

import (
	"errors"
	"net/http"
	"strconv"

	"blog/models"

	"github.com/gin-gonic/gin"
)

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Index renders the global feed.
func Index(c *gin.Context) {
	feed, err := models.GlobalFeed(pageParam(c), 0)
	if err != nil {
		serverError(c)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"feed": feed,
		"user": currentUser(c),
	})
}

// GroupList renders the feed of a single group, resolved by slug.
func GroupList(c *gin.Context) {
	feed, group, err := models.GroupFeed(c.Param("slug"), pageParam(c), 0)
	if errors.Is(err, models.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c)
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", gin.H{
		"feed":  feed,
		"group": group,
		"user":  currentUser(c),
	})
}

// Profile renders one author's feed with the author header.
func Profile(c *gin.Context) {
	feed, author, err := models.AuthorFeed(c.Param("username"), pageParam(c), 0)
	if errors.Is(err, models.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c)
		return
	}
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"feed":   feed,
		"author": author,
		"user":   currentUser(c),
	})
}
