package web

import (
	"errors"
	"net/http"
	"strconv"

	"blog/models"

	"github.com/gin-gonic/gin"
)

func postIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// groupParam parses the optional group select. An empty value means no group.
func groupParam(c *gin.Context) (*uint64, bool) {
	v := c.PostForm("group")
	if v == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// PostDetail renders a single post with the author's total post count.
func PostDetail(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.GetPost(id)
	if errors.Is(err, models.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c)
		return
	}
	count, err := models.CountByAuthor(post.AuthorID)
	if err != nil {
		serverError(c)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
		"post":       post,
		"postsCount": count,
		"user":       currentUser(c),
	})
}

func renderPostForm(c *gin.Context, user *models.User, isEdit bool, post models.Post, formError string) {
	groups, err := models.AllGroups()
	if err != nil {
		serverError(c)
		return
	}
	status := http.StatusOK
	if formError != "" {
		status = http.StatusBadRequest
	}
	c.HTML(status, "create_post.tmpl", gin.H{
		"isEdit": isEdit,
		"post":   post,
		"groups": groups,
		"error":  formError,
		"user":   *user,
	})
}

func PostCreateForm(c *gin.Context, user *models.User) {
	renderPostForm(c, user, false, models.Post{}, "")
}

func PostCreateSubmit(c *gin.Context, user *models.User) {
	text := c.PostForm("text")
	groupID, ok := groupParam(c)
	if !ok {
		renderPostForm(c, user, false, models.Post{Text: text}, "Invalid group")
		return
	}
	_, err := models.CreatePost(*user, text, groupID)
	if errors.Is(err, models.ErrEmptyText) || errors.Is(err, models.ErrUnknownGroup) {
		renderPostForm(c, user, false, models.Post{Text: text, GroupID: groupID}, err.Error())
		return
	}
	if err != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func PostEditForm(c *gin.Context, user *models.User) {
	id, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := models.GetPost(id)
	if errors.Is(err, models.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c)
		return
	}
	if post.AuthorID != user.ID {
		forbidden(c)
		return
	}
	renderPostForm(c, user, true, post, "")
}

func PostEditSubmit(c *gin.Context, user *models.User) {
	id, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}
	text := c.PostForm("text")
	groupID, ok := groupParam(c)
	if !ok {
		renderPostForm(c, user, true, models.Post{ID: id, Text: text}, "Invalid group")
		return
	}
	_, err := models.UpdatePost(id, *user, text, groupID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		notFound(c)
	case errors.Is(err, models.ErrNotOwner):
		forbidden(c)
	case errors.Is(err, models.ErrEmptyText) || errors.Is(err, models.ErrUnknownGroup):
		renderPostForm(c, user, true, models.Post{ID: id, Text: text, GroupID: groupID}, err.Error())
	case err != nil:
		serverError(c)
	default:
		c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(id, 10)+"/")
	}
}

func PostDelete(c *gin.Context, user *models.User) {
	id, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}
	err := models.DeletePost(id, *user)
	switch {
	case errors.Is(err, models.ErrNotFound):
		notFound(c)
	case errors.Is(err, models.ErrNotOwner):
		forbidden(c)
	case err != nil:
		serverError(c)
	default:
		c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
	}
}
