package models

import (
	"strings"

	"gorm.io/gorm"

	"blog/config"
	"blog/db"
)

// Feed is a fully materialized page of posts plus the counters the
// templates need to render pagination controls.
type Feed struct {
	Posts    []Post
	Total    int64
	Page     int
	PageSize int
	Pages    int
}

func (f Feed) HasPrev() bool { return f.Page > 1 }
func (f Feed) HasNext() bool { return f.Page < f.Pages }
func (f Feed) PrevPage() int { return f.Page - 1 }
func (f Feed) NextPage() int { return f.Page + 1 }

// All feeds share the same total order: newest first, ties broken by id so
// two posts published in the same second still list deterministically.
const feedOrder = "pub_date DESC, id DESC"

func buildFeed(filter func(*gorm.DB) *gorm.DB, page, pageSize int) (Feed, error) {
	if pageSize <= 0 {
		pageSize = config.PAGE_SIZE
	}
	if page < 1 {
		page = 1
	}
	var total int64
	if err := filter(db.Instance.Model(&Post{})).Count(&total).Error; err != nil {
		return Feed{}, err
	}
	posts := []Post{}
	err := filter(db.Instance.Model(&Post{})).
		Preload("Author").Preload("Group").
		Order(feedOrder).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return Feed{}, err
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Feed{Posts: posts, Total: total, Page: page, PageSize: pageSize, Pages: pages}, nil
}

// GlobalFeed pages through all posts. Pages past the end come back empty,
// never as an error.
func GlobalFeed(page, pageSize int) (Feed, error) {
	return buildFeed(func(q *gorm.DB) *gorm.DB { return q }, page, pageSize)
}

// GroupFeed pages through the posts of one group, resolved by slug.
func GroupFeed(slug string, page, pageSize int) (Feed, Group, error) {
	g, err := GroupBySlug(slug)
	if err != nil {
		return Feed{}, Group{}, err
	}
	feed, err := buildFeed(func(q *gorm.DB) *gorm.DB {
		return q.Where("group_id = ?", g.ID)
	}, page, pageSize)
	return feed, g, err
}

// AuthorFeed pages through one author's posts and returns the resolved
// author record for the profile header.
func AuthorFeed(username string, page, pageSize int) (Feed, User, error) {
	u, err := UserByUsername(username)
	if err != nil {
		return Feed{}, User{}, err
	}
	feed, err := buildFeed(func(q *gorm.DB) *gorm.DB {
		return q.Where("author_id = ?", u.ID)
	}, page, pageSize)
	return feed, u, err
}

// SearchPosts returns all posts whose text contains the substring,
// case-insensitively, in feed order. Used by the search fragment endpoint.
func SearchPosts(substr string) (posts []Post, err error) {
	posts = []Post{}
	if substr == "" {
		return posts, nil
	}
	pattern := "%" + strings.ToLower(substr) + "%"
	err = db.Instance.Model(&Post{}).
		Preload("Author").Preload("Group").
		Where("lower(text) LIKE ?", pattern).
		Order(feedOrder).
		Find(&posts).Error
	return posts, err
}
