package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"blog/db"
)

type Post struct {
	ID       uint64 `gorm:"primaryKey"`
	Text     string `gorm:"type:text;not null"`
	PubDate  int64  `gorm:"autoCreateTime;index"`
	AuthorID uint64 `gorm:"not null;index"`
	Author   User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID  *uint64 `gorm:"index"`
	Group    *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

// Published is the publication timestamp as a time.Time, for the templates.
func (p Post) Published() time.Time {
	return time.Unix(p.PubDate, 0)
}

// InGroup reports whether the post is assigned to the given group, for the
// group select in the post form.
func (p Post) InGroup(id uint64) bool {
	return p.GroupID != nil && *p.GroupID == id
}

func validatePost(text string, groupID *uint64) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if groupID != nil {
		var count int64
		if err := db.Instance.Model(&Group{}).Where("id = ?", *groupID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrUnknownGroup
		}
	}
	return nil
}

// CreatePost stores a new post for the given author. The store assigns the
// id and the publication timestamp.
func CreatePost(author User, text string, groupID *uint64) (Post, error) {
	if err := validatePost(text, groupID); err != nil {
		return Post{}, err
	}
	p := Post{Text: text, AuthorID: author.ID, GroupID: groupID}
	if err := db.Instance.Create(&p).Error; err != nil {
		return Post{}, err
	}
	return p, nil
}

// UpdatePost replaces the text and group of an existing post. Only the
// post's author may do this; pub_date is never touched.
func UpdatePost(postID uint64, requester User, text string, groupID *uint64) (Post, error) {
	p, err := GetPost(postID)
	if err != nil {
		return Post{}, err
	}
	if p.AuthorID != requester.ID {
		return Post{}, ErrNotOwner
	}
	if err = validatePost(text, groupID); err != nil {
		return Post{}, err
	}
	err = db.Instance.Model(&p).Select("text", "group_id").
		Updates(map[string]interface{}{"text": text, "group_id": groupID}).Error
	if err != nil {
		return Post{}, err
	}
	p.Text = text
	p.GroupID = groupID
	p.Group = nil
	return p, nil
}

// DeletePost removes the row. Deleting an already-deleted post fails with
// ErrNotFound, same as an id that never existed.
func DeletePost(postID uint64, requester User) error {
	var p Post
	err := db.Instance.First(&p, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if p.AuthorID != requester.ID {
		return ErrNotOwner
	}
	return db.Instance.Delete(&p).Error
}

func GetPost(postID uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Post{}, ErrNotFound
	}
	return p, err
}

// CountByAuthor returns the author's total number of posts, shown on post
// detail pages.
func CountByAuthor(authorID uint64) (count int64, err error) {
	err = db.Instance.Model(&Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
