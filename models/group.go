package models

import (
	"errors"

	"gorm.io/gorm"

	"blog/db"
	"blog/slug"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(200);uniqueIndex"`
	Description string `gorm:"type:text"`
}

// CreateGroup persists a new group. An explicit non-empty slug is used
// verbatim, otherwise one is derived from the title. The pre-insert existence
// check gives a friendly SlugTakenError without touching the store.
func CreateGroup(title, explicitSlug, description string) (Group, error) {
	s := explicitSlug
	if s == "" {
		s = slug.Make(title)
	}
	var count int64
	if err := db.Instance.Model(&Group{}).Where("slug = ?", s).Count(&count).Error; err != nil {
		return Group{}, err
	}
	if count > 0 {
		return Group{}, SlugTakenError{Slug: s}
	}
	g := Group{Title: title, Slug: s, Description: description}
	if err := insertGroup(&g); err != nil {
		return Group{}, err
	}
	return g, nil
}

// insertGroup writes the row. The unique constraint on the slug column is
// the authoritative guard against concurrent creation, so a duplicate-key
// failure from the store is translated to the same SlugTakenError the
// pre-insert check produces.
func insertGroup(g *Group) error {
	err := db.Instance.Create(g).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return SlugTakenError{Slug: g.Slug}
	}
	return err
}

func GroupBySlug(s string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Group{}, ErrNotFound
	}
	return g, err
}

func AllGroups() (groups []Group, err error) {
	err = db.Instance.Order("title").Find(&groups).Error
	return groups, err
}

// DeleteGroup removes the group; the posts.group_id constraint sets the
// reference to NULL on all its posts.
func DeleteGroup(id uint64) error {
	result := db.Instance.Delete(&Group{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
