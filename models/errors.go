package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNotOwner     = errors.New("not the author of this post")
	ErrEmptyText    = errors.New("post text must not be empty")
	ErrUnknownGroup = errors.New("no such group")
)

// SlugTakenError reports a group slug collision and carries the slug so the
// caller can show which address is taken.
type SlugTakenError struct {
	Slug string
}

func (e SlugTakenError) Error() string {
	return fmt.Sprintf("address %q already exists, pick a unique value", e.Slug)
}
