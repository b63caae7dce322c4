package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/db"
)

func TestCreatePostEmptyTextInsertsNothing(t *testing.T) {
	setupTestDB(t)
	author := mustUser(t, "alice")

	_, err := CreatePost(author, "   ", nil)
	assert.ErrorIs(t, err, ErrEmptyText)

	var count int64
	require.NoError(t, db.Instance.Model(&Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreatePostUnknownGroup(t *testing.T) {
	setupTestDB(t)
	author := mustUser(t, "alice")

	missing := uint64(12345)
	_, err := CreatePost(author, "some text", &missing)
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestCreatePostAssignsIDAndPubDate(t *testing.T) {
	setupTestDB(t)
	author := mustUser(t, "alice")

	p := mustPost(t, author, "hello", nil)
	assert.NotZero(t, p.ID)
	assert.NotZero(t, p.PubDate)
	assert.Equal(t, author.ID, p.AuthorID)
}

func TestUpdatePostByNonAuthorForbidden(t *testing.T) {
	setupTestDB(t)
	alice := mustUser(t, "alice")
	bob := mustUser(t, "bob")
	p := mustPost(t, alice, "original text", nil)

	_, err := UpdatePost(p.ID, bob, "hijacked", nil)
	assert.ErrorIs(t, err, ErrNotOwner)

	reloaded, err := GetPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "original text", reloaded.Text, "stored text unchanged")
}

func TestUpdatePostKeepsPubDate(t *testing.T) {
	setupTestDB(t)
	alice := mustUser(t, "alice")
	g := mustGroup(t, "Группа")
	p := mustPost(t, alice, "first version", nil)
	setPubDate(t, p.ID, 1000)

	updated, err := UpdatePost(p.ID, alice, "second version", &g.ID)
	require.NoError(t, err)
	assert.Equal(t, "second version", updated.Text)
	require.NotNil(t, updated.GroupID)
	assert.Equal(t, g.ID, *updated.GroupID)

	reloaded, err := GetPost(p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, reloaded.PubDate, "pub_date never changes after creation")
}

func TestUpdatePostValidation(t *testing.T) {
	setupTestDB(t)
	alice := mustUser(t, "alice")
	p := mustPost(t, alice, "fine", nil)

	_, err := UpdatePost(p.ID, alice, "", nil)
	assert.ErrorIs(t, err, ErrEmptyText)

	missing := uint64(999)
	_, err = UpdatePost(p.ID, alice, "fine", &missing)
	assert.ErrorIs(t, err, ErrUnknownGroup)

	_, err = UpdatePost(424242, alice, "fine", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePost(t *testing.T) {
	setupTestDB(t)
	alice := mustUser(t, "alice")
	bob := mustUser(t, "bob")
	p := mustPost(t, alice, "to be deleted", nil)

	assert.ErrorIs(t, DeletePost(p.ID, bob), ErrNotOwner)
	require.NoError(t, DeletePost(p.ID, alice))

	_, err := GetPost(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Repeated delete fails the same way, not with a crash.
	assert.ErrorIs(t, DeletePost(p.ID, alice), ErrNotFound)
}

func TestDeleteUserCascadesPosts(t *testing.T) {
	setupTestDB(t)
	alice := mustUser(t, "alice")
	bob := mustUser(t, "bob")
	mustPost(t, alice, "one", nil)
	mustPost(t, alice, "two", nil)
	keep := mustPost(t, bob, "bob's post", nil)

	require.NoError(t, DeleteUser(alice.ID))

	var count int64
	require.NoError(t, db.Instance.Model(&Post{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "only bob's post survives")

	_, err := GetPost(keep.ID)
	assert.NoError(t, err)
}
