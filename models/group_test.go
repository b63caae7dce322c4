package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/db"
)

func TestCreateGroupDerivesSlug(t *testing.T) {
	setupTestDB(t)

	g, err := CreateGroup("Тестовая группа", "", "a group for tests")
	require.NoError(t, err)
	assert.Equal(t, "testovaia-gruppa", g.Slug)
	assert.NotZero(t, g.ID)
}

func TestCreateGroupExplicitSlugUsedVerbatim(t *testing.T) {
	setupTestDB(t)

	g, err := CreateGroup("Какое-то название", "my-own-slug", "")
	require.NoError(t, err)
	assert.Equal(t, "my-own-slug", g.Slug)
}

func TestCreateGroupDuplicateSlug(t *testing.T) {
	setupTestDB(t)

	_, err := CreateGroup("Тестовая группа", "", "first")
	require.NoError(t, err)

	// Same transliterated slug, different title casing.
	_, err = CreateGroup("ТЕСТОВАЯ ГРУППА", "", "second")
	var taken SlugTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, "testovaia-gruppa", taken.Slug)

	var count int64
	require.NoError(t, db.Instance.Model(&Group{}).Where("slug = ?", "testovaia-gruppa").Count(&count).Error)
	assert.EqualValues(t, 1, count, "exactly one group with the slug survives")
}

func TestInsertGroupTranslatesDuplicateKey(t *testing.T) {
	setupTestDB(t)

	_, err := CreateGroup("Тестовая группа", "", "first")
	require.NoError(t, err)

	// A concurrent creation that slipped past the existence check ends up
	// here: the store rejects the row and the constraint violation comes
	// back as the same SlugTakenError.
	err = insertGroup(&Group{Title: "Тестовая группа", Slug: "testovaia-gruppa"})
	var taken SlugTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, "testovaia-gruppa", taken.Slug)

	var count int64
	require.NoError(t, db.Instance.Model(&Group{}).Where("slug = ?", "testovaia-gruppa").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGroupBySlug(t *testing.T) {
	setupTestDB(t)

	created := mustGroup(t, "Заметки")
	g, err := GroupBySlug(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, g.ID)

	_, err = GroupBySlug("does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteGroupNullsPostReferences(t *testing.T) {
	setupTestDB(t)

	author := mustUser(t, "alice")
	g := mustGroup(t, "Temporary")
	p := mustPost(t, author, "post in a doomed group", &g.ID)

	require.NoError(t, DeleteGroup(g.ID))

	reloaded, err := GetPost(p.ID)
	require.NoError(t, err, "post survives group deletion")
	assert.Nil(t, reloaded.GroupID, "group reference is nulled")

	assert.ErrorIs(t, DeleteGroup(g.ID), ErrNotFound)
}
