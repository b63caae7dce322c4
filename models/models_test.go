package models

import (
	"path/filepath"
	"testing"

	"blog/config"
	"blog/db"
)

// setupTestDB points the global handle at a fresh SQLite database opened
// exactly as in production, so cascade and set-null constraints are covered.
func setupTestDB(t *testing.T) {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = filepath.Join(t.TempDir(), "test.db")
	db.Init()
	Init()
}

// setPubDate backdates a post, since the store stamps pub_date itself on
// creation.
func setPubDate(t *testing.T, postID uint64, ts int64) {
	t.Helper()
	if err := db.Instance.Model(&Post{}).Where("id = ?", postID).UpdateColumn("pub_date", ts).Error; err != nil {
		t.Fatalf("setPubDate: %v", err)
	}
}

func mustUser(t *testing.T, username string) User {
	t.Helper()
	u, err := CreateUser(username, "s3cret-"+username)
	if err != nil {
		t.Fatalf("CreateUser(%q): %v", username, err)
	}
	return u
}

func mustGroup(t *testing.T, title string) Group {
	t.Helper()
	g, err := CreateGroup(title, "", "")
	if err != nil {
		t.Fatalf("CreateGroup(%q): %v", title, err)
	}
	return g
}

func mustPost(t *testing.T, author User, text string, groupID *uint64) Post {
	t.Helper()
	p, err := CreatePost(author, text, groupID)
	if err != nil {
		t.Fatalf("CreatePost(%q): %v", text, err)
	}
	return p
}
