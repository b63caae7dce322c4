package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blog/db"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	Username  string `gorm:"type:varchar(150);uniqueIndex"`
	Password  string `gorm:"type:varchar(100)"` // bcrypt hash
}

func CreateUser(username, plainTextPassword string) (u User, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.Username = username
	u.Password = string(hash)
	return u, db.Instance.Create(&u).Error
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	if db.Instance.First(&u, "username = ?", username).Error != nil {
		return User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) != nil {
		return User{}, false
	}
	return u, true
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

// DeleteUser removes the user row; the posts.author_id constraint cascades
// the deletion to all their posts.
func DeleteUser(id uint64) error {
	result := db.Instance.Delete(&User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
