package models

import "blog/db"

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Group{})
	db.Instance.AutoMigrate(&Post{})
}
