package db

import (
	"strings"

	"blog/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init opens the configured database. MySQL is used when MYSQL_DSN is set,
// SQLite otherwise. TranslateError lets callers match gorm.ErrDuplicatedKey
// instead of driver-specific errors.
func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else {
		dialector = sqlite.Open(sqliteDSN(config.SQLITE_FILE))
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}

// sqliteDSN enables foreign-key enforcement, which SQLite leaves off per
// connection by default. The cascade and set-null rules on posts depend on it.
func sqliteDSN(file string) string {
	if strings.Contains(file, "_foreign_keys=") {
		return file
	}
	if strings.Contains(file, "?") {
		return file + "&_foreign_keys=on"
	}
	return file + "?_foreign_keys=on"
}
