package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	MYSQL_DSN    = ""        // MySQL will be used if this is set
	SQLITE_FILE  = "blog.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS = "0.0.0.0:8080"
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	SESSION_KEY  = "change-me-in-production"
	TEMPLATES    = "templates/*.tmpl"
	PAGE_SIZE    = 10 // posts per feed page
	DEBUG_MODE   = true
)

func init() {
	_ = godotenv.Load()
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("TEMPLATES", &TEMPLATES)
	readEnvInt("PAGE_SIZE", &PAGE_SIZE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
