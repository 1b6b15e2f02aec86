package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string

	// BankDriver selects the question-bank source: file|dir|sqlite|postgres.
	BankDriver string
	// BankPath is the bank document or directory for the file/dir drivers.
	BankPath string
	// DBDSN is the connection string for the sql drivers.
	DBDSN string

	// StaticDir, when set, is served at / for the browser UI assets.
	StaticDir string

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:    addr,
		BankDriver:  envOr("BANK_DRIVER", "file"),
		BankPath:    envOr("BANK_PATH", "quiz_database.json"),
		DBDSN:       envOr("DB_DSN", ""),
		StaticDir:   envOr("STATIC_DIR", ""),
		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
