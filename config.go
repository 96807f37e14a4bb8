package main

import (
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"

	// loads .env from the working directory, if present
	_ "github.com/joho/godotenv/autoload"
)

// Config config.
type Config struct {
	Addr string
	DB   DBConfig
	Logs LogConfig
}

// DBConfig selects the gorm dialect. DSN overrides the dialect default.
type DBConfig struct {
	Driver   string
	Database string
	DSN      string
}

// LogConfig LogConfig.
type LogConfig struct {
	Style string
	Level string
}

func getenv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func loadConfig() Config {
	return Config{
		Addr: getenv("NCHESS_ADDR", ":8080"),
		DB: DBConfig{
			Driver:   strings.ToLower(getenv("NCHESS_DB_DRIVER", "postgres")),
			Database: getenv("PGDATABASE", "test"),
			DSN:      os.Getenv("NCHESS_DSN"),
		},
		Logs: LogConfig{
			Style: getenv("LOG_STYLE", "text"),
			Level: getenv("LOG_LEVEL", "info"),
		},
	}
}

func (cfg LogConfig) setup() {
	switch strings.ToLower(cfg.Style) {
	case "json":
		log.SetHandler(json.New(os.Stderr))
	case "cli":
		log.SetHandler(cli.New(os.Stderr))
	default:
		log.SetHandler(text.New(os.Stderr))
	}
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		log.WithError(err).WithField("level", cfg.Level).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
