package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	LogMode         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads CART_* variables, after loading envFiles (default ".env") when present.
// Variables already set in the environment win over the files.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("godotenv.Load[%s]: %w", f, err)
		}
	}

	cfg := Config{
		HTTPAddr:        getenv("CART_HTTP_ADDR", ":4567"),
		LogMode:         getenv("CART_LOG_MODE", "dev"),
		ReadTimeout:     parseDuration(getenv("CART_READ_TIMEOUT", "5s"), 5*time.Second),
		WriteTimeout:    parseDuration(getenv("CART_WRITE_TIMEOUT", "10s"), 10*time.Second),
		ShutdownTimeout: parseDuration(getenv("CART_SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
