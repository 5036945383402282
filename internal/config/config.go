// Package config loads tsw settings from the environment.
//
// Values come from TSW_* environment variables, optionally seeded from a .env
// file in the working directory. Variables already set in the environment win
// over the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultURL       = "https://www.tournamentsoftware.com/sport"
	DefaultCookieURL = "https://www.tournamentsoftware.com/cookiewall/Save"
	DefaultLogLevel  = "INFO"
	DefaultTimeout   = 30 * time.Second
	DefaultWorkers   = 4
)

// Config holds the runtime settings.
type Config struct {
	URL       string
	CookieURL string
	LogLevel  string
	Timeout   time.Duration
	Workers   int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		URL:       DefaultURL,
		CookieURL: DefaultCookieURL,
		LogLevel:  DefaultLogLevel,
		Timeout:   DefaultTimeout,
		Workers:   DefaultWorkers,
	}
}

// Load reads the given .env files (".env" when none are given; a missing file
// is not an error) and then the environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("TSW_URL"); ok && v != "" {
		cfg.URL = strings.TrimRight(v, "/")
	}
	if v, ok := lookup("TSW_COOKIE_URL"); ok && v != "" {
		cfg.CookieURL = v
	}
	if v, ok := lookup("TSW_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("TSW_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing TSW_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v, ok := lookup("TSW_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid TSW_WORKERS: %q", v)
		}
		cfg.Workers = n
	}

	return cfg, nil
}
