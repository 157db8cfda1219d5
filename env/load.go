// Package env reads the configuration of the namedcolor binaries from the
// environment and sets up the global logger.
package env

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/wbrown/namedcolor"
)

const (
	TimeFormat = "20060102-150405.000"
	prefix     = "NAMEDCOLOR_"
)

// Config holds every setting the binaries read from the environment.
type Config struct {
	Mode      string
	Palette   string
	Locale    string
	Capacity  int
	CacheSize int
	Port      string
	LogLevel  int
	LogFile   string
	LogStdout bool
}

func getenvOr(key, fallback string) string {
	value := os.Getenv(prefix + key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func getenvIntOr(key string, fallback int) int {
	raw := os.Getenv(prefix + key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("context", "init").Str("key", prefix+key).Str("value", raw).Msg("invalid_int_ignored")
		return fallback
	}
	return value
}

// Load reads the configuration. In DEV mode a .env file (or the file named
// by NAMEDCOLOR_ENV_FILE) is loaded first; variables already set in the
// environment win over the file.
func Load() Config {
	mode := getenvOr("MODE", "PROD")
	if mode == "DEV" {
		envFile := getenvOr("ENV_FILE", ".env")
		if err := godotenv.Load(envFile); err != nil {
			log.Warn().Str("context", "init").Err(err).Str("file", envFile).Msg("env_file_not_loaded")
		}
	}

	return Config{
		Mode:      mode,
		Palette:   getenvOr("PALETTE", ""),
		Locale:    getenvOr("LOCALE", "en"),
		Capacity:  getenvIntOr("CAPACITY", namedcolor.DefaultCapacity),
		CacheSize: getenvIntOr("CACHE_SIZE", namedcolor.DefaultCacheSize),
		Port:      getenvOr("PORT", "8100"),
		LogLevel:  getenvIntOr("LOG_LEVEL", 2),
		LogFile:   getenvOr("LOG_FILE", ""),
		LogStdout: strings.ToLower(getenvOr("LOG_STDOUT", "true")) == "true",
	}
}

// LoadPalette loads the configured palette: an explicit palette name or
// path when set, the locale's embedded palette otherwise.
func (c Config) LoadPalette() ([]namedcolor.Point, error) {
	if c.Palette != "" {
		return namedcolor.LoadPalette(c.Palette)
	}
	return namedcolor.LoadLocale(c.Locale)
}
