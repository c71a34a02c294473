package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Config captures the settings kotoba needs to load and search a word list.
type Config struct {
	Origin         string
	WordList       string
	Dialect        string
	MatchTimeout   time.Duration
	Locale         language.Tag
	Encoding       string
	Normalize      string
	RequestTimeout time.Duration
	Theme          string
	LogFile        string
}

const (
	defaultConfigPath = "~/.config/kotoba/config.toml"
	defaultOrigin     = "http://127.0.0.1:8080"
	defaultWordList   = "words.txt.gz"
	defaultDialect    = "ecmascript"
	defaultLocale     = "en"
	defaultEncoding   = "utf-8"
	defaultTheme      = "Nightfox"
)

var (
	dialects   = []string{"ecmascript", "re2"}
	encodings  = []string{"utf-8", "euc-jp", "shift_jis"}
	normalizes = []string{"", "nfc"}
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Origin:   defaultOrigin,
		WordList: defaultWordList,
		Dialect:  defaultDialect,
		Locale:   language.English,
		Encoding: defaultEncoding,
		Theme:    defaultTheme,
	}
}

// Load locates and parses the kotoba config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Origin         string `toml:"origin"`
		WordList       string `toml:"word_list"`
		Dialect        string `toml:"dialect"`
		MatchTimeout   string `toml:"match_timeout"`
		Locale         string `toml:"locale"`
		Encoding       string `toml:"encoding"`
		Normalize      string `toml:"normalize"`
		RequestTimeout string `toml:"request_timeout"`
		Theme          string `toml:"theme"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Origin = orDefault(raw.Origin, defaultOrigin)
	cfg.WordList = orDefault(raw.WordList, defaultWordList)
	if strings.HasPrefix(cfg.WordList, "~") {
		cfg.WordList = mustExpand(cfg.WordList)
	}
	cfg.Theme = orDefault(raw.Theme, defaultTheme)

	cfg.Dialect = strings.ToLower(orDefault(raw.Dialect, defaultDialect))
	if !contains(dialects, cfg.Dialect) {
		return Config{}, fmt.Errorf("invalid dialect %q (want one of %s)", raw.Dialect, strings.Join(dialects, ", "))
	}
	cfg.Encoding = strings.ToLower(orDefault(raw.Encoding, defaultEncoding))
	if !contains(encodings, cfg.Encoding) {
		return Config{}, fmt.Errorf("invalid encoding %q (want one of %s)", raw.Encoding, strings.Join(encodings, ", "))
	}
	cfg.Normalize = strings.ToLower(strings.TrimSpace(raw.Normalize))
	if !contains(normalizes, cfg.Normalize) {
		return Config{}, fmt.Errorf("invalid normalize %q (want nfc or empty)", raw.Normalize)
	}

	tag, err := language.Parse(orDefault(raw.Locale, defaultLocale))
	if err != nil {
		return Config{}, fmt.Errorf("invalid locale %q: %w", raw.Locale, err)
	}
	cfg.Locale = tag

	if cfg.MatchTimeout, err = parseDuration("match_timeout", raw.MatchTimeout); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout); err != nil {
		return Config{}, err
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

// IsLocalWordList reports whether the word list refers to a file rather than
// a path under the origin.
func (c Config) IsLocalWordList() bool {
	wl := strings.TrimSpace(c.WordList)
	return strings.HasPrefix(wl, "file://") || filepath.IsAbs(wl)
}

// LocalWordListPath returns the filesystem path of a local word list.
func (c Config) LocalWordListPath() string {
	return strings.TrimPrefix(strings.TrimSpace(c.WordList), "file://")
}

func parseDuration(key, value string) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, value)
	}
	return d, nil
}

func orDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
