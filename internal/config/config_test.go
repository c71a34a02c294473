package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Origin != defaultOrigin {
		t.Fatalf("Origin = %q, want %q", cfg.Origin, defaultOrigin)
	}
	if cfg.WordList != defaultWordList {
		t.Fatalf("WordList = %q, want %q", cfg.WordList, defaultWordList)
	}
	if cfg.Dialect != defaultDialect {
		t.Fatalf("Dialect = %q, want %q", cfg.Dialect, defaultDialect)
	}
	if cfg.Locale.String() != "en" {
		t.Fatalf("Locale = %q, want en", cfg.Locale)
	}
	if cfg.MatchTimeout != 0 || cfg.RequestTimeout != 0 {
		t.Fatalf("timeouts = %v/%v, want zero", cfg.MatchTimeout, cfg.RequestTimeout)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
origin = "  https://words.example.com  "
word_list = "  data/words.txt.gz "
dialect = " RE2 "
match_timeout = "250ms"
locale = "ja"
encoding = "EUC-JP"
normalize = "nfc"
request_timeout = "10s"
theme = "Kanagawa"
log_file = "~/.local/state/kotoba/kotoba.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Origin != "https://words.example.com" {
		t.Fatalf("Origin = %q", cfg.Origin)
	}
	if cfg.WordList != "data/words.txt.gz" {
		t.Fatalf("WordList = %q", cfg.WordList)
	}
	if cfg.Dialect != "re2" {
		t.Fatalf("Dialect = %q, want re2", cfg.Dialect)
	}
	if cfg.MatchTimeout != 250*time.Millisecond {
		t.Fatalf("MatchTimeout = %v", cfg.MatchTimeout)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.Locale.String() != "ja" {
		t.Fatalf("Locale = %q, want ja", cfg.Locale)
	}
	if cfg.Encoding != "euc-jp" || cfg.Normalize != "nfc" {
		t.Fatalf("Encoding/Normalize = %q/%q", cfg.Encoding, cfg.Normalize)
	}
	if cfg.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q", cfg.Theme)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
origin = "   "
word_list = ""
dialect = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Origin != defaultOrigin || cfg.WordList != defaultWordList || cfg.Dialect != defaultDialect {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `origin = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"dialect", `dialect = "pcre"`, "invalid dialect"},
		{"encoding", `encoding = "latin1"`, "invalid encoding"},
		{"normalize", `normalize = "nfkd"`, "invalid normalize"},
		{"locale", `locale = "not a locale!"`, "invalid locale"},
		{"duration", `match_timeout = "soon"`, "invalid match_timeout"},
		{"negative duration", `request_timeout = "-1s"`, "invalid request_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLocalWordList(t *testing.T) {
	tests := []struct {
		wordList  string
		wantLocal bool
		wantPath  string
	}{
		{"words.txt.gz", false, "words.txt.gz"},
		{"/srv/words.txt.gz", true, "/srv/words.txt.gz"},
		{"file:///srv/words.txt.gz", true, "/srv/words.txt.gz"},
	}
	for _, tt := range tests {
		cfg := Config{WordList: tt.wordList}
		if got := cfg.IsLocalWordList(); got != tt.wantLocal {
			t.Fatalf("IsLocalWordList(%q) = %v, want %v", tt.wordList, got, tt.wantLocal)
		}
		if got := cfg.LocalWordListPath(); got != tt.wantPath {
			t.Fatalf("LocalWordListPath(%q) = %q, want %q", tt.wordList, got, tt.wantPath)
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
