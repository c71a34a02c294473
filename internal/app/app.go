package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/kotoba/internal/config"
	"github.com/five82/kotoba/internal/search"
	"github.com/five82/kotoba/internal/state"
	"github.com/five82/kotoba/internal/ui"
	"github.com/five82/kotoba/internal/wordlist"
)

// ErrSearchFailed is returned by Query when the pattern was rejected or the
// search could not complete. The reason has already been written out.
var ErrSearchFailed = errors.New("search failed")

// Options configure the kotoba application.
type Options struct {
	ConfigPath string
	LogPath    string // overrides log_file from the config
}

// Run boots the kotoba TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := redirectLog(logPath(cfg, opts))
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Loader:    s.loader,
		Presenter: s.presenter,
		ThemeName: cfg.Theme,
		Source:    s.source.String(),
	})
}

// Query loads the word list, runs one search and writes the result to w as
// plain text. Logs stay on stderr unless a log file is configured.
func Query(ctx context.Context, opts Options, pattern string, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if path := logPath(cfg, opts); path != "" {
		closeLog, err := redirectLog(path)
		if err != nil {
			return err
		}
		defer closeLog()
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	words, err := s.loader.Load(ctx)
	if err != nil {
		out := s.presenter.Failed(err)
		return fmt.Errorf("%s: %w", out.Status.Text, err)
	}
	s.presenter.Loaded(words)

	instr := s.presenter.OnSubmit(pattern)
	if err := ui.WritePlain(w, instr); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if instr.Status.Variant == ui.VariantError {
		return ErrSearchFailed
	}
	return nil
}

// session holds the pieces one run needs.
type session struct {
	source    wordlist.Source
	loader    *wordlist.Loader
	presenter *ui.Presenter
}

func newSession(cfg config.Config) (*session, error) {
	source, err := newSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("init word list source: %w", err)
	}

	loader, err := wordlist.New(wordlist.Options{
		Source:       source,
		Capabilities: wordlist.DefaultCapabilities(),
		Text: wordlist.TextOptions{
			Encoding:  cfg.Encoding,
			Normalize: cfg.Normalize,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("init word list loader: %w", err)
	}

	dialect, err := search.ParseDialect(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	matcher := search.NewMatcher(search.Options{
		Dialect:      dialect,
		MatchTimeout: cfg.MatchTimeout,
	})

	return &session{
		source:    source,
		loader:    loader,
		presenter: ui.NewPresenter(&state.Store{}, matcher, cfg.Locale),
	}, nil
}

func newSource(cfg config.Config) (wordlist.Source, error) {
	if cfg.IsLocalWordList() {
		return wordlist.FileSource(cfg.LocalWordListPath()), nil
	}
	return wordlist.NewHTTPSource(cfg.Origin, cfg.WordList, cfg.RequestTimeout)
}

func logPath(cfg config.Config, opts Options) string {
	if opts.LogPath != "" {
		return opts.LogPath
	}
	return cfg.LogFile
}

// redirectLog sends the standard logger to path, or discards it when path is
// empty so nothing is written over the alternate screen.
func redirectLog(path string) (func(), error) {
	prevOut, prevFlags, prevPrefix := log.Writer(), log.Flags(), log.Prefix()
	restore := func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "kotoba")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		_ = f.Close()
		restore()
	}, nil
}
