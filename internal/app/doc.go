// Package app is the composition root for kotoba.
//
// It loads the configuration, picks the word-list source (HTTP relative to the
// origin, or a local file), builds the loader, matcher and presenter, and hands
// them to the terminal UI. Query runs the same pipeline without a terminal:
// one load, one submit, plain-text output.
//
//	config.Load()
//	  ├─> wordlist.NewHTTPSource() / wordlist.FileSource
//	  ├─> wordlist.New()        fetch, decompress, decode, split
//	  ├─> search.NewMatcher()   regex dialect
//	  ├─> ui.NewPresenter()     state.Store + matcher
//	  └─> ui.Run()              TUI (blocks)
//
// While the TUI owns the terminal the standard logger goes to log_file (or
// --log), or is discarded when neither is set.
package app
