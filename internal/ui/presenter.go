package ui

import (
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/five82/kotoba/internal/search"
	"github.com/five82/kotoba/internal/state"
	"github.com/five82/kotoba/internal/wordlist"
)

// Variant classifies a status message.
type Variant int

const (
	VariantInfo Variant = iota
	VariantError
)

func (v Variant) String() string {
	if v == VariantError {
		return "error"
	}
	return "info"
}

// Status is the text shown in the status region.
type Status struct {
	Text    string
	Variant Variant
}

// ResultView is the rendered form of a search result.
type ResultView struct {
	Count string   // locale-formatted total
	Items []string // previewed entries in list order
	Note  string
	Total int
	Shown int
}

// RenderInstruction describes what the display should show after a submit.
// An ignored instruction carries nothing to render.
type RenderInstruction struct {
	Status  Status
	Result  ResultView
	Ignored bool
}

// Output describes the display for a session phase.
type Output struct {
	Phase        state.Phase
	Status       Status
	InputEnabled bool
	Focus        bool
	LoadedAt     time.Time // zero until ready
}

var defaultLocale = language.English

// Searcher runs a pattern over the loaded words.
type Searcher interface {
	Search(words []string, pattern string) (search.Result, error)
}

// Presenter owns the session state and turns it into display instructions.
// It has no terminal dependency so every transition can be asserted directly.
type Presenter struct {
	store    *state.Store
	searcher Searcher
	printer  *message.Printer
}

// NewPresenter returns a Presenter over store. Counts are formatted for locale.
func NewPresenter(store *state.Store, searcher Searcher, locale language.Tag) *Presenter {
	if store == nil {
		store = &state.Store{}
	}
	if searcher == nil {
		searcher = search.NewMatcher(search.Options{})
	}
	return &Presenter{
		store:    store,
		searcher: searcher,
		printer:  message.NewPrinter(locale),
	}
}

// Loading returns the initial output: input disabled while the list loads.
func (p *Presenter) Loading() Output {
	return Output{
		Phase:  state.PhaseLoading,
		Status: Status{Text: "Loading word list…", Variant: VariantInfo},
	}
}

// Loaded stores words and returns the ready output. A session that already
// settled keeps its current output.
func (p *Presenter) Loaded(words []string) Output {
	if err := p.store.MarkReady(words); err != nil {
		log.Printf("ignoring word list result: %v", err)
	}
	return p.Current()
}

// Failed records err and returns the terminal failure output.
func (p *Presenter) Failed(err error) Output {
	if markErr := p.store.MarkFailed(err); markErr != nil {
		log.Printf("ignoring load failure %v: %v", err, markErr)
	}
	return p.Current()
}

// Current returns the output for the store's present phase.
func (p *Presenter) Current() Output {
	snap := p.store.Snapshot()
	switch snap.Phase {
	case state.PhaseReady:
		return Output{
			Phase:        state.PhaseReady,
			Status:       Status{Text: p.printer.Sprintf("Ready: %d words loaded.", len(snap.Words)), Variant: VariantInfo},
			InputEnabled: true,
			Focus:        true,
			LoadedAt:     snap.LoadedAt,
		}
	case state.PhaseLoadFailed:
		return Output{
			Phase:  state.PhaseLoadFailed,
			Status: Status{Text: p.loadErrorText(snap.LoadErr), Variant: VariantError},
		}
	default:
		return p.Loading()
	}
}

// OnSubmit runs one submit cycle. Nothing happens unless the word list is ready.
func (p *Presenter) OnSubmit(pattern string) RenderInstruction {
	snap := p.store.Snapshot()
	if !snap.Ready() {
		return RenderInstruction{Ignored: true}
	}

	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return RenderInstruction{
			Status: Status{Text: "Enter a pattern to search.", Variant: VariantError},
			Result: p.RenderResult(search.Result{}),
		}
	}

	res, err := p.searcher.Search(snap.Words, pattern)
	if err != nil {
		return RenderInstruction{
			Status: Status{Text: searchErrorText(err), Variant: VariantError},
			Result: p.RenderResult(search.Result{}),
		}
	}
	return RenderInstruction{
		Status: Status{Text: "Results for /" + pattern + "/", Variant: VariantInfo},
		Result: p.RenderResult(res),
	}
}

// RenderResult formats res for display.
func (p *Presenter) RenderResult(res search.Result) ResultView {
	shown := res.Shown()
	view := ResultView{
		Count: p.printer.Sprintf("%d", res.Total),
		Items: append([]string(nil), res.Preview...),
		Total: res.Total,
		Shown: shown,
	}
	switch {
	case res.Total == 0:
		view.Note = "No hits."
	case res.Total <= shown:
		view.Note = "All hits shown."
	default:
		view.Note = p.printer.Sprintf("Showing first %d of %d.", shown, res.Total)
	}
	return view
}

func (p *Presenter) loadErrorText(err error) string {
	var loadErr *wordlist.LoadError
	if !errors.As(err, &loadErr) {
		if err == nil {
			return "Could not load the word list."
		}
		return "Could not load the word list: " + err.Error()
	}
	switch loadErr.Kind {
	case wordlist.KindHTTP:
		return p.printer.Sprintf("Could not load the word list (HTTP %d).", loadErr.Status)
	case wordlist.KindUnsupportedEnvironment:
		return "This environment cannot decompress the word list."
	case wordlist.KindDecode:
		return "The word list could not be decoded: " + errText(loadErr.Err)
	default:
		return "Could not load the word list: " + errText(loadErr.Err)
	}
}

func searchErrorText(err error) string {
	var patErr *search.PatternError
	if errors.As(err, &patErr) {
		if errors.Is(patErr, search.ErrEmptyPattern) {
			return "Enter a pattern to search."
		}
		return "Invalid pattern: " + patErr.Detail()
	}
	return "Search failed: " + err.Error()
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
