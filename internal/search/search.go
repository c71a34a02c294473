package search

import (
	"errors"
	"fmt"
	"time"
)

// MaxResults caps Result.Preview.
const MaxResults = 200

// ErrEmptyPattern is wrapped by the PatternError for a blank pattern.
var ErrEmptyPattern = errors.New("pattern is empty")

// PatternError reports a pattern that is empty or does not compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	if errors.Is(e.Err, ErrEmptyPattern) {
		return e.Err.Error()
	}
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Detail returns the engine's message without the pattern.
func (e *PatternError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// MatchError reports an engine failure while testing an entry, such as a
// match timeout.
type MatchError struct {
	Entry string
	Err   error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("match %q: %v", e.Entry, e.Err)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

// Result is the outcome of one search.
type Result struct {
	Preview []string
	Total   int
}

// Shown returns the number of previewed entries.
func (r Result) Shown() int {
	return len(r.Preview)
}

// Matcher searches word lists with a fixed dialect.
type Matcher struct {
	dialect Dialect
	timeout time.Duration
}

// Options configure a Matcher.
type Options struct {
	Dialect      Dialect
	MatchTimeout time.Duration
}

// NewMatcher returns a Matcher. The zero Options select ECMAScript with no
// timeout.
func NewMatcher(opts Options) *Matcher {
	dialect := opts.Dialect
	if dialect == "" {
		dialect = DialectECMAScript
	}
	return &Matcher{dialect: dialect, timeout: opts.MatchTimeout}
}

// Dialect returns the matcher's engine.
func (m *Matcher) Dialect() Dialect {
	return m.dialect
}

// Compile validates pattern without scanning. An empty pattern is rejected
// before reaching the engine.
func (m *Matcher) Compile(pattern string) (Pattern, error) {
	if pattern == "" {
		return nil, &PatternError{Pattern: pattern, Err: ErrEmptyPattern}
	}
	p, err := compile(m.dialect, pattern, m.timeout)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return p, nil
}

// Search scans every entry in order. Total counts all matches; Preview holds
// the first MaxResults of them.
func (m *Matcher) Search(words []string, pattern string) (Result, error) {
	p, err := m.Compile(pattern)
	if err != nil {
		return Result{}, err
	}
	return Scan(words, p)
}

// Scan runs a compiled pattern over words.
func Scan(words []string, p Pattern) (Result, error) {
	res := Result{Preview: make([]string, 0, min(len(words), MaxResults))}
	for _, word := range words {
		ok, err := p.Match(word)
		if err != nil {
			return Result{}, &MatchError{Entry: word, Err: err}
		}
		if !ok {
			continue
		}
		res.Total++
		if len(res.Preview) < MaxResults {
			res.Preview = append(res.Preview, word)
		}
	}
	return res, nil
}
