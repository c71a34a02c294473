package search

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Dialect selects the regular expression engine.
type Dialect string

const (
	// DialectECMAScript follows JavaScript RegExp semantics with no flags:
	// case-sensitive, single-line, backreferences and lookaround allowed.
	DialectECMAScript Dialect = "ecmascript"
	// DialectRE2 uses Go's linear-time regexp package.
	DialectRE2 Dialect = "re2"
)

// ParseDialect maps a config value to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(name))) {
	case "", DialectECMAScript:
		return DialectECMAScript, nil
	case DialectRE2:
		return DialectRE2, nil
	default:
		return "", fmt.Errorf("unknown regex dialect %q", name)
	}
}

// Pattern is a compiled expression.
type Pattern interface {
	Match(s string) (bool, error)
	String() string
}

type ecmaPattern struct {
	re *regexp2.Regexp
}

func (p ecmaPattern) Match(s string) (bool, error) {
	return p.re.MatchString(s)
}

func (p ecmaPattern) String() string {
	return p.re.String()
}

type re2Pattern struct {
	re *regexp.Regexp
}

func (p re2Pattern) Match(s string) (bool, error) {
	return p.re.MatchString(s), nil
}

func (p re2Pattern) String() string {
	return p.re.String()
}

// compile builds a Pattern. A positive timeout bounds each match attempt on
// the backtracking engine.
func compile(dialect Dialect, expr string, timeout time.Duration) (Pattern, error) {
	switch dialect {
	case DialectRE2:
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, err
		}
		return re2Pattern{re: re}, nil
	default:
		re, err := regexp2.Compile(expr, regexp2.ECMAScript)
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			re.MatchTimeout = timeout
		}
		return ecmaPattern{re: re}, nil
	}
}
