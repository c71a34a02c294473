package search

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{"apple", "banana", "grape", "app"}

func TestSearch_PrefixScenario(t *testing.T) {
	for _, dialect := range []Dialect{DialectECMAScript, DialectRE2} {
		t.Run(string(dialect), func(t *testing.T) {
			res, err := NewMatcher(Options{Dialect: dialect}).Search(sample, "^app")
			require.NoError(t, err)
			assert.Equal(t, 2, res.Total)
			assert.Equal(t, []string{"apple", "app"}, res.Preview)
		})
	}
}

func TestSearch_UnanchoredSubstring(t *testing.T) {
	res, err := NewMatcher(Options{}).Search(sample, "an")
	require.NoError(t, err)
	assert.Equal(t, []string{"banana"}, res.Preview)
	assert.Equal(t, 1, res.Total)
}

func TestSearch_CaseSensitive(t *testing.T) {
	res, err := NewMatcher(Options{}).Search(sample, "APP")
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Preview)
}

func TestSearch_CapsPreviewButCountsAll(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = fmt.Sprintf("word%03d", i)
	}

	res, err := NewMatcher(Options{}).Search(words, ".")
	require.NoError(t, err)
	assert.Equal(t, 500, res.Total)
	require.Len(t, res.Preview, MaxResults)
	assert.Equal(t, words[:MaxResults], res.Preview)
}

func TestSearch_Invariants(t *testing.T) {
	words := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		words = append(words, strings.Repeat("あ", i%7)+fmt.Sprint(i))
	}
	patterns := []string{".", "あ", "^あ{3}", "1$", "[0-9]{3}", "^(?!あ)", "(あ)\\1", "zzz"}

	m := NewMatcher(Options{})
	for _, p := range patterns {
		res, err := m.Search(words, p)
		require.NoError(t, err, p)
		assert.LessOrEqual(t, len(res.Preview), MaxResults, p)
		assert.LessOrEqual(t, len(res.Preview), res.Total, p)

		again, err := m.Search(words, p)
		require.NoError(t, err, p)
		assert.Equal(t, res, again, "search should be idempotent for %q", p)
	}
}

func TestSearch_EmptyPattern(t *testing.T) {
	res, err := NewMatcher(Options{}).Search(sample, "")
	require.Error(t, err)

	var pe *PatternError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, ErrEmptyPattern)
	assert.Equal(t, Result{}, res)
}

func TestSearch_InvalidPattern(t *testing.T) {
	for _, dialect := range []Dialect{DialectECMAScript, DialectRE2} {
		t.Run(string(dialect), func(t *testing.T) {
			res, err := NewMatcher(Options{Dialect: dialect}).Search(sample, "(")
			require.Error(t, err)

			var pe *PatternError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "(", pe.Pattern)
			assert.NotEmpty(t, pe.Detail())
			assert.Contains(t, pe.Error(), pe.Detail())
			assert.Zero(t, res.Total)
			assert.Empty(t, res.Preview)
		})
	}
}

func TestSearch_DialectDifferences(t *testing.T) {
	words := []string{"aa", "ab", "bb"}

	res, err := NewMatcher(Options{Dialect: DialectECMAScript}).Search(words, `^(.)\1$`)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "bb"}, res.Preview)

	res, err = NewMatcher(Options{Dialect: DialectECMAScript}).Search(words, `^a(?!a)`)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, res.Preview)

	_, err = NewMatcher(Options{Dialect: DialectRE2}).Search(words, `^(.)\1$`)
	var pe *PatternError
	assert.ErrorAs(t, err, &pe)
}

type failingPattern struct{}

func (failingPattern) Match(string) (bool, error) { return false, errors.New("match timeout") }
func (failingPattern) String() string             { return "boom" }

func TestScan_MatchErrorStopsScan(t *testing.T) {
	_, err := Scan(sample, failingPattern{})
	var me *MatchError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "apple", me.Entry)
}

func TestSearch_MatchTimeoutIsApplied(t *testing.T) {
	m := NewMatcher(Options{MatchTimeout: 50 * time.Millisecond})
	p, err := m.Compile("^app")
	require.NoError(t, err)
	ep, ok := p.(ecmaPattern)
	require.True(t, ok)
	assert.Equal(t, 50*time.Millisecond, ep.re.MatchTimeout)
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect(" RE2 ")
	require.NoError(t, err)
	assert.Equal(t, DialectRE2, d)

	d, err = ParseDialect("")
	require.NoError(t, err)
	assert.Equal(t, DialectECMAScript, d)

	_, err = ParseDialect("pcre")
	assert.Error(t, err)
}
