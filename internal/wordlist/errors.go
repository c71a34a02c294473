package wordlist

import (
	"errors"
	"fmt"
)

// Kind classifies a LoadError.
type Kind int

const (
	// KindHTTP means the server answered with a non-success status.
	KindHTTP Kind = iota + 1
	// KindFetch means the resource could not be retrieved at all.
	KindFetch
	// KindUnsupportedEnvironment means no decompressor is available.
	KindUnsupportedEnvironment
	// KindDecode means the payload could not be decompressed or split.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindFetch:
		return "fetch"
	case KindUnsupportedEnvironment:
		return "unsupported environment"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrNoDecompressor is wrapped by the LoadError returned when neither a
// streaming nor a fallback decompressor is configured.
var ErrNoDecompressor = errors.New("no decompressor available")

// ErrUnknownFormat is returned when a payload starts with no recognised magic.
var ErrUnknownFormat = errors.New("unrecognised compression format")

// LoadError reports why the word list could not be loaded.
type LoadError struct {
	Kind   Kind
	Status int // HTTP status for KindHTTP
	Err    error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("load word list: HTTP %d", e.Status)
	case KindUnsupportedEnvironment:
		return "load word list: no decompression support in this environment"
	}
	if e.Err == nil {
		return fmt.Sprintf("load word list: %s error", e.Kind)
	}
	return fmt.Sprintf("load word list: %s: %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a LoadError of the given kind.
func IsKind(err error, kind Kind) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == kind
}

func loadErr(kind Kind, format string, args ...any) *LoadError {
	return &LoadError{Kind: kind, Err: fmt.Errorf(format, args...)}
}
