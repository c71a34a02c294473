package wordlist

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Options configure a Loader.
type Options struct {
	Source       Source
	Capabilities Capabilities
	Text         TextOptions
}

// Loader fetches, decompresses and splits the word list.
type Loader struct {
	source Source
	caps   Capabilities
	text   TextOptions
}

// New builds a Loader. Source is required; Capabilities may be empty, in
// which case every Load fails with KindUnsupportedEnvironment.
func New(opts Options) (*Loader, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("word list source is required")
	}
	if _, err := lookupEncoding(opts.Text.Encoding); err != nil {
		return nil, err
	}
	return &Loader{
		source: opts.Source,
		caps:   opts.Capabilities,
		text:   opts.Text,
	}, nil
}

// Load returns the word list. Errors are always *LoadError.
func (l *Loader) Load(ctx context.Context) ([]string, error) {
	started := time.Now()

	body, err := l.source.Open(ctx)
	if err != nil {
		return nil, asLoadError(err)
	}
	defer func() { _ = body.Close() }()

	dec, err := l.caps.Select()
	if err != nil {
		return nil, err
	}

	raw, err := dec.Decompress(ctx, body)
	if err != nil {
		return nil, asLoadError(err)
	}

	words, err := Parse(raw, l.text)
	if err != nil {
		return nil, asLoadError(err)
	}

	log.Printf("word list loaded: source=%s decompressor=%q bytes=%d entries=%d elapsed=%s",
		l.source, dec.Name(), len(raw), len(words), time.Since(started).Round(time.Millisecond))
	return words, nil
}

func asLoadError(err error) error {
	if _, ok := err.(*LoadError); ok {
		return err
	}
	return &LoadError{Kind: KindFetch, Err: err}
}
