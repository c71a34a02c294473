package wordlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source opens the raw (still compressed) word list.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// Ensure both sources implement Source at compile time.
var (
	_ Source = (*HTTPSource)(nil)
	_ Source = FileSource("")
)

// HTTPSource fetches the word list with a single GET relative to an origin.
type HTTPSource struct {
	url       *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultOrigin    = "http://127.0.0.1:8080"
	defaultUserAgent = "kotoba/0.1"
)

// NewHTTPSource resolves path against origin. A zero timeout leaves request
// timeouts to the network stack.
func NewHTTPSource(origin, path string, timeout time.Duration) (*HTTPSource, error) {
	base, err := parseOrigin(origin)
	if err != nil {
		return nil, err
	}
	rel, err := url.Parse(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("parse word list path %q: %w", path, err)
	}
	if rel.String() == "" {
		return nil, fmt.Errorf("word list path is empty")
	}
	return &HTTPSource{
		url: base.ResolveReference(rel),
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// URL returns the resolved resource URL.
func (s *HTTPSource) URL() string {
	return s.url.String()
}

func (s *HTTPSource) String() string {
	return s.url.String()
}

// Open issues the GET. Non-success responses become a KindHTTP LoadError.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if s == nil {
		return nil, fmt.Errorf("source is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url.String(), nil)
	if err != nil {
		return nil, loadErr(KindFetch, "create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, loadErr(KindFetch, "execute request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &LoadError{
			Kind:   KindHTTP,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("GET %s returned status %d", s.url.Redacted(), resp.StatusCode),
		}
	}
	return resp.Body, nil
}

// FileSource reads the word list from the local filesystem.
type FileSource string

func (f FileSource) String() string {
	return "file://" + string(f)
}

func (f FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, loadErr(KindFetch, "open %s: %w", string(f), err)
	}
	file, err := os.Open(string(f))
	if err != nil {
		return nil, loadErr(KindFetch, "open word list: %w", err)
	}
	return file, nil
}

func parseOrigin(origin string) (*url.URL, error) {
	trimmed := strings.TrimSpace(origin)
	if trimmed == "" {
		trimmed = defaultOrigin
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse origin %q: %w", origin, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse origin %q: missing host", origin)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
