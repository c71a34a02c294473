package wordlist

import (
	"bufio"
	"bytes"
	stdgzip "compress/gzip"
	"context"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Decompressor turns a compressed word list into raw text bytes.
type Decompressor interface {
	Name() string
	Decompress(ctx context.Context, r io.Reader) ([]byte, error)
}

// Capabilities lists the decompressors available to the loader. Select
// prefers Streaming and falls back to Fallback.
type Capabilities struct {
	Streaming Decompressor
	Fallback  Decompressor
}

// DefaultCapabilities returns both built-in strategies.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Streaming: StreamingDecompressor{},
		Fallback:  BufferedDecompressor{},
	}
}

// Select picks the decompressor to use, or fails with a
// KindUnsupportedEnvironment LoadError when none is configured.
func (c Capabilities) Select() (Decompressor, error) {
	if c.Streaming != nil {
		return c.Streaming, nil
	}
	if c.Fallback != nil {
		return c.Fallback, nil
	}
	return nil, &LoadError{Kind: KindUnsupportedEnvironment, Err: ErrNoDecompressor}
}

type codec struct {
	name  string
	magic []byte
	open  func(io.Reader) (io.ReadCloser, error)
}

var codecs = []codec{
	{
		name:  "gzip",
		magic: []byte{0x1f, 0x8b},
		open: func(r io.Reader) (io.ReadCloser, error) {
			zr, err := gzip.NewReader(r)
			if err != nil {
				return nil, err
			}
			return zr, nil
		},
	},
	{
		name:  "zstd",
		magic: []byte{0x28, 0xb5, 0x2f, 0xfd},
		open: func(r io.Reader) (io.ReadCloser, error) {
			dec, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return dec.IOReadCloser(), nil
		},
	},
	{
		name:  "xz",
		magic: []byte{0xfd, '7', 'z', 'X', 'Z', 0x00},
		open: func(r io.Reader) (io.ReadCloser, error) {
			xr, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(xr), nil
		},
	},
	{
		name:  "lz4",
		magic: []byte{0x04, 0x22, 0x4d, 0x18},
		open: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		},
	},
}

const maxMagic = 6

// DetectFormat returns the codec name for the leading bytes of a payload.
func DetectFormat(head []byte) (string, bool) {
	c, ok := detect(head)
	if !ok {
		return "", false
	}
	return c.name, true
}

func detect(head []byte) (codec, bool) {
	for _, c := range codecs {
		if bytes.HasPrefix(head, c.magic) {
			return c, true
		}
	}
	return codec{}, false
}

// StreamingDecompressor decodes incrementally, checking ctx between reads.
// It recognises gzip, zstd, xz and lz4 frames by their magic bytes.
type StreamingDecompressor struct{}

func (StreamingDecompressor) Name() string { return "streaming" }

func (StreamingDecompressor) Decompress(ctx context.Context, r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(maxMagic)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, loadErr(KindDecode, "read header: %w", err)
	}
	c, ok := detect(head)
	if !ok {
		return nil, &LoadError{Kind: KindDecode, Err: ErrUnknownFormat}
	}

	dr, err := c.open(br)
	if err != nil {
		return nil, loadErr(KindDecode, "open %s stream: %w", c.name, err)
	}
	defer func() { _ = dr.Close() }()

	var out bytes.Buffer
	if _, err := io.Copy(&out, &ctxReader{ctx: ctx, r: dr}); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, loadErr(KindFetch, "%s stream: %w", c.name, ctxErr)
		}
		return nil, loadErr(KindDecode, "%s stream: %w", c.name, err)
	}
	return out.Bytes(), nil
}

// BufferedDecompressor reads the whole payload and gunzips it in one call.
// It only understands gzip.
type BufferedDecompressor struct{}

func (BufferedDecompressor) Name() string { return "buffered gzip" }

func (BufferedDecompressor) Decompress(ctx context.Context, r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(&ctxReader{ctx: ctx, r: r})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, loadErr(KindFetch, "read body: %w", ctxErr)
		}
		return nil, loadErr(KindFetch, "read body: %w", err)
	}
	return gunzip(raw)
}

func gunzip(raw []byte) ([]byte, error) {
	zr, err := stdgzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, loadErr(KindDecode, "gunzip: %w", err)
	}
	defer func() { _ = zr.Close() }()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, loadErr(KindDecode, "gunzip: %w", err)
	}
	return out, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
