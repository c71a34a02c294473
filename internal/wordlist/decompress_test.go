package wordlist

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDecompressor string

func (s stubDecompressor) Name() string { return string(s) }

func (s stubDecompressor) Decompress(context.Context, io.Reader) ([]byte, error) {
	return []byte(s), nil
}

func TestCapabilitiesSelect(t *testing.T) {
	streaming := stubDecompressor("streaming")
	fallback := stubDecompressor("fallback")

	tests := []struct {
		name string
		caps Capabilities
		want string
	}{
		{"prefers streaming", Capabilities{Streaming: streaming, Fallback: fallback}, "streaming"},
		{"streaming only", Capabilities{Streaming: streaming}, "streaming"},
		{"falls back", Capabilities{Fallback: fallback}, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := tt.caps.Select()
			require.NoError(t, err)
			assert.Equal(t, tt.want, dec.Name())
		})
	}
}

func TestCapabilitiesSelect_NoneIsUnsupported(t *testing.T) {
	_, err := Capabilities{}.Select()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUnsupportedEnvironment))
	assert.ErrorIs(t, err, ErrNoDecompressor)
}

func TestStreamingDecompressor_Formats(t *testing.T) {
	const text = "あいうえお\nかきくけこ\n"
	tests := []struct {
		name    string
		payload []byte
	}{
		{"gzip", gzipBytes(t, text)},
		{"zstd", zstdBytes(t, text)},
		{"xz", xzBytes(t, text)},
		{"lz4", lz4Bytes(t, text)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ok := DetectFormat(tt.payload)
			require.True(t, ok)
			assert.Equal(t, tt.name, format)

			out, err := StreamingDecompressor{}.Decompress(context.Background(), bytes.NewReader(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, text, string(out))
		})
	}
}

func TestStreamingDecompressor_UnknownFormat(t *testing.T) {
	_, err := StreamingDecompressor{}.Decompress(context.Background(), bytes.NewReader([]byte("plain text\n")))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDecode))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestStreamingDecompressor_EmptyInput(t *testing.T) {
	_, err := StreamingDecompressor{}.Decompress(context.Background(), bytes.NewReader(nil))
	assert.True(t, IsKind(err, KindDecode))
}

func TestStreamingDecompressor_Truncated(t *testing.T) {
	payload := gzipBytes(t, "apple\nbanana\ngrape\n")
	_, err := StreamingDecompressor{}.Decompress(context.Background(), bytes.NewReader(payload[:len(payload)-6]))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDecode))
}

func TestStreamingDecompressor_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := StreamingDecompressor{}.Decompress(ctx, bytes.NewReader(gzipBytes(t, "apple\n")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestBufferedDecompressor(t *testing.T) {
	out, err := BufferedDecompressor{}.Decompress(context.Background(), bytes.NewReader(gzipBytes(t, "apple\r\napp\r\n")))
	require.NoError(t, err)
	assert.Equal(t, "apple\r\napp\r\n", string(out))
}

func TestBufferedDecompressor_RejectsNonGzip(t *testing.T) {
	_, err := BufferedDecompressor{}.Decompress(context.Background(), bytes.NewReader(zstdBytes(t, "apple\n")))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDecode))
}
