package wordlist

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// TextOptions controls how decompressed bytes become entries.
type TextOptions struct {
	Encoding  string // "utf-8" (default), "euc-jp" or "shift_jis"
	Normalize string // "" or "nfc"
}

// Decode converts raw bytes to text. Invalid sequences become U+FFFD and a
// leading UTF-8 byte order mark is dropped.
func Decode(raw []byte, opts TextOptions) (string, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", loadErr(KindDecode, "decode %s: %w", opts.Encoding, err)
	}
	return string(out), nil
}

// Split breaks text into trimmed, non-empty entries. Both "\n" and "\r\n"
// terminate a line; lines have no length limit.
func Split(text string, opts TextOptions) ([]string, error) {
	var words []string
	for raw := range strings.Lines(text) {
		// Trimming also drops the "\n" and any "\r" before it.
		line := strings.TrimFunc(raw, isTrimSpace)
		if line == "" {
			continue
		}
		if opts.Normalize == "nfc" {
			line = norm.NFC.String(line)
		}
		words = append(words, line)
	}
	return words, nil
}

// Parse decodes and splits raw bytes in one step.
func Parse(raw []byte, opts TextOptions) ([]string, error) {
	text, err := Decode(raw, opts)
	if err != nil {
		return nil, err
	}
	return Split(text, opts)
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return xunicode.UTF8BOM, nil
	case "euc-jp", "eucjp":
		return japanese.EUCJP, nil
	case "shift_jis", "shift-jis", "sjis":
		return japanese.ShiftJIS, nil
	default:
		return nil, loadErr(KindDecode, "unsupported text encoding %q", name)
	}
}

func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

