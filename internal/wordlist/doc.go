// Package wordlist loads the compressed word list kotoba searches.
//
// # Pipeline
//
//	Source.Open ──→ Capabilities.Select ──→ Decompressor ──→ Decode ──→ Split
//	 (HTTP/file)     (streaming|fallback)    (bytes)          (text)    ([]string)
//
// A Loader runs the pipeline once per call. Every failure is a *LoadError
// whose Kind tells the caller what went wrong:
//
//   - KindHTTP: the origin answered with a non-2xx status (Status is set)
//   - KindFetch: the request or file open failed, or ctx was cancelled
//   - KindUnsupportedEnvironment: no decompressor is configured
//   - KindDecode: the payload is corrupt or in an unknown format
//
// # Decompression
//
// Capabilities holds two optional strategies. Select returns Streaming when
// present, otherwise Fallback, otherwise a KindUnsupportedEnvironment error.
// StreamingDecompressor sniffs the magic bytes and decodes gzip
// (klauspost/compress), zstd, xz and lz4 frames incrementally.
// BufferedDecompressor reads the full body and gunzips it synchronously; it
// is independent of the streaming implementation so either can be swapped
// out in tests.
//
// # Text
//
// The decompressed bytes are UTF-8 unless TextOptions.Encoding says
// otherwise. Lines end in "\n" or "\r\n"; each line is trimmed and blank
// lines are dropped. Entry order is preserved.
package wordlist
