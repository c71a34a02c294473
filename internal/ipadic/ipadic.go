package ipadic

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/japanese"
)

const (
	// WordsFile is the gzip word list written to the output directory.
	WordsFile = "words.txt.gz"
	// CopyingFile is the copied ipadic license.
	CopyingFile = "COPYING-ipadic.txt"
	// NoticeFile records where the data came from.
	NoticeFile = "NOTICE.txt"

	readingColumn = 11
)

// Options configure Build.
type Options struct {
	SourceDir string // mecab-ipadic checkout containing *.csv
	OutputDir string
	Revision  string // optional upstream revision for the notice
	Now       func() time.Time
}

// Build extracts hiragana readings from every CSV under SourceDir and writes
// the sorted, de-duplicated list to OutputDir. It returns the entry count.
func Build(ctx context.Context, opts Options) (int, error) {
	if strings.TrimSpace(opts.SourceDir) == "" {
		return 0, errors.New("source directory is required")
	}
	if strings.TrimSpace(opts.OutputDir) == "" {
		return 0, errors.New("output directory is required")
	}
	info, err := os.Stat(opts.SourceDir)
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("source %s is not a directory", opts.SourceDir)
	}

	words, err := ExtractWords(ctx, opts.SourceDir)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}
	if err := writeWordList(filepath.Join(opts.OutputDir, WordsFile), words); err != nil {
		return 0, err
	}
	if err := writeNotice(opts); err != nil {
		return 0, err
	}
	return len(words), nil
}

// ExtractWords reads every CSV under dir and returns the sorted set of
// normalized readings.
func ExtractWords(ctx context.Context, dir string) ([]string, error) {
	files, err := csvFiles(dir)
	if err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range files {
		g.Go(func() error {
			readings, err := readFile(gctx, path)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, r := range readings {
				seen[r] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	// Byte order of UTF-8 matches code point order.
	slices.Sort(words)
	log.Printf("ipadic extract: dir=%s files=%d entries=%d", dir, len(files), len(words))
	return words, nil
}

func csvFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".csv") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	slices.Sort(files)
	return files, nil
}

func readFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	readings, err := readRows(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return readings, nil
}

// readRows parses EUC-JP CSV rows and returns the normalized reading of each.
func readRows(ctx context.Context, r io.Reader) ([]string, error) {
	cr := csv.NewReader(japanese.EUCJP.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var readings []string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return readings, nil
		}
		if err != nil {
			return nil, err
		}
		if hira := Normalize(reading(row)); hira != "" {
			readings = append(readings, hira)
		}
	}
}

// reading picks the reading column, falling back to the surface form.
func reading(row []string) string {
	if len(row) > readingColumn && row[readingColumn] != "" {
		return strings.TrimSpace(row[readingColumn])
	}
	if len(row) > 0 {
		return strings.TrimSpace(row[0])
	}
	return ""
}

func writeWordList(path string, words []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create word list: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close word list: %w", cerr)
		}
	}()

	zw, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("init gzip: %w", err)
	}
	for _, w := range words {
		if _, err := io.WriteString(zw, w+"\n"); err != nil {
			return fmt.Errorf("write word list: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish word list: %w", err)
	}
	return nil
}

func writeNotice(opts Options) error {
	copied, err := copyLicense(opts.SourceDir, opts.OutputDir)
	if err != nil {
		return err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	var b strings.Builder
	b.WriteString("This project bundles word data derived from the IPA dictionary (mecab-ipadic).\n\n")
	fmt.Fprintf(&b, "Source directory: %s\n", opts.SourceDir)
	if rev := strings.TrimSpace(opts.Revision); rev != "" {
		fmt.Fprintf(&b, "Source revision: %s\n", rev)
	}
	fmt.Fprintf(&b, "Build timestamp (UTC): %s\n\n", now().UTC().Truncate(time.Second).Format(time.RFC3339))
	if copied {
		fmt.Fprintf(&b, "The redistributed data is governed by the license terms in %s.\n", CopyingFile)
	} else {
		b.WriteString("No COPYING file was found in the source directory.\n")
	}

	if err := os.WriteFile(filepath.Join(opts.OutputDir, NoticeFile), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write notice: %w", err)
	}
	return nil
}

func copyLicense(srcDir, outDir string) (bool, error) {
	src, err := os.Open(filepath.Join(srcDir, "COPYING"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open COPYING: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(outDir, CopyingFile))
	if err != nil {
		return false, fmt.Errorf("create %s: %w", CopyingFile, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return false, fmt.Errorf("copy COPYING: %w", err)
	}
	if err := dst.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", CopyingFile, err)
	}
	return true, nil
}
