// Package suggest ranks a static suggestion corpus against the text the
// user is typing.
package suggest

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed suggestions.txt
var defaultCorpus string

// Max results returned by Filter.
const Max = 8

// Filter returns up to Max corpus entries matching the query,
// case-insensitively. Entries whose lowercase form starts with the
// query come first, then entries that merely contain it; source order
// is preserved within each tier. An empty (or all-space) query returns
// nothing.
func Filter(query string, corpus []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var starts, contains []string
	for _, s := range corpus {
		low := strings.ToLower(s)
		switch {
		case strings.HasPrefix(low, q):
			starts = append(starts, s)
		case strings.Contains(low, q):
			contains = append(contains, s)
		}
	}

	out := append(starts, contains...)
	if len(out) > Max {
		out = out[:Max]
	}
	return out
}

// Load reads a newline-delimited corpus: each line trimmed, blank lines
// discarded.
func Load(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return out, nil
}

// LoadFile loads a corpus file. When the file is missing the built-in
// corpus is used instead.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default is the corpus shipped with the binary.
func Default() []string {
	out, _ := Load(strings.NewReader(defaultCorpus))
	return out
}
