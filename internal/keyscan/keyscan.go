// Package keyscan extracts Maps API keys from bulk text.
package keyscan

import (
	"io"
	"os"
	"regexp"
	"sort"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var extractPattern = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

// Extract scans text for key-shaped substrings and returns the
// distinct matches in lexicographic order. A match immediately
// followed by another key-alphabet character is part of an overlong
// run and is skipped rather than truncated to 35 characters. An empty
// result is not an error; the caller decides whether it is fatal.
func Extract(text string) []string {
	set := make(map[string]struct{})
	for _, m := range extractPattern.FindAllStringIndex(text, -1) {
		if m[1] < len(text) && isKeyByte(text[m[1]]) {
			continue
		}
		set[text[m[0]:m[1]]] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromFile reads path and extracts keys from its contents. Files with
// UTF-8 or UTF-16 byte order marks are decoded accordingly; malformed
// bytes in plain files are replaced rather than treated as fatal.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return nil, err
	}
	return Extract(string(text)), nil
}

func isKeyByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b == '_' || b == '-':
		return true
	}
	return false
}
