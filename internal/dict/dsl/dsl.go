package dsl

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sagerenn/pospell/internal/dict"
)

// Load collects the headwords of an ABBYY Lingvo .dsl file. Card bodies
// (indented lines) are skipped. Multi-word headwords contribute each word.
func Load(path string) (*dict.Words, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// DSL sources are usually UTF-16 with a BOM; fall back to UTF-8.
	r := transform.NewReader(file, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	words := dict.NewWords(1024)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			continue
		}
		for _, w := range strings.Fields(headword(line)) {
			words.Add(w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// headword removes {unsorted parts} and backslash escapes.
func headword(line string) string {
	var b strings.Builder
	depth := 0
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
			if depth == 0 {
				b.WriteRune(r)
			}
		case r == '\\':
			escaped = true
		case r == '{':
			depth++
		case r == '}':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
