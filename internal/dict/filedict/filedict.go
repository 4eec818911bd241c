package filedict

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/sagerenn/pospell/internal/dict"
)

// LoadDic reads a Hunspell/MySpell .dic file. Affix flags after "/" are
// dropped; the leading entry count is optional. The character set is taken
// from the SET line of the sibling .aff file when there is one.
func LoadDic(path string) (*dict.Words, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r, err := decoder(file, affixCharset(path))
	if err != nil {
		return nil, err
	}
	words := dict.NewWords(1024)
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words.Add(dicWord(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// dicWord strips flags and morphological fields: "colour/MS po:noun" -> "colour".
// A "\/" escape stands for a literal slash.
func dicWord(line string) string {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		line = line[:i]
	}
	for i := 0; i < len(line); i++ {
		if line[i] == '/' && (i == 0 || line[i-1] != '\\') {
			line = line[:i]
			break
		}
	}
	return strings.ReplaceAll(line, `\/`, "/")
}

// LoadText reads one word per line, ignoring blank lines and "#" comments.
func LoadText(path string) (*dict.Words, error) {
	return LoadTSV(path, "")
}

// LoadTSV reads the first column of a delimited headword file. An empty
// delimiter takes whole lines.
func LoadTSV(path, delimiter string) (*dict.Words, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words := dict.NewWords(1024)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if delimiter != "" {
			line, _, _ = strings.Cut(line, delimiter)
		}
		words.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func Load(path, typ string) (*dict.Words, error) {
	switch strings.ToLower(typ) {
	case "dic", "hunspell", "myspell":
		return LoadDic(path)
	case "txt", "text", "wordlist":
		return LoadText(path)
	case "tsv", "tab":
		return LoadTSV(path, "\t")
	case "":
		if strings.EqualFold(filepath.Ext(path), ".dic") {
			return LoadDic(path)
		}
		return LoadText(path)
	default:
		return nil, errors.New("unsupported dictionary type: " + typ)
	}
}

// MalformedError reports a word list line that cannot be used.
type MalformedError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

// ReadWordlist reads a supplementary word list: UTF-8, one word per line,
// blank lines and "#" comments ignored. Unlike LoadText it rejects the
// whole file on the first malformed line.
func ReadWordlist(path string) (*dict.Words, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readWordlist(path, file)
}

func readWordlist(path string, r io.Reader) (*dict.Words, error) {
	words := dict.NewWords(64)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		raw := scanner.Bytes()
		if n == 1 {
			raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
		}
		if !utf8.Valid(raw) {
			return nil, &MalformedError{Path: path, Line: n, Reason: "invalid UTF-8"}
		}
		line := strings.TrimSpace(string(raw))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.IndexFunc(line, unicode.IsControl) >= 0 {
			return nil, &MalformedError{Path: path, Line: n, Reason: "control character in word"}
		}
		words.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

func affixCharset(dicPath string) string {
	aff := strings.TrimSuffix(dicPath, filepath.Ext(dicPath)) + ".aff"
	file, err := os.Open(aff)
	if err != nil {
		return ""
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "SET" {
			return fields[1]
		}
	}
	return ""
}

// decoder wraps r to yield UTF-8 from the named charset. Unknown names and
// UTF-8 pass r through unchanged.
func decoder(r io.Reader, charset string) (io.Reader, error) {
	if charset == "" || strings.EqualFold(charset, "UTF-8") {
		return r, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
