package stardict

import (
	"os"
	"path/filepath"
	"strings"

	std "github.com/ianlewis/go-stardict"

	"github.com/sagerenn/pospell/internal/dict"
)

// Load collects the index headwords of the stardict dictionary described
// by ifoPath. Article data is never read.
func Load(ifoPath string) (*dict.Words, error) {
	sd, err := std.Open(ifoPath, nil)
	if err != nil {
		return nil, err
	}
	sc, err := sd.IndexScanner()
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	words := dict.NewWords(4096)
	for sc.Scan() {
		w := sc.Word()
		for _, f := range strings.Fields(w.Word) {
			words.Add(f)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Sources lists the files a stardict dictionary is read from: the .ifo
// and, when present, its index. Used to key cached word sets.
func Sources(ifoPath string) []string {
	paths := []string{ifoPath}
	if idxPath, err := findIdxPath(ifoPath); err == nil {
		paths = append(paths, idxPath)
	}
	return paths
}

func findIdxPath(ifoPath string) (string, error) {
	base := strings.TrimSuffix(ifoPath, filepath.Ext(ifoPath))
	ext := []string{
		".idx",
		".idx.gz",
		".idx.GZ",
		".idx.dz",
		".idx.DZ",
		".IDX",
		".IDX.gz",
		".IDX.GZ",
		".IDX.dz",
		".IDX.DZ",
	}
	for _, e := range ext {
		p := base + e
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", os.ErrNotExist
}
