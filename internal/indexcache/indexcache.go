package indexcache

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
)

const currentVersion = 2

type sourceSig struct {
	Path  string
	Size  int64
	Mtime int64
}

type Index struct {
	Version int
	Sources []sourceSig
	Words   []string
}

// Store keeps parsed word sets on disk, keyed by their source files.
// A Store with an empty directory never hits and never writes.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Enabled() bool {
	return s != nil && s.dir != ""
}

func (s *Store) indexPath(primary string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(primary)))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:12])+".words.idx")
}

// Load returns the cached words for sources. ok is false when there is no
// entry or any source changed since it was written. sources[0] names the entry.
func (s *Store) Load(sources ...string) ([]string, bool, error) {
	if !s.Enabled() || len(sources) == 0 {
		return nil, false, nil
	}
	sigs, err := buildSourceSig(sources)
	if err != nil {
		return nil, false, err
	}
	f, err := os.Open(s.indexPath(sources[0]))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var idx Index
	if err := gob.NewDecoder(f).Decode(&idx); err != nil {
		return nil, false, err
	}
	if idx.Version != currentVersion || !sameSources(idx.Sources, sigs) {
		return nil, false, nil
	}
	return idx.Words, true, nil
}

func (s *Store) Save(words []string, sources ...string) error {
	if !s.Enabled() || len(sources) == 0 {
		return nil
	}
	sigs, err := buildSourceSig(sources)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	idxPath := s.indexPath(sources[0])
	tmp, err := os.CreateTemp(s.dir, filepath.Base(idxPath)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	idx := Index{Version: currentVersion, Sources: sigs, Words: words}
	if err := gob.NewEncoder(tmp).Encode(&idx); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, idxPath); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func buildSourceSig(paths []string) ([]sourceSig, error) {
	out := make([]sourceSig, 0, len(paths))
	for _, p := range paths {
		clean := filepath.Clean(p)
		info, err := os.Stat(clean)
		if err != nil {
			return nil, err
		}
		out = append(out, sourceSig{Path: clean, Size: info.Size(), Mtime: info.ModTime().UnixNano()})
	}
	return out, nil
}

func sameSources(a, b []sourceSig) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
