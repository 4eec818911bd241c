package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LocalesDir      string       `json:"locales_dir" toml:"locales_dir" yaml:"locales_dir"`
	DefaultLanguage string       `json:"default_language" toml:"default_language" yaml:"default_language"`
	WordlistDir     string       `json:"wordlist_dir" toml:"wordlist_dir" yaml:"wordlist_dir"`
	DictDirs        []string     `json:"dict_dirs" toml:"dict_dirs" yaml:"dict_dirs"`
	Dictionaries    []DictConfig `json:"dictionaries" toml:"dictionaries" yaml:"dictionaries"`
	CacheDir        string       `json:"cache_dir" toml:"cache_dir" yaml:"cache_dir"`
	CacheSize       int          `json:"cache_size" toml:"cache_size" yaml:"cache_size"`
	NoFail          []string     `json:"no_fail" toml:"no_fail" yaml:"no_fail"`
	Phrases         []string     `json:"phrases" toml:"phrases" yaml:"phrases"`
	EdgecaseWords   []string     `json:"edgecase_words" toml:"edgecase_words" yaml:"edgecase_words"`
	Chunkers        []string     `json:"chunkers" toml:"chunkers" yaml:"chunkers"`
	Filters         []string     `json:"filters" toml:"filters" yaml:"filters"`
	Patterns        []string     `json:"patterns" toml:"patterns" yaml:"patterns"`
	Exclude         []string     `json:"exclude" toml:"exclude" yaml:"exclude"`
	Format          string       `json:"format" toml:"format" yaml:"format"`
	Log             LogConfig    `json:"log" toml:"log" yaml:"log"`
}

type LogConfig struct {
	Level  string `json:"level" toml:"level" yaml:"level"`
	Format string `json:"format" toml:"format" yaml:"format"`
}

// DictConfig registers a dictionary file for a language explicitly.
// Type is inferred from the extension when empty.
type DictConfig struct {
	Lang string `json:"lang" toml:"lang" yaml:"lang"`
	Type string `json:"type" toml:"type" yaml:"type"`
	Path string `json:"path" toml:"path" yaml:"path"`
}

func Default() Config {
	return Config{
		LocalesDir: "locales",
		DictDirs: []string{
			"/usr/share/hunspell",
			"/usr/share/myspell/dicts",
		},
		CacheSize: 8,
		Chunkers:  []string{"text"},
		Filters:   []string{"url", "email", "placeholder"},
		Format:    "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads the file at path, decoding by extension (.json, .toml, .yaml, .yml).
// Fields absent from the file keep their Default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format: %q", filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.expand(); err != nil {
		return cfg, err
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 8
	}
	if len(cfg.Chunkers) == 0 {
		cfg.Chunkers = []string{"text"}
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns Default when path does not exist.
func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		return cfg, cfg.expand()
	}
	return Load(path)
}

func (c *Config) expand() error {
	var err error
	if c.LocalesDir, err = homedir.Expand(c.LocalesDir); err != nil {
		return err
	}
	if c.WordlistDir, err = homedir.Expand(c.WordlistDir); err != nil {
		return err
	}
	if c.CacheDir, err = homedir.Expand(c.CacheDir); err != nil {
		return err
	}
	for i, d := range c.DictDirs {
		if c.DictDirs[i], err = homedir.Expand(d); err != nil {
			return err
		}
	}
	for i, d := range c.Dictionaries {
		if c.Dictionaries[i].Path, err = homedir.Expand(d.Path); err != nil {
			return err
		}
	}
	return nil
}

// NoFailLanguage reports whether misspellings in tag are reported without failing the run.
func (c Config) NoFailLanguage(tag string) bool {
	for _, l := range c.NoFail {
		if l == tag {
			return true
		}
	}
	return false
}
