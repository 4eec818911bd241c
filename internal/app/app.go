// Package app assembles the checking pipeline from configuration.
package app

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/sagerenn/pospell/internal/config"
	"github.com/sagerenn/pospell/internal/dict/backend"
	"github.com/sagerenn/pospell/internal/dict/loader"
	"github.com/sagerenn/pospell/internal/dict/registry"
	"github.com/sagerenn/pospell/internal/indexcache"
	"github.com/sagerenn/pospell/internal/lang"
	"github.com/sagerenn/pospell/internal/observability"
	"github.com/sagerenn/pospell/internal/project"
	"github.com/sagerenn/pospell/internal/service"
	"github.com/sagerenn/pospell/internal/session"
	"github.com/sagerenn/pospell/internal/spell"
	"github.com/sagerenn/pospell/internal/wordlist"
)

type App struct {
	cfg config.Config
	reg *registry.Registry
	svc *service.Service
	log *observability.Logger
}

// New registers the configured dictionaries and builds the service.
// Dictionary registration problems are logged and skipped.
func New(cfg config.Config, log *observability.Logger) (*App, error) {
	if log == nil {
		log = observability.Discard()
	}
	res := loader.LoadAll(cfg)
	for _, e := range res.Errs {
		log.Error("dictionary load error", "error", e)
	}
	reg := registry.New()
	if err := reg.MustAddAll(res.Sources); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	log.Debug("dictionaries registered", "count", humanize.Comma(int64(len(res.Sources))))

	opts, err := spell.BuildOptions(cfg.Chunkers, cfg.Filters, cfg.Patterns, cfg.Phrases, cfg.EdgecaseWords)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = lang.Detect("en")
	}

	b := backend.New(reg, cfg.CacheSize, indexcache.New(cfg.CacheDir), log)
	svc := service.New(
		lang.NewResolver(reg, log),
		wordlist.NewLocator(cfg.WordlistDir, log),
		session.NewFactory(b, opts, log),
		log,
	)
	return &App{cfg: cfg, reg: reg, svc: svc, log: log}, nil
}

func (a *App) Config() config.Config {
	return a.cfg
}

// Sources lists the registered dictionaries, one per language.
func (a *App) Sources() []registry.Source {
	return a.reg.List()
}

// Check checks the catalogs named by paths. Directories are searched for
// catalogs. With no paths the locales directory is searched and its msgids
// are checked as the source-language resource.
func (a *App) Check(paths []string) ([]service.Report, error) {
	source := len(paths) == 0
	if source {
		paths = []string{a.cfg.LocalesDir}
	}
	var files []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := project.Discover(p, a.cfg.Exclude)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	reports := make([]service.Report, 0, len(files)+1)
	if source {
		if len(files) > 0 {
			reports = append(reports, a.svc.CheckSource(a.cfg.LocalesDir, a.cfg.DefaultLanguage, files))
		} else {
			a.log.Debug("no catalogs, source language not checked", "locales_dir", a.cfg.LocalesDir)
		}
	}
	for _, f := range files {
		reports = append(reports, a.svc.CheckFile(f))
	}
	c := observability.Counters()
	a.log.Debug("check finished",
		"resources", c.ResourcesChecked,
		"language_failures", c.LanguageFailures,
		"wordlist_fallbacks", c.WordlistFallbacks,
		"misspellings", c.Misspellings)
	return reports, nil
}

// Failed reports whether any report fails the run. Languages listed in
// no_fail are reported but never fail it.
func (a *App) Failed(reports []service.Report) bool {
	for _, r := range reports {
		if !r.Failed() {
			continue
		}
		if a.cfg.NoFailLanguage(r.Language) || (r.Resolved != "" && a.cfg.NoFailLanguage(r.Resolved)) {
			a.log.Debug("failure ignored", "path", r.Path, "language", r.Language)
			continue
		}
		return true
	}
	return false
}
