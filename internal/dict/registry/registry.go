package registry

import (
	"errors"
	"sync"
)

// Source is a dictionary file registered for one language tag.
type Source struct {
	Lang string
	Type string
	Path string
}

// Registry is the catalog of languages the backend can open.
type Registry struct {
	mu     sync.RWMutex
	byLang map[string]Source
	order  []Source
}

func New() *Registry {
	return &Registry{
		byLang: make(map[string]Source),
		order:  nil,
	}
}

func (r *Registry) Add(s Source) error {
	if s.Lang == "" {
		return errors.New("dictionary language is empty")
	}
	if s.Path == "" {
		return errors.New("dictionary path is empty for language: " + s.Lang)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byLang[s.Lang]; exists {
		return errors.New("duplicate dictionary language: " + s.Lang)
	}
	r.byLang[s.Lang] = s
	r.order = append(r.order, s)
	return nil
}

func (r *Registry) Has(lang string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byLang[lang]
	return ok
}

func (r *Registry) Get(lang string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byLang[lang]
	return s, ok
}

// List returns the registered sources in registration order.
func (r *Registry) List() []Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Source, 0, len(r.order))
	out = append(out, r.order...)
	return out
}

// Languages returns the registered tags in registration order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.order))
	for _, s := range r.order {
		out = append(out, s.Lang)
	}
	return out
}

func (r *Registry) MustAddAll(sources []Source) error {
	for _, s := range sources {
		if err := r.Add(s); err != nil {
			return err
		}
	}
	return nil
}
