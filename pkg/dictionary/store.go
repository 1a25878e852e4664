package dictionary

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

type loadState int

const (
	statePending loadState = iota
	stateReady
	stateFailed
)

type entry struct {
	dict  *Dictionary
	state loadState
}

// Store is the process-wide cache of loaded dictionaries: one entry per
// locale, kept for the lifetime of the Store. Only the Store's own load path
// writes entries, and a ready entry is never overwritten.
type Store struct {
	fetcher       Fetcher
	log           *slog.Logger
	defaultLocale string
	empty         *Dictionary

	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
}

// StoreOption configures the Store.
type StoreOption func(*Store)

// WithLogger sets the logger for load failures. Defaults to a discard logger.
func WithLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithDefaultLocale sets the locale whose dictionary substitutes for a locale
// that fails to load. Defaults to "en".
func WithDefaultLocale(code string) StoreOption {
	return func(s *Store) {
		if code != "" {
			s.defaultLocale = code
		}
	}
}

// NewStore creates a dictionary cache backed by the given fetcher.
func NewStore(fetcher Fetcher, opts ...StoreOption) *Store {
	s := &Store{
		fetcher:       fetcher,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaultLocale: "en",
		empty:         Empty(),
		entries:       make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultLocale returns the fallback locale code.
func (s *Store) DefaultLocale() string {
	return s.defaultLocale
}

// Load returns the dictionary for a locale, fetching and caching it on first
// use. Load never fails: a fetch or parse error is retried once, then the
// default locale's dictionary is substituted, and if the default itself cannot
// be loaded an empty dictionary is returned. A locale that has terminally
// failed is not refetched during the session; callers get the substitute
// directly.
//
// Concurrent calls for the same uncached locale coalesce into one fetch.
func (s *Store) Load(ctx context.Context, code string) *Dictionary {
	if dict, ok := s.fastPath(ctx, code); ok {
		return dict
	}

	v, _, _ := s.group.Do(code, func() (any, error) {
		return s.load(ctx, code), nil
	})
	return v.(*Dictionary)
}

// fastPath serves cache hits without entering the singleflight group.
func (s *Store) fastPath(ctx context.Context, code string) (*Dictionary, bool) {
	s.mu.RLock()
	e, ok := s.entries[code]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	switch e.state {
	case stateReady:
		return e.dict, true
	case stateFailed:
		return s.substitute(ctx, code), true
	default:
		return nil, false
	}
}

func (s *Store) load(ctx context.Context, code string) *Dictionary {
	// Re-check under the group: a concurrent caller may have populated the
	// entry between the fast path and Do.
	if dict, ok := s.fastPath(ctx, code); ok {
		return dict
	}

	dict, err := s.fetcher.Fetch(ctx, code)
	if err != nil {
		s.log.WarnContext(ctx, "dictionary fetch failed, retrying",
			slog.String("locale", code), slog.Any("error", err))
		dict, err = s.fetcher.Fetch(ctx, code)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "dictionary load failed",
			slog.String("locale", code), slog.Any("error", err))
		s.setState(code, &entry{state: stateFailed})
		return s.substitute(ctx, code)
	}

	s.setState(code, &entry{dict: dict, state: stateReady})
	return dict
}

// substitute resolves what a terminally failed locale renders with: the
// default locale's dictionary, or the empty dictionary when the default
// itself is the one that failed.
func (s *Store) substitute(ctx context.Context, code string) *Dictionary {
	if code != s.defaultLocale {
		return s.Load(ctx, s.defaultLocale)
	}
	return s.empty
}

// setState inserts an entry unless a ready one already exists.
func (s *Store) setState(code string, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entries[code]; ok && existing.state == stateReady {
		return
	}
	s.entries[code] = e
}

// IsCached reports whether a locale's dictionary is loaded and ready. A
// failed entry does not count as cached.
func (s *Store) IsCached(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[code]
	return ok && e.state == stateReady
}

// Clear drops the given locales from the cache, or every entry when called
// with no arguments. Intended for tests and operational tooling.
func (s *Store) Clear(locales ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(locales) == 0 {
		s.entries = make(map[string]*entry)
		return
	}
	for _, code := range locales {
		delete(s.entries, code)
	}
}
