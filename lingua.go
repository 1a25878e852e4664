package lingua

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/lingua/pkg/dictionary"
	"github.com/dmitrymomot/lingua/pkg/locale"
	"github.com/dmitrymomot/lingua/pkg/translate"
)

// ErrUnsupportedLocale is returned by SetLocale for a code outside the
// supported set.
var ErrUnsupportedLocale = errors.New("lingua: unsupported locale")

// Subscriber is notified after every applied locale switch, synchronously
// from within SetLocale, with the new active locale code.
type Subscriber func(code string)

// Context is the reactive hub of the runtime. It owns the active locale
// state, drives dictionary loading on locale switches, and notifies
// subscribers when a switch is applied. Construct it once per session with
// [New]; all mutation goes through [Context.SetLocale].
type Context struct {
	store       *dictionary.Store
	log         *slog.Logger
	persistence Persistence
	missing     translate.MissingKeyHandler

	baseCtx  context.Context
	detected string
	debug    bool

	generation atomic.Uint64

	mu          sync.RWMutex
	active      string
	source      locale.Source
	translator  *translate.Translator
	fallback    *dictionary.Dictionary
	subscribers map[uuid.UUID]Subscriber
	loading     bool
}

// New creates the runtime context and resolves the initial locale exactly
// once: a persisted preference wins over the detected language, which wins
// over the default. The initial dictionaries are loaded before New returns,
// so the translation function is usable immediately.
func New(store *dictionary.Store, opts ...Option) *Context {
	c := &Context{
		store:       store,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		baseCtx:     context.Background(),
		subscribers: make(map[uuid.UUID]Subscriber),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.missing == nil && c.debug {
		c.missing = func(code, key string) {
			c.log.Debug("missing translation key",
				slog.String("locale", code), slog.String("key", key))
		}
	}

	persisted := ""
	if c.persistence != nil {
		if code, ok := c.persistence.Load(); ok {
			persisted = code
		}
	}
	code, source := locale.Resolve(persisted, c.detected)

	c.fallback = store.Load(c.baseCtx, store.DefaultLocale())
	dict := c.fallback
	if code != store.DefaultLocale() {
		dict = store.Load(c.baseCtx, code)
	}

	c.active = code
	c.source = source
	c.translator = c.newTranslator(code, dict)

	return c
}

func (c *Context) newTranslator(code string, dict *dictionary.Dictionary) *translate.Translator {
	return translate.New(code, dict, c.fallback,
		translate.WithFallbackLocale(c.store.DefaultLocale()),
		translate.WithMissingKeyHandler(c.missing),
	)
}

// ActiveLocale returns the current locale code.
func (c *Context) ActiveLocale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Source reports how the current locale was chosen.
func (c *Context) Source() locale.Source {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Loading reports whether a locale switch is waiting on a dictionary load.
func (c *Context) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Store exposes the shared dictionary store, for wiring the server-side
// accessor over the same cache.
func (c *Context) Store() *dictionary.Store {
	return c.store
}

// Translator returns a snapshot translator bound to the active locale and its
// dictionary. The snapshot stays valid after a locale switch but keeps
// rendering the old locale; reactive consumers should call [Context.T] or
// re-Subscribe instead of holding snapshots.
func (c *Context) Translator() *translate.Translator {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.translator
}

// T resolves a key against the active dictionary with the standard fallback
// chain (active → default → key itself).
func (c *Context) T(key string, params ...translate.M) string {
	return c.Translator().T(key, params...)
}

// Tn resolves a plural key for a count against the active dictionary.
func (c *Context) Tn(key string, n int, params ...translate.M) string {
	return c.Translator().Tn(key, n, params...)
}

// TNamespaced returns a translation function with every key prefixed by ns.
// The returned function follows locale switches.
func (c *Context) TNamespaced(ns string) func(key string, params ...translate.M) string {
	return func(key string, params ...translate.M) string {
		return c.Translator().Namespaced(ns).T(key, params...)
	}
}

// Subscribe registers a callback invoked synchronously after every applied
// locale switch. The returned function removes the subscription.
func (c *Context) Subscribe(fn Subscriber) (unsubscribe func()) {
	id := uuid.New()
	c.mu.Lock()
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// SetLocale switches the active locale. The choice is persisted before any
// loading begins, so a reload mid-switch still recovers the user's intent.
// A cached target applies synchronously with no fetch; an uncached one loads
// through the store (retry and fallback included) and then applies. When
// SetLocale is called again while a previous switch is still loading, the
// stale load's result is discarded.
func (c *Context) SetLocale(ctx context.Context, code string) error {
	matched, ok := locale.Match(code)
	if !ok {
		return ErrUnsupportedLocale
	}

	if c.persistence != nil {
		if err := c.persistence.Save(matched); err != nil {
			c.log.Warn("persisting locale choice failed",
				slog.String("locale", matched), slog.Any("error", err))
		}
	}

	gen := c.generation.Add(1)

	if !c.store.IsCached(matched) {
		c.markLoading(gen)
	}

	dict := c.store.Load(ctx, matched)
	c.apply(gen, matched, dict)
	return nil
}

func (c *Context) markLoading(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen == c.generation.Load() {
		c.loading = true
	}
}

// apply installs the switch result unless a newer switch has been requested
// since, and notifies subscribers outside the lock but before returning.
func (c *Context) apply(gen uint64, code string, dict *dictionary.Dictionary) {
	c.mu.Lock()
	if gen != c.generation.Load() {
		c.mu.Unlock()
		return
	}
	c.active = code
	c.source = locale.SourcePersisted
	c.translator = c.newTranslator(code, dict)
	c.loading = false

	subs := make([]Subscriber, 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(code)
	}
}
