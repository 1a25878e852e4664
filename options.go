package lingua

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/lingua/pkg/translate"
)

// Option configures the Context during construction.
type Option func(*Context)

// WithLogger sets the runtime logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

// WithContext sets the base context used for the initial dictionary loads.
// Defaults to context.Background().
func WithContext(ctx context.Context) Option {
	return func(c *Context) {
		if ctx != nil {
			c.baseCtx = ctx
		}
	}
}

// WithPersistence wires durable storage for the user's locale choice. The
// stored value participates in initial resolution and is updated
// synchronously on every SetLocale.
func WithPersistence(p Persistence) Option {
	return func(c *Context) {
		c.persistence = p
	}
}

// WithDetectedLanguage supplies the runtime-reported language (for example
// the browser's), consulted when no valid persisted preference exists.
// Regional variants are normalized before matching.
func WithDetectedLanguage(lang string) Option {
	return func(c *Context) {
		c.detected = lang
	}
}

// WithDebug enables missing-key diagnostics: every failed fallback-chain step
// is logged at debug level. Meant for development builds only.
func WithDebug() Option {
	return func(c *Context) {
		c.debug = true
	}
}

// WithMissingKeyHandler sets a custom missing-key handler, overriding the
// debug logging one.
func WithMissingKeyHandler(h translate.MissingKeyHandler) Option {
	return func(c *Context) {
		c.missing = h
	}
}
