package i18nhttp

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/lingua/pkg/cookie"
	"github.com/dmitrymomot/lingua/pkg/dictionary"
	"github.com/dmitrymomot/lingua/pkg/locale"
	"github.com/dmitrymomot/lingua/pkg/translate"
)

// DefaultCookieName is the cross-request token carrying the locale code. The
// client writes it on every explicit locale choice; server rendering reads it
// before any client state exists.
const DefaultCookieName = "lang"

// DefaultCookieMaxAge keeps the preference for a year.
const DefaultCookieMaxAge = 365 * 24 * 3600

type translatorKey struct{}
type localeKey struct{}

// Accessor resolves request locales and builds per-request translators from a
// shared dictionary store.
type Accessor struct {
	store      *dictionary.Store
	cookies    *cookie.Manager
	missing    translate.MissingKeyHandler
	cookieName string
	maxAge     int
}

// Option configures the Accessor.
type Option func(*Accessor)

// WithCookieManager sets a custom cookie manager (domain, Secure, etc.).
func WithCookieManager(m *cookie.Manager) Option {
	return func(a *Accessor) {
		if m != nil {
			a.cookies = m
		}
	}
}

// WithCookieName overrides the locale cookie name.
func WithCookieName(name string) Option {
	return func(a *Accessor) {
		if name != "" {
			a.cookieName = name
		}
	}
}

// WithCookieMaxAge overrides the locale cookie lifetime in seconds.
func WithCookieMaxAge(seconds int) Option {
	return func(a *Accessor) {
		if seconds > 0 {
			a.maxAge = seconds
		}
	}
}

// WithMissingKeyHandler wires missing-key diagnostics into every translator
// the accessor builds.
func WithMissingKeyHandler(h translate.MissingKeyHandler) Option {
	return func(a *Accessor) {
		a.missing = h
	}
}

// New creates an Accessor over the shared dictionary store.
func New(store *dictionary.Store, opts ...Option) *Accessor {
	a := &Accessor{
		store:      store,
		cookies:    cookie.New(),
		cookieName: DefaultCookieName,
		maxAge:     DefaultCookieMaxAge,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ResolveLocale determines the request's locale: preference cookie, then
// Accept-Language, then the default.
func (a *Accessor) ResolveLocale(r *http.Request) (string, locale.Source) {
	if value, err := a.cookies.Get(r, a.cookieName); err == nil {
		if code, ok := locale.Match(value); ok {
			return code, locale.SourcePersisted
		}
	}
	if code, ok := locale.MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return code, locale.SourceDetected
	}
	return locale.Default, locale.SourceDefault
}

// SetLocaleCookie persists a locale choice on the response. Unsupported codes
// are ignored.
func (a *Accessor) SetLocaleCookie(w http.ResponseWriter, code string) {
	matched, ok := locale.Match(code)
	if !ok {
		return
	}
	a.cookies.Set(w, a.cookieName, matched, a.maxAge)
}

// Translator resolves the request locale and returns a translator bound to
// it, with the same lookup, fallback, interpolation, and pluralization
// semantics as the reactive runtime.
func (a *Accessor) Translator(r *http.Request) (*translate.Translator, string) {
	code, _ := a.ResolveLocale(r)
	ctx := r.Context()

	fallback := a.store.Load(ctx, a.store.DefaultLocale())
	dict := fallback
	if code != a.store.DefaultLocale() {
		dict = a.store.Load(ctx, code)
	}

	tr := translate.New(code, dict, fallback,
		translate.WithFallbackLocale(a.store.DefaultLocale()),
		translate.WithMissingKeyHandler(a.missing),
	)
	return tr, code
}

// Middleware resolves the locale once per request and stores the translator
// and locale code in the request context.
func (a *Accessor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr, code := a.Translator(r)
		ctx := context.WithValue(r.Context(), translatorKey{}, tr)
		ctx = context.WithValue(ctx, localeKey{}, code)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TranslatorFromContext extracts the translator stored by [Accessor.Middleware].
// Returns nil when the middleware is not in the chain.
func TranslatorFromContext(ctx context.Context) *translate.Translator {
	if tr, ok := ctx.Value(translatorKey{}).(*translate.Translator); ok {
		return tr
	}
	return nil
}

// LocaleFromContext extracts the resolved locale code, or the default when
// the middleware is not in the chain.
func LocaleFromContext(ctx context.Context) string {
	if code, ok := ctx.Value(localeKey{}).(string); ok {
		return code
	}
	return locale.Default
}
