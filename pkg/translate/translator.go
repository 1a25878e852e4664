package translate

import (
	"math"

	"github.com/dmitrymomot/lingua/pkg/dictionary"
)

// MissingKeyHandler is called for every fallback-chain step that fails to
// resolve a key. Wire it in development builds to surface untranslated keys;
// it must not panic or block rendering.
type MissingKeyHandler func(locale, key string)

// Translator resolves dot-delimited keys against an active dictionary with
// transparent fallback to the default locale's dictionary. It is immutable
// and safe for concurrent use.
type Translator struct {
	dict           *dictionary.Dictionary
	fallback       *dictionary.Dictionary
	missing        MissingKeyHandler
	rule           Rule
	locale         string
	fallbackLocale string
	namespace      string
}

// Option configures a Translator.
type Option func(*Translator)

// WithNamespace scopes every lookup under the given dotted prefix.
func WithNamespace(ns string) Option {
	return func(t *Translator) {
		t.namespace = ns
	}
}

// WithMissingKeyHandler sets the missing-key diagnostics handler.
func WithMissingKeyHandler(h MissingKeyHandler) Option {
	return func(t *Translator) {
		t.missing = h
	}
}

// WithFallbackLocale sets the locale code reported to the missing-key handler
// for failures against the fallback dictionary. Defaults to "en".
func WithFallbackLocale(code string) Option {
	return func(t *Translator) {
		if code != "" {
			t.fallbackLocale = code
		}
	}
}

// WithRule overrides the plural rule derived from the locale code.
func WithRule(rule Rule) Option {
	return func(t *Translator) {
		if rule != nil {
			t.rule = rule
		}
	}
}

// New creates a Translator for a locale. dict is the locale's own dictionary,
// fallback the default locale's; the two may be the same instance, in which
// case the chain collapses to a single lookup.
func New(locale string, dict, fallback *dictionary.Dictionary, opts ...Option) *Translator {
	t := &Translator{
		locale:         locale,
		dict:           dict,
		fallback:       fallback,
		fallbackLocale: "en",
		rule:           RuleFor(locale),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Locale returns the translator's locale code.
func (t *Translator) Locale() string { return t.locale }

// Namespace returns the translator's key prefix, if any.
func (t *Translator) Namespace() string { return t.namespace }

// Namespaced returns a copy of the translator scoped under ns. Nested calls
// extend the existing prefix.
func (t *Translator) Namespaced(ns string) *Translator {
	clone := *t
	if clone.namespace != "" {
		clone.namespace = clone.namespace + "." + ns
	} else {
		clone.namespace = ns
	}
	return &clone
}

// T resolves a dot-delimited key and renders it with the given params.
// Resolution order: active dictionary, then the default locale's dictionary,
// then the key itself unchanged. A leaf that is neither a string nor a plural
// record counts as missing.
func (t *Translator) T(key string, params ...M) string {
	merged := mergeParams(params)
	full := key
	if t.namespace != "" {
		full = t.namespace + "." + key
	}

	if text, ok := t.render(t.dict, full, merged); ok {
		return text
	}
	t.reportMissing(t.locale, full)

	if t.fallback != nil && t.fallback != t.dict {
		if text, ok := t.render(t.fallback, full, merged); ok {
			return text
		}
		t.reportMissing(t.fallbackLocale, full)
	}

	return key
}

// Tn resolves a plural key for a count, injecting it as the "count" param.
func (t *Translator) Tn(key string, n int, params ...M) string {
	merged := mergeParams(params)
	if merged == nil {
		merged = M{"count": n}
	} else {
		withCount := make(M, len(merged)+1)
		for k, v := range merged {
			withCount[k] = v
		}
		withCount["count"] = n
		merged = withCount
	}
	return t.T(key, merged)
}

func (t *Translator) render(dict *dictionary.Dictionary, key string, params M) (string, bool) {
	e, ok := dict.Resolve(key)
	if !ok {
		return "", false
	}

	if !e.IsPlural() {
		return Interpolate(e.Text, params), true
	}

	n, ok := countParam(params)
	if !ok {
		// A plural record without a count cannot select a form.
		return "", false
	}

	category := t.rule(n)
	text, ok := e.Plural[category]
	if !ok {
		for _, fallbackCategory := range categoryFallbacks(category) {
			if text, ok = e.Plural[fallbackCategory]; ok {
				break
			}
		}
	}
	if !ok {
		return "", false
	}
	return Interpolate(text, params), true
}

func (t *Translator) reportMissing(locale, key string) {
	if t.missing != nil {
		t.missing(locale, key)
	}
}

// countParam extracts the numeric "count" param. JSON-decoded params arrive
// as float64; integral floats are accepted, fractional ones are not.
func countParam(params M) (int, bool) {
	v, ok := params["count"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return intFromFloat(float64(n))
	case float64:
		return intFromFloat(n)
	default:
		return 0, false
	}
}

func intFromFloat(f float64) (int, bool) {
	if math.Trunc(f) != f || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return int(f), true
}
