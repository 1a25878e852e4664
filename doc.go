// Package lingua is a locale-aware translation runtime for multi-page web
// applications.
//
// The [Context] owns the active locale: it resolves the initial locale once
// at construction (persisted preference → detected language → default),
// lazily loads and caches per-locale dictionaries through a
// [github.com/dmitrymomot/lingua/pkg/dictionary.Store], and broadcasts every
// applied locale switch to its subscribers so all rendered text changes in a
// single step.
//
//	store := dictionary.NewStore(dictionary.NewHTTPFetcher(baseURL))
//	ctx := lingua.New(store,
//	    lingua.WithPersistence(prefs),
//	    lingua.WithDetectedLanguage(browserLang),
//	)
//
//	ctx.T("nav.title")
//	ctx.T("inbox.items", translate.M{"count": 3})
//	_ = ctx.SetLocale(context.Background(), "de")
//
// Switching to an already-cached locale applies synchronously with zero
// fetches. When several switches race, only the most recently requested one
// is ever applied; slower in-flight loads are discarded.
//
// Per-request server rendering uses
// [github.com/dmitrymomot/lingua/pkg/i18nhttp.Accessor] over the same store,
// which keeps server and client output identical for the same locale and key.
package lingua
