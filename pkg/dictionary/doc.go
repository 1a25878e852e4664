// Package dictionary loads, validates, and caches per-locale translation
// dictionaries.
//
// A [Dictionary] is an immutable tree: interior nodes are string-keyed maps,
// leaves are either plain strings or plural-category records. Lookups walk a
// dot-delimited path:
//
//	dict, _ := dictionary.Parse(data)
//	entry, ok := dict.Resolve("nav.settings.title")
//
// The [Store] caches one dictionary per locale for the lifetime of the
// process. Loading is resilient by contract: a fetch or parse failure is
// retried once, then the default locale's dictionary is substituted, and as a
// last resort an empty dictionary is returned — Load never fails.
//
//	store := dictionary.NewStore(dictionary.NewHTTPFetcher("https://cdn.example.com/locales"))
//	dict := store.Load(ctx, "de")
//
// Concurrent loads for the same uncached locale coalesce into a single fetch,
// and a cached entry is never overwritten.
package dictionary
