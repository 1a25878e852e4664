// Package translate renders translation strings from loaded dictionaries.
//
// A [Translator] binds a locale, its dictionary, and the default locale's
// dictionary. Lookups walk the dot-delimited key and recover through a fixed
// fallback chain: active dictionary → default dictionary → the key itself.
// Partial dictionaries are a supported deployment strategy, not an error; a
// locale may ship a subset of keys and transparently render the rest in the
// default locale.
//
//	tr := translate.New("de", deDict, enDict)
//	tr.T("nav.title")
//	tr.T("greeting", translate.M{"name": "Ana"})
//	tr.T("inbox.items", translate.M{"count": 5})
//
// Placeholders use the {name} form. Values are HTML-escaped before
// substitution so translated text is safe to render as markup; placeholders
// without a matching param are left verbatim.
//
// Plural-category leaves are selected by the numeric "count" param using the
// locale's CLDR rule, with category fallbacks (few → many → other) for
// partially filled records.
package translate
