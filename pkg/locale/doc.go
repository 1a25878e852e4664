// Package locale defines the closed set of locales the application can render
// in and the rules for choosing one.
//
// The supported set and the default locale are fixed at build time. Resolution
// follows a strict precedence: a persisted user preference wins over a detected
// runtime language, which wins over the default:
//
//	code, source := locale.Resolve(persisted, detected)
//
// Detected languages are normalized before matching, so regional variants
// resolve to their base locale ("de-CH" → "de"). For HTTP handlers,
// [MatchAcceptLanguage] picks the best supported locale from an
// Accept-Language header using golang.org/x/text language matching.
//
// Translation content codes and formatting conventions are mapped
// independently: [FormatTag] returns the BCP 47 tag formatters should use,
// which may diverge from the content code (the "ua" catalog formats dates and
// numbers with "uk-UA" conventions).
package locale
