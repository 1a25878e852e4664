// Package format renders dates, numbers, currency amounts, and relative time
// according to a locale's conventions.
//
// Every function is a stateless pure function taking the value and the locale
// code; nothing here touches dictionaries or translation state. Locale codes
// are mapped to formatting conventions through pkg/locale, so a content code
// whose formatting differs from its translation catalog (the legacy "ua"
// code formats as uk-UA) still renders correctly.
//
// Formatting never fails: an unknown locale, a bad currency code, or an
// unrepresentable value degrades to a generic locale-agnostic rendering of
// the raw value instead of panicking.
package format
