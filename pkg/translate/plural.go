package translate

import "strings"

// Plural category constants as defined by Unicode CLDR.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// Rule selects the plural category for a count.
type Rule func(n int) string

// SimpleRule covers English, German, and most Germanic languages:
// one for ±1, other for everything else including zero.
var SimpleRule Rule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// RomanceRule covers French and Spanish-style languages where zero is
// grammatically singular.
var RomanceRule Rule = func(n int) string {
	if n == 0 || n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// CzechRule distinguishes the 2–4 range: one (1), few (2–4), other.
var CzechRule Rule = func(n int) string {
	if n < 0 {
		n = -n
	}
	switch {
	case n == 1:
		return PluralOne
	case n >= 2 && n <= 4:
		return PluralFew
	default:
		return PluralOther
	}
}

// SlavicRule covers Ukrainian-style East Slavic pluralization:
// one (n%10==1, n%100!=11), few (n%10 in 2–4, n%100 not 12–14), many.
var SlavicRule Rule = func(n int) string {
	if n < 0 {
		n = -n
	}
	mod10 := n % 10
	mod100 := n % 100
	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return PluralFew
	default:
		return PluralMany
	}
}

// RuleFor returns the plural rule for a locale code. The legacy "ua" content
// code shares the Ukrainian rule. Unknown codes get the simple one/other rule.
func RuleFor(code string) Rule {
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	switch strings.ToLower(code) {
	case "fr", "es", "pt", "it":
		return RomanceRule
	case "cs", "sk":
		return CzechRule
	case "ua", "uk", "ru", "pl", "hr", "sr":
		return SlavicRule
	default:
		return SimpleRule
	}
}

// categoryFallbacks is the order in which partially filled plural records are
// probed when the selected category is absent.
func categoryFallbacks(category string) []string {
	switch category {
	case PluralZero, PluralOne:
		return []string{PluralOther}
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	case PluralMany:
		return []string{PluralOther}
	default:
		return nil
	}
}
