package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported locale codes. The set is closed and fixed at build time; adding a
// locale means adding its dictionary file and extending this list.
const (
	EN = "en" // English (default)
	DE = "de" // German
	FR = "fr" // French
	ES = "es" // Spanish
	CS = "cs" // Czech
	UA = "ua" // Ukrainian (legacy content code, formats as uk-UA)
)

// Default is the locale every lookup ultimately falls back to. Its dictionary
// must always be complete.
const Default = EN

// Source reports how the active locale was chosen.
type Source string

const (
	SourcePersisted Source = "persisted"
	SourceDetected  Source = "detected"
	SourceDefault   Source = "default"
)

var supported = []string{EN, DE, FR, ES, CS, UA}

// aliases maps standard codes to the content codes this application ships.
// The "ua" catalog predates the project's BCP 47 cleanup; browsers report "uk".
var aliases = map[string]string{
	"uk": UA,
}

// formatTags maps content codes to the BCP 47 tags used for date, number, and
// currency formatting.
var formatTags = map[string]language.Tag{
	EN: language.MustParse("en-US"),
	DE: language.MustParse("de-DE"),
	FR: language.MustParse("fr-FR"),
	ES: language.MustParse("es-ES"),
	CS: language.MustParse("cs-CZ"),
	UA: language.MustParse("uk-UA"),
}

// Supported returns the supported locale codes, default first.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code is exactly one of the supported locales.
func IsSupported(code string) bool {
	for _, l := range supported {
		if l == code {
			return true
		}
	}
	return false
}

// Normalize lowercases a language tag and strips any regional suffix:
// "de-CH" → "de", "fr_FR" → "fr".
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return code
}

// Match resolves an arbitrary language code to a supported locale.
// It tries the exact code, then the normalized base language, then known
// aliases. Returns false when nothing matches.
func Match(code string) (string, bool) {
	if IsSupported(code) {
		return code, true
	}
	base := Normalize(code)
	if IsSupported(base) {
		return base, true
	}
	if alias, ok := aliases[base]; ok {
		return alias, true
	}
	return "", false
}

// Resolve picks the active locale for a session. Precedence: a persisted
// preference, then the runtime-detected language, then [Default]. Both inputs
// may be empty.
func Resolve(persisted, detected string) (string, Source) {
	if persisted != "" {
		if code, ok := Match(persisted); ok {
			return code, SourcePersisted
		}
	}
	if detected != "" {
		if code, ok := Match(detected); ok {
			return code, SourceDetected
		}
	}
	return Default, SourceDefault
}

// FormatTag returns the BCP 47 tag formatters should use for a locale.
// Unknown codes map to the default locale's tag.
func FormatTag(code string) language.Tag {
	if tag, ok := formatTags[code]; ok {
		return tag
	}
	return formatTags[Default]
}
