package locale

import "golang.org/x/text/language"

// matcherTags mirrors the supported list in standard BCP 47 space so that
// x/text matching works ("ua" is represented by its standard code "uk").
var matcherTags = []language.Tag{
	language.English,   // en
	language.German,    // de
	language.French,    // fr
	language.Spanish,   // es
	language.Czech,     // cs
	language.Ukrainian, // ua
}

var matcher = language.NewMatcher(matcherTags)

// MatchAcceptLanguage picks the best supported locale for an Accept-Language
// header, honoring quality values. Returns false for an empty, malformed, or
// unmatchable header.
func MatchAcceptLanguage(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return supported[idx], true
}
