package translate

import (
	"fmt"
	"html"
	"maps"
	"strings"
)

// M holds interpolation params: placeholder name → string or number.
type M map[string]any

// Interpolate replaces every {name} occurrence in the template with the
// HTML-escaped string form of params["name"]. Placeholders without a matching
// param are left verbatim so missing data is visible rather than silently
// blanked.
func Interpolate(template string, params M) string {
	if len(params) == 0 || !strings.ContainsRune(template, '{') {
		return template
	}

	result := template
	for name, value := range params {
		placeholder := "{" + name + "}"
		if !strings.Contains(result, placeholder) {
			continue
		}
		replacement := html.EscapeString(stringify(value))
		result = strings.ReplaceAll(result, placeholder, replacement)
	}
	return result
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func mergeParams(params []M) M {
	switch len(params) {
	case 0:
		return nil
	case 1:
		return params[0]
	}
	merged := make(M)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return merged
}
