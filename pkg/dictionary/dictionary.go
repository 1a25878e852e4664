package dictionary

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Plural category names as defined by Unicode CLDR. A leaf whose keys are all
// category names is treated as a plural record rather than a subtree.
var pluralCategories = map[string]bool{
	"zero":  true,
	"one":   true,
	"two":   true,
	"few":   true,
	"many":  true,
	"other": true,
}

// Dictionary is the full nested set of translation strings for one locale.
// It is immutable after construction and safe for concurrent use; replacing a
// locale's translations means building a new Dictionary, never mutating one.
type Dictionary struct {
	root map[string]any
}

// Entry is a resolved dictionary leaf: either a plain translation string or a
// plural-category record.
type Entry struct {
	Text   string
	Plural map[string]string
}

// IsPlural reports whether the entry is a plural-category record.
func (e Entry) IsPlural() bool { return e.Plural != nil }

// Empty returns a dictionary with no translations. Lookups against it always
// miss, which leaves rendering to the caller's fallback behavior.
func Empty() *Dictionary {
	return &Dictionary{}
}

// New wraps an already-parsed tree. The caller must not mutate root afterwards.
func New(root map[string]any) *Dictionary {
	return &Dictionary{root: root}
}

// Parse decodes a JSON dictionary document. The top-level value must be a
// non-null object; anything else fails with [ErrInvalidDocument].
func Parse(data []byte) (*Dictionary, error) {
	return parse(data, json.Unmarshal)
}

// ParseYAML decodes a YAML dictionary document with the same validation rules
// as [Parse].
func ParseYAML(data []byte) (*Dictionary, error) {
	return parse(data, yaml.Unmarshal)
}

func parse(data []byte, unmarshal func([]byte, any) error) (*Dictionary, error) {
	var root map[string]any
	if err := unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}
	if root == nil {
		return nil, ErrInvalidDocument
	}
	return &Dictionary{root: normalizeTree(root)}, nil
}

// normalizeTree converts YAML's map[any]any-style nodes and scalar leaves into
// the canonical map[string]any / string shape.
func normalizeTree(node map[string]any) map[string]any {
	out := make(map[string]any, len(node))
	for key, value := range node {
		switch v := value.(type) {
		case map[string]any:
			out[key] = normalizeTree(v)
		case map[any]any:
			sub := make(map[string]any, len(v))
			for k, val := range v {
				sub[fmt.Sprintf("%v", k)] = val
			}
			out[key] = normalizeTree(sub)
		default:
			out[key] = value
		}
	}
	return out
}

// Resolve walks a dot-delimited key through the tree. It returns false when
// any path segment is absent, when the walk hits a non-mapping node mid-path,
// or when the terminal value is neither a string nor a plural record.
func (d *Dictionary) Resolve(key string) (Entry, bool) {
	if d == nil || d.root == nil || key == "" {
		return Entry{}, false
	}

	var node any = d.root
	for _, segment := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return Entry{}, false
		}
		node, ok = m[segment]
		if !ok {
			return Entry{}, false
		}
	}

	switch leaf := node.(type) {
	case string:
		return Entry{Text: leaf}, true
	case map[string]any:
		if record, ok := pluralRecord(leaf); ok {
			return Entry{Plural: record}, true
		}
	}
	return Entry{}, false
}

// Len returns the number of translatable leaves in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.Keys())
}

// Keys returns the sorted dot-delimited keys of every translatable leaf.
// Plural records count as a single key.
func (d *Dictionary) Keys() []string {
	if d == nil || d.root == nil {
		return nil
	}
	var keys []string
	collectKeys(d.root, "", &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(node map[string]any, prefix string, keys *[]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			*keys = append(*keys, full)
		case map[string]any:
			if _, ok := pluralRecord(v); ok {
				*keys = append(*keys, full)
			} else {
				collectKeys(v, full, keys)
			}
		}
	}
}

// pluralRecord reports whether a mapping node is a plural-category record:
// every key a CLDR category name and every value a string.
func pluralRecord(node map[string]any) (map[string]string, bool) {
	if len(node) == 0 {
		return nil, false
	}
	record := make(map[string]string, len(node))
	for key, value := range node {
		if !pluralCategories[key] {
			return nil, false
		}
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		record[key] = s
	}
	return record, true
}
