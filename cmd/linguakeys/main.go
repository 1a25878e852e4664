// Command linguakeys generates typed constants for every translation key in
// the default locale's dictionary. Calling sites reference the constants
// instead of raw strings, turning a typo in a dotted key into a compile error
// rather than a silent fallback to the key text.
//
// Usage:
//
//	linguakeys -in locales/en.json -out internal/i18nkeys/keys.go -pkg i18nkeys
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"unicode"

	"github.com/dmitrymomot/lingua/pkg/dictionary"
)

func main() {
	var (
		in  = flag.String("in", "locales/en.json", "default locale dictionary (JSON)")
		out = flag.String("out", "", "output file (default: stdout)")
		pkg = flag.String("pkg", "i18nkeys", "package name for the generated file")
	)
	flag.Parse()

	if err := run(*in, *out, *pkg); err != nil {
		fmt.Fprintln(os.Stderr, "linguakeys:", err)
		os.Exit(1)
	}
}

func run(in, out, pkg string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	dict, err := dictionary.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", in, err)
	}

	keys := dict.Keys()
	if len(keys) == 0 {
		return fmt.Errorf("%s contains no translation keys", in)
	}

	src, err := generate(pkg, in, keys)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

func generate(pkg, source string, keys []string) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by linguakeys from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("const (\n")

	seen := make(map[string]string, len(keys))
	for _, key := range keys {
		name := constName(key)
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("keys %q and %q map to the same constant %s", prev, key, name)
		}
		seen[name] = key
		fmt.Fprintf(&b, "\t%s = %q\n", name, key)
	}
	b.WriteString(")\n")

	return format.Source(b.Bytes())
}

// constName turns a dotted key into an exported identifier:
// "nav.settings.title" → "NavSettingsTitle".
func constName(key string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range key {
		switch {
		case r == '.' || r == '_' || r == '-':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
