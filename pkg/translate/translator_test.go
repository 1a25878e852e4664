package translate_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingua/pkg/dictionary"
	"github.com/dmitrymomot/lingua/pkg/translate"
)

func mustParse(t *testing.T, doc string) *dictionary.Dictionary {
	t.Helper()
	dict, err := dictionary.Parse([]byte(doc))
	require.NoError(t, err)
	return dict
}

func TestTranslatorLookup(t *testing.T) {
	t.Parallel()

	en := mustParse(t, `{
		"greet": "Hello {name}",
		"nav": {"title": "Dashboard", "settings": {"label": "Settings"}},
		"only_en": "English only"
	}`)
	de := mustParse(t, `{
		"nav": {"title": "Übersicht"}
	}`)

	tr := translate.New("de", de, en)

	t.Run("active dictionary wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Übersicht", tr.T("nav.title"))
	})

	t.Run("falls back to default dictionary", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "English only", tr.T("only_en"))
		assert.Equal(t, "Settings", tr.T("nav.settings.label"))
	})

	t.Run("missing everywhere returns the key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "nav.nowhere", tr.T("nav.nowhere"))
	})

	t.Run("fallback then interpolate", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello Ana", tr.T("greet", translate.M{"name": "Ana"}))
	})

	t.Run("same dictionary for both ends skips double lookup", func(t *testing.T) {
		t.Parallel()
		enOnly := translate.New("en", en, en)
		assert.Equal(t, "Dashboard", enOnly.T("nav.title"))
		assert.Equal(t, "missing.key", enOnly.T("missing.key"))
	})
}

func TestTranslatorInterpolation(t *testing.T) {
	t.Parallel()

	en := mustParse(t, `{
		"greet": "Hello {name}",
		"pair": "{a} and {b}",
		"repeat": "{x}{x}"
	}`)
	tr := translate.New("en", en, en)

	t.Run("substitutes values", func(t *testing.T) {
		t.Parallel()
		out := tr.T("pair", translate.M{"a": "salt", "b": 2})
		assert.Equal(t, "salt and 2", out)
	})

	t.Run("unmatched placeholder stays verbatim", func(t *testing.T) {
		t.Parallel()
		out := tr.T("pair", translate.M{"a": "salt"})
		assert.Equal(t, "salt and {b}", out)
	})

	t.Run("no params leaves template untouched", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello {name}", tr.T("greet"))
	})

	t.Run("every occurrence is replaced", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "gogo", tr.T("repeat", translate.M{"x": "go"}))
	})

	t.Run("values are HTML-escaped", func(t *testing.T) {
		t.Parallel()
		out := tr.T("greet", translate.M{"name": `<script>alert("x") & more</script>`})
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "&lt;script&gt;")
		assert.Contains(t, out, "&amp; more")
	})
}

func TestTranslatorPluralization(t *testing.T) {
	t.Parallel()

	en := mustParse(t, `{
		"items": {"one": "{count} item", "other": "{count} items"},
		"partial": {"other": "{count} things"}
	}`)
	cs := mustParse(t, `{
		"items": {"one": "{count} položka", "few": "{count} položky", "other": "{count} položek"}
	}`)

	t.Run("english one and other", func(t *testing.T) {
		t.Parallel()
		tr := translate.New("en", en, en)
		assert.Equal(t, "1 item", tr.T("items", translate.M{"count": 1}))
		assert.Equal(t, "5 items", tr.T("items", translate.M{"count": 5}))
		assert.Equal(t, "0 items", tr.T("items", translate.M{"count": 0}))
	})

	t.Run("czech few category", func(t *testing.T) {
		t.Parallel()
		tr := translate.New("cs", cs, en)
		assert.Equal(t, "1 položka", tr.T("items", translate.M{"count": 1}))
		assert.Equal(t, "3 položky", tr.T("items", translate.M{"count": 3}))
		assert.Equal(t, "7 položek", tr.T("items", translate.M{"count": 7}))
	})

	t.Run("partial record falls back to other", func(t *testing.T) {
		t.Parallel()
		tr := translate.New("en", en, en)
		assert.Equal(t, "1 things", tr.T("partial", translate.M{"count": 1}))
	})

	t.Run("Tn injects count", func(t *testing.T) {
		t.Parallel()
		tr := translate.New("en", en, en)
		assert.Equal(t, "2 items", tr.Tn("items", 2))
	})

	t.Run("float counts from decoded JSON", func(t *testing.T) {
		t.Parallel()
		tr := translate.New("en", en, en)
		assert.Equal(t, "5 items", tr.T("items", translate.M{"count": float64(5)}))
	})

	t.Run("plural record without count is a miss", func(t *testing.T) {
		t.Parallel()
		tr := translate.New("en", en, en)
		assert.Equal(t, "items", tr.T("items"))
	})
}

func TestTranslatorNamespace(t *testing.T) {
	t.Parallel()

	en := mustParse(t, `{
		"reports": {"title": "Reports", "export": {"csv": "Export CSV"}}
	}`)
	tr := translate.New("en", en, en)

	ns := tr.Namespaced("reports")
	assert.Equal(t, "Reports", ns.T("title"))
	assert.Equal(t, "Export CSV", ns.Namespaced("export").T("csv"))
	assert.Equal(t, "reports", ns.Namespace())

	// The original translator is unaffected.
	assert.Equal(t, "title", tr.T("title"))
}

func TestTranslatorMissingKeyDiagnostics(t *testing.T) {
	t.Parallel()

	en := mustParse(t, `{"known": "Known"}`)
	de := mustParse(t, `{}`)

	var mu sync.Mutex
	var reported [][2]string
	handler := func(locale, key string) {
		mu.Lock()
		reported = append(reported, [2]string{locale, key})
		mu.Unlock()
	}

	tr := translate.New("de", de, en,
		translate.WithFallbackLocale("en"),
		translate.WithMissingKeyHandler(handler),
	)

	t.Run("each failed chain step reports", func(t *testing.T) {
		assert.Equal(t, "gone", tr.T("gone"))
		mu.Lock()
		defer mu.Unlock()
		require.Len(t, reported, 2)
		assert.Equal(t, [2]string{"de", "gone"}, reported[0])
		assert.Equal(t, [2]string{"en", "gone"}, reported[1])
	})

	t.Run("fallback hit reports only the first step", func(t *testing.T) {
		mu.Lock()
		reported = nil
		mu.Unlock()

		assert.Equal(t, "Known", tr.T("known"))
		mu.Lock()
		defer mu.Unlock()
		require.Len(t, reported, 1)
		assert.Equal(t, [2]string{"de", "known"}, reported[0])
	})
}

func TestTranslatorNonStringLeaf(t *testing.T) {
	t.Parallel()

	de := mustParse(t, `{"weird": 3.14}`)
	en := mustParse(t, `{"weird": "A string"}`)

	tr := translate.New("de", de, en)
	assert.Equal(t, "A string", tr.T("weird"), "non-string leaf must fall through the chain")
}
