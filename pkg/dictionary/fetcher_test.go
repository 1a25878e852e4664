package dictionary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingua/pkg/dictionary"
)

func TestHTTPFetcher(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/locales/en.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"greeting":"Hello, señor"}`))
	})
	mux.HandleFunc("/locales/broken.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{broken`))
	})
	mux.HandleFunc("/locales/flaky.json", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	fetcher := dictionary.NewHTTPFetcher(srv.URL + "/locales/")

	t.Run("fetches and parses", func(t *testing.T) {
		t.Parallel()
		dict, err := fetcher.Fetch(ctx, "en")
		require.NoError(t, err)

		entry, ok := dict.Resolve("greeting")
		require.True(t, ok)
		assert.Equal(t, "Hello, señor", entry.Text)
	})

	t.Run("missing resource", func(t *testing.T) {
		t.Parallel()
		_, err := fetcher.Fetch(ctx, "nope")
		require.ErrorIs(t, err, dictionary.ErrNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		_, err := fetcher.Fetch(ctx, "flaky")
		require.ErrorIs(t, err, dictionary.ErrFetchFailed)
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()
		_, err := fetcher.Fetch(ctx, "broken")
		require.ErrorIs(t, err, dictionary.ErrInvalidDocument)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := fetcher.Fetch(canceled, "en")
		require.Error(t, err)
	})
}

func TestFSFetcher(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fsys := fstest.MapFS{
		"en.json": {Data: []byte(`{"hello":"Hello"}`)},
		"de.yaml": {Data: []byte("hello: Hallo\n")},
		"fr.yml":  {Data: []byte("hello: Salut\n")},
	}
	fetcher := dictionary.NewFSFetcher(fsys)

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		dict, err := fetcher.Fetch(ctx, "en")
		require.NoError(t, err)
		entry, ok := dict.Resolve("hello")
		require.True(t, ok)
		assert.Equal(t, "Hello", entry.Text)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		dict, err := fetcher.Fetch(ctx, "de")
		require.NoError(t, err)
		entry, ok := dict.Resolve("hello")
		require.True(t, ok)
		assert.Equal(t, "Hallo", entry.Text)
	})

	t.Run("yml extension", func(t *testing.T) {
		t.Parallel()
		dict, err := fetcher.Fetch(ctx, "fr")
		require.NoError(t, err)
		entry, ok := dict.Resolve("hello")
		require.True(t, ok)
		assert.Equal(t, "Salut", entry.Text)
	})

	t.Run("missing locale", func(t *testing.T) {
		t.Parallel()
		_, err := fetcher.Fetch(ctx, "es")
		require.ErrorIs(t, err, dictionary.ErrNotFound)
	})
}
