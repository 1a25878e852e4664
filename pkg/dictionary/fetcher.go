package dictionary

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

// Fetcher retrieves and parses the dictionary document for a locale.
type Fetcher interface {
	Fetch(ctx context.Context, locale string) (*Dictionary, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, locale string) (*Dictionary, error)

func (f FetcherFunc) Fetch(ctx context.Context, locale string) (*Dictionary, error) {
	return f(ctx, locale)
}

// HTTPFetcher loads JSON dictionaries from {baseURL}/{locale}.json.
type HTTPFetcher struct {
	client  *http.Client
	baseURL string
}

// HTTPOption configures the HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// NewHTTPFetcher creates a fetcher addressing dictionaries relative to baseURL.
func NewHTTPFetcher(baseURL string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:  http.DefaultClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *HTTPFetcher) Fetch(ctx context.Context, locale string) (*Dictionary, error) {
	url := f.baseURL + "/" + locale + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrFetchFailed, url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	return Parse(data)
}

// FSFetcher loads dictionaries from an fs.FS, typically an embed.FS.
// It tries {locale}.json, then {locale}.yaml, then {locale}.yml.
type FSFetcher struct {
	fsys fs.FS
}

// NewFSFetcher creates a fetcher over the given filesystem.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

func (f *FSFetcher) Fetch(_ context.Context, locale string) (*Dictionary, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		data, err := fs.ReadFile(f.fsys, locale+ext)
		if err != nil {
			continue
		}
		if ext == ".json" {
			return Parse(data)
		}
		return ParseYAML(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, locale)
}
