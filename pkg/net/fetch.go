// Package net fetches documents and stylesheets by path or URL. It only
// hands bytes to the engine; parsing happens elsewhere.
package net

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const userAgent = "crusoe/1.0 (compatible; Go)"

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// IsNetworkURL reports whether the string looks like an HTTP or HTTPS URL.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch retrieves the content at the given reference: a local file path or
// an HTTP/HTTPS URL.
func Fetch(ref string) ([]byte, error) {
	if IsNetworkURL(ref) {
		return fetchHTTP(ref)
	}
	body, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ref, err)
	}
	return body, nil
}

func fetchHTTP(rawURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, rawURL)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// Fetcher resolves relative references against the document they came
// from, so linked stylesheets load from the right place.
type Fetcher struct {
	base string
}

// NewFetcher creates a Fetcher whose relative references resolve against
// base (the document's own path or URL).
func NewFetcher(base string) *Fetcher {
	return &Fetcher{base: base}
}

// Fetch retrieves ref, resolving it against the base when relative.
func (f *Fetcher) Fetch(ref string) ([]byte, error) {
	return Fetch(f.Resolve(ref))
}

// Resolve returns the absolute form of ref relative to the base.
func (f *Fetcher) Resolve(ref string) string {
	if IsNetworkURL(ref) || f.base == "" {
		return ref
	}
	if IsNetworkURL(f.base) {
		baseURL, err := url.Parse(f.base)
		if err != nil {
			return ref
		}
		refURL, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		return baseURL.ResolveReference(refURL).String()
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(f.base), ref)
}
