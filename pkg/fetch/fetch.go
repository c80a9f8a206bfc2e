// ABOUTME: Fetcher contract and raw HTTP retrieval
// ABOUTME: Classifies failures as retryable or non-retryable

package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// AssetRef is an opaque handle to one asset reference discovered in fetched
// content. ID is the literal reference string found in the content; Rewrite
// replaces the reference's URI in place.
type AssetRef interface {
	ID() string
	Rewrite(uri string)
}

// Content is parsed remote content that can be serialized after its asset
// references have been rewritten.
type Content interface {
	Bytes() ([]byte, error)
}

// Getter fetches url and returns the parsed content together with the asset
// references found in it. Implementations report transient failures as
// *RetryableError and permanent ones as *NonRetryableError.
type Getter func(url string, timeout time.Duration) (Content, []AssetRef, error)

// FetchData retrieves the raw payload at rawURL.
//
// Connection failures and timeouts are retryable; an invalid URL or an HTTP
// 4xx response is not; HTTP 5xx is retryable. Any other status returns the
// body as-is.
func FetchData(rawURL string, timeout time.Duration) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &NonRetryableError{Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &NonRetryableError{Err: fmt.Errorf("unsupported url: %s", rawURL)}
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(rawURL)
	if err != nil {
		return nil, &RetryableError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &NonRetryableError{Err: fmt.Errorf("%s: %s", rawURL, resp.Status)}
	case resp.StatusCode >= 500 && resp.StatusCode < 600:
		return nil, &RetryableError{Err: fmt.Errorf("%s: %s", rawURL, resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RetryableError{Err: err}
	}
	return body, nil
}
