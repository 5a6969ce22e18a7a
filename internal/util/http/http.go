// Package http provides HTTP utilities for fetching remote resources.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmylchreest/huecount/internal/security"
	"github.com/jmylchreest/huecount/internal/version"
)

const (
	// UserAgentName is the application name used in the User-Agent header.
	UserAgentName = "huecount"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second
)

// FetchOptions configures HTTP fetch behavior.
type FetchOptions struct {
	// Timeout specifies the HTTP request timeout.
	// If zero, DefaultTimeout is used.
	Timeout time.Duration

	// Headers specifies additional HTTP headers to send with the request.
	Headers map[string]string

	// MaxBytes limits the response body size. Zero means unlimited.
	MaxBytes int64

	// ValidateRedirect, when set, is called with every redirect target and
	// aborts the request if it returns an error.
	ValidateRedirect func(url string) error
}

// maxRedirects is the number of redirects followed before giving up.
const maxRedirects = 10

// Fetch retrieves content from a URL with context and timeout support.
// It automatically sets the User-Agent header and handles common HTTP errors.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("too many redirects")
			}
			if opts.ValidateRedirect != nil {
				if err := opts.ValidateRedirect(req.URL.String()); err != nil {
					return fmt.Errorf("redirect to %s rejected: %w", req.URL.Redacted(), err)
				}
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", UserAgent())
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var body io.Reader = resp.Body
	if opts.MaxBytes > 0 {
		if resp.ContentLength > opts.MaxBytes {
			return nil, fmt.Errorf("response too large: %d bytes (maximum: %d): %w",
				resp.ContentLength, opts.MaxBytes, security.ErrSizeLimitExceeded)
		}
		// One extra byte distinguishes a body of exactly MaxBytes from a larger one.
		body = security.NewLimitedReader(resp.Body, opts.MaxBytes+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if opts.MaxBytes > 0 && int64(len(data)) > opts.MaxBytes {
		return nil, fmt.Errorf("response exceeds %d bytes: %w", opts.MaxBytes, security.ErrSizeLimitExceeded)
	}

	return data, nil
}

// UserAgent returns the User-Agent header value sent with every request.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", UserAgentName, version.Version)
}
