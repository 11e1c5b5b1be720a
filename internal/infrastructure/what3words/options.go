package what3words

import (
	"maps"
	"net/http"
	"time"
)

const (
	DefaultBaseURL       = "https://api.what3words.com/v3/"
	DefaultLegacyBaseURL = "https://api.what3words.com/v2/"
	DefaultTimeout       = 30 * time.Second
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the v3 operations at another host, e.g. an enterprise
// suite deployment.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

func WithLegacyBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.legacyBaseURL = url
		}
	}
}

// WithReferer sets the Referer header sent with every request.
func WithReferer(referer string) Option {
	return func(c *Client) { c.referer = referer }
}

// WithHeaders adds headers to every request. They are applied after the
// client's own headers and may override them.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		maps.Copy(c.headers, headers)
	}
}

// WithTimeout bounds each request. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}
