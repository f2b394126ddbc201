// Package smartystreets is a client for the SmartyStreets street-address,
// ZIP code and autocomplete APIs.
package smartystreets

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smartystreets-api/internal/transformers"
	"smartystreets-api/pkg/logger"
)

const (
	DefaultHost    = "https://api.smartystreets.com"
	DefaultTimeout = 30 * time.Second
)

// Client sends requests to the SmartyStreets address APIs. It is immutable
// after NewClient and safe for concurrent use.
type Client struct {
	authID     string
	authToken  string
	host       string
	proxy      *url.URL
	headers    http.Header
	httpClient *http.Client
	parser     transformers.AddressTransformer
	log        *logger.Logger
}

type settings struct {
	host            string
	proxy           string
	includeInvalid  bool
	standardizeOnly bool
	httpClient      *http.Client
	timeout         time.Duration
	log             *logger.Logger
	parser          transformers.AddressTransformer
}

// Option configures a Client.
type Option func(*settings)

// WithHost overrides the API base URL.
func WithHost(host string) Option {
	return func(s *settings) { s.host = host }
}

// WithProxy routes every request through the given proxy URL.
func WithProxy(proxy string) Option {
	return func(s *settings) { s.proxy = proxy }
}

// WithIncludeInvalid asks the service to return candidates for invalid addresses.
func WithIncludeInvalid(enabled bool) Option {
	return func(s *settings) { s.includeInvalid = enabled }
}

// WithStandardizeOnly asks the service to standardize without verifying.
func WithStandardizeOnly(enabled bool) Option {
	return func(s *settings) { s.standardizeOnly = enabled }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) { s.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

func WithLogger(l *logger.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithParser replaces the free-text address parser.
func WithParser(p transformers.AddressTransformer) Option {
	return func(s *settings) { s.parser = p }
}

// NewClient creates a new SmartyStreets client
func NewClient(authID, authToken string, opts ...Option) (*Client, error) {
	if authID == "" {
		return nil, ErrMissingAuthID
	}
	if authToken == "" {
		return nil, ErrMissingAuthToken
	}

	s := settings{host: DefaultHost, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&s)
	}

	c := &Client{
		authID:    authID,
		authToken: authToken,
		host:      strings.TrimRight(s.host, "/"),
		headers:   http.Header{},
		parser:    s.parser,
		log:       s.log,
	}
	if c.host == "" {
		c.host = DefaultHost
	}
	if c.parser == nil {
		c.parser = defaultParser
	}
	if c.log == nil {
		c.log = logger.GlobalLogger
	}
	if c.log == nil {
		c.log = logger.Discard()
	}

	c.headers.Set("Accept", "application/json")
	if s.includeInvalid {
		c.headers.Set("X-Include-Invalid", "true")
	}
	if s.standardizeOnly {
		c.headers.Set("X-Standardize-Only", "true")
	}

	if s.proxy != "" {
		proxyURL, err := url.Parse(s.proxy)
		if err != nil || proxyURL.Host == "" {
			return nil, contractError(fmt.Sprintf("invalid proxy url: %s", s.proxy), err)
		}
		c.proxy = proxyURL
	}
	c.httpClient = buildHTTPClient(s.httpClient, s.timeout, c.proxy)

	return c, nil
}

func buildHTTPClient(base *http.Client, timeout time.Duration, proxy *url.URL) *http.Client {
	if base == nil {
		base = &http.Client{Timeout: timeout}
	} else {
		clone := *base
		base = &clone
	}
	if proxy == nil {
		return base
	}

	var transport *http.Transport
	switch t := base.Transport.(type) {
	case nil:
		transport = http.DefaultTransport.(*http.Transport).Clone()
	case *http.Transport:
		transport = t.Clone()
	default:
		// custom round trippers manage their own proxying
		return base
	}
	transport.Proxy = http.ProxyURL(proxy)
	base.Transport = transport
	return base
}

// Host returns the API base URL.
func (c *Client) Host() string {
	return c.host
}

// Proxy returns the configured proxy URL or an empty string.
func (c *Client) Proxy() string {
	if c.proxy == nil {
		return ""
	}
	return c.proxy.String()
}
