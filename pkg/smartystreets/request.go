package smartystreets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"smartystreets-api/pkg/logger"
	"smartystreets-api/pkg/metrics"
)

const (
	endpointStreetAddress = "street-address"
	endpointZipcode       = "zipcode"
	endpointSuggest       = "suggest"
)

// endpointURL resolves an endpoint against the base host. Suggestions are
// served from the autocomplete host.
func (c *Client) endpointURL(endpoint string) string {
	u := c.host + "/" + endpoint
	if endpoint == endpointSuggest {
		u = strings.Replace(u, "//api", "//autocomplete-api", 1)
	}
	return u
}

// call performs exactly one round trip for payload. Single payloads go as
// GET query parameters, batches as a POST JSON array.
func (c *Client) call(ctx context.Context, endpoint string, payload *Payload) (*Result, error) {
	items := make([]Request, len(payload.Items))
	for i, item := range payload.Items {
		items[i] = withInputID(item)
	}

	req, err := c.buildRequest(ctx, endpoint, items, payload.Batch)
	if err != nil {
		c.log.Errorf("Failed to create %s request: error=%v", endpoint, err)
		return nil, contractError(fmt.Sprintf("failed to create %s request: %v", endpoint, err), err)
	}
	if c.log.Level() == logger.DEBUG {
		c.log.Debugf("SmartyStreets request: endpoint=%s, method=%s, url=%s, items=%d", endpoint, req.Method, redact(req.URL), len(items))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint, req.Method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, req.Method, "error").Inc()
		c.log.Errorf("Failed to send %s request: url=%s, error=%v", endpoint, redact(req.URL), err)
		return nil, transportError(err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, req.Method, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Errorf("Failed to read %s response body: url=%s, status=%s, error=%v", endpoint, redact(req.URL), resp.Status, err)
		return nil, transportError(err)
	}

	result, err := interpretResponse(resp.StatusCode, body)
	if err != nil {
		c.log.Errorf("SmartyStreets %s failed: url=%s, status=%s, response=%s", endpoint, redact(req.URL), resp.Status, string(body))
		return nil, err
	}
	return result, nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, items []Request, batch bool) (*http.Request, error) {
	u, err := url.Parse(c.endpointURL(endpoint))
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	method := http.MethodGet
	var body io.Reader
	if batch {
		method = http.MethodPost
		encoded, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	} else if len(items) > 0 {
		for k, v := range items[0] {
			if s, ok := queryValue(v); ok {
				query.Set(k, s)
			}
		}
	}
	query.Set("auth-id", c.authID)
	query.Set("auth-token", c.authToken)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header = c.headers.Clone()
	if batch {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// redact hides the auth token before a URL is logged.
func redact(u *url.URL) string {
	clone := *u
	query := clone.Query()
	if query.Has("auth-token") {
		query.Set("auth-token", "REDACTED")
	}
	clone.RawQuery = query.Encode()
	return clone.String()
}
