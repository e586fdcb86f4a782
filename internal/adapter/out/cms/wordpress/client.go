// Package wordpress implements the CMS out-port against the WordPress
// REST API (/wp-json/wp/v2).
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/pkg/metrics"
)

const apiBase = "/wp-json/wp/v2"

type Config struct {
	BaseURL string
	// Application-password credentials, used for writes. Reads stay
	// unauthenticated when empty.
	Username    string
	AppPassword string
	Timeout     time.Duration
}

type Client struct {
	base        string
	username    string
	appPassword string
	http        *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "can't parse CMS base URL %q", cfg.BaseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("CMS base URL %q must be absolute", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base:        strings.TrimRight(base.String(), "/") + apiBase,
		username:    cfg.Username,
		appPassword: cfg.AppPassword,
		http:        &http.Client{Timeout: timeout},
	}, nil
}

// errorPayload is the WordPress REST error envelope.
type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
	} `json:"data"`
}

// do issues one request and decodes the JSON response into out. The
// response headers are returned for collection metadata.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) (http.Header, error) {
	target := c.base + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "can't encode %s %s request body", method, endpoint)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create an http request for %s", target)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.appPassword)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveCMSRequest(method, "error", time.Since(started).Seconds())
		return nil, errors.Wrapf(cms.ErrRemote, "can't reach %s: %v", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveCMSRequest(method, "error", time.Since(started).Seconds())
		return nil, errors.Wrapf(cms.ErrRemote, "can't read the body of %s response: %v", target, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		metrics.ObserveCMSRequest(method, "error", time.Since(started).Seconds())
		return nil, errors.Wrapf(cms.ErrNotFound, "%s %s", method, endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveCMSRequest(method, "error", time.Since(started).Seconds())
		var payload errorPayload
		if jsonErr := json.Unmarshal(raw, &payload); jsonErr == nil && payload.Message != "" {
			return nil, errors.Wrapf(cms.ErrRemote, "%s %s: %s (%s)", method, endpoint, payload.Message, payload.Code)
		}
		return nil, errors.Wrapf(cms.ErrRemote, "%s %s: unexpected status %s", method, endpoint, resp.Status)
	}

	metrics.ObserveCMSRequest(method, "ok", time.Since(started).Seconds())
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, errors.Wrapf(cms.ErrDecode, "%s %s: %v", method, endpoint, err)
		}
	}
	return resp.Header, nil
}

// collectionMeta reads WordPress pagination totals off a list response.
func collectionMeta(h http.Header) (totalItems, totalPages int) {
	totalItems, _ = strconv.Atoi(h.Get("X-WP-Total"))
	totalPages, _ = strconv.Atoi(h.Get("X-WP-TotalPages"))
	return totalItems, totalPages
}

func listQuery(params cms.ListParams) url.Values {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	return q
}
