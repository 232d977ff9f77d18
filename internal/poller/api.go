package poller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"homework-status-bot/config"
	"homework-status-bot/internal/homework"
)

// Fetcher retrieves the raw homework statuses changed since a timestamp.
type Fetcher interface {
	Fetch(ctx context.Context, from int64) (any, error)
}

// HTTPFetcher queries the homework statuses endpoint.
type HTTPFetcher struct {
	endpoint string
	token    string
	client   *http.Client
	now      func() time.Time
}

// NewHTTPFetcher creates a fetcher for cfg.Endpoint authorized with token.
func NewHTTPFetcher(cfg config.PollerConfig, token string, log zerolog.Logger) *HTTPFetcher {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Warn().Err(err).Str("proxy", cfg.HTTPProxy).Msg("invalid proxy URL, requests will not use it")
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	return &HTTPFetcher{
		endpoint: cfg.Endpoint,
		token:    token,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		now: time.Now,
	}
}

// Fetch performs one GET with from_date=from. A non-positive from means now.
// The decoded body is returned as is; numbers are kept as json.Number.
func (f *HTTPFetcher) Fetch(ctx context.Context, from int64) (any, error) {
	if from <= 0 {
		from = f.now().Unix()
	}

	u, err := url.Parse(f.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", f.endpoint, err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+f.token)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", homework.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &homework.StatusCodeError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", homework.ErrTransport, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", homework.ErrMalformedJSON, err)
	}
	return payload, nil
}
