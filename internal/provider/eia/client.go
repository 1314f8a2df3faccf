package eia

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"eia-trends/internal/model"
)

const (
	// DefaultBaseURL is the EIA v2 API root.
	DefaultBaseURL = "https://api.eia.gov/v2"

	// requestCooldown is the fixed pause between consecutive series
	// requests. A courtesy delay, not a rate limiter: no backoff,
	// no jitter.
	requestCooldown = 500 * time.Millisecond
)

// LogFunc emits a log line. When set, used instead of slog (fan-in logger).
type LogFunc func(msg string)

// Client fetches series observations from the EIA v2 API.
type Client struct {
	client   *http.Client
	BaseURL  string
	APIKey   string
	Cooldown time.Duration
	LogFunc  LogFunc             // Optional logger override for fetch progress.
	sleep    func(time.Duration) // stubbed in tests; nil means time.Sleep
}

// NewClient constructs a Client with a shared HTTP client. An empty
// baseURL falls back to DefaultBaseURL.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:   newHTTPClient(),
		BaseURL:  baseURL,
		APIKey:   apiKey,
		Cooldown: requestCooldown,
		sleep:    time.Sleep,
	}, nil
}

func (c *Client) logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.LogFunc != nil {
		c.LogFunc(msg)
	} else {
		slog.Info(msg)
	}
}

// Close closes connections
func (c *Client) Close() error {
	return nil
}

// buildSeriesRequest builds the GET request for one series ID.
func (c *Client) buildSeriesRequest(id string) (*http.Request, error) {
	rawURL := fmt.Sprintf("%s/seriesid/%s", c.BaseURL, url.PathEscape(id))
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.APIKey)
	u.RawQuery = q.Encode()
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Connection", "close")
	return req, nil
}

// FetchSeries retrieves the raw observations for one series. A non-200
// status yields *RemoteError; a body that does not carry the expected
// response envelope yields *MalformedResponseError.
func (c *Client) FetchSeries(name, id string) ([]model.Observation, error) {
	client := c.client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := c.buildSeriesRequest(id)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &RemoteError{Series: name, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope seriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &MalformedResponseError{Series: name, Err: err}
	}
	if envelope.Response == nil {
		return nil, &MalformedResponseError{Series: name, Err: fmt.Errorf("missing response envelope")}
	}
	// A genuinely empty series arrives as "data": []; an envelope with
	// no data list at all is malformed.
	if envelope.Response.Data == nil {
		return nil, &MalformedResponseError{Series: name, Err: fmt.Errorf("envelope has no data list")}
	}

	obs := make([]model.Observation, 0, len(envelope.Response.Data))
	for _, rec := range envelope.Response.Data {
		obs = append(obs, rec.ToObservation())
	}
	return obs, nil
}

// FetchAll retrieves every requested series in order, pausing Cooldown
// between requests. Fail-fast: the first failed request aborts the
// whole fetch and no partial data is returned.
func (c *Client) FetchAll(requests []model.SeriesRequest) (*model.SeriesData, error) {
	sleep := c.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	raw := model.NewSeriesData()
	for i, req := range requests {
		if i > 0 && c.Cooldown > 0 {
			sleep(c.Cooldown)
		}
		c.logf("[%s] fetching series %s", req.Name, req.ID)
		obs, err := c.FetchSeries(req.Name, req.ID)
		if err != nil {
			return nil, err
		}
		c.logf("[%s] got %d data points", req.Name, len(obs))
		raw.Add(req.Name, obs)
	}
	return raw, nil
}
