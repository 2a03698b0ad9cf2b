// Package flightapi is the thin HTTP collaborator that fetches raw
// fleet snapshots from the upstream fleet-tracking API. It has no
// decision logic of its own: it hands the core a decoded snapshot and
// nothing else. Retry and backoff policy are owned by the scheduler
// that invokes it.
package flightapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/planequery/fleetsync/pkg/errors"
	"github.com/planequery/fleetsync/pkg/logging"
	"github.com/planequery/fleetsync/pkg/sources"
)

const defaultBaseURL = "https://api.planequery.com/v1"

// Client talks to the fleet-tracking API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// New creates a client authenticated with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchFleet retrieves the current fleet snapshot for an airline. The
// fleet API rejects unauthenticated requests, so a missing key fails
// before the network call.
func (c *Client) FetchFleet(ctx context.Context, airlineCode string) (*sources.Snapshot, error) {
	if c.apiKey == "" {
		return nil, &errors.APIError{
			Source:  "flight_api",
			Message: "no API key configured",
			Err:     errors.ErrAPIKeyRequired,
		}
	}

	url := fmt.Sprintf("%s/airlines/%s/fleet", c.baseURL, airlineCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewAPIError("flight_api", 0, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	logging.Ctx(ctx).Debug().Str("url", url).Str("airline", airlineCode).Msg("Fetching fleet snapshot")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errors.APIError{Source: "flight_api", Endpoint: url, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.APIError{
			Source:     "flight_api",
			StatusCode: resp.StatusCode,
			Endpoint:   url,
			Message:    resp.Status,
		}
	}

	snapshot, err := sources.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	if snapshot.Airline == "" {
		snapshot.Airline = airlineCode
	}
	return snapshot, nil
}
