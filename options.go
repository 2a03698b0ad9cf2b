package fleetsync

import (
	"net/http"

	"github.com/planequery/fleetsync/pkg/reconcile"
)

// Option is a function that configures a Fleetsync instance.
type Option func(*config) error

// config holds construction-time settings for a Fleetsync instance.
type config struct {
	catalogDir string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	reconciler *reconcile.Reconciler
}

func newConfig() *config {
	return &config{
		catalogDir: "catalogs",
	}
}

// WithCatalogDir configures the directory holding catalog documents.
func WithCatalogDir(dir string) Option {
	return func(c *config) error {
		if dir != "" {
			c.catalogDir = dir
		}
		return nil
	}
}

// WithFleetAPI configures the upstream fleet API. An empty base URL
// keeps the default endpoint; an empty key disables authentication.
func WithFleetAPI(baseURL, apiKey string) Option {
	return func(c *config) error {
		c.baseURL = baseURL
		c.apiKey = apiKey
		return nil
	}
}

// WithHTTPClient configures the HTTP client used for fleet API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) error {
		c.httpClient = client
		return nil
	}
}

// WithReconciler configures a custom reconciler, e.g. one with a pinned
// clock or a registry bound to a different schema version.
func WithReconciler(r *reconcile.Reconciler) Option {
	return func(c *config) error {
		c.reconciler = r
		return nil
	}
}
