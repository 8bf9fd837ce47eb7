package prodcat

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopfolk/prodcat/internal/remote"
	"github.com/shopfolk/prodcat/pkg/catalog"
	"github.com/shopfolk/prodcat/pkg/errors"
	"github.com/shopfolk/prodcat/pkg/logging"
)

// options holds the configured options for a Client.
type options struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	pageSize   int
	logger     *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		baseURL:  remote.DefaultBaseURL,
		timeout:  remote.DefaultTimeout,
		pageSize: catalog.DefaultPageSize,
		logger:   logging.Default(),
	}
}

// Option configures a Client.
type Option func(*options) error

// WithBaseURL sets the root URL of the remote catalog service.
func WithBaseURL(baseURL string) Option {
	return func(o *options) error {
		if baseURL == "" {
			return errors.NewValidationError("base_url", baseURL, "must not be empty")
		}
		o.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient supplies a custom HTTP client, overriding WithTimeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) error {
		if httpClient == nil {
			return errors.NewValidationError("http_client", nil, "must not be nil")
		}
		o.httpClient = httpClient
		return nil
	}
}

// WithTimeout sets the HTTP timeout for remote calls.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return errors.NewValidationError("timeout", timeout, "must be positive")
		}
		o.timeout = timeout
		return nil
	}
}

// WithPageSize sets the initial page size of the derived view.
func WithPageSize(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return errors.NewValidationError("page_size", n, "must be a positive integer")
		}
		o.pageSize = n
		return nil
	}
}

// WithLogger sets the logger used for client operations.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "must not be nil")
		}
		o.logger = logger
		return nil
	}
}
