// Package remote is the boundary adapter to the authoritative product
// store, a REST resource rooted at /products. Transport failures and
// non-success statuses are converted into the error kinds from
// pkg/errors and returned as explicit outcomes; nothing escapes this
// boundary untyped.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopfolk/prodcat/pkg/catalog"
	"github.com/shopfolk/prodcat/pkg/errors"
	"github.com/shopfolk/prodcat/pkg/logging"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL points at the conventional local development service.
const DefaultBaseURL = "http://localhost:3000"

// Client talks to the product resource.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL. A nil httpClient gets
// a default client with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the full product collection.
func (c *Client) List(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, "list", http.MethodGet, c.productsURL(), nil, &products); err != nil {
		return nil, err
	}
	logging.Ctx(ctx).Debug().Int("count", len(products)).Msg("Fetched product collection")
	return products, nil
}

// Get fetches a single product. A 404 comes back as a NotFoundError.
func (c *Client) Get(ctx context.Context, id string) (*catalog.Product, error) {
	var product catalog.Product
	err := c.do(ctx, "get", http.MethodGet, c.productURL(id), nil, &product)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("product", id)
		}
		return nil, err
	}
	return &product, nil
}

// Create posts a new product (with its identifier) to the collection.
func (c *Client) Create(ctx context.Context, p catalog.Product) (*catalog.Product, error) {
	var created catalog.Product
	if err := c.do(ctx, "create", http.MethodPost, c.productsURL(), &p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the product stored under id.
func (c *Client) Update(ctx context.Context, id string, p catalog.Product) (*catalog.Product, error) {
	var updated catalog.Product
	if err := c.do(ctx, "update", http.MethodPut, c.productURL(id), &p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the product stored under id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, c.productURL(id), nil, nil)
}

func (c *Client) productsURL() string {
	return c.baseURL + "/products"
}

func (c *Client) productURL(id string) string {
	return c.baseURL + "/products/" + url.PathEscape(id)
}

// do performs one request/response cycle. body and out may be nil.
func (c *Client) do(ctx context.Context, operation, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.NewParseError("json", operation+" request", "encoding request body failed", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.NewNetworkError(operation, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.ErrTimeout
		}
		return errors.NewNetworkError(operation, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := readErrorMessage(resp.Body)
		logging.Ctx(ctx).Debug().
			Str("operation", operation).
			Int("status", resp.StatusCode).
			Msg("Remote service returned non-success status")
		return errors.NewAPIError(operation, resp.StatusCode, endpoint, message)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewParseError("json", operation+" response", "decoding response body failed", err)
	}
	return nil
}

// readErrorMessage extracts a short human-readable message from an error
// response body, tolerating both JSON and plain text.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
