package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfolk/prodcat/pkg/catalog"
	"github.com/shopfolk/prodcat/pkg/errors"
)

func sample() catalog.Product {
	return catalog.Product{
		ID:          "42",
		Title:       "Standing Desk",
		Price:       299.99,
		Description: "Adjustable height",
		Category:    catalog.NewCategory("Furniture"),
		Images:      []string{"https://example.com/desk.png"},
	}
}

func TestList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]catalog.Product{sample()})
	}))
	defer server.Close()

	client := New(server.URL, nil)
	products, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Standing Desk", products[0].Title)
}

func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(sample())
	}))
	defer server.Close()

	client := New(server.URL, nil)
	product, err := client.Get(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "42", product.ID)
	assert.Equal(t, "furniture", product.Category.Slug)
}

func TestGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	_, err := client.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var notFound *errors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.ID)
}

func TestCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received catalog.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "42", received.ID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	created, err := client.Create(context.Background(), sample())

	require.NoError(t, err)
	assert.Equal(t, "Standing Desk", created.Title)
}

func TestCreateRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "price out of range"})
	}))
	defer server.Close()

	client := New(server.URL, nil)
	_, err := client.Create(context.Background(), sample())

	require.Error(t, err)
	assert.True(t, errors.IsRejected(err))

	var apiErr *errors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "price out of range", apiErr.Message)
}

func TestUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/products/42", r.URL.Path)

		var received catalog.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	p := sample()
	p.Price = 199.99
	updated, err := client.Update(context.Background(), "42", p)

	require.NoError(t, err)
	assert.InDelta(t, 199.99, updated.Price, 0.0001)
}

func TestDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	assert.NoError(t, client.Delete(context.Background(), "42"))
}

func TestDeleteRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	err := client.Delete(context.Background(), "42")

	require.Error(t, err)
	assert.True(t, errors.IsRejected(err))
}

func TestNetworkFailure(t *testing.T) {
	// A server that is already closed refuses connections.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := New(server.URL, nil)
	_, err := client.List(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsNetwork(err))
}

func TestMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := New(server.URL, nil)
	_, err := client.List(context.Background())

	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestBaseURLNormalization(t *testing.T) {
	client := New("http://localhost:3000/", nil)
	assert.Equal(t, "http://localhost:3000", client.BaseURL())

	assert.Equal(t, DefaultBaseURL, New("", nil).BaseURL())
}

func TestIDPathEscaping(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(sample())
	}))
	defer server.Close()

	client := New(server.URL, nil)
	_, err := client.Get(context.Background(), "a b/c")

	require.NoError(t, err)
	assert.Equal(t, "/products/a%20b%2Fc", gotPath)
}
