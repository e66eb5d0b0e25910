package uploads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/adapter"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:          baseURL,
		AuthToken:        "token",
		MinRetryInterval: time.Millisecond,
	}
}

func TestUploadJSONSucceeds(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/uploads", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close() //nolint:errcheck
		buf := make([]byte, 1<<20)
		n, _ := file.Read(buf)
		body = buf[:n]

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Result{URI: "ipfs://bafytest", CID: "bafytest"})
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL), adapter.NewHTTPClient(5*time.Second))
	result, err := c.UploadJSON(context.Background(), "metadata.json", map[string]string{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, "ipfs://bafytest", result.URI)
	assert.Equal(t, "bafytest", result.CID)
	assert.JSONEq(t, `{"name":"x"}`, string(body))
}

func TestUploadJSONRetriesUntilSuccess(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 15 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Result{URI: "ipfs://bafyretry", CID: "bafyretry"})
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL), adapter.NewHTTPClient(5*time.Second))
	result, err := c.UploadJSON(context.Background(), "metadata.json", map[string]string{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, "bafyretry", result.CID)
	assert.Equal(t, int64(15), attempts.Load())
}

func TestUploadJSONGivesUpAfterBudget(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL), adapter.NewHTTPClient(5*time.Second))
	_, err := c.UploadJSON(context.Background(), "metadata.json", map[string]string{"name": "x"})
	require.Error(t, err)
	assert.Equal(t, int64(15), attempts.Load())
}

func TestUploadJSONPermanentOnBadRequest(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL), adapter.NewHTTPClient(5*time.Second))
	_, err := c.UploadJSON(context.Background(), "metadata.json", map[string]string{"name": "x"})
	require.Error(t, err)
	assert.Equal(t, int64(1), attempts.Load())
}

func TestCanonicalizationIsStable(t *testing.T) {
	a, err := canonicalize(map[string]any{"b": 1, "a": "x"})
	require.NoError(t, err)
	b, err := canonicalize(map[string]any{"a": "x", "b": 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNftStorageClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload", r.URL.Path)
		require.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"value":{"cid":"bafystore","size":10,"type":"application/json"}}`))
	}))
	defer server.Close()

	c := NewNftStorageClient(testConfig(server.URL), adapter.NewHTTPClient(5*time.Second))
	result, err := c.UploadJSON(context.Background(), "", map[string]string{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, "ipfs://bafystore", result.URI)
	assert.Equal(t, "bafystore", result.CID)
}
