// Package uploads implements the metadata JSON upload client against the
// external upload service.
package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gowebpki/jcs"

	"github.com/dropforge/nft-hub/internal/adapter"
)

// Upload retry policy: exponential backoff jittered from 30ms, 15 attempts.
const (
	retryMinInterval = 30 * time.Millisecond
	maxAttempts      = 15
)

// Result is the upload outcome; URI is the canonical IPFS URL and CID the
// content identifier.
type Result struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// Client uploads metadata documents
//
//go:generate mockgen -source=uploads.go -destination=../mocks/uploads.go -package=mocks -mock_names=Client=MockUploadClient
type Client interface {
	// UploadJSON uploads a metadata document and returns where it landed.
	// The document is canonicalized first, so equal content yields equal
	// bytes and therefore the same CID.
	UploadJSON(ctx context.Context, filename string, document any) (*Result, error)
}

// Config holds upload service endpoint settings.
type Config struct {
	BaseURL   string
	AuthToken string
	// MinRetryInterval overrides the 30ms retry floor; zero keeps the default
	MinRetryInterval time.Duration
}

// canonicalize marshals the document and applies JCS so key order and number
// formatting cannot change the uploaded bytes.
func canonicalize(document any) ([]byte, error) {
	raw, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize document: %w", err)
	}
	return canonical, nil
}

// retryPolicy builds the shared jittered backoff bounded to maxAttempts.
func retryPolicy(ctx context.Context, minInterval time.Duration) backoff.BackOff {
	if minInterval == 0 {
		minInterval = retryMinInterval
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = minInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, maxAttempts-1), ctx)
}

// retryable classifies upload responses: 5xx and 429 retry, anything else
// non-200 is permanent.
func responseError(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	err := fmt.Errorf("upload failed: status %d: %s", resp.StatusCode, string(body))
	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return err
	}
	return backoff.Permanent(err)
}

// hubClient posts multipart bodies to {base}/uploads.
type hubClient struct {
	cfg  Config
	http adapter.HTTPClient
}

// NewClient creates the multipart upload client.
func NewClient(cfg Config, httpClient adapter.HTTPClient) Client {
	return &hubClient{cfg: cfg, http: httpClient}
}

func (c *hubClient) UploadJSON(ctx context.Context, filename string, document any) (*Result, error) {
	canonical, err := canonicalize(document)
	if err != nil {
		return nil, err
	}

	var result Result
	operation := func() error {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			return backoff.Permanent(err)
		}
		if _, err := part.Write(canonical); err != nil {
			return backoff.Permanent(err)
		}
		if err := writer.Close(); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/uploads", &buf)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())
		if c.cfg.AuthToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("upload request failed: %w", err)
		}
		defer resp.Body.Close() //nolint:errcheck

		if err := responseError(resp); err != nil {
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode upload response: %w", err))
		}
		return nil
	}

	if err := backoff.Retry(operation, retryPolicy(ctx, c.cfg.MinRetryInterval)); err != nil {
		return nil, err
	}
	return &result, nil
}

// nftStorageClient posts raw JSON to {base}/upload with bearer auth.
type nftStorageClient struct {
	cfg  Config
	http adapter.HTTPClient
}

// NewNftStorageClient creates the JSON upload client.
func NewNftStorageClient(cfg Config, httpClient adapter.HTTPClient) Client {
	return &nftStorageClient{cfg: cfg, http: httpClient}
}

type nftStorageResponse struct {
	Ok    bool `json:"ok"`
	Value struct {
		CID     string    `json:"cid"`
		Size    int64     `json:"size"`
		Created time.Time `json:"created"`
		Type    string    `json:"type"`
	} `json:"value"`
}

func (c *nftStorageClient) UploadJSON(ctx context.Context, _ string, document any) (*Result, error) {
	canonical, err := canonicalize(document)
	if err != nil {
		return nil, err
	}

	var result Result
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/upload", bytes.NewReader(canonical))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("upload request failed: %w", err)
		}
		defer resp.Body.Close() //nolint:errcheck

		if err := responseError(resp); err != nil {
			return err
		}

		var decoded nftStorageResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode upload response: %w", err))
		}
		if !decoded.Ok {
			return fmt.Errorf("upload rejected by storage service")
		}
		result = Result{
			URI: "ipfs://" + decoded.Value.CID,
			CID: decoded.Value.CID,
		}
		return nil
	}

	if err := backoff.Retry(operation, retryPolicy(ctx, c.cfg.MinRetryInterval)); err != nil {
		return nil, err
	}
	return &result, nil
}
