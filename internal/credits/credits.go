// Package credits talks to the external credits service that gates
// chargeable operations behind a reserve-a-deduction handshake.
package credits

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/adapter"
	"github.com/dropforge/nft-hub/internal/domain"
)

// Client defines the credits service operations used by the orchestrators
//
//go:generate mockgen -source=credits.go -destination=../mocks/credits.go -package=mocks -mock_names=Client=MockCreditsClient
type Client interface {
	// SubmitPendingDeduction reserves a deduction for a chargeable action.
	// Returns domain.ErrInsufficientCredits when the balance cannot cover it.
	SubmitPendingDeduction(ctx context.Context, input DeductionInput) (uuid.UUID, error)

	// ConfirmDeduction settles a previously reserved deduction after the
	// chain operation finalized. The credits service resolves the
	// organization from the deduction itself.
	ConfirmDeduction(ctx context.Context, deductionID uuid.UUID) error
}

// DeductionInput identifies who is charged for what.
type DeductionInput struct {
	OrganizationID uuid.UUID         `json:"organization_id"`
	UserID         uuid.UUID         `json:"user_id"`
	Action         domain.Action     `json:"action"`
	Blockchain     domain.Blockchain `json:"blockchain"`
	Balance        uint64            `json:"balance"`
}

// Config holds the credits service endpoint settings.
type Config struct {
	BaseURL   string
	AuthToken string
}

type client struct {
	cfg  Config
	http adapter.HTTPClient
}

// NewClient creates a credits service client.
func NewClient(cfg Config, httpClient adapter.HTTPClient) Client {
	return &client{cfg: cfg, http: httpClient}
}

type deductionResponse struct {
	DeductionID *uuid.UUID `json:"deduction_id"`
}

// SubmitPendingDeduction reserves a deduction. Chains without pricing
// (today: ethereum) are rejected before any request is made.
func (c *client) SubmitPendingDeduction(ctx context.Context, input DeductionInput) (uuid.UUID, error) {
	if input.Blockchain == domain.BlockchainEthereum {
		return uuid.Nil, domain.ErrBlockchainNotSupported
	}

	body, err := c.post(ctx, c.cfg.BaseURL+"/deductions/pending", input)
	if err != nil {
		return uuid.Nil, err
	}

	var resp deductionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode deduction response: %w", err)
	}
	if resp.DeductionID == nil {
		return uuid.Nil, domain.ErrInsufficientCredits
	}
	return *resp.DeductionID, nil
}

func (c *client) ConfirmDeduction(ctx context.Context, deductionID uuid.UUID) error {
	payload := map[string]uuid.UUID{
		"deduction_id": deductionID,
	}
	_, err := c.post(ctx, c.cfg.BaseURL+"/deductions/confirm", payload)
	return err
}

// post sends an authorized JSON request, retrying transient failures.
func (c *client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	var respBody []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.cfg.AuthToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("credits request failed: %w", err)
		}
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode >= http.StatusInternalServerError ||
			resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("credits service unavailable: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("credits request rejected: status %d: %s", resp.StatusCode, string(body)))
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read credits response: %w", err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return respBody, nil
}
