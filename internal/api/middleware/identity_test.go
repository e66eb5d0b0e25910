package middleware_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/api/middleware"
	"github.com/dropforge/nft-hub/internal/domain"
)

func headers(h map[string]string) func(string) string {
	return func(name string) string { return h[name] }
}

func TestParseIdentity(t *testing.T) {
	userID := uuid.New()
	orgID := uuid.New()

	ident, err := middleware.ParseIdentity(headers(map[string]string{
		middleware.HeaderUserID:        userID.String(),
		middleware.HeaderOrganization:  orgID.String(),
		middleware.HeaderCreditBalance: "250",
	}))
	require.NoError(t, err)
	assert.Equal(t, userID, ident.UserID)
	assert.Equal(t, orgID, ident.OrganizationID)
	assert.Equal(t, uint64(250), ident.Balance)
}

func TestParseIdentityRequiresAllHeaders(t *testing.T) {
	userID := uuid.New().String()
	orgID := uuid.New().String()

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{
			name: "missing user id",
			headers: map[string]string{
				middleware.HeaderOrganization:  orgID,
				middleware.HeaderCreditBalance: "100",
			},
		},
		{
			name: "missing organization id",
			headers: map[string]string{
				middleware.HeaderUserID:        userID,
				middleware.HeaderCreditBalance: "100",
			},
		},
		{
			name: "missing credit balance",
			headers: map[string]string{
				middleware.HeaderUserID:       userID,
				middleware.HeaderOrganization: orgID,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := middleware.ParseIdentity(headers(tc.headers))
			assert.ErrorIs(t, err, domain.ErrIdentityMissing)
		})
	}
}

func TestParseIdentityRejectsMalformedValues(t *testing.T) {
	valid := map[string]string{
		middleware.HeaderUserID:        uuid.New().String(),
		middleware.HeaderOrganization:  uuid.New().String(),
		middleware.HeaderCreditBalance: "100",
	}

	tests := []struct {
		name   string
		header string
		value  string
	}{
		{name: "bad user id", header: middleware.HeaderUserID, value: "not-a-uuid"},
		{name: "bad organization id", header: middleware.HeaderOrganization, value: "not-a-uuid"},
		{name: "negative balance", header: middleware.HeaderCreditBalance, value: "-5"},
		{name: "non-numeric balance", header: middleware.HeaderCreditBalance, value: "lots"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := make(map[string]string, len(valid))
			for k, v := range valid {
				h[k] = v
			}
			h[tc.header] = tc.value

			_, err := middleware.ParseIdentity(headers(h))
			assert.ErrorIs(t, err, domain.ErrIdentityMissing)
		})
	}
}
