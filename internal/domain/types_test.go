package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func int64Ptr(v int64) *int64 { return &v }

func TestDeriveDropStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		state DropState
		want  DropStatus
	}{
		{
			name:  "paused wins over everything",
			state: DropState{PausedAt: timePtr(past), ShutdownAt: timePtr(past), CreationStatus: CreationStatusPending},
			want:  DropStatusPaused,
		},
		{
			name:  "shutdown before creating",
			state: DropState{ShutdownAt: timePtr(past), CreationStatus: CreationStatusPending},
			want:  DropStatusShutdown,
		},
		{
			name:  "pending creation",
			state: DropState{CreationStatus: CreationStatusPending},
			want:  DropStatusCreating,
		},
		{
			name:  "future start time",
			state: DropState{CreationStatus: CreationStatusCreated, StartTime: timePtr(future)},
			want:  DropStatusScheduled,
		},
		{
			name:  "past end time",
			state: DropState{CreationStatus: CreationStatusCreated, StartTime: timePtr(past), EndTime: timePtr(past)},
			want:  DropStatusExpired,
		},
		{
			name:  "supply exhausted",
			state: DropState{CreationStatus: CreationStatusCreated, Supply: int64Ptr(10), TotalMints: 10},
			want:  DropStatusMinted,
		},
		{
			name:  "open supply keeps minting",
			state: DropState{CreationStatus: CreationStatusCreated, TotalMints: 10},
			want:  DropStatusMinting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveDropStatus(tt.state, now))
		})
	}
}

func TestCreationStatusTransitions(t *testing.T) {
	allowed := map[CreationStatus][]CreationStatus{
		CreationStatusQueued:  {CreationStatusPending},
		CreationStatusPending: {CreationStatusCreated, CreationStatusPaused, CreationStatusFailed},
		CreationStatusCreated: {CreationStatusPending},
		CreationStatusFailed:  {CreationStatusPending},
		CreationStatusPaused:  {CreationStatusPending},
	}
	all := []CreationStatus{
		CreationStatusQueued, CreationStatusPending, CreationStatusCreated,
		CreationStatusPaused, CreationStatusFailed,
	}

	for from, tos := range allowed {
		permitted := map[CreationStatus]bool{}
		for _, to := range tos {
			permitted[to] = true
		}
		for _, to := range all {
			assert.Equal(t, permitted[to], from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestValidateCreators(t *testing.T) {
	solanaAddr := "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	otherSolana := "7dHbWXmci3dT8UFYWYZweBLXgycu7Y3iL6trKn1Y7ARj"
	evmAddr := "0x00000000219ab540356cbb839cbe05303d7705fa"

	t.Run("solana ok", func(t *testing.T) {
		err := ValidateCreators(BlockchainSolana, []Creator{
			{Address: solanaAddr, Share: 60},
			{Address: otherSolana, Share: 40},
		})
		assert.NoError(t, err)
	})

	t.Run("share sum must be 100", func(t *testing.T) {
		err := ValidateCreators(BlockchainSolana, []Creator{{Address: solanaAddr, Share: 99}})
		assert.ErrorIs(t, err, ErrShareSumMismatch)
	})

	t.Run("solana caps at five creators", func(t *testing.T) {
		creators := make([]Creator, 6)
		for i := range creators {
			creators[i] = Creator{Address: solanaAddr, Share: 10}
		}
		creators[0].Share = 50
		err := ValidateCreators(BlockchainSolana, creators)
		assert.ErrorIs(t, err, ErrTooManyCreators)
	})

	t.Run("polygon requires exactly one creator", func(t *testing.T) {
		err := ValidateCreators(BlockchainPolygon, []Creator{
			{Address: evmAddr, Share: 50},
			{Address: evmAddr, Share: 50},
		})
		assert.ErrorIs(t, err, ErrPolygonSingleCreator)
	})

	t.Run("polygon validates evm address", func(t *testing.T) {
		err := ValidateCreators(BlockchainPolygon, []Creator{{Address: "not-an-address", Share: 100}})
		assert.ErrorIs(t, err, ErrInvalidEVMAddress)
	})

	t.Run("ethereum rejected", func(t *testing.T) {
		err := ValidateCreators(BlockchainEthereum, []Creator{{Address: evmAddr, Share: 100}})
		assert.ErrorIs(t, err, ErrBlockchainNotSupported)
	})
}

func TestValidateSolanaCreatorVerification(t *testing.T) {
	treasury := "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	other := "7dHbWXmci3dT8UFYWYZweBLXgycu7Y3iL6trKn1Y7ARj"

	assert.NoError(t, ValidateSolanaCreatorVerification(treasury, []Creator{
		{Address: treasury, Verified: true, Share: 100},
	}))
	assert.NoError(t, ValidateSolanaCreatorVerification(treasury, []Creator{
		{Address: other, Verified: false, Share: 100},
	}))
	assert.ErrorIs(t, ValidateSolanaCreatorVerification(treasury, []Creator{
		{Address: other, Verified: true, Share: 100},
	}), ErrVerifiedCreatorMismatch)
}

func TestStatusFromCode(t *testing.T) {
	assert.Equal(t, CreationStatusCreated, StatusFromCode(10))
	assert.Equal(t, CreationStatusPending, StatusFromCode(0))
	assert.Equal(t, CreationStatusPending, StatusFromCode(7))
}
