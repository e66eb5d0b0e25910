package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSolanaAddress(t *testing.T) {
	assert.NoError(t, ValidateSolanaAddress("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"))
	assert.ErrorIs(t, ValidateSolanaAddress("abc"), ErrInvalidSolanaAddress)
	assert.ErrorIs(t, ValidateSolanaAddress("0x00000000219ab540356cbb839cbe05303d7705fa"), ErrInvalidSolanaAddress)
	assert.ErrorIs(t, ValidateSolanaAddress(""), ErrInvalidSolanaAddress)
}

func TestValidateEVMAddress(t *testing.T) {
	assert.NoError(t, ValidateEVMAddress("0x00000000219ab540356cbb839cbe05303d7705fa"))
	assert.NoError(t, ValidateEVMAddress("0x00000000219AB540356cBB839Cbe05303d7705Fa"))
	assert.ErrorIs(t, ValidateEVMAddress("00000000219ab540356cbb839cbe05303d7705fa"), ErrInvalidEVMAddress)
	assert.ErrorIs(t, ValidateEVMAddress("0x123"), ErrInvalidEVMAddress)
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0x00000000219ab540356cbb839cbe05303d7705fa",
		NormalizeAddress("0x00000000219AB540356cBB839Cbe05303d7705Fa"))

	solana := "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	assert.Equal(t, solana, NormalizeAddress(solana))
}
