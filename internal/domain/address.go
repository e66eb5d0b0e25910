package domain

import (
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

const solanaPubkeyLength = 32

// ValidateSolanaAddress checks that the address is a base58-encoded 32-byte
// public key.
func ValidateSolanaAddress(address string) error {
	raw, err := base58.Decode(address)
	if err != nil || len(raw) != solanaPubkeyLength {
		return ErrInvalidSolanaAddress
	}
	return nil
}

// ValidateEVMAddress checks the 0x-prefixed 40-hex-digit form.
func ValidateEVMAddress(address string) error {
	if !ethcommon.IsHexAddress(address) {
		return ErrInvalidEVMAddress
	}
	return nil
}

// ValidateAddress dispatches on the blockchain of the wallet.
func ValidateAddress(blockchain Blockchain, address string) error {
	switch blockchain {
	case BlockchainSolana:
		return ValidateSolanaAddress(address)
	case BlockchainPolygon, BlockchainEthereum:
		return ValidateEVMAddress(address)
	}
	return ErrBlockchainNotSupported
}

// NormalizeAddress lower-cases EVM addresses; Solana addresses are
// case-sensitive and pass through untouched.
func NormalizeAddress(address string) string {
	if IsEVMAddress(address) {
		return strings.ToLower(address)
	}
	return address
}

// IsEVMAddress reports whether the string looks like a 0x-prefixed address.
func IsEVMAddress(address string) bool {
	return strings.HasPrefix(address, "0x") || strings.HasPrefix(address, "0X")
}
