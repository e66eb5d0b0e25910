package domain

import "errors"

var (
	ErrShareSumMismatch        = errors.New("creator shares must sum to 100")
	ErrTooManyCreators         = errors.New("collections can hold at most 5 creators")
	ErrPolygonSingleCreator    = errors.New("polygon collections require exactly one creator")
	ErrVerifiedCreatorMismatch = errors.New("only the project treasury wallet can be a verified creator")
	ErrInvalidSolanaAddress    = errors.New("invalid solana address")
	ErrInvalidEVMAddress       = errors.New("invalid evm address")
	ErrBlockchainNotSupported  = errors.New("blockchain not supported")
	ErrInvalidURL              = errors.New("invalid url")
	ErrNameTooLong             = errors.New("name exceeds 32 characters")
	ErrSymbolTooLong           = errors.New("symbol exceeds 10 characters")
	ErrEntityNotFound          = errors.New("entity not found")
	ErrProjectWalletNotFound   = errors.New("project wallet not found")
	ErrCustomerWalletNotFound  = errors.New("customer wallet not found")
	ErrMetadataURIMissing      = errors.New("metadata uri missing")
	ErrSupplyExhausted         = errors.New("drop supply exhausted")
	ErrSupplyBelowMints        = errors.New("supply cannot drop below minted count")
	ErrInvalidTransition       = errors.New("invalid creation status transition")
	ErrInsufficientCredits     = errors.New("insufficient credits")
	ErrIdentityMissing         = errors.New("missing identity headers")
)
