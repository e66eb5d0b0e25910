package domain

import (
	"time"
)

// Blockchain identifies the chain a collection or mint lives on
type Blockchain string

const (
	// BlockchainSolana represents the Solana blockchain
	BlockchainSolana Blockchain = "solana"
	// BlockchainPolygon represents the Polygon blockchain
	BlockchainPolygon Blockchain = "polygon"
	// BlockchainEthereum represents the Ethereum blockchain (not yet chargeable)
	BlockchainEthereum Blockchain = "ethereum"
)

// Valid reports whether the blockchain is a known variant
func (b Blockchain) Valid() bool {
	switch b {
	case BlockchainSolana, BlockchainPolygon, BlockchainEthereum:
		return true
	}
	return false
}

// CreationStatus tracks the lifecycle of an entity that requires chain confirmation
type CreationStatus string

const (
	// CreationStatusQueued means the entity is parked until the queue drains it into pending
	CreationStatusQueued CreationStatus = "queued"
	// CreationStatusPending means the chain operation has been requested but not confirmed
	CreationStatusPending CreationStatus = "pending"
	// CreationStatusCreated means the chain confirmed the operation
	CreationStatusCreated CreationStatus = "created"
	// CreationStatusPaused means the operation was explicitly paused
	CreationStatusPaused CreationStatus = "paused"
	// CreationStatusFailed means the chain operation terminally failed
	CreationStatusFailed CreationStatus = "failed"
)

// CanTransition reports whether moving from s to next is a legal lifecycle step.
// queued → pending → {created, paused, failed}; retry moves created/failed back
// to pending.
func (s CreationStatus) CanTransition(next CreationStatus) bool {
	switch s {
	case CreationStatusQueued:
		return next == CreationStatusPending
	case CreationStatusPending:
		return next == CreationStatusCreated || next == CreationStatusPaused || next == CreationStatusFailed
	case CreationStatusCreated, CreationStatusFailed, CreationStatusPaused:
		return next == CreationStatusPending
	}
	return false
}

// TransitionSources lists the statuses allowed to move into next. Useful for
// guarding transitions inside a single UPDATE's WHERE clause.
func TransitionSources(next CreationStatus) []CreationStatus {
	switch next {
	case CreationStatusPending:
		return []CreationStatus{CreationStatusQueued, CreationStatusCreated, CreationStatusFailed, CreationStatusPaused}
	case CreationStatusCreated, CreationStatusPaused, CreationStatusFailed:
		return []CreationStatus{CreationStatusPending}
	}
	return nil
}

// DropType distinguishes fixed-supply edition drops from open drops
type DropType string

const (
	// DropTypeEdition is a drop with a bounded supply and per-item edition numbers
	DropTypeEdition DropType = "edition"
	// DropTypeOpen is a drop minting distinct metadata items without an edition index
	DropTypeOpen DropType = "open"
)

// DropStatus is derived from the drop and collection rows; it is never stored
type DropStatus string

const (
	DropStatusPaused    DropStatus = "paused"
	DropStatusShutdown  DropStatus = "shutdown"
	DropStatusCreating  DropStatus = "creating"
	DropStatusScheduled DropStatus = "scheduled"
	DropStatusExpired   DropStatus = "expired"
	DropStatusMinted    DropStatus = "minted"
	DropStatusMinting   DropStatus = "minting"
)

// DropState carries the row fields DeriveDropStatus needs
type DropState struct {
	PausedAt       *time.Time
	ShutdownAt     *time.Time
	CreationStatus CreationStatus
	StartTime      *time.Time
	EndTime        *time.Time
	Supply         *int64
	TotalMints     int64
}

// DeriveDropStatus computes the drop status; precedence is top-to-bottom:
// paused, shutdown, creating, scheduled, expired, minted, minting.
func DeriveDropStatus(s DropState, now time.Time) DropStatus {
	switch {
	case s.PausedAt != nil:
		return DropStatusPaused
	case s.ShutdownAt != nil:
		return DropStatusShutdown
	case s.CreationStatus == CreationStatusPending:
		return DropStatusCreating
	case s.StartTime != nil && s.StartTime.After(now):
		return DropStatusScheduled
	case s.EndTime != nil && s.EndTime.Before(now):
		return DropStatusExpired
	case s.Supply != nil && *s.Supply == s.TotalMints:
		return DropStatusMinted
	default:
		return DropStatusMinting
	}
}

// Action is a chargeable operation submitted to the credits service
type Action string

const (
	ActionCreateCollection Action = "create_collection"
	ActionRetryCollection  Action = "retry_collection"
	ActionCreateDrop       Action = "create_drop"
	ActionRetryDrop        Action = "retry_drop"
	ActionMint             Action = "mint"
	ActionRetryMint        Action = "retry_mint"
	ActionTransfer         Action = "transfer"
	ActionUpdateMint       Action = "update_mint"
	ActionSwitchCollection Action = "switch_collection"
)

// OpenDropEdition is the edition sentinel for mints that carry no edition index
const OpenDropEdition int64 = -1

// Creator is a royalty recipient attached to a collection or mint
type Creator struct {
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
	Share    uint8  `json:"share"`
}

// ValidateCreators enforces the per-chain creator rules: shares must sum to
// 100, Solana allows at most 5 creators, Polygon exactly one.
func ValidateCreators(blockchain Blockchain, creators []Creator) error {
	var shareSum int
	for _, c := range creators {
		shareSum += int(c.Share)
	}
	if shareSum != 100 {
		return ErrShareSumMismatch
	}

	switch blockchain {
	case BlockchainSolana:
		if len(creators) > 5 {
			return ErrTooManyCreators
		}
		for _, c := range creators {
			if err := ValidateSolanaAddress(c.Address); err != nil {
				return err
			}
		}
	case BlockchainPolygon:
		if len(creators) != 1 {
			return ErrPolygonSingleCreator
		}
		if err := ValidateEVMAddress(creators[0].Address); err != nil {
			return err
		}
	default:
		return ErrBlockchainNotSupported
	}

	return nil
}

// ValidateSolanaCreatorVerification rejects creators marked verified whose
// address is not the project treasury wallet; other creators must be verified
// independently on chain.
func ValidateSolanaCreatorVerification(treasuryWallet string, creators []Creator) error {
	for _, c := range creators {
		if c.Verified && c.Address != treasuryWallet {
			return ErrVerifiedCreatorMismatch
		}
	}
	return nil
}
