package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dropforge/nft-hub/internal/domain"
)

// MintHistory is an append-only record of a mint attempt against a
// collection or drop.
type MintHistory struct {
	ID           uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	MintID       uuid.UUID             `gorm:"column:mint_id;type:uuid;not null;index:idx_mint_histories_mint_id"`
	CollectionID uuid.UUID             `gorm:"column:collection_id;type:uuid;not null;index:idx_mint_histories_collection_id"`
	DropID       *uuid.UUID            `gorm:"column:drop_id;type:uuid;index:idx_mint_histories_drop_id"`
	Wallet       string                `gorm:"column:wallet;not null;type:text"`
	Status       domain.CreationStatus `gorm:"column:status;not null;type:text"`
	Signature    *string               `gorm:"column:signature;type:text"`
	CreatedBy    uuid.UUID             `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt    time.Time             `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the MintHistory model
func (MintHistory) TableName() string {
	return "mint_histories"
}

func (h *MintHistory) BeforeSave(_ *gorm.DB) error {
	h.Wallet = domain.NormalizeAddress(h.Wallet)
	return nil
}

// UpdateHistory records a metadata update requested for a mint.
type UpdateHistory struct {
	ID        uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	MintID    uuid.UUID             `gorm:"column:mint_id;type:uuid;not null;index:idx_update_histories_mint_id"`
	Status    domain.CreationStatus `gorm:"column:status;not null;type:text"`
	Signature *string               `gorm:"column:signature;type:text"`
	CreatedBy uuid.UUID             `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt time.Time             `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the UpdateHistory model
func (UpdateHistory) TableName() string {
	return "update_histories"
}

// SwitchCollectionHistory records a mint being reparented to another
// collection.
type SwitchCollectionHistory struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	MintID           uuid.UUID `gorm:"column:mint_id;type:uuid;not null;index:idx_switch_histories_mint_id"`
	PrevCollectionID uuid.UUID `gorm:"column:prev_collection_id;type:uuid;not null"`
	NewCollectionID  uuid.UUID `gorm:"column:new_collection_id;type:uuid;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the SwitchCollectionHistory model
func (SwitchCollectionHistory) TableName() string {
	return "switch_collection_histories"
}

// NftTransfer records an asset transfer between wallets.
type NftTransfer struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CollectionMintID   uuid.UUID  `gorm:"column:collection_mint_id;type:uuid;not null;index:idx_nft_transfers_mint_id"`
	Sender             string     `gorm:"column:sender;not null;type:text"`
	Recipient          string     `gorm:"column:recipient;not null;type:text"`
	Signature          *string    `gorm:"column:signature;type:text"`
	CreditsDeductionID *uuid.UUID `gorm:"column:credits_deduction_id;type:uuid"`
	CreatedAt          time.Time  `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the NftTransfer model
func (NftTransfer) TableName() string {
	return "nft_transfers"
}

func (t *NftTransfer) BeforeSave(_ *gorm.DB) error {
	t.Sender = domain.NormalizeAddress(t.Sender)
	t.Recipient = domain.NormalizeAddress(t.Recipient)
	return nil
}
