package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dropforge/nft-hub/internal/domain"
)

// CollectionMint represents the collection_mints table - a single NFT minted
// (or queued to mint) into a collection.
type CollectionMint struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CollectionID uuid.UUID `gorm:"column:collection_id;type:uuid;not null;index:idx_collection_mints_collection_id"`
	// Address is the on-chain mint address, set by the event processor
	Address *string `gorm:"column:address;type:text"`
	// Owner is the current holder's wallet address
	Owner          *string               `gorm:"column:owner;type:text;index:idx_collection_mints_owner"`
	CreationStatus domain.CreationStatus `gorm:"column:creation_status;not null;type:text"`
	// Edition is the per-item index for edition drops; -1 for open/non-editioned mints
	Edition              int64      `gorm:"column:edition;not null"`
	SellerFeeBasisPoints uint16     `gorm:"column:seller_fee_basis_points;not null;default:0"`
	Compressed           bool       `gorm:"column:compressed;not null;default:false"`
	Signature            *string    `gorm:"column:signature;type:text"`
	CreditsDeductionID   *uuid.UUID `gorm:"column:credits_deduction_id;type:uuid"`
	CreatedBy            uuid.UUID  `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt            time.Time  `gorm:"column:created_at;not null;default:now()"`
	// RandomPick spreads queued-mint draining; assigned at insert
	RandomPick int64 `gorm:"column:random_pick;not null"`

	Creators []MintCreator `gorm:"foreignKey:MintID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CollectionMint model
func (CollectionMint) TableName() string {
	return "collection_mints"
}

func (m *CollectionMint) BeforeSave(_ *gorm.DB) error {
	normalizeAddressPtr(m.Address)
	normalizeAddressPtr(m.Owner)
	return nil
}

// MintCreator represents the mint_creators table - royalty recipients scoped
// to a single mint.
type MintCreator struct {
	MintID   uuid.UUID `gorm:"column:mint_id;type:uuid;primaryKey"`
	Address  string    `gorm:"column:address;type:text;primaryKey"`
	Verified bool      `gorm:"column:verified;not null;default:false"`
	Share    uint8     `gorm:"column:share;not null"`
}

// TableName specifies the table name for the MintCreator model
func (MintCreator) TableName() string {
	return "mint_creators"
}

func (c *MintCreator) BeforeSave(_ *gorm.DB) error {
	c.Address = domain.NormalizeAddress(c.Address)
	return nil
}
