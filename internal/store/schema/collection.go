package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dropforge/nft-hub/internal/domain"
)

// Collection represents the collections table - a logical grouping of NFTs on
// a blockchain, owned by a project.
type Collection struct {
	// ID is the collection identifier; it doubles as the metadata_jsons key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	// Blockchain the collection lives on (solana, polygon, ethereum)
	Blockchain domain.Blockchain `gorm:"column:blockchain;not null;type:text"`
	// Supply bounds the collection; nil means unlimited
	Supply *int64 `gorm:"column:supply"`
	// ProjectID is the owning project (external entity, referenced by id only)
	ProjectID uuid.UUID `gorm:"column:project_id;type:uuid;not null;index:idx_collections_project_id"`
	// CreationStatus tracks chain confirmation (queued/pending/created/paused/failed)
	CreationStatus domain.CreationStatus `gorm:"column:creation_status;not null;type:text"`
	// TotalMints counts persisted mints; total_mints <= supply when supply is set
	TotalMints int64 `gorm:"column:total_mints;not null;default:0"`
	// Address is the on-chain collection address, set by the event processor
	Address *string `gorm:"column:address;type:text"`
	// Signature is the confirming transaction signature
	Signature *string `gorm:"column:signature;type:text"`
	// SellerFeeBasisPoints is the royalty rate in 1/10000ths
	SellerFeeBasisPoints uint16 `gorm:"column:seller_fee_basis_points;not null;default:0"`
	// CreditsDeductionID is the pending credit reservation; set at most once
	CreditsDeductionID *uuid.UUID `gorm:"column:credits_deduction_id;type:uuid"`
	CreatedBy          uuid.UUID  `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt          time.Time  `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Creators []Creator        `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
	Mints    []CollectionMint `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}

// BeforeSave normalizes the on-chain address before it hits the row.
func (c *Collection) BeforeSave(_ *gorm.DB) error {
	normalizeAddressPtr(c.Address)
	return nil
}

// Creator represents the creators table - a royalty recipient attached to a
// collection. Composite key (collection_id, address); shares sum to 100.
type Creator struct {
	CollectionID uuid.UUID `gorm:"column:collection_id;type:uuid;primaryKey"`
	Address      string    `gorm:"column:address;type:text;primaryKey"`
	Verified     bool      `gorm:"column:verified;not null;default:false"`
	Share        uint8     `gorm:"column:share;not null"`
}

// TableName specifies the table name for the Creator model
func (Creator) TableName() string {
	return "creators"
}

func (c *Creator) BeforeSave(_ *gorm.DB) error {
	c.Address = domain.NormalizeAddress(c.Address)
	return nil
}
