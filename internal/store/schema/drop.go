package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/domain"
)

// Drop represents the drops table - a time-bound minting campaign over a
// single collection.
type Drop struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProjectID    uuid.UUID `gorm:"column:project_id;type:uuid;not null;index:idx_drops_project_id"`
	CollectionID uuid.UUID `gorm:"column:collection_id;type:uuid;not null;uniqueIndex:idx_drops_collection_id"`
	// DropType distinguishes edition drops (bounded, numbered) from open drops
	DropType       domain.DropType       `gorm:"column:drop_type;not null;type:text"`
	CreationStatus domain.CreationStatus `gorm:"column:creation_status;not null;type:text"`
	StartTime      *time.Time            `gorm:"column:start_time"`
	EndTime        *time.Time            `gorm:"column:end_time"`
	PausedAt       *time.Time            `gorm:"column:paused_at"`
	ShutdownAt     *time.Time            `gorm:"column:shutdown_at"`
	// Price in the chain's native minor unit
	Price     int64     `gorm:"column:price;not null;default:0"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	Collection *Collection `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Drop model
func (Drop) TableName() string {
	return "drops"
}

// State bundles the fields drop status derivation reads. The collection row
// must be loaded alongside the drop.
func (d *Drop) State() domain.DropState {
	s := domain.DropState{
		PausedAt:       d.PausedAt,
		ShutdownAt:     d.ShutdownAt,
		CreationStatus: d.CreationStatus,
		StartTime:      d.StartTime,
		EndTime:        d.EndTime,
	}
	if d.Collection != nil {
		s.Supply = d.Collection.Supply
		s.TotalMints = d.Collection.TotalMints
	}
	return s
}
