package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dropforge/nft-hub/internal/domain"
)

// ProjectWallet maps (project, blockchain) to the project's treasury wallet.
// Rows are written by the treasury event processor.
type ProjectWallet struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	ProjectID     uuid.UUID         `gorm:"column:project_id;type:uuid;not null;uniqueIndex:idx_project_wallets_project_chain,priority:1"`
	Blockchain    domain.Blockchain `gorm:"column:blockchain;not null;type:text;uniqueIndex:idx_project_wallets_project_chain,priority:2"`
	WalletAddress string            `gorm:"column:wallet_address;not null;type:text"`
	CreatedAt     time.Time         `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the ProjectWallet model
func (ProjectWallet) TableName() string {
	return "project_wallets"
}

func (w *ProjectWallet) BeforeSave(_ *gorm.DB) error {
	w.WalletAddress = domain.NormalizeAddress(w.WalletAddress)
	return nil
}

// CustomerWallet is a hub-managed customer wallet; transfers may only leave
// from wallets recorded here.
type CustomerWallet struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	CustomerID uuid.UUID         `gorm:"column:customer_id;type:uuid;not null;uniqueIndex:idx_customer_wallets_customer_chain,priority:1"`
	Blockchain domain.Blockchain `gorm:"column:blockchain;not null;type:text;uniqueIndex:idx_customer_wallets_customer_chain,priority:2"`
	Address    string            `gorm:"column:address;not null;type:text;index:idx_customer_wallets_address"`
	CreatedAt  time.Time         `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the CustomerWallet model
func (CustomerWallet) TableName() string {
	return "customer_wallets"
}

func (w *CustomerWallet) BeforeSave(_ *gorm.DB) error {
	w.Address = domain.NormalizeAddress(w.Address)
	return nil
}
