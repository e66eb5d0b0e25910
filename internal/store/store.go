package store

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// FinalizeInput carries the outcome of an inbound chain-status event.
type FinalizeInput struct {
	ID        uuid.UUID
	Status    domain.CreationStatus
	Signature *string
	Address   *string
}

// HolderRow aggregates ownership of created mints within a collection.
type HolderRow struct {
	CollectionID uuid.UUID `gorm:"column:collection_id"`
	Owner        string    `gorm:"column:owner"`
	Mints        int64     `gorm:"column:mints"`
}

// Page bounds a connection-style listing; Limit is pre-clamped by the caller.
type Page struct {
	Limit  int
	Offset int
}

// Store defines the interface for database operations
type Store interface {
	// Point lookups
	GetCollectionByID(ctx context.Context, id uuid.UUID) (*schema.Collection, error)
	GetDropByID(ctx context.Context, id uuid.UUID) (*schema.Drop, error)
	GetMintByID(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error)
	GetMetadataJsonByID(ctx context.Context, id uuid.UUID) (*schema.MetadataJson, error)
	GetTransferByID(ctx context.Context, id uuid.UUID) (*schema.NftTransfer, error)
	GetProjectWallet(ctx context.Context, projectID uuid.UUID, blockchain domain.Blockchain) (*schema.ProjectWallet, error)
	GetCustomerWalletByAddress(ctx context.Context, address string) (*schema.CustomerWallet, error)

	// Transactional write paths; children are inserted with their parent
	CreateCollection(ctx context.Context, collection *schema.Collection, creators []schema.Creator, json *schema.MetadataJson) error
	CreateDrop(ctx context.Context, collection *schema.Collection, drop *schema.Drop, creators []schema.Creator, json *schema.MetadataJson) error
	CreateMint(ctx context.Context, mint *schema.CollectionMint, creators []schema.MintCreator, json *schema.MetadataJson, history *schema.MintHistory) error
	CreateTransfer(ctx context.Context, transfer *schema.NftTransfer) error
	CreateUpdateHistory(ctx context.Context, history *schema.UpdateHistory) error
	SwitchMintCollection(ctx context.Context, mintID, newCollectionID uuid.UUID) error

	// Patching
	ReplaceMetadataJson(ctx context.Context, json *schema.MetadataJson) error
	ReplaceCollectionCreators(ctx context.Context, collectionID uuid.UUID, creators []schema.Creator) error
	ReplaceMintCreators(ctx context.Context, mintID uuid.UUID, creators []schema.MintCreator) error
	UpdateDropSchedule(ctx context.Context, dropID uuid.UUID, start, end *time.Time) error
	UpdateCollectionSupply(ctx context.Context, collectionID uuid.UUID, supply *int64) error
	SetDropPause(ctx context.Context, dropID uuid.UUID, pausedAt *time.Time) error
	SetDropShutdown(ctx context.Context, dropID uuid.UUID, shutdownAt time.Time) error

	// Status transitions; each enforces the creation-status state machine
	TransitionCollection(ctx context.Context, input FinalizeInput) error
	TransitionDrop(ctx context.Context, input FinalizeInput) error
	TransitionMint(ctx context.Context, input FinalizeInput) error
	FinalizeTransfer(ctx context.Context, transferID uuid.UUID, signature string, newOwner *string) error
	UpdateMintHistoryStatus(ctx context.Context, mintID uuid.UUID, status domain.CreationStatus, signature *string) error
	GetLatestMintHistory(ctx context.Context, mintID uuid.UUID) (*schema.MintHistory, error)
	UpdateUpdateHistoryStatus(ctx context.Context, mintID uuid.UUID, status domain.CreationStatus, signature *string) error

	// Credits bookkeeping; deduction ids are written at most once
	SetCollectionDeduction(ctx context.Context, collectionID, deductionID uuid.UUID) error
	SetMintDeduction(ctx context.Context, mintID, deductionID uuid.UUID) error
	SetTransferDeduction(ctx context.Context, transferID, deductionID uuid.UUID) error

	// Upload results
	SetMetadataUploadResult(ctx context.Context, metadataJsonID uuid.UUID, uri, identifier string) error

	// Wallets, written by the treasury event processor
	UpsertProjectWallet(ctx context.Context, wallet *schema.ProjectWallet) error
	UpsertCustomerWallet(ctx context.Context, wallet *schema.CustomerWallet) error

	// Queued mints
	PopQueuedMint(ctx context.Context, collectionID uuid.UUID) (*schema.CollectionMint, error)

	// Durable metadata jobs
	CreateMetadataJsonJob(ctx context.Context, job *schema.MetadataJsonJob) error
	GetUnstartedJobs(ctx context.Context, limit int) ([]schema.MetadataJsonJob, error)
	SetJobTrackingStatus(ctx context.Context, jobID int64, status schema.JobTrackingStatus) error
	MarkJobFailed(ctx context.Context, jobID int64) error

	// Batch reads backing the request-scoped loaders
	GetCollectionsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.Collection, error)
	GetCollectionsByProjectIDs(ctx context.Context, projectIDs []uuid.UUID, page Page) ([]schema.Collection, error)
	GetDropsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.Drop, error)
	GetDropsByProjectIDs(ctx context.Context, projectIDs []uuid.UUID, page Page) ([]schema.Drop, error)
	GetMintsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.CollectionMint, error)
	GetMintsByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID, page Page) ([]schema.CollectionMint, error)
	GetMintsByOwners(ctx context.Context, owners []string, page Page) ([]schema.CollectionMint, error)
	GetQueuedMintsByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]schema.CollectionMint, error)
	GetCreatorsByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]schema.Creator, error)
	GetMintCreatorsByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.MintCreator, error)
	GetMetadataJsonsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.MetadataJson, error)
	GetAttributesByMetadataJsonIDs(ctx context.Context, jsonIDs []uuid.UUID) ([]schema.MetadataJsonAttribute, error)
	GetFilesByMetadataJsonIDs(ctx context.Context, jsonIDs []uuid.UUID) ([]schema.MetadataJsonFile, error)
	GetHoldersByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]HolderRow, error)
	GetMintHistoriesByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]schema.MintHistory, error)
	GetMintHistoriesByDropIDs(ctx context.Context, dropIDs []uuid.UUID) ([]schema.MintHistory, error)
	GetUpdateHistoriesByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.UpdateHistory, error)
	GetTransfersByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.NftTransfer, error)
	GetSwitchHistoriesByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.SwitchCollectionHistory, error)
	GetProjectWalletsByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) ([]schema.ProjectWallet, error)
	GetCustomerWalletsByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]schema.CustomerWallet, error)
}
