package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to safe defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

func (s *pgStore) GetCollectionByID(ctx context.Context, id uuid.UUID) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Preload("Creators").Where("id = ?", id).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

func (s *pgStore) GetDropByID(ctx context.Context, id uuid.UUID) (*schema.Drop, error) {
	var drop schema.Drop
	err := s.db.WithContext(ctx).Preload("Collection").Preload("Collection.Creators").
		Where("id = ?", id).First(&drop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get drop: %w", err)
	}
	return &drop, nil
}

func (s *pgStore) GetMintByID(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error) {
	var mint schema.CollectionMint
	err := s.db.WithContext(ctx).Preload("Creators").Where("id = ?", id).First(&mint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mint: %w", err)
	}
	return &mint, nil
}

func (s *pgStore) GetMetadataJsonByID(ctx context.Context, id uuid.UUID) (*schema.MetadataJson, error) {
	var json schema.MetadataJson
	err := s.db.WithContext(ctx).Preload("Attributes").Preload("Files").
		Where("id = ?", id).First(&json).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get metadata json: %w", err)
	}
	return &json, nil
}

func (s *pgStore) GetTransferByID(ctx context.Context, id uuid.UUID) (*schema.NftTransfer, error) {
	var transfer schema.NftTransfer
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

func (s *pgStore) GetProjectWallet(ctx context.Context, projectID uuid.UUID, blockchain domain.Blockchain) (*schema.ProjectWallet, error) {
	var wallet schema.ProjectWallet
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND blockchain = ?", projectID, blockchain).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project wallet: %w", err)
	}
	return &wallet, nil
}

func (s *pgStore) GetCustomerWalletByAddress(ctx context.Context, address string) (*schema.CustomerWallet, error) {
	var wallet schema.CustomerWallet
	err := s.db.WithContext(ctx).
		Where("address = ?", domain.NormalizeAddress(address)).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer wallet: %w", err)
	}
	return &wallet, nil
}

// CreateCollection inserts the collection, its creators and its metadata
// document in one transaction.
func (s *pgStore) CreateCollection(ctx context.Context, collection *schema.Collection, creators []schema.Creator, json *schema.MetadataJson) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(collection).Error; err != nil {
			return err
		}
		if len(creators) > 0 {
			if err := tx.Create(&creators).Error; err != nil {
				return err
			}
		}
		if json != nil {
			if err := tx.Create(json).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// CreateDrop inserts the backing collection, the drop row, creators and the
// metadata document in one transaction.
func (s *pgStore) CreateDrop(ctx context.Context, collection *schema.Collection, drop *schema.Drop, creators []schema.Creator, json *schema.MetadataJson) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(collection).Error; err != nil {
			return err
		}
		if err := tx.Create(drop).Error; err != nil {
			return err
		}
		if len(creators) > 0 {
			if err := tx.Create(&creators).Error; err != nil {
				return err
			}
		}
		if json != nil {
			if err := tx.Create(json).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create drop: %w", err)
	}
	return nil
}

// CreateMint inserts the mint with its creators, metadata document and
// history row, incrementing the collection's total_mints under the supply
// guard. For edition drops pass mint.Edition == 0; the post-increment
// total_mints is assigned as the edition number.
func (s *pgStore) CreateMint(ctx context.Context, mint *schema.CollectionMint, creators []schema.MintCreator, json *schema.MetadataJson, history *schema.MintHistory) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.Collection{}).
			Where("id = ? AND (supply IS NULL OR total_mints < supply)", mint.CollectionID).
			UpdateColumn("total_mints", gorm.Expr("total_mints + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrSupplyExhausted
		}

		if mint.Edition == 0 {
			var totalMints int64
			if err := tx.Model(&schema.Collection{}).
				Select("total_mints").
				Where("id = ?", mint.CollectionID).
				Scan(&totalMints).Error; err != nil {
				return err
			}
			mint.Edition = totalMints
		}

		if err := tx.Create(mint).Error; err != nil {
			return err
		}
		if len(creators) > 0 {
			if err := tx.Create(&creators).Error; err != nil {
				return err
			}
		}
		if json != nil {
			if err := tx.Create(json).Error; err != nil {
				return err
			}
		}
		if history != nil {
			if err := tx.Create(history).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrSupplyExhausted) {
			return err
		}
		return fmt.Errorf("failed to create mint: %w", err)
	}
	return nil
}

func (s *pgStore) CreateTransfer(ctx context.Context, transfer *schema.NftTransfer) error {
	if err := s.db.WithContext(ctx).Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

func (s *pgStore) CreateUpdateHistory(ctx context.Context, history *schema.UpdateHistory) error {
	if err := s.db.WithContext(ctx).Create(history).Error; err != nil {
		return fmt.Errorf("failed to create update history: %w", err)
	}
	return nil
}

// SwitchMintCollection reparents the mint, moving a unit of total_mints from
// the old collection to the new one and recording a switch history row.
func (s *pgStore) SwitchMintCollection(ctx context.Context, mintID, newCollectionID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mint schema.CollectionMint
		if err := tx.Where("id = ?", mintID).First(&mint).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEntityNotFound
			}
			return err
		}

		res := tx.Model(&schema.Collection{}).
			Where("id = ? AND (supply IS NULL OR total_mints < supply)", newCollectionID).
			UpdateColumn("total_mints", gorm.Expr("total_mints + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrSupplyExhausted
		}
		if err := tx.Model(&schema.Collection{}).
			Where("id = ?", mint.CollectionID).
			UpdateColumn("total_mints", gorm.Expr("total_mints - 1")).Error; err != nil {
			return err
		}

		if err := tx.Model(&schema.CollectionMint{}).
			Where("id = ?", mintID).
			Update("collection_id", newCollectionID).Error; err != nil {
			return err
		}

		history := schema.SwitchCollectionHistory{
			ID:               uuid.New(),
			MintID:           mintID,
			PrevCollectionID: mint.CollectionID,
			NewCollectionID:  newCollectionID,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) || errors.Is(err, domain.ErrSupplyExhausted) {
			return err
		}
		return fmt.Errorf("failed to switch mint collection: %w", err)
	}
	return nil
}

// ReplaceMetadataJson upserts the document row and rewrites its attribute and
// file children atomically.
func (s *pgStore) ReplaceMetadataJson(ctx context.Context, json *schema.MetadataJson) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("metadata_json_id = ?", json.ID).
			Delete(&schema.MetadataJsonAttribute{}).Error; err != nil {
			return err
		}
		if err := tx.Where("metadata_json_id = ?", json.ID).
			Delete(&schema.MetadataJsonFile{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(json).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace metadata json: %w", err)
	}
	return nil
}

func (s *pgStore) ReplaceCollectionCreators(ctx context.Context, collectionID uuid.UUID, creators []schema.Creator) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collectionID).
			Delete(&schema.Creator{}).Error; err != nil {
			return err
		}
		if len(creators) == 0 {
			return nil
		}
		return tx.Create(&creators).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace collection creators: %w", err)
	}
	return nil
}

func (s *pgStore) ReplaceMintCreators(ctx context.Context, mintID uuid.UUID, creators []schema.MintCreator) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mint_id = ?", mintID).
			Delete(&schema.MintCreator{}).Error; err != nil {
			return err
		}
		if len(creators) == 0 {
			return nil
		}
		return tx.Create(&creators).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace mint creators: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateDropSchedule(ctx context.Context, dropID uuid.UUID, start, end *time.Time) error {
	err := s.db.WithContext(ctx).Model(&schema.Drop{}).
		Where("id = ?", dropID).
		Updates(map[string]any{"start_time": start, "end_time": end}).Error
	if err != nil {
		return fmt.Errorf("failed to update drop schedule: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateCollectionSupply(ctx context.Context, collectionID uuid.UUID, supply *int64) error {
	res := s.db.WithContext(ctx).Model(&schema.Collection{}).
		Where("id = ? AND (? IS NULL OR total_mints <= ?)", collectionID, supply, supply).
		Update("supply", supply)
	if res.Error != nil {
		return fmt.Errorf("failed to update collection supply: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&schema.Collection{}).
			Where("id = ?", collectionID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update collection supply: %w", err)
		}
		if count == 0 {
			return domain.ErrEntityNotFound
		}
		return domain.ErrSupplyBelowMints
	}
	return nil
}

func (s *pgStore) SetDropPause(ctx context.Context, dropID uuid.UUID, pausedAt *time.Time) error {
	err := s.db.WithContext(ctx).Model(&schema.Drop{}).
		Where("id = ?", dropID).
		Update("paused_at", pausedAt).Error
	if err != nil {
		return fmt.Errorf("failed to update drop pause: %w", err)
	}
	return nil
}

func (s *pgStore) SetDropShutdown(ctx context.Context, dropID uuid.UUID, shutdownAt time.Time) error {
	err := s.db.WithContext(ctx).Model(&schema.Drop{}).
		Where("id = ?", dropID).
		Update("shutdown_at", shutdownAt).Error
	if err != nil {
		return fmt.Errorf("failed to shut down drop: %w", err)
	}
	return nil
}

// transition applies a guarded creation-status update: the state machine is
// enforced inside the UPDATE's WHERE clause so each finalization is a single
// DB round trip.
func (s *pgStore) transition(ctx context.Context, model any, input FinalizeInput) error {
	sources := domain.TransitionSources(input.Status)
	if len(sources) == 0 {
		return domain.ErrInvalidTransition
	}

	updates := map[string]any{"creation_status": input.Status}
	if input.Signature != nil {
		updates["signature"] = *input.Signature
	}
	if input.Address != nil {
		updates["address"] = domain.NormalizeAddress(*input.Address)
	}

	res := s.db.WithContext(ctx).Model(model).
		Where("id = ? AND creation_status IN ?", input.ID, sources).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to transition creation status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(model).
			Where("id = ?", input.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to transition creation status: %w", err)
		}
		if count == 0 {
			return domain.ErrEntityNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (s *pgStore) TransitionCollection(ctx context.Context, input FinalizeInput) error {
	return s.transition(ctx, &schema.Collection{}, input)
}

func (s *pgStore) TransitionDrop(ctx context.Context, input FinalizeInput) error {
	// drops carry no address/signature columns; those live on the collection
	sources := domain.TransitionSources(input.Status)
	if len(sources) == 0 {
		return domain.ErrInvalidTransition
	}
	res := s.db.WithContext(ctx).Model(&schema.Drop{}).
		Where("id = ? AND creation_status IN ?", input.ID, sources).
		Update("creation_status", input.Status)
	if res.Error != nil {
		return fmt.Errorf("failed to transition drop: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&schema.Drop{}).
			Where("id = ?", input.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to transition drop: %w", err)
		}
		if count == 0 {
			return domain.ErrEntityNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (s *pgStore) TransitionMint(ctx context.Context, input FinalizeInput) error {
	return s.transition(ctx, &schema.CollectionMint{}, input)
}

func (s *pgStore) FinalizeTransfer(ctx context.Context, transferID uuid.UUID, signature string, newOwner *string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transfer schema.NftTransfer
		if err := tx.Where("id = ?", transferID).First(&transfer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEntityNotFound
			}
			return err
		}
		if err := tx.Model(&transfer).Update("signature", signature).Error; err != nil {
			return err
		}
		owner := transfer.Recipient
		if newOwner != nil {
			owner = domain.NormalizeAddress(*newOwner)
		}
		return tx.Model(&schema.CollectionMint{}).
			Where("id = ?", transfer.CollectionMintID).
			Update("owner", owner).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			return err
		}
		return fmt.Errorf("failed to finalize transfer: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateMintHistoryStatus(ctx context.Context, mintID uuid.UUID, status domain.CreationStatus, signature *string) error {
	updates := map[string]any{"status": status}
	if signature != nil {
		updates["signature"] = *signature
	}
	err := s.db.WithContext(ctx).Model(&schema.MintHistory{}).
		Where("mint_id = ?", mintID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update mint history: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateUpdateHistoryStatus(ctx context.Context, mintID uuid.UUID, status domain.CreationStatus, signature *string) error {
	updates := map[string]any{"status": status}
	if signature != nil {
		updates["signature"] = *signature
	}
	err := s.db.WithContext(ctx).Model(&schema.UpdateHistory{}).
		Where("mint_id = ? AND status = ?", mintID, domain.CreationStatusPending).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update update history: %w", err)
	}
	return nil
}

func (s *pgStore) GetLatestMintHistory(ctx context.Context, mintID uuid.UUID) (*schema.MintHistory, error) {
	var history schema.MintHistory
	err := s.db.WithContext(ctx).
		Where("mint_id = ?", mintID).
		Order("created_at DESC").
		First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mint history: %w", err)
	}
	return &history, nil
}

// setDeduction writes the deduction id only when none is present; a second
// call for the same entity is a no-op.
func (s *pgStore) setDeduction(ctx context.Context, model any, id, deductionID uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(model).
		Where("id = ? AND credits_deduction_id IS NULL", id).
		Update("credits_deduction_id", deductionID)
	if res.Error != nil {
		return fmt.Errorf("failed to set credits deduction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(model).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to set credits deduction: %w", err)
		}
		if count == 0 {
			return domain.ErrEntityNotFound
		}
	}
	return nil
}

func (s *pgStore) SetCollectionDeduction(ctx context.Context, collectionID, deductionID uuid.UUID) error {
	return s.setDeduction(ctx, &schema.Collection{}, collectionID, deductionID)
}

func (s *pgStore) SetMintDeduction(ctx context.Context, mintID, deductionID uuid.UUID) error {
	return s.setDeduction(ctx, &schema.CollectionMint{}, mintID, deductionID)
}

func (s *pgStore) SetTransferDeduction(ctx context.Context, transferID, deductionID uuid.UUID) error {
	return s.setDeduction(ctx, &schema.NftTransfer{}, transferID, deductionID)
}

// SetMetadataUploadResult persists the upload outcome on the document and
// records it in metadata_json_uploads.
func (s *pgStore) SetMetadataUploadResult(ctx context.Context, metadataJsonID uuid.UUID, uri, identifier string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.MetadataJson{}).
			Where("id = ?", metadataJsonID).
			Updates(map[string]any{"uri": uri, "identifier": identifier})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrEntityNotFound
		}
		upload := schema.MetadataJsonUpload{ID: metadataJsonID, URI: uri, Identifier: identifier}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&upload).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			return err
		}
		return fmt.Errorf("failed to set upload result: %w", err)
	}
	return nil
}

func (s *pgStore) UpsertProjectWallet(ctx context.Context, wallet *schema.ProjectWallet) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "blockchain"}},
		DoUpdates: clause.AssignmentColumns([]string{"wallet_address"}),
	}).Create(wallet).Error
	if err != nil {
		return fmt.Errorf("failed to upsert project wallet: %w", err)
	}
	return nil
}

func (s *pgStore) UpsertCustomerWallet(ctx context.Context, wallet *schema.CustomerWallet) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "blockchain"}},
		DoUpdates: clause.AssignmentColumns([]string{"address"}),
	}).Create(wallet).Error
	if err != nil {
		return fmt.Errorf("failed to upsert customer wallet: %w", err)
	}
	return nil
}

// PopQueuedMint atomically claims one queued mint of the collection, moving
// it to pending. Returns nil when the queue is empty. random_pick spreads
// which row gets drained.
func (s *pgStore) PopQueuedMint(ctx context.Context, collectionID uuid.UUID) (*schema.CollectionMint, error) {
	var mint schema.CollectionMint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("collection_id = ? AND creation_status = ?", collectionID, domain.CreationStatusQueued).
			Order("random_pick").
			First(&mint).Error
		if err != nil {
			return err
		}
		mint.CreationStatus = domain.CreationStatusPending
		return tx.Model(&mint).Update("creation_status", domain.CreationStatusPending).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop queued mint: %w", err)
	}
	return &mint, nil
}
