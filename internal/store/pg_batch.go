package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// Batch reads backing the request-scoped GraphQL loaders. Each method runs a
// single IN (...) query for all keys collected within one request.

const defaultListOrder = "created_at DESC, id"

func (s *pgStore) GetCollectionsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.Collection, error) {
	if len(ids) == 0 {
		return []schema.Collection{}, nil
	}
	var collections []schema.Collection
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get collections by ids: %w", err)
	}
	return collections, nil
}

func (s *pgStore) GetCollectionsByProjectIDs(ctx context.Context, projectIDs []uuid.UUID, page Page) ([]schema.Collection, error) {
	if len(projectIDs) == 0 {
		return []schema.Collection{}, nil
	}
	var collections []schema.Collection
	err := s.db.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Order(defaultListOrder).
		Limit(page.Limit).Offset(page.Offset).
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get collections by projects: %w", err)
	}
	return collections, nil
}

func (s *pgStore) GetDropsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.Drop, error) {
	if len(ids) == 0 {
		return []schema.Drop{}, nil
	}
	var drops []schema.Drop
	err := s.db.WithContext(ctx).Preload("Collection").Where("id IN ?", ids).Find(&drops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get drops by ids: %w", err)
	}
	return drops, nil
}

func (s *pgStore) GetDropsByProjectIDs(ctx context.Context, projectIDs []uuid.UUID, page Page) ([]schema.Drop, error) {
	if len(projectIDs) == 0 {
		return []schema.Drop{}, nil
	}
	var drops []schema.Drop
	err := s.db.WithContext(ctx).
		Preload("Collection").
		Where("project_id IN ?", projectIDs).
		Order(defaultListOrder).
		Limit(page.Limit).Offset(page.Offset).
		Find(&drops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get drops by projects: %w", err)
	}
	return drops, nil
}

func (s *pgStore) GetMintsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.CollectionMint, error) {
	if len(ids) == 0 {
		return []schema.CollectionMint{}, nil
	}
	var mints []schema.CollectionMint
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&mints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get mints by ids: %w", err)
	}
	return mints, nil
}

// GetMintsByCollectionIDs lists non-queued mints; queued rows surface only
// through GetQueuedMintsByCollectionIDs.
func (s *pgStore) GetMintsByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID, page Page) ([]schema.CollectionMint, error) {
	if len(collectionIDs) == 0 {
		return []schema.CollectionMint{}, nil
	}
	var mints []schema.CollectionMint
	err := s.db.WithContext(ctx).
		Where("collection_id IN ? AND creation_status <> ?", collectionIDs, domain.CreationStatusQueued).
		Order(defaultListOrder).
		Limit(page.Limit).Offset(page.Offset).
		Find(&mints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get mints by collections: %w", err)
	}
	return mints, nil
}

func (s *pgStore) GetMintsByOwners(ctx context.Context, owners []string, page Page) ([]schema.CollectionMint, error) {
	if len(owners) == 0 {
		return []schema.CollectionMint{}, nil
	}
	normalized := make([]string, len(owners))
	for i, o := range owners {
		normalized[i] = domain.NormalizeAddress(o)
	}
	var mints []schema.CollectionMint
	err := s.db.WithContext(ctx).
		Where("owner IN ? AND creation_status <> ?", normalized, domain.CreationStatusQueued).
		Order(defaultListOrder).
		Limit(page.Limit).Offset(page.Offset).
		Find(&mints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get mints by owners: %w", err)
	}
	return mints, nil
}

func (s *pgStore) GetQueuedMintsByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]schema.CollectionMint, error) {
	if len(collectionIDs) == 0 {
		return []schema.CollectionMint{}, nil
	}
	var mints []schema.CollectionMint
	err := s.db.WithContext(ctx).
		Where("collection_id IN ? AND creation_status = ?", collectionIDs, domain.CreationStatusQueued).
		Order(defaultListOrder).
		Find(&mints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get queued mints: %w", err)
	}
	return mints, nil
}

func (s *pgStore) GetCreatorsByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]schema.Creator, error) {
	if len(collectionIDs) == 0 {
		return []schema.Creator{}, nil
	}
	var creators []schema.Creator
	err := s.db.WithContext(ctx).Where("collection_id IN ?", collectionIDs).Find(&creators).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get creators by collections: %w", err)
	}
	return creators, nil
}

func (s *pgStore) GetMintCreatorsByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.MintCreator, error) {
	if len(mintIDs) == 0 {
		return []schema.MintCreator{}, nil
	}
	var creators []schema.MintCreator
	err := s.db.WithContext(ctx).Where("mint_id IN ?", mintIDs).Find(&creators).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get mint creators: %w", err)
	}
	return creators, nil
}

func (s *pgStore) GetMetadataJsonsByIDs(ctx context.Context, ids []uuid.UUID) ([]schema.MetadataJson, error) {
	if len(ids) == 0 {
		return []schema.MetadataJson{}, nil
	}
	var jsons []schema.MetadataJson
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&jsons).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata jsons: %w", err)
	}
	return jsons, nil
}

func (s *pgStore) GetAttributesByMetadataJsonIDs(ctx context.Context, jsonIDs []uuid.UUID) ([]schema.MetadataJsonAttribute, error) {
	if len(jsonIDs) == 0 {
		return []schema.MetadataJsonAttribute{}, nil
	}
	var attributes []schema.MetadataJsonAttribute
	err := s.db.WithContext(ctx).Where("metadata_json_id IN ?", jsonIDs).Find(&attributes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata attributes: %w", err)
	}
	return attributes, nil
}

func (s *pgStore) GetFilesByMetadataJsonIDs(ctx context.Context, jsonIDs []uuid.UUID) ([]schema.MetadataJsonFile, error) {
	if len(jsonIDs) == 0 {
		return []schema.MetadataJsonFile{}, nil
	}
	var files []schema.MetadataJsonFile
	err := s.db.WithContext(ctx).Where("metadata_json_id IN ?", jsonIDs).Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata files: %w", err)
	}
	return files, nil
}

func (s *pgStore) GetHoldersByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]HolderRow, error) {
	if len(collectionIDs) == 0 {
		return []HolderRow{}, nil
	}
	var holders []HolderRow
	err := s.db.WithContext(ctx).
		Model(&schema.CollectionMint{}).
		Select("collection_id, owner, COUNT(*) AS mints").
		Where("collection_id IN ? AND owner IS NOT NULL AND creation_status = ?",
			collectionIDs, domain.CreationStatusCreated).
		Group("collection_id, owner").
		Find(&holders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get holders: %w", err)
	}
	return holders, nil
}

func (s *pgStore) GetMintHistoriesByCollectionIDs(ctx context.Context, collectionIDs []uuid.UUID) ([]schema.MintHistory, error) {
	if len(collectionIDs) == 0 {
		return []schema.MintHistory{}, nil
	}
	var histories []schema.MintHistory
	err := s.db.WithContext(ctx).
		Where("collection_id IN ?", collectionIDs).
		Order(defaultListOrder).
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get mint histories: %w", err)
	}
	return histories, nil
}

func (s *pgStore) GetMintHistoriesByDropIDs(ctx context.Context, dropIDs []uuid.UUID) ([]schema.MintHistory, error) {
	if len(dropIDs) == 0 {
		return []schema.MintHistory{}, nil
	}
	var histories []schema.MintHistory
	err := s.db.WithContext(ctx).
		Where("drop_id IN ?", dropIDs).
		Order(defaultListOrder).
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get mint histories by drops: %w", err)
	}
	return histories, nil
}

func (s *pgStore) GetUpdateHistoriesByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.UpdateHistory, error) {
	if len(mintIDs) == 0 {
		return []schema.UpdateHistory{}, nil
	}
	var histories []schema.UpdateHistory
	err := s.db.WithContext(ctx).
		Where("mint_id IN ?", mintIDs).
		Order(defaultListOrder).
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get update histories: %w", err)
	}
	return histories, nil
}

func (s *pgStore) GetTransfersByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.NftTransfer, error) {
	if len(mintIDs) == 0 {
		return []schema.NftTransfer{}, nil
	}
	var transfers []schema.NftTransfer
	err := s.db.WithContext(ctx).
		Where("collection_mint_id IN ?", mintIDs).
		Order(defaultListOrder).
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transfers: %w", err)
	}
	return transfers, nil
}

func (s *pgStore) GetSwitchHistoriesByMintIDs(ctx context.Context, mintIDs []uuid.UUID) ([]schema.SwitchCollectionHistory, error) {
	if len(mintIDs) == 0 {
		return []schema.SwitchCollectionHistory{}, nil
	}
	var histories []schema.SwitchCollectionHistory
	err := s.db.WithContext(ctx).
		Where("mint_id IN ?", mintIDs).
		Order(defaultListOrder).
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get switch histories: %w", err)
	}
	return histories, nil
}

func (s *pgStore) GetProjectWalletsByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) ([]schema.ProjectWallet, error) {
	if len(projectIDs) == 0 {
		return []schema.ProjectWallet{}, nil
	}
	var wallets []schema.ProjectWallet
	err := s.db.WithContext(ctx).Where("project_id IN ?", projectIDs).Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get project wallets: %w", err)
	}
	return wallets, nil
}

func (s *pgStore) GetCustomerWalletsByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]schema.CustomerWallet, error) {
	if len(customerIDs) == 0 {
		return []schema.CustomerWallet{}, nil
	}
	var wallets []schema.CustomerWallet
	err := s.db.WithContext(ctx).Where("customer_id IN ?", customerIDs).Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get customer wallets: %w", err)
	}
	return wallets, nil
}
