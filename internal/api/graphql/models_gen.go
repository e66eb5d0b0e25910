// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package graphql

import (
	"time"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/store/schema"
	"github.com/google/uuid"
)

type CollectionConnection struct {
	Edges    []*CollectionEdge `json:"edges"`
	PageInfo *PageInfo         `json:"pageInfo"`
}

type CollectionEdge struct {
	Cursor string             `json:"cursor"`
	Node   *schema.Collection `json:"node"`
}

type CreateCollectionInput struct {
	ProjectID            uuid.UUID          `json:"projectId"`
	Blockchain           domain.Blockchain  `json:"blockchain"`
	Supply               *int               `json:"supply,omitempty"`
	SellerFeeBasisPoints int                `json:"sellerFeeBasisPoints"`
	Creators             []*CreatorInput    `json:"creators"`
	MetadataJson         *MetadataJsonInput `json:"metadataJson"`
}

type CreateDropInput struct {
	ProjectID            uuid.UUID          `json:"projectId"`
	Blockchain           domain.Blockchain  `json:"blockchain"`
	DropType             domain.DropType    `json:"dropType"`
	Price                *uint64            `json:"price,omitempty"`
	StartTime            *time.Time         `json:"startTime,omitempty"`
	EndTime              *time.Time         `json:"endTime,omitempty"`
	Supply               *int               `json:"supply,omitempty"`
	SellerFeeBasisPoints int                `json:"sellerFeeBasisPoints"`
	Creators             []*CreatorInput    `json:"creators"`
	MetadataJson         *MetadataJsonInput `json:"metadataJson"`
}

type CreatorInput struct {
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
	Share    int    `json:"share"`
}

type Customer struct {
	ID    uuid.UUID       `json:"id"`
	Mints *MintConnection `json:"mints"`
}

func (Customer) IsEntity() {}

type DropConnection struct {
	Edges    []*DropEdge `json:"edges"`
	PageInfo *PageInfo   `json:"pageInfo"`
}

type DropEdge struct {
	Cursor string       `json:"cursor"`
	Node   *schema.Drop `json:"node"`
}

type ImportCollectionInput struct {
	ProjectID         uuid.UUID         `json:"projectId"`
	Blockchain        domain.Blockchain `json:"blockchain"`
	CollectionAddress string            `json:"collectionAddress"`
}

type MetadataJsonAttributeInput struct {
	TraitType string `json:"traitType"`
	Value     string `json:"value"`
}

type MetadataJsonFileInput struct {
	URI      string `json:"uri"`
	FileType string `json:"fileType"`
}

type MetadataJsonInput struct {
	Name         string                        `json:"name"`
	Symbol       string                        `json:"symbol"`
	Description  string                        `json:"description"`
	Image        string                        `json:"image"`
	AnimationURL *string                       `json:"animationUrl,omitempty"`
	ExternalURL  *string                       `json:"externalUrl,omitempty"`
	Attributes   []*MetadataJsonAttributeInput `json:"attributes,omitempty"`
	Files        []*MetadataJsonFileInput      `json:"files,omitempty"`
}

type MintConnection struct {
	Edges    []*MintEdge `json:"edges"`
	PageInfo *PageInfo   `json:"pageInfo"`
}

type MintEdge struct {
	Cursor string                 `json:"cursor"`
	Node   *schema.CollectionMint `json:"node"`
}

type MintEditionInput struct {
	DropID    uuid.UUID `json:"dropId"`
	Recipient string    `json:"recipient"`
}

type MintQueuedInput struct {
	DropID       uuid.UUID          `json:"dropId"`
	Recipient    string             `json:"recipient"`
	MetadataJson *MetadataJsonInput `json:"metadataJson"`
}

type MintToCollectionInput struct {
	CollectionID uuid.UUID          `json:"collectionId"`
	Recipient    string             `json:"recipient"`
	Compressed   *bool              `json:"compressed,omitempty"`
	Creators     []*CreatorInput    `json:"creators,omitempty"`
	MetadataJson *MetadataJsonInput `json:"metadataJson"`
}

type Mutation struct {
}

type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor,omitempty"`
}

type PatchCollectionInput struct {
	ID           uuid.UUID          `json:"id"`
	MetadataJson *MetadataJsonInput `json:"metadataJson,omitempty"`
	Creators     []*CreatorInput    `json:"creators,omitempty"`
}

type PatchDropInput struct {
	ID             uuid.UUID          `json:"id"`
	MetadataJson   *MetadataJsonInput `json:"metadataJson,omitempty"`
	Creators       []*CreatorInput    `json:"creators,omitempty"`
	Supply         *int               `json:"supply,omitempty"`
	UpdateSchedule *bool              `json:"updateSchedule,omitempty"`
	StartTime      *time.Time         `json:"startTime,omitempty"`
	EndTime        *time.Time         `json:"endTime,omitempty"`
}

type Project struct {
	ID          uuid.UUID               `json:"id"`
	Collections *CollectionConnection   `json:"collections"`
	Drops       *DropConnection         `json:"drops"`
	Wallets     []*schema.ProjectWallet `json:"wallets"`
}

func (Project) IsEntity() {}

type Query struct {
}

type SwitchCollectionInput struct {
	MintID          uuid.UUID `json:"mintId"`
	NewCollectionID uuid.UUID `json:"newCollectionId"`
}

type TransferAssetInput struct {
	MintID    uuid.UUID `json:"mintId"`
	Recipient string    `json:"recipient"`
}

type UpdateMintInput struct {
	MintID       uuid.UUID          `json:"mintId"`
	MetadataJson *MetadataJsonInput `json:"metadataJson,omitempty"`
	Creators     []*CreatorInput    `json:"creators,omitempty"`
}
