// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package graphql

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/99designs/gqlgen/plugin/federation/fedruntime"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
	"github.com/google/uuid"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// region    ************************** generated!.gotpl **************************

// NewExecutableSchema creates an ExecutableSchema from the ResolverRoot interface.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{
		schema:     cfg.Schema,
		resolvers:  cfg.Resolvers,
		directives: cfg.Directives,
		complexity: cfg.Complexity,
	}
}

type Config struct {
	Schema     *ast.Schema
	Resolvers  ResolverRoot
	Directives DirectiveRoot
	Complexity ComplexityRoot
}

type ResolverRoot interface {
	Collection() CollectionResolver
	CollectionMint() CollectionMintResolver
	Creator() CreatorResolver
	Customer() CustomerResolver
	Drop() DropResolver
	Entity() EntityResolver
	MetadataJson() MetadataJsonResolver
	Mutation() MutationResolver
	Project() ProjectResolver
	Query() QueryResolver
}

type DirectiveRoot struct {
}

type ComplexityRoot struct {
	Collection struct {
		Address              func(childComplexity int) int
		Blockchain           func(childComplexity int) int
		CreatedAt            func(childComplexity int) int
		CreationStatus       func(childComplexity int) int
		Creators             func(childComplexity int) int
		Holders              func(childComplexity int) int
		ID                   func(childComplexity int) int
		MetadataJson         func(childComplexity int) int
		Mints                func(childComplexity int, first *int, after *string) int
		ProjectID            func(childComplexity int) int
		PurchaseHistories    func(childComplexity int) int
		SellerFeeBasisPoints func(childComplexity int) int
		Signature            func(childComplexity int) int
		Supply               func(childComplexity int) int
		TotalMints           func(childComplexity int) int
	}

	CollectionConnection struct {
		Edges    func(childComplexity int) int
		PageInfo func(childComplexity int) int
	}

	CollectionEdge struct {
		Cursor func(childComplexity int) int
		Node   func(childComplexity int) int
	}

	CollectionMint struct {
		Address              func(childComplexity int) int
		Collection           func(childComplexity int) int
		CollectionID         func(childComplexity int) int
		Compressed           func(childComplexity int) int
		CreatedAt            func(childComplexity int) int
		CreationStatus       func(childComplexity int) int
		Creators             func(childComplexity int) int
		Edition              func(childComplexity int) int
		ID                   func(childComplexity int) int
		MetadataJson         func(childComplexity int) int
		MintHistories        func(childComplexity int) int
		Owner                func(childComplexity int) int
		SellerFeeBasisPoints func(childComplexity int) int
		Signature            func(childComplexity int) int
		SwitchHistories      func(childComplexity int) int
		Transfers            func(childComplexity int) int
		UpdateHistories      func(childComplexity int) int
	}

	Creator struct {
		Address  func(childComplexity int) int
		Share    func(childComplexity int) int
		Verified func(childComplexity int) int
	}

	Customer struct {
		ID    func(childComplexity int) int
		Mints func(childComplexity int, first *int, after *string) int
	}

	Drop struct {
		Collection        func(childComplexity int) int
		CollectionID      func(childComplexity int) int
		CreatedAt         func(childComplexity int) int
		CreationStatus    func(childComplexity int) int
		DropType          func(childComplexity int) int
		EndTime           func(childComplexity int) int
		ID                func(childComplexity int) int
		PausedAt          func(childComplexity int) int
		Price             func(childComplexity int) int
		ProjectID         func(childComplexity int) int
		PurchaseHistories func(childComplexity int) int
		QueuedMints       func(childComplexity int) int
		ShutdownAt        func(childComplexity int) int
		StartTime         func(childComplexity int) int
		Status            func(childComplexity int) int
	}

	DropConnection struct {
		Edges    func(childComplexity int) int
		PageInfo func(childComplexity int) int
	}

	DropEdge struct {
		Cursor func(childComplexity int) int
		Node   func(childComplexity int) int
	}

	Entity struct {
		FindCustomerByID func(childComplexity int, id uuid.UUID) int
		FindProjectByID  func(childComplexity int, id uuid.UUID) int
	}

	Holder struct {
		CollectionID func(childComplexity int) int
		Mints        func(childComplexity int) int
		Owner        func(childComplexity int) int
	}

	MetadataJson struct {
		AnimationURL func(childComplexity int) int
		Attributes   func(childComplexity int) int
		Description  func(childComplexity int) int
		ExternalURL  func(childComplexity int) int
		Files        func(childComplexity int) int
		ID           func(childComplexity int) int
		Identifier   func(childComplexity int) int
		Image        func(childComplexity int) int
		Name         func(childComplexity int) int
		Symbol       func(childComplexity int) int
		URI          func(childComplexity int) int
	}

	MetadataJsonAttribute struct {
		TraitType func(childComplexity int) int
		Value     func(childComplexity int) int
	}

	MetadataJsonFile struct {
		FileType func(childComplexity int) int
		URI      func(childComplexity int) int
	}

	MintConnection struct {
		Edges    func(childComplexity int) int
		PageInfo func(childComplexity int) int
	}

	MintEdge struct {
		Cursor func(childComplexity int) int
		Node   func(childComplexity int) int
	}

	MintHistory struct {
		CollectionID func(childComplexity int) int
		CreatedAt    func(childComplexity int) int
		DropID       func(childComplexity int) int
		MintID       func(childComplexity int) int
		Signature    func(childComplexity int) int
		Status       func(childComplexity int) int
		Wallet       func(childComplexity int) int
	}

	Mutation struct {
		CreateCollection      func(childComplexity int, input CreateCollectionInput) int
		CreateDrop            func(childComplexity int, input CreateDropInput) int
		ImportCollection      func(childComplexity int, input ImportCollectionInput) int
		MintEdition           func(childComplexity int, input MintEditionInput) int
		MintQueued            func(childComplexity int, input MintQueuedInput) int
		MintToCollection      func(childComplexity int, input MintToCollectionInput) int
		PatchCollection       func(childComplexity int, input PatchCollectionInput) int
		PatchDrop             func(childComplexity int, input PatchDropInput) int
		PauseDrop             func(childComplexity int, id uuid.UUID) int
		ProcessDropQueue      func(childComplexity int, dropID uuid.UUID) int
		ResumeDrop            func(childComplexity int, id uuid.UUID) int
		RetryCollection       func(childComplexity int, id uuid.UUID) int
		RetryDrop             func(childComplexity int, id uuid.UUID) int
		RetryMintEdition      func(childComplexity int, id uuid.UUID) int
		RetryMintToCollection func(childComplexity int, id uuid.UUID) int
		RetryUpdateMint       func(childComplexity int, id uuid.UUID) int
		ShutdownDrop          func(childComplexity int, id uuid.UUID) int
		SwitchCollection      func(childComplexity int, input SwitchCollectionInput) int
		TransferAsset         func(childComplexity int, input TransferAssetInput) int
		UpdateMint            func(childComplexity int, input UpdateMintInput) int
	}

	NftTransfer struct {
		CollectionMintID func(childComplexity int) int
		CreatedAt        func(childComplexity int) int
		ID               func(childComplexity int) int
		Recipient        func(childComplexity int) int
		Sender           func(childComplexity int) int
		Signature        func(childComplexity int) int
	}

	PageInfo struct {
		EndCursor   func(childComplexity int) int
		HasNextPage func(childComplexity int) int
	}

	Project struct {
		Collections func(childComplexity int, first *int, after *string) int
		Drops       func(childComplexity int, first *int, after *string) int
		ID          func(childComplexity int) int
		Wallets     func(childComplexity int) int
	}

	ProjectWallet struct {
		Blockchain    func(childComplexity int) int
		ID            func(childComplexity int) int
		ProjectID     func(childComplexity int) int
		WalletAddress func(childComplexity int) int
	}

	Query struct {
		Collection         func(childComplexity int, id uuid.UUID) int
		Collections        func(childComplexity int, projectID uuid.UUID, first *int, after *string) int
		Drop               func(childComplexity int, id uuid.UUID) int
		Drops              func(childComplexity int, projectID uuid.UUID, first *int, after *string) int
		Mint               func(childComplexity int, id uuid.UUID) int
		Mints              func(childComplexity int, collectionID uuid.UUID, first *int, after *string) int
		MintsByOwner       func(childComplexity int, owner string, first *int, after *string) int
		__resolve__service func(childComplexity int) int
		__resolve_entities func(childComplexity int, representations []map[string]any) int
	}

	SwitchCollectionHistory struct {
		CreatedAt        func(childComplexity int) int
		MintID           func(childComplexity int) int
		NewCollectionID  func(childComplexity int) int
		PrevCollectionID func(childComplexity int) int
	}

	UpdateHistory struct {
		CreatedAt func(childComplexity int) int
		MintID    func(childComplexity int) int
		Signature func(childComplexity int) int
		Status    func(childComplexity int) int
	}

	_Service struct {
		SDL func(childComplexity int) int
	}
}

type CollectionResolver interface {
	SellerFeeBasisPoints(ctx context.Context, obj *schema.Collection) (int, error)

	MetadataJson(ctx context.Context, obj *schema.Collection) (*schema.MetadataJson, error)
	Creators(ctx context.Context, obj *schema.Collection) ([]*schema.Creator, error)
	Mints(ctx context.Context, obj *schema.Collection, first *int, after *string) (*MintConnection, error)
	Holders(ctx context.Context, obj *schema.Collection) ([]*store.HolderRow, error)
	PurchaseHistories(ctx context.Context, obj *schema.Collection) ([]*schema.MintHistory, error)
}
type CollectionMintResolver interface {
	SellerFeeBasisPoints(ctx context.Context, obj *schema.CollectionMint) (int, error)

	Collection(ctx context.Context, obj *schema.CollectionMint) (*schema.Collection, error)
	MetadataJson(ctx context.Context, obj *schema.CollectionMint) (*schema.MetadataJson, error)
	Creators(ctx context.Context, obj *schema.CollectionMint) ([]*schema.Creator, error)
	MintHistories(ctx context.Context, obj *schema.CollectionMint) ([]*schema.MintHistory, error)
	UpdateHistories(ctx context.Context, obj *schema.CollectionMint) ([]*schema.UpdateHistory, error)
	Transfers(ctx context.Context, obj *schema.CollectionMint) ([]*schema.NftTransfer, error)
	SwitchHistories(ctx context.Context, obj *schema.CollectionMint) ([]*schema.SwitchCollectionHistory, error)
}
type CreatorResolver interface {
	Share(ctx context.Context, obj *schema.Creator) (int, error)
}
type CustomerResolver interface {
	Mints(ctx context.Context, obj *Customer, first *int, after *string) (*MintConnection, error)
}
type DropResolver interface {
	Status(ctx context.Context, obj *schema.Drop) (domain.DropStatus, error)

	Price(ctx context.Context, obj *schema.Drop) (uint64, error)

	Collection(ctx context.Context, obj *schema.Drop) (*schema.Collection, error)
	QueuedMints(ctx context.Context, obj *schema.Drop) ([]*schema.CollectionMint, error)
	PurchaseHistories(ctx context.Context, obj *schema.Drop) ([]*schema.MintHistory, error)
}
type EntityResolver interface {
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindProjectByID(ctx context.Context, id uuid.UUID) (*Project, error)
}
type MetadataJsonResolver interface {
	Attributes(ctx context.Context, obj *schema.MetadataJson) ([]*schema.MetadataJsonAttribute, error)
	Files(ctx context.Context, obj *schema.MetadataJson) ([]*schema.MetadataJsonFile, error)
}
type MutationResolver interface {
	CreateCollection(ctx context.Context, input CreateCollectionInput) (*schema.Collection, error)
	RetryCollection(ctx context.Context, id uuid.UUID) (*schema.Collection, error)
	PatchCollection(ctx context.Context, input PatchCollectionInput) (*schema.Collection, error)
	ImportCollection(ctx context.Context, input ImportCollectionInput) (*schema.Collection, error)
	SwitchCollection(ctx context.Context, input SwitchCollectionInput) (*schema.CollectionMint, error)
	CreateDrop(ctx context.Context, input CreateDropInput) (*schema.Drop, error)
	RetryDrop(ctx context.Context, id uuid.UUID) (*schema.Drop, error)
	PatchDrop(ctx context.Context, input PatchDropInput) (*schema.Drop, error)
	PauseDrop(ctx context.Context, id uuid.UUID) (*schema.Drop, error)
	ResumeDrop(ctx context.Context, id uuid.UUID) (*schema.Drop, error)
	ShutdownDrop(ctx context.Context, id uuid.UUID) (*schema.Drop, error)
	MintEdition(ctx context.Context, input MintEditionInput) (*schema.CollectionMint, error)
	MintQueued(ctx context.Context, input MintQueuedInput) (*schema.CollectionMint, error)
	MintToCollection(ctx context.Context, input MintToCollectionInput) (*schema.CollectionMint, error)
	RetryMintEdition(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error)
	RetryMintToCollection(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error)
	ProcessDropQueue(ctx context.Context, dropID uuid.UUID) (*schema.CollectionMint, error)
	UpdateMint(ctx context.Context, input UpdateMintInput) (*schema.CollectionMint, error)
	RetryUpdateMint(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error)
	TransferAsset(ctx context.Context, input TransferAssetInput) (*schema.NftTransfer, error)
}
type ProjectResolver interface {
	Collections(ctx context.Context, obj *Project, first *int, after *string) (*CollectionConnection, error)
	Drops(ctx context.Context, obj *Project, first *int, after *string) (*DropConnection, error)
	Wallets(ctx context.Context, obj *Project) ([]*schema.ProjectWallet, error)
}
type QueryResolver interface {
	Collection(ctx context.Context, id uuid.UUID) (*schema.Collection, error)
	Drop(ctx context.Context, id uuid.UUID) (*schema.Drop, error)
	Mint(ctx context.Context, id uuid.UUID) (*schema.CollectionMint, error)
	Collections(ctx context.Context, projectID uuid.UUID, first *int, after *string) (*CollectionConnection, error)
	Drops(ctx context.Context, projectID uuid.UUID, first *int, after *string) (*DropConnection, error)
	Mints(ctx context.Context, collectionID uuid.UUID, first *int, after *string) (*MintConnection, error)
	MintsByOwner(ctx context.Context, owner string, first *int, after *string) (*MintConnection, error)
}

type executableSchema struct {
	schema     *ast.Schema
	resolvers  ResolverRoot
	directives DirectiveRoot
	complexity ComplexityRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	if e.schema != nil {
		return e.schema
	}
	return parsedSchema
}

func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	ec := executionContext{nil, e, 0, 0, nil}
	_ = ec
	switch typeName + "." + field {

	case "Collection.address":
		if e.complexity.Collection.Address == nil {
			break
		}

		return e.complexity.Collection.Address(childComplexity), true
	case "Collection.blockchain":
		if e.complexity.Collection.Blockchain == nil {
			break
		}

		return e.complexity.Collection.Blockchain(childComplexity), true
	case "Collection.createdAt":
		if e.complexity.Collection.CreatedAt == nil {
			break
		}

		return e.complexity.Collection.CreatedAt(childComplexity), true
	case "Collection.creationStatus":
		if e.complexity.Collection.CreationStatus == nil {
			break
		}

		return e.complexity.Collection.CreationStatus(childComplexity), true
	case "Collection.creators":
		if e.complexity.Collection.Creators == nil {
			break
		}

		return e.complexity.Collection.Creators(childComplexity), true
	case "Collection.holders":
		if e.complexity.Collection.Holders == nil {
			break
		}

		return e.complexity.Collection.Holders(childComplexity), true
	case "Collection.id":
		if e.complexity.Collection.ID == nil {
			break
		}

		return e.complexity.Collection.ID(childComplexity), true
	case "Collection.metadataJson":
		if e.complexity.Collection.MetadataJson == nil {
			break
		}

		return e.complexity.Collection.MetadataJson(childComplexity), true
	case "Collection.mints":
		if e.complexity.Collection.Mints == nil {
			break
		}

		args, err := ec.field_Collection_mints_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Collection.Mints(childComplexity, args["first"].(*int), args["after"].(*string)), true
	case "Collection.projectId":
		if e.complexity.Collection.ProjectID == nil {
			break
		}

		return e.complexity.Collection.ProjectID(childComplexity), true
	case "Collection.purchaseHistories":
		if e.complexity.Collection.PurchaseHistories == nil {
			break
		}

		return e.complexity.Collection.PurchaseHistories(childComplexity), true
	case "Collection.sellerFeeBasisPoints":
		if e.complexity.Collection.SellerFeeBasisPoints == nil {
			break
		}

		return e.complexity.Collection.SellerFeeBasisPoints(childComplexity), true
	case "Collection.signature":
		if e.complexity.Collection.Signature == nil {
			break
		}

		return e.complexity.Collection.Signature(childComplexity), true
	case "Collection.supply":
		if e.complexity.Collection.Supply == nil {
			break
		}

		return e.complexity.Collection.Supply(childComplexity), true
	case "Collection.totalMints":
		if e.complexity.Collection.TotalMints == nil {
			break
		}

		return e.complexity.Collection.TotalMints(childComplexity), true

	case "CollectionConnection.edges":
		if e.complexity.CollectionConnection.Edges == nil {
			break
		}

		return e.complexity.CollectionConnection.Edges(childComplexity), true
	case "CollectionConnection.pageInfo":
		if e.complexity.CollectionConnection.PageInfo == nil {
			break
		}

		return e.complexity.CollectionConnection.PageInfo(childComplexity), true

	case "CollectionEdge.cursor":
		if e.complexity.CollectionEdge.Cursor == nil {
			break
		}

		return e.complexity.CollectionEdge.Cursor(childComplexity), true
	case "CollectionEdge.node":
		if e.complexity.CollectionEdge.Node == nil {
			break
		}

		return e.complexity.CollectionEdge.Node(childComplexity), true

	case "CollectionMint.address":
		if e.complexity.CollectionMint.Address == nil {
			break
		}

		return e.complexity.CollectionMint.Address(childComplexity), true
	case "CollectionMint.collection":
		if e.complexity.CollectionMint.Collection == nil {
			break
		}

		return e.complexity.CollectionMint.Collection(childComplexity), true
	case "CollectionMint.collectionId":
		if e.complexity.CollectionMint.CollectionID == nil {
			break
		}

		return e.complexity.CollectionMint.CollectionID(childComplexity), true
	case "CollectionMint.compressed":
		if e.complexity.CollectionMint.Compressed == nil {
			break
		}

		return e.complexity.CollectionMint.Compressed(childComplexity), true
	case "CollectionMint.createdAt":
		if e.complexity.CollectionMint.CreatedAt == nil {
			break
		}

		return e.complexity.CollectionMint.CreatedAt(childComplexity), true
	case "CollectionMint.creationStatus":
		if e.complexity.CollectionMint.CreationStatus == nil {
			break
		}

		return e.complexity.CollectionMint.CreationStatus(childComplexity), true
	case "CollectionMint.creators":
		if e.complexity.CollectionMint.Creators == nil {
			break
		}

		return e.complexity.CollectionMint.Creators(childComplexity), true
	case "CollectionMint.edition":
		if e.complexity.CollectionMint.Edition == nil {
			break
		}

		return e.complexity.CollectionMint.Edition(childComplexity), true
	case "CollectionMint.id":
		if e.complexity.CollectionMint.ID == nil {
			break
		}

		return e.complexity.CollectionMint.ID(childComplexity), true
	case "CollectionMint.metadataJson":
		if e.complexity.CollectionMint.MetadataJson == nil {
			break
		}

		return e.complexity.CollectionMint.MetadataJson(childComplexity), true
	case "CollectionMint.mintHistories":
		if e.complexity.CollectionMint.MintHistories == nil {
			break
		}

		return e.complexity.CollectionMint.MintHistories(childComplexity), true
	case "CollectionMint.owner":
		if e.complexity.CollectionMint.Owner == nil {
			break
		}

		return e.complexity.CollectionMint.Owner(childComplexity), true
	case "CollectionMint.sellerFeeBasisPoints":
		if e.complexity.CollectionMint.SellerFeeBasisPoints == nil {
			break
		}

		return e.complexity.CollectionMint.SellerFeeBasisPoints(childComplexity), true
	case "CollectionMint.signature":
		if e.complexity.CollectionMint.Signature == nil {
			break
		}

		return e.complexity.CollectionMint.Signature(childComplexity), true
	case "CollectionMint.switchHistories":
		if e.complexity.CollectionMint.SwitchHistories == nil {
			break
		}

		return e.complexity.CollectionMint.SwitchHistories(childComplexity), true
	case "CollectionMint.transfers":
		if e.complexity.CollectionMint.Transfers == nil {
			break
		}

		return e.complexity.CollectionMint.Transfers(childComplexity), true
	case "CollectionMint.updateHistories":
		if e.complexity.CollectionMint.UpdateHistories == nil {
			break
		}

		return e.complexity.CollectionMint.UpdateHistories(childComplexity), true

	case "Creator.address":
		if e.complexity.Creator.Address == nil {
			break
		}

		return e.complexity.Creator.Address(childComplexity), true
	case "Creator.share":
		if e.complexity.Creator.Share == nil {
			break
		}

		return e.complexity.Creator.Share(childComplexity), true
	case "Creator.verified":
		if e.complexity.Creator.Verified == nil {
			break
		}

		return e.complexity.Creator.Verified(childComplexity), true

	case "Customer.id":
		if e.complexity.Customer.ID == nil {
			break
		}

		return e.complexity.Customer.ID(childComplexity), true
	case "Customer.mints":
		if e.complexity.Customer.Mints == nil {
			break
		}

		args, err := ec.field_Customer_mints_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Customer.Mints(childComplexity, args["first"].(*int), args["after"].(*string)), true

	case "Drop.collection":
		if e.complexity.Drop.Collection == nil {
			break
		}

		return e.complexity.Drop.Collection(childComplexity), true
	case "Drop.collectionId":
		if e.complexity.Drop.CollectionID == nil {
			break
		}

		return e.complexity.Drop.CollectionID(childComplexity), true
	case "Drop.createdAt":
		if e.complexity.Drop.CreatedAt == nil {
			break
		}

		return e.complexity.Drop.CreatedAt(childComplexity), true
	case "Drop.creationStatus":
		if e.complexity.Drop.CreationStatus == nil {
			break
		}

		return e.complexity.Drop.CreationStatus(childComplexity), true
	case "Drop.dropType":
		if e.complexity.Drop.DropType == nil {
			break
		}

		return e.complexity.Drop.DropType(childComplexity), true
	case "Drop.endTime":
		if e.complexity.Drop.EndTime == nil {
			break
		}

		return e.complexity.Drop.EndTime(childComplexity), true
	case "Drop.id":
		if e.complexity.Drop.ID == nil {
			break
		}

		return e.complexity.Drop.ID(childComplexity), true
	case "Drop.pausedAt":
		if e.complexity.Drop.PausedAt == nil {
			break
		}

		return e.complexity.Drop.PausedAt(childComplexity), true
	case "Drop.price":
		if e.complexity.Drop.Price == nil {
			break
		}

		return e.complexity.Drop.Price(childComplexity), true
	case "Drop.projectId":
		if e.complexity.Drop.ProjectID == nil {
			break
		}

		return e.complexity.Drop.ProjectID(childComplexity), true
	case "Drop.purchaseHistories":
		if e.complexity.Drop.PurchaseHistories == nil {
			break
		}

		return e.complexity.Drop.PurchaseHistories(childComplexity), true
	case "Drop.queuedMints":
		if e.complexity.Drop.QueuedMints == nil {
			break
		}

		return e.complexity.Drop.QueuedMints(childComplexity), true
	case "Drop.shutdownAt":
		if e.complexity.Drop.ShutdownAt == nil {
			break
		}

		return e.complexity.Drop.ShutdownAt(childComplexity), true
	case "Drop.startTime":
		if e.complexity.Drop.StartTime == nil {
			break
		}

		return e.complexity.Drop.StartTime(childComplexity), true
	case "Drop.status":
		if e.complexity.Drop.Status == nil {
			break
		}

		return e.complexity.Drop.Status(childComplexity), true

	case "DropConnection.edges":
		if e.complexity.DropConnection.Edges == nil {
			break
		}

		return e.complexity.DropConnection.Edges(childComplexity), true
	case "DropConnection.pageInfo":
		if e.complexity.DropConnection.PageInfo == nil {
			break
		}

		return e.complexity.DropConnection.PageInfo(childComplexity), true

	case "DropEdge.cursor":
		if e.complexity.DropEdge.Cursor == nil {
			break
		}

		return e.complexity.DropEdge.Cursor(childComplexity), true
	case "DropEdge.node":
		if e.complexity.DropEdge.Node == nil {
			break
		}

		return e.complexity.DropEdge.Node(childComplexity), true

	case "Entity.findCustomerByID":
		if e.complexity.Entity.FindCustomerByID == nil {
			break
		}

		args, err := ec.field_Entity_findCustomerByID_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Entity.FindCustomerByID(childComplexity, args["id"].(uuid.UUID)), true
	case "Entity.findProjectByID":
		if e.complexity.Entity.FindProjectByID == nil {
			break
		}

		args, err := ec.field_Entity_findProjectByID_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Entity.FindProjectByID(childComplexity, args["id"].(uuid.UUID)), true

	case "Holder.collectionId":
		if e.complexity.Holder.CollectionID == nil {
			break
		}

		return e.complexity.Holder.CollectionID(childComplexity), true
	case "Holder.mints":
		if e.complexity.Holder.Mints == nil {
			break
		}

		return e.complexity.Holder.Mints(childComplexity), true
	case "Holder.owner":
		if e.complexity.Holder.Owner == nil {
			break
		}

		return e.complexity.Holder.Owner(childComplexity), true

	case "MetadataJson.animationUrl":
		if e.complexity.MetadataJson.AnimationURL == nil {
			break
		}

		return e.complexity.MetadataJson.AnimationURL(childComplexity), true
	case "MetadataJson.attributes":
		if e.complexity.MetadataJson.Attributes == nil {
			break
		}

		return e.complexity.MetadataJson.Attributes(childComplexity), true
	case "MetadataJson.description":
		if e.complexity.MetadataJson.Description == nil {
			break
		}

		return e.complexity.MetadataJson.Description(childComplexity), true
	case "MetadataJson.externalUrl":
		if e.complexity.MetadataJson.ExternalURL == nil {
			break
		}

		return e.complexity.MetadataJson.ExternalURL(childComplexity), true
	case "MetadataJson.files":
		if e.complexity.MetadataJson.Files == nil {
			break
		}

		return e.complexity.MetadataJson.Files(childComplexity), true
	case "MetadataJson.id":
		if e.complexity.MetadataJson.ID == nil {
			break
		}

		return e.complexity.MetadataJson.ID(childComplexity), true
	case "MetadataJson.identifier":
		if e.complexity.MetadataJson.Identifier == nil {
			break
		}

		return e.complexity.MetadataJson.Identifier(childComplexity), true
	case "MetadataJson.image":
		if e.complexity.MetadataJson.Image == nil {
			break
		}

		return e.complexity.MetadataJson.Image(childComplexity), true
	case "MetadataJson.name":
		if e.complexity.MetadataJson.Name == nil {
			break
		}

		return e.complexity.MetadataJson.Name(childComplexity), true
	case "MetadataJson.symbol":
		if e.complexity.MetadataJson.Symbol == nil {
			break
		}

		return e.complexity.MetadataJson.Symbol(childComplexity), true
	case "MetadataJson.uri":
		if e.complexity.MetadataJson.URI == nil {
			break
		}

		return e.complexity.MetadataJson.URI(childComplexity), true

	case "MetadataJsonAttribute.traitType":
		if e.complexity.MetadataJsonAttribute.TraitType == nil {
			break
		}

		return e.complexity.MetadataJsonAttribute.TraitType(childComplexity), true
	case "MetadataJsonAttribute.value":
		if e.complexity.MetadataJsonAttribute.Value == nil {
			break
		}

		return e.complexity.MetadataJsonAttribute.Value(childComplexity), true

	case "MetadataJsonFile.fileType":
		if e.complexity.MetadataJsonFile.FileType == nil {
			break
		}

		return e.complexity.MetadataJsonFile.FileType(childComplexity), true
	case "MetadataJsonFile.uri":
		if e.complexity.MetadataJsonFile.URI == nil {
			break
		}

		return e.complexity.MetadataJsonFile.URI(childComplexity), true

	case "MintConnection.edges":
		if e.complexity.MintConnection.Edges == nil {
			break
		}

		return e.complexity.MintConnection.Edges(childComplexity), true
	case "MintConnection.pageInfo":
		if e.complexity.MintConnection.PageInfo == nil {
			break
		}

		return e.complexity.MintConnection.PageInfo(childComplexity), true

	case "MintEdge.cursor":
		if e.complexity.MintEdge.Cursor == nil {
			break
		}

		return e.complexity.MintEdge.Cursor(childComplexity), true
	case "MintEdge.node":
		if e.complexity.MintEdge.Node == nil {
			break
		}

		return e.complexity.MintEdge.Node(childComplexity), true

	case "MintHistory.collectionId":
		if e.complexity.MintHistory.CollectionID == nil {
			break
		}

		return e.complexity.MintHistory.CollectionID(childComplexity), true
	case "MintHistory.createdAt":
		if e.complexity.MintHistory.CreatedAt == nil {
			break
		}

		return e.complexity.MintHistory.CreatedAt(childComplexity), true
	case "MintHistory.dropId":
		if e.complexity.MintHistory.DropID == nil {
			break
		}

		return e.complexity.MintHistory.DropID(childComplexity), true
	case "MintHistory.mintId":
		if e.complexity.MintHistory.MintID == nil {
			break
		}

		return e.complexity.MintHistory.MintID(childComplexity), true
	case "MintHistory.signature":
		if e.complexity.MintHistory.Signature == nil {
			break
		}

		return e.complexity.MintHistory.Signature(childComplexity), true
	case "MintHistory.status":
		if e.complexity.MintHistory.Status == nil {
			break
		}

		return e.complexity.MintHistory.Status(childComplexity), true
	case "MintHistory.wallet":
		if e.complexity.MintHistory.Wallet == nil {
			break
		}

		return e.complexity.MintHistory.Wallet(childComplexity), true

	case "Mutation.createCollection":
		if e.complexity.Mutation.CreateCollection == nil {
			break
		}

		args, err := ec.field_Mutation_createCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateCollection(childComplexity, args["input"].(CreateCollectionInput)), true
	case "Mutation.createDrop":
		if e.complexity.Mutation.CreateDrop == nil {
			break
		}

		args, err := ec.field_Mutation_createDrop_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateDrop(childComplexity, args["input"].(CreateDropInput)), true
	case "Mutation.importCollection":
		if e.complexity.Mutation.ImportCollection == nil {
			break
		}

		args, err := ec.field_Mutation_importCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.ImportCollection(childComplexity, args["input"].(ImportCollectionInput)), true
	case "Mutation.mintEdition":
		if e.complexity.Mutation.MintEdition == nil {
			break
		}

		args, err := ec.field_Mutation_mintEdition_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MintEdition(childComplexity, args["input"].(MintEditionInput)), true
	case "Mutation.mintQueued":
		if e.complexity.Mutation.MintQueued == nil {
			break
		}

		args, err := ec.field_Mutation_mintQueued_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MintQueued(childComplexity, args["input"].(MintQueuedInput)), true
	case "Mutation.mintToCollection":
		if e.complexity.Mutation.MintToCollection == nil {
			break
		}

		args, err := ec.field_Mutation_mintToCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MintToCollection(childComplexity, args["input"].(MintToCollectionInput)), true
	case "Mutation.patchCollection":
		if e.complexity.Mutation.PatchCollection == nil {
			break
		}

		args, err := ec.field_Mutation_patchCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.PatchCollection(childComplexity, args["input"].(PatchCollectionInput)), true
	case "Mutation.patchDrop":
		if e.complexity.Mutation.PatchDrop == nil {
			break
		}

		args, err := ec.field_Mutation_patchDrop_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.PatchDrop(childComplexity, args["input"].(PatchDropInput)), true
	case "Mutation.pauseDrop":
		if e.complexity.Mutation.PauseDrop == nil {
			break
		}

		args, err := ec.field_Mutation_pauseDrop_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.PauseDrop(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.processDropQueue":
		if e.complexity.Mutation.ProcessDropQueue == nil {
			break
		}

		args, err := ec.field_Mutation_processDropQueue_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.ProcessDropQueue(childComplexity, args["dropId"].(uuid.UUID)), true
	case "Mutation.resumeDrop":
		if e.complexity.Mutation.ResumeDrop == nil {
			break
		}

		args, err := ec.field_Mutation_resumeDrop_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.ResumeDrop(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.retryCollection":
		if e.complexity.Mutation.RetryCollection == nil {
			break
		}

		args, err := ec.field_Mutation_retryCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RetryCollection(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.retryDrop":
		if e.complexity.Mutation.RetryDrop == nil {
			break
		}

		args, err := ec.field_Mutation_retryDrop_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RetryDrop(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.retryMintEdition":
		if e.complexity.Mutation.RetryMintEdition == nil {
			break
		}

		args, err := ec.field_Mutation_retryMintEdition_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RetryMintEdition(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.retryMintToCollection":
		if e.complexity.Mutation.RetryMintToCollection == nil {
			break
		}

		args, err := ec.field_Mutation_retryMintToCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RetryMintToCollection(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.retryUpdateMint":
		if e.complexity.Mutation.RetryUpdateMint == nil {
			break
		}

		args, err := ec.field_Mutation_retryUpdateMint_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RetryUpdateMint(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.shutdownDrop":
		if e.complexity.Mutation.ShutdownDrop == nil {
			break
		}

		args, err := ec.field_Mutation_shutdownDrop_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.ShutdownDrop(childComplexity, args["id"].(uuid.UUID)), true
	case "Mutation.switchCollection":
		if e.complexity.Mutation.SwitchCollection == nil {
			break
		}

		args, err := ec.field_Mutation_switchCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.SwitchCollection(childComplexity, args["input"].(SwitchCollectionInput)), true
	case "Mutation.transferAsset":
		if e.complexity.Mutation.TransferAsset == nil {
			break
		}

		args, err := ec.field_Mutation_transferAsset_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.TransferAsset(childComplexity, args["input"].(TransferAssetInput)), true
	case "Mutation.updateMint":
		if e.complexity.Mutation.UpdateMint == nil {
			break
		}

		args, err := ec.field_Mutation_updateMint_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateMint(childComplexity, args["input"].(UpdateMintInput)), true

	case "NftTransfer.collectionMintId":
		if e.complexity.NftTransfer.CollectionMintID == nil {
			break
		}

		return e.complexity.NftTransfer.CollectionMintID(childComplexity), true
	case "NftTransfer.createdAt":
		if e.complexity.NftTransfer.CreatedAt == nil {
			break
		}

		return e.complexity.NftTransfer.CreatedAt(childComplexity), true
	case "NftTransfer.id":
		if e.complexity.NftTransfer.ID == nil {
			break
		}

		return e.complexity.NftTransfer.ID(childComplexity), true
	case "NftTransfer.recipient":
		if e.complexity.NftTransfer.Recipient == nil {
			break
		}

		return e.complexity.NftTransfer.Recipient(childComplexity), true
	case "NftTransfer.sender":
		if e.complexity.NftTransfer.Sender == nil {
			break
		}

		return e.complexity.NftTransfer.Sender(childComplexity), true
	case "NftTransfer.signature":
		if e.complexity.NftTransfer.Signature == nil {
			break
		}

		return e.complexity.NftTransfer.Signature(childComplexity), true

	case "PageInfo.endCursor":
		if e.complexity.PageInfo.EndCursor == nil {
			break
		}

		return e.complexity.PageInfo.EndCursor(childComplexity), true
	case "PageInfo.hasNextPage":
		if e.complexity.PageInfo.HasNextPage == nil {
			break
		}

		return e.complexity.PageInfo.HasNextPage(childComplexity), true

	case "Project.collections":
		if e.complexity.Project.Collections == nil {
			break
		}

		args, err := ec.field_Project_collections_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Project.Collections(childComplexity, args["first"].(*int), args["after"].(*string)), true
	case "Project.drops":
		if e.complexity.Project.Drops == nil {
			break
		}

		args, err := ec.field_Project_drops_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Project.Drops(childComplexity, args["first"].(*int), args["after"].(*string)), true
	case "Project.id":
		if e.complexity.Project.ID == nil {
			break
		}

		return e.complexity.Project.ID(childComplexity), true
	case "Project.wallets":
		if e.complexity.Project.Wallets == nil {
			break
		}

		return e.complexity.Project.Wallets(childComplexity), true

	case "ProjectWallet.blockchain":
		if e.complexity.ProjectWallet.Blockchain == nil {
			break
		}

		return e.complexity.ProjectWallet.Blockchain(childComplexity), true
	case "ProjectWallet.id":
		if e.complexity.ProjectWallet.ID == nil {
			break
		}

		return e.complexity.ProjectWallet.ID(childComplexity), true
	case "ProjectWallet.projectId":
		if e.complexity.ProjectWallet.ProjectID == nil {
			break
		}

		return e.complexity.ProjectWallet.ProjectID(childComplexity), true
	case "ProjectWallet.walletAddress":
		if e.complexity.ProjectWallet.WalletAddress == nil {
			break
		}

		return e.complexity.ProjectWallet.WalletAddress(childComplexity), true

	case "Query.collection":
		if e.complexity.Query.Collection == nil {
			break
		}

		args, err := ec.field_Query_collection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Collection(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.collections":
		if e.complexity.Query.Collections == nil {
			break
		}

		args, err := ec.field_Query_collections_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Collections(childComplexity, args["projectId"].(uuid.UUID), args["first"].(*int), args["after"].(*string)), true
	case "Query.drop":
		if e.complexity.Query.Drop == nil {
			break
		}

		args, err := ec.field_Query_drop_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Drop(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.drops":
		if e.complexity.Query.Drops == nil {
			break
		}

		args, err := ec.field_Query_drops_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Drops(childComplexity, args["projectId"].(uuid.UUID), args["first"].(*int), args["after"].(*string)), true
	case "Query.mint":
		if e.complexity.Query.Mint == nil {
			break
		}

		args, err := ec.field_Query_mint_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Mint(childComplexity, args["id"].(uuid.UUID)), true
	case "Query.mints":
		if e.complexity.Query.Mints == nil {
			break
		}

		args, err := ec.field_Query_mints_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Mints(childComplexity, args["collectionId"].(uuid.UUID), args["first"].(*int), args["after"].(*string)), true
	case "Query.mintsByOwner":
		if e.complexity.Query.MintsByOwner == nil {
			break
		}

		args, err := ec.field_Query_mintsByOwner_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.MintsByOwner(childComplexity, args["owner"].(string), args["first"].(*int), args["after"].(*string)), true
	case "Query._service":
		if e.complexity.Query.__resolve__service == nil {
			break
		}

		return e.complexity.Query.__resolve__service(childComplexity), true
	case "Query._entities":
		if e.complexity.Query.__resolve_entities == nil {
			break
		}

		args, err := ec.field_Query__entities_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.__resolve_entities(childComplexity, args["representations"].([]map[string]any)), true

	case "SwitchCollectionHistory.createdAt":
		if e.complexity.SwitchCollectionHistory.CreatedAt == nil {
			break
		}

		return e.complexity.SwitchCollectionHistory.CreatedAt(childComplexity), true
	case "SwitchCollectionHistory.mintId":
		if e.complexity.SwitchCollectionHistory.MintID == nil {
			break
		}

		return e.complexity.SwitchCollectionHistory.MintID(childComplexity), true
	case "SwitchCollectionHistory.newCollectionId":
		if e.complexity.SwitchCollectionHistory.NewCollectionID == nil {
			break
		}

		return e.complexity.SwitchCollectionHistory.NewCollectionID(childComplexity), true
	case "SwitchCollectionHistory.prevCollectionId":
		if e.complexity.SwitchCollectionHistory.PrevCollectionID == nil {
			break
		}

		return e.complexity.SwitchCollectionHistory.PrevCollectionID(childComplexity), true

	case "UpdateHistory.createdAt":
		if e.complexity.UpdateHistory.CreatedAt == nil {
			break
		}

		return e.complexity.UpdateHistory.CreatedAt(childComplexity), true
	case "UpdateHistory.mintId":
		if e.complexity.UpdateHistory.MintID == nil {
			break
		}

		return e.complexity.UpdateHistory.MintID(childComplexity), true
	case "UpdateHistory.signature":
		if e.complexity.UpdateHistory.Signature == nil {
			break
		}

		return e.complexity.UpdateHistory.Signature(childComplexity), true
	case "UpdateHistory.status":
		if e.complexity.UpdateHistory.Status == nil {
			break
		}

		return e.complexity.UpdateHistory.Status(childComplexity), true

	case "_Service.sdl":
		if e.complexity._Service.SDL == nil {
			break
		}

		return e.complexity._Service.SDL(childComplexity), true

	}
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := executionContext{opCtx, e, 0, 0, make(chan graphql.DeferredResult)}
	inputUnmarshalMap := graphql.BuildUnmarshalerMap(
		ec.unmarshalInputCreateCollectionInput,
		ec.unmarshalInputCreateDropInput,
		ec.unmarshalInputCreatorInput,
		ec.unmarshalInputImportCollectionInput,
		ec.unmarshalInputMetadataJsonAttributeInput,
		ec.unmarshalInputMetadataJsonFileInput,
		ec.unmarshalInputMetadataJsonInput,
		ec.unmarshalInputMintEditionInput,
		ec.unmarshalInputMintQueuedInput,
		ec.unmarshalInputMintToCollectionInput,
		ec.unmarshalInputPatchCollectionInput,
		ec.unmarshalInputPatchDropInput,
		ec.unmarshalInputSwitchCollectionInput,
		ec.unmarshalInputTransferAssetInput,
		ec.unmarshalInputUpdateMintInput,
	)
	first := true

	switch opCtx.Operation.Operation {
	case ast.Query:
		return func(ctx context.Context) *graphql.Response {
			var response graphql.Response
			var data graphql.Marshaler
			if first {
				first = false
				ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
				data = ec._Query(ctx, opCtx.Operation.SelectionSet)
			} else {
				if atomic.LoadInt32(&ec.pendingDeferred) > 0 {
					result := <-ec.deferredResults
					atomic.AddInt32(&ec.pendingDeferred, -1)
					data = result.Result
					response.Path = result.Path
					response.Label = result.Label
					response.Errors = result.Errors
				} else {
					return nil
				}
			}
			var buf bytes.Buffer
			data.MarshalGQL(&buf)
			response.Data = buf.Bytes()
			if atomic.LoadInt32(&ec.deferred) > 0 {
				hasNext := atomic.LoadInt32(&ec.pendingDeferred) > 0
				response.HasNext = &hasNext
			}

			return &response
		}
	case ast.Mutation:
		return func(ctx context.Context) *graphql.Response {
			if !first {
				return nil
			}
			first = false
			ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
			data := ec._Mutation(ctx, opCtx.Operation.SelectionSet)
			var buf bytes.Buffer
			data.MarshalGQL(&buf)

			return &graphql.Response{
				Data: buf.Bytes(),
			}
		}

	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}
}

type executionContext struct {
	*graphql.OperationContext
	*executableSchema
	deferred        int32
	pendingDeferred int32
	deferredResults chan graphql.DeferredResult
}

func (ec *executionContext) processDeferredGroup(dg graphql.DeferredGroup) {
	atomic.AddInt32(&ec.pendingDeferred, 1)
	go func() {
		ctx := graphql.WithFreshResponseContext(dg.Context)
		dg.FieldSet.Dispatch(ctx)
		ds := graphql.DeferredResult{
			Path:   dg.Path,
			Label:  dg.Label,
			Result: dg.FieldSet,
			Errors: graphql.GetErrors(ctx),
		}
		// null fields should bubble up
		if dg.FieldSet.Invalids > 0 {
			ds.Result = graphql.Null
		}
		ec.deferredResults <- ds
	}()
}

func (ec *executionContext) introspectSchema() (*introspection.Schema, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapSchema(ec.Schema()), nil
}

func (ec *executionContext) introspectType(name string) (*introspection.Type, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapTypeFromDef(ec.Schema(), ec.Schema().Types[name]), nil
}

//go:embed "schema.graphql"
var sourcesFS embed.FS

func sourceData(filename string) string {
	data, err := sourcesFS.ReadFile(filename)
	if err != nil {
		panic(fmt.Sprintf("codegen problem: %s not available", filename))
	}
	return string(data)
}

var sources = []*ast.Source{
	{Name: "schema.graphql", Input: sourceData("schema.graphql"), BuiltIn: false},
	{Name: "../../../federation/directives.graphql", Input: `
	directive @authenticated on FIELD_DEFINITION | OBJECT | INTERFACE | SCALAR | ENUM
	directive @composeDirective(name: String!) repeatable on SCHEMA
	directive @extends on OBJECT | INTERFACE
	directive @external on OBJECT | FIELD_DEFINITION
	directive @key(fields: FieldSet!, resolvable: Boolean = true) repeatable on OBJECT | INTERFACE
	directive @inaccessible on
	  | ARGUMENT_DEFINITION
	  | ENUM
	  | ENUM_VALUE
	  | FIELD_DEFINITION
	  | INPUT_FIELD_DEFINITION
	  | INPUT_OBJECT
	  | INTERFACE
	  | OBJECT
	  | SCALAR
	  | UNION
	directive @interfaceObject on OBJECT
	directive @link(import: [String!], url: String!) repeatable on SCHEMA
	directive @override(from: String!, label: String) on FIELD_DEFINITION
	directive @policy(policies: [[federation__Policy!]!]!) on
	  | FIELD_DEFINITION
	  | OBJECT
	  | INTERFACE
	  | SCALAR
	  | ENUM
	directive @provides(fields: FieldSet!) on FIELD_DEFINITION
	directive @requires(fields: FieldSet!) on FIELD_DEFINITION
	directive @requiresScopes(scopes: [[federation__Scope!]!]!) on
	  | FIELD_DEFINITION
	  | OBJECT
	  | INTERFACE
	  | SCALAR
	  | ENUM
	directive @shareable repeatable on FIELD_DEFINITION | OBJECT
	directive @tag(name: String!) repeatable on
	  | ARGUMENT_DEFINITION
	  | ENUM
	  | ENUM_VALUE
	  | FIELD_DEFINITION
	  | INPUT_FIELD_DEFINITION
	  | INPUT_OBJECT
	  | INTERFACE
	  | OBJECT
	  | SCALAR
	  | UNION
	scalar _Any
	scalar FieldSet
	scalar federation__Policy
	scalar federation__Scope
`, BuiltIn: true},
	{Name: "../../../federation/entity.graphql", Input: `
# a union of all types that use the @key directive
union _Entity = Customer | Project

# fake type to build resolver interfaces for users to implement
type Entity {
	findCustomerByID(id: UUID!,): Customer!
	findProjectByID(id: UUID!,): Project!
}

type _Service {
  sdl: String
}

extend type Query {
  _entities(representations: [_Any!]!): [_Entity]!
  _service: _Service!
}
`, BuiltIn: true},
}
var parsedSchema = gqlparser.MustLoadSchema(sources...)

// endregion ************************** generated!.gotpl **************************

// region    ***************************** args.gotpl *****************************

func (ec *executionContext) field_Collection_mints_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "after", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["after"] = arg1
	return args, nil
}

func (ec *executionContext) field_Customer_mints_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "after", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["after"] = arg1
	return args, nil
}

func (ec *executionContext) field_Entity_findCustomerByID_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Entity_findProjectByID_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreateCollectionInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createDrop_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCreateDropInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreateDropInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_importCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNImportCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐImportCollectionInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_mintEdition_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNMintEditionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintEditionInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_mintQueued_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNMintQueuedInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintQueuedInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_mintToCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNMintToCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintToCollectionInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_patchCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNPatchCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐPatchCollectionInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_patchDrop_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNPatchDropInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐPatchDropInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_pauseDrop_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_processDropQueue_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "dropId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["dropId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_resumeDrop_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_retryCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_retryDrop_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_retryMintEdition_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_retryMintToCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_retryUpdateMint_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_shutdownDrop_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_switchCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNSwitchCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐSwitchCollectionInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_transferAsset_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNTransferAssetInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐTransferAssetInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateMint_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNUpdateMintInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐUpdateMintInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Project_collections_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "after", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["after"] = arg1
	return args, nil
}

func (ec *executionContext) field_Project_drops_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "after", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["after"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query___type_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "name", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["name"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query__entities_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "representations", ec.unmarshalN_Any2ᚕmapᚄ)
	if err != nil {
		return nil, err
	}
	args["representations"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_collection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_collections_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "projectId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["projectId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "after", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["after"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_drop_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_drops_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "projectId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["projectId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "after", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["after"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_mint_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_mintsByOwner_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "owner", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["owner"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "after", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["after"] = arg2
	return args, nil
}

func (ec *executionContext) field_Query_mints_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "collectionId", ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID)
	if err != nil {
		return nil, err
	}
	args["collectionId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "first", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["first"] = arg1
	arg2, err := graphql.ProcessArgField(ctx, rawArgs, "after", ec.unmarshalOString2ᚖstring)
	if err != nil {
		return nil, err
	}
	args["after"] = arg2
	return args, nil
}

func (ec *executionContext) field___Directive_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Field_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_enumValues_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_fields_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

// endregion ***************************** args.gotpl *****************************

// region    ************************** directives.gotpl **************************

// endregion ************************** directives.gotpl **************************

// region    **************************** field.gotpl *****************************

func (ec *executionContext) _Collection_id(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_projectId(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_projectId,
		func(ctx context.Context) (any, error) {
			return obj.ProjectID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_projectId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_blockchain(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_blockchain,
		func(ctx context.Context) (any, error) {
			return obj.Blockchain, nil
		},
		nil,
		ec.marshalNBlockchain2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐBlockchain,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_blockchain(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Blockchain does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_address(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_address,
		func(ctx context.Context) (any, error) {
			return obj.Address, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Collection_address(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_signature(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_signature,
		func(ctx context.Context) (any, error) {
			return obj.Signature, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Collection_signature(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_creationStatus(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_creationStatus,
		func(ctx context.Context) (any, error) {
			return obj.CreationStatus, nil
		},
		nil,
		ec.marshalNCreationStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐCreationStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_creationStatus(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type CreationStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_supply(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_supply,
		func(ctx context.Context) (any, error) {
			return obj.Supply, nil
		},
		nil,
		ec.marshalOInt2ᚖint64,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Collection_supply(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_totalMints(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_totalMints,
		func(ctx context.Context) (any, error) {
			return obj.TotalMints, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_totalMints(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_sellerFeeBasisPoints(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_sellerFeeBasisPoints,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Collection().SellerFeeBasisPoints(ctx, obj)
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_sellerFeeBasisPoints(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_createdAt(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_metadataJson(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_metadataJson,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Collection().MetadataJson(ctx, obj)
		},
		nil,
		ec.marshalOMetadataJson2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJson,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Collection_metadataJson(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_MetadataJson_id(ctx, field)
			case "name":
				return ec.fieldContext_MetadataJson_name(ctx, field)
			case "symbol":
				return ec.fieldContext_MetadataJson_symbol(ctx, field)
			case "description":
				return ec.fieldContext_MetadataJson_description(ctx, field)
			case "image":
				return ec.fieldContext_MetadataJson_image(ctx, field)
			case "animationUrl":
				return ec.fieldContext_MetadataJson_animationUrl(ctx, field)
			case "externalUrl":
				return ec.fieldContext_MetadataJson_externalUrl(ctx, field)
			case "uri":
				return ec.fieldContext_MetadataJson_uri(ctx, field)
			case "identifier":
				return ec.fieldContext_MetadataJson_identifier(ctx, field)
			case "attributes":
				return ec.fieldContext_MetadataJson_attributes(ctx, field)
			case "files":
				return ec.fieldContext_MetadataJson_files(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MetadataJson", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_creators(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_creators,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Collection().Creators(ctx, obj)
		},
		nil,
		ec.marshalNCreator2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCreatorᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_creators(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "address":
				return ec.fieldContext_Creator_address(ctx, field)
			case "verified":
				return ec.fieldContext_Creator_verified(ctx, field)
			case "share":
				return ec.fieldContext_Creator_share(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Creator", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_mints(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_mints,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Collection().Mints(ctx, obj, fc.Args["first"].(*int), fc.Args["after"].(*string))
		},
		nil,
		ec.marshalNMintConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintConnection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_mints(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "edges":
				return ec.fieldContext_MintConnection_edges(ctx, field)
			case "pageInfo":
				return ec.fieldContext_MintConnection_pageInfo(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MintConnection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Collection_mints_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Collection_holders(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_holders,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Collection().Holders(ctx, obj)
		},
		nil,
		ec.marshalNHolder2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚐHolderRowᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_holders(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "collectionId":
				return ec.fieldContext_Holder_collectionId(ctx, field)
			case "owner":
				return ec.fieldContext_Holder_owner(ctx, field)
			case "mints":
				return ec.fieldContext_Holder_mints(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Holder", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_purchaseHistories(ctx context.Context, field graphql.CollectedField, obj *schema.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_purchaseHistories,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Collection().PurchaseHistories(ctx, obj)
		},
		nil,
		ec.marshalNMintHistory2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMintHistoryᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_purchaseHistories(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "mintId":
				return ec.fieldContext_MintHistory_mintId(ctx, field)
			case "collectionId":
				return ec.fieldContext_MintHistory_collectionId(ctx, field)
			case "dropId":
				return ec.fieldContext_MintHistory_dropId(ctx, field)
			case "wallet":
				return ec.fieldContext_MintHistory_wallet(ctx, field)
			case "status":
				return ec.fieldContext_MintHistory_status(ctx, field)
			case "signature":
				return ec.fieldContext_MintHistory_signature(ctx, field)
			case "createdAt":
				return ec.fieldContext_MintHistory_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MintHistory", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionConnection_edges(ctx context.Context, field graphql.CollectedField, obj *CollectionConnection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionConnection_edges,
		func(ctx context.Context) (any, error) {
			return obj.Edges, nil
		},
		nil,
		ec.marshalNCollectionEdge2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCollectionEdgeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionConnection_edges(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionConnection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "cursor":
				return ec.fieldContext_CollectionEdge_cursor(ctx, field)
			case "node":
				return ec.fieldContext_CollectionEdge_node(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionEdge", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionConnection_pageInfo(ctx context.Context, field graphql.CollectedField, obj *CollectionConnection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionConnection_pageInfo,
		func(ctx context.Context) (any, error) {
			return obj.PageInfo, nil
		},
		nil,
		ec.marshalNPageInfo2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐPageInfo,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionConnection_pageInfo(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionConnection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "hasNextPage":
				return ec.fieldContext_PageInfo_hasNextPage(ctx, field)
			case "endCursor":
				return ec.fieldContext_PageInfo_endCursor(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PageInfo", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionEdge_cursor(ctx context.Context, field graphql.CollectedField, obj *CollectionEdge) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionEdge_cursor,
		func(ctx context.Context) (any, error) {
			return obj.Cursor, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionEdge_cursor(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionEdge",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionEdge_node(ctx context.Context, field graphql.CollectedField, obj *CollectionEdge) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionEdge_node,
		func(ctx context.Context) (any, error) {
			return obj.Node, nil
		},
		nil,
		ec.marshalNCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionEdge_node(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionEdge",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Collection_projectId(ctx, field)
			case "blockchain":
				return ec.fieldContext_Collection_blockchain(ctx, field)
			case "address":
				return ec.fieldContext_Collection_address(ctx, field)
			case "signature":
				return ec.fieldContext_Collection_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Collection_creationStatus(ctx, field)
			case "supply":
				return ec.fieldContext_Collection_supply(ctx, field)
			case "totalMints":
				return ec.fieldContext_Collection_totalMints(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_Collection_sellerFeeBasisPoints(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "metadataJson":
				return ec.fieldContext_Collection_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_Collection_creators(ctx, field)
			case "mints":
				return ec.fieldContext_Collection_mints(ctx, field)
			case "holders":
				return ec.fieldContext_Collection_holders(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Collection_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_id(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_collectionId(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_collectionId,
		func(ctx context.Context) (any, error) {
			return obj.CollectionID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_collectionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_address(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_address,
		func(ctx context.Context) (any, error) {
			return obj.Address, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_address(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_owner(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_owner,
		func(ctx context.Context) (any, error) {
			return obj.Owner, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_owner(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_signature(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_signature,
		func(ctx context.Context) (any, error) {
			return obj.Signature, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_signature(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_creationStatus(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_creationStatus,
		func(ctx context.Context) (any, error) {
			return obj.CreationStatus, nil
		},
		nil,
		ec.marshalNCreationStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐCreationStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_creationStatus(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type CreationStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_edition(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_edition,
		func(ctx context.Context) (any, error) {
			return obj.Edition, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_edition(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_sellerFeeBasisPoints(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_sellerFeeBasisPoints,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CollectionMint().SellerFeeBasisPoints(ctx, obj)
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_sellerFeeBasisPoints(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_compressed(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_compressed,
		func(ctx context.Context) (any, error) {
			return obj.Compressed, nil
		},
		nil,
		ec.marshalOBoolean2bool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_compressed(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_createdAt(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_collection(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_collection,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CollectionMint().Collection(ctx, obj)
		},
		nil,
		ec.marshalNCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_collection(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Collection_projectId(ctx, field)
			case "blockchain":
				return ec.fieldContext_Collection_blockchain(ctx, field)
			case "address":
				return ec.fieldContext_Collection_address(ctx, field)
			case "signature":
				return ec.fieldContext_Collection_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Collection_creationStatus(ctx, field)
			case "supply":
				return ec.fieldContext_Collection_supply(ctx, field)
			case "totalMints":
				return ec.fieldContext_Collection_totalMints(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_Collection_sellerFeeBasisPoints(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "metadataJson":
				return ec.fieldContext_Collection_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_Collection_creators(ctx, field)
			case "mints":
				return ec.fieldContext_Collection_mints(ctx, field)
			case "holders":
				return ec.fieldContext_Collection_holders(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Collection_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_metadataJson(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_metadataJson,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CollectionMint().MetadataJson(ctx, obj)
		},
		nil,
		ec.marshalOMetadataJson2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJson,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_metadataJson(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_MetadataJson_id(ctx, field)
			case "name":
				return ec.fieldContext_MetadataJson_name(ctx, field)
			case "symbol":
				return ec.fieldContext_MetadataJson_symbol(ctx, field)
			case "description":
				return ec.fieldContext_MetadataJson_description(ctx, field)
			case "image":
				return ec.fieldContext_MetadataJson_image(ctx, field)
			case "animationUrl":
				return ec.fieldContext_MetadataJson_animationUrl(ctx, field)
			case "externalUrl":
				return ec.fieldContext_MetadataJson_externalUrl(ctx, field)
			case "uri":
				return ec.fieldContext_MetadataJson_uri(ctx, field)
			case "identifier":
				return ec.fieldContext_MetadataJson_identifier(ctx, field)
			case "attributes":
				return ec.fieldContext_MetadataJson_attributes(ctx, field)
			case "files":
				return ec.fieldContext_MetadataJson_files(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MetadataJson", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_creators(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_creators,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CollectionMint().Creators(ctx, obj)
		},
		nil,
		ec.marshalNCreator2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCreatorᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_creators(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "address":
				return ec.fieldContext_Creator_address(ctx, field)
			case "verified":
				return ec.fieldContext_Creator_verified(ctx, field)
			case "share":
				return ec.fieldContext_Creator_share(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Creator", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_mintHistories(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_mintHistories,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CollectionMint().MintHistories(ctx, obj)
		},
		nil,
		ec.marshalNMintHistory2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMintHistoryᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_mintHistories(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "mintId":
				return ec.fieldContext_MintHistory_mintId(ctx, field)
			case "collectionId":
				return ec.fieldContext_MintHistory_collectionId(ctx, field)
			case "dropId":
				return ec.fieldContext_MintHistory_dropId(ctx, field)
			case "wallet":
				return ec.fieldContext_MintHistory_wallet(ctx, field)
			case "status":
				return ec.fieldContext_MintHistory_status(ctx, field)
			case "signature":
				return ec.fieldContext_MintHistory_signature(ctx, field)
			case "createdAt":
				return ec.fieldContext_MintHistory_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MintHistory", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_updateHistories(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_updateHistories,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CollectionMint().UpdateHistories(ctx, obj)
		},
		nil,
		ec.marshalNUpdateHistory2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐUpdateHistoryᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_updateHistories(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "mintId":
				return ec.fieldContext_UpdateHistory_mintId(ctx, field)
			case "status":
				return ec.fieldContext_UpdateHistory_status(ctx, field)
			case "signature":
				return ec.fieldContext_UpdateHistory_signature(ctx, field)
			case "createdAt":
				return ec.fieldContext_UpdateHistory_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type UpdateHistory", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_transfers(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_transfers,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CollectionMint().Transfers(ctx, obj)
		},
		nil,
		ec.marshalNNftTransfer2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐNftTransferᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_transfers(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_NftTransfer_id(ctx, field)
			case "collectionMintId":
				return ec.fieldContext_NftTransfer_collectionMintId(ctx, field)
			case "sender":
				return ec.fieldContext_NftTransfer_sender(ctx, field)
			case "recipient":
				return ec.fieldContext_NftTransfer_recipient(ctx, field)
			case "signature":
				return ec.fieldContext_NftTransfer_signature(ctx, field)
			case "createdAt":
				return ec.fieldContext_NftTransfer_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type NftTransfer", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionMint_switchHistories(ctx context.Context, field graphql.CollectedField, obj *schema.CollectionMint) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionMint_switchHistories,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.CollectionMint().SwitchHistories(ctx, obj)
		},
		nil,
		ec.marshalNSwitchCollectionHistory2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐSwitchCollectionHistoryᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionMint_switchHistories(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionMint",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "mintId":
				return ec.fieldContext_SwitchCollectionHistory_mintId(ctx, field)
			case "prevCollectionId":
				return ec.fieldContext_SwitchCollectionHistory_prevCollectionId(ctx, field)
			case "newCollectionId":
				return ec.fieldContext_SwitchCollectionHistory_newCollectionId(ctx, field)
			case "createdAt":
				return ec.fieldContext_SwitchCollectionHistory_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SwitchCollectionHistory", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Creator_address(ctx context.Context, field graphql.CollectedField, obj *schema.Creator) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Creator_address,
		func(ctx context.Context) (any, error) {
			return obj.Address, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Creator_address(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Creator",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Creator_verified(ctx context.Context, field graphql.CollectedField, obj *schema.Creator) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Creator_verified,
		func(ctx context.Context) (any, error) {
			return obj.Verified, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Creator_verified(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Creator",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Creator_share(ctx context.Context, field graphql.CollectedField, obj *schema.Creator) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Creator_share,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Creator().Share(ctx, obj)
		},
		nil,
		ec.marshalNInt2int,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Creator_share(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Creator",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Customer_id(ctx context.Context, field graphql.CollectedField, obj *Customer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Customer_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Customer_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Customer",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Customer_mints(ctx context.Context, field graphql.CollectedField, obj *Customer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Customer_mints,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Customer().Mints(ctx, obj, fc.Args["first"].(*int), fc.Args["after"].(*string))
		},
		nil,
		ec.marshalNMintConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintConnection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Customer_mints(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Customer",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "edges":
				return ec.fieldContext_MintConnection_edges(ctx, field)
			case "pageInfo":
				return ec.fieldContext_MintConnection_pageInfo(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MintConnection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Customer_mints_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Drop_id(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_projectId(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_projectId,
		func(ctx context.Context) (any, error) {
			return obj.ProjectID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_projectId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_collectionId(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_collectionId,
		func(ctx context.Context) (any, error) {
			return obj.CollectionID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_collectionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_dropType(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_dropType,
		func(ctx context.Context) (any, error) {
			return obj.DropType, nil
		},
		nil,
		ec.marshalNDropType2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐDropType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_dropType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DropType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_creationStatus(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_creationStatus,
		func(ctx context.Context) (any, error) {
			return obj.CreationStatus, nil
		},
		nil,
		ec.marshalNCreationStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐCreationStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_creationStatus(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type CreationStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_status(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_status,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Drop().Status(ctx, obj)
		},
		nil,
		ec.marshalNDropStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐDropStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DropStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_startTime(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_startTime,
		func(ctx context.Context) (any, error) {
			return obj.StartTime, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Drop_startTime(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_endTime(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_endTime,
		func(ctx context.Context) (any, error) {
			return obj.EndTime, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Drop_endTime(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_pausedAt(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_pausedAt,
		func(ctx context.Context) (any, error) {
			return obj.PausedAt, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Drop_pausedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_shutdownAt(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_shutdownAt,
		func(ctx context.Context) (any, error) {
			return obj.ShutdownAt, nil
		},
		nil,
		ec.marshalOTime2ᚖtimeᚐTime,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Drop_shutdownAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_price(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_price,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Drop().Price(ctx, obj)
		},
		nil,
		ec.marshalNUint642uint64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_price(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Uint64 does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_createdAt(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_collection(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_collection,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Drop().Collection(ctx, obj)
		},
		nil,
		ec.marshalNCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_collection(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Collection_projectId(ctx, field)
			case "blockchain":
				return ec.fieldContext_Collection_blockchain(ctx, field)
			case "address":
				return ec.fieldContext_Collection_address(ctx, field)
			case "signature":
				return ec.fieldContext_Collection_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Collection_creationStatus(ctx, field)
			case "supply":
				return ec.fieldContext_Collection_supply(ctx, field)
			case "totalMints":
				return ec.fieldContext_Collection_totalMints(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_Collection_sellerFeeBasisPoints(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "metadataJson":
				return ec.fieldContext_Collection_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_Collection_creators(ctx, field)
			case "mints":
				return ec.fieldContext_Collection_mints(ctx, field)
			case "holders":
				return ec.fieldContext_Collection_holders(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Collection_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_queuedMints(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_queuedMints,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Drop().QueuedMints(ctx, obj)
		},
		nil,
		ec.marshalNCollectionMint2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMintᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_queuedMints(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Drop_purchaseHistories(ctx context.Context, field graphql.CollectedField, obj *schema.Drop) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Drop_purchaseHistories,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Drop().PurchaseHistories(ctx, obj)
		},
		nil,
		ec.marshalNMintHistory2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMintHistoryᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Drop_purchaseHistories(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Drop",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "mintId":
				return ec.fieldContext_MintHistory_mintId(ctx, field)
			case "collectionId":
				return ec.fieldContext_MintHistory_collectionId(ctx, field)
			case "dropId":
				return ec.fieldContext_MintHistory_dropId(ctx, field)
			case "wallet":
				return ec.fieldContext_MintHistory_wallet(ctx, field)
			case "status":
				return ec.fieldContext_MintHistory_status(ctx, field)
			case "signature":
				return ec.fieldContext_MintHistory_signature(ctx, field)
			case "createdAt":
				return ec.fieldContext_MintHistory_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MintHistory", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _DropConnection_edges(ctx context.Context, field graphql.CollectedField, obj *DropConnection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DropConnection_edges,
		func(ctx context.Context) (any, error) {
			return obj.Edges, nil
		},
		nil,
		ec.marshalNDropEdge2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐDropEdgeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DropConnection_edges(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DropConnection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "cursor":
				return ec.fieldContext_DropEdge_cursor(ctx, field)
			case "node":
				return ec.fieldContext_DropEdge_node(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type DropEdge", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _DropConnection_pageInfo(ctx context.Context, field graphql.CollectedField, obj *DropConnection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DropConnection_pageInfo,
		func(ctx context.Context) (any, error) {
			return obj.PageInfo, nil
		},
		nil,
		ec.marshalNPageInfo2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐPageInfo,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DropConnection_pageInfo(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DropConnection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "hasNextPage":
				return ec.fieldContext_PageInfo_hasNextPage(ctx, field)
			case "endCursor":
				return ec.fieldContext_PageInfo_endCursor(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PageInfo", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _DropEdge_cursor(ctx context.Context, field graphql.CollectedField, obj *DropEdge) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DropEdge_cursor,
		func(ctx context.Context) (any, error) {
			return obj.Cursor, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DropEdge_cursor(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DropEdge",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _DropEdge_node(ctx context.Context, field graphql.CollectedField, obj *DropEdge) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_DropEdge_node,
		func(ctx context.Context) (any, error) {
			return obj.Node, nil
		},
		nil,
		ec.marshalNDrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_DropEdge_node(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "DropEdge",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Drop_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Drop_projectId(ctx, field)
			case "collectionId":
				return ec.fieldContext_Drop_collectionId(ctx, field)
			case "dropType":
				return ec.fieldContext_Drop_dropType(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Drop_creationStatus(ctx, field)
			case "status":
				return ec.fieldContext_Drop_status(ctx, field)
			case "startTime":
				return ec.fieldContext_Drop_startTime(ctx, field)
			case "endTime":
				return ec.fieldContext_Drop_endTime(ctx, field)
			case "pausedAt":
				return ec.fieldContext_Drop_pausedAt(ctx, field)
			case "shutdownAt":
				return ec.fieldContext_Drop_shutdownAt(ctx, field)
			case "price":
				return ec.fieldContext_Drop_price(ctx, field)
			case "createdAt":
				return ec.fieldContext_Drop_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_Drop_collection(ctx, field)
			case "queuedMints":
				return ec.fieldContext_Drop_queuedMints(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Drop_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Drop", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Entity_findCustomerByID(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Entity_findCustomerByID,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Entity().FindCustomerByID(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNCustomer2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCustomer,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Entity_findCustomerByID(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Entity",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Customer_id(ctx, field)
			case "mints":
				return ec.fieldContext_Customer_mints(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Customer", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Entity_findCustomerByID_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Entity_findProjectByID(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Entity_findProjectByID,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Entity().FindProjectByID(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNProject2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐProject,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Entity_findProjectByID(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Entity",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Project_id(ctx, field)
			case "collections":
				return ec.fieldContext_Project_collections(ctx, field)
			case "drops":
				return ec.fieldContext_Project_drops(ctx, field)
			case "wallets":
				return ec.fieldContext_Project_wallets(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Project", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Entity_findProjectByID_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Holder_collectionId(ctx context.Context, field graphql.CollectedField, obj *store.HolderRow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Holder_collectionId,
		func(ctx context.Context) (any, error) {
			return obj.CollectionID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Holder_collectionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Holder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Holder_owner(ctx context.Context, field graphql.CollectedField, obj *store.HolderRow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Holder_owner,
		func(ctx context.Context) (any, error) {
			return obj.Owner, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Holder_owner(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Holder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Holder_mints(ctx context.Context, field graphql.CollectedField, obj *store.HolderRow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Holder_mints,
		func(ctx context.Context) (any, error) {
			return obj.Mints, nil
		},
		nil,
		ec.marshalNInt2int64,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Holder_mints(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Holder",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Int does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_id(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_name(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_symbol(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_symbol,
		func(ctx context.Context) (any, error) {
			return obj.Symbol, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_symbol(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_description(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_image(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_image,
		func(ctx context.Context) (any, error) {
			return obj.Image, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_image(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_animationUrl(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_animationUrl,
		func(ctx context.Context) (any, error) {
			return obj.AnimationURL, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_animationUrl(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_externalUrl(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_externalUrl,
		func(ctx context.Context) (any, error) {
			return obj.ExternalURL, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_externalUrl(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_uri(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_uri,
		func(ctx context.Context) (any, error) {
			return obj.URI, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_uri(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_identifier(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_identifier,
		func(ctx context.Context) (any, error) {
			return obj.Identifier, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_identifier(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_attributes(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_attributes,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.MetadataJson().Attributes(ctx, obj)
		},
		nil,
		ec.marshalNMetadataJsonAttribute2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJsonAttributeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_attributes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "traitType":
				return ec.fieldContext_MetadataJsonAttribute_traitType(ctx, field)
			case "value":
				return ec.fieldContext_MetadataJsonAttribute_value(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MetadataJsonAttribute", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJson_files(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJson) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJson_files,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.MetadataJson().Files(ctx, obj)
		},
		nil,
		ec.marshalNMetadataJsonFile2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJsonFileᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJson_files(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJson",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "uri":
				return ec.fieldContext_MetadataJsonFile_uri(ctx, field)
			case "fileType":
				return ec.fieldContext_MetadataJsonFile_fileType(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MetadataJsonFile", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJsonAttribute_traitType(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJsonAttribute) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJsonAttribute_traitType,
		func(ctx context.Context) (any, error) {
			return obj.TraitType, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJsonAttribute_traitType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJsonAttribute",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJsonAttribute_value(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJsonAttribute) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJsonAttribute_value,
		func(ctx context.Context) (any, error) {
			return obj.Value, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJsonAttribute_value(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJsonAttribute",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJsonFile_uri(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJsonFile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJsonFile_uri,
		func(ctx context.Context) (any, error) {
			return obj.URI, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MetadataJsonFile_uri(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJsonFile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MetadataJsonFile_fileType(ctx context.Context, field graphql.CollectedField, obj *schema.MetadataJsonFile) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MetadataJsonFile_fileType,
		func(ctx context.Context) (any, error) {
			return obj.FileType, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MetadataJsonFile_fileType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MetadataJsonFile",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintConnection_edges(ctx context.Context, field graphql.CollectedField, obj *MintConnection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintConnection_edges,
		func(ctx context.Context) (any, error) {
			return obj.Edges, nil
		},
		nil,
		ec.marshalNMintEdge2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintEdgeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MintConnection_edges(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintConnection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "cursor":
				return ec.fieldContext_MintEdge_cursor(ctx, field)
			case "node":
				return ec.fieldContext_MintEdge_node(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MintEdge", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintConnection_pageInfo(ctx context.Context, field graphql.CollectedField, obj *MintConnection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintConnection_pageInfo,
		func(ctx context.Context) (any, error) {
			return obj.PageInfo, nil
		},
		nil,
		ec.marshalNPageInfo2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐPageInfo,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MintConnection_pageInfo(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintConnection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "hasNextPage":
				return ec.fieldContext_PageInfo_hasNextPage(ctx, field)
			case "endCursor":
				return ec.fieldContext_PageInfo_endCursor(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type PageInfo", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintEdge_cursor(ctx context.Context, field graphql.CollectedField, obj *MintEdge) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintEdge_cursor,
		func(ctx context.Context) (any, error) {
			return obj.Cursor, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MintEdge_cursor(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintEdge",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintEdge_node(ctx context.Context, field graphql.CollectedField, obj *MintEdge) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintEdge_node,
		func(ctx context.Context) (any, error) {
			return obj.Node, nil
		},
		nil,
		ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MintEdge_node(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintEdge",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintHistory_mintId(ctx context.Context, field graphql.CollectedField, obj *schema.MintHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintHistory_mintId,
		func(ctx context.Context) (any, error) {
			return obj.MintID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MintHistory_mintId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintHistory_collectionId(ctx context.Context, field graphql.CollectedField, obj *schema.MintHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintHistory_collectionId,
		func(ctx context.Context) (any, error) {
			return obj.CollectionID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MintHistory_collectionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintHistory_dropId(ctx context.Context, field graphql.CollectedField, obj *schema.MintHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintHistory_dropId,
		func(ctx context.Context) (any, error) {
			return obj.DropID, nil
		},
		nil,
		ec.marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MintHistory_dropId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintHistory_wallet(ctx context.Context, field graphql.CollectedField, obj *schema.MintHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintHistory_wallet,
		func(ctx context.Context) (any, error) {
			return obj.Wallet, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MintHistory_wallet(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintHistory_status(ctx context.Context, field graphql.CollectedField, obj *schema.MintHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintHistory_status,
		func(ctx context.Context) (any, error) {
			return obj.Status, nil
		},
		nil,
		ec.marshalNCreationStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐCreationStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MintHistory_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type CreationStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintHistory_signature(ctx context.Context, field graphql.CollectedField, obj *schema.MintHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintHistory_signature,
		func(ctx context.Context) (any, error) {
			return obj.Signature, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_MintHistory_signature(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _MintHistory_createdAt(ctx context.Context, field graphql.CollectedField, obj *schema.MintHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_MintHistory_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_MintHistory_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "MintHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateCollection(ctx, fc.Args["input"].(CreateCollectionInput))
		},
		nil,
		ec.marshalNCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Collection_projectId(ctx, field)
			case "blockchain":
				return ec.fieldContext_Collection_blockchain(ctx, field)
			case "address":
				return ec.fieldContext_Collection_address(ctx, field)
			case "signature":
				return ec.fieldContext_Collection_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Collection_creationStatus(ctx, field)
			case "supply":
				return ec.fieldContext_Collection_supply(ctx, field)
			case "totalMints":
				return ec.fieldContext_Collection_totalMints(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_Collection_sellerFeeBasisPoints(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "metadataJson":
				return ec.fieldContext_Collection_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_Collection_creators(ctx, field)
			case "mints":
				return ec.fieldContext_Collection_mints(ctx, field)
			case "holders":
				return ec.fieldContext_Collection_holders(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Collection_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_retryCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_retryCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RetryCollection(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_retryCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Collection_projectId(ctx, field)
			case "blockchain":
				return ec.fieldContext_Collection_blockchain(ctx, field)
			case "address":
				return ec.fieldContext_Collection_address(ctx, field)
			case "signature":
				return ec.fieldContext_Collection_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Collection_creationStatus(ctx, field)
			case "supply":
				return ec.fieldContext_Collection_supply(ctx, field)
			case "totalMints":
				return ec.fieldContext_Collection_totalMints(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_Collection_sellerFeeBasisPoints(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "metadataJson":
				return ec.fieldContext_Collection_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_Collection_creators(ctx, field)
			case "mints":
				return ec.fieldContext_Collection_mints(ctx, field)
			case "holders":
				return ec.fieldContext_Collection_holders(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Collection_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_retryCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_patchCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_patchCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().PatchCollection(ctx, fc.Args["input"].(PatchCollectionInput))
		},
		nil,
		ec.marshalNCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_patchCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Collection_projectId(ctx, field)
			case "blockchain":
				return ec.fieldContext_Collection_blockchain(ctx, field)
			case "address":
				return ec.fieldContext_Collection_address(ctx, field)
			case "signature":
				return ec.fieldContext_Collection_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Collection_creationStatus(ctx, field)
			case "supply":
				return ec.fieldContext_Collection_supply(ctx, field)
			case "totalMints":
				return ec.fieldContext_Collection_totalMints(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_Collection_sellerFeeBasisPoints(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "metadataJson":
				return ec.fieldContext_Collection_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_Collection_creators(ctx, field)
			case "mints":
				return ec.fieldContext_Collection_mints(ctx, field)
			case "holders":
				return ec.fieldContext_Collection_holders(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Collection_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_patchCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_importCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_importCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().ImportCollection(ctx, fc.Args["input"].(ImportCollectionInput))
		},
		nil,
		ec.marshalNCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_importCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Collection_projectId(ctx, field)
			case "blockchain":
				return ec.fieldContext_Collection_blockchain(ctx, field)
			case "address":
				return ec.fieldContext_Collection_address(ctx, field)
			case "signature":
				return ec.fieldContext_Collection_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Collection_creationStatus(ctx, field)
			case "supply":
				return ec.fieldContext_Collection_supply(ctx, field)
			case "totalMints":
				return ec.fieldContext_Collection_totalMints(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_Collection_sellerFeeBasisPoints(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "metadataJson":
				return ec.fieldContext_Collection_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_Collection_creators(ctx, field)
			case "mints":
				return ec.fieldContext_Collection_mints(ctx, field)
			case "holders":
				return ec.fieldContext_Collection_holders(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Collection_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_importCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_switchCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_switchCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().SwitchCollection(ctx, fc.Args["input"].(SwitchCollectionInput))
		},
		nil,
		ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_switchCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_switchCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createDrop(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createDrop,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateDrop(ctx, fc.Args["input"].(CreateDropInput))
		},
		nil,
		ec.marshalNDrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createDrop(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Drop_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Drop_projectId(ctx, field)
			case "collectionId":
				return ec.fieldContext_Drop_collectionId(ctx, field)
			case "dropType":
				return ec.fieldContext_Drop_dropType(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Drop_creationStatus(ctx, field)
			case "status":
				return ec.fieldContext_Drop_status(ctx, field)
			case "startTime":
				return ec.fieldContext_Drop_startTime(ctx, field)
			case "endTime":
				return ec.fieldContext_Drop_endTime(ctx, field)
			case "pausedAt":
				return ec.fieldContext_Drop_pausedAt(ctx, field)
			case "shutdownAt":
				return ec.fieldContext_Drop_shutdownAt(ctx, field)
			case "price":
				return ec.fieldContext_Drop_price(ctx, field)
			case "createdAt":
				return ec.fieldContext_Drop_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_Drop_collection(ctx, field)
			case "queuedMints":
				return ec.fieldContext_Drop_queuedMints(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Drop_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Drop", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createDrop_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_retryDrop(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_retryDrop,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RetryDrop(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNDrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_retryDrop(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Drop_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Drop_projectId(ctx, field)
			case "collectionId":
				return ec.fieldContext_Drop_collectionId(ctx, field)
			case "dropType":
				return ec.fieldContext_Drop_dropType(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Drop_creationStatus(ctx, field)
			case "status":
				return ec.fieldContext_Drop_status(ctx, field)
			case "startTime":
				return ec.fieldContext_Drop_startTime(ctx, field)
			case "endTime":
				return ec.fieldContext_Drop_endTime(ctx, field)
			case "pausedAt":
				return ec.fieldContext_Drop_pausedAt(ctx, field)
			case "shutdownAt":
				return ec.fieldContext_Drop_shutdownAt(ctx, field)
			case "price":
				return ec.fieldContext_Drop_price(ctx, field)
			case "createdAt":
				return ec.fieldContext_Drop_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_Drop_collection(ctx, field)
			case "queuedMints":
				return ec.fieldContext_Drop_queuedMints(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Drop_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Drop", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_retryDrop_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_patchDrop(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_patchDrop,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().PatchDrop(ctx, fc.Args["input"].(PatchDropInput))
		},
		nil,
		ec.marshalNDrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_patchDrop(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Drop_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Drop_projectId(ctx, field)
			case "collectionId":
				return ec.fieldContext_Drop_collectionId(ctx, field)
			case "dropType":
				return ec.fieldContext_Drop_dropType(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Drop_creationStatus(ctx, field)
			case "status":
				return ec.fieldContext_Drop_status(ctx, field)
			case "startTime":
				return ec.fieldContext_Drop_startTime(ctx, field)
			case "endTime":
				return ec.fieldContext_Drop_endTime(ctx, field)
			case "pausedAt":
				return ec.fieldContext_Drop_pausedAt(ctx, field)
			case "shutdownAt":
				return ec.fieldContext_Drop_shutdownAt(ctx, field)
			case "price":
				return ec.fieldContext_Drop_price(ctx, field)
			case "createdAt":
				return ec.fieldContext_Drop_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_Drop_collection(ctx, field)
			case "queuedMints":
				return ec.fieldContext_Drop_queuedMints(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Drop_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Drop", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_patchDrop_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_pauseDrop(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_pauseDrop,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().PauseDrop(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNDrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_pauseDrop(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Drop_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Drop_projectId(ctx, field)
			case "collectionId":
				return ec.fieldContext_Drop_collectionId(ctx, field)
			case "dropType":
				return ec.fieldContext_Drop_dropType(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Drop_creationStatus(ctx, field)
			case "status":
				return ec.fieldContext_Drop_status(ctx, field)
			case "startTime":
				return ec.fieldContext_Drop_startTime(ctx, field)
			case "endTime":
				return ec.fieldContext_Drop_endTime(ctx, field)
			case "pausedAt":
				return ec.fieldContext_Drop_pausedAt(ctx, field)
			case "shutdownAt":
				return ec.fieldContext_Drop_shutdownAt(ctx, field)
			case "price":
				return ec.fieldContext_Drop_price(ctx, field)
			case "createdAt":
				return ec.fieldContext_Drop_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_Drop_collection(ctx, field)
			case "queuedMints":
				return ec.fieldContext_Drop_queuedMints(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Drop_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Drop", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_pauseDrop_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_resumeDrop(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_resumeDrop,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().ResumeDrop(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNDrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_resumeDrop(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Drop_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Drop_projectId(ctx, field)
			case "collectionId":
				return ec.fieldContext_Drop_collectionId(ctx, field)
			case "dropType":
				return ec.fieldContext_Drop_dropType(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Drop_creationStatus(ctx, field)
			case "status":
				return ec.fieldContext_Drop_status(ctx, field)
			case "startTime":
				return ec.fieldContext_Drop_startTime(ctx, field)
			case "endTime":
				return ec.fieldContext_Drop_endTime(ctx, field)
			case "pausedAt":
				return ec.fieldContext_Drop_pausedAt(ctx, field)
			case "shutdownAt":
				return ec.fieldContext_Drop_shutdownAt(ctx, field)
			case "price":
				return ec.fieldContext_Drop_price(ctx, field)
			case "createdAt":
				return ec.fieldContext_Drop_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_Drop_collection(ctx, field)
			case "queuedMints":
				return ec.fieldContext_Drop_queuedMints(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Drop_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Drop", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_resumeDrop_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_shutdownDrop(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_shutdownDrop,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().ShutdownDrop(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNDrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_shutdownDrop(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Drop_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Drop_projectId(ctx, field)
			case "collectionId":
				return ec.fieldContext_Drop_collectionId(ctx, field)
			case "dropType":
				return ec.fieldContext_Drop_dropType(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Drop_creationStatus(ctx, field)
			case "status":
				return ec.fieldContext_Drop_status(ctx, field)
			case "startTime":
				return ec.fieldContext_Drop_startTime(ctx, field)
			case "endTime":
				return ec.fieldContext_Drop_endTime(ctx, field)
			case "pausedAt":
				return ec.fieldContext_Drop_pausedAt(ctx, field)
			case "shutdownAt":
				return ec.fieldContext_Drop_shutdownAt(ctx, field)
			case "price":
				return ec.fieldContext_Drop_price(ctx, field)
			case "createdAt":
				return ec.fieldContext_Drop_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_Drop_collection(ctx, field)
			case "queuedMints":
				return ec.fieldContext_Drop_queuedMints(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Drop_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Drop", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_shutdownDrop_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_mintEdition(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_mintEdition,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MintEdition(ctx, fc.Args["input"].(MintEditionInput))
		},
		nil,
		ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_mintEdition(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_mintEdition_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_mintQueued(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_mintQueued,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MintQueued(ctx, fc.Args["input"].(MintQueuedInput))
		},
		nil,
		ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_mintQueued(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_mintQueued_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_mintToCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_mintToCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MintToCollection(ctx, fc.Args["input"].(MintToCollectionInput))
		},
		nil,
		ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_mintToCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_mintToCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_retryMintEdition(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_retryMintEdition,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RetryMintEdition(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_retryMintEdition(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_retryMintEdition_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_retryMintToCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_retryMintToCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RetryMintToCollection(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_retryMintToCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_retryMintToCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_processDropQueue(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_processDropQueue,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().ProcessDropQueue(ctx, fc.Args["dropId"].(uuid.UUID))
		},
		nil,
		ec.marshalOCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Mutation_processDropQueue(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_processDropQueue_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateMint(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateMint,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateMint(ctx, fc.Args["input"].(UpdateMintInput))
		},
		nil,
		ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateMint(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateMint_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_retryUpdateMint(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_retryUpdateMint,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RetryUpdateMint(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_retryUpdateMint(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_retryUpdateMint_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_transferAsset(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_transferAsset,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().TransferAsset(ctx, fc.Args["input"].(TransferAssetInput))
		},
		nil,
		ec.marshalNNftTransfer2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐNftTransfer,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_transferAsset(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_NftTransfer_id(ctx, field)
			case "collectionMintId":
				return ec.fieldContext_NftTransfer_collectionMintId(ctx, field)
			case "sender":
				return ec.fieldContext_NftTransfer_sender(ctx, field)
			case "recipient":
				return ec.fieldContext_NftTransfer_recipient(ctx, field)
			case "signature":
				return ec.fieldContext_NftTransfer_signature(ctx, field)
			case "createdAt":
				return ec.fieldContext_NftTransfer_createdAt(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type NftTransfer", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_transferAsset_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _NftTransfer_id(ctx context.Context, field graphql.CollectedField, obj *schema.NftTransfer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NftTransfer_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NftTransfer_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NftTransfer",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NftTransfer_collectionMintId(ctx context.Context, field graphql.CollectedField, obj *schema.NftTransfer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NftTransfer_collectionMintId,
		func(ctx context.Context) (any, error) {
			return obj.CollectionMintID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NftTransfer_collectionMintId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NftTransfer",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NftTransfer_sender(ctx context.Context, field graphql.CollectedField, obj *schema.NftTransfer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NftTransfer_sender,
		func(ctx context.Context) (any, error) {
			return obj.Sender, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NftTransfer_sender(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NftTransfer",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NftTransfer_recipient(ctx context.Context, field graphql.CollectedField, obj *schema.NftTransfer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NftTransfer_recipient,
		func(ctx context.Context) (any, error) {
			return obj.Recipient, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NftTransfer_recipient(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NftTransfer",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NftTransfer_signature(ctx context.Context, field graphql.CollectedField, obj *schema.NftTransfer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NftTransfer_signature,
		func(ctx context.Context) (any, error) {
			return obj.Signature, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_NftTransfer_signature(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NftTransfer",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _NftTransfer_createdAt(ctx context.Context, field graphql.CollectedField, obj *schema.NftTransfer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_NftTransfer_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_NftTransfer_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "NftTransfer",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PageInfo_hasNextPage(ctx context.Context, field graphql.CollectedField, obj *PageInfo) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PageInfo_hasNextPage,
		func(ctx context.Context) (any, error) {
			return obj.HasNextPage, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_PageInfo_hasNextPage(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PageInfo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _PageInfo_endCursor(ctx context.Context, field graphql.CollectedField, obj *PageInfo) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_PageInfo_endCursor,
		func(ctx context.Context) (any, error) {
			return obj.EndCursor, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_PageInfo_endCursor(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "PageInfo",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Project_id(ctx context.Context, field graphql.CollectedField, obj *Project) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Project_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Project_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Project",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Project_collections(ctx context.Context, field graphql.CollectedField, obj *Project) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Project_collections,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Project().Collections(ctx, obj, fc.Args["first"].(*int), fc.Args["after"].(*string))
		},
		nil,
		ec.marshalNCollectionConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCollectionConnection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Project_collections(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Project",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "edges":
				return ec.fieldContext_CollectionConnection_edges(ctx, field)
			case "pageInfo":
				return ec.fieldContext_CollectionConnection_pageInfo(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionConnection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Project_collections_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Project_drops(ctx context.Context, field graphql.CollectedField, obj *Project) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Project_drops,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Project().Drops(ctx, obj, fc.Args["first"].(*int), fc.Args["after"].(*string))
		},
		nil,
		ec.marshalNDropConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐDropConnection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Project_drops(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Project",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "edges":
				return ec.fieldContext_DropConnection_edges(ctx, field)
			case "pageInfo":
				return ec.fieldContext_DropConnection_pageInfo(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type DropConnection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Project_drops_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Project_wallets(ctx context.Context, field graphql.CollectedField, obj *Project) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Project_wallets,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Project().Wallets(ctx, obj)
		},
		nil,
		ec.marshalNProjectWallet2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐProjectWalletᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Project_wallets(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Project",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_ProjectWallet_id(ctx, field)
			case "projectId":
				return ec.fieldContext_ProjectWallet_projectId(ctx, field)
			case "blockchain":
				return ec.fieldContext_ProjectWallet_blockchain(ctx, field)
			case "walletAddress":
				return ec.fieldContext_ProjectWallet_walletAddress(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ProjectWallet", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ProjectWallet_id(ctx context.Context, field graphql.CollectedField, obj *schema.ProjectWallet) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ProjectWallet_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ProjectWallet_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ProjectWallet",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ProjectWallet_projectId(ctx context.Context, field graphql.CollectedField, obj *schema.ProjectWallet) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ProjectWallet_projectId,
		func(ctx context.Context) (any, error) {
			return obj.ProjectID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ProjectWallet_projectId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ProjectWallet",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ProjectWallet_blockchain(ctx context.Context, field graphql.CollectedField, obj *schema.ProjectWallet) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ProjectWallet_blockchain,
		func(ctx context.Context) (any, error) {
			return obj.Blockchain, nil
		},
		nil,
		ec.marshalNBlockchain2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐBlockchain,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ProjectWallet_blockchain(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ProjectWallet",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Blockchain does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _ProjectWallet_walletAddress(ctx context.Context, field graphql.CollectedField, obj *schema.ProjectWallet) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ProjectWallet_walletAddress,
		func(ctx context.Context) (any, error) {
			return obj.WalletAddress, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_ProjectWallet_walletAddress(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ProjectWallet",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_collection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_collection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Collection(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalOCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_collection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Collection_projectId(ctx, field)
			case "blockchain":
				return ec.fieldContext_Collection_blockchain(ctx, field)
			case "address":
				return ec.fieldContext_Collection_address(ctx, field)
			case "signature":
				return ec.fieldContext_Collection_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Collection_creationStatus(ctx, field)
			case "supply":
				return ec.fieldContext_Collection_supply(ctx, field)
			case "totalMints":
				return ec.fieldContext_Collection_totalMints(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_Collection_sellerFeeBasisPoints(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "metadataJson":
				return ec.fieldContext_Collection_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_Collection_creators(ctx, field)
			case "mints":
				return ec.fieldContext_Collection_mints(ctx, field)
			case "holders":
				return ec.fieldContext_Collection_holders(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Collection_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_collection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_drop(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_drop,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Drop(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalODrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_drop(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Drop_id(ctx, field)
			case "projectId":
				return ec.fieldContext_Drop_projectId(ctx, field)
			case "collectionId":
				return ec.fieldContext_Drop_collectionId(ctx, field)
			case "dropType":
				return ec.fieldContext_Drop_dropType(ctx, field)
			case "creationStatus":
				return ec.fieldContext_Drop_creationStatus(ctx, field)
			case "status":
				return ec.fieldContext_Drop_status(ctx, field)
			case "startTime":
				return ec.fieldContext_Drop_startTime(ctx, field)
			case "endTime":
				return ec.fieldContext_Drop_endTime(ctx, field)
			case "pausedAt":
				return ec.fieldContext_Drop_pausedAt(ctx, field)
			case "shutdownAt":
				return ec.fieldContext_Drop_shutdownAt(ctx, field)
			case "price":
				return ec.fieldContext_Drop_price(ctx, field)
			case "createdAt":
				return ec.fieldContext_Drop_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_Drop_collection(ctx, field)
			case "queuedMints":
				return ec.fieldContext_Drop_queuedMints(ctx, field)
			case "purchaseHistories":
				return ec.fieldContext_Drop_purchaseHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Drop", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_drop_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_mint(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_mint,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Mint(ctx, fc.Args["id"].(uuid.UUID))
		},
		nil,
		ec.marshalOCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_mint(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionMint_id(ctx, field)
			case "collectionId":
				return ec.fieldContext_CollectionMint_collectionId(ctx, field)
			case "address":
				return ec.fieldContext_CollectionMint_address(ctx, field)
			case "owner":
				return ec.fieldContext_CollectionMint_owner(ctx, field)
			case "signature":
				return ec.fieldContext_CollectionMint_signature(ctx, field)
			case "creationStatus":
				return ec.fieldContext_CollectionMint_creationStatus(ctx, field)
			case "edition":
				return ec.fieldContext_CollectionMint_edition(ctx, field)
			case "sellerFeeBasisPoints":
				return ec.fieldContext_CollectionMint_sellerFeeBasisPoints(ctx, field)
			case "compressed":
				return ec.fieldContext_CollectionMint_compressed(ctx, field)
			case "createdAt":
				return ec.fieldContext_CollectionMint_createdAt(ctx, field)
			case "collection":
				return ec.fieldContext_CollectionMint_collection(ctx, field)
			case "metadataJson":
				return ec.fieldContext_CollectionMint_metadataJson(ctx, field)
			case "creators":
				return ec.fieldContext_CollectionMint_creators(ctx, field)
			case "mintHistories":
				return ec.fieldContext_CollectionMint_mintHistories(ctx, field)
			case "updateHistories":
				return ec.fieldContext_CollectionMint_updateHistories(ctx, field)
			case "transfers":
				return ec.fieldContext_CollectionMint_transfers(ctx, field)
			case "switchHistories":
				return ec.fieldContext_CollectionMint_switchHistories(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionMint", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_mint_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_collections(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_collections,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Collections(ctx, fc.Args["projectId"].(uuid.UUID), fc.Args["first"].(*int), fc.Args["after"].(*string))
		},
		nil,
		ec.marshalNCollectionConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCollectionConnection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_collections(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "edges":
				return ec.fieldContext_CollectionConnection_edges(ctx, field)
			case "pageInfo":
				return ec.fieldContext_CollectionConnection_pageInfo(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionConnection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_collections_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_drops(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_drops,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Drops(ctx, fc.Args["projectId"].(uuid.UUID), fc.Args["first"].(*int), fc.Args["after"].(*string))
		},
		nil,
		ec.marshalNDropConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐDropConnection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_drops(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "edges":
				return ec.fieldContext_DropConnection_edges(ctx, field)
			case "pageInfo":
				return ec.fieldContext_DropConnection_pageInfo(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type DropConnection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_drops_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_mints(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_mints,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Mints(ctx, fc.Args["collectionId"].(uuid.UUID), fc.Args["first"].(*int), fc.Args["after"].(*string))
		},
		nil,
		ec.marshalNMintConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintConnection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_mints(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "edges":
				return ec.fieldContext_MintConnection_edges(ctx, field)
			case "pageInfo":
				return ec.fieldContext_MintConnection_pageInfo(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MintConnection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_mints_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_mintsByOwner(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_mintsByOwner,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().MintsByOwner(ctx, fc.Args["owner"].(string), fc.Args["first"].(*int), fc.Args["after"].(*string))
		},
		nil,
		ec.marshalNMintConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintConnection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_mintsByOwner(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "edges":
				return ec.fieldContext_MintConnection_edges(ctx, field)
			case "pageInfo":
				return ec.fieldContext_MintConnection_pageInfo(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type MintConnection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_mintsByOwner_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query__entities(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query__entities,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.__resolve_entities(ctx, fc.Args["representations"].([]map[string]any)), nil
		},
		nil,
		ec.marshalN_Entity2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋpluginᚋfederationᚋfedruntimeᚐEntity,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query__entities(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type _Entity does not have child fields")
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query__entities_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query__service(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query__service,
		func(ctx context.Context) (any, error) {
			return ec.__resolve__service(ctx)
		},
		nil,
		ec.marshalN_Service2githubᚗcomᚋ99designsᚋgqlgenᚋpluginᚋfederationᚋfedruntimeᚐService,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query__service(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "sdl":
				return ec.fieldContext__Service_sdl(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type _Service", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query___type(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___type,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.introspectType(fc.Args["name"].(string))
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___type(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query___type_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___schema(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___schema,
		func(ctx context.Context) (any, error) {
			return ec.introspectSchema()
		},
		nil,
		ec.marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___schema(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "description":
				return ec.fieldContext___Schema_description(ctx, field)
			case "types":
				return ec.fieldContext___Schema_types(ctx, field)
			case "queryType":
				return ec.fieldContext___Schema_queryType(ctx, field)
			case "mutationType":
				return ec.fieldContext___Schema_mutationType(ctx, field)
			case "subscriptionType":
				return ec.fieldContext___Schema_subscriptionType(ctx, field)
			case "directives":
				return ec.fieldContext___Schema_directives(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Schema", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _SwitchCollectionHistory_mintId(ctx context.Context, field graphql.CollectedField, obj *schema.SwitchCollectionHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SwitchCollectionHistory_mintId,
		func(ctx context.Context) (any, error) {
			return obj.MintID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SwitchCollectionHistory_mintId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SwitchCollectionHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SwitchCollectionHistory_prevCollectionId(ctx context.Context, field graphql.CollectedField, obj *schema.SwitchCollectionHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SwitchCollectionHistory_prevCollectionId,
		func(ctx context.Context) (any, error) {
			return obj.PrevCollectionID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SwitchCollectionHistory_prevCollectionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SwitchCollectionHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SwitchCollectionHistory_newCollectionId(ctx context.Context, field graphql.CollectedField, obj *schema.SwitchCollectionHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SwitchCollectionHistory_newCollectionId,
		func(ctx context.Context) (any, error) {
			return obj.NewCollectionID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SwitchCollectionHistory_newCollectionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SwitchCollectionHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SwitchCollectionHistory_createdAt(ctx context.Context, field graphql.CollectedField, obj *schema.SwitchCollectionHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SwitchCollectionHistory_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_SwitchCollectionHistory_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SwitchCollectionHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UpdateHistory_mintId(ctx context.Context, field graphql.CollectedField, obj *schema.UpdateHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UpdateHistory_mintId,
		func(ctx context.Context) (any, error) {
			return obj.MintID, nil
		},
		nil,
		ec.marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_UpdateHistory_mintId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UpdateHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type UUID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UpdateHistory_status(ctx context.Context, field graphql.CollectedField, obj *schema.UpdateHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UpdateHistory_status,
		func(ctx context.Context) (any, error) {
			return obj.Status, nil
		},
		nil,
		ec.marshalNCreationStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐCreationStatus,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_UpdateHistory_status(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UpdateHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type CreationStatus does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UpdateHistory_signature(ctx context.Context, field graphql.CollectedField, obj *schema.UpdateHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UpdateHistory_signature,
		func(ctx context.Context) (any, error) {
			return obj.Signature, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_UpdateHistory_signature(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UpdateHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _UpdateHistory_createdAt(ctx context.Context, field graphql.CollectedField, obj *schema.UpdateHistory) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_UpdateHistory_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_UpdateHistory_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "UpdateHistory",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Time does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) __Service_sdl(ctx context.Context, field graphql.CollectedField, obj *fedruntime.Service) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext__Service_sdl,
		func(ctx context.Context) (any, error) {
			return obj.SDL, nil
		},
		nil,
		ec.marshalOString2string,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext__Service_sdl(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "_Service",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Directive_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_isRepeatable(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_isRepeatable,
		func(ctx context.Context) (any, error) {
			return obj.IsRepeatable, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_isRepeatable(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_locations(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_locations,
		func(ctx context.Context) (any, error) {
			return obj.Locations, nil
		},
		nil,
		ec.marshalN__DirectiveLocation2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_locations(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __DirectiveLocation does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Directive_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Field_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Field_type(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_type(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_defaultValue(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_defaultValue,
		func(ctx context.Context) (any, error) {
			return obj.DefaultValue, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_defaultValue(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_types(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_types,
		func(ctx context.Context) (any, error) {
			return obj.Types(), nil
		},
		nil,
		ec.marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_types(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_queryType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_queryType,
		func(ctx context.Context) (any, error) {
			return obj.QueryType(), nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_queryType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_mutationType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_mutationType,
		func(ctx context.Context) (any, error) {
			return obj.MutationType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_mutationType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_subscriptionType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_subscriptionType,
		func(ctx context.Context) (any, error) {
			return obj.SubscriptionType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_subscriptionType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_directives(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_directives,
		func(ctx context.Context) (any, error) {
			return obj.Directives(), nil
		},
		nil,
		ec.marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_directives(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Directive_name(ctx, field)
			case "description":
				return ec.fieldContext___Directive_description(ctx, field)
			case "isRepeatable":
				return ec.fieldContext___Directive_isRepeatable(ctx, field)
			case "locations":
				return ec.fieldContext___Directive_locations(ctx, field)
			case "args":
				return ec.fieldContext___Directive_args(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Directive", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_kind(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_kind,
		func(ctx context.Context) (any, error) {
			return obj.Kind(), nil
		},
		nil,
		ec.marshalN__TypeKind2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Type_kind(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __TypeKind does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_name,
		func(ctx context.Context) (any, error) {
			return obj.Name(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_specifiedByURL(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_specifiedByURL,
		func(ctx context.Context) (any, error) {
			return obj.SpecifiedByURL(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_specifiedByURL(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_fields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_fields,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.Fields(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_fields(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Field_name(ctx, field)
			case "description":
				return ec.fieldContext___Field_description(ctx, field)
			case "args":
				return ec.fieldContext___Field_args(ctx, field)
			case "type":
				return ec.fieldContext___Field_type(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___Field_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___Field_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Field", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_fields_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_interfaces(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_interfaces,
		func(ctx context.Context) (any, error) {
			return obj.Interfaces(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_interfaces(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_possibleTypes(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_possibleTypes,
		func(ctx context.Context) (any, error) {
			return obj.PossibleTypes(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_possibleTypes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_enumValues(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_enumValues,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.EnumValues(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_enumValues(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___EnumValue_name(ctx, field)
			case "description":
				return ec.fieldContext___EnumValue_description(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___EnumValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___EnumValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __EnumValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_enumValues_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_inputFields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_inputFields,
		func(ctx context.Context) (any, error) {
			return obj.InputFields(), nil
		},
		nil,
		ec.marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_inputFields(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_ofType(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_ofType,
		func(ctx context.Context) (any, error) {
			return obj.OfType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_ofType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_isOneOf(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_isOneOf,
		func(ctx context.Context) (any, error) {
			return obj.IsOneOf(), nil
		},
		nil,
		ec.marshalOBoolean2bool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_isOneOf(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

// endregion **************************** field.gotpl *****************************

// region    **************************** input.gotpl *****************************

func (ec *executionContext) unmarshalInputCreateCollectionInput(ctx context.Context, obj any) (CreateCollectionInput, error) {
	var it CreateCollectionInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"projectId", "blockchain", "supply", "sellerFeeBasisPoints", "creators", "metadataJson"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "projectId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("projectId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ProjectID = data
		case "blockchain":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("blockchain"))
			data, err := ec.unmarshalNBlockchain2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐBlockchain(ctx, v)
			if err != nil {
				return it, err
			}
			it.Blockchain = data
		case "supply":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("supply"))
			data, err := ec.unmarshalOInt2ᚖint(ctx, v)
			if err != nil {
				return it, err
			}
			it.Supply = data
		case "sellerFeeBasisPoints":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("sellerFeeBasisPoints"))
			data, err := ec.unmarshalNInt2int(ctx, v)
			if err != nil {
				return it, err
			}
			it.SellerFeeBasisPoints = data
		case "creators":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("creators"))
			data, err := ec.unmarshalNCreatorInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Creators = data
		case "metadataJson":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("metadataJson"))
			data, err := ec.unmarshalNMetadataJsonInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonInput(ctx, v)
			if err != nil {
				return it, err
			}
			it.MetadataJson = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreateDropInput(ctx context.Context, obj any) (CreateDropInput, error) {
	var it CreateDropInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"projectId", "blockchain", "dropType", "price", "startTime", "endTime", "supply", "sellerFeeBasisPoints", "creators", "metadataJson"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "projectId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("projectId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ProjectID = data
		case "blockchain":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("blockchain"))
			data, err := ec.unmarshalNBlockchain2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐBlockchain(ctx, v)
			if err != nil {
				return it, err
			}
			it.Blockchain = data
		case "dropType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("dropType"))
			data, err := ec.unmarshalNDropType2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐDropType(ctx, v)
			if err != nil {
				return it, err
			}
			it.DropType = data
		case "price":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("price"))
			data, err := ec.unmarshalOUint642ᚖuint64(ctx, v)
			if err != nil {
				return it, err
			}
			it.Price = data
		case "startTime":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("startTime"))
			data, err := ec.unmarshalOTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.StartTime = data
		case "endTime":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("endTime"))
			data, err := ec.unmarshalOTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.EndTime = data
		case "supply":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("supply"))
			data, err := ec.unmarshalOInt2ᚖint(ctx, v)
			if err != nil {
				return it, err
			}
			it.Supply = data
		case "sellerFeeBasisPoints":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("sellerFeeBasisPoints"))
			data, err := ec.unmarshalNInt2int(ctx, v)
			if err != nil {
				return it, err
			}
			it.SellerFeeBasisPoints = data
		case "creators":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("creators"))
			data, err := ec.unmarshalNCreatorInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Creators = data
		case "metadataJson":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("metadataJson"))
			data, err := ec.unmarshalNMetadataJsonInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonInput(ctx, v)
			if err != nil {
				return it, err
			}
			it.MetadataJson = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCreatorInput(ctx context.Context, obj any) (CreatorInput, error) {
	var it CreatorInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"address", "verified", "share"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "address":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("address"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Address = data
		case "verified":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("verified"))
			data, err := ec.unmarshalNBoolean2bool(ctx, v)
			if err != nil {
				return it, err
			}
			it.Verified = data
		case "share":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("share"))
			data, err := ec.unmarshalNInt2int(ctx, v)
			if err != nil {
				return it, err
			}
			it.Share = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputImportCollectionInput(ctx context.Context, obj any) (ImportCollectionInput, error) {
	var it ImportCollectionInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"projectId", "blockchain", "collectionAddress"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "projectId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("projectId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ProjectID = data
		case "blockchain":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("blockchain"))
			data, err := ec.unmarshalNBlockchain2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐBlockchain(ctx, v)
			if err != nil {
				return it, err
			}
			it.Blockchain = data
		case "collectionAddress":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("collectionAddress"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.CollectionAddress = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputMetadataJsonAttributeInput(ctx context.Context, obj any) (MetadataJsonAttributeInput, error) {
	var it MetadataJsonAttributeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"traitType", "value"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "traitType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("traitType"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.TraitType = data
		case "value":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("value"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Value = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputMetadataJsonFileInput(ctx context.Context, obj any) (MetadataJsonFileInput, error) {
	var it MetadataJsonFileInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"uri", "fileType"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "uri":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("uri"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.URI = data
		case "fileType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("fileType"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.FileType = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputMetadataJsonInput(ctx context.Context, obj any) (MetadataJsonInput, error) {
	var it MetadataJsonInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"name", "symbol", "description", "image", "animationUrl", "externalUrl", "attributes", "files"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "symbol":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("symbol"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Symbol = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "image":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("image"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Image = data
		case "animationUrl":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("animationUrl"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.AnimationURL = data
		case "externalUrl":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("externalUrl"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.ExternalURL = data
		case "attributes":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("attributes"))
			data, err := ec.unmarshalOMetadataJsonAttributeInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonAttributeInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Attributes = data
		case "files":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("files"))
			data, err := ec.unmarshalOMetadataJsonFileInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonFileInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Files = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputMintEditionInput(ctx context.Context, obj any) (MintEditionInput, error) {
	var it MintEditionInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"dropId", "recipient"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "dropId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("dropId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.DropID = data
		case "recipient":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("recipient"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Recipient = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputMintQueuedInput(ctx context.Context, obj any) (MintQueuedInput, error) {
	var it MintQueuedInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"dropId", "recipient", "metadataJson"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "dropId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("dropId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.DropID = data
		case "recipient":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("recipient"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Recipient = data
		case "metadataJson":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("metadataJson"))
			data, err := ec.unmarshalNMetadataJsonInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonInput(ctx, v)
			if err != nil {
				return it, err
			}
			it.MetadataJson = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputMintToCollectionInput(ctx context.Context, obj any) (MintToCollectionInput, error) {
	var it MintToCollectionInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"collectionId", "recipient", "compressed", "creators", "metadataJson"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "collectionId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("collectionId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.CollectionID = data
		case "recipient":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("recipient"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Recipient = data
		case "compressed":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("compressed"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.Compressed = data
		case "creators":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("creators"))
			data, err := ec.unmarshalOCreatorInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Creators = data
		case "metadataJson":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("metadataJson"))
			data, err := ec.unmarshalNMetadataJsonInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonInput(ctx, v)
			if err != nil {
				return it, err
			}
			it.MetadataJson = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputPatchCollectionInput(ctx context.Context, obj any) (PatchCollectionInput, error) {
	var it PatchCollectionInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"id", "metadataJson", "creators"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "id":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("id"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ID = data
		case "metadataJson":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("metadataJson"))
			data, err := ec.unmarshalOMetadataJsonInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonInput(ctx, v)
			if err != nil {
				return it, err
			}
			it.MetadataJson = data
		case "creators":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("creators"))
			data, err := ec.unmarshalOCreatorInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Creators = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputPatchDropInput(ctx context.Context, obj any) (PatchDropInput, error) {
	var it PatchDropInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"id", "metadataJson", "creators", "supply", "updateSchedule", "startTime", "endTime"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "id":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("id"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.ID = data
		case "metadataJson":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("metadataJson"))
			data, err := ec.unmarshalOMetadataJsonInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonInput(ctx, v)
			if err != nil {
				return it, err
			}
			it.MetadataJson = data
		case "creators":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("creators"))
			data, err := ec.unmarshalOCreatorInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Creators = data
		case "supply":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("supply"))
			data, err := ec.unmarshalOInt2ᚖint(ctx, v)
			if err != nil {
				return it, err
			}
			it.Supply = data
		case "updateSchedule":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("updateSchedule"))
			data, err := ec.unmarshalOBoolean2ᚖbool(ctx, v)
			if err != nil {
				return it, err
			}
			it.UpdateSchedule = data
		case "startTime":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("startTime"))
			data, err := ec.unmarshalOTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.StartTime = data
		case "endTime":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("endTime"))
			data, err := ec.unmarshalOTime2ᚖtimeᚐTime(ctx, v)
			if err != nil {
				return it, err
			}
			it.EndTime = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputSwitchCollectionInput(ctx context.Context, obj any) (SwitchCollectionInput, error) {
	var it SwitchCollectionInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"mintId", "newCollectionId"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "mintId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("mintId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.MintID = data
		case "newCollectionId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("newCollectionId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.NewCollectionID = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputTransferAssetInput(ctx context.Context, obj any) (TransferAssetInput, error) {
	var it TransferAssetInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"mintId", "recipient"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "mintId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("mintId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.MintID = data
		case "recipient":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("recipient"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Recipient = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputUpdateMintInput(ctx context.Context, obj any) (UpdateMintInput, error) {
	var it UpdateMintInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"mintId", "metadataJson", "creators"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "mintId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("mintId"))
			data, err := ec.unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx, v)
			if err != nil {
				return it, err
			}
			it.MintID = data
		case "metadataJson":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("metadataJson"))
			data, err := ec.unmarshalOMetadataJsonInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonInput(ctx, v)
			if err != nil {
				return it, err
			}
			it.MetadataJson = data
		case "creators":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("creators"))
			data, err := ec.unmarshalOCreatorInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInputᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Creators = data
		}
	}

	return it, nil
}

// endregion **************************** input.gotpl *****************************

// region    ************************** interface.gotpl ***************************

func (ec *executionContext) __Entity(ctx context.Context, sel ast.SelectionSet, obj fedruntime.Entity) graphql.Marshaler {
	switch obj := (obj).(type) {
	case nil:
		return graphql.Null
	case Project:
		return ec._Project(ctx, sel, &obj)
	case *Project:
		if obj == nil {
			return graphql.Null
		}
		return ec._Project(ctx, sel, obj)
	case Customer:
		return ec._Customer(ctx, sel, &obj)
	case *Customer:
		if obj == nil {
			return graphql.Null
		}
		return ec._Customer(ctx, sel, obj)
	default:
		panic(fmt.Errorf("unexpected type %T", obj))
	}
}

// endregion ************************** interface.gotpl ***************************

// region    **************************** object.gotpl ****************************

var collectionImplementors = []string{"Collection"}

func (ec *executionContext) _Collection(ctx context.Context, sel ast.SelectionSet, obj *schema.Collection) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, collectionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Collection")
		case "id":
			out.Values[i] = ec._Collection_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "projectId":
			out.Values[i] = ec._Collection_projectId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "blockchain":
			out.Values[i] = ec._Collection_blockchain(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "address":
			out.Values[i] = ec._Collection_address(ctx, field, obj)
		case "signature":
			out.Values[i] = ec._Collection_signature(ctx, field, obj)
		case "creationStatus":
			out.Values[i] = ec._Collection_creationStatus(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "supply":
			out.Values[i] = ec._Collection_supply(ctx, field, obj)
		case "totalMints":
			out.Values[i] = ec._Collection_totalMints(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "sellerFeeBasisPoints":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Collection_sellerFeeBasisPoints(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdAt":
			out.Values[i] = ec._Collection_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "metadataJson":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Collection_metadataJson(ctx, field, obj)
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "creators":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Collection_creators(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "mints":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Collection_mints(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "holders":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Collection_holders(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "purchaseHistories":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Collection_purchaseHistories(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var collectionConnectionImplementors = []string{"CollectionConnection"}

func (ec *executionContext) _CollectionConnection(ctx context.Context, sel ast.SelectionSet, obj *CollectionConnection) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, collectionConnectionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CollectionConnection")
		case "edges":
			out.Values[i] = ec._CollectionConnection_edges(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "pageInfo":
			out.Values[i] = ec._CollectionConnection_pageInfo(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var collectionEdgeImplementors = []string{"CollectionEdge"}

func (ec *executionContext) _CollectionEdge(ctx context.Context, sel ast.SelectionSet, obj *CollectionEdge) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, collectionEdgeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CollectionEdge")
		case "cursor":
			out.Values[i] = ec._CollectionEdge_cursor(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "node":
			out.Values[i] = ec._CollectionEdge_node(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var collectionMintImplementors = []string{"CollectionMint"}

func (ec *executionContext) _CollectionMint(ctx context.Context, sel ast.SelectionSet, obj *schema.CollectionMint) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, collectionMintImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CollectionMint")
		case "id":
			out.Values[i] = ec._CollectionMint_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "collectionId":
			out.Values[i] = ec._CollectionMint_collectionId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "address":
			out.Values[i] = ec._CollectionMint_address(ctx, field, obj)
		case "owner":
			out.Values[i] = ec._CollectionMint_owner(ctx, field, obj)
		case "signature":
			out.Values[i] = ec._CollectionMint_signature(ctx, field, obj)
		case "creationStatus":
			out.Values[i] = ec._CollectionMint_creationStatus(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "edition":
			out.Values[i] = ec._CollectionMint_edition(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "sellerFeeBasisPoints":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CollectionMint_sellerFeeBasisPoints(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "compressed":
			out.Values[i] = ec._CollectionMint_compressed(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._CollectionMint_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "collection":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CollectionMint_collection(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "metadataJson":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CollectionMint_metadataJson(ctx, field, obj)
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "creators":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CollectionMint_creators(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "mintHistories":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CollectionMint_mintHistories(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "updateHistories":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CollectionMint_updateHistories(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "transfers":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CollectionMint_transfers(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "switchHistories":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._CollectionMint_switchHistories(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var creatorImplementors = []string{"Creator"}

func (ec *executionContext) _Creator(ctx context.Context, sel ast.SelectionSet, obj *schema.Creator) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, creatorImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Creator")
		case "address":
			out.Values[i] = ec._Creator_address(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "verified":
			out.Values[i] = ec._Creator_verified(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "share":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Creator_share(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var customerImplementors = []string{"Customer", "_Entity"}

func (ec *executionContext) _Customer(ctx context.Context, sel ast.SelectionSet, obj *Customer) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, customerImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Customer")
		case "id":
			out.Values[i] = ec._Customer_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "mints":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Customer_mints(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var dropImplementors = []string{"Drop"}

func (ec *executionContext) _Drop(ctx context.Context, sel ast.SelectionSet, obj *schema.Drop) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, dropImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Drop")
		case "id":
			out.Values[i] = ec._Drop_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "projectId":
			out.Values[i] = ec._Drop_projectId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "collectionId":
			out.Values[i] = ec._Drop_collectionId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "dropType":
			out.Values[i] = ec._Drop_dropType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "creationStatus":
			out.Values[i] = ec._Drop_creationStatus(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "status":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Drop_status(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "startTime":
			out.Values[i] = ec._Drop_startTime(ctx, field, obj)
		case "endTime":
			out.Values[i] = ec._Drop_endTime(ctx, field, obj)
		case "pausedAt":
			out.Values[i] = ec._Drop_pausedAt(ctx, field, obj)
		case "shutdownAt":
			out.Values[i] = ec._Drop_shutdownAt(ctx, field, obj)
		case "price":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Drop_price(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdAt":
			out.Values[i] = ec._Drop_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "collection":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Drop_collection(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "queuedMints":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Drop_queuedMints(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "purchaseHistories":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Drop_purchaseHistories(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var dropConnectionImplementors = []string{"DropConnection"}

func (ec *executionContext) _DropConnection(ctx context.Context, sel ast.SelectionSet, obj *DropConnection) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, dropConnectionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("DropConnection")
		case "edges":
			out.Values[i] = ec._DropConnection_edges(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "pageInfo":
			out.Values[i] = ec._DropConnection_pageInfo(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var dropEdgeImplementors = []string{"DropEdge"}

func (ec *executionContext) _DropEdge(ctx context.Context, sel ast.SelectionSet, obj *DropEdge) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, dropEdgeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("DropEdge")
		case "cursor":
			out.Values[i] = ec._DropEdge_cursor(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "node":
			out.Values[i] = ec._DropEdge_node(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var entityImplementors = []string{"Entity"}

func (ec *executionContext) _Entity(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, entityImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Entity",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Entity")
		case "findCustomerByID":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Entity_findCustomerByID(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "findProjectByID":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Entity_findProjectByID(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var holderImplementors = []string{"Holder"}

func (ec *executionContext) _Holder(ctx context.Context, sel ast.SelectionSet, obj *store.HolderRow) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, holderImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Holder")
		case "collectionId":
			out.Values[i] = ec._Holder_collectionId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "owner":
			out.Values[i] = ec._Holder_owner(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mints":
			out.Values[i] = ec._Holder_mints(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var metadataJsonImplementors = []string{"MetadataJson"}

func (ec *executionContext) _MetadataJson(ctx context.Context, sel ast.SelectionSet, obj *schema.MetadataJson) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, metadataJsonImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("MetadataJson")
		case "id":
			out.Values[i] = ec._MetadataJson_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "name":
			out.Values[i] = ec._MetadataJson_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "symbol":
			out.Values[i] = ec._MetadataJson_symbol(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "description":
			out.Values[i] = ec._MetadataJson_description(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "image":
			out.Values[i] = ec._MetadataJson_image(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "animationUrl":
			out.Values[i] = ec._MetadataJson_animationUrl(ctx, field, obj)
		case "externalUrl":
			out.Values[i] = ec._MetadataJson_externalUrl(ctx, field, obj)
		case "uri":
			out.Values[i] = ec._MetadataJson_uri(ctx, field, obj)
		case "identifier":
			out.Values[i] = ec._MetadataJson_identifier(ctx, field, obj)
		case "attributes":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._MetadataJson_attributes(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "files":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._MetadataJson_files(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var metadataJsonAttributeImplementors = []string{"MetadataJsonAttribute"}

func (ec *executionContext) _MetadataJsonAttribute(ctx context.Context, sel ast.SelectionSet, obj *schema.MetadataJsonAttribute) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, metadataJsonAttributeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("MetadataJsonAttribute")
		case "traitType":
			out.Values[i] = ec._MetadataJsonAttribute_traitType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "value":
			out.Values[i] = ec._MetadataJsonAttribute_value(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var metadataJsonFileImplementors = []string{"MetadataJsonFile"}

func (ec *executionContext) _MetadataJsonFile(ctx context.Context, sel ast.SelectionSet, obj *schema.MetadataJsonFile) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, metadataJsonFileImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("MetadataJsonFile")
		case "uri":
			out.Values[i] = ec._MetadataJsonFile_uri(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "fileType":
			out.Values[i] = ec._MetadataJsonFile_fileType(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mintConnectionImplementors = []string{"MintConnection"}

func (ec *executionContext) _MintConnection(ctx context.Context, sel ast.SelectionSet, obj *MintConnection) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mintConnectionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("MintConnection")
		case "edges":
			out.Values[i] = ec._MintConnection_edges(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "pageInfo":
			out.Values[i] = ec._MintConnection_pageInfo(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mintEdgeImplementors = []string{"MintEdge"}

func (ec *executionContext) _MintEdge(ctx context.Context, sel ast.SelectionSet, obj *MintEdge) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mintEdgeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("MintEdge")
		case "cursor":
			out.Values[i] = ec._MintEdge_cursor(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "node":
			out.Values[i] = ec._MintEdge_node(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mintHistoryImplementors = []string{"MintHistory"}

func (ec *executionContext) _MintHistory(ctx context.Context, sel ast.SelectionSet, obj *schema.MintHistory) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mintHistoryImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("MintHistory")
		case "mintId":
			out.Values[i] = ec._MintHistory_mintId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "collectionId":
			out.Values[i] = ec._MintHistory_collectionId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "dropId":
			out.Values[i] = ec._MintHistory_dropId(ctx, field, obj)
		case "wallet":
			out.Values[i] = ec._MintHistory_wallet(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "status":
			out.Values[i] = ec._MintHistory_status(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "signature":
			out.Values[i] = ec._MintHistory_signature(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._MintHistory_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mutationImplementors = []string{"Mutation"}

func (ec *executionContext) _Mutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mutationImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Mutation",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Mutation")
		case "createCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "retryCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_retryCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "patchCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_patchCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "importCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_importCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "switchCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_switchCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createDrop":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createDrop(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "retryDrop":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_retryDrop(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "patchDrop":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_patchDrop(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "pauseDrop":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_pauseDrop(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "resumeDrop":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_resumeDrop(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "shutdownDrop":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_shutdownDrop(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mintEdition":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_mintEdition(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mintQueued":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_mintQueued(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mintToCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_mintToCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "retryMintEdition":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_retryMintEdition(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "retryMintToCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_retryMintToCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "processDropQueue":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_processDropQueue(ctx, field)
			})
		case "updateMint":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateMint(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "retryUpdateMint":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_retryUpdateMint(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "transferAsset":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_transferAsset(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var nftTransferImplementors = []string{"NftTransfer"}

func (ec *executionContext) _NftTransfer(ctx context.Context, sel ast.SelectionSet, obj *schema.NftTransfer) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, nftTransferImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("NftTransfer")
		case "id":
			out.Values[i] = ec._NftTransfer_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "collectionMintId":
			out.Values[i] = ec._NftTransfer_collectionMintId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "sender":
			out.Values[i] = ec._NftTransfer_sender(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "recipient":
			out.Values[i] = ec._NftTransfer_recipient(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "signature":
			out.Values[i] = ec._NftTransfer_signature(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._NftTransfer_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var pageInfoImplementors = []string{"PageInfo"}

func (ec *executionContext) _PageInfo(ctx context.Context, sel ast.SelectionSet, obj *PageInfo) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, pageInfoImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PageInfo")
		case "hasNextPage":
			out.Values[i] = ec._PageInfo_hasNextPage(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "endCursor":
			out.Values[i] = ec._PageInfo_endCursor(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var projectImplementors = []string{"Project", "_Entity"}

func (ec *executionContext) _Project(ctx context.Context, sel ast.SelectionSet, obj *Project) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, projectImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Project")
		case "id":
			out.Values[i] = ec._Project_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "collections":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Project_collections(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "drops":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Project_drops(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "wallets":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Project_wallets(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var projectWalletImplementors = []string{"ProjectWallet"}

func (ec *executionContext) _ProjectWallet(ctx context.Context, sel ast.SelectionSet, obj *schema.ProjectWallet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, projectWalletImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ProjectWallet")
		case "id":
			out.Values[i] = ec._ProjectWallet_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "projectId":
			out.Values[i] = ec._ProjectWallet_projectId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "blockchain":
			out.Values[i] = ec._ProjectWallet_blockchain(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "walletAddress":
			out.Values[i] = ec._ProjectWallet_walletAddress(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var queryImplementors = []string{"Query"}

func (ec *executionContext) _Query(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, queryImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Query",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Query")
		case "collection":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_collection(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "drop":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_drop(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "mint":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_mint(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "collections":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_collections(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "drops":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_drops(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "mints":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_mints(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "mintsByOwner":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_mintsByOwner(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "_entities":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query__entities(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "_service":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query__service(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "__type":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___type(ctx, field)
			})
		case "__schema":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___schema(ctx, field)
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var switchCollectionHistoryImplementors = []string{"SwitchCollectionHistory"}

func (ec *executionContext) _SwitchCollectionHistory(ctx context.Context, sel ast.SelectionSet, obj *schema.SwitchCollectionHistory) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, switchCollectionHistoryImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("SwitchCollectionHistory")
		case "mintId":
			out.Values[i] = ec._SwitchCollectionHistory_mintId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "prevCollectionId":
			out.Values[i] = ec._SwitchCollectionHistory_prevCollectionId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "newCollectionId":
			out.Values[i] = ec._SwitchCollectionHistory_newCollectionId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createdAt":
			out.Values[i] = ec._SwitchCollectionHistory_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var updateHistoryImplementors = []string{"UpdateHistory"}

func (ec *executionContext) _UpdateHistory(ctx context.Context, sel ast.SelectionSet, obj *schema.UpdateHistory) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, updateHistoryImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("UpdateHistory")
		case "mintId":
			out.Values[i] = ec._UpdateHistory_mintId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "status":
			out.Values[i] = ec._UpdateHistory_status(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "signature":
			out.Values[i] = ec._UpdateHistory_signature(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._UpdateHistory_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var _ServiceImplementors = []string{"_Service"}

func (ec *executionContext) __Service(ctx context.Context, sel ast.SelectionSet, obj *fedruntime.Service) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, _ServiceImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("_Service")
		case "sdl":
			out.Values[i] = ec.__Service_sdl(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __DirectiveImplementors = []string{"__Directive"}

func (ec *executionContext) ___Directive(ctx context.Context, sel ast.SelectionSet, obj *introspection.Directive) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __DirectiveImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Directive")
		case "name":
			out.Values[i] = ec.___Directive_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Directive_description(ctx, field, obj)
		case "isRepeatable":
			out.Values[i] = ec.___Directive_isRepeatable(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "locations":
			out.Values[i] = ec.___Directive_locations(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "args":
			out.Values[i] = ec.___Directive_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __EnumValueImplementors = []string{"__EnumValue"}

func (ec *executionContext) ___EnumValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.EnumValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __EnumValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__EnumValue")
		case "name":
			out.Values[i] = ec.___EnumValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___EnumValue_description(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___EnumValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___EnumValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __FieldImplementors = []string{"__Field"}

func (ec *executionContext) ___Field(ctx context.Context, sel ast.SelectionSet, obj *introspection.Field) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __FieldImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Field")
		case "name":
			out.Values[i] = ec.___Field_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Field_description(ctx, field, obj)
		case "args":
			out.Values[i] = ec.___Field_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "type":
			out.Values[i] = ec.___Field_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isDeprecated":
			out.Values[i] = ec.___Field_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___Field_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __InputValueImplementors = []string{"__InputValue"}

func (ec *executionContext) ___InputValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.InputValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __InputValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__InputValue")
		case "name":
			out.Values[i] = ec.___InputValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___InputValue_description(ctx, field, obj)
		case "type":
			out.Values[i] = ec.___InputValue_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "defaultValue":
			out.Values[i] = ec.___InputValue_defaultValue(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___InputValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___InputValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __SchemaImplementors = []string{"__Schema"}

func (ec *executionContext) ___Schema(ctx context.Context, sel ast.SelectionSet, obj *introspection.Schema) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __SchemaImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Schema")
		case "description":
			out.Values[i] = ec.___Schema_description(ctx, field, obj)
		case "types":
			out.Values[i] = ec.___Schema_types(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "queryType":
			out.Values[i] = ec.___Schema_queryType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mutationType":
			out.Values[i] = ec.___Schema_mutationType(ctx, field, obj)
		case "subscriptionType":
			out.Values[i] = ec.___Schema_subscriptionType(ctx, field, obj)
		case "directives":
			out.Values[i] = ec.___Schema_directives(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __TypeImplementors = []string{"__Type"}

func (ec *executionContext) ___Type(ctx context.Context, sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __TypeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Type")
		case "kind":
			out.Values[i] = ec.___Type_kind(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec.___Type_name(ctx, field, obj)
		case "description":
			out.Values[i] = ec.___Type_description(ctx, field, obj)
		case "specifiedByURL":
			out.Values[i] = ec.___Type_specifiedByURL(ctx, field, obj)
		case "fields":
			out.Values[i] = ec.___Type_fields(ctx, field, obj)
		case "interfaces":
			out.Values[i] = ec.___Type_interfaces(ctx, field, obj)
		case "possibleTypes":
			out.Values[i] = ec.___Type_possibleTypes(ctx, field, obj)
		case "enumValues":
			out.Values[i] = ec.___Type_enumValues(ctx, field, obj)
		case "inputFields":
			out.Values[i] = ec.___Type_inputFields(ctx, field, obj)
		case "ofType":
			out.Values[i] = ec.___Type_ofType(ctx, field, obj)
		case "isOneOf":
			out.Values[i] = ec.___Type_isOneOf(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

// endregion **************************** object.gotpl ****************************

// region    ***************************** type.gotpl *****************************

func (ec *executionContext) unmarshalNBlockchain2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐBlockchain(ctx context.Context, v any) (domain.Blockchain, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.Blockchain(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBlockchain2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐBlockchain(ctx context.Context, sel ast.SelectionSet, v domain.Blockchain) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalBoolean(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNCollection2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection(ctx context.Context, sel ast.SelectionSet, v schema.Collection) graphql.Marshaler {
	return ec._Collection(ctx, sel, &v)
}

func (ec *executionContext) marshalNCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection(ctx context.Context, sel ast.SelectionSet, v *schema.Collection) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Collection(ctx, sel, v)
}

func (ec *executionContext) marshalNCollectionConnection2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCollectionConnection(ctx context.Context, sel ast.SelectionSet, v CollectionConnection) graphql.Marshaler {
	return ec._CollectionConnection(ctx, sel, &v)
}

func (ec *executionContext) marshalNCollectionConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCollectionConnection(ctx context.Context, sel ast.SelectionSet, v *CollectionConnection) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._CollectionConnection(ctx, sel, v)
}

func (ec *executionContext) marshalNCollectionEdge2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCollectionEdgeᚄ(ctx context.Context, sel ast.SelectionSet, v []*CollectionEdge) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCollectionEdge2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCollectionEdge(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNCollectionEdge2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCollectionEdge(ctx context.Context, sel ast.SelectionSet, v *CollectionEdge) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._CollectionEdge(ctx, sel, v)
}

func (ec *executionContext) marshalNCollectionMint2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint(ctx context.Context, sel ast.SelectionSet, v schema.CollectionMint) graphql.Marshaler {
	return ec._CollectionMint(ctx, sel, &v)
}

func (ec *executionContext) marshalNCollectionMint2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMintᚄ(ctx context.Context, sel ast.SelectionSet, v []*schema.CollectionMint) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint(ctx context.Context, sel ast.SelectionSet, v *schema.CollectionMint) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._CollectionMint(ctx, sel, v)
}

func (ec *executionContext) unmarshalNCreateCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreateCollectionInput(ctx context.Context, v any) (CreateCollectionInput, error) {
	res, err := ec.unmarshalInputCreateCollectionInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreateDropInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreateDropInput(ctx context.Context, v any) (CreateDropInput, error) {
	res, err := ec.unmarshalInputCreateDropInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNCreationStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐCreationStatus(ctx context.Context, v any) (domain.CreationStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.CreationStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNCreationStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐCreationStatus(ctx context.Context, sel ast.SelectionSet, v domain.CreationStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNCreator2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCreatorᚄ(ctx context.Context, sel ast.SelectionSet, v []*schema.Creator) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCreator2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCreator(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNCreator2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCreator(ctx context.Context, sel ast.SelectionSet, v *schema.Creator) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Creator(ctx, sel, v)
}

func (ec *executionContext) unmarshalNCreatorInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInputᚄ(ctx context.Context, v any) ([]*CreatorInput, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]*CreatorInput, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNCreatorInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInput(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) unmarshalNCreatorInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInput(ctx context.Context, v any) (*CreatorInput, error) {
	res, err := ec.unmarshalInputCreatorInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNCustomer2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCustomer(ctx context.Context, sel ast.SelectionSet, v Customer) graphql.Marshaler {
	return ec._Customer(ctx, sel, &v)
}

func (ec *executionContext) marshalNCustomer2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCustomer(ctx context.Context, sel ast.SelectionSet, v *Customer) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Customer(ctx, sel, v)
}

func (ec *executionContext) marshalNDrop2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop(ctx context.Context, sel ast.SelectionSet, v schema.Drop) graphql.Marshaler {
	return ec._Drop(ctx, sel, &v)
}

func (ec *executionContext) marshalNDrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop(ctx context.Context, sel ast.SelectionSet, v *schema.Drop) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Drop(ctx, sel, v)
}

func (ec *executionContext) marshalNDropConnection2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐDropConnection(ctx context.Context, sel ast.SelectionSet, v DropConnection) graphql.Marshaler {
	return ec._DropConnection(ctx, sel, &v)
}

func (ec *executionContext) marshalNDropConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐDropConnection(ctx context.Context, sel ast.SelectionSet, v *DropConnection) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._DropConnection(ctx, sel, v)
}

func (ec *executionContext) marshalNDropEdge2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐDropEdgeᚄ(ctx context.Context, sel ast.SelectionSet, v []*DropEdge) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNDropEdge2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐDropEdge(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNDropEdge2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐDropEdge(ctx context.Context, sel ast.SelectionSet, v *DropEdge) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._DropEdge(ctx, sel, v)
}

func (ec *executionContext) unmarshalNDropStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐDropStatus(ctx context.Context, v any) (domain.DropStatus, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.DropStatus(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNDropStatus2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐDropStatus(ctx context.Context, sel ast.SelectionSet, v domain.DropStatus) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNDropType2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐDropType(ctx context.Context, v any) (domain.DropType, error) {
	tmp, err := graphql.UnmarshalString(v)
	res := domain.DropType(tmp)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNDropType2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋdomainᚐDropType(ctx context.Context, sel ast.SelectionSet, v domain.DropType) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(string(v))
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNFieldSet2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNFieldSet2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNHolder2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚐHolderRowᚄ(ctx context.Context, sel ast.SelectionSet, v []*store.HolderRow) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNHolder2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚐHolderRow(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNHolder2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚐHolderRow(ctx context.Context, sel ast.SelectionSet, v *store.HolderRow) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Holder(ctx, sel, v)
}

func (ec *executionContext) unmarshalNImportCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐImportCollectionInput(ctx context.Context, v any) (ImportCollectionInput, error) {
	res, err := ec.unmarshalInputImportCollectionInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNInt2int(ctx context.Context, v any) (int, error) {
	res, err := graphql.UnmarshalInt(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInt2int(ctx context.Context, sel ast.SelectionSet, v int) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalInt(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNInt2int64(ctx context.Context, v any) (int64, error) {
	res, err := graphql.UnmarshalInt64(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNInt2int64(ctx context.Context, sel ast.SelectionSet, v int64) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalInt64(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNMetadataJsonAttribute2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJsonAttributeᚄ(ctx context.Context, sel ast.SelectionSet, v []*schema.MetadataJsonAttribute) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNMetadataJsonAttribute2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJsonAttribute(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNMetadataJsonAttribute2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJsonAttribute(ctx context.Context, sel ast.SelectionSet, v *schema.MetadataJsonAttribute) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._MetadataJsonAttribute(ctx, sel, v)
}

func (ec *executionContext) unmarshalNMetadataJsonAttributeInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonAttributeInput(ctx context.Context, v any) (*MetadataJsonAttributeInput, error) {
	res, err := ec.unmarshalInputMetadataJsonAttributeInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNMetadataJsonFile2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJsonFileᚄ(ctx context.Context, sel ast.SelectionSet, v []*schema.MetadataJsonFile) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNMetadataJsonFile2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJsonFile(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNMetadataJsonFile2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJsonFile(ctx context.Context, sel ast.SelectionSet, v *schema.MetadataJsonFile) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._MetadataJsonFile(ctx, sel, v)
}

func (ec *executionContext) unmarshalNMetadataJsonFileInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonFileInput(ctx context.Context, v any) (*MetadataJsonFileInput, error) {
	res, err := ec.unmarshalInputMetadataJsonFileInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNMetadataJsonInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonInput(ctx context.Context, v any) (*MetadataJsonInput, error) {
	res, err := ec.unmarshalInputMetadataJsonInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNMintConnection2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintConnection(ctx context.Context, sel ast.SelectionSet, v MintConnection) graphql.Marshaler {
	return ec._MintConnection(ctx, sel, &v)
}

func (ec *executionContext) marshalNMintConnection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintConnection(ctx context.Context, sel ast.SelectionSet, v *MintConnection) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._MintConnection(ctx, sel, v)
}

func (ec *executionContext) marshalNMintEdge2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintEdgeᚄ(ctx context.Context, sel ast.SelectionSet, v []*MintEdge) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNMintEdge2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintEdge(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNMintEdge2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintEdge(ctx context.Context, sel ast.SelectionSet, v *MintEdge) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._MintEdge(ctx, sel, v)
}

func (ec *executionContext) unmarshalNMintEditionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintEditionInput(ctx context.Context, v any) (MintEditionInput, error) {
	res, err := ec.unmarshalInputMintEditionInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNMintHistory2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMintHistoryᚄ(ctx context.Context, sel ast.SelectionSet, v []*schema.MintHistory) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNMintHistory2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMintHistory(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNMintHistory2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMintHistory(ctx context.Context, sel ast.SelectionSet, v *schema.MintHistory) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._MintHistory(ctx, sel, v)
}

func (ec *executionContext) unmarshalNMintQueuedInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintQueuedInput(ctx context.Context, v any) (MintQueuedInput, error) {
	res, err := ec.unmarshalInputMintQueuedInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNMintToCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMintToCollectionInput(ctx context.Context, v any) (MintToCollectionInput, error) {
	res, err := ec.unmarshalInputMintToCollectionInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNNftTransfer2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐNftTransfer(ctx context.Context, sel ast.SelectionSet, v schema.NftTransfer) graphql.Marshaler {
	return ec._NftTransfer(ctx, sel, &v)
}

func (ec *executionContext) marshalNNftTransfer2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐNftTransferᚄ(ctx context.Context, sel ast.SelectionSet, v []*schema.NftTransfer) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNNftTransfer2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐNftTransfer(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNNftTransfer2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐNftTransfer(ctx context.Context, sel ast.SelectionSet, v *schema.NftTransfer) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._NftTransfer(ctx, sel, v)
}

func (ec *executionContext) marshalNPageInfo2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐPageInfo(ctx context.Context, sel ast.SelectionSet, v *PageInfo) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._PageInfo(ctx, sel, v)
}

func (ec *executionContext) unmarshalNPatchCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐPatchCollectionInput(ctx context.Context, v any) (PatchCollectionInput, error) {
	res, err := ec.unmarshalInputPatchCollectionInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNPatchDropInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐPatchDropInput(ctx context.Context, v any) (PatchDropInput, error) {
	res, err := ec.unmarshalInputPatchDropInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNProject2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐProject(ctx context.Context, sel ast.SelectionSet, v Project) graphql.Marshaler {
	return ec._Project(ctx, sel, &v)
}

func (ec *executionContext) marshalNProject2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐProject(ctx context.Context, sel ast.SelectionSet, v *Project) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Project(ctx, sel, v)
}

func (ec *executionContext) marshalNProjectWallet2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐProjectWalletᚄ(ctx context.Context, sel ast.SelectionSet, v []*schema.ProjectWallet) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNProjectWallet2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐProjectWallet(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNProjectWallet2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐProjectWallet(ctx context.Context, sel ast.SelectionSet, v *schema.ProjectWallet) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ProjectWallet(ctx, sel, v)
}

func (ec *executionContext) unmarshalNString2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNString2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNSwitchCollectionHistory2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐSwitchCollectionHistoryᚄ(ctx context.Context, sel ast.SelectionSet, v []*schema.SwitchCollectionHistory) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNSwitchCollectionHistory2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐSwitchCollectionHistory(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNSwitchCollectionHistory2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐSwitchCollectionHistory(ctx context.Context, sel ast.SelectionSet, v *schema.SwitchCollectionHistory) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._SwitchCollectionHistory(ctx, sel, v)
}

func (ec *executionContext) unmarshalNSwitchCollectionInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐSwitchCollectionInput(ctx context.Context, v any) (SwitchCollectionInput, error) {
	res, err := ec.unmarshalInputSwitchCollectionInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNTime2timeᚐTime(ctx context.Context, v any) (time.Time, error) {
	res, err := graphql.UnmarshalTime(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNTime2timeᚐTime(ctx context.Context, sel ast.SelectionSet, v time.Time) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalTime(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNTransferAssetInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐTransferAssetInput(ctx context.Context, v any) (TransferAssetInput, error) {
	res, err := ec.unmarshalInputTransferAssetInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, v any) (uuid.UUID, error) {
	res, err := UnmarshalUUID(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNUUID2githubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, sel ast.SelectionSet, v uuid.UUID) graphql.Marshaler {
	_ = sel
	res := MarshalUUID(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNUint642uint64(ctx context.Context, v any) (uint64, error) {
	res, err := UnmarshalUint64(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNUint642uint64(ctx context.Context, sel ast.SelectionSet, v uint64) graphql.Marshaler {
	_ = sel
	res := MarshalUint64(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNUpdateHistory2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐUpdateHistoryᚄ(ctx context.Context, sel ast.SelectionSet, v []*schema.UpdateHistory) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNUpdateHistory2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐUpdateHistory(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNUpdateHistory2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐUpdateHistory(ctx context.Context, sel ast.SelectionSet, v *schema.UpdateHistory) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._UpdateHistory(ctx, sel, v)
}

func (ec *executionContext) unmarshalNUpdateMintInput2githubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐUpdateMintInput(ctx context.Context, v any) (UpdateMintInput, error) {
	res, err := ec.unmarshalInputUpdateMintInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalN_Any2map(ctx context.Context, v any) (map[string]any, error) {
	res, err := graphql.UnmarshalMap(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN_Any2map(ctx context.Context, sel ast.SelectionSet, v map[string]any) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	_ = sel
	res := graphql.MarshalMap(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalN_Any2ᚕmapᚄ(ctx context.Context, v any) ([]map[string]any, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]map[string]any, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalN_Any2map(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalN_Any2ᚕmapᚄ(ctx context.Context, sel ast.SelectionSet, v []map[string]any) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalN_Any2map(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN_Entity2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋpluginᚋfederationᚋfedruntimeᚐEntity(ctx context.Context, sel ast.SelectionSet, v []fedruntime.Entity) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalO_Entity2githubᚗcomᚋ99designsᚋgqlgenᚋpluginᚋfederationᚋfedruntimeᚐEntity(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	return ret
}

func (ec *executionContext) marshalN_Service2githubᚗcomᚋ99designsᚋgqlgenᚋpluginᚋfederationᚋfedruntimeᚐService(ctx context.Context, sel ast.SelectionSet, v fedruntime.Service) graphql.Marshaler {
	return ec.__Service(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx context.Context, sel ast.SelectionSet, v introspection.Directive) graphql.Marshaler {
	return ec.___Directive(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Directive) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalN__DirectiveLocation2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__DirectiveLocation2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalN__DirectiveLocation2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__DirectiveLocation2string(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx context.Context, sel ast.SelectionSet, v introspection.EnumValue) graphql.Marshaler {
	return ec.___EnumValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx context.Context, sel ast.SelectionSet, v introspection.Field) graphql.Marshaler {
	return ec.___Field(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx context.Context, sel ast.SelectionSet, v introspection.InputValue) graphql.Marshaler {
	return ec.___InputValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v introspection.Type) graphql.Marshaler {
	return ec.___Type(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

func (ec *executionContext) unmarshalN__TypeKind2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__TypeKind2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNfederation__Policy2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNfederation__Policy2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNfederation__Policy2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNfederation__Policy2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalNfederation__Policy2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNfederation__Policy2string(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNfederation__Policy2ᚕᚕstringᚄ(ctx context.Context, v any) ([][]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([][]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNfederation__Policy2ᚕstringᚄ(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalNfederation__Policy2ᚕᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v [][]string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNfederation__Policy2ᚕstringᚄ(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNfederation__Scope2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNfederation__Scope2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNfederation__Scope2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNfederation__Scope2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalNfederation__Scope2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNfederation__Scope2string(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNfederation__Scope2ᚕᚕstringᚄ(ctx context.Context, v any) ([][]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([][]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNfederation__Scope2ᚕstringᚄ(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalNfederation__Scope2ᚕᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v [][]string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNfederation__Scope2ᚕstringᚄ(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalOBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(v)
	return res
}

func (ec *executionContext) unmarshalOBoolean2ᚖbool(ctx context.Context, v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalBoolean(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2ᚖbool(ctx context.Context, sel ast.SelectionSet, v *bool) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(*v)
	return res
}

func (ec *executionContext) marshalOCollection2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollection(ctx context.Context, sel ast.SelectionSet, v *schema.Collection) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Collection(ctx, sel, v)
}

func (ec *executionContext) marshalOCollectionMint2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐCollectionMint(ctx context.Context, sel ast.SelectionSet, v *schema.CollectionMint) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._CollectionMint(ctx, sel, v)
}

func (ec *executionContext) unmarshalOCreatorInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInputᚄ(ctx context.Context, v any) ([]*CreatorInput, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]*CreatorInput, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNCreatorInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐCreatorInput(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalODrop2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐDrop(ctx context.Context, sel ast.SelectionSet, v *schema.Drop) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Drop(ctx, sel, v)
}

func (ec *executionContext) unmarshalOInt2ᚖint(ctx context.Context, v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalInt(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOInt2ᚖint(ctx context.Context, sel ast.SelectionSet, v *int) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalInt(*v)
	return res
}

func (ec *executionContext) unmarshalOInt2ᚖint64(ctx context.Context, v any) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalInt64(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOInt2ᚖint64(ctx context.Context, sel ast.SelectionSet, v *int64) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalInt64(*v)
	return res
}

func (ec *executionContext) marshalOMetadataJson2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋstoreᚋschemaᚐMetadataJson(ctx context.Context, sel ast.SelectionSet, v *schema.MetadataJson) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._MetadataJson(ctx, sel, v)
}

func (ec *executionContext) unmarshalOMetadataJsonAttributeInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonAttributeInputᚄ(ctx context.Context, v any) ([]*MetadataJsonAttributeInput, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]*MetadataJsonAttributeInput, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNMetadataJsonAttributeInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonAttributeInput(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) unmarshalOMetadataJsonFileInput2ᚕᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonFileInputᚄ(ctx context.Context, v any) ([]*MetadataJsonFileInput, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]*MetadataJsonFileInput, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNMetadataJsonFileInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonFileInput(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) unmarshalOMetadataJsonInput2ᚖgithubᚗcomᚋdropforgeᚋnftᚑhubᚋinternalᚋapiᚋgraphqlᚐMetadataJsonInput(ctx context.Context, v any) (*MetadataJsonInput, error) {
	if v == nil {
		return nil, nil
	}
	res, err := ec.unmarshalInputMetadataJsonInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalOString2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOString2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	_ = ctx
	res := graphql.MarshalString(v)
	return res
}

func (ec *executionContext) unmarshalOString2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNString2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalOString2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNString2string(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalOString2ᚖstring(ctx context.Context, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalString(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOString2ᚖstring(ctx context.Context, sel ast.SelectionSet, v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(*v)
	return res
}

func (ec *executionContext) unmarshalOTime2ᚖtimeᚐTime(ctx context.Context, v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalTime(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOTime2ᚖtimeᚐTime(ctx context.Context, sel ast.SelectionSet, v *time.Time) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalTime(*v)
	return res
}

func (ec *executionContext) unmarshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, v any) (*uuid.UUID, error) {
	if v == nil {
		return nil, nil
	}
	res, err := UnmarshalUUID(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOUUID2ᚖgithubᚗcomᚋgoogleᚋuuidᚐUUID(ctx context.Context, sel ast.SelectionSet, v *uuid.UUID) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := MarshalUUID(*v)
	return res
}

func (ec *executionContext) unmarshalOUint642ᚖuint64(ctx context.Context, v any) (*uint64, error) {
	if v == nil {
		return nil, nil
	}
	res, err := UnmarshalUint64(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOUint642ᚖuint64(ctx context.Context, sel ast.SelectionSet, v *uint64) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := MarshalUint64(*v)
	return res
}

func (ec *executionContext) marshalO_Entity2githubᚗcomᚋ99designsᚋgqlgenᚋpluginᚋfederationᚋfedruntimeᚐEntity(ctx context.Context, sel ast.SelectionSet, v fedruntime.Entity) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.__Entity(ctx, sel, v)
}

func (ec *executionContext) marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.EnumValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Field) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema(ctx context.Context, sel ast.SelectionSet, v *introspection.Schema) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Schema(ctx, sel, v)
}

func (ec *executionContext) marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

// endregion ***************************** type.gotpl *****************************
