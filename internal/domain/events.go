package domain

import "time"

// EventType names an outbound chain-event variant. Downstream chain workers
// dispatch on it, so the strings are part of the wire contract.
type EventType string

const (
	EventSolanaCreateEditionDrop          EventType = "SolanaCreateEditionDrop"
	EventSolanaCreateOpenDrop             EventType = "SolanaCreateOpenDrop"
	EventSolanaRetryEditionDrop           EventType = "SolanaRetryEditionDrop"
	EventSolanaRetryOpenDrop              EventType = "SolanaRetryOpenDrop"
	EventSolanaUpdateEditionDrop          EventType = "SolanaUpdateEditionDrop"
	EventSolanaUpdateOpenDrop             EventType = "SolanaUpdateOpenDrop"
	EventSolanaMintEditionDrop            EventType = "SolanaMintEditionDrop"
	EventSolanaMintOpenDrop               EventType = "SolanaMintOpenDrop"
	EventSolanaRetryMintEditionDrop       EventType = "SolanaRetryMintEditionDrop"
	EventSolanaRetryMintOpenDrop          EventType = "SolanaRetryMintOpenDrop"
	EventSolanaCreateCollection           EventType = "SolanaCreateCollection"
	EventSolanaRetryCreateCollection      EventType = "SolanaRetryCreateCollection"
	EventSolanaUpdateCollection           EventType = "SolanaUpdateCollection"
	EventSolanaMintToCollection           EventType = "SolanaMintToCollection"
	EventSolanaRetryMintToCollection      EventType = "SolanaRetryMintToCollection"
	EventSolanaUpdatedCollectionMint      EventType = "SolanaUpdatedCollectionMint"
	EventSolanaRetryUpdatedCollectionMint EventType = "SolanaRetryUpdatedCollectionMint"
	EventSolanaTransferAsset              EventType = "SolanaTransferAsset"
	EventSolanaSwitchMintCollection       EventType = "SolanaSwitchMintCollectionRequested"
	EventSolanaImportCollection           EventType = "SolanaImportCollection"

	EventPolygonCreateEditionDrop EventType = "PolygonCreateEditionDrop"
	EventPolygonRetryEditionDrop  EventType = "PolygonRetryEditionDrop"
	EventPolygonUpdateEditionDrop EventType = "PolygonUpdateEditionDrop"
	EventPolygonMintEditionDrop   EventType = "PolygonMintEditionDrop"
	EventPolygonRetryMintDrop     EventType = "PolygonRetryMintDrop"
	EventPolygonTransferAsset     EventType = "PolygonTransferAsset"
)

// NftEventKey routes an outbound event back to the originating entity. ID is
// the entity whose state the downstream worker must advance.
type NftEventKey struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProjectID string `json:"project_id"`
}

// NftEvent is the outbound envelope published to the NFT events stream. The
// payload is one of the transaction structs below, chosen by Type.
type NftEvent struct {
	Blockchain Blockchain  `json:"blockchain"`
	Type       EventType   `json:"type"`
	Key        NftEventKey `json:"key"`
	Payload    any         `json:"payload"`
}

// MetaplexMetadata is the chain-agnostic metadata block carried by
// collection and mint events.
type MetaplexMetadata struct {
	Name                 string    `json:"name"`
	Symbol               string    `json:"symbol"`
	MetadataURI          string    `json:"metadata_uri"`
	SellerFeeBasisPoints uint16    `json:"seller_fee_basis_points"`
	OwnerAddress         string    `json:"owner_address"`
	Creators             []Creator `json:"creators"`
	CollectionID         string    `json:"collection_id,omitempty"`
}

// MasterEdition describes a drop's on-chain master edition.
type MasterEdition struct {
	Name                 string    `json:"name"`
	Symbol               string    `json:"symbol"`
	MetadataURI          string    `json:"metadata_uri"`
	SellerFeeBasisPoints uint16    `json:"seller_fee_basis_points"`
	Supply               *int64    `json:"supply,omitempty"`
	OwnerAddress         string    `json:"owner_address"`
	Creators             []Creator `json:"creators"`
}

// CreateDropTransaction asks a chain worker to create a drop's master edition.
type CreateDropTransaction struct {
	MasterEdition MasterEdition `json:"master_edition"`
	CollectionID  string        `json:"collection_id"`
	StartTime     *time.Time    `json:"start_time,omitempty"`
	EndTime       *time.Time    `json:"end_time,omitempty"`
	Price         int64         `json:"price"`
}

// CreateCollectionTransaction asks a chain worker to create a certified
// collection.
type CreateCollectionTransaction struct {
	Metadata MetaplexMetadata `json:"metadata"`
}

// MintEditionTransaction mints one edition out of a drop.
type MintEditionTransaction struct {
	RecipientAddress string `json:"recipient_address"`
	OwnerAddress     string `json:"owner_address"`
	DropID           string `json:"drop_id"`
	CollectionID     string `json:"collection_id"`
	Edition          int64  `json:"edition"`
}

// MintToCollectionTransaction mints a standalone NFT into a collection.
type MintToCollectionTransaction struct {
	Metadata         MetaplexMetadata `json:"metadata"`
	RecipientAddress string           `json:"recipient_address"`
	CollectionID     string           `json:"collection_id"`
	Compressed       bool             `json:"compressed"`
}

// UpdateMintTransaction rewrites a mint's on-chain metadata.
type UpdateMintTransaction struct {
	Metadata     MetaplexMetadata `json:"metadata"`
	MintID       string           `json:"mint_id"`
	CollectionID string           `json:"collection_id"`
}

// TransferAssetTransaction moves a mint between wallets.
type TransferAssetTransaction struct {
	OwnerAddress     string `json:"owner_address"`
	RecipientAddress string `json:"recipient_address"`
	CollectionMintID string `json:"collection_mint_id"`
}

// SwitchCollectionTransaction reparents a mint under another collection.
type SwitchCollectionTransaction struct {
	MintID       string `json:"mint_id"`
	CollectionID string `json:"collection_id"`
}

// ImportCollectionTransaction asks the indexer to import an existing on-chain
// collection into the hub.
type ImportCollectionTransaction struct {
	CollectionAddress string `json:"collection_address"`
}

// TreasuryEventType discriminates inbound chain-status events; each variant
// maps to the entity kind the key id refers to.
type TreasuryEventType string

const (
	TreasuryEventDropCreated           TreasuryEventType = "DropCreated"
	TreasuryEventCollectionCreated     TreasuryEventType = "CollectionCreated"
	TreasuryEventDropMinted            TreasuryEventType = "DropMinted"
	TreasuryEventMintedToCollection    TreasuryEventType = "MintedToCollection"
	TreasuryEventMintUpdated           TreasuryEventType = "MintUpdated"
	TreasuryEventMintTransferred       TreasuryEventType = "MintTransferred"
	TreasuryEventCollectionSwitched    TreasuryEventType = "CollectionSwitched"
	TreasuryEventProjectWalletCreated  TreasuryEventType = "ProjectWalletCreated"
	TreasuryEventCustomerWalletCreated TreasuryEventType = "CustomerWalletCreated"
)

// TreasuryEventStatusCreated is the status code signalling on-chain success.
const TreasuryEventStatusCreated int32 = 10

// TreasuryEventKey identifies the entity an inbound event finalizes.
type TreasuryEventKey struct {
	ID string `json:"id"`
}

// TreasuryEvent is the inbound envelope consumed from the treasury stream.
// Signature and Address are set on successful mint/transfer events; the
// wallet fields are set on the wallet-created variants.
type TreasuryEvent struct {
	Type       TreasuryEventType `json:"type"`
	Key        TreasuryEventKey  `json:"key"`
	StatusCode int32             `json:"status_code"`
	Signature  string            `json:"signature,omitempty"`
	Address    string            `json:"address,omitempty"`

	ProjectID     string     `json:"project_id,omitempty"`
	CustomerID    string     `json:"customer_id,omitempty"`
	Blockchain    Blockchain `json:"blockchain,omitempty"`
	WalletAddress string     `json:"wallet_address,omitempty"`
}

// StatusFromCode maps a treasury status code onto a creation status. Only
// code 10 is defined upstream today; everything else stays pending.
func StatusFromCode(code int32) CreationStatus {
	if code == TreasuryEventStatusCreated {
		return CreationStatusCreated
	}
	return CreationStatusPending
}
