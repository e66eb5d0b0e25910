// Package mutations implements the orchestrators behind the GraphQL write
// surface. Every write follows the same shape: validate the input, persist
// pending rows in one transaction, upload metadata when the mutation carries
// any, reserve a credit deduction, publish the typed chain event and return
// the pending entity. Finalization arrives later through the inbound event
// processor.
package mutations

import (
	"context"

	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/blockchains"
	"github.com/dropforge/nft-hub/internal/credits"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/metadatajson"
	"github.com/dropforge/nft-hub/internal/metrics"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// Identity is the caller extracted from the request headers.
type Identity struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Balance        uint64
}

func (i Identity) validate() error {
	if i.UserID == uuid.Nil || i.OrganizationID == uuid.Nil {
		return domain.ErrIdentityMissing
	}
	return nil
}

// Enqueuer persists metadata upload jobs and wakes the job runner.
type Enqueuer interface {
	EnqueueUpload(ctx context.Context, json *schema.MetadataJson, cont metadatajson.Continuation) error
}

// Service composes the store, the credits gate, the chain adapters and the
// metadata job pipeline into the mutation orchestrators.
type Service struct {
	store   store.Store
	credits credits.Client
	events  *blockchains.Registry
	jobs    Enqueuer
}

// NewService wires the orchestrators. Bind the job runner afterwards; runner
// construction needs the service as its dispatcher.
func NewService(st store.Store, creditsClient credits.Client, events *blockchains.Registry) *Service {
	return &Service{store: st, credits: creditsClient, events: events}
}

// BindJobs attaches the metadata job pipeline.
func (s *Service) BindJobs(jobs Enqueuer) {
	s.jobs = jobs
}

func eventKey(entityID, projectID uuid.UUID, userID uuid.UUID) domain.NftEventKey {
	return domain.NftEventKey{
		ID:        entityID.String(),
		UserID:    userID.String(),
		ProjectID: projectID.String(),
	}
}

// projectWallet resolves the treasury wallet for (project, chain) or fails
// with ErrProjectWalletNotFound.
func (s *Service) projectWallet(ctx context.Context, projectID uuid.UUID, blockchain domain.Blockchain) (*schema.ProjectWallet, error) {
	wallet, err := s.store.GetProjectWallet(ctx, projectID, blockchain)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrProjectWalletNotFound
	}
	return wallet, nil
}

func creatorRows(collectionID uuid.UUID, creators []domain.Creator) []schema.Creator {
	rows := make([]schema.Creator, 0, len(creators))
	for _, c := range creators {
		rows = append(rows, schema.Creator{
			CollectionID: collectionID,
			Address:      c.Address,
			Verified:     c.Verified,
			Share:        c.Share,
		})
	}
	return rows
}

func mintCreatorRows(mintID uuid.UUID, creators []domain.Creator) []schema.MintCreator {
	rows := make([]schema.MintCreator, 0, len(creators))
	for _, c := range creators {
		rows = append(rows, schema.MintCreator{
			MintID:   mintID,
			Address:  c.Address,
			Verified: c.Verified,
			Share:    c.Share,
		})
	}
	return rows
}

func domainCreators(rows []schema.Creator) []domain.Creator {
	creators := make([]domain.Creator, 0, len(rows))
	for _, r := range rows {
		creators = append(creators, domain.Creator{Address: r.Address, Verified: r.Verified, Share: r.Share})
	}
	return creators
}

func domainMintCreators(rows []schema.MintCreator) []domain.Creator {
	creators := make([]domain.Creator, 0, len(rows))
	for _, r := range rows {
		creators = append(creators, domain.Creator{Address: r.Address, Verified: r.Verified, Share: r.Share})
	}
	return creators
}

// metadataURI fails when the document has not been uploaded yet.
func metadataURI(json *schema.MetadataJson) (string, error) {
	if json == nil || json.URI == nil {
		return "", domain.ErrMetadataURIMissing
	}
	return *json.URI, nil
}

// reserveCollectionDeduction reserves a credit deduction for the collection
// unless one is already recorded. The entity keeps at most one deduction id;
// retries ride on the original reservation.
func (s *Service) reserveCollectionDeduction(ctx context.Context, ident Identity, col *schema.Collection, action domain.Action) error {
	if col.CreditsDeductionID != nil {
		return nil
	}
	deductionID, err := s.credits.SubmitPendingDeduction(ctx, credits.DeductionInput{
		OrganizationID: ident.OrganizationID,
		UserID:         ident.UserID,
		Action:         action,
		Blockchain:     col.Blockchain,
		Balance:        ident.Balance,
	})
	if err != nil {
		return err
	}
	if err := s.store.SetCollectionDeduction(ctx, col.ID, deductionID); err != nil {
		return err
	}
	col.CreditsDeductionID = &deductionID
	metrics.CreditsReservations.Inc()
	return nil
}

func (s *Service) reserveMintDeduction(ctx context.Context, ident Identity, mint *schema.CollectionMint, blockchain domain.Blockchain, action domain.Action) error {
	if mint.CreditsDeductionID != nil {
		return nil
	}
	deductionID, err := s.credits.SubmitPendingDeduction(ctx, credits.DeductionInput{
		OrganizationID: ident.OrganizationID,
		UserID:         ident.UserID,
		Action:         action,
		Blockchain:     blockchain,
		Balance:        ident.Balance,
	})
	if err != nil {
		return err
	}
	if err := s.store.SetMintDeduction(ctx, mint.ID, deductionID); err != nil {
		return err
	}
	mint.CreditsDeductionID = &deductionID
	metrics.CreditsReservations.Inc()
	return nil
}

func (s *Service) reserveTransferDeduction(ctx context.Context, ident Identity, transfer *schema.NftTransfer, blockchain domain.Blockchain) error {
	if transfer.CreditsDeductionID != nil {
		return nil
	}
	deductionID, err := s.credits.SubmitPendingDeduction(ctx, credits.DeductionInput{
		OrganizationID: ident.OrganizationID,
		UserID:         ident.UserID,
		Action:         domain.ActionTransfer,
		Blockchain:     blockchain,
		Balance:        ident.Balance,
	})
	if err != nil {
		return err
	}
	if err := s.store.SetTransferDeduction(ctx, transfer.ID, deductionID); err != nil {
		return err
	}
	transfer.CreditsDeductionID = &deductionID
	metrics.CreditsReservations.Inc()
	return nil
}
