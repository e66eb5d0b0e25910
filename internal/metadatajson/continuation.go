package metadatajson

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/dropforge/nft-hub/internal/store/schema"
)

// Caller identifies which mutation enqueued the upload; the dispatcher
// resumes the credits/emit tail of that mutation once the document landed.
type Caller string

const (
	CallerCreateDrop       Caller = "CreateDrop"
	CallerPatchDrop        Caller = "PatchDrop"
	CallerCreateCollection Caller = "CreateCollection"
	CallerPatchCollection  Caller = "PatchCollection"
	CallerMintToCollection Caller = "MintToCollection"
	CallerQueueMintToDrop  Caller = "QueueMintToDrop"
	CallerUpdateMint       Caller = "UpdateMint"
)

// Continuation is the durable payload of an upload job: the caller variant
// with the ids and identity needed to finish the pipeline after a restart.
type Continuation struct {
	Caller         Caller    `json:"caller"`
	EntityID       uuid.UUID `json:"entity_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	UserID         uuid.UUID `json:"user_id"`
	Balance        uint64    `json:"balance"`
	// Recipient is set for mint callers
	Recipient string `json:"recipient,omitempty"`
	// DropID is set when the entity is a mint queued against a drop
	DropID uuid.UUID `json:"drop_id,omitempty"`
	// Retry marks a retry_* mutation; the dispatcher picks the retry event variant
	Retry bool `json:"retry,omitempty"`
}

// Marshal encodes the continuation for the jsonb column.
func (c Continuation) Marshal() (datatypes.JSON, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal continuation: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// ParseContinuation decodes a job's continuation column.
func ParseContinuation(job *schema.MetadataJsonJob) (*Continuation, error) {
	if len(job.Continuation) == 0 {
		return nil, fmt.Errorf("job %d has no continuation", job.ID)
	}
	var c Continuation
	if err := json.Unmarshal(job.Continuation, &c); err != nil {
		return nil, fmt.Errorf("failed to parse continuation of job %d: %w", job.ID, err)
	}
	return &c, nil
}
