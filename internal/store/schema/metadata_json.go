package schema

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MetadataJson represents the metadata_jsons table. The id is the owning
// collection id or mint id; uri and identifier are filled in by the uploader.
type MetadataJson struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name         string    `gorm:"column:name;not null;type:text"`
	Symbol       string    `gorm:"column:symbol;not null;type:text"`
	Description  string    `gorm:"column:description;not null;type:text"`
	Image        string    `gorm:"column:image;not null;type:text"`
	AnimationURL *string   `gorm:"column:animation_url;type:text"`
	ExternalURL  *string   `gorm:"column:external_url;type:text"`
	// URI is the canonical IPFS URL after upload
	URI *string `gorm:"column:uri;type:text"`
	// Identifier is the content CID returned by the upload service
	Identifier *string `gorm:"column:identifier;type:text"`

	Attributes []MetadataJsonAttribute `gorm:"foreignKey:MetadataJsonID;constraint:OnDelete:CASCADE"`
	Files      []MetadataJsonFile      `gorm:"foreignKey:MetadataJsonID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the MetadataJson model
func (MetadataJson) TableName() string {
	return "metadata_jsons"
}

// MetadataJsonAttribute is one trait_type/value pair of a metadata document.
type MetadataJsonAttribute struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	MetadataJsonID uuid.UUID `gorm:"column:metadata_json_id;type:uuid;not null;index:idx_metadata_json_attributes_json_id"`
	TraitType      string    `gorm:"column:trait_type;not null;type:text"`
	Value          string    `gorm:"column:value;not null;type:text"`
}

// TableName specifies the table name for the MetadataJsonAttribute model
func (MetadataJsonAttribute) TableName() string {
	return "metadata_json_attributes"
}

// MetadataJsonFile is an auxiliary file reference of a metadata document.
type MetadataJsonFile struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	MetadataJsonID uuid.UUID `gorm:"column:metadata_json_id;type:uuid;not null;index:idx_metadata_json_files_json_id"`
	URI            string    `gorm:"column:uri;not null;type:text"`
	FileType       *string   `gorm:"column:file_type;type:text"`
}

// TableName specifies the table name for the MetadataJsonFile model
func (MetadataJsonFile) TableName() string {
	return "metadata_json_files"
}

// MetadataJsonUpload records a completed upload of a metadata document.
type MetadataJsonUpload struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	URI        string    `gorm:"column:uri;not null;type:text"`
	Identifier string    `gorm:"column:identifier;not null;type:text"`
}

// TableName specifies the table name for the MetadataJsonUpload model
func (MetadataJsonUpload) TableName() string {
	return "metadata_json_uploads"
}

// MetadataJsonJobType discriminates durable metadata jobs.
type MetadataJsonJobType string

const (
	MetadataJsonJobUpload   MetadataJsonJobType = "upload"
	MetadataJsonJobDownload MetadataJsonJobType = "download"
)

// MetadataJsonJob represents the metadata_json_jobs table - a durable record
// of an upload/download intent. Continuation carries the caller payload so
// the pipeline can resume after a restart.
type MetadataJsonJob struct {
	ID             int64               `gorm:"column:id;primaryKey;autoIncrement"`
	JobType        MetadataJsonJobType `gorm:"column:job_type;not null;type:text"`
	Failed         bool                `gorm:"column:failed;not null;default:false"`
	URL            *string             `gorm:"column:url;type:text"`
	MetadataJsonID *uuid.UUID          `gorm:"column:metadata_json_id;type:uuid"`
	Continuation   datatypes.JSON      `gorm:"column:continuation;type:jsonb"`
}

// TableName specifies the table name for the MetadataJsonJob model
func (MetadataJsonJob) TableName() string {
	return "metadata_json_jobs"
}

// JobTrackingStatus is the lifecycle of a tracked background job.
type JobTrackingStatus string

const (
	JobTrackingQueued     JobTrackingStatus = "queued"
	JobTrackingProcessing JobTrackingStatus = "processing"
	JobTrackingCompleted  JobTrackingStatus = "completed"
	JobTrackingFailed     JobTrackingStatus = "failed"
)

// JobTracking represents the job_trackings table, keyed by the monotonic job
// id it tracks.
type JobTracking struct {
	ID      int64             `gorm:"column:id;primaryKey"`
	Status  JobTrackingStatus `gorm:"column:status;not null;type:text"`
	Payload datatypes.JSON    `gorm:"column:payload;type:jsonb"`
}

// TableName specifies the table name for the JobTracking model
func (JobTracking) TableName() string {
	return "job_trackings"
}
