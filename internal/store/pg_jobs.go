package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dropforge/nft-hub/internal/store/schema"
)

// CreateMetadataJsonJob inserts the durable job row together with its
// tracking record, both starting in the queued state.
func (s *pgStore) CreateMetadataJsonJob(ctx context.Context, job *schema.MetadataJsonJob) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		tracking := schema.JobTracking{
			ID:     job.ID,
			Status: schema.JobTrackingQueued,
		}
		return tx.Create(&tracking).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create metadata json job: %w", err)
	}
	return nil
}

// GetUnstartedJobs returns up to limit jobs whose tracking row is still
// queued, oldest first.
func (s *pgStore) GetUnstartedJobs(ctx context.Context, limit int) ([]schema.MetadataJsonJob, error) {
	var jobs []schema.MetadataJsonJob
	err := s.db.WithContext(ctx).
		Joins("JOIN job_trackings ON job_trackings.id = metadata_json_jobs.id").
		Where("job_trackings.status = ? AND metadata_json_jobs.failed = false", schema.JobTrackingQueued).
		Order("metadata_json_jobs.id").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get unstarted jobs: %w", err)
	}
	return jobs, nil
}

func (s *pgStore) SetJobTrackingStatus(ctx context.Context, jobID int64, status schema.JobTrackingStatus) error {
	err := s.db.WithContext(ctx).Model(&schema.JobTracking{}).
		Where("id = ?", jobID).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update job tracking: %w", err)
	}
	return nil
}

// MarkJobFailed flags the job permanently failed and completes its tracking
// row so the fetch loop stops returning it.
func (s *pgStore) MarkJobFailed(ctx context.Context, jobID int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&schema.MetadataJsonJob{}).
			Where("id = ?", jobID).
			Update("failed", true).Error; err != nil {
			return err
		}
		return tx.Model(&schema.JobTracking{}).
			Where("id = ?", jobID).
			Update("status", schema.JobTrackingFailed).Error
	})
	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	return nil
}
