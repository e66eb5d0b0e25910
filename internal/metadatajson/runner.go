package metadatajson

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/dropforge/nft-hub/internal/adapter"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/metrics"
	"github.com/dropforge/nft-hub/internal/store"
	"github.com/dropforge/nft-hub/internal/store/schema"
	"github.com/dropforge/nft-hub/internal/uploads"
)

// Job fetch policy: batches of up to 16 unstarted jobs, exponential backoff
// from 500ms, 5 attempts per round.
const (
	fetchBatchSize     = 16
	fetchMinInterval   = 500 * time.Millisecond
	fetchMaxAttempts   = 5
	idlePollInterval   = 30 * time.Second
	wakeChannelName    = "metadata_json_jobs:wake"
	defaultPoolWorkers = 8
)

// Dispatcher resumes the mutation tail (credits + event emission) once a
// job's document has been uploaded. Implemented by the mutation layer and
// injected at wiring time.
type Dispatcher interface {
	Dispatch(ctx context.Context, cont *Continuation, result *uploads.Result) error
}

// Runner drains the durable metadata_json_jobs table. The table is
// authoritative; the refresh channel and the Redis wake-up subscription only
// shorten the time until a sleeping runner polls again.
type Runner struct {
	store    store.Store
	uploader uploads.Client
	dispatch Dispatcher
	redis    adapter.RedisClient
	clock    adapter.Clock
	pool     pond.Pool

	mu      sync.Mutex
	started map[int64]struct{}
	refresh chan struct{}
}

// NewRunner creates a job runner. redis may be nil when no cross-process
// wake-up is configured.
func NewRunner(st store.Store, uploader uploads.Client, dispatch Dispatcher, redis adapter.RedisClient, workers int) *Runner {
	if workers <= 0 {
		workers = defaultPoolWorkers
	}
	return &Runner{
		store:    st,
		uploader: uploader,
		dispatch: dispatch,
		redis:    redis,
		clock:    adapter.NewClock(),
		pool:     pond.NewPool(workers),
		started:  make(map[int64]struct{}),
		refresh:  make(chan struct{}, 1),
	}
}

// EnqueueUpload persists an upload job and nudges the runner.
func (r *Runner) EnqueueUpload(ctx context.Context, json *schema.MetadataJson, cont Continuation) error {
	raw, err := cont.Marshal()
	if err != nil {
		return err
	}
	jsonID := json.ID
	job := &schema.MetadataJsonJob{
		JobType:        schema.MetadataJsonJobUpload,
		MetadataJsonID: &jsonID,
		Continuation:   raw,
	}
	if err := r.store.CreateMetadataJsonJob(ctx, job); err != nil {
		return err
	}
	r.Notify(ctx)
	return nil
}

// Notify wakes the local runner and, when Redis is wired, runners in other
// processes.
func (r *Runner) Notify(ctx context.Context) {
	select {
	case r.refresh <- struct{}{}:
	default:
	}
	if r.redis != nil {
		if err := r.redis.Publish(ctx, wakeChannelName, "refresh"); err != nil {
			logger.WarnCtx(ctx, "failed to publish job wake-up", zap.Error(err))
		}
	}
}

// Run loops until ctx is cancelled: fetch a batch, hand unseen jobs to the
// pool, then block until new work is signalled or the idle poll fires.
func (r *Runner) Run(ctx context.Context) error {
	var wake <-chan string
	if r.redis != nil {
		var closeSub func() error
		wake, closeSub = r.redis.Subscribe(ctx, wakeChannelName)
		defer closeSub() //nolint:errcheck
	}

	for {
		jobs, err := r.fetchJobs(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.ErrorCtx(ctx, err)
		}

		for _, job := range jobs {
			job := job
			if !r.markStarted(job.ID) {
				continue
			}
			if err := r.store.SetJobTrackingStatus(ctx, job.ID, schema.JobTrackingProcessing); err != nil {
				logger.ErrorCtx(ctx, err, zap.Int64("job_id", job.ID))
			}
			r.pool.Submit(func() {
				r.runJob(ctx, &job)
			})
		}

		select {
		case <-ctx.Done():
			r.pool.StopAndWait()
			return ctx.Err()
		case <-r.refresh:
		case <-wake:
		case <-r.clock.After(idlePollInterval):
		}
	}
}

// fetchJobs reads the next batch with bounded backoff.
func (r *Runner) fetchJobs(ctx context.Context) ([]schema.MetadataJsonJob, error) {
	var jobs []schema.MetadataJsonJob
	operation := func() error {
		var err error
		jobs, err = r.store.GetUnstartedJobs(ctx, fetchBatchSize)
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = fetchMinInterval
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, fetchMaxAttempts-1), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	return jobs, nil
}

// markStarted records the job in the per-process started set; a job runs at
// most once per process lifetime.
func (r *Runner) markStarted(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, seen := r.started[id]; seen {
		return false
	}
	r.started[id] = struct{}{}
	return true
}

var errDownloadNotImplemented = errors.New("download jobs are not implemented")

// runJob executes one job end to end: load the document, upload it, persist
// the result, dispatch the caller tail. Failures requeue the tracking row
// for another process; undecodable jobs are marked failed.
func (r *Runner) runJob(ctx context.Context, job *schema.MetadataJsonJob) {
	timer := prometheus.NewTimer(metrics.JobDuration)
	defer timer.ObserveDuration()

	err := r.executeJob(ctx, job)
	switch {
	case err == nil:
		metrics.JobsCompleted.Inc()
		if err := r.store.SetJobTrackingStatus(ctx, job.ID, schema.JobTrackingCompleted); err != nil {
			logger.ErrorCtx(ctx, err, zap.Int64("job_id", job.ID))
		}
	case errors.Is(err, errDownloadNotImplemented),
		errors.Is(err, errJobCorrupt),
		errors.Is(err, domain.ErrEntityNotFound):
		metrics.JobsFailed.Inc()
		logger.ErrorCtx(ctx, err, zap.Int64("job_id", job.ID))
		if err := r.store.MarkJobFailed(ctx, job.ID); err != nil {
			logger.ErrorCtx(ctx, err, zap.Int64("job_id", job.ID))
		}
	default:
		metrics.JobsRequeued.Inc()
		logger.WarnCtx(ctx, "job failed, requeueing",
			zap.Int64("job_id", job.ID), zap.Error(err))
		if err := r.store.SetJobTrackingStatus(ctx, job.ID, schema.JobTrackingQueued); err != nil {
			logger.ErrorCtx(ctx, err, zap.Int64("job_id", job.ID))
		}
	}
}

var errJobCorrupt = errors.New("job row is not runnable")

func (r *Runner) executeJob(ctx context.Context, job *schema.MetadataJsonJob) error {
	if job.JobType == schema.MetadataJsonJobDownload {
		return errDownloadNotImplemented
	}
	if job.MetadataJsonID == nil {
		return fmt.Errorf("%w: upload job %d has no metadata_json_id", errJobCorrupt, job.ID)
	}

	row, err := r.store.GetMetadataJsonByID(ctx, *job.MetadataJsonID)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("%w: metadata json %s is gone", errJobCorrupt, job.MetadataJsonID)
	}

	result, err := r.uploader.UploadJSON(ctx, row.ID.String()+".json", UploadPayload(row))
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	metrics.UploadsCompleted.Inc()

	if err := r.store.SetMetadataUploadResult(ctx, row.ID, result.URI, result.CID); err != nil {
		return err
	}

	cont, err := ParseContinuation(job)
	if err != nil {
		return fmt.Errorf("%w: %v", errJobCorrupt, err)
	}
	return r.dispatch.Dispatch(ctx, cont, result)
}
