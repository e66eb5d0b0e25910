// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EventsPublished counts outbound NFT events by chain and type
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nft_hub_events_published_total",
		Help: "Outbound NFT events published to the bus",
	}, []string{"blockchain", "event_type"})

	// EventsConsumed counts inbound treasury events by type
	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nft_hub_treasury_events_consumed_total",
		Help: "Inbound treasury events consumed from the bus",
	}, []string{"event_type"})

	// CreditsReservations counts successful pending deductions
	CreditsReservations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nft_hub_credits_reservations_total",
		Help: "Credit deductions reserved",
	})

	// UploadsCompleted counts successful metadata uploads
	UploadsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nft_hub_metadata_uploads_total",
		Help: "Metadata JSON documents uploaded",
	})

	// JobsCompleted / JobsFailed / JobsRequeued track the durable job runner
	JobsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nft_hub_metadata_jobs_completed_total",
		Help: "Metadata jobs completed",
	})
	JobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nft_hub_metadata_jobs_failed_total",
		Help: "Metadata jobs permanently failed",
	})
	JobsRequeued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nft_hub_metadata_jobs_requeued_total",
		Help: "Metadata jobs requeued after a transient failure",
	})

	// JobDuration observes end-to-end job execution time
	JobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nft_hub_metadata_job_duration_seconds",
		Help:    "Duration of metadata job execution",
		Buckets: prometheus.DefBuckets,
	})

	// MintDuration observes the synchronous part of mint mutations
	MintDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nft_hub_mint_pipeline_duration_seconds",
		Help:    "Duration of the synchronous mint write path",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler returns the Prometheus text exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
