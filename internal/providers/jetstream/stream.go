package jetstream

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// streamConfig is the shared stream shape for the NFT and treasury streams:
// file-backed, deduping on Nats-Msg-Id within the duplicate window.
func streamConfig(name string, subjects []string) jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:       name,
		Subjects:   subjects,
		Storage:    jetstream.FileStorage,
		Retention:  jetstream.LimitsPolicy,
		Duplicates: 2 * time.Minute,
	}
}
