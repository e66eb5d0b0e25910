package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/config"
)

func TestLoadAPIConfigFromEnv(t *testing.T) {
	t.Setenv("NFT_HUB_DATABASE_HOST", "db.internal")
	t.Setenv("NFT_HUB_DATABASE_DBNAME", "nft_hub")
	t.Setenv("NFT_HUB_DATABASE_PASSWORD", "secret")
	t.Setenv("NFT_HUB_NATS_URL", "nats://bus.internal:4222")
	t.Setenv("NFT_HUB_SERVER_PORT", "9090")

	cfg, err := config.LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "nft_hub", cfg.Database.DBName)
	assert.Equal(t, "nats://bus.internal:4222", cfg.NATS.URL)
	assert.Equal(t, 9090, cfg.Server.Port)

	// defaults fill the rest
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "NFT_EVENTS", cfg.NATS.StreamName)
	assert.Equal(t, "hub", cfg.Uploads.Provider)
	assert.Equal(t, 8, cfg.Worker.PoolSize)
}

func TestLoadAPIConfigRequiresDatabase(t *testing.T) {
	t.Setenv("NFT_HUB_DATABASE_HOST", "")
	t.Setenv("NFT_HUB_DATABASE_DBNAME", "")

	_, err := config.LoadAPIConfig("", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
}

func TestLoadEventProcessorConfigDefaults(t *testing.T) {
	t.Setenv("NFT_HUB_DATABASE_HOST", "db.internal")
	t.Setenv("NFT_HUB_DATABASE_DBNAME", "nft_hub")

	cfg, err := config.LoadEventProcessorConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "TREASURY_EVENTS", cfg.NATS.StreamName)
	assert.Equal(t, "nft-hub-event-processor", cfg.NATS.ConsumerName)
	assert.Equal(t, 5, cfg.NATS.MaxDeliver)
	assert.Equal(t, "30s", cfg.NATS.AckWait.String())
}

func TestDatabaseDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "hub",
		Password: "secret",
		DBName:   "nft_hub",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=hub password=secret dbname=nft_hub sslmode=disable",
		cfg.DSN(),
	)
}
