package blockchains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropforge/nft-hub/internal/domain"
)

func TestSolanaEventVariants(t *testing.T) {
	cases := []struct {
		op       Operation
		dropType domain.DropType
		want     domain.EventType
	}{
		{OpCreateDrop, domain.DropTypeEdition, domain.EventSolanaCreateEditionDrop},
		{OpCreateDrop, domain.DropTypeOpen, domain.EventSolanaCreateOpenDrop},
		{OpRetryDrop, domain.DropTypeEdition, domain.EventSolanaRetryEditionDrop},
		{OpRetryDrop, domain.DropTypeOpen, domain.EventSolanaRetryOpenDrop},
		{OpUpdateDrop, domain.DropTypeOpen, domain.EventSolanaUpdateOpenDrop},
		{OpMintDrop, domain.DropTypeEdition, domain.EventSolanaMintEditionDrop},
		{OpMintDrop, domain.DropTypeOpen, domain.EventSolanaMintOpenDrop},
		{OpRetryMintDrop, domain.DropTypeOpen, domain.EventSolanaRetryMintOpenDrop},
		{OpCreateCollection, domain.DropTypeEdition, domain.EventSolanaCreateCollection},
		{OpMintToCollection, domain.DropTypeEdition, domain.EventSolanaMintToCollection},
		{OpUpdateMint, domain.DropTypeEdition, domain.EventSolanaUpdatedCollectionMint},
		{OpTransfer, domain.DropTypeEdition, domain.EventSolanaTransferAsset},
		{OpSwitchCollection, domain.DropTypeEdition, domain.EventSolanaSwitchMintCollection},
		{OpImportCollection, domain.DropTypeEdition, domain.EventSolanaImportCollection},
	}

	var adapter solanaAdapter
	for _, c := range cases {
		got, err := adapter.EventType(c.op, c.dropType)
		require.NoError(t, err, "%s/%s", c.op, c.dropType)
		assert.Equal(t, c.want, got)
	}
}

func TestPolygonEventVariants(t *testing.T) {
	var adapter polygonAdapter

	got, err := adapter.EventType(OpCreateDrop, domain.DropTypeEdition)
	require.NoError(t, err)
	assert.Equal(t, domain.EventPolygonCreateEditionDrop, got)

	got, err = adapter.EventType(OpTransfer, domain.DropTypeEdition)
	require.NoError(t, err)
	assert.Equal(t, domain.EventPolygonTransferAsset, got)

	_, err = adapter.EventType(OpCreateDrop, domain.DropTypeOpen)
	assert.ErrorIs(t, err, domain.ErrBlockchainNotSupported)

	_, err = adapter.EventType(OpCreateCollection, domain.DropTypeEdition)
	assert.ErrorIs(t, err, domain.ErrBlockchainNotSupported)

	_, err = adapter.EventType(OpSwitchCollection, domain.DropTypeEdition)
	assert.ErrorIs(t, err, domain.ErrBlockchainNotSupported)
}

func TestRegistryRejectsUnknownChain(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.EventType(domain.Blockchain("near"), OpCreateDrop, domain.DropTypeEdition)
	assert.ErrorIs(t, err, domain.ErrBlockchainNotSupported)
}
