package blockchains

import (
	"fmt"

	"github.com/dropforge/nft-hub/internal/domain"
)

type solanaAdapter struct{}

// EventType implements the full variant table for Solana.
func (solanaAdapter) EventType(op Operation, dropType domain.DropType) (domain.EventType, error) {
	open := dropType == domain.DropTypeOpen

	switch op {
	case OpCreateDrop:
		if open {
			return domain.EventSolanaCreateOpenDrop, nil
		}
		return domain.EventSolanaCreateEditionDrop, nil
	case OpRetryDrop:
		if open {
			return domain.EventSolanaRetryOpenDrop, nil
		}
		return domain.EventSolanaRetryEditionDrop, nil
	case OpUpdateDrop:
		if open {
			return domain.EventSolanaUpdateOpenDrop, nil
		}
		return domain.EventSolanaUpdateEditionDrop, nil
	case OpMintDrop:
		if open {
			return domain.EventSolanaMintOpenDrop, nil
		}
		return domain.EventSolanaMintEditionDrop, nil
	case OpRetryMintDrop:
		if open {
			return domain.EventSolanaRetryMintOpenDrop, nil
		}
		return domain.EventSolanaRetryMintEditionDrop, nil
	case OpCreateCollection:
		return domain.EventSolanaCreateCollection, nil
	case OpRetryCollection:
		return domain.EventSolanaRetryCreateCollection, nil
	case OpUpdateCollection:
		return domain.EventSolanaUpdateCollection, nil
	case OpMintToCollection:
		return domain.EventSolanaMintToCollection, nil
	case OpRetryMintToCollection:
		return domain.EventSolanaRetryMintToCollection, nil
	case OpUpdateMint:
		return domain.EventSolanaUpdatedCollectionMint, nil
	case OpRetryUpdateMint:
		return domain.EventSolanaRetryUpdatedCollectionMint, nil
	case OpTransfer:
		return domain.EventSolanaTransferAsset, nil
	case OpSwitchCollection:
		return domain.EventSolanaSwitchMintCollection, nil
	case OpImportCollection:
		return domain.EventSolanaImportCollection, nil
	}
	return "", fmt.Errorf("%w: solana does not support %s", domain.ErrBlockchainNotSupported, op)
}
