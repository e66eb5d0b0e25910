package blockchains

import (
	"fmt"

	"github.com/dropforge/nft-hub/internal/domain"
)

type polygonAdapter struct{}

// EventType covers the Polygon subset: edition drops on an ERC-1155
// contract, mints against them, and transfers. Everything else is rejected.
func (polygonAdapter) EventType(op Operation, dropType domain.DropType) (domain.EventType, error) {
	if dropType == domain.DropTypeOpen {
		return "", fmt.Errorf("%w: polygon does not support open drops", domain.ErrBlockchainNotSupported)
	}

	switch op {
	case OpCreateDrop:
		return domain.EventPolygonCreateEditionDrop, nil
	case OpRetryDrop:
		return domain.EventPolygonRetryEditionDrop, nil
	case OpUpdateDrop:
		return domain.EventPolygonUpdateEditionDrop, nil
	case OpMintDrop:
		return domain.EventPolygonMintEditionDrop, nil
	case OpRetryMintDrop:
		return domain.EventPolygonRetryMintDrop, nil
	case OpTransfer:
		return domain.EventPolygonTransferAsset, nil
	}
	return "", fmt.Errorf("%w: polygon does not support %s", domain.ErrBlockchainNotSupported, op)
}
