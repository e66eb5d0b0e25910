package schema

import "github.com/dropforge/nft-hub/internal/domain"

// normalizeAddressPtr lower-cases EVM addresses in place; nil and Solana
// addresses pass through. All address-bearing models route their save hooks
// through here so the canonical form is enforced in one spot.
func normalizeAddressPtr(address *string) {
	if address == nil {
		return
	}
	*address = domain.NormalizeAddress(*address)
}
