package middleware

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/mutations"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const IDENTITY_KEY contextKey = "identity"

// Identity headers are set by the API gateway after it authenticates the
// caller; this service trusts them as-is.
const (
	HeaderUserID        = "X-USER-ID"
	HeaderOrganization  = "X-ORGANIZATION-ID"
	HeaderCreditBalance = "X-CREDIT-BALANCE"
)

// ParseIdentity extracts the caller identity from request headers. All three
// headers are required; the gateway always forwards the caller's balance.
func ParseIdentity(get func(string) string) (mutations.Identity, error) {
	var ident mutations.Identity

	userHeader := get(HeaderUserID)
	orgHeader := get(HeaderOrganization)
	balanceHeader := get(HeaderCreditBalance)
	if userHeader == "" || orgHeader == "" || balanceHeader == "" {
		return ident, domain.ErrIdentityMissing
	}

	userID, err := uuid.Parse(userHeader)
	if err != nil {
		return ident, fmt.Errorf("%w: malformed %s", domain.ErrIdentityMissing, HeaderUserID)
	}
	orgID, err := uuid.Parse(orgHeader)
	if err != nil {
		return ident, fmt.Errorf("%w: malformed %s", domain.ErrIdentityMissing, HeaderOrganization)
	}

	balance, err := strconv.ParseUint(balanceHeader, 10, 64)
	if err != nil {
		return ident, fmt.Errorf("%w: malformed %s", domain.ErrIdentityMissing, HeaderCreditBalance)
	}

	ident.UserID = userID
	ident.OrganizationID = orgID
	ident.Balance = balance

	return ident, nil
}

// Identity returns a gin middleware that propagates the caller identity into
// the request context. Requests without identity headers pass through;
// mutations resolve the missing identity when they look it up.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := ParseIdentity(c.GetHeader)
		if err == nil {
			ctx := WithIdentity(c.Request.Context(), ident)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// WithIdentity stores the caller identity in the context
func WithIdentity(ctx context.Context, ident mutations.Identity) context.Context {
	return context.WithValue(ctx, IDENTITY_KEY, ident)
}

// IdentityFromContext returns the caller identity stored by the middleware
func IdentityFromContext(ctx context.Context) (mutations.Identity, error) {
	ident, ok := ctx.Value(IDENTITY_KEY).(mutations.Identity)
	if !ok {
		return mutations.Identity{}, domain.ErrIdentityMissing
	}
	return ident, nil
}
