package graphql

import (
	"context"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	apierrors "github.com/dropforge/nft-hub/internal/api/shared/errors"
	"github.com/dropforge/nft-hub/internal/logger"
)

// ErrorPresenter formats errors in a consistent way. Service-layer sentinels
// are translated into APIErrors first, so resolvers can return them as-is.
// This function is called by gqlgen for every error
func ErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	// Convert to gqlerror if not already
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		gqlErr = &gqlerror.Error{
			Message: err.Error(),
		}
	}

	err = apierrors.FromDomain(err)

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case apierrors.ErrCodeInternalError, apierrors.ErrCodeServiceError, apierrors.ErrCodeDatabaseError:
			return handleInternalError(ctx, err)
		case apierrors.ErrCodeNotFound:
			return handleNotFoundError(err)
		default:
			gqlErr.Message = apiErr.Message
			gqlErr.Extensions = map[string]interface{}{
				"code":    string(apiErr.Code),
				"message": apiErr.Message,
			}
			if apiErr.Details != "" {
				gqlErr.Extensions["details"] = apiErr.Details
			}
		}
	} else {
		// For unknown errors, log them and return a generic internal error
		return handleInternalError(ctx, err)
	}

	return gqlErr
}

// handleInternalError handles internal errors and returns a gqlerror.Error
func handleInternalError(ctx context.Context, err error) *gqlerror.Error {
	logger.ErrorCtx(ctx, err, zap.String("error", "Unhandled GraphQL error"))
	return &gqlerror.Error{
		Message: "Internal server error",
		Extensions: map[string]interface{}{
			"code":    string(apierrors.ErrCodeInternalError),
			"message": "Internal server error",
		},
	}
}

// handleNotFoundError handles not found errors and returns a gqlerror.Error
func handleNotFoundError(err error) *gqlerror.Error {
	return &gqlerror.Error{
		Message: "Not found",
		Extensions: map[string]interface{}{
			"code":    string(apierrors.ErrCodeNotFound),
			"message": err.Error(),
		},
	}
}

// RecoverFunc handles panics in resolvers
func RecoverFunc(ctx context.Context, err interface{}) error {
	logger.ErrorCtx(ctx, fmt.Errorf("panic: %v", err), zap.Any("panic", err))
	return apierrors.NewInternalError("Internal server error")
}
