package graphql

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/dropforge/nft-hub/internal/adapter"
	"github.com/dropforge/nft-hub/internal/api/graphql/dataloaders"
	"github.com/dropforge/nft-hub/internal/api/middleware"
	"github.com/dropforge/nft-hub/internal/logger"
	"github.com/dropforge/nft-hub/internal/mutations"
	"github.com/dropforge/nft-hub/internal/store"
)

// Handler defines the interface for GraphQL API handlers
type Handler interface {
	// HandleGraphQL handles GraphQL requests
	HandleGraphQL(c *gin.Context)

	// HandlePlayground serves the GraphQL Playground
	HandlePlayground(c *gin.Context)
}

// gqlHandler implements the Handler interface using gqlgen
type gqlHandler struct {
	store  store.Store
	server *handler.Server
}

// NewHandler creates a new GraphQL handler with gqlgen
func NewHandler(st store.Store, svc *mutations.Service) (Handler, error) {
	resolver := NewResolver(st, svc, adapter.NewClock())

	// Create executable schema
	config := Config{Resolvers: resolver}
	schema := NewExecutableSchema(config)

	// Create gqlgen server with custom error presenter
	srv := handler.NewDefaultServer(schema)
	srv.SetErrorPresenter(ErrorPresenter)
	srv.SetRecoverFunc(RecoverFunc)

	h := &gqlHandler{
		store:  st,
		server: srv,
	}

	// Fresh dataloaders per operation, identity required for mutations
	srv.AroundOperations(h.operationMiddleware)

	return h, nil
}

// operationMiddleware prepares the per-operation context: it injects a fresh
// dataloader bundle and, for mutations, requires the gateway identity
// headers to be present and well formed.
func (h *gqlHandler) operationMiddleware(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	ctx = dataloaders.Inject(ctx, h.store)

	opctx := graphql.GetOperationContext(ctx)
	if opctx.Operation != nil && opctx.Operation.Operation == ast.Mutation {
		if _, err := middleware.IdentityFromContext(ctx); err != nil {
			// the gin middleware leaves identity unset when headers are
			// missing; reject the mutation before any resolver runs
			logger.WarnCtx(ctx, "GraphQL mutation without identity headers",
				zap.String("operation", opctx.Operation.Name),
			)
			return func(ctx context.Context) *graphql.Response {
				return graphql.ErrorResponse(ctx, "Identity headers required for mutations")
			}
		}
	}

	return next(ctx)
}

// HandleGraphQL processes GraphQL queries and mutations
func (h *gqlHandler) HandleGraphQL(c *gin.Context) {
	h.server.ServeHTTP(c.Writer, c.Request)
}

// HandlePlayground serves the GraphQL Playground interface
func (h *gqlHandler) HandlePlayground(c *gin.Context) {
	playground.Handler("NFT Hub GraphQL Playground", "/graphql").ServeHTTP(c.Writer, c.Request)
}

// SetupRoutes configures GraphQL API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// GraphQL endpoint (POST for queries/mutations)
	router.POST("/graphql", handler.HandleGraphQL)

	// GraphQL Playground (GET for interactive IDE)
	router.GET("/graphql", handler.HandlePlayground)
}
