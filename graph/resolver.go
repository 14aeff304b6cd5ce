// Package graph provides GraphQL resolvers for the village-api.
package graph

import (
	"context"

	"go.uber.org/zap"

	"github.com/nucleus/village-api/internal/database"
	"github.com/nucleus/village-api/internal/logging"
)

// Store is the storage surface the resolvers depend on. *database.Client
// implements it.
type Store interface {
	ListVillages(ctx context.Context) ([]*database.Village, error)
	GetVillageDetails(ctx context.Context, id int64) (*database.VillageDetails, error)
	InsertVillage(ctx context.Context, in database.NewVillage) (int64, error)
	UpdateVillage(ctx context.Context, id int64, set database.UpdateSet) (*database.Village, error)
	UpdateDemographics(ctx context.Context, id int64, d database.Demographics) (*database.Village, error)
	DeleteVillage(ctx context.Context, id int64) (int64, error)
}

// Resolver is the root resolver for GraphQL queries and mutations.
type Resolver struct {
	db  Store
	log *zap.Logger
}

// NewResolver creates a new resolver with the given dependencies.
func NewResolver(db Store, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		db:  db,
		log: logger,
	}
}

// logger returns the request-scoped logger when the transport attached one.
func (r *Resolver) logger(ctx context.Context) *zap.Logger {
	return logging.FromContext(ctx, r.log)
}

// fail logs err once at the resolver boundary and hands it back unchanged so
// the executor can read its extensions.
func (r *Resolver) fail(ctx context.Context, field string, err error) error {
	l := r.logger(ctx).With(zap.String("field", field), zap.Error(err))
	switch err.(type) {
	case *ValidationError:
		l.Warn("graphql: invalid request")
	default:
		l.Error("graphql: resolver failed")
	}
	return err
}
