// Package dataloader provides per-request DataLoaders that batch the lookups
// REST list handlers make for related records. Loaders call repositories
// directly, bypassing the service layer. Ownership is enforced in SQL by
// passing the caller's user ID to every batch query.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type companyRepo interface {
	GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Company, error)
}

type customerRepo interface {
	GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]domain.Customer, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Company  companyRepo
	Customer customerRepo
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	CompanyByID  *dataloader.Loader[uuid.UUID, *domain.Company]
	CustomerByID *dataloader.Loader[uuid.UUID, *domain.Customer]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		CompanyByID:  newLoader(newOwnedBatchFn(repos.Company.GetByIDs, companyID)),
		CustomerByID: newLoader(newOwnedBatchFn(repos.Customer.GetByIDs, customerID)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Returns nil when the middleware is not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
