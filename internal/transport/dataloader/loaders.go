package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/pkg/ctxutil"
)

func companyID(c domain.Company) uuid.UUID   { return c.ID }
func customerID(c domain.Customer) uuid.UUID { return c.ID }

// newOwnedBatchFn builds a batch function for records looked up by ID within
// the caller's ownership scope. Keys without a visible record resolve to nil.
func newOwnedBatchFn[T any](
	fetch func(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]T, error),
	idOf func(T) uuid.UUID,
) dataloader.BatchFunc[uuid.UUID, *T] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*T] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[*T](len(keys), domain.ErrUnauthorized)
		}

		rows, err := fetch(ctx, userID, keys)
		if err != nil {
			return errorResults[*T](len(keys), err)
		}

		byID := make(map[uuid.UUID]*T, len(rows))
		for i := range rows {
			row := rows[i]
			byID[idOf(row)] = &row
		}

		results := make([]*dataloader.Result[*T], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*T]{Data: byID[key]}
		}
		return results
	}
}

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
