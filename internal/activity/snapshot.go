package activity

import (
	"context"
	"errors"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// LoadSnapshot adapts a repository getter into a Mutation.Previous loader.
// domain.ErrNotFound yields a nil snapshot so the mutation still runs and
// its own error is recorded.
func LoadSnapshot[T any](get func(ctx context.Context) (T, error)) func(ctx context.Context) (domain.Snapshot, error) {
	return func(ctx context.Context) (domain.Snapshot, error) {
		v, err := get(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return domain.SnapshotOf(v)
	}
}

// ResultSnapshot is a Mutation.Current extractor that snapshots the result.
func ResultSnapshot[T any](_ context.Context, result T) (domain.Snapshot, error) {
	return domain.SnapshotOf(result)
}
