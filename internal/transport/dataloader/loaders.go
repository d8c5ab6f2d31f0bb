package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
)

// newCountBatchFn counts records per campaign for the requesting user.
// Campaigns without records resolve to 0.
func newCountBatchFn(repo countRepo) dataloader.BatchFunc[string, int] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[int] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[int](len(keys), domain.ErrUnauthenticated)
		}

		counts, err := repo.CountByCampaigns(ctx, userID, keys)
		if err != nil {
			return errorResults[int](len(keys), err)
		}

		return mapResults(keys, counts, func() int { return 0 })
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

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []string, grouped map[string]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}
