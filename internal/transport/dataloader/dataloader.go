// Package dataloader provides per-request DataLoaders that batch the
// per-campaign count queries of the overview endpoint into single SQL calls.
// DataLoaders call repositories directly, bypassing the service layer.
// Authorization is ensured via SQL (WHERE owner_id filters in repo queries).
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// countRepo is implemented by every repository that can count its records
// grouped by campaign.
type countRepo interface {
	CountByCampaigns(ctx context.Context, ownerID string, campaignIDs []string) (map[string]int, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	NPC      countRepo
	Location countRepo
}

// Loaders contains the per-request DataLoader instances.
type Loaders struct {
	NPCCountByCampaign      *dataloader.Loader[string, int]
	LocationCountByCampaign *dataloader.Loader[string, int]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		NPCCountByCampaign:      newLoader(newCountBatchFn(repos.NPC)),
		LocationCountByCampaign: newLoader(newCountBatchFn(repos.Location)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
