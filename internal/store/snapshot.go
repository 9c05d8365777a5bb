package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/ristretto"
	"github.com/frahmantamala/student-finance/internal"
)

// Snapshots remembers the last successful read per collection and owner.
type Snapshots struct {
	cache  *ristretto.Cache
	logger *slog.Logger
}

func NewSnapshots(cfg internal.CacheConfig, logger *slog.Logger) (*Snapshots, error) {
	if !cfg.Enabled {
		return &Snapshots{logger: logger}, nil
	}

	numCounters := cfg.NumCounters
	if numCounters <= 0 {
		numCounters = 10000
	}
	maxCost := cfg.MaxCost
	if maxCost <= 0 {
		maxCost = 10000
	}
	bufferItems := cfg.BufferItems
	if bufferItems <= 0 {
		bufferItems = 64
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        numCounters,
		MaxCost:            maxCost,
		BufferItems:        bufferItems,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot cache: %w", err)
	}

	return &Snapshots{cache: cache, logger: logger}, nil
}

func snapshotKey(collection, owner string) string {
	return collection + ":" + owner
}

func (s *Snapshots) remember(collection, owner string, records any) {
	if s == nil || s.cache == nil {
		return
	}
	s.cache.Set(snapshotKey(collection, owner), records, 1)
	s.cache.Wait()
}

func (s *Snapshots) recall(collection, owner string) (any, bool) {
	if s == nil || s.cache == nil {
		return nil, false
	}
	return s.cache.Get(snapshotKey(collection, owner))
}

func (s *Snapshots) Close() {
	if s != nil && s.cache != nil {
		s.cache.Close()
	}
}

// Lister is the read half of a Collection.
type Lister[T any] interface {
	List(ctx context.Context, owner string) ([]*T, error)
}

// Read lists a collection and refreshes its snapshot. When the store fails the
// last snapshot is returned instead, or an empty slice, with stale set.
func Read[T any](ctx context.Context, s *Snapshots, collection, owner string, src Lister[T]) ([]*T, bool) {
	records, err := src.List(ctx, owner)
	if err == nil {
		s.remember(collection, owner, records)
		return records, false
	}

	lg := slog.Default()
	if s != nil && s.logger != nil {
		lg = s.logger
	}

	if cached, ok := s.recall(collection, owner); ok {
		if snapshot, ok := cached.([]*T); ok {
			lg.Warn("store read failed, serving last snapshot",
				"collection", collection,
				"owner_id", owner,
				"records", len(snapshot),
				"error", err)
			return snapshot, true
		}
	}

	lg.Error("store read failed, no snapshot available",
		"collection", collection,
		"owner_id", owner,
		"error", err)
	return []*T{}, true
}
