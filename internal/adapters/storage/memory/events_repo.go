package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"kitty-registry/internal/domain/events"
)

type eventRepo struct {
	mu   sync.RWMutex
	byID map[string]events.KittyEvent
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.KittyEvent),
	}
}

func (r *eventRepo) Append(ctx context.Context, e events.KittyEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.byID[e.ID] = e
	return nil
}

func (r *eventRepo) ListByKitty(ctx context.Context, ownerUserID string, kittyID uint32) ([]events.KittyEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.KittyEvent, 0)
	for _, e := range r.byID {
		if e.OwnerUserID == ownerUserID && e.KittyID == kittyID {
			out = append(out, e)
		}
	}

	sortByRecordedAtDesc(out)
	return out, nil
}

func (r *eventRepo) ListByOwner(ctx context.Context, ownerUserID string, filter events.ListFilter) ([]events.KittyEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]events.KittyEvent, 0)
	for _, e := range r.byID {
		if e.OwnerUserID != ownerUserID {
			continue
		}

		// Type filter
		if len(filter.Types) > 0 {
			ok := false
			for _, t := range filter.Types {
				if e.Type == t {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		out = append(out, e)
	}

	sortByRecordedAtDesc(out)

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// Orden por recorded_at desc (más reciente primero); desempate por kitty ID
// para salida estable cuando varios eventos comparten timestamp.
func sortByRecordedAtDesc(out []events.KittyEvent) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].KittyID > out[j].KittyID
		}
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
}
