package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"kitty-registry/internal/domain/events"

	"go.etcd.io/bbolt"
)

type EventsRepo struct {
	db *bbolt.DB
}

func NewEventsRepo(s *Store) *EventsRepo {
	return &EventsRepo{db: s.db}
}

func (r *EventsRepo) Append(ctx context.Context, e events.KittyEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("event id is required")
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := ensureOwnerBucket(tx, eventsBucket, e.OwnerUserID)
		if err != nil {
			return err
		}
		return bucket.Put(eventKey(e.KittyID, e.ID), payload)
	})
}

func (r *EventsRepo) ListByKitty(ctx context.Context, ownerUserID string, kittyID uint32) ([]events.KittyEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Sin límite: el historial de un kitty se devuelve completo.
	return r.scan(ownerUserID, eventKittyPrefix(kittyID), nil, 0)
}

func (r *EventsRepo) ListByOwner(ctx context.Context, ownerUserID string, filter events.ListFilter) ([]events.KittyEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	// Prefijo nil: todos los eventos del sub-bucket del owner.
	return r.scan(ownerUserID, nil, filter.Types, limit)
}

func (r *EventsRepo) scan(ownerUserID string, prefix []byte, types []events.EventType, limit int) ([]events.KittyEvent, error) {
	out := make([]events.KittyEvent, 0)

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket, err := ownerBucket(tx, eventsBucket, ownerUserID)
		if err != nil {
			return err
		}
		if bucket == nil {
			// Owner sin eventos todavía.
			return nil
		}

		return bucket.ForEach(func(key, payload []byte) error {
			if prefix != nil && !bytes.HasPrefix(key, prefix) {
				return nil
			}

			var e events.KittyEvent
			if err := json.Unmarshal(payload, &e); err != nil {
				return fmt.Errorf("unmarshal event: %w", err)
			}

			if len(types) > 0 && !matchesType(e.Type, types) {
				return nil
			}

			out = append(out, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// Más reciente primero; desempate por kitty ID para salida estable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].KittyID > out[j].KittyID
		}
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func matchesType(t events.EventType, types []events.EventType) bool {
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}
