package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"kitty-registry/internal/domain/kitties"
)

type kittyRepo struct {
	mu    sync.RWMutex
	byKey map[string]kitties.Kitty
}

func NewKittyRepo() kitties.Repository {
	return &kittyRepo{
		byKey: make(map[string]kitties.Kitty),
	}
}

func kittyKey(ownerUserID string, id kitties.KittyID) string {
	return fmt.Sprintf("%s/%d", ownerUserID, id)
}

func (r *kittyRepo) Insert(ctx context.Context, k kitties.Kitty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if k.OwnerUserID == "" {
		return errors.New("kitty owner required")
	}
	key := kittyKey(k.OwnerUserID, k.ID)
	if _, exists := r.byKey[key]; exists {
		return fmt.Errorf("kitty %d already exists for owner", k.ID)
	}
	r.byKey[key] = k
	return nil
}

func (r *kittyRepo) GetByID(ctx context.Context, ownerUserID string, id kitties.KittyID) (kitties.Kitty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.byKey[kittyKey(ownerUserID, id)]
	if !ok {
		return kitties.Kitty{}, kitties.ErrNotFound
	}
	return k, nil
}

func (r *kittyRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]kitties.Kitty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]kitties.Kitty, 0)
	for _, k := range r.byKey {
		if k.OwnerUserID == ownerUserID {
			out = append(out, k)
		}
	}

	// Orden estable por ID asc (los IDs son monotónicos)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}
