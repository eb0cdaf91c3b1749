package memory

import (
	"context"
	"sync"

	"kitty-registry/internal/domain/kitties"
)

type counterStore struct {
	mu   sync.Mutex
	next kitties.KittyID
}

// NewCounterStore crea un contador en memoria arrancando en cero (génesis).
func NewCounterStore() kitties.CounterStore {
	return &counterStore{}
}

func (c *counterStore) NextKittyID(ctx context.Context) (kitties.KittyID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next, nil
}

func (c *counterStore) SetNextKittyID(ctx context.Context, next kitties.KittyID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = next
	return nil
}
