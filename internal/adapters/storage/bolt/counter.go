package bolt

import (
	"context"
	"encoding/binary"
	"fmt"

	"kitty-registry/internal/domain/kitties"

	"go.etcd.io/bbolt"
)

type CounterStore struct {
	db *bbolt.DB
}

func NewCounterStore(s *Store) *CounterStore {
	return &CounterStore{db: s.db}
}

// NextKittyID lee el contador del bucket meta. Clave ausente = génesis (0).
func (c *CounterStore) NextKittyID(ctx context.Context) (kitties.KittyID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var next kitties.KittyID
	err := c.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(metaBucket))
		if bucket == nil {
			return fmt.Errorf("meta bucket is missing")
		}

		raw := bucket.Get([]byte(nextKittyIDKey))
		if raw == nil {
			next = 0
			return nil
		}
		if len(raw) != 4 {
			return fmt.Errorf("corrupt kitty counter: %d bytes", len(raw))
		}
		next = kitties.KittyID(binary.BigEndian.Uint32(raw))
		return nil
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}

func (c *CounterStore) SetNextKittyID(ctx context.Context, next kitties.KittyID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(metaBucket))
		if bucket == nil {
			return fmt.Errorf("meta bucket is missing")
		}

		var raw [4]byte
		binary.BigEndian.PutUint32(raw[:], uint32(next))
		return bucket.Put([]byte(nextKittyIDKey), raw[:])
	})
}
