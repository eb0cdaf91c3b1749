package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"kitty-registry/internal/domain/kitties"

	"go.etcd.io/bbolt"
)

type KittiesRepo struct {
	db *bbolt.DB
}

func NewKittiesRepo(s *Store) *KittiesRepo {
	return &KittiesRepo{db: s.db}
}

func (r *KittiesRepo) Insert(ctx context.Context, k kitties.Kitty) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(k.OwnerUserID) == "" {
		return fmt.Errorf("kitty owner is required")
	}

	payload, err := json.Marshal(k)
	if err != nil {
		return fmt.Errorf("marshal kitty: %w", err)
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := ensureOwnerBucket(tx, kittiesBucket, k.OwnerUserID)
		if err != nil {
			return err
		}

		key := kittyIDKey(k.ID)
		// La clave debe ser fresca: nunca se sobreescribe un registro.
		if bucket.Get(key) != nil {
			return fmt.Errorf("kitty %d already exists for owner", k.ID)
		}
		return bucket.Put(key, payload)
	})
}

func (r *KittiesRepo) GetByID(ctx context.Context, ownerUserID string, id kitties.KittyID) (kitties.Kitty, error) {
	if err := ctx.Err(); err != nil {
		return kitties.Kitty{}, err
	}
	if strings.TrimSpace(ownerUserID) == "" {
		return kitties.Kitty{}, fmt.Errorf("kitty owner is required")
	}

	var k kitties.Kitty
	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket, err := ownerBucket(tx, kittiesBucket, ownerUserID)
		if err != nil {
			return err
		}
		if bucket == nil {
			return kitties.ErrNotFound
		}

		payload := bucket.Get(kittyIDKey(id))
		if payload == nil {
			return kitties.ErrNotFound
		}
		if err := json.Unmarshal(payload, &k); err != nil {
			return fmt.Errorf("unmarshal kitty: %w", err)
		}
		return nil
	})
	if err != nil {
		return kitties.Kitty{}, err
	}

	return k, nil
}

func (r *KittiesRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]kitties.Kitty, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]kitties.Kitty, 0)
	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket, err := ownerBucket(tx, kittiesBucket, ownerUserID)
		if err != nil {
			return err
		}
		if bucket == nil {
			// Owner sin registros todavía.
			return nil
		}

		// El sub-bucket es solo de este owner; las claves %08x ya salen
		// por ID asc.
		return bucket.ForEach(func(key, payload []byte) error {
			var k kitties.Kitty
			if err := json.Unmarshal(payload, &k); err != nil {
				return fmt.Errorf("unmarshal kitty: %w", err)
			}
			out = append(out, k)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
