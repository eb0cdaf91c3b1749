package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"kitty-registry/internal/domain/kitties"
)

type KittiesRepo struct {
	db *sql.DB
}

func NewKittiesRepo(db *sql.DB) *KittiesRepo {
	return &KittiesRepo{db: db}
}

func (r *KittiesRepo) Insert(ctx context.Context, k kitties.Kitty) error {
	// El PK (owner_user_id, kitty_id) garantiza que nunca se sobreescribe:
	// una clave repetida falla el INSERT.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kitties (
			owner_user_id, kitty_id,
			dna, created_at
		) VALUES ($1,$2,$3,$4)
	`,
		k.OwnerUserID,
		int64(k.ID),
		k.DNA[:],
		k.CreatedAt,
	)
	return err
}

func (r *KittiesRepo) GetByID(ctx context.Context, ownerUserID string, id kitties.KittyID) (kitties.Kitty, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return kitties.Kitty{}, kitties.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT owner_user_id, kitty_id, dna, created_at
		FROM kitties
		WHERE owner_user_id = $1 AND kitty_id = $2
	`, ownerUserID, int64(id))

	k, err := scanKitty(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return kitties.Kitty{}, kitties.ErrNotFound
		}
		return kitties.Kitty{}, err
	}
	return k, nil
}

func (r *KittiesRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]kitties.Kitty, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT owner_user_id, kitty_id, dna, created_at
		FROM kitties
		WHERE owner_user_id = $1
		ORDER BY kitty_id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]kitties.Kitty, 0)
	for rows.Next() {
		k, err := scanKitty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanKitty(row rowScanner) (kitties.Kitty, error) {
	var (
		k   kitties.Kitty
		id  int64
		dna []byte
	)
	if err := row.Scan(&k.OwnerUserID, &id, &dna, &k.CreatedAt); err != nil {
		return kitties.Kitty{}, err
	}

	if len(dna) != kitties.DNASize {
		return kitties.Kitty{}, fmt.Errorf("corrupt dna: %d bytes", len(dna))
	}
	copy(k.DNA[:], dna)
	k.ID = kitties.KittyID(id)

	return k, nil
}
