package postgres

import (
	"context"
	"database/sql"

	"kitty-registry/internal/domain/kitties"
)

type CounterStore struct {
	db *sql.DB
}

func NewCounterStore(db *sql.DB) *CounterStore {
	return &CounterStore{db: db}
}

// NextKittyID lee la fila singleton del contador. Sin fila = génesis (0).
func (c *CounterStore) NextKittyID(ctx context.Context) (kitties.KittyID, error) {
	var next int64
	err := c.db.QueryRowContext(ctx, `
		SELECT next_kitty_id FROM kitty_counter
	`).Scan(&next)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return kitties.KittyID(next), nil
}

func (c *CounterStore) SetNextKittyID(ctx context.Context, next kitties.KittyID) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO kitty_counter (singleton, next_kitty_id)
		VALUES (TRUE, $1)
		ON CONFLICT (singleton) DO UPDATE SET next_kitty_id = EXCLUDED.next_kitty_id
	`, int64(next))
	return err
}
