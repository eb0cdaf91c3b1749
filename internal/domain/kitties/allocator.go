package kitties

import (
	"context"
	"fmt"
)

// CounterStore persiste el contador global de IDs. Se inyecta explícito
// (nunca un singleton de proceso) para poder testear el allocator aislado.
type CounterStore interface {
	// NextKittyID lee el próximo ID a asignar (0 en génesis).
	NextKittyID(ctx context.Context) (KittyID, error)
	// SetNextKittyID persiste el próximo ID a asignar.
	SetNextKittyID(ctx context.Context, next KittyID) error
}

// AllocateKittyID asigna el siguiente identificador: lee el contador,
// verifica overflow ANTES de mutar, persiste current+1 y devuelve current.
// Si current ya es MaxKittyID falla con ErrIDOverflow y el contador queda
// intacto (sin mutación parcial).
func AllocateKittyID(ctx context.Context, store CounterStore) (KittyID, error) {
	current, err := store.NextKittyID(ctx)
	if err != nil {
		return 0, fmt.Errorf("read kitty counter: %w", err)
	}

	if current == MaxKittyID {
		return 0, ErrIDOverflow
	}

	if err := store.SetNextKittyID(ctx, current+1); err != nil {
		return 0, fmt.Errorf("advance kitty counter: %w", err)
	}

	return current, nil
}
