package kitties

import "context"

type Repository interface {
	// Insert escribe el registro bajo (owner, id). La clave debe ser
	// fresca: si (owner, id) ya existe es un error, nunca se sobreescribe.
	Insert(ctx context.Context, k Kitty) error
	GetByID(ctx context.Context, ownerUserID string, id KittyID) (Kitty, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Kitty, error)
}
