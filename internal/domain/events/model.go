package events

import "time"

// KittyEvent es un registro inmutable del ciclo de vida de un kitty.
// Se escribe una sola vez cuando el registro crea o cruza; no hay
// edición ni anulación.
type KittyEvent struct {
	ID          string
	OwnerUserID string
	KittyID     uint32

	Type EventType

	// Snapshot hex del DNA al momento del evento.
	DNA string

	// IDs de los padres cuando Type es KITTY_BRED; nil en KITTY_CREATED.
	ParentA *uint32
	ParentB *uint32

	RecordedAt time.Time
}
