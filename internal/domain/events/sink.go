package events

import (
	"context"

	"kitty-registry/internal/domain/kitties"
)

// Sink adapta el servicio de eventos al EventSink que consume el registro.
// La emisión es best-effort (MVP): un Append fallido no revierte el insert
// del kitty, solo se pierde el evento.
type Sink struct {
	svc *Service
}

func NewSink(svc *Service) *Sink {
	return &Sink{svc: svc}
}

func (s *Sink) KittyCreated(ctx context.Context, k kitties.Kitty) {
	_, _ = s.svc.Record(ctx, RecordInput{
		OwnerUserID: k.OwnerUserID,
		KittyID:     uint32(k.ID),
		Type:        EventTypeKittyCreated,
		DNA:         k.DNA.String(),
	})
}

func (s *Sink) KittyBred(ctx context.Context, k kitties.Kitty, parentA, parentB kitties.KittyID) {
	pa := uint32(parentA)
	pb := uint32(parentB)
	_, _ = s.svc.Record(ctx, RecordInput{
		OwnerUserID: k.OwnerUserID,
		KittyID:     uint32(k.ID),
		Type:        EventTypeKittyBred,
		DNA:         k.DNA.String(),
		ParentA:     &pa,
		ParentB:     &pb,
	})
}
