package events

import "context"

type Repository interface {
	Append(ctx context.Context, e KittyEvent) error
	ListByKitty(ctx context.Context, ownerUserID string, kittyID uint32) ([]KittyEvent, error)
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]KittyEvent, error)
}

type ListFilter struct {
	Types []EventType
	Limit int
}
