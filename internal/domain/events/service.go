package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	OwnerUserID string
	KittyID     uint32
	Type        EventType
	DNA         string
	ParentA     *uint32
	ParentB     *uint32
}

// Record persiste un evento de ciclo de vida. El ID y RecordedAt los
// pone el servicio; el resto viene del registro que emite.
func (s *Service) Record(ctx context.Context, in RecordInput) (KittyEvent, error) {
	if strings.TrimSpace(in.OwnerUserID) == "" {
		return KittyEvent{}, ErrInvalidInput
	}
	if in.Type != EventTypeKittyCreated && in.Type != EventTypeKittyBred {
		return KittyEvent{}, ErrInvalidInput
	}

	e := KittyEvent{
		ID:          uuid.NewString(),
		OwnerUserID: in.OwnerUserID,
		KittyID:     in.KittyID,
		Type:        in.Type,
		DNA:         in.DNA,
		ParentA:     in.ParentA,
		ParentB:     in.ParentB,
		RecordedAt:  s.now(),
	}

	if err := s.repo.Append(ctx, e); err != nil {
		return KittyEvent{}, err
	}
	return e, nil
}

func (s *Service) ListByKitty(ctx context.Context, ownerUserID string, kittyID uint32) ([]KittyEvent, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByKitty(ctx, ownerUserID, kittyID)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]KittyEvent, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerUserID, filter)
}
