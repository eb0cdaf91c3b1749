package kitties

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("kitty not found")
	ErrInvalidKittyID = errors.New("invalid kitty id")
	ErrSameGender     = errors.New("parents have the same gender")
	ErrIDOverflow     = errors.New("kitty id overflow")
)

// EventSink recibe los eventos de ciclo de vida del registro.
// Un sink nil se trata como no-op.
type EventSink interface {
	KittyCreated(ctx context.Context, k Kitty)
	KittyBred(ctx context.Context, k Kitty, parentA, parentB KittyID)
}

type Service struct {
	repo    Repository
	counter CounterStore
	dna     DNASource
	sink    EventSink
	now     func() time.Time

	// Serializa create/breed: el read-modify-write del contador y la
	// garantía de clave fresca asumen ejecución sin interleaving.
	mu sync.Mutex
}

func NewService(repo Repository, counter CounterStore, dna DNASource, sink EventSink) *Service {
	return &Service{
		repo:    repo,
		counter: counter,
		dna:     dna,
		sink:    sink,
		now:     time.Now,
	}
}

// Create registra un kitty nuevo con DNA pseudo-aleatorio para el owner.
func (s *Service) Create(ctx context.Context, ownerUserID string) (Kitty, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Kitty{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// El draw va antes de asignar el ID: una vez mutado el contador no
	// puede quedar ningún paso que falle salvo el insert mismo.
	dna, err := s.dna.DrawDNA(ctx, ownerUserID)
	if err != nil {
		return Kitty{}, fmt.Errorf("draw dna: %w", err)
	}

	id, err := AllocateKittyID(ctx, s.counter)
	if err != nil {
		return Kitty{}, err
	}

	k := Kitty{
		ID:          id,
		OwnerUserID: ownerUserID,
		DNA:         dna,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Insert(ctx, k); err != nil {
		return Kitty{}, err
	}

	if s.sink != nil {
		s.sink.KittyCreated(ctx, k)
	}
	return k, nil
}

// Breed cruza dos kitties del owner y registra la cría.
// Validaciones baratas primero: ambas búsquedas y el check de género
// ocurren antes de cualquier mutación, así un breed fallido jamás avanza
// el contador ni deja registros.
func (s *Service) Breed(ctx context.Context, ownerUserID string, parentA, parentB KittyID) (Kitty, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Kitty{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pa, err := s.lookupParent(ctx, ownerUserID, parentA)
	if err != nil {
		return Kitty{}, err
	}
	pb, err := s.lookupParent(ctx, ownerUserID, parentB)
	if err != nil {
		return Kitty{}, err
	}

	// parentA == parentB cae aquí solo: un kitty comparte género consigo mismo.
	if pa.DNA.Gender() == pb.DNA.Gender() {
		return Kitty{}, ErrSameGender
	}

	selector, err := s.dna.DrawDNA(ctx, ownerUserID)
	if err != nil {
		return Kitty{}, fmt.Errorf("draw selector: %w", err)
	}

	id, err := AllocateKittyID(ctx, s.counter)
	if err != nil {
		return Kitty{}, err
	}

	k := Kitty{
		ID:          id,
		OwnerUserID: ownerUserID,
		DNA:         CrossDNA(pa.DNA, pb.DNA, selector),
		CreatedAt:   s.now(),
	}

	if err := s.repo.Insert(ctx, k); err != nil {
		return Kitty{}, err
	}

	if s.sink != nil {
		s.sink.KittyBred(ctx, k, parentA, parentB)
	}
	return k, nil
}

func (s *Service) lookupParent(ctx context.Context, ownerUserID string, id KittyID) (Kitty, error) {
	k, err := s.repo.GetByID(ctx, ownerUserID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Kitty{}, ErrInvalidKittyID
		}
		return Kitty{}, err
	}
	return k, nil
}

func (s *Service) GetByID(ctx context.Context, ownerUserID string, id KittyID) (Kitty, error) {
	return s.repo.GetByID(ctx, ownerUserID, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Kitty, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}
