package blakedna

import (
	"context"
	"fmt"
	"sync/atomic"

	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/ports/random"
)

// Source implementa kitties.DNASource: digest BLAKE2b de 128 bits sobre
// (seed del oráculo, identidad del caller, nonce). El nonce es un contador
// atómico del proceso, el análogo del índice de operación dentro del
// bloque: dos draws del mismo caller con el mismo seed nunca coinciden.
type Source struct {
	oracle random.SeedOracle
	nonce  atomic.Uint64
}

func NewSource(oracle random.SeedOracle) *Source {
	return &Source{oracle: oracle}
}

func (s *Source) DrawDNA(ctx context.Context, ownerUserID string) (kitties.DNA, error) {
	seed, err := s.oracle.Seed(ctx)
	if err != nil {
		return kitties.DNA{}, fmt.Errorf("oracle seed: %w", err)
	}

	return kitties.RandomDNA(seed, ownerUserID, s.nonce.Add(1)), nil
}
