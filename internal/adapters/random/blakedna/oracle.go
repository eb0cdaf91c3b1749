package blakedna

import (
	"context"
	"crypto/rand"
)

const defaultSeedSize = 32

// CryptoOracle provee un seed de crypto/rand en cada lectura.
type CryptoOracle struct {
	// SeedSize en bytes; por defecto 32.
	SeedSize int
}

func (o CryptoOracle) Seed(ctx context.Context) ([]byte, error) {
	size := o.SeedSize
	if size <= 0 {
		size = defaultSeedSize
	}

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// FixedOracle devuelve siempre el mismo seed. Para dev y tests: con seed
// fijo los DNA siguen variando por nonce, pero la corrida es reproducible.
type FixedOracle struct {
	seed []byte
}

func NewFixedOracle(seed []byte) *FixedOracle {
	out := make([]byte, len(seed))
	copy(out, seed)
	return &FixedOracle{seed: out}
}

func (o *FixedOracle) Seed(ctx context.Context) ([]byte, error) {
	out := make([]byte, len(o.seed))
	copy(out, o.seed)
	return out, nil
}
