package random

import "context"

// SeedOracle provee el seed de aleatoriedad del sistema.
// El registro no genera aleatoriedad propia: la deriva del seed del
// oráculo más contexto por llamada (caller, nonce).
type SeedOracle interface {
	Seed(ctx context.Context) ([]byte, error)
}
