package kitties

import "context"

// DNASource produce un payload pseudo-aleatorio fresco por llamada.
// Abstrae el oráculo de aleatoriedad externo más el contexto por llamada
// (nonce), para poder sustituirlo determinísticamente en tests.
type DNASource interface {
	DrawDNA(ctx context.Context, ownerUserID string) (DNA, error)
}
