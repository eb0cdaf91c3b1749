package blakedna

import (
	"context"
	"testing"

	"kitty-registry/internal/domain/kitties"
)

func TestSource_DrawsDifferAcrossCalls(t *testing.T) {
	ctx := context.Background()
	src := NewSource(NewFixedOracle([]byte("fixed-seed")))

	// Mismo seed, mismo caller: el nonce por llamada hace variar el DNA.
	a, err := src.DrawDNA(ctx, "user-1")
	if err != nil {
		t.Fatalf("draw a: %v", err)
	}
	b, err := src.DrawDNA(ctx, "user-1")
	if err != nil {
		t.Fatalf("draw b: %v", err)
	}
	if a == b {
		t.Fatalf("dos draws seguidos dieron el mismo DNA: %s", a)
	}
}

func TestSource_ReproducibleWithFixedSeed(t *testing.T) {
	ctx := context.Background()

	// Dos fuentes con el mismo seed fijo producen la misma secuencia.
	src1 := NewSource(NewFixedOracle([]byte("fixed-seed")))
	src2 := NewSource(NewFixedOracle([]byte("fixed-seed")))

	for i := 0; i < 3; i++ {
		a, err := src1.DrawDNA(ctx, "user-1")
		if err != nil {
			t.Fatalf("draw src1: %v", err)
		}
		b, err := src2.DrawDNA(ctx, "user-1")
		if err != nil {
			t.Fatalf("draw src2: %v", err)
		}
		if a != b {
			t.Fatalf("draw #%d: %s != %s", i, a, b)
		}
	}
}

func TestSource_CallerChangesPayload(t *testing.T) {
	ctx := context.Background()

	src1 := NewSource(NewFixedOracle([]byte("fixed-seed")))
	src2 := NewSource(NewFixedOracle([]byte("fixed-seed")))

	a, err := src1.DrawDNA(ctx, "user-1")
	if err != nil {
		t.Fatalf("draw user-1: %v", err)
	}
	b, err := src2.DrawDNA(ctx, "user-2")
	if err != nil {
		t.Fatalf("draw user-2: %v", err)
	}
	if a == b {
		t.Fatalf("callers distintos con igual seed y nonce dieron el mismo DNA")
	}
}

func TestCryptoOracle_SeedSize(t *testing.T) {
	ctx := context.Background()

	seed, err := CryptoOracle{}.Seed(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(seed) != defaultSeedSize {
		t.Fatalf("seed size = %d, want %d", len(seed), defaultSeedSize)
	}

	seed, err = CryptoOracle{SeedSize: 16}.Seed(ctx)
	if err != nil {
		t.Fatalf("seed 16: %v", err)
	}
	if len(seed) != 16 {
		t.Fatalf("seed size = %d, want 16", len(seed))
	}
}

var _ kitties.DNASource = (*Source)(nil)
