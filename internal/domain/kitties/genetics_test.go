package kitties

import "testing"

func TestGender_ParityOfFirstByte(t *testing.T) {
	for b := 0; b < 256; b++ {
		var d DNA
		d[0] = byte(b)

		got := d.Gender()
		want := GenderMale
		if b%2 == 1 {
			want = GenderFemale
		}
		if got != want {
			t.Fatalf("byte %#02x: gender = %q, want %q", b, got, want)
		}
	}
}

func TestGender_IgnoresRestOfPayload(t *testing.T) {
	d := DNA{0x02, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if d.Gender() != GenderMale {
		t.Fatalf("gender debe depender solo de DNA[0]&1")
	}
}

func TestCombineDNA_Formula(t *testing.T) {
	selectors := []byte{0x00, 0xFF, 0xA5, 0x0F, 0x80}

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, sel := range selectors {
				got := CombineDNA(byte(a), byte(b), sel)
				want := (^sel & byte(a)) | (sel & byte(b))
				if got != want {
					t.Fatalf("combine(%#02x,%#02x,%#02x) = %#02x, want %#02x", a, b, sel, got, want)
				}
			}
		}
	}
}

func TestCombineDNA_SelectorExtremes(t *testing.T) {
	// Selector todo-cero reproduce parent1; todo-uno reproduce parent2.
	for a := 0; a < 256; a++ {
		for _, b := range []byte{0x00, 0x55, 0xFF} {
			if got := CombineDNA(byte(a), b, 0x00); got != byte(a) {
				t.Fatalf("combine(%#02x,%#02x,0x00) = %#02x, want parent1", a, b, got)
			}
			if got := CombineDNA(byte(a), b, 0xFF); got != b {
				t.Fatalf("combine(%#02x,%#02x,0xFF) = %#02x, want parent2", a, b, got)
			}
		}
	}
}

func TestCrossDNA_PerBytePositions(t *testing.T) {
	var p1, p2, sel DNA
	for i := 0; i < DNASize; i++ {
		p1[i] = byte(i)
		p2[i] = byte(0xF0 + i)
	}
	// Mitad del payload de cada padre.
	for i := 8; i < DNASize; i++ {
		sel[i] = 0xFF
	}

	got := CrossDNA(p1, p2, sel)
	for i := 0; i < 8; i++ {
		if got[i] != p1[i] {
			t.Fatalf("byte %d: got %#02x, want parent1 %#02x", i, got[i], p1[i])
		}
	}
	for i := 8; i < DNASize; i++ {
		if got[i] != p2[i] {
			t.Fatalf("byte %d: got %#02x, want parent2 %#02x", i, got[i], p2[i])
		}
	}
}

func TestRandomDNA_DistinctNonces(t *testing.T) {
	seed := []byte("seed")

	a := RandomDNA(seed, "user-1", 1)
	b := RandomDNA(seed, "user-1", 2)
	if a == b {
		t.Fatalf("mismo seed y caller con nonces distintos deben dar DNA distinto")
	}

	// Mismos inputs => mismo output (determinístico).
	if again := RandomDNA(seed, "user-1", 1); again != a {
		t.Fatalf("RandomDNA no es determinístico: %s vs %s", again, a)
	}
}

func TestDNA_HexRoundTrip(t *testing.T) {
	d := RandomDNA([]byte("seed"), "user-1", 7)

	parsed, err := ParseDNA(d.String())
	if err != nil {
		t.Fatalf("parse dna: %v", err)
	}
	if parsed != d {
		t.Fatalf("round-trip hex: got %s, want %s", parsed, d)
	}

	if _, err := ParseDNA("zz"); err == nil {
		t.Fatalf("expected error for invalid hex")
	}
	if _, err := ParseDNA("abcd"); err == nil {
		t.Fatalf("expected error for short payload")
	}
}
