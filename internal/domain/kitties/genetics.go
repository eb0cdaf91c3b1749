package kitties

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Gender deriva el género de la paridad del primer byte del DNA:
// par => male, impar => female. Nunca se persiste; se calcula siempre
// desde el payload para que no exista una segunda fuente de verdad.
func (d DNA) Gender() Gender {
	if d[0]&1 == 0 {
		return GenderMale
	}
	return GenderFemale
}

// CombineDNA selecciona bit a bit entre dos bytes parentales: donde el
// selector tiene 0 aporta parent1, donde tiene 1 aporta parent2.
func CombineDNA(parent1, parent2, selector byte) byte {
	return (^selector & parent1) | (selector & parent2)
}

// CrossDNA aplica CombineDNA en las 16 posiciones del payload. Solo el
// selector decide qué padre aporta cada bit; ninguno de los dos payloads
// parentales sesga la elección por sí mismo.
func CrossDNA(parent1, parent2, selector DNA) DNA {
	var out DNA
	for i := 0; i < DNASize; i++ {
		out[i] = CombineDNA(parent1[i], parent2[i], selector[i])
	}
	return out
}

// RandomDNA deriva un payload pseudo-aleatorio de 128 bits: BLAKE2b sobre
// (seed del oráculo, identidad del caller, nonce por llamada). Con nonces
// distintos el resultado difiere aunque seed y caller se repitan.
func RandomDNA(seed []byte, ownerUserID string, nonce uint64) DNA {
	// blake2b.New solo falla con una key inválida; sin key no hay error.
	h, _ := blake2b.New(DNASize, nil)
	_, _ = h.Write(seed)
	_, _ = h.Write([]byte(ownerUserID))

	var n [8]byte
	binary.BigEndian.PutUint64(n[:], nonce)
	_, _ = h.Write(n[:])

	var d DNA
	copy(d[:], h.Sum(nil))
	return d
}
