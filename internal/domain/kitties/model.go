package kitties

import (
	"encoding/hex"
	"fmt"
	"math"
	"time"
)

// KittyID identifica un kitty de forma única en todo el sistema.
// Los IDs se asignan monotónicamente (0, 1, 2, ...) y nunca se reutilizan.
type KittyID uint32

// MaxKittyID es el último identificador asignable.
const MaxKittyID = KittyID(math.MaxUint32)

// DNASize es el tamaño fijo del payload genético en bytes.
const DNASize = 16

// DNA es el payload genético de un kitty. Inmutable: se escribe una sola
// vez al crear/criar y nunca se modifica.
type DNA [DNASize]byte

// Gender define el género derivado del DNA.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// String devuelve el DNA en hex (32 chars). Es la representación externa:
// ParseDNA(d.String()) reconstruye el mismo payload byte a byte.
func (d DNA) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDNA decodifica un DNA desde su representación hex.
func ParseDNA(s string) (DNA, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return DNA{}, fmt.Errorf("invalid dna hex: %w", err)
	}
	if len(b) != DNASize {
		return DNA{}, fmt.Errorf("invalid dna length: %d bytes", len(b))
	}
	var d DNA
	copy(d[:], b)
	return d, nil
}

// Kitty representa una entidad registrada bajo la clave (owner, id).
// No hay índice global aparte: la identidad ES la clave. Dos kitties con
// DNA idéntico son registros distintos bajo claves distintas.
type Kitty struct {
	ID          KittyID
	OwnerUserID string

	DNA DNA

	CreatedAt time.Time
}
