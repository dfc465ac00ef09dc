// Package field provides a unified interface over the engine's field
// variants: the binary extension field GF(2^8) and the two prime-field
// implementations. Callers that know which variant they want can use
// the concrete packages directly; this package exists for code that
// selects a variant at runtime, such as the CLI.
package field

import (
	"fmt"
)

// Kind identifies a field variant.
type Kind string

const (
	// KindBinary is GF(2^8) with primitive polynomial 0x11D.
	KindBinary Kind = "gf256"
	// KindPrime is GF(p) with construction-time table validation.
	KindPrime Kind = "gfp"
	// KindLegacy is the old doubled-table prime variant with a fixed
	// generator and trial-search division.
	KindLegacy Kind = "legacy"
)

// Kinds lists every supported variant, in the order they were added.
func Kinds() []Kind {
	return []Kind{KindBinary, KindPrime, KindLegacy}
}

// Field is one initialized finite field. Implementations are immutable
// after construction and safe for concurrent use. Elements are uint16
// values in [0, Characteristic()-1].
type Field interface {
	// Characteristic returns the number of elements in the field.
	Characteristic() uint16

	Add(x, y uint16) uint16
	Sub(x, y uint16) uint16
	Mul(x, y uint16) uint16
	Div(x, y uint16) uint16
	Pow(x, e uint16) uint16
	Inv(x uint16) uint16

	// Exp returns generator^e, reducing e modulo the group order.
	Exp(e uint16) uint16
	// Log returns the discrete logarithm of x, or 0 for x = 0.
	Log(x uint16) uint16
}

// New constructs a field of the given kind. The characteristic is
// ignored for KindBinary, which is fixed at 256.
func New(kind Kind, characteristic uint16) (Field, error) {
	switch kind {
	case KindBinary:
		return NewBinary(), nil
	case KindPrime:
		return NewPrime(characteristic)
	case KindLegacy:
		return NewLegacy(characteristic)
	default:
		return nil, fmt.Errorf("unknown field kind %q", kind)
	}
}
