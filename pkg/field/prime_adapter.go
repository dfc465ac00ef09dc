// GF(p) adapter for the unified field interface
package field

import (
	"fmt"

	"github.com/sq8vps/galois-field/pkg/field/gfp"
)

// NewPrime returns GF(p) for a prime characteristic p. The error
// carries the rejection reason: a non-prime characteristic, or a
// generator that failed table validation.
func NewPrime(p uint16) (Field, error) {
	f, err := gfp.New(p)
	if err != nil {
		return nil, fmt.Errorf("prime field: %w", err)
	}
	return f, nil
}
