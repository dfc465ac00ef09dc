// Legacy variant adapter for the unified field interface
package field

import (
	"fmt"

	"github.com/sq8vps/galois-field/pkg/field/legacy"
)

// NewLegacy returns the doubled-table prime variant. The old interface
// never validated its characteristic; only p < 2 is rejected here,
// because a field that small has no multiplicative group to tabulate.
func NewLegacy(p uint16) (Field, error) {
	if p < 2 {
		return nil, fmt.Errorf("legacy field: characteristic %d is too small", p)
	}
	return legacy.New(p), nil
}
