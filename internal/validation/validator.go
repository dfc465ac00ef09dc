package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Operations supported by the arithmetic surface. "inv" is the only
// unary one.
var operations = map[string]bool{
	"add": true,
	"sub": true,
	"mul": true,
	"div": true,
	"pow": true,
	"inv": true,
}

func ValidateOperation(op string) error {
	if !operations[strings.ToLower(strings.TrimSpace(op))] {
		return fmt.Errorf("unknown operation %q (expected add, sub, mul, div, pow or inv)", op)
	}
	return nil
}

// IsUnary reports whether the operation takes a single operand.
func IsUnary(op string) bool {
	return strings.ToLower(strings.TrimSpace(op)) == "inv"
}

// ParseElement parses a field element written in decimal or 0x-prefixed
// hex and checks that it lies inside the field.
func ParseElement(input string, characteristic uint16) (uint16, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("element cannot be empty")
	}

	v, err := strconv.ParseUint(input, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid element %q: %w", input, err)
	}

	if v >= uint64(characteristic) {
		return 0, fmt.Errorf("element %d out of range for characteristic %d", v, characteristic)
	}

	return uint16(v), nil
}

// ParseCharacteristic parses a candidate field characteristic.
// Primality is the field constructor's concern; this only enforces the
// 16-bit range and the minimum size for a multiplicative group.
func ParseCharacteristic(input string) (uint16, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("characteristic cannot be empty")
	}

	v, err := strconv.ParseUint(input, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid characteristic %q: %w", input, err)
	}

	if v < 2 {
		return 0, fmt.Errorf("characteristic must be at least 2, got %d", v)
	}

	return uint16(v), nil
}
