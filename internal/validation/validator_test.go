package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOperation(t *testing.T) {
	for _, op := range []string{"add", "sub", "mul", "div", "pow", "inv", "MUL", " div "} {
		assert.NoError(t, ValidateOperation(op), "op %q", op)
	}
	for _, op := range []string{"", "xor", "mod", "multiply"} {
		assert.Error(t, ValidateOperation(op), "op %q", op)
	}
}

func TestIsUnary(t *testing.T) {
	assert.True(t, IsUnary("inv"))
	assert.True(t, IsUnary("INV"))
	assert.False(t, IsUnary("mul"))
}

func TestParseElement(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		characteristic uint16
		want           uint16
		wantError      bool
	}{
		{"Decimal", "42", 256, 42, false},
		{"Hex", "0x2A", 256, 42, false},
		{"Whitespace trimmed", " 7 ", 256, 7, false},
		{"Zero", "0", 256, 0, false},
		{"Upper bound", "255", 256, 255, false},
		{"Out of range", "256", 256, 0, true},
		{"Out of range prime", "7", 7, 0, true},
		{"Empty", "", 256, 0, true},
		{"Garbage", "abc", 256, 0, true},
		{"Negative", "-1", 256, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseElement(tt.input, tt.characteristic)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParseCharacteristic(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      uint16
		wantError bool
	}{
		{"Small prime", "7", 7, false},
		{"Hex", "0x101", 257, false},
		{"Largest 16-bit value", "65535", 65535, false},
		{"Too large", "65536", 0, true},
		{"Too small", "1", 0, true},
		{"Zero", "0", 0, true},
		{"Empty", "", 0, true},
		{"Garbage", "seven", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseCharacteristic(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}
