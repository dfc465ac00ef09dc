// GF(2^8) adapter for the unified field interface
package field

import (
	"github.com/sq8vps/galois-field/pkg/field/gf256"
)

// binaryField adapts the byte-oriented gf256.Field to uint16 elements.
// Values are masked to byte width at the boundary.
type binaryField struct {
	f *gf256.Field
}

// NewBinary returns the GF(2^8) field. It never fails; the polynomial
// and generator are fixed constants.
func NewBinary() Field {
	return &binaryField{f: gf256.New()}
}

func (b *binaryField) Characteristic() uint16 {
	return gf256.Size
}

func (b *binaryField) Add(x, y uint16) uint16 {
	return uint16(b.f.Add(byte(x), byte(y)))
}

func (b *binaryField) Sub(x, y uint16) uint16 {
	return uint16(b.f.Sub(byte(x), byte(y)))
}

func (b *binaryField) Mul(x, y uint16) uint16 {
	return uint16(b.f.Mul(byte(x), byte(y)))
}

func (b *binaryField) Div(x, y uint16) uint16 {
	return uint16(b.f.Div(byte(x), byte(y)))
}

func (b *binaryField) Pow(x, e uint16) uint16 {
	return uint16(b.f.Pow(byte(x), byte(e)))
}

func (b *binaryField) Inv(x uint16) uint16 {
	return uint16(b.f.Inv(byte(x)))
}

func (b *binaryField) Exp(e uint16) uint16 {
	return uint16(b.f.Exp(int(e)))
}

func (b *binaryField) Log(x uint16) uint16 {
	return uint16(b.f.Log(byte(x)))
}
