// Package gf256 implements arithmetic over the binary extension field
// GF(2^8), the 256-element field used by byte-oriented error-correcting
// codes. Multiplication is defined modulo the primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D), with 2 as the generator of the
// multiplicative group.
package gf256

const (
	// Poly is the primitive polynomial reducing products in GF(2^8).
	Poly = 0x11D

	// Size is the field characteristic: the number of elements.
	Size = 256

	// Order is the order of the multiplicative group (Size - 1).
	Order = Size - 1

	generator = 2
)

// Field is an initialized GF(2^8) instance. It owns both lookup tables
// for its lifetime, is immutable once New returns, and is therefore
// safe for concurrent use.
type Field struct {
	// exp maps exponent e to generator^e. The upper half repeats the
	// 255-entry cycle so that exp[log[x]+log[y]] is always in range
	// without a modulo.
	exp [2 * Size]byte
	// log maps a nonzero element to its discrete logarithm. log[0] is
	// never written; logarithm of zero is undefined.
	log [Size]byte
}

// New builds the exponent and logarithm tables by repeated slow
// multiplication by the generator. It cannot fail: the polynomial and
// generator are fixed constants known to produce a full cycle.
func New() *Field {
	f := &Field{}

	x := byte(1)
	for i := 0; i < Order; i++ {
		f.exp[i] = x
		f.log[x] = byte(i)
		x = f.SlowMul(x, generator)
	}
	// The cycle closes here; x has wrapped back around to 1.
	f.exp[Order] = x
	for i := Size; i < 2*Size; i++ {
		f.exp[i] = f.exp[i-Order]
	}

	return f
}

// Add returns x + y. Addition in GF(2^8) is carry-less: a bitwise XOR.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Sub returns x - y. Every element is its own additive inverse, so
// subtraction is the same XOR as addition.
func (f *Field) Sub(x, y byte) byte {
	return x ^ y
}

// Mul returns x * y using log(x*y) = log(x) + log(y) over the tables.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Div returns x / y. Division by zero is tolerated and yields 0.
func (f *Field) Div(x, y byte) byte {
	if y == 0 {
		return 0
	}
	if x == 0 {
		return 0
	}
	return f.exp[(int(f.log[x])+Order-int(f.log[y]))%Order]
}

// Pow returns x raised to exponent e. A zero base yields 0 for every
// exponent; its logarithm does not exist.
func (f *Field) Pow(x, e byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[(int(e)*int(f.log[x]))%Order]
}

// Inv returns the multiplicative inverse of x, or 0 for x = 0, which
// has none.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[Order-int(f.log[x])]
}

// Exp returns generator^e. The exponent is reduced modulo the group
// order, so any value is accepted.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		e = e%Order + Order
	}
	return f.exp[e%Order]
}

// Log returns the discrete logarithm of x, or 0 for x = 0, which has
// none.
func (f *Field) Log(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.log[x]
}

// SlowMul multiplies without the lookup tables using Russian peasant
// multiplication over the bits of y, reducing by Poly whenever the
// accumulating product overflows a byte. New uses it to build the
// tables; it is also handy as a table-independent cross-check.
func (f *Field) SlowMul(x, y byte) byte {
	var ret uint16
	xw := uint16(x)
	for y > 0 {
		if y&1 == 1 {
			ret ^= xw
		}
		y >>= 1
		xw <<= 1
		if xw&0x100 != 0 {
			xw ^= Poly
		}
	}
	return byte(ret)
}
