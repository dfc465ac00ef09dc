// Package gfp implements arithmetic over prime fields GF(p) for any
// prime characteristic p that fits in 16 bits. Multiplication and
// division run in constant time off logarithm/antilogarithm tables
// built once at construction; addition and subtraction are plain
// modular arithmetic and need no tables.
//
// Tables are built with the largest prime below p as the generator.
// That selection rule is empirical, not a theorem, so New verifies the
// resulting tables form a bijection before returning the field.
package gfp

import "fmt"

// Field is an initialized GF(p) instance. It owns both lookup tables
// for its lifetime, is immutable once New returns, and is therefore
// safe for concurrent use. Elements are uint16 values in [0, p-1].
type Field struct {
	p uint16
	// exp maps exponent e to generator^e, for e in [0, p-1]. The last
	// entry holds the cyclic wraparound value.
	exp []uint16
	// log maps a nonzero element to its discrete logarithm. log[0] is
	// never written; logarithm of zero is undefined.
	log []uint16
}

// New constructs GF(p). It returns an error when p is not prime, or
// when the generator fails to enumerate the full multiplicative group
// (see the package comment on the generator selection rule). A nil
// error guarantees the field is fully usable.
func New(p uint16) (*Field, error) {
	if !IsPrime(p) {
		return nil, fmt.Errorf("characteristic %d is not prime", p)
	}

	gen, ok := LargestPrimeBelow(p)
	if !ok {
		return nil, fmt.Errorf("no generator candidate below %d", p)
	}

	f := &Field{
		p:   p,
		exp: make([]uint16, p),
		log: make([]uint16, p),
	}

	x := uint16(1)
	for i := uint16(0); i < p-1; i++ {
		f.exp[i] = x
		f.log[x] = i
		x = f.SlowMul(x, gen)
	}
	// Store the wraparound explicitly rather than assuming the cycle
	// closed back to 1. Note log[1] = 0 was fixed by the first loop
	// iteration and is not overwritten here, which is what keeps log a
	// well-defined function.
	f.exp[p-1] = x

	if err := f.checkTables(); err != nil {
		return nil, fmt.Errorf("generator %d for GF(%d): %w", gen, p, err)
	}

	return f, nil
}

// checkTables verifies exp and log are mutual inverses on the nonzero
// elements and that the cycle closed back to 1, i.e. that the
// generator really enumerated the full multiplicative group.
func (f *Field) checkTables() error {
	for v := uint16(1); v < f.p; v++ {
		if f.exp[f.log[v]] != v {
			return fmt.Errorf("multiplicative group not fully generated: element %d has no logarithm", v)
		}
	}
	if f.exp[f.p-1] != 1 {
		return fmt.Errorf("multiplicative cycle does not close: generator^%d = %d, want 1", f.p-1, f.exp[f.p-1])
	}
	return nil
}

// Characteristic returns the field characteristic p.
func (f *Field) Characteristic() uint16 {
	return f.p
}

// Add returns (x + y) mod p.
func (f *Field) Add(x, y uint16) uint16 {
	return uint16((uint32(x) + uint32(y)) % uint32(f.p))
}

// Sub returns (x - y) mod p, computed without relying on signed or
// unsigned wraparound: p + (x - y) = p - (y - x) when x < y.
func (f *Field) Sub(x, y uint16) uint16 {
	if x >= y {
		return (x - y) % f.p
	}
	return f.p - (y-x)%f.p
}

// Mul returns x * y using log(x*y) = log(x) + log(y) over the tables.
func (f *Field) Mul(x, y uint16) uint16 {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[(uint32(f.log[x])+uint32(f.log[y]))%uint32(f.p-1)]
}

// Div returns x / y. Division by zero is tolerated and yields 0.
func (f *Field) Div(x, y uint16) uint16 {
	if y == 0 {
		return 0
	}
	if x == 0 {
		return 0
	}
	// Table indexes cannot be negative, so shift a negative logarithm
	// difference up by the group order.
	t := int32(f.log[x]) - int32(f.log[y])
	if t >= 0 {
		return f.exp[t]
	}
	return f.exp[int32(f.p-1)+t]
}

// Pow returns x raised to exponent e. A zero base yields 0 for every
// exponent; its logarithm does not exist.
func (f *Field) Pow(x, e uint16) uint16 {
	if x == 0 {
		return 0
	}
	return f.exp[(uint32(e)*uint32(f.log[x]))%uint32(f.p-1)]
}

// Inv returns the multiplicative inverse of x, or 0 for x = 0, which
// has none.
func (f *Field) Inv(x uint16) uint16 {
	if x == 0 {
		return 0
	}
	return f.exp[(f.p-1)-f.log[x]]
}

// Exp returns generator^e. The exponent is reduced modulo the group
// order, so any value is accepted.
func (f *Field) Exp(e uint16) uint16 {
	return f.exp[uint32(e)%uint32(f.p-1)]
}

// Log returns the discrete logarithm of x, or 0 for x = 0, which has
// none.
func (f *Field) Log(x uint16) uint16 {
	if x == 0 {
		return 0
	}
	return f.log[x]
}

// SlowMul multiplies by plain modular reduction, without the tables.
// New uses it to build the tables.
func (f *Field) SlowMul(x, y uint16) uint16 {
	if x == 0 || y == 0 {
		return 0
	}
	return uint16(uint32(x) * uint32(y) % uint32(f.p))
}
