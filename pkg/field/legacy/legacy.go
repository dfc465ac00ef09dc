// Package legacy preserves the oldest prime-field code path of this
// library: a doubled exponent table for branch-free lookups, a fixed
// generator of 16, and a table-free trial-search division.
//
// The fixed generator is not a primitive root for odd primes, so the
// lookup tables only cover the subgroup it generates; Mul and Pow are
// reliable on that subgroup only. Add, Sub and Div do not touch the
// tables and are always correct. New callers should use package gfp,
// which validates its tables; this variant exists for behavioral
// parity with code written against the old interface.
package legacy

const generator = 16

// Field is an initialized instance over the integers mod p. Unlike
// gfp, construction performs no primality check and no table
// validation. Immutable once New returns.
type Field struct {
	p uint16
	// exp is doubled: the upper half repeats the cycle so that
	// exp[log[x]+log[y]] is always in range without a modulo.
	exp []uint16
	log []uint16
}

// New constructs the field. A characteristic below 2 yields a
// degenerate instance with empty tables; arithmetic on it is
// undefined, matching the old interface's lack of validation.
func New(p uint16) *Field {
	if p < 2 {
		return &Field{p: p}
	}

	f := &Field{
		p:   p,
		exp: make([]uint16, 2*uint32(p)),
		log: make([]uint16, p),
	}

	x := uint16(1)
	for i := uint16(0); i < p-1; i++ {
		f.exp[i] = x
		f.log[x] = i
		x = f.SlowMul(x, generator)
	}
	f.exp[p-1] = x
	for i := uint32(p); i < 2*uint32(p); i++ {
		f.exp[i] = f.exp[i-uint32(p-1)]
	}

	return f
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
// unsigned wraparound.
func (f *Field) Sub(x, y uint16) uint16 {
	if x >= y {
		return (x - y) % f.p
	}
	return f.p - (y-x)%f.p
}

// Mul returns x * y off the doubled table, without a modulo. See the
// package comment for the subgroup caveat.
func (f *Field) Mul(x, y uint16) uint16 {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[uint32(f.log[x])+uint32(f.log[y])]
}

// Div returns x / y without the tables: the quotient q satisfies
// q*y ≡ x (mod p), so scan x + k*p for the first value y divides
// exactly. Division by zero is tolerated and yields 0.
func (f *Field) Div(x, y uint16) uint16 {
	if y == 0 {
		return 0
	}
	if x == 0 {
		return 0
	}
	if x%y == 0 {
		return (x / y) % f.p
	}
	a := uint64(x)
	for i := uint16(1); i < y; i++ {
		a += uint64(f.p)
		if a%uint64(y) == 0 {
			return uint16(a / uint64(y) % uint64(f.p))
		}
	}
	return 0
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

// Exp returns generator^e, with the exponent reduced modulo the group
// order.
func (f *Field) Exp(e uint16) uint16 {
	return f.exp[uint32(e)%uint32(f.p-1)]
}

// Log returns the table logarithm of x, or 0 for x = 0. For elements
// outside the generator's subgroup the entry was never written and
// reads as 0.
func (f *Field) Log(x uint16) uint16 {
	if x == 0 {
		return 0
	}
	return f.log[x]
}

// SlowMul multiplies by plain modular reduction, without the tables.
func (f *Field) SlowMul(x, y uint16) uint16 {
	if x == 0 || y == 0 {
		return 0
	}
	return uint16(uint32(x) * uint32(y) % uint32(f.p))
}
