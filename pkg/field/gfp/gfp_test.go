package gfp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPrime(t *testing.T) {
	for _, p := range []uint16{0, 1, 4, 6, 9, 100, 256} {
		f, err := New(p)
		assert.Error(t, err, "New(%d)", p)
		assert.Nil(t, f)
	}
}

func TestNewRejectsFailedGenerator(t *testing.T) {
	// The largest-prime-below rule does not yield a primitive root for
	// every prime. For these, table validation must fail construction
	// instead of handing back a field with broken multiplication.
	for _, p := range []uint16{17, 97, 251, 929} {
		f, err := New(p)
		require.Error(t, err, "New(%d)", p)
		assert.Contains(t, err.Error(), "not fully generated")
		assert.Nil(t, f)
	}
}

func TestNewAcceptsPrimes(t *testing.T) {
	for _, p := range []uint16{3, 5, 7, 11, 13, 257, 7919} {
		f, err := New(p)
		require.NoError(t, err, "New(%d)", p)
		assert.Equal(t, p, f.Characteristic())
	}
}

func TestGF7Scenario(t *testing.T) {
	f, err := New(7)
	require.NoError(t, err)

	assert.Equal(t, uint16(2), f.Add(5, 4))
	assert.Equal(t, uint16(4), f.Sub(2, 5))

	for x := uint16(1); x < 7; x++ {
		assert.Equal(t, uint16(1), f.Mul(x, f.Inv(x)), "mul(%d, inv(%d))", x, x)
	}
}

func TestTableBijection(t *testing.T) {
	for _, p := range []uint16{3, 7, 13, 257, 7919} {
		f, err := New(p)
		require.NoError(t, err)

		for e := uint16(0); e < p-1; e++ {
			require.Equal(t, e, f.Log(f.Exp(e)), "GF(%d) log(exp(%d))", p, e)
		}
		for v := uint16(1); v < p; v++ {
			require.Equal(t, v, f.Exp(f.Log(v)), "GF(%d) exp(log(%d))", p, v)
		}
		// log(1) is pinned to 0 by the first build iteration.
		require.Equal(t, uint16(0), f.Log(1))
	}
}

func TestMulMatchesSlowMul(t *testing.T) {
	for _, p := range []uint16{7, 13, 257} {
		f, err := New(p)
		require.NoError(t, err)

		for x := uint16(0); x < p; x++ {
			for y := uint16(0); y < p; y++ {
				require.Equal(t, f.SlowMul(x, y), f.Mul(x, y), "GF(%d) %d * %d", p, x, y)
			}
		}
	}
}

func TestAddSub(t *testing.T) {
	f, err := New(13)
	require.NoError(t, err)

	for x := uint16(0); x < 13; x++ {
		assert.Equal(t, x, f.Add(x, 0))
		assert.Equal(t, uint16(0), f.Sub(x, x))
		for y := uint16(0); y < 13; y++ {
			// Subtraction undoes addition.
			require.Equal(t, x, f.Sub(f.Add(x, y), y))
			require.Equal(t, f.Add(x, y), f.Add(y, x))
		}
	}
}

func TestDivision(t *testing.T) {
	f, err := New(257)
	require.NoError(t, err)

	assert.Equal(t, uint16(0), f.Div(100, 0))
	assert.Equal(t, uint16(0), f.Div(0, 100))

	for x := uint16(1); x < 257; x++ {
		for y := uint16(1); y < 257; y++ {
			require.Equal(t, x, f.Div(f.Mul(x, y), y), "GF(257) div(mul(%d, %d), %d)", x, y, y)
		}
	}
}

func TestPow(t *testing.T) {
	f, err := New(11)
	require.NoError(t, err)

	assert.Equal(t, uint16(0), f.Pow(0, 5))
	assert.Equal(t, uint16(0), f.Pow(0, 0))

	for x := uint16(1); x < 11; x++ {
		require.Equal(t, x, f.Pow(x, 1))
		require.Equal(t, uint16(1), f.Pow(x, 0))

		want := uint16(1)
		for e := uint16(0); e < 20; e++ {
			require.Equal(t, want, f.Pow(x, e), "GF(11) pow(%d, %d)", x, e)
			want = f.Mul(want, x)
		}
	}
}

func TestZeroAbsorption(t *testing.T) {
	f, err := New(7919)
	require.NoError(t, err)

	for _, x := range []uint16{0, 1, 2, 100, 7918} {
		assert.Equal(t, uint16(0), f.Mul(x, 0))
		assert.Equal(t, uint16(0), f.Mul(0, x))
		assert.Equal(t, uint16(0), f.Div(x, 0))
	}
}

func TestGF2Rejected(t *testing.T) {
	// The generator rule hands GF(2) the generator 2, which is 0 mod 2,
	// so the cycle never closes and validation refuses the field.
	f, err := New(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle does not close")
	assert.Nil(t, f)
}

func BenchmarkMul(b *testing.B) {
	f, err := New(7919)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Mul(uint16(i)%7919, uint16(i>>4)%7919)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := New(7919); err != nil {
			b.Fatal(err)
		}
	}
}
