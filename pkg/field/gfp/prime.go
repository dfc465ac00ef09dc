package gfp

// IsPrime reports whether x is prime, by trial division of every
// candidate from 2 through x/2. Values below 2 are never prime. This
// is O(x), which is fine for 16-bit candidates tested once per field
// construction.
func IsPrime(x uint16) bool {
	if x < 2 {
		return false
	}
	for i := uint16(2); i <= x/2; i++ {
		if x%i == 0 {
			return false
		}
	}
	return true
}

// LargestPrimeBelow returns the largest prime strictly below max,
// except that max = 2 returns 2 itself. ok is false when no such prime
// exists, which only happens for max < 2.
func LargestPrimeBelow(max uint16) (uint16, bool) {
	if max < 2 {
		return 0, false
	}
	if max == 2 {
		return 2, true
	}
	for c := max - 1; c >= 2; c-- {
		if IsPrime(c) {
			return c, true
		}
	}
	return 0, false
}
