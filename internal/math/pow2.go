// Package math holds the integer and constant helpers used by the
// transform engine.
package math

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// IsTransformLength reports whether n is a length the radix-2 transform
// accepts: 0, 1 or any power of two.
func IsTransformLength(n int) bool {
	return n == 0 || IsPowerOf2(n)
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
// For n <= 1 it returns 0.
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}
