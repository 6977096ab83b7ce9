package bignum

import "math/big"

// Fib returns the n-th Fibonacci number (Fib(0)=0, Fib(1)=1) computed
// iteratively. Negative n is treated as 0. The result is a fresh value the
// caller owns.
func Fib(n int) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
