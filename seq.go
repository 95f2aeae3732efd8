package bignum

// Sequence generators are pure functions of non-negative indices; the
// unsigned parameters make negative indices unrepresentable. The Pair
// variants exist as a performance optimization and return exactly what
// two independent single-term calls would.

// Factorial returns n!.
func Factorial(n uint) *Int {
	z := New()
	z.c.z.Factorial(n)
	return z
}

// DoubleFactorial returns n!! = n * (n-2) * (n-4) * ...
func DoubleFactorial(n uint) *Int {
	z := New()
	z.c.z.DoubleFactorial(n)
	return z
}

// MultiFactorial returns the m-step factorial n * (n-m) * (n-2m) * ...
// The step m must be positive; m = 0 is a programmer error and panics.
func MultiFactorial(n, m uint) *Int {
	if m == 0 {
		panic("bignum: MultiFactorial: step must be positive")
	}
	z := New()
	z.c.z.MultiFactorial(n, m)
	return z
}

// Primorial returns the product of all primes less than or equal to n.
func Primorial(n uint) *Int {
	z := New()
	z.c.z.Primorial(n)
	return z
}

// Binomial returns the binomial coefficient n over k.
func Binomial(n, k uint) *Int {
	z := New()
	z.c.z.BinomialUint(n, k)
	return z
}

// BinomialInt returns the binomial coefficient x over k for an
// arbitrary-precision (possibly negative) upper index.
func BinomialInt(x *Int, k uint) *Int {
	z := New()
	z.c.z.Binomial(x.c.z, k)
	return z
}

// Fibonacci returns F(n), with F(0) = 0 and F(1) = 1.
func Fibonacci(n uint) *Int {
	z := New()
	z.c.z.Fibonacci(n)
	return z
}

// FibonacciPair returns the consecutive terms F(n) and F(n-1), computed
// in one pass. FibonacciPair(0) returns (0, 1), following F(-1) = 1.
func FibonacciPair(n uint) (fn, fnPrev *Int) {
	fn, fnPrev = New(), New()
	fn.c.z.FibonacciPair(fnPrev.c.z, n)
	return fn, fnPrev
}

// Lucas returns L(n), with L(0) = 2 and L(1) = 1.
func Lucas(n uint) *Int {
	z := New()
	z.c.z.Lucas(n)
	return z
}

// LucasPair returns the consecutive terms L(n) and L(n-1), computed in
// one pass. LucasPair(0) returns (2, -1), following L(-1) = -1.
func LucasPair(n uint) (ln, lnPrev *Int) {
	ln, lnPrev = New(), New()
	ln.c.z.LucasPair(lnPrev.c.z, n)
	return ln, lnPrev
}
