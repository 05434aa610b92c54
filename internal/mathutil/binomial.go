// Package mathutil provides exact combinatorial helpers for curve evaluation.
package mathutil

import "fmt"

// BinomialRow returns row n of Pascal's triangle: C(n, 0) ... C(n, n).
//
// The row is built iteratively with additions only, so there is no
// intermediate factorial to overflow. A factorial-based n!/(k!(n-k)!)
// overflows int32 for n > 12 and int64 for n > 20; this form stays exact
// for n ≤ MaxExactBinomialDegree and degrades gracefully (rounding, not
// wraparound) beyond it.
//
// BinomialRow panics if n is negative.
func BinomialRow(n int) []float64 {
	return BinomialRowInto(make([]float64, n+1), n)
}

// BinomialRowInto writes row n of Pascal's triangle into dst[:n+1] and
// returns that slice. dst must have room for n+1 entries.
func BinomialRowInto(dst []float64, n int) []float64 {
	if n < 0 {
		panic(fmt.Sprintf("mathutil: negative binomial degree %d", n))
	}
	if len(dst) < n+1 {
		panic(fmt.Sprintf("mathutil: binomial row %d needs %d entries, have %d", n, n+1, len(dst)))
	}

	row := dst[:n+1]
	row[0] = 1
	for i := 1; i <= n; i++ {
		// Update right to left so row[k-1] still holds the previous row.
		row[i] = 1
		for k := i - 1; k > 0; k-- {
			row[k] += row[k-1]
		}
	}
	return row
}

// Binomial returns the binomial coefficient C(n, k) = n! / (k! (n-k)!).
//
// It panics when n < 0, k < 0 or k > n, matching gonum's combin.Binomial.
func Binomial(n, k int) float64 {
	if n < 0 || k < 0 {
		panic(fmt.Sprintf("mathutil: negative binomial argument (%d, %d)", n, k))
	}
	if k > n {
		panic(fmt.Sprintf("mathutil: binomial k=%d exceeds n=%d", k, n))
	}

	// (n, k) = (n, n-k)
	if k > n-k {
		k = n - k
	}

	// Multiplicative form over the shorter half. Every partial product
	// b·(n-k+i)/i is itself a binomial coefficient, so it stays integral.
	b := 1.0
	for i := 1; i <= k; i++ {
		b = b * float64(n-k+i) / float64(i)
	}
	return b
}
