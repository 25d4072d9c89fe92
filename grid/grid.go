package grid

import (
	"fmt"
	"math/big"
)

// Pair is a stored integer together with the shift of its grid.
type Pair struct {
	Value *big.Int
	Shift int
}

// String returns the pair as "value * 2**shift".
func (p Pair) String() string {
	return fmt.Sprintf("%s * 2**%d", p.Value, p.Shift)
}

// Align re-expresses a and b on the finer of their two grids. The pair with
// the finer (or equal) shift is returned unchanged.
func Align(a, b Pair) (Pair, Pair) {
	if a.Shift < b.Shift {
		b, a = Align(b, a)

		return a, b
	}

	diff := uint(a.Shift - b.Shift)

	return Pair{
		Value: new(big.Int).Lsh(a.Value, diff),
		Shift: b.Shift,
	}, b
}

// BitWidth returns the minimal number of two's complement bits needed to
// represent v on its own. Zero needs no bits.
func BitWidth(v *big.Int) int {
	switch v.Sign() {
	case 0:
		return 0
	case -1:
		// ceil(log2(-v)) + 1 == bitlen(-v - 1) + 1
		m := new(big.Int).Neg(v)
		m.Sub(m, big.NewInt(1))

		return m.BitLen() + 1
	default:
		// ceil(log2(v + 1)) + 1 == bitlen(v) + 1
		return v.BitLen() + 1
	}
}
