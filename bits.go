package fixbv

import (
	"math/big"

	"github.com/calebcase/fixbv/bitvec"
)

// position translates a real bit index to a stored integer bit position.
func (n *Number) position(i int) int {
	return i - n.shift
}

// Bit reports whether the bit at real index i is set. Index Shift() is the
// least significant stored bit.
func (n *Number) Bit(i int) (bool, error) {
	p := n.position(i)
	if p < 0 {
		return false, UsageError.New("bit %d is below the grid (shift=%d)", i, n.shift)
	}

	return n.si.Bit(p) == 1, nil
}

// SetBit sets (v == 1) or clears (v == 0) the bit at real index i. The
// bounds are validated; on error n is left unchanged.
func (n *Number) SetBit(i int, v any) error {
	p := n.position(i)
	if p < 0 {
		return UsageError.New("bit %d is below the grid (shift=%d)", i, n.shift)
	}

	b, err := integerOf(v)
	if err != nil {
		return err
	}

	if !b.IsUint64() || b.Uint64() > 1 {
		return UsageError.New("n[%d] = v requires v in (0, 1), got v=%s", i, b)
	}

	return n.commit(new(big.Int).SetBit(n.si, p, uint(b.Uint64())))
}

// Slice returns the stored bits [i, j) (real indices, i > j) as a vector of
// width i - j. Pass Shift() as j to start at the least significant stored
// bit.
func (n *Number) Slice(i, j int) (*bitvec.Vector, error) {
	pi, pj := n.position(i), n.position(j)

	if pj < 0 {
		return nil, UsageError.New("n[i:j] requires j >= %d, got j=%d", n.shift, j)
	}

	if pi <= pj {
		return nil, UsageError.New("n[i:j] requires i > j, got i=%d j=%d", i, j)
	}

	v := new(big.Int).And(n.si, new(big.Int).Sub(pow2(uint(pi)), one))
	v.Rsh(v, uint(pj))

	return bitvec.New(v, pi-pj)
}

// SliceFrom returns every stored bit at or above real index j as an unsized
// vector. Negative numbers have infinitely many high bits and cannot be
// sliced without an upper index.
func (n *Number) SliceFrom(j int) (*bitvec.Vector, error) {
	pj := n.position(j)

	if pj < 0 {
		return nil, UsageError.New("n[:j] requires j >= %d, got j=%d", n.shift, j)
	}

	v := new(big.Int).Rsh(n.si, uint(pj))
	if v.Sign() < 0 {
		return nil, RangeError.New("n[:j] of negative value %s requires an upper index", n.canonical())
	}

	return bitvec.New(v, 0)
}

// SetSlice replaces the stored bits [i, j) (real indices, i > j) with v.
// The value must lie in [-2^(i-j), 2^(i-j)). It is ORed in unmasked, so a
// negative value sign extends through every bit above i.
// The bounds are validated; on error n is left unchanged.
func (n *Number) SetSlice(i, j int, v any) error {
	pi, pj := n.position(i), n.position(j)

	if pj < 0 {
		return UsageError.New("n[i:j] = v requires j >= %d, got j=%d", n.shift, j)
	}

	if pi <= pj {
		return UsageError.New("n[i:j] = v requires i > j, got i=%d j=%d", i, j)
	}

	val, err := integerOf(v)
	if err != nil {
		return err
	}

	lim := pow2(uint(pi - pj))
	if val.Cmp(lim) >= 0 || val.Cmp(new(big.Int).Neg(lim)) < 0 {
		return RangeError.New("n[i:j] = v abs(v) too large: i=%d j=%d v=%s", i, j, val)
	}

	bits := new(big.Int).Sub(lim, one)

	si := new(big.Int).AndNot(n.si, new(big.Int).Lsh(bits, uint(pj)))
	si.Or(si, val.Lsh(val, uint(pj)))

	return n.commit(si)
}

// SetSliceFrom replaces every stored bit at or above real index j with v,
// keeping the bits below j. The bounds are validated; on error n is left
// unchanged.
func (n *Number) SetSliceFrom(j int, v any) error {
	pj := n.position(j)

	if pj < 0 {
		return UsageError.New("n[:j] = v requires j >= %d, got j=%d", n.shift, j)
	}

	val, err := integerOf(v)
	if err != nil {
		return err
	}

	low := new(big.Int).And(n.si, new(big.Int).Sub(pow2(uint(pj)), one))

	si := val.Lsh(val, uint(pj))
	si.Add(si, low)

	return n.commit(si)
}

// Bools returns the BitWidth stored bits, most significant first.
func (n *Number) Bools() ([]bool, error) {
	width := n.BitWidth()
	if width == 0 {
		return nil, UsageError.New("cannot iterate over an unsized number")
	}

	bs := make([]bool, 0, width)
	for p := width - 1; p >= 0; p-- {
		bs = append(bs, n.si.Bit(p) == 1)
	}

	return bs, nil
}
