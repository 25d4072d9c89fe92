package fixbv

import (
	"math"
	"math/big"

	"github.com/calebcase/fixbv/grid"
)

// operand coerces x into a Number on shift 0 with default flags.
func operand(x any) (*Number, error) {
	if v, ok := x.(*Number); ok {
		if v == nil {
			return nil, UsageError.New("nil number")
		}

		return v, nil
	}

	return New(x, 0)
}

func (n *Number) align(x any) (a, b grid.Pair, err error) {
	o, err := operand(x)
	if err != nil {
		return a, b, err
	}

	a, b = grid.Align(
		grid.Pair{Value: n.si, Shift: n.shift},
		grid.Pair{Value: o.si, Shift: o.shift},
	)

	return a, b, nil
}

// amount returns x as an int when it represents an exact integer. Integer
// valued floats are allowed.
func amount(x any) (int, error) {
	var i *big.Int

	switch v := x.(type) {
	case float32, float64:
		f := toFloat64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, UsageError.New("%v is not an integer value", v)
		}
		i, _ = new(big.Float).SetFloat64(f).Int(nil)
	default:
		o, err := operand(x)
		if err != nil {
			return 0, err
		}
		if !o.IsInteger() {
			return 0, UsageError.New("%s is not an integer value", o.canonical())
		}
		i = o.Int()
	}

	if !i.IsInt64() || i.Int64() > math.MaxInt || i.Int64() < math.MinInt {
		return 0, UsageError.New("%s is too large", i)
	}

	return int(i.Int64()), nil
}

func toFloat64(v any) float64 {
	if f, ok := v.(float32); ok {
		return float64(f)
	}

	return v.(float64)
}

// floorDivMod returns the quotient rounded toward negative infinity and the
// matching remainder, which has the sign of b.
func floorDivMod(a, b *big.Int) (q, m *big.Int, err error) {
	if b.Sign() == 0 {
		return nil, nil, UsageError.New("division by zero")
	}

	q, m = new(big.Int).QuoRem(a, b, new(big.Int))
	if m.Sign() != 0 && m.Sign() != b.Sign() {
		q.Sub(q, one)
		m.Add(m, b)
	}

	return q, m, nil
}

// Add returns n + x.
func (n *Number) Add(x any) (*Number, error) {
	a, b, err := n.align(x)
	if err != nil {
		return nil, err
	}

	return n.unbounded(new(big.Int).Add(a.Value, b.Value), a.Shift), nil
}

// Sub returns n - x.
func (n *Number) Sub(x any) (*Number, error) {
	a, b, err := n.align(x)
	if err != nil {
		return nil, err
	}

	return n.unbounded(new(big.Int).Sub(a.Value, b.Value), a.Shift), nil
}

// Mul returns n * x. The stored integers are multiplied and the shifts
// added; no alignment is needed.
func (n *Number) Mul(x any) (*Number, error) {
	o, err := operand(x)
	if err != nil {
		return nil, err
	}

	shift, err := addShift(n.shift, o.shift)
	if err != nil {
		return nil, err
	}

	return n.unbounded(new(big.Int).Mul(n.si, o.si), shift), nil
}

// Div always fails. True division is not generally exact on a grid; use
// FloorDiv or scale the operands explicitly.
func (n *Number) Div(x any) (*Number, error) {
	return nil, UsageError.New("true division is not supported")
}

// FloorDiv returns floor(n / x) as an integer (shift 0) number.
func (n *Number) FloorDiv(x any) (*Number, error) {
	a, b, err := n.align(x)
	if err != nil {
		return nil, err
	}

	q, _, err := floorDivMod(a.Value, b.Value)
	if err != nil {
		return nil, err
	}

	return n.unbounded(q, 0), nil
}

// Mod returns n - x * floor(n / x) on the common grid. The result has the
// sign of x.
func (n *Number) Mod(x any) (*Number, error) {
	a, b, err := n.align(x)
	if err != nil {
		return nil, err
	}

	_, m, err := floorDivMod(a.Value, b.Value)
	if err != nil {
		return nil, err
	}

	return n.unbounded(m, a.Shift), nil
}

// Pow returns n^x. The power must be a non-negative integer value.
func (n *Number) Pow(x any) (*Number, error) {
	p, err := amount(x)
	if err != nil {
		return nil, err
	}

	if p < 0 {
		return nil, UsageError.New("negative power %d", p)
	}

	shift, err := mulShift(n.shift, p)
	if err != nil {
		return nil, err
	}

	return n.unbounded(new(big.Int).Exp(n.si, big.NewInt(int64(p)), nil), shift), nil
}

// RPow always fails: raising a value to a Number power is not supported.
func (n *Number) RPow(x any) (*Number, error) {
	return nil, UnsupportedError.New("reverse power is not supported")
}

// Neg returns -n.
func (n *Number) Neg() *Number {
	return n.unbounded(new(big.Int).Neg(n.si), n.shift)
}

// Abs returns |n|.
func (n *Number) Abs() *Number {
	return n.unbounded(new(big.Int).Abs(n.si), n.shift)
}

// Pos returns an unbounded copy of n.
func (n *Number) Pos() *Number {
	return n.unbounded(new(big.Int).Set(n.si), n.shift)
}

// Invert returns the bitwise complement of the stored integer. A bounded
// number with min >= 0 is complemented within its bit width; otherwise the
// complement is the two's complement ^si. The shift is kept.
func (n *Number) Invert() *Number {
	si := new(big.Int).Not(n.si)

	if width := n.BitWidth(); width > 0 && n.min.Sign() >= 0 {
		si.And(si, new(big.Int).Sub(pow2(uint(width)), one))
	}

	return n.unbounded(si, n.shift)
}

// Lsh returns n * 2^x by rescaling: the shift grows by x and the stored
// integer is unchanged.
func (n *Number) Lsh(x any) (*Number, error) {
	a, err := amount(x)
	if err != nil {
		return nil, err
	}

	shift, err := addShift(n.shift, a)
	if err != nil {
		return nil, err
	}

	return n.unbounded(new(big.Int).Set(n.si), shift), nil
}

// Rsh returns n * 2^-x by rescaling: the shift shrinks by x and the stored
// integer is unchanged.
func (n *Number) Rsh(x any) (*Number, error) {
	a, err := amount(x)
	if err != nil {
		return nil, err
	}

	if a == math.MinInt {
		return nil, UsageError.New("shift overflow: %d", a)
	}

	shift, err := addShift(n.shift, -a)
	if err != nil {
		return nil, err
	}

	return n.unbounded(new(big.Int).Set(n.si), shift), nil
}

// ShiftBitsLeft shifts the stored integer itself left by x bits in place.
// Unlike Lsh the shift (and so the grid) is unchanged, which changes the
// real value. The bounds are validated; on error n is left unchanged.
func (n *Number) ShiftBitsLeft(x any) error {
	a, err := amount(x)
	if err != nil {
		return err
	}

	if a < 0 {
		return UsageError.New("negative shift count %d", a)
	}

	return n.commit(new(big.Int).Lsh(n.si, uint(a)))
}

// ShiftBitsRight shifts the stored integer itself right by x bits in place,
// dropping the low bits (rounding toward negative infinity). The shift is
// unchanged. The bounds are validated; on error n is left unchanged.
func (n *Number) ShiftBitsRight(x any) error {
	a, err := amount(x)
	if err != nil {
		return err
	}

	if a < 0 {
		return UsageError.New("negative shift count %d", a)
	}

	return n.commit(new(big.Int).Rsh(n.si, uint(a)))
}

// And always fails, see the package documentation.
func (n *Number) And(x any) (*Number, error) {
	return nil, UnsupportedError.New("and is ambiguous for scaled integers, operate on StoredInteger")
}

// Or always fails, see the package documentation.
func (n *Number) Or(x any) (*Number, error) {
	return nil, UnsupportedError.New("or is ambiguous for scaled integers, operate on StoredInteger")
}

// Xor always fails, see the package documentation.
func (n *Number) Xor(x any) (*Number, error) {
	return nil, UnsupportedError.New("xor is ambiguous for scaled integers, operate on StoredInteger")
}

// assign validates the result of an in-place operation before it replaces
// the caller's binding. Results are unbounded, so only a result that gained
// bounds elsewhere can fail here.
func assign(r *Number, err error) (*Number, error) {
	if err != nil {
		return nil, err
	}

	err = checkBounds(r.si, r.shift, r.min, r.max)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// AddAssign returns n + x as the replacement for n. The result is unbounded
// and the receiver itself is not modified:
//
//  n, err = n.AddAssign(x)
func (n *Number) AddAssign(x any) (*Number, error) {
	return assign(n.Add(x))
}

// SubAssign returns n - x as the replacement for n.
func (n *Number) SubAssign(x any) (*Number, error) {
	return assign(n.Sub(x))
}

// MulAssign returns n * x as the replacement for n.
func (n *Number) MulAssign(x any) (*Number, error) {
	return assign(n.Mul(x))
}

// FloorDivAssign returns floor(n / x) as the replacement for n.
func (n *Number) FloorDivAssign(x any) (*Number, error) {
	return assign(n.FloorDiv(x))
}

// ModAssign returns n mod x as the replacement for n.
func (n *Number) ModAssign(x any) (*Number, error) {
	return assign(n.Mod(x))
}

// DivAssign always fails.
func (n *Number) DivAssign(x any) (*Number, error) {
	return nil, UsageError.New("augmented true division is not supported")
}
