package fixbv

import (
	"math"
	"math/big"

	"github.com/calebcase/fixbv/bitvec"
	"github.com/calebcase/fixbv/grid"
)

var one = big.NewInt(1)

// pow2 returns 2^n.
func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(one, n)
}

type flags struct {
	initReal    bool
	printReal   bool
	persistReal bool
}

// Number is a scaled integer: stored * 2^shift, optionally bounded to
// [min, max) on the stored integer grid.
//
// A Number must not be mutated concurrently. Use Copy to obtain an
// independent value.
//
// The zero value holds no stored integer and is only valid as the target of
// UnmarshalText or UnmarshalBinary. Construct numbers with New or Parse.
type Number struct {
	// Numbers are mutable and must not be used as map keys.
	_ [0]func()

	si    *big.Int
	shift int

	min *big.Int
	max *big.Int

	flags flags
}

type config struct {
	flags flags

	bounded  bool
	min, max any
}

// Option configures a Number at construction.
type Option func(c *config)

// WithBounds sets the bounds [min, max) of the stored integer. Bounds are
// cast exactly like the value, on the same grid.
func WithBounds(min, max any) Option {
	return func(c *config) {
		c.bounded = true
		c.min = min
		c.max = max
	}
}

// AcceptReal allows real (fractional) input, quantized onto the grid.
func AcceptReal() Option {
	return func(c *config) {
		c.flags.initReal = true
	}
}

// PrintReal makes String render the real value instead of the canonical
// stored form.
func PrintReal() Option {
	return func(c *config) {
		c.flags.printReal = true
	}
}

// PersistReal makes TraceString render the real value instead of the bits
// of the stored integer.
func PersistReal() Option {
	return func(c *config) {
		c.flags.persistReal = true
	}
}

// AsReal combines AcceptReal, PrintReal and PersistReal.
func AsReal() Option {
	return func(c *config) {
		c.flags = flags{true, true, true}
	}
}

// New returns the number val * 2^shift.
//
// val may be a *Number (copied along with its shift, bounds and flags; the
// shift argument is then ignored), any Go integer, bool, *big.Int, an
// integer string (base prefixes allowed), a *bitvec.Vector or, with
// AcceptReal, a float32, float64, *big.Rat or *big.Float.
func New(val any, shift int, opts ...Option) (*Number, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	switch src := val.(type) {
	case *Number:
		if src == nil {
			return nil, UsageError.New("nil number")
		}
		if c.bounded {
			return nil, UsageError.New("bounds of a copied number cannot be replaced, use SetBounds")
		}

		n := src.Copy()
		n.flags.initReal = n.flags.initReal || c.flags.initReal
		n.flags.printReal = n.flags.printReal || c.flags.printReal
		n.flags.persistReal = n.flags.persistReal || c.flags.persistReal

		return n, nil
	}

	n := &Number{
		shift: shift,
		flags: c.flags,
	}

	si, err := n.cast(val)
	if err != nil {
		return nil, err
	}

	var min, max *big.Int

	if c.bounded {
		min, max, err = n.castBounds(c.min, c.max)
		if err != nil {
			return nil, err
		}
	}

	err = checkBounds(si, n.shift, min, max)
	if err != nil {
		return nil, err
	}

	n.si, n.min, n.max = si, min, max

	return n, nil
}

// Must panics if err is non-nil and returns n otherwise.
func Must(n *Number, err error) *Number {
	if err != nil {
		panic(err)
	}

	return n
}

// unbounded returns a new number taking ownership of si. Presentation flags
// follow the receiver.
func (n *Number) unbounded(si *big.Int, shift int) *Number {
	return &Number{
		si:    si,
		shift: shift,
		flags: n.flags,
	}
}

// Copy returns an independent copy of n.
func (n *Number) Copy() *Number {
	c := &Number{
		si:    new(big.Int).Set(n.si),
		shift: n.shift,
		flags: n.flags,
	}

	if n.min != nil {
		c.min = new(big.Int).Set(n.min)
		c.max = new(big.Int).Set(n.max)
	}

	return c
}

// cast converts val to a stored integer on n's grid.
func (n *Number) cast(val any) (*big.Int, error) {
	var r *big.Rat

	switch v := val.(type) {
	case float32:
		r = new(big.Rat).SetFloat64(float64(v))
		if r == nil {
			return nil, UsageError.New("non-finite value: %v", v)
		}
	case float64:
		r = new(big.Rat).SetFloat64(v)
		if r == nil {
			return nil, UsageError.New("non-finite value: %v", v)
		}
	case *big.Rat:
		if v == nil {
			return nil, UsageError.New("nil value")
		}
		r = new(big.Rat).Set(v)
	case *big.Float:
		if v == nil {
			return nil, UsageError.New("nil value")
		}
		if v.IsInf() {
			return nil, UsageError.New("non-finite value: %v", v)
		}
		r, _ = v.Rat(nil)
	default:
		return integerOf(val)
	}

	if !n.flags.initReal {
		return nil, UsageError.New("real value %s is not accepted by default, use AcceptReal", r.RatString())
	}

	return quantize(r, n.shift), nil
}

func (n *Number) castBounds(min, max any) (lo, hi *big.Int, err error) {
	if min == nil || max == nil {
		return nil, nil, UsageError.New("expected both min and max or neither, got min=%v max=%v", min, max)
	}

	lo, err = n.cast(min)
	if err != nil {
		return nil, nil, err
	}

	hi, err = n.cast(max)
	if err != nil {
		return nil, nil, err
	}

	if lo.Cmp(hi) >= 0 {
		return nil, nil, UsageError.New("expected min < max, got min=%s max=%s", lo, hi)
	}

	return lo, hi, nil
}

// quantize returns floor(r * 2^-shift + 1/2).
func quantize(r *big.Rat, shift int) *big.Int {
	x := new(big.Rat).Set(r)
	if shift <= 0 {
		x.Mul(x, new(big.Rat).SetInt(pow2(uint(-shift))))
	} else {
		x.Quo(x, new(big.Rat).SetInt(pow2(uint(shift))))
	}
	x.Add(x, big.NewRat(1, 2))

	// Denominators are positive so Euclidean division is floor division.
	return new(big.Int).Div(x.Num(), x.Denom())
}

// integerOf converts integer-like values to a new *big.Int.
func integerOf(val any) (*big.Int, error) {
	switch v := val.(type) {
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case bool:
		if v {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case *big.Int:
		if v == nil {
			return nil, UsageError.New("nil value")
		}
		return new(big.Int).Set(v), nil
	case string:
		i, ok := new(big.Int).SetString(v, 0)
		if !ok {
			return nil, UsageError.New("invalid integer: %q", v)
		}
		return i, nil
	case *bitvec.Vector:
		if v == nil {
			return nil, UsageError.New("nil value")
		}
		return v.Int(), nil
	case *Number:
		if v == nil {
			return nil, UsageError.New("nil number")
		}
		if !v.IsInteger() {
			return nil, UsageError.New("number %s is not integer valued", v.canonical())
		}
		return v.Int(), nil
	case float32, float64, *big.Rat, *big.Float:
		return nil, UsageError.New("real value %v is not accepted here", v)
	case nil:
		return nil, UsageError.New("nil value")
	}

	return nil, UsageError.New("unsupported type %T", val)
}

// checkBounds validates min <= si < max when bounds are set.
func checkBounds(si *big.Int, shift int, min, max *big.Int) error {
	if min == nil || max == nil {
		return nil
	}

	if si.Cmp(min) < 0 || si.Cmp(max) >= 0 {
		return RangeError.New("value %s out of range [%s, %s)", canonical(si, shift), min, max)
	}

	return nil
}

// commit replaces the stored integer after validating it against the bounds.
func (n *Number) commit(si *big.Int) error {
	err := checkBounds(si, n.shift, n.min, n.max)
	if err != nil {
		return err
	}

	n.si = si

	return nil
}

// StoredInteger returns a copy of the stored integer.
func (n *Number) StoredInteger() *big.Int {
	return new(big.Int).Set(n.si)
}

// SetStoredInteger replaces the stored integer. On a range error n is left
// unchanged.
func (n *Number) SetStoredInteger(val any) error {
	si, err := integerOf(val)
	if err != nil {
		return err
	}

	return n.commit(si)
}

// Shift returns the power of two scale of n. It never changes.
func (n *Number) Shift() int {
	return n.shift
}

// FractionLength returns the number of bits below the binary point, -shift.
func (n *Number) FractionLength() int {
	return -n.shift
}

// Min returns a copy of the lower stored bound or nil when unbounded.
func (n *Number) Min() *big.Int {
	if n.min == nil {
		return nil
	}

	return new(big.Int).Set(n.min)
}

// Max returns a copy of the (exclusive) upper stored bound or nil when
// unbounded.
func (n *Number) Max() *big.Int {
	if n.max == nil {
		return nil
	}

	return new(big.Int).Set(n.max)
}

// Bounded reports whether n carries bounds.
func (n *Number) Bounded() bool {
	return n.min != nil
}

// SetBounds replaces the bounds. Passing nil for both clears them. On error
// n is left unchanged.
func (n *Number) SetBounds(min, max any) error {
	if min == nil && max == nil {
		n.min, n.max = nil, nil

		return nil
	}

	lo, hi, err := n.castBounds(min, max)
	if err != nil {
		return err
	}

	err = checkBounds(n.si, n.shift, lo, hi)
	if err != nil {
		return err
	}

	n.min, n.max = lo, hi

	return nil
}

// MinReal returns the real value of the lower bound or nil when unbounded.
func (n *Number) MinReal() *big.Rat {
	if n.min == nil {
		return nil
	}

	return toRat(n.min, n.shift)
}

// MaxReal returns the real value of the upper bound or nil when unbounded.
func (n *Number) MaxReal() *big.Rat {
	if n.max == nil {
		return nil
	}

	return toRat(n.max, n.shift)
}

// BitWidth returns the number of two's complement bits needed to hold any
// value in [min, max), or zero when unbounded.
func (n *Number) BitWidth() int {
	if n.min == nil {
		return 0
	}

	lo := grid.BitWidth(n.min)
	hi := grid.BitWidth(new(big.Int).Sub(n.max, one))
	if lo > hi {
		return lo
	}

	return hi
}

// Len is BitWidth.
func (n *Number) Len() int {
	return n.BitWidth()
}

// Resolution returns the real value of one stored unit, 2^shift.
func (n *Number) Resolution() *big.Rat {
	return toRat(one, n.shift)
}

func toRat(si *big.Int, shift int) *big.Rat {
	if shift >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(si, uint(shift)))
	}

	return new(big.Rat).SetFrac(si, pow2(uint(-shift)))
}

// Rat returns the exact real value.
func (n *Number) Rat() *big.Rat {
	return toRat(n.si, n.shift)
}

// Float64 returns the nearest float64 to the real value and whether it is
// exact.
func (n *Number) Float64() (f float64, exact bool) {
	return n.Rat().Float64()
}

// Int returns the real value truncated toward zero.
func (n *Number) Int() *big.Int {
	if n.shift >= 0 {
		return new(big.Int).Lsh(n.si, uint(n.shift))
	}

	return new(big.Int).Quo(n.si, pow2(uint(-n.shift)))
}

// IsZero reports whether the value is zero.
func (n *Number) IsZero() bool {
	return n.si.Sign() == 0
}

// IsInteger reports whether the real value is a whole number.
func (n *Number) IsInteger() bool {
	if n.shift >= 0 {
		return true
	}

	m := new(big.Int).Mod(n.si, pow2(uint(-n.shift)))

	return m.Sign() == 0
}

// RescaleTo returns n on the grid of the given shift. Moving to a finer grid
// is exact; moving to a coarser grid floors the stored integer. The result
// is unbounded.
func (n *Number) RescaleTo(shift int) *Number {
	si := new(big.Int)

	if n.shift >= shift {
		si.Lsh(n.si, uint(n.shift-shift))
	} else {
		// Rsh rounds toward negative infinity.
		si.Rsh(n.si, uint(shift-n.shift))
	}

	return n.unbounded(si, shift)
}

// FixTo returns n rescaled onto other's grid.
func (n *Number) FixTo(other *Number) *Number {
	return n.RescaleTo(other.shift)
}

// Align returns n and other re-expressed on their common, finer grid.
func (n *Number) Align(other any) (*Number, *Number, error) {
	a, b, err := n.align(other)
	if err != nil {
		return nil, nil, err
	}

	return n.unbounded(new(big.Int).Set(a.Value), a.Shift),
		n.unbounded(new(big.Int).Set(b.Value), b.Shift),
		nil
}

// Signed returns the stored integer reinterpreted as signed.
//
// The classification is based on the bounds:
//
//  ----+----+----+----+----+----+----+----
//     -3   -2   -1    0    1    2    3
//  1                   min  max
//  2                        min  max
//  3              min       max
//  4              min            max
//  5         min            max
//  6         min       max
//  7         min  max
//  8   neither min nor max is set
//
// Only cases 1 and 2 (min >= 0 with a non-zero bit width) are considered
// unsigned: their bits are read as a two's complement number of BitWidth
// bits. In every other case the stored integer is returned unchanged.
func (n *Number) Signed() *big.Int {
	width := n.BitWidth()

	if n.min == nil || n.min.Sign() < 0 || width == 0 {
		return n.StoredInteger()
	}

	msb := uint(width - 1)

	v := new(big.Int).And(n.si, new(big.Int).Sub(pow2(msb), one))
	if n.si.Bit(int(msb)) == 1 {
		v.Sub(v, pow2(msb))
	}

	return v
}

// Hash always fails: a Number is mutable through its bit methods and is not
// safe to use as a key.
func (n *Number) Hash() (uint64, error) {
	return 0, UsageError.New("numbers are unhashable")
}

// addShift returns a + b or an error on overflow.
func addShift(a, b int) (int, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, UsageError.New("shift overflow: %d + %d", a, b)
	}

	return c, nil
}

// mulShift returns a * b or an error on overflow.
func mulShift(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, UsageError.New("shift overflow: %d * %d", a, b)
	}

	return c, nil
}
