// Package bitvec provides an unsigned bit container with an optional
// declared width. It is the result of slicing a scaled integer and may be
// assigned back into one.
package bitvec

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("bitvec")

// Vector is an unsigned integer of a declared bit width. A width of zero
// means the vector is unsized.
type Vector struct {
	value *big.Int
	width int
}

// New returns a vector holding v. The value must be non-negative and, when
// width is non-zero, must fit in width bits.
func New(v *big.Int, width int) (*Vector, error) {
	switch {
	case width < 0:
		return nil, Error.New("invalid: width=%d", width)
	case v.Sign() < 0:
		return nil, Error.New("invalid: negative value=%s", v)
	case width > 0 && v.BitLen() > width:
		return nil, Error.New("invalid: value=%s exceeds width=%d", v, width)
	}

	return &Vector{
		value: new(big.Int).Set(v),
		width: width,
	}, nil
}

// Int returns a copy of the unsigned value.
func (v *Vector) Int() *big.Int {
	return new(big.Int).Set(v.value)
}

// Width returns the declared width or zero when unsized.
func (v *Vector) Width() int {
	return v.width
}

// Len returns the number of significant bits: the width when sized,
// otherwise the bit length of the value.
func (v *Vector) Len() int {
	if v.width > 0 {
		return v.width
	}

	return v.value.BitLen()
}

// Bit reports whether bit i is set.
func (v *Vector) Bit(i int) bool {
	if i < 0 {
		return false
	}

	return v.value.Bit(i) == 1
}

// Signed interprets a sized vector as a two's complement number. Unsized
// vectors are returned unchanged.
func (v *Vector) Signed() *big.Int {
	r := new(big.Int).Set(v.value)
	if v.width == 0 || v.value.Bit(v.width-1) == 0 {
		return r
	}

	return r.Sub(r, new(big.Int).Lsh(big.NewInt(1), uint(v.width)))
}

// String returns the bits most significant first, zero padded to the
// declared width.
func (v *Vector) String() string {
	s := v.value.Text(2)
	if v.width > len(s) {
		s = strings.Repeat("0", v.width-len(s)) + s
	}

	return s
}
