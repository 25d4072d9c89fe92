package fixbv

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/calebcase/fixbv/grid"
)

func canonical(si *big.Int, shift int) string {
	return grid.Pair{Value: si, Shift: shift}.String()
}

func (n *Number) canonical() string {
	return canonical(n.si, n.shift)
}

// realString renders the exact real value in decimal. Values on a grid of
// shift >= 0 print as integers; finer grids print every significant
// fractional digit.
func (n *Number) realString() string {
	if n.shift >= 0 {
		return n.Int().String()
	}

	s := n.Rat().FloatString(-n.shift)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}

	return s
}

// String returns the canonical form "<stored> * 2**<shift>" or, with
// PrintReal, the real value.
func (n *Number) String() string {
	if n.flags.printReal {
		return n.realString()
	}

	return n.canonical()
}

// GoString returns a constructor expression producing an equal number.
func (n *Number) GoString() string {
	if n.min == nil {
		return fmt.Sprintf("fixbv.New(%s, %d)", n.si, n.shift)
	}

	return fmt.Sprintf("fixbv.New(%s, %d, fixbv.WithBounds(%s, %s))", n.si, n.shift, n.min, n.max)
}

// TraceString returns the form used when the value is persisted to a trace:
// a "b" followed by the two's complement bits of the stored integer over
// BitWidth bits (or the minimal width when unsized), or the real value with
// PersistReal.
func (n *Number) TraceString() string {
	if n.flags.persistReal {
		return n.realString()
	}

	width := n.BitWidth()
	if width == 0 {
		width = grid.BitWidth(n.si)
	}
	if width == 0 {
		width = 1
	}

	v := new(big.Int).Mod(n.si, pow2(uint(width)))
	bits := v.Text(2)

	return "b" + strings.Repeat("0", width-len(bits)) + bits
}

// Parse reads the canonical form "<stored> * 2**<shift>" as produced by
// String. The stored integer accepts base prefixes.
func Parse(s string, opts ...Option) (n *Number, err error) {
	stored, shift, ok := strings.Cut(s, "*")
	if !ok {
		return nil, UsageError.New("invalid canonical form: %q", s)
	}

	shift = strings.TrimSpace(shift)
	if !strings.HasPrefix(shift, "2**") {
		return nil, UsageError.New("invalid canonical form: %q", s)
	}

	e, err := strconv.Atoi(strings.TrimPrefix(shift, "2**"))
	if err != nil {
		return nil, UsageError.New("invalid shift: %q", s)
	}

	si, ok := new(big.Int).SetString(strings.TrimSpace(stored), 0)
	if !ok {
		return nil, UsageError.New("invalid stored integer: %q", s)
	}

	return New(si, e, opts...)
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
// The bounds are not included.
func (n *Number) MarshalText() ([]byte, error) {
	return []byte(n.canonical()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The bounds of n are
// cleared and its flags kept.
func (n *Number) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}

	n.si, n.shift = p.si, p.shift
	n.min, n.max = nil, nil

	return nil
}
