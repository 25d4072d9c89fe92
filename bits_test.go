package fixbv_test

import (
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixbv"
	"github.com/calebcase/fixbv/bitvec"
)

func TestBit(t *testing.T) {
	n := num(0b1101_0110, -2)

	b, err := n.Bit(-2)
	require.NoError(t, err)
	require.False(t, b)

	b, err = n.Bit(-1)
	require.NoError(t, err)
	require.True(t, b)

	b, err = n.Bit(5)
	require.NoError(t, err)
	require.True(t, b)

	b, err = n.Bit(100)
	require.NoError(t, err)
	require.False(t, b)

	_, err = n.Bit(-3)
	require.True(t, fixbv.UsageError.Has(err), "%+v", err)

	b, err = num(-1, 0).Bit(100)
	require.NoError(t, err)
	require.True(t, b)
}

func TestSetBit(t *testing.T) {
	n := num(0, 0)

	require.NoError(t, n.SetBit(3, 1))
	require.Equal(t, "8", n.StoredInteger().String())

	require.NoError(t, n.SetBit(3, false))
	require.Equal(t, "0", n.StoredInteger().String())

	err := n.SetBit(3, 2)
	require.True(t, fixbv.UsageError.Has(err), "%+v", err)

	err = n.SetBit(-1, 1)
	require.True(t, fixbv.UsageError.Has(err), "%+v", err)

	m := num(0, -1, fixbv.WithBounds(0, 8))

	require.NoError(t, m.SetBit(1, 1))
	require.Equal(t, "4", m.StoredInteger().String())

	err = m.SetBit(2, 1)
	require.True(t, fixbv.RangeError.Has(err), "%+v", err)
	require.Equal(t, "4", m.StoredInteger().String())
}

func TestSlice(t *testing.T) {
	type TC struct {
		N     *fixbv.Number
		I, J  int
		Value string
		Width int
		Err   *errs.Class
		Mark  error
	}

	tcs := []TC{
		{N: num(0b1101_0110, -2), I: 4, J: 0, Value: "5", Width: 4, Mark: oops.New("unexpected")},
		{N: num(0b1101_0110, -2), I: 6, J: -2, Value: "214", Width: 8, Mark: oops.New("unexpected")},
		{N: num(-1, 0), I: 4, J: 0, Value: "15", Width: 4, Mark: oops.New("unexpected")},
		{N: num(0b1101_0110, -2), I: 4, J: -3, Err: &fixbv.UsageError, Mark: oops.New("unexpected")},
		{N: num(0b1101_0110, -2), I: 0, J: 0, Err: &fixbv.UsageError, Mark: oops.New("unexpected")},
		{N: num(0b1101_0110, -2), I: -1, J: 0, Err: &fixbv.UsageError, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		v, err := tc.N.Slice(tc.I, tc.J)
		if tc.Err != nil {
			require.True(t, tc.Err.Has(err), "%+v %v", err, tc.Mark)

			continue
		}

		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Value, v.Int().String(), tc.Mark)
		require.Equal(t, tc.Width, v.Width(), tc.Mark)
	}
}

func TestSliceFrom(t *testing.T) {
	n := num(0b1101_0110, -2)

	v, err := n.SliceFrom(0)
	require.NoError(t, err)
	require.Equal(t, "53", v.Int().String())
	require.Equal(t, 0, v.Width())

	v, err = n.SliceFrom(n.Shift())
	require.NoError(t, err)
	require.Equal(t, "214", v.Int().String())

	_, err = n.SliceFrom(-3)
	require.True(t, fixbv.UsageError.Has(err), "%+v", err)

	_, err = num(-4, 0).SliceFrom(0)
	require.True(t, fixbv.RangeError.Has(err), "%+v", err)
}

func TestSetSlice(t *testing.T) {
	n := num(0, 0)

	require.NoError(t, n.SetSlice(4, 0, 15))
	require.Equal(t, "15", n.StoredInteger().String())

	require.NoError(t, n.SetSlice(8, 4, 3))
	require.Equal(t, "63", n.StoredInteger().String())

	require.NoError(t, n.SetSlice(4, 2, 0))
	require.Equal(t, "51", n.StoredInteger().String())

	err := n.SetSlice(4, 0, 16)
	require.True(t, fixbv.RangeError.Has(err), "%+v", err)

	err = n.SetSlice(4, 0, -17)
	require.True(t, fixbv.RangeError.Has(err), "%+v", err)

	err = n.SetSlice(0, 4, 1)
	require.True(t, fixbv.UsageError.Has(err), "%+v", err)

	v, err := bitvec.New(big.NewInt(0b101), 3)
	require.NoError(t, err)
	require.NoError(t, n.SetSlice(3, 0, v))
	require.Equal(t, "53", n.StoredInteger().String())

	m := num(0, -2, fixbv.WithBounds(0, 16))

	require.NoError(t, m.SetSlice(0, -2, 3))
	require.Equal(t, "3", m.StoredInteger().String())

	err = m.SetSlice(4, 2, 1)
	require.True(t, fixbv.RangeError.Has(err), "%+v", err)
	require.Equal(t, "3", m.StoredInteger().String())
}

func TestSetSliceNegative(t *testing.T) {
	type TC struct {
		Stored int
		I, J   int
		Value  int
		Out    string
		Mark   error
	}

	tcs := []TC{
		{Stored: 0, I: 4, J: 0, Value: -1, Out: "-1", Mark: oops.New("unexpected")},
		{Stored: 256, I: 4, J: 0, Value: -1, Out: "-1", Mark: oops.New("unexpected")},
		{Stored: 3, I: 6, J: 2, Value: -2, Out: "-5", Mark: oops.New("unexpected")},
		{Stored: 0, I: 4, J: 0, Value: -16, Out: "-16", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		n := num(tc.Stored, 0)

		require.NoError(t, n.SetSlice(tc.I, tc.J, tc.Value), tc.Mark)
		require.Equal(t, tc.Out, n.StoredInteger().String(), tc.Mark)
	}

	m := num(0, 0, fixbv.WithBounds(0, 256))

	err := m.SetSlice(4, 0, -1)
	require.True(t, fixbv.RangeError.Has(err), "%+v", err)
	require.Equal(t, "0", m.StoredInteger().String())
}

func TestSetSliceFrom(t *testing.T) {
	n := num(0b1011, 0)

	require.NoError(t, n.SetSliceFrom(2, 5))
	require.Equal(t, "23", n.StoredInteger().String())

	require.NoError(t, n.SetSliceFrom(2, -1))
	require.Equal(t, "-1", n.StoredInteger().String())

	err := n.SetSliceFrom(-1, 0)
	require.True(t, fixbv.UsageError.Has(err), "%+v", err)

	m := num(1, 0, fixbv.WithBounds(0, 8))

	err = m.SetSliceFrom(1, 4)
	require.True(t, fixbv.RangeError.Has(err), "%+v", err)
	require.Equal(t, "1", m.StoredInteger().String())
}

func TestBools(t *testing.T) {
	bs, err := num(5, 0, fixbv.WithBounds(0, 8)).Bools()
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false, true}, bs)

	bs, err = num(-3, 0, fixbv.WithBounds(-4, 4)).Bools()
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, bs)

	_, err = num(5, 0).Bools()
	require.True(t, fixbv.UsageError.Has(err), "%+v", err)
}
