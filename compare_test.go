package fixbv_test

import (
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixbv"
)

func TestCompare(t *testing.T) {
	type TC struct {
		A    *fixbv.Number
		X    any
		Cmp  int
		Mark error
	}

	tcs := []TC{
		{A: num(4, -1), X: num(1, 1), Cmp: 0, Mark: oops.New("unexpected")},
		{A: num(3, -1), X: 2, Cmp: -1, Mark: oops.New("unexpected")},
		{A: num(3, -1), X: 1, Cmp: 1, Mark: oops.New("unexpected")},
		{A: num(-1, 10), X: num(1, -10), Cmp: -1, Mark: oops.New("unexpected")},
		{A: num(0, 5), X: 0, Cmp: 0, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		c, err := tc.A.Cmp(tc.X)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Cmp, c, tc.Mark)

		eq, err := tc.A.Equal(tc.X)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Cmp == 0, eq, tc.Mark)

		lt, err := tc.A.Less(tc.X)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Cmp < 0, lt, tc.Mark)

		le, err := tc.A.LessEqual(tc.X)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Cmp <= 0, le, tc.Mark)

		gt, err := tc.A.Greater(tc.X)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Cmp > 0, gt, tc.Mark)

		ge, err := tc.A.GreaterEqual(tc.X)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Cmp >= 0, ge, tc.Mark)
	}
}

func TestCompareErrors(t *testing.T) {
	n := num(3, -1)

	_, err := n.Equal(1.5)
	require.True(t, fixbv.UsageError.Has(err), "%+v", err)

	_, err = n.Greater("nope")
	require.True(t, fixbv.UsageError.Has(err), "%+v", err)
}
