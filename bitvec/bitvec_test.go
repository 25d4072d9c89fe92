package bitvec_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixbv/bitvec"
)

func TestNew(t *testing.T) {
	t.Run("sized", func(t *testing.T) {
		v, err := bitvec.New(big.NewInt(5), 4)
		require.NoError(t, err)
		require.Equal(t, 4, v.Width())
		require.Equal(t, 4, v.Len())
		require.Equal(t, "0101", v.String())
		require.True(t, v.Bit(0))
		require.False(t, v.Bit(1))
		require.True(t, v.Bit(2))
		require.False(t, v.Bit(-1))
		require.Equal(t, int64(5), v.Signed().Int64())
	})

	t.Run("unsized", func(t *testing.T) {
		v, err := bitvec.New(big.NewInt(12), 0)
		require.NoError(t, err)
		require.Equal(t, 0, v.Width())
		require.Equal(t, 4, v.Len())
		require.Equal(t, "1100", v.String())
		require.Equal(t, int64(12), v.Signed().Int64())
	})

	t.Run("signed", func(t *testing.T) {
		v, err := bitvec.New(big.NewInt(0b1110), 4)
		require.NoError(t, err)
		require.Equal(t, int64(-2), v.Signed().Int64())
	})

	t.Run("copy", func(t *testing.T) {
		i := big.NewInt(3)
		v, err := bitvec.New(i, 2)
		require.NoError(t, err)

		i.SetInt64(100)
		require.Equal(t, int64(3), v.Int().Int64())

		v.Int().SetInt64(1)
		require.Equal(t, int64(3), v.Int().Int64())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := bitvec.New(big.NewInt(-1), 4)
		require.True(t, bitvec.Error.Has(err))

		_, err = bitvec.New(big.NewInt(16), 4)
		require.True(t, bitvec.Error.Has(err))

		_, err = bitvec.New(big.NewInt(1), -1)
		require.True(t, bitvec.Error.Has(err))
	})
}
