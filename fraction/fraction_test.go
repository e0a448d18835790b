package fraction

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frac(t *testing.T, n, d int64) Fraction {
	t.Helper()
	f, err := FromInt64(n, d)
	require.NoError(t, err)
	return f
}

func toRat(f Fraction) *big.Rat {
	return new(big.Rat).SetFrac(f.Num(), f.Denom())
}

func requireCanonical(t *testing.T, f Fraction) {
	t.Helper()
	n, d := f.Num(), f.Denom()
	require.Equal(t, 1, d.Sign(), "denominator must be positive: %s", f)
	g := new(big.Int).GCD(nil, nil, n, d)
	require.Equal(t, 0, g.Cmp(big.NewInt(1)), "not in lowest terms: %s", f)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		n, d         int64
		wantN, wantD int64
	}{
		{-4, -6, 2, 3},
		{4, -6, -2, 3},
		{-4, 6, -2, 3},
		{0, -5, 0, 1},
		{0, 7, 0, 1},
		{12, 4, 3, 1},
		{1, 1, 1, 1},
		{-9, 3, -3, 1},
	}
	for _, tt := range tests {
		f := frac(t, tt.n, tt.d)
		assert.Equal(t, tt.wantN, f.Num().Int64(), "%d/%d", tt.n, tt.d)
		assert.Equal(t, tt.wantD, f.Denom().Int64(), "%d/%d", tt.n, tt.d)
		requireCanonical(t, f)
	}
}

func TestZeroDenominator(t *testing.T) {
	_, err := FromInt64(1, 0)
	assert.ErrorIs(t, err, ErrZeroDenominator)

	_, err = New(big.NewInt(0), big.NewInt(0))
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestNewDoesNotAliasInputs(t *testing.T) {
	n, d := big.NewInt(-4), big.NewInt(-6)
	f, err := New(n, d)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), n.Int64())
	assert.Equal(t, int64(-6), d.Int64())

	f.Num().SetInt64(99)
	assert.Equal(t, int64(2), f.Num().Int64())
}

func TestAddMul(t *testing.T) {
	half := frac(t, 1, 2)
	third := frac(t, 1, 3)

	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Mul(third).String())
	assert.Equal(t, "1/1", half.Add(half).String())
	assert.Equal(t, "0/1", half.Add(frac(t, -1, 2)).String())
	assert.Equal(t, "-3/2", frac(t, 1, -2).MulInt(big.NewInt(3)).String())
}

func TestZeroValue(t *testing.T) {
	var z Fraction
	assert.True(t, z.Equal(Zero()))
	assert.Equal(t, "0/1", z.String())
	assert.Equal(t, "1/2", z.Add(frac(t, 1, 2)).String())
	assert.True(t, z.IsInt())
}

func TestFromInt(t *testing.T) {
	n := big.NewInt(-17)
	f := FromInt(n)
	assert.Equal(t, "-17/1", f.String())
	n.SetInt64(5)
	assert.Equal(t, "-17/1", f.String())
	assert.True(t, f.Mul(One()).Equal(f))
	assert.True(t, f.Add(Zero()).Equal(f))
}

func TestInt(t *testing.T) {
	v, ok := frac(t, 10, 5).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(2), v.Int64())

	_, ok = frac(t, 7, 2).Int()
	assert.False(t, ok)
	assert.False(t, frac(t, 7, 2).IsInt())
}

// Randomised agreement with math/big.Rat.
func TestMatchesBigRat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randFrac := func() Fraction {
		d := rng.Int63n(2000) - 1000
		if d == 0 {
			d = 1
		}
		return frac(t, rng.Int63n(2000)-1000, d)
	}
	for i := 0; i < 500; i++ {
		a, b := randFrac(), randFrac()

		sum := a.Add(b)
		requireCanonical(t, sum)
		assert.Equal(t, 0, toRat(sum).Cmp(new(big.Rat).Add(toRat(a), toRat(b))))

		prod := a.Mul(b)
		requireCanonical(t, prod)
		assert.Equal(t, 0, toRat(prod).Cmp(new(big.Rat).Mul(toRat(a), toRat(b))))
	}
}
