package field

import (
	"math/big"
	"sort"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredFieldsArePrime(t *testing.T) {
	names := Names()
	sort.Strings(names)
	assert.Equal(t, []string{"M521", "P-256", "P-384", "P-521", "secp256k1"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p := Get(name)
			require.NotNil(t, p)
			assert.True(t, p.ProbablyPrime(20))
		})
	}
}

func TestGetReturnsCopy(t *testing.T) {
	p := Get("secp256k1")
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Cmp(secp256k1.S256().Params().N))

	p.SetInt64(7)
	assert.Equal(t, 0, Get("secp256k1").Cmp(secp256k1.S256().Params().N))
	assert.Nil(t, Get("nope"))
}

func TestParse(t *testing.T) {
	p, err := Parse("P-256")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Cmp(Get("P-256")))

	p, err = Parse("7919")
	require.NoError(t, err)
	assert.Equal(t, int64(7919), p.Int64())

	p, err = Parse("0x1EEF")
	require.NoError(t, err)
	assert.Equal(t, int64(7919), p.Int64())

	_, err = Parse("curve25519")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = Parse("0xzz")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = Parse("7920")
	assert.Error(t, err)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() { Register("P-256", big.NewInt(7)) })
}
