package utils

import (
	"bytes"
	"math/big"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRand_buf(t *testing.T) {
	maxLength := 1000
	var vardata = make([]byte, mathrand.Intn(maxLength))
	var varint = int64(mathrand.Intn(maxLength))
	writeBuf := bytes.NewBuffer(nil)
	require.NoError(t, WriteVarInt(writeBuf, varint))
	require.NoError(t, WriteVarBytes(writeBuf, vardata))

	readBuf := bytes.NewBuffer(writeBuf.Bytes())
	varintRead, _, err := ReadVarInt(readBuf)
	assert.Nil(t, err)
	assert.Equal(t, varint, varintRead)
	vardataRead, _, err := ReadVarBytes(readBuf)
	assert.Nil(t, err)
	assert.Equal(t, vardata, vardataRead)
}

func TestBigInt_buf(t *testing.T) {
	huge, _ := new(big.Int).SetString("-123456789012345678901234567890123456789", 10)
	values := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(-1), big.NewInt(255), huge}

	buf := bytes.NewBuffer(nil)
	for _, v := range values {
		require.NoError(t, WriteBigInt(buf, v))
	}
	for _, want := range values {
		got, err := ReadBigInt(buf)
		require.NoError(t, err)
		assert.Equal(t, 0, want.Cmp(got), "want %s got %s", want, got)
	}
	_, err := ReadBigInt(buf)
	assert.Error(t, err)
}

func TestBigInt_badInput(t *testing.T) {
	_, err := ReadBigInt(bytes.NewReader([]byte{2, 0}))
	assert.ErrorIs(t, err, errBadSign)

	// negative zero is not canonical
	_, err = ReadBigInt(bytes.NewReader([]byte{1, 0}))
	assert.ErrorIs(t, err, errBadSign)

	// length prefix larger than the remaining data
	_, err = ReadBigInt(bytes.NewReader([]byte{0, 8, 1}))
	assert.Error(t, err)
}

func TestSha3Hash(t *testing.T) {
	h1, err := Sha3Hash([]byte("share"))
	require.NoError(t, err)
	assert.Len(t, h1, 32)

	h2, err := Sha3Hash(ConcatBytes([]byte("sh"), []byte("are")))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}
