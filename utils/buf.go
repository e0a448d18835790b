package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// MaxVarBytes bounds the length prefix accepted by ReadVarBytes.
var MaxVarBytes int64 = 1 << 20

var errBadSign = errors.New("utils: invalid big.Int sign byte")

type readByte struct {
	in   io.Reader
	read int
}

func (s *readByte) ReadByte() (byte, error) {
	var data [1]byte
	_, err := io.ReadFull(s.in, data[:])
	if err != nil {
		return 0, err
	}
	s.read++
	return data[0], nil
}

func ReadVarInt(sr io.Reader) (num int64, n int64, err error) {
	rb := &readByte{in: sr}
	num, err = binary.ReadVarint(rb)
	return num, int64(rb.read), err
}

func ReadVarBytes(r io.Reader) (data []byte, varIntLen int, err error) {
	num, n, err := ReadVarInt(r)
	if err != nil {
		return nil, 0, err
	}
	if num < 0 || num > MaxVarBytes {
		return nil, int(n), fmt.Errorf("utils: invalid length prefix %d", num)
	}
	varIntLen = int(n)
	data = make([]byte, num)
	_, err = io.ReadFull(r, data)
	return data, varIntLen, err
}

func WriteVarInt(w io.Writer, num int64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], num)
	_, err := w.Write(buf[:n])
	return err
}

func WriteVarBytes(w io.Writer, data []byte) error {
	if err := WriteVarInt(w, int64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// WriteBigInt writes a sign byte (0 for >= 0, 1 for < 0) followed by the
// length-prefixed big-endian magnitude.
func WriteBigInt(w io.Writer, v *big.Int) error {
	sign := byte(0)
	if v.Sign() < 0 {
		sign = 1
	}
	if _, err := w.Write([]byte{sign}); err != nil {
		return err
	}
	return WriteVarBytes(w, v.Bytes())
}

func ReadBigInt(r io.Reader) (*big.Int, error) {
	rb := &readByte{in: r}
	sign, err := rb.ReadByte()
	if err != nil {
		return nil, err
	}
	if sign > 1 {
		return nil, errBadSign
	}
	mag, _, err := ReadVarBytes(r)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(mag)
	if sign == 1 {
		if v.Sign() == 0 {
			return nil, errBadSign
		}
		v.Neg(v)
	}
	return v, nil
}
