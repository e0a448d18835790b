package shamir

import (
	"bytes"
	"fmt"

	"github.com/izouxv/goReconstruct/utils"
)

// Encode serializes the share as two signed, length-prefixed integers.
func (s *Share) Encode() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := utils.WriteBigInt(buf, s.X); err != nil {
		return nil, err
	}
	if err := utils.WriteBigInt(buf, s.Y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes a byte slice into the share.
func (s *Share) Decode(data []byte) error {
	buf := bytes.NewBuffer(data)
	x, err := utils.ReadBigInt(buf)
	if err != nil {
		return fmt.Errorf("shamir: decode x: %w", err)
	}
	y, err := utils.ReadBigInt(buf)
	if err != nil {
		return fmt.Errorf("shamir: decode y: %w", err)
	}
	if buf.Len() != 0 {
		return fmt.Errorf("shamir: %d trailing bytes after share", buf.Len())
	}
	s.X, s.Y = x, y
	return nil
}

// Fingerprint returns the SHA3-256 digest of the encoded shares taken in
// ascending x order, so it does not depend on the order they are passed in.
func Fingerprint(shares []*Share) ([]byte, error) {
	sorted := make([]*Share, len(shares))
	copy(sorted, shares)
	SortByX(sorted)

	encoded := make([][]byte, 0, len(sorted))
	for _, s := range sorted {
		b, err := s.Encode()
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, b)
	}
	return utils.Sha3Hash(utils.ConcatBytes(encoded...))
}
