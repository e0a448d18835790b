package radix

import (
	"errors"
	"fmt"
	"math/big"
)

// Digits is the digit alphabet shared by every supported base.
const Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

const (
	MinBase = 2
	MaxBase = len(Digits)
)

var (
	// ErrInvalidBase is returned for a base outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("radix: base out of range")

	// ErrInvalidCoordinate is returned when a share key is not a decimal integer.
	ErrInvalidCoordinate = errors.New("radix: invalid coordinate")
)

// InvalidDigitError reports a character that is not a digit of the stated base.
type InvalidDigitError struct {
	Digit  rune
	Offset int
	Base   int
}

func (e *InvalidDigitError) Error() string {
	if digitValue(e.Digit) < 0 {
		return fmt.Sprintf("radix: bad digit %q at offset %d", e.Digit, e.Offset)
	}
	return fmt.Sprintf("radix: digit %q at offset %d >= base %d", e.Digit, e.Offset, e.Base)
}

// digitValue maps a character of the alphabet to its value, or -1.
func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// Parse converts digits, most significant first, into a non-negative integer
// in the given base. Letters are case-insensitive. Whitespace and signs are
// not accepted.
func Parse(digits string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	b := big.NewInt(int64(base))
	acc := new(big.Int)
	d := new(big.Int)
	for i, c := range digits {
		v := digitValue(c)
		if v < 0 || v >= base {
			return nil, &InvalidDigitError{Digit: c, Offset: i, Base: base}
		}
		acc.Mul(acc, b)
		acc.Add(acc, d.SetInt64(int64(v)))
	}
	return acc, nil
}

// ParseInt parses a signed decimal share coordinate.
func ParseInt(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return x, nil
}

// Format renders a non-negative v in the given base using lower-case digits.
func Format(v *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("radix: cannot format negative value %s", v)
	}
	return v.Text(base), nil
}
