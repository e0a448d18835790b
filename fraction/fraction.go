package fraction

import (
	"errors"
	"math/big"
)

// ErrZeroDenominator is returned when a fraction is built with denominator 0.
var ErrZeroDenominator = errors.New("fraction: zero denominator")

var bigOne = big.NewInt(1)

// Fraction is an exact rational number kept in lowest terms with a positive
// denominator. It has value semantics: operations never modify their operands
// and accessors return copies. The zero value is 0/1.
type Fraction struct {
	num *big.Int
	den *big.Int
}

// New returns n/d in canonical form.
func New(n, d *big.Int) (Fraction, error) {
	return normalize(new(big.Int).Set(n), new(big.Int).Set(d))
}

// FromInt returns n/1.
func FromInt(n *big.Int) Fraction {
	return Fraction{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// FromInt64 returns n/d in canonical form.
func FromInt64(n, d int64) (Fraction, error) {
	return normalize(big.NewInt(n), big.NewInt(d))
}

func Zero() Fraction { return Fraction{num: new(big.Int), den: big.NewInt(1)} }

func One() Fraction { return Fraction{num: big.NewInt(1), den: big.NewInt(1)} }

// normalize takes ownership of n and d.
func normalize(n, d *big.Int) (Fraction, error) {
	if d.Sign() == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	// GCD(0, d) = d, so 0/d becomes 0/1.
	g := new(big.Int).GCD(nil, nil, n, d)
	if g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Fraction{num: n, den: d}, nil
}

// mustNormalize is used where the denominator is a product of positive
// denominators and therefore cannot be zero.
func mustNormalize(n, d *big.Int) Fraction {
	f, err := normalize(n, d)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Fraction) parts() (*big.Int, *big.Int) {
	if f.den == nil {
		return new(big.Int), bigOne
	}
	return f.num, f.den
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	n, _ := f.parts()
	return new(big.Int).Set(n)
}

// Denom returns a copy of the denominator, always positive.
func (f Fraction) Denom() *big.Int {
	_, d := f.parts()
	return new(big.Int).Set(d)
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	an, ad := f.parts()
	bn, bd := g.parts()
	n := new(big.Int).Mul(an, bd)
	n.Add(n, new(big.Int).Mul(bn, ad))
	return mustNormalize(n, new(big.Int).Mul(ad, bd))
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	an, ad := f.parts()
	bn, bd := g.parts()
	return mustNormalize(new(big.Int).Mul(an, bn), new(big.Int).Mul(ad, bd))
}

// MulInt returns f * y.
func (f Fraction) MulInt(y *big.Int) Fraction {
	n, d := f.parts()
	return mustNormalize(new(big.Int).Mul(n, y), new(big.Int).Set(d))
}

// IsInt reports whether the denominator is 1.
func (f Fraction) IsInt() bool {
	_, d := f.parts()
	return d.Cmp(bigOne) == 0
}

// Int returns the integer value of f and whether f is a whole number.
func (f Fraction) Int() (*big.Int, bool) {
	n, d := f.parts()
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	return q, r.Sign() == 0
}

func (f Fraction) Equal(g Fraction) bool {
	an, ad := f.parts()
	bn, bd := g.parts()
	return an.Cmp(bn) == 0 && ad.Cmp(bd) == 0
}

func (f Fraction) String() string {
	n, d := f.parts()
	return n.String() + "/" + d.String()
}
