package field

import (
	"crypto/elliptic"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrUnknownField is returned by Parse for a name that is neither registered
// nor a numeric literal.
var ErrUnknownField = errors.New("field: unknown field")

// Field is a map of registered prime moduli, keyed by name.
var Field = make(map[string]*big.Int)

// Register makes a prime modulus available by name.
func Register(name string, prime *big.Int) {
	if _, ok := Field[name]; ok {
		panic("field already registered: " + name)
	}
	Field[name] = prime
}

// Get returns a copy of the registered modulus, or nil.
func Get(name string) *big.Int {
	p, ok := Field[name]
	if !ok {
		return nil
	}
	return new(big.Int).Set(p)
}

// Parse resolves a registered name, a 0x-prefixed hex literal (at most 256
// bits) or a decimal literal to a modulus. The result must be a probable prime.
func Parse(s string) (*big.Int, error) {
	if p := Get(s); p != nil {
		return p, nil
	}
	var p *big.Int
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := hexutil.DecodeBig(strings.ToLower(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownField, s, err)
		}
		p = v
	} else {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, s)
		}
		p = v
	}
	if p.Sign() <= 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("field: modulus %s is not prime", p)
	}
	return p, nil
}

// Names lists the registered fields.
func Names() []string {
	names := make([]string, 0, len(Field))
	for name := range Field {
		names = append(names, name)
	}
	return names
}

func init() {
	Register(elliptic.P256().Params().Name, elliptic.P256().Params().N)
	Register(elliptic.P384().Params().Name, elliptic.P384().Params().N)
	Register(elliptic.P521().Params().Name, elliptic.P521().Params().N)
	Register("secp256k1", secp256k1.S256().Params().N)

	// 2^521 - 1
	m521 := new(big.Int).Lsh(big.NewInt(1), 521)
	Register("M521", m521.Sub(m521, big.NewInt(1)))
}
