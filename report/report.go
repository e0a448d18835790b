package report

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/izouxv/goReconstruct/shamir"
)

// Report describes one reconstruction.
type Report struct {
	ID        string   `json:"id"`
	Source    string   `json:"source"`
	Threshold int      `json:"k"`
	Available int      `json:"available"`
	Used      []string `json:"used"`
	// Field is empty for exact reconstruction over the rationals.
	Field       string `json:"field,omitempty"`
	Secret      string `json:"secret"`
	SecretHex   string `json:"secret_hex"`
	Fingerprint string `json:"fingerprint"`
}

// New builds a report for a secret reconstructed from used, a subset of set.
func New(source string, set *shamir.ShareSet, used []*shamir.Share, secret *big.Int, field string) (*Report, error) {
	fp, err := shamir.Fingerprint(used)
	if err != nil {
		return nil, err
	}
	xs := make([]string, len(used))
	for i, s := range used {
		xs[i] = s.X.String()
	}
	return &Report{
		ID:          uuid.New().String(),
		Source:      source,
		Threshold:   set.Threshold,
		Available:   len(set.Shares),
		Used:        xs,
		Field:       field,
		Secret:      secret.String(),
		SecretHex:   hexutil.EncodeBig(secret),
		Fingerprint: hexutil.Encode(fp),
	}, nil
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
