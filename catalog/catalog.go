package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/izouxv/goReconstruct/radix"
	"github.com/izouxv/goReconstruct/shamir"
)

// Format selects the encoding of a share file.
type Format int

const (
	FormatJSON Format = iota
	FormatCBOR
)

const keysField = "keys"

// DefaultBase is the base Encode writes share values in.
var DefaultBase = 16

var (
	// ErrMissingKeys is returned when a share file has no "keys" object.
	ErrMissingKeys = errors.New("catalog: missing keys object")

	// ErrUnsupportedFormat is returned for an unknown Format or file extension.
	ErrUnsupportedFormat = errors.New("catalog: unsupported format")
)

// Keys holds the metadata from the "keys" object.
type Keys struct {
	N Number `json:"n,omitempty" cbor:"n,omitempty"`
	K Number `json:"k" cbor:"k"`
}

// Root is the encoded y value of one share and its base.
type Root struct {
	Base  Number `json:"base" cbor:"base"`
	Value Digits `json:"value" cbor:"value"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".cbor":
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and decodes a share file.
func Load(path string) (*shamir.ShareSet, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	set, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Decode parses a share file. Every key other than "keys" is the decimal x of a
// share whose y is given as a digit string in its own base.
func Decode(data []byte, format Format) (*shamir.ShareSet, error) {
	var (
		fields    = make(map[string][]byte)
		unmarshal func([]byte, interface{}) error
	)
	switch format {
	case FormatJSON:
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("catalog: unmarshal json: %w", err)
		}
		for k, v := range raw {
			fields[k] = v
		}
		unmarshal = json.Unmarshal
	case FormatCBOR:
		var raw map[string]cbor.RawMessage
		if err := cbor.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("catalog: unmarshal cbor: %w", err)
		}
		for k, v := range raw {
			fields[k] = v
		}
		unmarshal = cbor.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}

	rawKeys, ok := fields[keysField]
	if !ok {
		return nil, ErrMissingKeys
	}
	var keys Keys
	if err := unmarshal(rawKeys, &keys); err != nil {
		return nil, fmt.Errorf("catalog: parse keys: %w", err)
	}

	shares := make([]*shamir.Share, 0, len(fields)-1)
	for key, rawRoot := range fields {
		if key == keysField {
			continue
		}
		x, err := radix.ParseInt(key)
		if err != nil {
			return nil, fmt.Errorf("catalog: share %q: %w", key, err)
		}
		var root Root
		if err := unmarshal(rawRoot, &root); err != nil {
			return nil, fmt.Errorf("catalog: share %q: %w", key, err)
		}
		y, err := radix.Parse(string(root.Value), int(root.Base))
		if err != nil {
			return nil, fmt.Errorf("catalog: share %q: %w", key, err)
		}
		shares = append(shares, &shamir.Share{X: x, Y: y})
	}

	set, err := shamir.NewShareSet(int(keys.K), shares)
	if err != nil {
		return nil, err
	}
	set.N = int(keys.N)
	return set, nil
}

// Encode writes set in the given format with every y in DefaultBase.
func Encode(set *shamir.ShareSet, format Format) ([]byte, error) {
	n := set.N
	if n == 0 {
		n = len(set.Shares)
	}
	out := map[string]interface{}{
		keysField: Keys{N: Number(n), K: Number(set.Threshold)},
	}
	for _, s := range set.Shares {
		key := s.X.String()
		if _, ok := out[key]; ok {
			return nil, fmt.Errorf("catalog: %w: x=%s", shamir.ErrDuplicateShare, key)
		}
		value, err := radix.Format(s.Y, DefaultBase)
		if err != nil {
			return nil, fmt.Errorf("catalog: share %q: %w", key, err)
		}
		out[key] = Root{Base: Number(DefaultBase), Value: Digits(value)}
	}

	switch format {
	case FormatJSON:
		return json.MarshalIndent(out, "", "  ")
	case FormatCBOR:
		return cbor.Marshal(out)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
}

// ParsePositions parses a comma-separated list of 1-based share positions.
// An empty string yields no positions.
func ParsePositions(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	positions := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a position", shamir.ErrInvalidSelection, p)
		}
		positions = append(positions, v)
	}
	return positions, nil
}
