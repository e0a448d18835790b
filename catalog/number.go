package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

// Number is an integer that share files may write either as a number or as a
// decimal string ("base": "16"). null leaves it unchanged.
type Number int

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		if t != float64(int(t)) {
			return fmt.Errorf("catalog: %v is not an integer", t)
		}
		*n = Number(t)
		return nil
	case string:
		return n.setString(t)
	}
	return fmt.Errorf("catalog: unexpected number %s", data)
}

func (n *Number) UnmarshalCBOR(data []byte) error {
	var v interface{}
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case uint64:
		*n = Number(t)
		return nil
	case int64:
		*n = Number(t)
		return nil
	case string:
		return n.setString(t)
	case nil:
		return nil
	}
	return fmt.Errorf("catalog: unexpected number of type %T", v)
}

func (n *Number) setString(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("catalog: %q is not an integer", s)
	}
	*n = Number(v)
	return nil
}

// Digits is a digit string that share files may also write as a bare number
// ("value": 4). The number's literal text is kept as the digits.
type Digits string

func (d *Digits) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Digits(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("catalog: unexpected value %s", data)
	}
	*d = Digits(num.String())
	return nil
}

func (d *Digits) UnmarshalCBOR(data []byte) error {
	var v interface{}
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*d = Digits(t)
	case uint64:
		*d = Digits(strconv.FormatUint(t, 10))
	case int64:
		*d = Digits(strconv.FormatInt(t, 10))
	case nil:
	default:
		return fmt.Errorf("catalog: unexpected value of type %T", v)
	}
	return nil
}
