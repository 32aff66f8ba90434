package tookan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Tookan clients send numbers both as JSON numbers and as strings, and
// booleans as true/false, 0/1 or "yes"/"no". The Flex types accept all of
// these and marshal back as plain JSON numbers and booleans.

// FlexInt is an int that also decodes from a numeric string.
type FlexInt int

// FlexInt64 is an int64 that also decodes from a numeric string.
type FlexInt64 int64

// FlexFloat is a float64 that also decodes from a numeric string.
type FlexFloat float64

// FlexBool is a bool that also decodes from numbers and common strings.
type FlexBool bool

// FlexString is a string that also decodes from a JSON number.
type FlexString string

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	raw, ok, err := numberText(b)
	if err != nil || !ok {
		return err
	}
	v, err := strconv.ParseInt(raw, 10, 0)
	if err != nil {
		return notANumber(b)
	}
	*f = FlexInt(v)
	return nil
}

func (f *FlexInt64) UnmarshalJSON(b []byte) error {
	raw, ok, err := numberText(b)
	if err != nil || !ok {
		return err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return notANumber(b)
	}
	*f = FlexInt64(v)
	return nil
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	raw, ok, err := numberText(b)
	if err != nil || !ok {
		return err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return notANumber(b)
	}
	*f = FlexFloat(v)
	return nil
}

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	raw := string(bytes.TrimSpace(b))
	if raw == "null" {
		return nil
	}
	raw = strings.ToLower(strings.Trim(raw, `"`))
	switch raw {
	case "true", "1", "yes", "y":
		*f = true
	case "false", "0", "no", "n", "":
		*f = false
	default:
		return fmt.Errorf("tookan: %s is not a boolean", string(b))
	}
	return nil
}

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("tookan: %s is not a string or number", string(b))
	}
	*f = FlexString(n.String())
	return nil
}

// numberText returns the text of a JSON number or quoted number. null and
// "" report ok=false and leave the target untouched.
func numberText(b []byte) (string, bool, error) {
	raw := string(bytes.TrimSpace(b))
	if raw == "null" {
		return "", false, nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", false, err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return "", false, nil
		}
	}
	return raw, true, nil
}

func notANumber(b []byte) error {
	return fmt.Errorf("tookan: %s is not a number", string(b))
}
