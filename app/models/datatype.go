package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DataType is the closed set of value types a dynamic attribute can declare.
type DataType string

const (
	DataTypeText    DataType = "TEXT"
	DataTypeInteger DataType = "INTEGER"
	DataTypeDecimal DataType = "DECIMAL"
	DataTypeBoolean DataType = "BOOLEAN"
	DataTypeDate    DataType = "DATE"
	DataTypeEnum    DataType = "ENUM"
)

// DateLayout is the calendar form attribute dates are stored and compared in.
const DateLayout = "2006-01-02"

func (d DataType) Valid() bool {
	switch d {
	case DataTypeText, DataTypeInteger, DataTypeDecimal, DataTypeBoolean, DataTypeDate, DataTypeEnum:
		return true
	}
	return false
}

// Coerce parses raw into the Go value matching the declared type:
// string, int64, decimal.Decimal, bool or time.Time. ENUM membership is
// checked by Attribute.CoerceValue, which knows the option list.
func (d DataType) Coerce(raw string) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("value cannot be empty")
	}

	switch d {
	case DataTypeText, DataTypeEnum:
		return raw, nil

	case DataTypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return n, nil

	case DataTypeDecimal:
		// decimal.Decimal keeps the exact literal, no binary float drift
		dec, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a decimal number", raw)
		}
		return dec, nil

	case DataTypeBoolean:
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a boolean, expected true or false", raw)

	case DataTypeDate:
		if t, err := time.Parse(DateLayout, raw); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return nil, fmt.Errorf("%q is not a date, expected YYYY-MM-DD", raw)
	}

	return nil, fmt.Errorf("unknown data type %q", d)
}

// Canonical returns the storage encoding of raw: the exact decimal literal,
// YYYY-MM-DD dates, lowercase booleans, base-10 integers.
func (d DataType) Canonical(raw string) (string, error) {
	v, err := d.Coerce(raw)
	if err != nil {
		return "", err
	}
	switch tv := v.(type) {
	case string:
		return tv, nil
	case int64:
		return strconv.FormatInt(tv, 10), nil
	case decimal.Decimal:
		return tv.String(), nil
	case bool:
		return strconv.FormatBool(tv), nil
	case time.Time:
		return tv.Format(DateLayout), nil
	}
	return "", fmt.Errorf("unknown data type %q", d)
}
