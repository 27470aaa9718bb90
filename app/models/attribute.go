package models

import (
	"fmt"
	"strings"
)

// Attribute declares one typed dynamic attribute. DataType is immutable once
// values exist for the attribute (enforced in the attribute service).
type Attribute struct {
	Base
	Name     string   `gorm:"size:100;not null;index" json:"name"`
	Code     string   `gorm:"size:50;not null;uniqueIndex" json:"code"`
	DataType DataType `gorm:"size:20;not null;index" json:"data_type"`
	UOM      string   `gorm:"size:15" json:"uom,omitempty"`
	// Options holds the allowed ENUM choices, comma separated. Empty for
	// every other data type.
	Options string `gorm:"size:500" json:"options,omitempty"`

	AttributeSets []AttributeSet `gorm:"many2many:attribute_set_attributes;" json:"-"`
}

func (a *Attribute) OptionList() []string {
	if a.Options == "" {
		return nil
	}
	parts := strings.Split(a.Options, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CoerceValue parses raw against the declared data type, including ENUM
// membership. This is the single place a raw value becomes a typed one.
func (a *Attribute) CoerceValue(raw string) (interface{}, error) {
	v, err := a.DataType.Coerce(raw)
	if err != nil {
		return nil, err
	}
	if a.DataType == DataTypeEnum {
		s := v.(string)
		for _, opt := range a.OptionList() {
			if opt == s {
				return s, nil
			}
		}
		return nil, fmt.Errorf("%q is not one of the allowed choices for %s", s, a.Code)
	}
	return v, nil
}

// CanonicalValue returns the storage string for raw, validating it first.
func (a *Attribute) CanonicalValue(raw string) (string, error) {
	if _, err := a.CoerceValue(raw); err != nil {
		return "", err
	}
	return a.DataType.Canonical(raw)
}
