package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceInteger(t *testing.T) {
	v, err := DataTypeInteger.Coerce("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = DataTypeInteger.Coerce("4.2")
	assert.Error(t, err)
}

func TestCoerceDecimalKeepsLiteral(t *testing.T) {
	v, err := DataTypeDecimal.Coerce("19.99")
	require.NoError(t, err)
	dec := v.(decimal.Decimal)
	assert.True(t, dec.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, "19.99", dec.String())
}

func TestCoerceBoolean(t *testing.T) {
	v, err := DataTypeBoolean.Coerce("TRUE")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = DataTypeBoolean.Coerce("yes")
	assert.Error(t, err)
}

func TestCoerceDate(t *testing.T) {
	v, err := DataTypeDate.Coerce("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), v)

	_, err = DataTypeDate.Coerce("01/03/2024")
	assert.Error(t, err)
}

func TestCoerceRejectsEmpty(t *testing.T) {
	for _, dt := range []DataType{DataTypeText, DataTypeInteger, DataTypeDecimal, DataTypeBoolean, DataTypeDate} {
		_, err := dt.Coerce("  ")
		assert.Error(t, err, "data type %s", dt)
	}
}

func TestCanonicalForms(t *testing.T) {
	cases := []struct {
		dt   DataType
		raw  string
		want string
	}{
		{DataTypeInteger, "007", "7"},
		{DataTypeDecimal, "19.990", "19.99"},
		{DataTypeBoolean, "True", "true"},
		{DataTypeDate, "2024-03-01", "2024-03-01"},
		{DataTypeText, "hello", "hello"},
	}
	for _, tc := range cases {
		got, err := tc.dt.Canonical(tc.raw)
		require.NoError(t, err, "%s %q", tc.dt, tc.raw)
		assert.Equal(t, tc.want, got)
	}
}

func TestAttributeCoerceEnumMembership(t *testing.T) {
	attr := &Attribute{Code: "roast-level", DataType: DataTypeEnum, Options: "light, medium, dark"}

	v, err := attr.CoerceValue("medium")
	require.NoError(t, err)
	assert.Equal(t, "medium", v)

	_, err = attr.CoerceValue("burnt")
	assert.Error(t, err)
}

func TestAttributeOptionList(t *testing.T) {
	attr := &Attribute{Options: " a ,b, ,c"}
	assert.Equal(t, []string{"a", "b", "c"}, attr.OptionList())
}
