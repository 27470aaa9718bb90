package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/filters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListQueryPaging(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?page=2&limit=50&sort_field=name&order_rule=desc", nil)
	q, err := ParseListQuery(r)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, "name", q.SortField)
	assert.Equal(t, "desc", q.OrderRule)
	assert.Empty(t, q.Filter)
}

func TestParseListQueryBareKeyMeansEquality(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?name=arabica", nil)
	q, err := ParseListQuery(r)
	require.NoError(t, err)
	assert.Equal(t, "arabica", q.Filter["name"])
}

func TestParseListQueryOperatorSuffix(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/skus?price__gte=100&price__lt=500", nil)
	q, err := ParseListQuery(r)
	require.NoError(t, err)
	ops, ok := q.Filter["price"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "100", ops["gte"])
	assert.Equal(t, "500", ops["lt"])
}

func TestParseListQueryInListSplitsCommas(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?roast-level__in=light,%20dark", nil)
	q, err := ParseListQuery(r)
	require.NoError(t, err)
	ops := q.Filter["roast-level"].(map[string]interface{})
	assert.Equal(t, []interface{}{"light", "dark"}, ops[filters.OpIn])
}

func TestParseListQueryRejectsBadPaging(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?page=two", nil)
	_, err := ParseListQuery(r)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidFilter))
}

func TestParseListQueryIncludeInactive(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/products?include_inactive=true", nil)
	q, err := ParseListQuery(r)
	require.NoError(t, err)
	assert.True(t, q.IncludeInactive)
	assert.Empty(t, q.Filter)
}
