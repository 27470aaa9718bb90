package filters

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestListCountsAndPagesInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	engine := NewEngine(db, nil)

	plan, err := Parse(ListQuery{Filter: map[string]interface{}{"parent_id": "c0"}}, 100)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("c0", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery("SELECT categories\\.\\* FROM `categories`").
		WithArgs("c0", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "parent_id"}).
			AddRow("c1", "Coffee", "coffee", "c0"))
	mock.ExpectCommit()

	var categories []models.Category
	meta, err := engine.List(context.Background(), CategoryDescriptor(), plan, &categories)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, int64(42), meta.Total)
	assert.Equal(t, 3, meta.Pages)
	require.Len(t, categories, 1)
	assert.Equal(t, "Coffee", categories[0].Name)
}

func TestListRejectsUnknownFieldBeforeQuerying(t *testing.T) {
	db, mock := newMockDB(t)
	engine := NewEngine(db, nil)

	plan, err := Parse(ListQuery{Filter: map[string]interface{}{"bogus": 1}}, 100)
	require.NoError(t, err)

	var categories []models.Category
	_, err = engine.List(context.Background(), CategoryDescriptor(), plan, &categories)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidFilter))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListIncludeInactiveLiftsGate(t *testing.T) {
	db, mock := newMockDB(t)
	engine := NewEngine(db, nil)

	plan, err := Parse(ListQuery{IncludeInactive: true}, 100)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT categories\\.\\* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	var categories []models.Category
	_, err = engine.List(context.Background(), CategoryDescriptor(), plan, &categories)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTypedValueExpr(t *testing.T) {
	assert.Equal(t, "CAST(av0.value AS DECIMAL(24,6))", typedValueExpr("av0", models.DataTypeDecimal))
	assert.Equal(t, "CAST(av0.value AS DECIMAL(24,6))", typedValueExpr("av0", models.DataTypeInteger))
	assert.Equal(t, "CAST(av0.value AS DATE)", typedValueExpr("av0", models.DataTypeDate))
	assert.Equal(t, "av0.value", typedValueExpr("av0", models.DataTypeText))
}

func TestBuildAttributeClauseDecimalComparison(t *testing.T) {
	attr := &models.Attribute{Code: "net-weight", DataType: models.DataTypeDecimal}
	join, where, err := buildAttributeClause(ProductDescriptor(), attr, "av0", Condition{
		Path: "net-weight", Op: OpGte, Value: "19.99",
	})
	require.NoError(t, err)
	assert.Contains(t, join.sql, "JOIN attribute_values av0")
	assert.Equal(t, "CAST(av0.value AS DECIMAL(24,6)) >= ?", where.sql)
	require.Len(t, where.args, 1)
	assert.True(t, where.args[0].(decimal.Decimal).Equal(decimal.RequireFromString("19.99")))
}

func TestBuildAttributeClauseBooleanUsesCanonicalString(t *testing.T) {
	attr := &models.Attribute{Code: "organic", DataType: models.DataTypeBoolean}
	_, where, err := buildAttributeClause(SKUDescriptor(), attr, "av1", Condition{
		Path: "organic", Op: OpEq, Value: "True",
	})
	require.NoError(t, err)
	assert.Equal(t, "av1.value = ?", where.sql)
	assert.Equal(t, []interface{}{"true"}, where.args)
}

func TestBuildAttributeClauseTypeMismatch(t *testing.T) {
	attr := &models.Attribute{Code: "shelf-life", DataType: models.DataTypeInteger}
	_, _, err := buildAttributeClause(ProductDescriptor(), attr, "av0", Condition{
		Path: "shelf-life", Op: OpLt, Value: "soon",
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTypeMismatch))
}

func TestBuildAttributeClauseInListCoercesElements(t *testing.T) {
	attr := &models.Attribute{Code: "roast-level", DataType: models.DataTypeEnum, Options: "light,medium,dark"}
	_, where, err := buildAttributeClause(ProductDescriptor(), attr, "av2", Condition{
		Path: "roast-level", Op: OpIn, Value: []interface{}{"light", "dark"},
	})
	require.NoError(t, err)
	assert.Equal(t, "av2.value IN ?", where.sql)

	_, _, err = buildAttributeClause(ProductDescriptor(), attr, "av2", Condition{
		Path: "roast-level", Op: OpIn, Value: []interface{}{"light", "burnt"},
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTypeMismatch))
}

func TestBuildAttributeClauseLikeMatchesRawValue(t *testing.T) {
	attr := &models.Attribute{Code: "origin", DataType: models.DataTypeText}
	_, where, err := buildAttributeClause(ProductDescriptor(), attr, "av0", Condition{
		Path: "origin", Op: OpLike, Value: "Sumatra",
	})
	require.NoError(t, err)
	assert.Equal(t, "LOWER(av0.value) LIKE ?", where.sql)
	assert.Equal(t, []interface{}{"%sumatra%"}, where.args)
}
