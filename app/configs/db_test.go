package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSNReportsMatchedRows(t *testing.T) {
	env := ENV{
		DBUser:     "catalog",
		DBPassword: "secret",
		DBHost:     "127.0.0.1",
		DBPort:     "3306",
		DBName:     "catalog",
	}
	got := dsn(env)
	assert.Contains(t, got, "clientFoundRows=true")
	assert.Contains(t, got, "parseTime=True")
	assert.Contains(t, got, "@tcp(127.0.0.1:3306)/catalog")
}
