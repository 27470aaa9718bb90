package repositories

import (
	"errors"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// translateError maps storage errors onto the service taxonomy so callers
// never see raw driver errors.
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("%s not found", what)
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return apperrors.Conflict("%s already exists", what)
	}
	return err
}
