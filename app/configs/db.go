package configs

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// dsn builds the driver connection string. clientFoundRows makes UPDATE
// report matched rows rather than changed rows, so repositories can treat
// RowsAffected == 0 as a missing row even when the update is a no-op.
func dsn(env ENV) string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		env.DBUser,
		env.DBPassword,
		env.DBHost,
		env.DBPort,
		env.DBName,
	)
}

func OpenConnection() (*gorm.DB, error) {

	conn := dsn(LoadENV)

	maxRetries := 10
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err := gorm.Open(mysql.Open(conn), &gorm.Config{})
		if err == nil {

			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					log.Info().Msg("✅ Database connection successful")
					return db, nil
				}
			}

			log.Warn().Err(pingErr).Int("attempt", i+1).Msg("❌ Failed to ping database, retrying")
		} else {
			log.Warn().Err(err).Int("attempt", i+1).Msg("❌ Failed to open GORM connection, retrying")
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries", maxRetries)
}
