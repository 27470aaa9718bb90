package migrations

import (
	"github.com/adrinata/go-catalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CategoryType{},
		&models.Category{},
		&models.Attribute{},
		&models.AttributeSet{},
		&models.AttributeValue{},
		&models.Supplier{},
		&models.Product{},
		&models.SKU{},
		&models.Pricelist{},
		&models.PriceDetail{},
		&models.Image{},
	)
}
