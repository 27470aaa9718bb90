package seeders

import (
	"context"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/db/fakers"
	"github.com/adrinata/go-catalog/app/helpers"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/adrinata/go-catalog/app/repositories"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DBSeed populates a fresh database with the actors, a small category tree,
// an attribute schema and a few faked products with tiered prices. Safe to
// rerun: existing rows are matched on their natural keys.
func DBSeed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}

	root, leaf, err := seedCategories(db)
	if err != nil {
		return err
	}

	if err := seedAttributes(db, root); err != nil {
		return err
	}

	return seedProducts(db, leaf)
}

func seedUsers(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			ID:        models.SystemUserID,
			FirstName: "System",
			Email:     "system@local",
			Password:  string(hash),
			Role:      models.RoleSystem,
			IsActive:  true,
		},
		{
			ID:        "00000000-0000-0000-0000-000000000002",
			FirstName: "Catalog",
			LastName:  "Admin",
			Email:     "admin@local",
			Password:  string(hash),
			Role:      models.RoleAdmin,
			IsActive:  true,
		},
	}
	ctx := context.Background()
	repo := repositories.NewUserRepository(db)
	for i := range users {
		_, err := repo.GetByEmail(ctx, users[i].Email)
		if err == nil {
			continue
		}
		if !apperrors.HasCode(err, apperrors.CodeNotFound) {
			return err
		}
		if err := repo.Create(ctx, &users[i]); err != nil {
			return err
		}
	}
	log.Info().Msg("✅ Users seeded")
	return nil
}

func seedCategories(db *gorm.DB) (*models.Category, *models.Category, error) {
	categoryType := &models.CategoryType{
		Base: models.NewBase(models.SystemUserID),
		Name: "Retail",
	}
	if err := db.FirstOrCreate(categoryType, "name = ?", categoryType.Name).Error; err != nil {
		return nil, nil, err
	}

	root := &models.Category{
		Base:           models.NewBase(models.SystemUserID),
		Name:           "Beverages",
		Slug:           helpers.MakeSlug("Beverages"),
		CategoryTypeID: &categoryType.ID,
	}
	if err := db.FirstOrCreate(root, "slug = ? AND parent_id IS NULL", root.Slug).Error; err != nil {
		return nil, nil, err
	}

	leaf := &models.Category{
		Base:     models.NewBase(models.SystemUserID),
		Name:     "Coffee",
		Slug:     helpers.MakeSlug("Coffee"),
		ParentID: &root.ID,
	}
	if err := db.FirstOrCreate(leaf, "slug = ? AND parent_id = ?", leaf.Slug, root.ID).Error; err != nil {
		return nil, nil, err
	}

	log.Info().Msg("✅ Categories seeded")
	return root, leaf, nil
}

func seedAttributes(db *gorm.DB, root *models.Category) error {
	attributes := []models.Attribute{
		{
			Base:     models.NewBase(models.SystemUserID),
			Name:     "Roast Level",
			Code:     "roast-level",
			DataType: models.DataTypeEnum,
			Options:  "light,medium,dark",
		},
		{
			Base:     models.NewBase(models.SystemUserID),
			Name:     "Net Weight",
			Code:     "net-weight",
			DataType: models.DataTypeDecimal,
			UOM:      "g",
		},
		{
			Base:     models.NewBase(models.SystemUserID),
			Name:     "Organic",
			Code:     "organic",
			DataType: models.DataTypeBoolean,
		},
	}
	for i := range attributes {
		if err := db.FirstOrCreate(&attributes[i], "code = ?", attributes[i].Code).Error; err != nil {
			return err
		}
	}

	set := &models.AttributeSet{
		Base: models.NewBase(models.SystemUserID),
		Name: "Coffee Basics",
	}
	if err := db.FirstOrCreate(set, "name = ?", set.Name).Error; err != nil {
		return err
	}
	if err := db.Model(set).Association("Attributes").Replace(attributes); err != nil {
		return err
	}
	if err := db.Model(set).Association("Categories").Append(root); err != nil {
		return err
	}

	log.Info().Msg("✅ Attributes seeded")
	return nil
}

func seedProducts(db *gorm.DB, leaf *models.Category) error {
	pricelist := &models.Pricelist{
		Base:     models.NewBase(models.SystemUserID),
		Name:     "Default Retail",
		Code:     "RETAIL",
		Currency: "IDR",
	}
	if err := db.FirstOrCreate(pricelist, "code = ?", pricelist.Code).Error; err != nil {
		return err
	}

	supplier := fakers.SupplierFaker()
	if err := db.Create(supplier).Error; err != nil {
		return err
	}

	for i := 0; i < 5; i++ {
		product := fakers.ProductFaker(leaf, supplier)
		if err := db.Create(product).Error; err != nil {
			return err
		}
		if err := db.Create(fakers.ImageFaker(models.EntityTypeProduct, product.ID)).Error; err != nil {
			return err
		}
		for j := range product.SKUs {
			details := fakers.PriceTierFaker(pricelist, &product.SKUs[j])
			if err := db.Create(&details).Error; err != nil {
				return err
			}
		}
	}

	log.Info().Msg("✅ Products seeded")
	return nil
}
