package fakers

import (
	"fmt"
	"math/rand"

	"github.com/adrinata/go-catalog/app/helpers"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductFaker builds a product with a couple of SKUs under the given
// category, ready for a bulk insert.
func ProductFaker(category *models.Category, supplier *models.Supplier) *models.Product {
	name := faker.Word() + " " + faker.Word()
	product := &models.Product{
		Base:        models.NewBase(models.SystemUserID),
		Name:        name,
		Slug:        helpers.MakeSlug(name) + "-" + uuid.NewString()[:6],
		Description: faker.Sentence(),
		CategoryID:  category.ID,
	}

	skuCount := rand.Intn(2) + 1
	for i := 0; i < skuCount; i++ {
		product.SKUs = append(product.SKUs, *SKUFaker(product, supplier, i))
	}
	return product
}

func SKUFaker(product *models.Product, supplier *models.Supplier, ordinal int) *models.SKU {
	sku := &models.SKU{
		Base:      models.NewBase(models.SystemUserID),
		ProductID: product.ID,
		Code:      fmt.Sprintf("%s-%02d", helpers.MakeSlug(product.Name), ordinal+1),
		Barcode:   faker.CCNumber(),
		Name:      fmt.Sprintf("%s variant %d", product.Name, ordinal+1),
	}
	if supplier != nil {
		sku.SupplierID = &supplier.ID
	}
	return sku
}

func SupplierFaker() *models.Supplier {
	name := faker.LastName() + " Trading"
	return &models.Supplier{
		Base:  models.NewBase(models.SystemUserID),
		Name:  name,
		Code:  helpers.MakeSlug(name) + "-" + uuid.NewString()[:4],
		Email: faker.Email(),
		Phone: faker.Phonenumber(),
	}
}

// PriceTierFaker generates ascending quantity breaks with descending unit
// prices for one SKU.
func PriceTierFaker(pricelist *models.Pricelist, sku *models.SKU) []models.PriceDetail {
	base := decimal.NewFromInt(int64(rand.Intn(90000) + 10000))
	tiers := []int{1, 10, 100}
	details := make([]models.PriceDetail, 0, len(tiers))
	for i, minQty := range tiers {
		discount := decimal.NewFromInt(int64(i * 5)).Div(decimal.NewFromInt(100))
		price := base.Sub(base.Mul(discount)).Round(2)
		details = append(details, models.PriceDetail{
			Base:            models.NewBase(models.SystemUserID),
			PricelistID:     pricelist.ID,
			SKUID:           sku.ID,
			MinimumQuantity: minQty,
			Price:           price,
		})
	}
	return details
}

func ImageFaker(contentType, objectID string) *models.Image {
	return &models.Image{
		Base:        models.NewBase(models.SystemUserID),
		ContentType: contentType,
		ObjectID:    objectID,
		Path:        fmt.Sprintf("/images/catalog/%s.jpg", uuid.NewString()[:8]),
		AltText:     faker.Sentence(),
	}
}
