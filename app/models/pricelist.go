package models

import "github.com/shopspring/decimal"

type Pricelist struct {
	Base
	Name     string `gorm:"size:100;not null;index" json:"name"`
	Code     string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Currency string `gorm:"size:3;not null;default:'IDR'" json:"currency"`

	PriceDetails []PriceDetail `gorm:"foreignKey:PricelistID" json:"-"`
}

// PriceDetail is one quantity tier of a SKU inside a pricelist. For a given
// (sku, pricelist) pair minimum quantities are unique; resolution picks the
// highest tier whose MinimumQuantity does not exceed the requested quantity.
type PriceDetail struct {
	Base
	PricelistID     string          `gorm:"size:36;not null;uniqueIndex:uq_price_detail,priority:1" json:"pricelist_id"`
	SKUID           string          `gorm:"size:36;not null;uniqueIndex:uq_price_detail,priority:2;index" json:"sku_id"`
	MinimumQuantity int             `gorm:"not null;default:1;uniqueIndex:uq_price_detail,priority:3" json:"minimum_quantity"`
	Price           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`

	Pricelist *Pricelist `gorm:"foreignKey:PricelistID" json:"pricelist,omitempty"`
	SKU       *SKU       `gorm:"foreignKey:SKUID" json:"-"`
}
