package models

// SKU is the sellable unit: it owns attribute values and price tiers.
type SKU struct {
	Base
	ProductID  string  `gorm:"size:36;not null;index" json:"product_id"`
	SupplierID *string `gorm:"size:36;index" json:"supplier_id,omitempty"`
	Code       string  `gorm:"size:100;not null;uniqueIndex" json:"code"`
	Barcode    string  `gorm:"size:100;index" json:"barcode,omitempty"`
	Name       string  `gorm:"size:255;not null" json:"name"`

	Product      *Product      `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Supplier     *Supplier     `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	PriceDetails []PriceDetail `gorm:"foreignKey:SKUID" json:"price_details,omitempty"`
}
