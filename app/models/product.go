package models

// Product groups one or more SKUs under a category. The priceable and
// attributable unit is the SKU; the product carries the shared identity.
type Product struct {
	Base
	Name        string `gorm:"size:255;not null;index" json:"name"`
	Slug        string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	CategoryID  string `gorm:"size:36;not null;index" json:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SKUs     []SKU     `gorm:"foreignKey:ProductID" json:"skus,omitempty"`
}
