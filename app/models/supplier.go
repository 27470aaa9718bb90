package models

type Supplier struct {
	Base
	Name    string `gorm:"size:255;not null;index" json:"name"`
	Code    string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Email   string `gorm:"size:100" json:"email,omitempty"`
	Phone   string `gorm:"size:20" json:"phone,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`

	SKUs []SKU `gorm:"foreignKey:SupplierID" json:"-"`
}
