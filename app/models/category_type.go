package models

// CategoryType classifies top-level categories.
type CategoryType struct {
	Base
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Categories []Category `gorm:"foreignKey:CategoryTypeID" json:"-"`
}
