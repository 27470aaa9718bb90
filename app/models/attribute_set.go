package models

// AttributeSet groups attributes into a reusable shape. A category may bind
// any number of sets; entities under it are expected to supply values for the
// union of attributes across the bound sets.
type AttributeSet struct {
	Base
	Name        string `gorm:"size:100;not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Attributes []Attribute `gorm:"many2many:attribute_set_attributes;" json:"attributes,omitempty"`
	Categories []Category  `gorm:"many2many:category_attribute_sets;" json:"-"`
}
