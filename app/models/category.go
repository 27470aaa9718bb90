package models

// Category is a node of the self-referencing catalog tree.
//
// Hierarchy rule carried over from the legacy schema: top-level categories
// (ParentID nil) must carry a CategoryTypeID, child categories must not.
// Slug is unique within its sibling scope and derived from Name unless pinned.
type Category struct {
	Base
	Name           string  `gorm:"size:100;not null;index" json:"name"`
	Slug           string  `gorm:"size:110;not null;uniqueIndex:uq_category_parent_slug,priority:2" json:"slug"`
	Description    string  `gorm:"type:text" json:"description,omitempty"`
	CategoryTypeID *string `gorm:"size:36;index" json:"category_type_id,omitempty"`
	ParentID       *string `gorm:"size:36;index;uniqueIndex:uq_category_parent_slug,priority:1" json:"parent_id,omitempty"`
	// SlugPinned stops renames from recomputing the slug.
	SlugPinned bool `gorm:"not null;default:false" json:"slug_pinned"`

	CategoryType  *CategoryType  `gorm:"foreignKey:CategoryTypeID" json:"category_type,omitempty"`
	Parent        *Category      `gorm:"foreignKey:ParentID" json:"-"`
	Children      []Category     `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	AttributeSets []AttributeSet `gorm:"many2many:category_attribute_sets;" json:"attribute_sets,omitempty"`
}
