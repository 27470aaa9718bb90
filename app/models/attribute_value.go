package models

// Owner kinds for polymorphic rows (attribute values, images).
const (
	EntityTypeProduct = "products"
	EntityTypeSKU     = "skus"
)

func ValidEntityType(t string) bool {
	return t == EntityTypeProduct || t == EntityTypeSKU
}

// AttributeValue holds the stored value of one attribute for one entity.
// Exactly one row per (entity_type, entity_id, attribute_id); Value is the
// canonical string encoding for the attribute's data type.
type AttributeValue struct {
	Base
	EntityType  string `gorm:"size:20;not null;uniqueIndex:uq_entity_attribute,priority:1;index:idx_attr_value_entity,priority:1" json:"entity_type"`
	EntityID    string `gorm:"size:36;not null;uniqueIndex:uq_entity_attribute,priority:2;index:idx_attr_value_entity,priority:2" json:"entity_id"`
	AttributeID string `gorm:"size:36;not null;uniqueIndex:uq_entity_attribute,priority:3" json:"attribute_id"`
	Value       string `gorm:"size:255;not null;index" json:"value"`

	Attribute *Attribute `gorm:"foreignKey:AttributeID" json:"attribute,omitempty"`
}

// TypedValue decodes the stored string back into its declared type.
// Requires Attribute to be preloaded.
func (v *AttributeValue) TypedValue() (interface{}, error) {
	return v.Attribute.CoerceValue(v.Value)
}
