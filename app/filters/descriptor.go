package filters

import "github.com/adrinata/go-catalog/app/models"

// Relation describes a dotted path into a related table.
type Relation struct {
	JoinSQL string
	// Fields maps the path remainder to a fully qualified column.
	Fields map[string]string
}

// Descriptor declares how one entity collection is queried: its native
// filterable columns, the relations reachable by dotted paths, and (when
// EntityType is set) the attribute_values owner kind used for dynamic
// fields. is_active is deliberately absent from every field map: the
// soft-delete gate cannot be addressed by a filter expression.
type Descriptor struct {
	Model      interface{}
	Table      string
	EntityType string
	Fields     map[string]string
	Relations  map[string]Relation
	Preloads   []string
}

func ProductDescriptor() Descriptor {
	return Descriptor{
		Model:      &models.Product{},
		Table:      "products",
		EntityType: models.EntityTypeProduct,
		Fields: map[string]string{
			"name":        "name",
			"slug":        "slug",
			"description": "description",
			"category_id": "category_id",
			"sequence":    "sequence",
			"created_at":  "created_at",
			"updated_at":  "updated_at",
		},
		Relations: map[string]Relation{
			"category": {
				JoinSQL: "JOIN categories ON categories.id = products.category_id",
				Fields: map[string]string{
					"name": "categories.name",
					"slug": "categories.slug",
				},
			},
		},
		Preloads: []string{"Category"},
	}
}

func SKUDescriptor() Descriptor {
	return Descriptor{
		Model:      &models.SKU{},
		Table:      "skus",
		EntityType: models.EntityTypeSKU,
		Fields: map[string]string{
			"code":        "code",
			"barcode":     "barcode",
			"name":        "name",
			"product_id":  "product_id",
			"supplier_id": "supplier_id",
			"sequence":    "sequence",
			"created_at":  "created_at",
			"updated_at":  "updated_at",
		},
		Relations: map[string]Relation{
			"product": {
				JoinSQL: "JOIN products ON products.id = skus.product_id",
				Fields: map[string]string{
					"name":        "products.name",
					"slug":        "products.slug",
					"category_id": "products.category_id",
				},
			},
			"supplier": {
				JoinSQL: "JOIN suppliers ON suppliers.id = skus.supplier_id",
				Fields: map[string]string{
					"name": "suppliers.name",
					"code": "suppliers.code",
				},
			},
		},
		Preloads: []string{"Product", "Supplier"},
	}
}

func CategoryDescriptor() Descriptor {
	return Descriptor{
		Model: &models.Category{},
		Table: "categories",
		Fields: map[string]string{
			"name":             "name",
			"slug":             "slug",
			"parent_id":        "parent_id",
			"category_type_id": "category_type_id",
			"sequence":         "sequence",
			"created_at":       "created_at",
			"updated_at":       "updated_at",
		},
		Relations: map[string]Relation{
			"category_type": {
				JoinSQL: "JOIN category_types ON category_types.id = categories.category_type_id",
				Fields: map[string]string{
					"name": "category_types.name",
				},
			},
		},
		Preloads: []string{"CategoryType"},
	}
}

func CategoryTypeDescriptor() Descriptor {
	return Descriptor{
		Model: &models.CategoryType{},
		Table: "category_types",
		Fields: map[string]string{
			"name":       "name",
			"sequence":   "sequence",
			"created_at": "created_at",
		},
	}
}

func AttributeDescriptor() Descriptor {
	return Descriptor{
		Model: &models.Attribute{},
		Table: "attributes",
		Fields: map[string]string{
			"name":       "name",
			"code":       "code",
			"data_type":  "data_type",
			"sequence":   "sequence",
			"created_at": "created_at",
		},
	}
}

func AttributeSetDescriptor() Descriptor {
	return Descriptor{
		Model: &models.AttributeSet{},
		Table: "attribute_sets",
		Fields: map[string]string{
			"name":       "name",
			"sequence":   "sequence",
			"created_at": "created_at",
		},
		Preloads: []string{"Attributes"},
	}
}

func SupplierDescriptor() Descriptor {
	return Descriptor{
		Model: &models.Supplier{},
		Table: "suppliers",
		Fields: map[string]string{
			"name":       "name",
			"code":       "code",
			"email":      "email",
			"sequence":   "sequence",
			"created_at": "created_at",
		},
	}
}

func PricelistDescriptor() Descriptor {
	return Descriptor{
		Model: &models.Pricelist{},
		Table: "pricelists",
		Fields: map[string]string{
			"name":       "name",
			"code":       "code",
			"currency":   "currency",
			"sequence":   "sequence",
			"created_at": "created_at",
		},
	}
}
