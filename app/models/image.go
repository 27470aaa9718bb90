package models

// Image attaches to a product or SKU through a (content_type, object_id)
// pair, so one table serves both owner kinds. ContentType is restricted to
// the entity-type enumeration and the pair is validated at the service
// boundary. Upload and resizing happen outside this service; only the stored
// path is kept here.
type Image struct {
	Base
	ContentType string `gorm:"size:20;not null;index:idx_image_owner,priority:1" json:"content_type"`
	ObjectID    string `gorm:"size:36;not null;index:idx_image_owner,priority:2" json:"object_id"`
	Path        string `gorm:"size:255;not null" json:"path"`
	AltText     string `gorm:"size:255" json:"alt_text,omitempty"`
}
