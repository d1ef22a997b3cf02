package domain

// Product mirrors the catalog service's read model. The storefront only
// lists and reads products; catalog writes are an admin surface.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Size        string   `json:"size,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	UnitPrice   float64  `json:"unit_price"`
	IVA         float64  `json:"iva"`
	CategoryID  *int64   `json:"category_id,omitempty"`
}
