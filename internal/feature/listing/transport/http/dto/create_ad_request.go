package dto

// CreateAdRequest is the JSON body for POST /api/ads. The image glyph
// is not part of the request: it is derived from the category server
// side and never independently settable.
type CreateAdRequest struct {
	OwnerID       string `json:"owner_id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	Price         string `json:"price"`
	Size          string `json:"size"`
	Description   string `json:"description"`
	ContactNumber string `json:"contact_number"`
}
