// Package entity defines the domain models for the listing feature.
package entity

// Fixed categories an ad space can be listed under. Values outside
// this set are tolerated for display (fallback glyph) but never match
// a category filter.
const (
	CategoryBillboard = "billboard"
	CategoryDigital   = "digital"
	CategoryTransit   = "transit"
	CategoryMural     = "mural"
)

// DefaultCategory is applied when a submission leaves the category blank.
const DefaultCategory = CategoryBillboard

// FallbackGlyph is the display glyph for unrecognized categories.
const FallbackGlyph = "📢"

// Listing represents a single advertising-space offer.
// Price and Size are display strings exactly as entered by the owner;
// Image is a glyph derived from Category once at creation time.
type Listing struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OwnerID     string `gorm:"size:64;not null;index" json:"owner_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Category    string `gorm:"size:32;not null;default:billboard" json:"category"`
	Location    string `gorm:"size:255;not null" json:"location"`
	Price       string `gorm:"size:64;not null" json:"price"`
	Size        string `gorm:"size:64;not null" json:"size"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:16" json:"image"`
}

// TableName keeps the table name used by the original schema.
func (Listing) TableName() string {
	return "ads"
}

// categoryGlyphs is the single category→glyph mapping. All callers go
// through CategoryGlyph instead of duplicating the lookup.
var categoryGlyphs = map[string]string{
	CategoryBillboard: "🏙️",
	CategoryDigital:   "📺",
	CategoryTransit:   "🚌",
	CategoryMural:     "🎨",
}

// CategoryGlyph returns the display glyph for a category, falling back
// to FallbackGlyph for values outside the fixed set.
func CategoryGlyph(category string) string {
	if g, ok := categoryGlyphs[category]; ok {
		return g
	}
	return FallbackGlyph
}
