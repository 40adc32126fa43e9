// Command seed loads the sample catalog into an empty store. It is a
// one-shot job, meant for fresh environments and demos.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"adhub_backend/internal/config"
	"adhub_backend/internal/feature/listing/adapters"
	"adhub_backend/internal/feature/listing/domain/entity"
	infradb "adhub_backend/internal/platform/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Missing Supabase URL or Key. Check .env file: ", err)
	}

	db := infradb.OpenDB(cfg)
	repo := adapters.NewListingRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	existing, err := repo.FindFirst(ctx)
	if err != nil {
		log.Fatal("failed to check store:", err)
	}
	if len(existing) > 0 {
		log.Println("store is not empty, nothing to seed")
		return
	}

	// Sample rows carry no real owner.
	owner := uuid.Nil.String()

	for _, l := range sampleCatalog {
		l.OwnerID = owner
		if err := repo.Insert(ctx, &l); err != nil {
			log.Fatalf("failed to seed %q: %v", l.Name, err)
		}
	}
	log.Printf("seed ok: %d listings", len(sampleCatalog))
}

// sampleCatalog is the demo catalog shipped with the first version of
// the frontend. Images are kept as authored there, which is why a few
// differ from the plain category glyph.
var sampleCatalog = []entity.Listing{
	{Name: "Billboard - Western Express Hwy", Location: "Mumbai", Price: "₹40,000/month", Category: "billboard", Image: "🏙️", Size: "14x48 ft", Description: "High visibility billboard on the main highway, perfect for large-scale brand awareness campaigns. Visible to thousands of daily commuters."},
	{Name: "Digital Screen - Connaught Place", Location: "Delhi", Price: "₹1,50,000/month", Category: "digital", Image: "📺", Size: "20x30 ft", Description: "Bright digital screen in the heart of the city. High engagement and dynamic content capabilities."},
	{Name: "Bus Stop Ad - Indiranagar", Location: "Bangalore", Price: "₹25,000/month", Category: "transit", Image: "🚌", Size: "4x6 ft", Description: "Target commuters with this bus stop ad. Great for local reach and high frequency exposure."},
	{Name: "Wall Mural - Park Street", Location: "Kolkata", Price: "₹65,000/month", Category: "mural", Image: "🎨", Size: "30x40 ft", Description: "Artistic wall mural on a busy street. Creates a unique and memorable brand impression."},
	{Name: "Billboard - SG Highway", Location: "Ahmedabad", Price: "₹35,000/month", Category: "billboard", Image: "🛣️", Size: "14x48 ft", Description: "Classic billboard location on the busy highway. Ideal for travel and tourism related advertisements."},
	{Name: "Digital Billboard - Airport", Location: "Hyderabad", Price: "₹1,20,000/month", Category: "digital", Image: "✈️", Size: "16x32 ft", Description: "Premium digital space near the airport. Capture the attention of travelers and business professionals."},
	{Name: "Bus Bench - Marine Drive", Location: "Mumbai", Price: "₹20,000/month", Category: "transit", Image: "🪑", Size: "2x6 ft", Description: "Street-level visibility on famous Marine Drive. Perfect for local targeting."},
	{Name: "Metro Station Digital", Location: "Delhi", Price: "₹1,00,000/month", Category: "digital", Image: "🚇", Size: "55 inch", Description: "High-traffic metro entrance digital screen. Captive audience during commute."},
	{Name: "Auto Rickshaw Display", Location: "Chennai", Price: "₹30,000/month", Category: "transit", Image: "🛺", Size: "1x3 ft", Description: "Mobile advertising throughout the city center. High frequency impressions."},
	{Name: "Mall Kiosk - Phoenix Marketcity", Location: "Pune", Price: "₹50,000/month", Category: "digital", Image: "🛍️", Size: "4x6 ft", Description: "Interactive kiosk in a major shopping mall. Reach consumers with high purchase intent."},
	{Name: "Stadium Scoreboard", Location: "Mumbai", Price: "₹4,00,000/game", Category: "digital", Image: "🏟️", Size: "50x100 ft", Description: "Massive exposure during cricket matches and concerts. Unmissable brand impact."},
	{Name: "Office Lobby Screen", Location: "Bangalore", Price: "₹55,000/month", Category: "digital", Image: "🏢", Size: "65 inch", Description: "Corporate audience targeting in premium tech parks."},
	{Name: "Highway Billboard - NH8", Location: "Jaipur", Price: "₹45,000/month", Category: "billboard", Image: "🚗", Size: "14x48 ft", Description: "Prime highway location for maximum visibility to vehicle traffic."},
	{Name: "Street Art Mural", Location: "Kochi", Price: "₹90,000/month", Category: "mural", Image: "🎭", Size: "20x20 ft", Description: "Creative and colorful mural in the arts district. Highly instagrammable."},
	{Name: "Railway Station Poster", Location: "Lucknow", Price: "₹15,000/month", Category: "billboard", Image: "🚉", Size: "4x6 ft", Description: "High footfall visibility at Main Railway Station platforms."},
	{Name: "Cinema Hall Slide", Location: "Chandigarh", Price: "₹10,000/week", Category: "digital", Image: "🍿", Size: "Screen", Description: "On-screen advertising before blockbuster movies. Captive audience."},
	{Name: "IT Park Food Court", Location: "Hyderabad", Price: "₹75,000/month", Category: "billboard", Image: "🍽️", Size: "6x4 ft", Description: "Standee placement in busy food courts of Hitech City. Targets professionals."},
	{Name: "Toll Plaza Gantry", Location: "Gurgaon", Price: "₹2,50,000/month", Category: "billboard", Image: "🚧", Size: "80x20 ft", Description: "Massive gantry structure over the expressway toll plaza. 100% visibility to passing traffic."},
	{Name: "Bus Shelter Branding", Location: "Trivandrum", Price: "₹22,000/month", Category: "transit", Image: "🚏", Size: "Full Shelter", Description: "Complete branding of a bus shelter in the city center."},
	{Name: "Unipole Hoarding", Location: "Indore", Price: "₹60,000/month", Category: "billboard", Image: "🚩", Size: "20x10 ft", Description: "Prominent unipole at a major traffic junction."},
	{Name: "Metro Pillar Branding", Location: "Nagpur", Price: "₹40,000/month", Category: "billboard", Image: "🚇", Size: "Pillar Wrap", Description: "Eye-catching wrap around metro pillars on main roads."},
	{Name: "Airport Baggage Claim", Location: "Goa", Price: "₹1,80,000/month", Category: "digital", Image: "🧳", Size: "Digital Screen", Description: "Digital screens on baggage belts. High dwell time for tourists."},
	{Name: "Lift Branding", Location: "Noida", Price: "₹12,000/month", Category: "billboard", Image: "↕️", Size: "Door Wrap", Description: "Internal and external lift door branding in corporate towers."},
	{Name: "Society Gate Sponsorship", Location: "Pune", Price: "₹18,000/month", Category: "billboard", Image: "🏡", Size: "Gate Arch", Description: "Branding at the entrance arch of premium residential societies."},
}
