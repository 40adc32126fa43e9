// Command browse is the terminal counterpart of the ad list page: it
// materializes the catalog over HTTP, then filters, sorts and assists
// location entry entirely client side.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"adhub_backend/internal/app/di"
	"adhub_backend/internal/feature/catalog/adapters/adsapi"
	catalog "adhub_backend/internal/feature/catalog/usecase"
	"adhub_backend/internal/feature/listing/domain/entity"
	location "adhub_backend/internal/feature/location/usecase"
	infrahttp "adhub_backend/internal/platform/http"
	"adhub_backend/internal/platform/session"
)

func main() {
	var (
		category = flag.String("category", catalog.FilterAll, "filter by category (billboard|digital|transit|mural|all)")
		sortBy   = flag.String("sort", catalog.SortNewest, "sort by (newest|price-low|price-high|location)")
		suggest  = flag.String("suggest", "", "print location suggestions for a partial query and exit")
		locate   = flag.Bool("locate", false, "resolve the current location to a place name and exit")
		mine     = flag.Bool("mine", false, "only listings owned by the signed-in user (ADHUB_ACCESS_TOKEN)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *suggest != "" {
		engine := location.NewSuggestionEngine(nil)
		for _, s := range engine.Suggest(*suggest) {
			if s.UseCurrentLocation {
				fmt.Println("📍 " + s.Label)
				continue
			}
			fmt.Println("   " + s.Label)
		}
		return
	}

	if *locate {
		field := di.NewLocationField()
		name, err := field.UseCurrent(ctx)
		if err != nil {
			// Same rank as the original's "unable to retrieve your
			// location" alert: informational, not fatal to browsing.
			log.Fatal("Unable to retrieve your location: ", err)
		}
		fmt.Println(name)
		return
	}

	provider := session.NewProvider(os.Getenv("SESSION_JWT_SECRET"))
	if token := os.Getenv("ADHUB_ACCESS_TOKEN"); token != "" {
		if _, err := provider.Apply(token); err != nil {
			log.Fatal("invalid access token: ", err)
		}
	}

	cfg := adsapi.LoadConfig()
	api := adsapi.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))

	var err error
	var listings []entity.Listing
	if *mine {
		snap := provider.Current()
		if !snap.SignedIn {
			log.Fatal("-mine requires ADHUB_ACCESS_TOKEN")
		}
		listings, err = api.FetchByOwner(ctx, snap.UserID)
	} else {
		listings, err = api.FetchAll(ctx)
	}
	if err != nil {
		log.Fatal(err)
	}

	for _, l := range catalog.Apply(listings, *category, *sortBy) {
		fmt.Printf("%s %s\n", l.Image, l.Name)
		fmt.Printf("   📍 %s  📏 %s  %s\n", l.Location, l.Size, l.Price)
	}
}
