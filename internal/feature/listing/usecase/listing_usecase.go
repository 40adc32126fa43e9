// Package usecase implements the business logic for listing operations.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"adhub_backend/internal/feature/listing/domain"
	"adhub_backend/internal/feature/listing/domain/entity"
)

// ListingRepository abstracts the persistence layer for listing data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ListingRepository interface {
	// Insert persists a new listing. The store assigns the ID and
	// writes it back into the given entity.
	Insert(ctx context.Context, listing *entity.Listing) error

	// FindAll returns every listing. No ordering is guaranteed;
	// ordering is a catalog (client-side) concern.
	FindAll(ctx context.Context) ([]entity.Listing, error)

	// FindByOwner returns only listings created by the given owner.
	// An owner with no listings yields an empty slice, not an error.
	FindByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error)

	// FindByID returns a single listing or domain.ErrListingNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Listing, error)

	// FindFirst returns at most one listing. It backs the store
	// connectivity probe.
	FindFirst(ctx context.Context) ([]entity.Listing, error)
}

// CreateAdInput carries the fields of a listing submission.
// ContactNumber, when present, is appended to the description the way
// the vendor form always did.
type CreateAdInput struct {
	OwnerID       string
	Name          string
	Category      string
	Location      string
	Price         string
	Size          string
	Description   string
	ContactNumber string
}

// ListingUsecase provides business logic for listing operations.
type ListingUsecase struct {
	repo ListingRepository
}

// NewListingUsecase creates a new ListingUsecase with the given repository.
func NewListingUsecase(r ListingRepository) *ListingUsecase {
	return &ListingUsecase{repo: r}
}

// ListAds returns every listing in the catalog.
func (u *ListingUsecase) ListAds(ctx context.Context) ([]entity.Listing, error) {
	return u.repo.FindAll(ctx)
}

// ListAdsByOwner returns the owner-scoped subset of the catalog.
func (u *ListingUsecase) ListAdsByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error) {
	return u.repo.FindByOwner(ctx, ownerID)
}

// GetAd returns a single listing by its identifier.
func (u *ListingUsecase) GetAd(ctx context.Context, id uint) (*entity.Listing, error) {
	return u.repo.FindByID(ctx, id)
}

// CreateAd validates a submission, derives the display glyph from the
// category, and persists the listing. The returned entity carries the
// store-assigned ID.
func (u *ListingUsecase) CreateAd(ctx context.Context, in CreateAdInput) (*entity.Listing, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = entity.DefaultCategory
	}

	description := in.Description
	if c := strings.TrimSpace(in.ContactNumber); c != "" {
		description = fmt.Sprintf("%s\n\nContact Number: %s", description, c)
	}

	listing := &entity.Listing{
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Category:    category,
		Location:    in.Location,
		Price:       in.Price,
		Size:        in.Size,
		Description: description,
		Image:       entity.CategoryGlyph(category),
	}

	if err := u.repo.Insert(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// CheckStore performs a limit-1 select to verify store connectivity.
func (u *ListingUsecase) CheckStore(ctx context.Context) ([]entity.Listing, error) {
	return u.repo.FindFirst(ctx)
}

// validateInput checks the required fields of a submission.
func validateInput(in CreateAdInput) error {
	required := []struct {
		field, value string
	}{
		{"name", in.Name},
		{"location", in.Location},
		{"price", in.Price},
		{"size", in.Size},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidListing, r.field)
		}
	}
	return nil
}
