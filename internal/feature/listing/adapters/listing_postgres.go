// Package adapters provides the repository implementations for the listing feature.
package adapters

import (
	"context"
	"errors"

	"adhub_backend/internal/feature/listing/domain"
	"adhub_backend/internal/feature/listing/domain/entity"
	"adhub_backend/internal/feature/listing/usecase"

	"gorm.io/gorm"
)

// listingPostgres is the Postgres implementation of the ListingRepository interface.
type listingPostgres struct {
	db *gorm.DB
}

var _ usecase.ListingRepository = (*listingPostgres)(nil)

// NewListingRepository creates a new listingPostgres repository with the given DB connection.
func NewListingRepository(db *gorm.DB) *listingPostgres {
	return &listingPostgres{db: db}
}

// Insert persists a new listing row. The assigned ID is written back
// into the entity by GORM.
func (r *listingPostgres) Insert(ctx context.Context, listing *entity.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// FindAll returns every listing without any ordering guarantee.
func (r *listingPostgres) FindAll(ctx context.Context) ([]entity.Listing, error) {
	var listings []entity.Listing
	if err := r.db.WithContext(ctx).Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// FindByOwner returns only listings created by the given owner.
func (r *listingPostgres) FindByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error) {
	var listings []entity.Listing
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// FindByID returns a single listing, mapping gorm.ErrRecordNotFound to
// the domain error.
func (r *listingPostgres) FindByID(ctx context.Context, id uint) (*entity.Listing, error) {
	var listing entity.Listing
	if err := r.db.WithContext(ctx).First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// FindFirst returns at most one listing, used as a store connectivity probe.
func (r *listingPostgres) FindFirst(ctx context.Context) ([]entity.Listing, error) {
	var listings []entity.Listing
	if err := r.db.WithContext(ctx).Limit(1).Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
