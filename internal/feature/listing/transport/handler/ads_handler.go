package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"adhub_backend/internal/feature/listing/domain"
	"adhub_backend/internal/feature/listing/domain/entity"
	"adhub_backend/internal/feature/listing/transport/http/dto"
	"adhub_backend/internal/feature/listing/usecase"

	"github.com/gin-gonic/gin"
)

// ListingUsecase is the interface of the listing business logic used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ListingUsecase interface {
	ListAds(ctx context.Context) ([]entity.Listing, error)
	ListAdsByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error)
	GetAd(ctx context.Context, id uint) (*entity.Listing, error)
	CreateAd(ctx context.Context, in usecase.CreateAdInput) (*entity.Listing, error)
	CheckStore(ctx context.Context) ([]entity.Listing, error)
}

// AdsHandler handles the HTTP requests of the listing catalog.
type AdsHandler struct {
	uc ListingUsecase
}

// NewAdsHandler creates a new AdsHandler.
func NewAdsHandler(uc ListingUsecase) *AdsHandler {
	return &AdsHandler{uc: uc}
}

// List serves GET /api/ads and returns every listing as a JSON array.
func (h *AdsHandler) List(c *gin.Context) {
	ads, err := h.uc.ListAds(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if ads == nil {
		ads = []entity.Listing{}
	}
	c.JSON(http.StatusOK, ads)
}

// ListByOwner serves GET /api/ads/user/:userId. An unknown owner
// yields an empty array, not an error.
func (h *AdsHandler) ListByOwner(c *gin.Context) {
	ads, err := h.uc.ListAdsByOwner(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if ads == nil {
		ads = []entity.Listing{}
	}
	c.JSON(http.StatusOK, ads)
}

// Get serves GET /api/ads/:id with a single listing.
func (h *AdsHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}
	ad, err := h.uc.GetAd(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ad)
}

// Create serves POST /api/ads. On success it responds 201 with an
// array containing the inserted row, matching the original API shape.
func (h *AdsHandler) Create(c *gin.Context) {
	var req dto.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad, err := h.uc.CreateAd(c.Request.Context(), usecase.CreateAdInput{
		OwnerID:       req.OwnerID,
		Name:          req.Name,
		Category:      req.Category,
		Location:      req.Location,
		Price:         req.Price,
		Size:          req.Size,
		Description:   req.Description,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidListing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, []entity.Listing{*ad})
}

// TestDB serves GET /api/test-db with a limit-1 select against the store.
func (h *AdsHandler) TestDB(c *gin.Context) {
	rows, err := h.uc.CheckStore(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []entity.Listing{}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database connection successful", "data": rows})
}
