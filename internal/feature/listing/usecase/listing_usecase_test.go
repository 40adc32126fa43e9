package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"adhub_backend/internal/feature/listing/domain"
	"adhub_backend/internal/feature/listing/domain/entity"
	"adhub_backend/internal/feature/listing/usecase"
)

// mockListingRepository is a function-field mock of the ListingRepository interface.
type mockListingRepository struct {
	insertFn      func(ctx context.Context, listing *entity.Listing) error
	findAllFn     func(ctx context.Context) ([]entity.Listing, error)
	findByOwnerFn func(ctx context.Context, ownerID string) ([]entity.Listing, error)
	findByIDFn    func(ctx context.Context, id uint) (*entity.Listing, error)
	findFirstFn   func(ctx context.Context) ([]entity.Listing, error)
}

func (m *mockListingRepository) Insert(ctx context.Context, listing *entity.Listing) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, listing)
	}
	return nil
}

func (m *mockListingRepository) FindAll(ctx context.Context) ([]entity.Listing, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockListingRepository) FindByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error) {
	if m.findByOwnerFn != nil {
		return m.findByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockListingRepository) FindByID(ctx context.Context, id uint) (*entity.Listing, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, domain.ErrListingNotFound
}

func (m *mockListingRepository) FindFirst(ctx context.Context) ([]entity.Listing, error) {
	if m.findFirstFn != nil {
		return m.findFirstFn(ctx)
	}
	return nil, nil
}

func validInput() usecase.CreateAdInput {
	return usecase.CreateAdInput{
		OwnerID:     "6f6a1f7e-9f6a-4b7e-9f6a-000000000001",
		Name:        "Billboard - Western Express Hwy",
		Category:    "billboard",
		Location:    "Mumbai",
		Price:       "₹40,000/month",
		Size:        "14x48 ft",
		Description: "High visibility billboard on the main highway.",
	}
}

func TestListingUsecase_CreateAd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(in *usecase.CreateAdInput)
		insertFn   func(ctx context.Context, l *entity.Listing) error
		wantErr    error
		wantErrMsg string
		check      func(t *testing.T, l *entity.Listing)
	}{
		{
			name: "success: persists and returns the listing with assigned id",
			insertFn: func(ctx context.Context, l *entity.Listing) error {
				l.ID = 42
				return nil
			},
			check: func(t *testing.T, l *entity.Listing) {
				assert.Equal(t, uint(42), l.ID)
				assert.Equal(t, "🏙️", l.Image)
			},
		},
		{
			name:   "success: blank category defaults to billboard",
			mutate: func(in *usecase.CreateAdInput) { in.Category = "" },
			check: func(t *testing.T, l *entity.Listing) {
				assert.Equal(t, entity.CategoryBillboard, l.Category)
				assert.Equal(t, "🏙️", l.Image)
			},
		},
		{
			name:   "success: unknown category keeps value but gets fallback glyph",
			mutate: func(in *usecase.CreateAdInput) { in.Category = "hologram" },
			check: func(t *testing.T, l *entity.Listing) {
				assert.Equal(t, "hologram", l.Category)
				assert.Equal(t, entity.FallbackGlyph, l.Image)
			},
		},
		{
			name:   "success: contact number is appended to the description",
			mutate: func(in *usecase.CreateAdInput) { in.ContactNumber = "9876543210" },
			check: func(t *testing.T, l *entity.Listing) {
				assert.Equal(t,
					"High visibility billboard on the main highway.\n\nContact Number: 9876543210",
					l.Description)
			},
		},
		{
			name:    "failure: missing name",
			mutate:  func(in *usecase.CreateAdInput) { in.Name = "  " },
			wantErr: domain.ErrInvalidListing,
		},
		{
			name:    "failure: missing location",
			mutate:  func(in *usecase.CreateAdInput) { in.Location = "" },
			wantErr: domain.ErrInvalidListing,
		},
		{
			name:    "failure: missing price",
			mutate:  func(in *usecase.CreateAdInput) { in.Price = "" },
			wantErr: domain.ErrInvalidListing,
		},
		{
			name:    "failure: missing size",
			mutate:  func(in *usecase.CreateAdInput) { in.Size = "" },
			wantErr: domain.ErrInvalidListing,
		},
		{
			name: "failure: repository error is propagated",
			insertFn: func(ctx context.Context, l *entity.Listing) error {
				return errors.New("connection reset")
			},
			wantErrMsg: "connection reset",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			repo := &mockListingRepository{insertFn: tt.insertFn}
			uc := usecase.NewListingUsecase(repo)

			got, err := uc.CreateAd(context.Background(), in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, got)
			default:
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, got)
				}
			}
		})
	}
}

// A validation failure must never reach the store.
func TestListingUsecase_CreateAd_NoInsertOnValidationFailure(t *testing.T) {
	t.Parallel()

	inserted := false
	repo := &mockListingRepository{
		insertFn: func(ctx context.Context, l *entity.Listing) error {
			inserted = true
			return nil
		},
	}
	uc := usecase.NewListingUsecase(repo)

	in := validInput()
	in.Price = ""
	_, err := uc.CreateAd(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidListing)
	assert.False(t, inserted, "Insert must not be called for an invalid submission")
}

func TestListingUsecase_ListAds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		findAllFn func(ctx context.Context) ([]entity.Listing, error)
		want      []entity.Listing
		wantErr   bool
	}{
		{
			name: "success: returns catalog",
			findAllFn: func(ctx context.Context) ([]entity.Listing, error) {
				return []entity.Listing{{ID: 1, Name: "Billboard"}, {ID: 2, Name: "Mural"}}, nil
			},
			want: []entity.Listing{{ID: 1, Name: "Billboard"}, {ID: 2, Name: "Mural"}},
		},
		{
			name: "success: empty catalog",
			findAllFn: func(ctx context.Context) ([]entity.Listing, error) {
				return []entity.Listing{}, nil
			},
			want: []entity.Listing{},
		},
		{
			name: "failure: repository error",
			findAllFn: func(ctx context.Context) ([]entity.Listing, error) {
				return nil, errors.New("database connection failed")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewListingUsecase(&mockListingRepository{findAllFn: tt.findAllFn})
			got, err := uc.ListAds(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestListingUsecase_ListAdsByOwner(t *testing.T) {
	t.Parallel()

	repo := &mockListingRepository{
		findByOwnerFn: func(ctx context.Context, ownerID string) ([]entity.Listing, error) {
			assert.Equal(t, "owner-1", ownerID)
			return []entity.Listing{{ID: 3, OwnerID: "owner-1"}}, nil
		},
	}
	uc := usecase.NewListingUsecase(repo)

	got, err := uc.ListAdsByOwner(context.Background(), "owner-1")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "owner-1", got[0].OwnerID)
}

func TestListingUsecase_CheckStore(t *testing.T) {
	t.Parallel()

	repo := &mockListingRepository{
		findFirstFn: func(ctx context.Context) ([]entity.Listing, error) {
			return []entity.Listing{{ID: 1}}, nil
		},
	}
	uc := usecase.NewListingUsecase(repo)

	rows, err := uc.CheckStore(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
