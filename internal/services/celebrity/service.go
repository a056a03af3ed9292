package celebrity

import (
	"context"

	"github.com/google/uuid"

	"github.com/famousguessr/famousguessr-go/internal/dependencies/clock"
	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage"
)

const (
	// DefaultListLimit caps unbounded catalog list queries
	DefaultListLimit = 100
	// DefaultNearbyRadiusMeters is the search radius when none is given
	DefaultNearbyRadiusMeters = 50000
)

// CreateInput holds the fields for a new celebrity
type CreateInput struct {
	Name          string
	BirthProvince string
	Category      string
	Photo         string
	Location      model.Point
	Bio           string
	BirthYear     int
}

// UpdateInput holds partial updates; nil fields are left unchanged
type UpdateInput struct {
	Name          *string
	BirthProvince *string
	Category      *string
	Photo         *string
	Location      *model.Point
	Bio           *string
	BirthYear     *int
	Active        *bool
}

// Service manages the celebrity catalog
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new celebrity service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// List returns active celebrities, optionally filtered by category and a
// case-insensitive search over name and birth province
func (s *Service) List(ctx context.Context, category, search string, limit int) ([]*model.Celebrity, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.storage.ListCelebrities(ctx, storage.CelebrityFilter{
		Category:   category,
		Search:     search,
		ActiveOnly: true,
		Limit:      limit,
	})
}

// Get returns a celebrity by id regardless of its active state
func (s *Service) Get(ctx context.Context, id model.CelebrityID) (*model.Celebrity, error) {
	return s.storage.GetCelebrity(ctx, id)
}

// ByProvince returns active celebrities born in the given province
func (s *Service) ByProvince(ctx context.Context, province string) ([]*model.Celebrity, error) {
	return s.storage.ListCelebritiesByProvince(ctx, province)
}

// Nearby returns active celebrities within radiusMeters of the center,
// nearest first. A non-positive radius falls back to the default.
func (s *Service) Nearby(ctx context.Context, center model.Point, radiusMeters float64) ([]*model.Celebrity, error) {
	if radiusMeters <= 0 {
		radiusMeters = DefaultNearbyRadiusMeters
	}
	return s.storage.FindCelebritiesNearby(ctx, center, radiusMeters)
}

// Create adds a new active celebrity to the catalog
func (s *Service) Create(ctx context.Context, createdBy model.UserID, input CreateInput) (*model.Celebrity, error) {
	if err := s.validateBirthYear(input.BirthYear); err != nil {
		return nil, err
	}

	photo := input.Photo
	if photo == "" {
		photo = model.DefaultCelebrityPhoto
	}

	celebrity := &model.Celebrity{
		ID:            model.CelebrityID(uuid.NewString()),
		Name:          input.Name,
		BirthProvince: input.BirthProvince,
		Category:      input.Category,
		Photo:         photo,
		Location:      input.Location,
		Bio:           input.Bio,
		BirthYear:     input.BirthYear,
		Active:        true,
		CreatedBy:     createdBy,
		CreatedAt:     s.clock.Now(),
	}

	if err := s.storage.SaveCelebrity(ctx, celebrity); err != nil {
		return nil, err
	}
	return celebrity, nil
}

// Update modifies a celebrity in place
func (s *Service) Update(ctx context.Context, id model.CelebrityID, input UpdateInput) (*model.Celebrity, error) {
	if input.BirthYear != nil {
		if err := s.validateBirthYear(*input.BirthYear); err != nil {
			return nil, err
		}
	}

	celebrity, err := s.storage.GetCelebrity(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		celebrity.Name = *input.Name
	}
	if input.BirthProvince != nil {
		celebrity.BirthProvince = *input.BirthProvince
	}
	if input.Category != nil {
		celebrity.Category = *input.Category
	}
	if input.Photo != nil {
		celebrity.Photo = *input.Photo
	}
	if input.Location != nil {
		celebrity.Location = *input.Location
	}
	if input.Bio != nil {
		celebrity.Bio = *input.Bio
	}
	if input.BirthYear != nil {
		celebrity.BirthYear = *input.BirthYear
	}
	if input.Active != nil {
		celebrity.Active = *input.Active
	}

	if err := s.storage.SaveCelebrity(ctx, celebrity); err != nil {
		return nil, err
	}
	return celebrity, nil
}

// validateBirthYear bounds birth years to plausible values. Zero means
// unset and is allowed.
func (s *Service) validateBirthYear(year int) error {
	if year == 0 {
		return nil
	}
	if year < 1800 || year > s.clock.Now().Year() {
		return model.ErrInvalidBirthYear
	}
	return nil
}

// Delete retires a celebrity. The record is kept so existing references
// stay valid; it simply stops appearing in active reads.
func (s *Service) Delete(ctx context.Context, id model.CelebrityID) error {
	celebrity, err := s.storage.GetCelebrity(ctx, id)
	if err != nil {
		return err
	}

	celebrity.Active = false
	return s.storage.SaveCelebrity(ctx, celebrity)
}
