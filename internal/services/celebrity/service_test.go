package celebrity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/famousguessr/famousguessr-go/internal/dependencies/mocks"
	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()
}

const adminID = model.UserID("admin-1")

func (s *ServiceSuite) create(name, province, category string, lng, lat float64) *model.Celebrity {
	c, err := s.service.Create(s.ctx, adminID, CreateInput{
		Name:          name,
		BirthProvince: province,
		Category:      category,
		Location:      model.Point{Longitude: lng, Latitude: lat},
	})
	s.Require().NoError(err)
	return c
}

// Create tests

func (s *ServiceSuite) TestCreateSucceeds() {
	c := s.create("Ada Lovelace", "London", "science", -0.1276, 51.5072)

	s.NotEmpty(c.ID)
	s.True(c.Active)
	s.Equal(adminID, c.CreatedBy)
	s.Equal(s.clock.Now(), c.CreatedAt)
}

func (s *ServiceSuite) TestCreateDefaultsPhoto() {
	c := s.create("Ada Lovelace", "London", "science", -0.1276, 51.5072)
	s.Equal(model.DefaultCelebrityPhoto, c.Photo)
}

func (s *ServiceSuite) TestCreateKeepsExplicitPhoto() {
	c, err := s.service.Create(s.ctx, adminID, CreateInput{
		Name:          "Ada Lovelace",
		BirthProvince: "London",
		Category:      "science",
		Photo:         "/images/ada.jpg",
	})
	s.Require().NoError(err)
	s.Equal("/images/ada.jpg", c.Photo)
}

func (s *ServiceSuite) TestCreateAcceptsBirthYearBounds() {
	_, err := s.service.Create(s.ctx, adminID, CreateInput{
		Name:          "Ada Lovelace",
		BirthProvince: "London",
		Category:      "science",
		BirthYear:     1815,
	})
	s.NoError(err)

	// Zero means unset
	_, err = s.service.Create(s.ctx, adminID, CreateInput{
		Name:          "Unknown",
		BirthProvince: "Nowhere",
		Category:      "test",
	})
	s.NoError(err)
}

func (s *ServiceSuite) TestCreateRejectsImplausibleBirthYear() {
	_, err := s.service.Create(s.ctx, adminID, CreateInput{
		Name:          "Ancient",
		BirthProvince: "Nowhere",
		Category:      "test",
		BirthYear:     1799,
	})
	s.ErrorIs(err, model.ErrInvalidBirthYear)

	// The clock sits at 2024, so a 2025 birth year is in the future
	_, err = s.service.Create(s.ctx, adminID, CreateInput{
		Name:          "Unborn",
		BirthProvince: "Nowhere",
		Category:      "test",
		BirthYear:     2025,
	})
	s.ErrorIs(err, model.ErrInvalidBirthYear)
}

func (s *ServiceSuite) TestUpdateRejectsImplausibleBirthYear() {
	c := s.create("Ada Lovelace", "London", "science", 0, 0)

	year := 2025
	_, err := s.service.Update(s.ctx, c.ID, UpdateInput{BirthYear: &year})
	s.ErrorIs(err, model.ErrInvalidBirthYear)
}

// List tests

func (s *ServiceSuite) TestListReturnsActiveOnly() {
	s.create("Ada Lovelace", "London", "science", 0, 0)
	retired := s.create("Alan Turing", "London", "science", 0, 0)
	s.Require().NoError(s.service.Delete(s.ctx, retired.ID))

	result, err := s.service.List(s.ctx, "", "", 0)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Ada Lovelace", result[0].Name)
}

func (s *ServiceSuite) TestListFiltersByCategory() {
	s.create("Ada Lovelace", "London", "science", 0, 0)
	s.create("Freddie Mercury", "Zanzibar", "music", 0, 0)

	result, err := s.service.List(s.ctx, "music", "", 0)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Freddie Mercury", result[0].Name)
}

func (s *ServiceSuite) TestListSearchIsCaseInsensitive() {
	s.create("Ada Lovelace", "London", "science", 0, 0)
	s.create("Freddie Mercury", "Zanzibar", "music", 0, 0)

	result, err := s.service.List(s.ctx, "", "lovelace", 0)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Ada Lovelace", result[0].Name)
}

func (s *ServiceSuite) TestListHonorsLimit() {
	s.create("Ada Lovelace", "London", "science", 0, 0)
	s.create("Alan Turing", "London", "science", 0, 0)
	s.create("Freddie Mercury", "Zanzibar", "music", 0, 0)

	result, err := s.service.List(s.ctx, "", "", 2)
	s.Require().NoError(err)
	s.Len(result, 2)
}

// Get tests

func (s *ServiceSuite) TestGetReturnsInactiveCelebrities() {
	c := s.create("Alan Turing", "London", "science", 0, 0)
	s.Require().NoError(s.service.Delete(s.ctx, c.ID))

	got, err := s.service.Get(s.ctx, c.ID)
	s.Require().NoError(err)
	s.False(got.Active)
}

func (s *ServiceSuite) TestGetUnknownFails() {
	_, err := s.service.Get(s.ctx, model.CelebrityID("missing"))
	s.ErrorIs(err, model.ErrCelebrityNotFound)
}

// ByProvince tests

func (s *ServiceSuite) TestByProvinceFiltersAndExcludesInactive() {
	s.create("Ada Lovelace", "London", "science", 0, 0)
	retired := s.create("Alan Turing", "London", "science", 0, 0)
	s.create("Freddie Mercury", "Zanzibar", "music", 0, 0)
	s.Require().NoError(s.service.Delete(s.ctx, retired.ID))

	result, err := s.service.ByProvince(s.ctx, "London")
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Ada Lovelace", result[0].Name)
}

// Nearby tests

func (s *ServiceSuite) TestNearbyReturnsNearestFirst() {
	// Points along the Greenwich meridian, roughly 111km per degree
	s.create("Far", "North", "test", 0, 1.0)
	s.create("Near", "Center", "test", 0, 0.1)

	result, err := s.service.Nearby(s.ctx, model.Point{Longitude: 0, Latitude: 0}, 200000)
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal("Near", result[0].Name)
	s.Equal("Far", result[1].Name)
}

func (s *ServiceSuite) TestNearbyExcludesOutOfRadius() {
	s.create("Near", "Center", "test", 0, 0.1)
	s.create("Far", "North", "test", 0, 3.0)

	result, err := s.service.Nearby(s.ctx, model.Point{Longitude: 0, Latitude: 0}, 50000)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Near", result[0].Name)
}

func (s *ServiceSuite) TestNearbyExcludesInactive() {
	c := s.create("Near", "Center", "test", 0, 0.1)
	s.Require().NoError(s.service.Delete(s.ctx, c.ID))

	result, err := s.service.Nearby(s.ctx, model.Point{Longitude: 0, Latitude: 0}, 50000)
	s.Require().NoError(err)
	s.Empty(result)
}

// Update tests

func (s *ServiceSuite) TestUpdateChangesOnlyProvidedFields() {
	c := s.create("Ada Lovelace", "London", "science", 0, 0)

	name := "Ada King"
	updated, err := s.service.Update(s.ctx, c.ID, UpdateInput{Name: &name})
	s.Require().NoError(err)
	s.Equal("Ada King", updated.Name)
	s.Equal("London", updated.BirthProvince)
	s.Equal("science", updated.Category)
}

func (s *ServiceSuite) TestUpdateCanReactivate() {
	c := s.create("Alan Turing", "London", "science", 0, 0)
	s.Require().NoError(s.service.Delete(s.ctx, c.ID))

	active := true
	updated, err := s.service.Update(s.ctx, c.ID, UpdateInput{Active: &active})
	s.Require().NoError(err)
	s.True(updated.Active)

	result, err := s.service.List(s.ctx, "", "", 0)
	s.Require().NoError(err)
	s.Len(result, 1)
}

func (s *ServiceSuite) TestUpdateUnknownFails() {
	_, err := s.service.Update(s.ctx, model.CelebrityID("missing"), UpdateInput{})
	s.ErrorIs(err, model.ErrCelebrityNotFound)
}

// Delete tests

func (s *ServiceSuite) TestDeleteIsSoft() {
	c := s.create("Alan Turing", "London", "science", 0, 0)
	s.Require().NoError(s.service.Delete(s.ctx, c.ID))

	got, err := s.storage.GetCelebrity(s.ctx, c.ID)
	s.Require().NoError(err)
	s.False(got.Active)
}

func (s *ServiceSuite) TestDeleteUnknownFails() {
	err := s.service.Delete(s.ctx, model.CelebrityID("missing"))
	s.ErrorIs(err, model.ErrCelebrityNotFound)
}
