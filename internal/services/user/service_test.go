package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
	base    time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
	s.base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ServiceSuite) newUser(username string, role model.Role, createdAt time.Time) *model.User {
	user := &model.User{
		ID:        model.UserID(uuid.NewString()),
		Username:  username,
		Email:     username + "@example.com",
		Role:      role,
		CreatedAt: createdAt,
	}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))
	return user
}

func (s *ServiceSuite) TestListReturnsUsersOldestFirst() {
	s.newUser("bob", model.RolePlayer, s.base.Add(time.Hour))
	s.newUser("alice", model.RolePlayer, s.base)

	users, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Username)
	s.Equal("bob", users[1].Username)
}

func (s *ServiceSuite) TestGetReturnsUser() {
	user := s.newUser("alice", model.RolePlayer, s.base)

	got, err := s.service.Get(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("alice", got.Username)
}

func (s *ServiceSuite) TestGetUnknownFails() {
	_, err := s.service.Get(s.ctx, model.UserID("missing"))
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestUpdateRolePersists() {
	user := s.newUser("alice", model.RolePlayer, s.base)

	updated, err := s.service.UpdateRole(s.ctx, user.ID, model.RoleAdmin)
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, updated.Role)

	stored, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, stored.Role)
}

func (s *ServiceSuite) TestUpdateRoleUnknownFails() {
	_, err := s.service.UpdateRole(s.ctx, model.UserID("missing"), model.RoleAdmin)
	s.ErrorIs(err, model.ErrUserNotFound)
}
