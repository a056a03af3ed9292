package premium

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
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
	admin   *model.User
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()
	s.admin = s.newUser("admin", model.RoleAdmin)
}

func (s *ServiceSuite) newUser(username string, role model.Role) *model.User {
	user := &model.User{
		ID:        model.UserID(uuid.NewString()),
		Username:  username,
		Email:     username + "@example.com",
		Role:      role,
		CreatedAt: s.clock.Now(),
	}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))
	return user
}

// Request tests

func (s *ServiceSuite) TestRequestSucceeds() {
	user := s.newUser("alice", model.RolePlayer)

	req, err := s.service.Request(s.ctx, user.ID, "please")
	s.Require().NoError(err)

	s.NotEmpty(req.ID)
	s.Equal(model.StatusPending, req.Status)
	s.Equal("please", req.Message)
	s.Equal(s.clock.Now(), req.CreatedAt)
}

func (s *ServiceSuite) TestRequestRejectedForPremiumPlayer() {
	user := s.newUser("alice", model.RolePremiumPlayer)

	_, err := s.service.Request(s.ctx, user.ID, "")
	s.ErrorIs(err, model.ErrAlreadyPremium)
}

func (s *ServiceSuite) TestRequestRejectedForAdmin() {
	_, err := s.service.Request(s.ctx, s.admin.ID, "")
	s.ErrorIs(err, model.ErrAlreadyPremium)
}

func (s *ServiceSuite) TestSecondPendingRequestRejected() {
	user := s.newUser("alice", model.RolePlayer)

	_, err := s.service.Request(s.ctx, user.ID, "first")
	s.Require().NoError(err)

	_, err = s.service.Request(s.ctx, user.ID, "second")
	s.ErrorIs(err, model.ErrPendingRequestExists)
}

func (s *ServiceSuite) TestRequestAllowedAfterRejection() {
	user := s.newUser("alice", model.RolePlayer)

	first, err := s.service.Request(s.ctx, user.ID, "first")
	s.Require().NoError(err)
	_, err = s.service.Process(s.ctx, first.ID, s.admin.ID, model.StatusRejected, "no")
	s.Require().NoError(err)

	_, err = s.service.Request(s.ctx, user.ID, "second")
	s.NoError(err)
}

// Process tests

func (s *ServiceSuite) TestApprovePromotesUser() {
	user := s.newUser("alice", model.RolePlayer)
	req, err := s.service.Request(s.ctx, user.ID, "")
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	processed, err := s.service.Process(s.ctx, req.ID, s.admin.ID, model.StatusApproved, "welcome")
	s.Require().NoError(err)

	s.Equal(model.StatusApproved, processed.Status)
	s.Equal("welcome", processed.AdminResponse)
	s.Equal(s.admin.ID, processed.ProcessedBy)
	s.Equal(s.clock.Now(), processed.ProcessedAt)

	stored, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(model.RolePremiumPlayer, stored.Role)
}

func (s *ServiceSuite) TestRejectDoesNotPromote() {
	user := s.newUser("alice", model.RolePlayer)
	req, err := s.service.Request(s.ctx, user.ID, "")
	s.Require().NoError(err)

	_, err = s.service.Process(s.ctx, req.ID, s.admin.ID, model.StatusRejected, "no")
	s.Require().NoError(err)

	stored, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(model.RolePlayer, stored.Role)
}

func (s *ServiceSuite) TestProcessRejectsPendingStatus() {
	user := s.newUser("alice", model.RolePlayer)
	req, err := s.service.Request(s.ctx, user.ID, "")
	s.Require().NoError(err)

	_, err = s.service.Process(s.ctx, req.ID, s.admin.ID, model.StatusPending, "")
	s.ErrorIs(err, model.ErrInvalidStatus)
}

func (s *ServiceSuite) TestProcessTwiceFails() {
	user := s.newUser("alice", model.RolePlayer)
	req, err := s.service.Request(s.ctx, user.ID, "")
	s.Require().NoError(err)

	_, err = s.service.Process(s.ctx, req.ID, s.admin.ID, model.StatusApproved, "")
	s.Require().NoError(err)

	_, err = s.service.Process(s.ctx, req.ID, s.admin.ID, model.StatusRejected, "")
	s.ErrorIs(err, model.ErrRequestAlreadyProcessed)
}

func (s *ServiceSuite) TestProcessUnknownRequestFails() {
	_, err := s.service.Process(s.ctx, model.RequestID("missing"), s.admin.ID, model.StatusApproved, "")
	s.ErrorIs(err, model.ErrRequestNotFound)
}

// Listing tests

func (s *ServiceSuite) TestMyRequestsNewestFirst() {
	user := s.newUser("alice", model.RolePlayer)

	first, err := s.service.Request(s.ctx, user.ID, "first")
	s.Require().NoError(err)
	_, err = s.service.Process(s.ctx, first.ID, s.admin.ID, model.StatusRejected, "")
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	_, err = s.service.Request(s.ctx, user.ID, "second")
	s.Require().NoError(err)

	requests, err := s.service.MyRequests(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(requests, 2)
	s.Equal("second", requests[0].Message)
	s.Equal("first", requests[1].Message)
}

func (s *ServiceSuite) TestListFiltersByStatus() {
	alice := s.newUser("alice", model.RolePlayer)
	bob := s.newUser("bob", model.RolePlayer)

	req, err := s.service.Request(s.ctx, alice.ID, "")
	s.Require().NoError(err)
	_, err = s.service.Process(s.ctx, req.ID, s.admin.ID, model.StatusApproved, "")
	s.Require().NoError(err)

	_, err = s.service.Request(s.ctx, bob.ID, "")
	s.Require().NoError(err)

	pending, err := s.service.List(s.ctx, model.StatusPending)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(bob.ID, pending[0].UserID)

	all, err := s.service.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, 2)
}

// Delete tests

func (s *ServiceSuite) TestDeleteRemovesRequest() {
	user := s.newUser("alice", model.RolePlayer)
	req, err := s.service.Request(s.ctx, user.ID, "")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, req.ID))

	_, err = s.storage.GetPremiumRequest(s.ctx, req.ID)
	s.ErrorIs(err, model.ErrRequestNotFound)
}

func (s *ServiceSuite) TestDeletePendingRequestAllowsNewRequest() {
	user := s.newUser("alice", model.RolePlayer)
	req, err := s.service.Request(s.ctx, user.ID, "")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, req.ID))

	_, err = s.service.Request(s.ctx, user.ID, "again")
	s.NoError(err)
}

func (s *ServiceSuite) TestDeleteUnknownFails() {
	err := s.service.Delete(s.ctx, model.RequestID("missing"))
	s.ErrorIs(err, model.ErrRequestNotFound)
}
