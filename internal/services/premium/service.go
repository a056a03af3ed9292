package premium

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/famousguessr/famousguessr-go/internal/dependencies/clock"
	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage"
)

// Service manages the premium-membership request workflow
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new premium service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Request files a premium request for the user. Users who already have
// premium access may not request it, and at most one pending request per
// user is allowed. The pending check is check-then-act: two concurrent
// requests can both pass it, which is an accepted race.
func (s *Service) Request(ctx context.Context, userID model.UserID, message string) (*model.PremiumRequest, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role.HasPremiumAccess() {
		return nil, model.ErrAlreadyPremium
	}

	if _, err := s.storage.PendingRequestForUser(ctx, userID); err == nil {
		return nil, model.ErrPendingRequestExists
	} else if !errors.Is(err, model.ErrRequestNotFound) {
		return nil, err
	}

	req := &model.PremiumRequest{
		ID:        model.RequestID(uuid.NewString()),
		UserID:    userID,
		Status:    model.StatusPending,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SavePremiumRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// MyRequests returns the user's requests, newest first
func (s *Service) MyRequests(ctx context.Context, userID model.UserID) ([]*model.PremiumRequest, error) {
	return s.storage.ListPremiumRequestsForUser(ctx, userID)
}

// List returns all requests, newest first, optionally filtered by status
func (s *Service) List(ctx context.Context, status model.RequestStatus) ([]*model.PremiumRequest, error) {
	return s.storage.ListPremiumRequests(ctx, status)
}

// Process approves or rejects a pending request. Approval promotes the
// requesting user to premium-player; rejection changes only the request.
// Requests that already left pending cannot be processed again.
func (s *Service) Process(ctx context.Context, id model.RequestID, processedBy model.UserID, status model.RequestStatus, adminResponse string) (*model.PremiumRequest, error) {
	if status != model.StatusApproved && status != model.StatusRejected {
		return nil, model.ErrInvalidStatus
	}

	req, err := s.storage.GetPremiumRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != model.StatusPending {
		return nil, model.ErrRequestAlreadyProcessed
	}

	req.Status = status
	req.AdminResponse = adminResponse
	req.ProcessedBy = processedBy
	req.ProcessedAt = s.clock.Now()

	if err := s.storage.SavePremiumRequest(ctx, req); err != nil {
		return nil, err
	}

	if status == model.StatusApproved {
		user, err := s.storage.GetUser(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		user.Role = model.RolePremiumPlayer
		if err := s.storage.SaveUser(ctx, user); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// Delete removes a request entirely (admin housekeeping)
func (s *Service) Delete(ctx context.Context, id model.RequestID) error {
	if _, err := s.storage.GetPremiumRequest(ctx, id); err != nil {
		return err
	}
	return s.storage.DeletePremiumRequest(ctx, id)
}
