package model

import "time"

// RequestID uniquely identifies a premium request
type RequestID string

// RequestStatus is the lifecycle state of a premium request
type RequestStatus string

// Premium request statuses. Pending is the initial state; approved and
// rejected are terminal.
const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// ParseRequestStatus validates a status string
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return RequestStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// PremiumRequest is a player's application for the premium-player role.
// At most one pending request per user is allowed; the create path checks
// this (it is not enforced by the storage layer).
type PremiumRequest struct {
	ID            RequestID
	UserID        UserID
	Status        RequestStatus
	Message       string // optional, max 500 chars
	AdminResponse string // optional, max 500 chars
	ProcessedBy   UserID // set only when leaving pending
	ProcessedAt   time.Time
	CreatedAt     time.Time
}
