package storage

import (
	"context"
	"time"

	"github.com/famousguessr/famousguessr-go/internal/model"
)

// CelebrityFilter narrows celebrity list queries. Zero values mean "no
// filter".
type CelebrityFilter struct {
	Category   string
	Search     string // case-insensitive match against name and birth province
	ActiveOnly bool
	Limit      int // <= 0 means no limit
}

// ScoreFilter narrows per-user score queries
type ScoreFilter struct {
	Difficulty model.Difficulty // empty means all difficulties
	Limit      int              // <= 0 means no limit
}

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Celebrity operations. ListCelebritiesByProvince and
	// FindCelebritiesNearby return active celebrities only; nearby results
	// are ordered nearest first.
	SaveCelebrity(ctx context.Context, celebrity *model.Celebrity) error
	GetCelebrity(ctx context.Context, id model.CelebrityID) (*model.Celebrity, error)
	ListCelebrities(ctx context.Context, filter CelebrityFilter) ([]*model.Celebrity, error)
	ListCelebritiesByProvince(ctx context.Context, province string) ([]*model.Celebrity, error)
	FindCelebritiesNearby(ctx context.Context, center model.Point, radiusMeters float64) ([]*model.Celebrity, error)

	// Game score operations. Scores are immutable once created: there is no
	// update or delete path.
	SaveScore(ctx context.Context, score *model.GameScore) error
	LatestScoreSince(ctx context.Context, userID model.UserID, since time.Time) (*model.GameScore, error)
	ListScoresForUser(ctx context.Context, userID model.UserID, filter ScoreFilter) ([]*model.GameScore, error)
	TopScores(ctx context.Context, difficulty model.Difficulty, limit int) ([]*model.GameScore, error)

	// Premium request operations
	SavePremiumRequest(ctx context.Context, req *model.PremiumRequest) error
	GetPremiumRequest(ctx context.Context, id model.RequestID) (*model.PremiumRequest, error)
	PendingRequestForUser(ctx context.Context, userID model.UserID) (*model.PremiumRequest, error)
	ListPremiumRequestsForUser(ctx context.Context, userID model.UserID) ([]*model.PremiumRequest, error)
	ListPremiumRequests(ctx context.Context, status model.RequestStatus) ([]*model.PremiumRequest, error)
	DeletePremiumRequest(ctx context.Context, id model.RequestID) error
}
