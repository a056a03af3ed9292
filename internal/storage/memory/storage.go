package memory

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	emailIndex    map[string]model.UserID
	usernameIndex map[string]model.UserID
	celebrities   map[model.CelebrityID]*model.Celebrity
	scores        map[model.ScoreID]*model.GameScore
	scoresByUser  map[model.UserID][]model.ScoreID
	requests      map[model.RequestID]*model.PremiumRequest
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		emailIndex:    make(map[string]model.UserID),
		usernameIndex: make(map[string]model.UserID),
		celebrities:   make(map[model.CelebrityID]*model.Celebrity),
		scores:        make(map[model.ScoreID]*model.GameScore),
		scoresByUser:  make(map[model.UserID][]model.ScoreID),
		requests:      make(map[model.RequestID]*model.PremiumRequest),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop stale index entries when username/email change. Callers mutate
	// and re-save the pointer this store hands out, so the stored document
	// cannot be trusted to hold the previous values; the indexes themselves
	// are the source of truth for what needs cleaning.
	for email, id := range s.emailIndex {
		if id == user.ID && email != user.Email {
			delete(s.emailIndex, email)
		}
	}
	for username, id := range s.usernameIndex {
		if id == user.ID && username != user.Username {
			delete(s.usernameIndex, username)
		}
	}

	s.users[user.ID] = user
	s.emailIndex[user.Email] = user.ID
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

// Celebrity operations

func (s *Storage) SaveCelebrity(ctx context.Context, celebrity *model.Celebrity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.celebrities[celebrity.ID] = celebrity
	return nil
}

func (s *Storage) GetCelebrity(ctx context.Context, id model.CelebrityID) (*model.Celebrity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	celebrity, ok := s.celebrities[id]
	if !ok {
		return nil, model.ErrCelebrityNotFound
	}
	return celebrity, nil
}

func (s *Storage) ListCelebrities(ctx context.Context, filter storage.CelebrityFilter) ([]*model.Celebrity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	var result []*model.Celebrity
	for _, c := range s.celebrities {
		if filter.ActiveOnly && !c.Active {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.BirthProvince), search) {
			continue
		}
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *Storage) ListCelebritiesByProvince(ctx context.Context, province string) ([]*model.Celebrity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Celebrity
	for _, c := range s.celebrities {
		if c.Active && c.BirthProvince == province {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Storage) FindCelebritiesNearby(ctx context.Context, center model.Point, radiusMeters float64) ([]*model.Celebrity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type candidate struct {
		celebrity *model.Celebrity
		distance  float64
	}

	var matches []candidate
	for _, c := range s.celebrities {
		if !c.Active {
			continue
		}
		d := haversineMeters(center, c.Location)
		if d <= radiusMeters {
			matches = append(matches, candidate{c, d})
		}
	}

	// Nearest first, matching the geospatial index behavior
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	result := make([]*model.Celebrity, len(matches))
	for i, m := range matches {
		result[i] = m.celebrity
	}
	return result, nil
}

// Game score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.GameScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[score.ID] = score
	s.scoresByUser[score.UserID] = append(s.scoresByUser[score.UserID], score.ID)
	return nil
}

func (s *Storage) LatestScoreSince(ctx context.Context, userID model.UserID, since time.Time) (*model.GameScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *model.GameScore
	for _, id := range s.scoresByUser[userID] {
		sc := s.scores[id]
		if sc.CreatedAt.Before(since) {
			continue
		}
		if latest == nil || sc.CreatedAt.After(latest.CreatedAt) {
			latest = sc
		}
	}
	if latest == nil {
		return nil, model.ErrScoreNotFound
	}
	return latest, nil
}

func (s *Storage) ListScoresForUser(ctx context.Context, userID model.UserID, filter storage.ScoreFilter) ([]*model.GameScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.GameScore
	for _, id := range s.scoresByUser[userID] {
		sc := s.scores[id]
		if filter.Difficulty != "" && sc.Difficulty != filter.Difficulty {
			continue
		}
		result = append(result, sc)
	}

	// Newest first
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *Storage) TopScores(ctx context.Context, difficulty model.Difficulty, limit int) ([]*model.GameScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.GameScore
	for _, sc := range s.scores {
		if difficulty != "" && sc.Difficulty != difficulty {
			continue
		}
		result = append(result, sc)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Premium request operations

func (s *Storage) SavePremiumRequest(ctx context.Context, req *model.PremiumRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.ID] = req
	return nil
}

func (s *Storage) GetPremiumRequest(ctx context.Context, id model.RequestID) (*model.PremiumRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, model.ErrRequestNotFound
	}
	return req, nil
}

func (s *Storage) PendingRequestForUser(ctx context.Context, userID model.UserID) (*model.PremiumRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, req := range s.requests {
		if req.UserID == userID && req.Status == model.StatusPending {
			return req, nil
		}
	}
	return nil, model.ErrRequestNotFound
}

func (s *Storage) ListPremiumRequestsForUser(ctx context.Context, userID model.UserID) ([]*model.PremiumRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*model.PremiumRequest
	for _, req := range s.requests {
		if req.UserID == userID {
			result = append(result, req)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Storage) ListPremiumRequests(ctx context.Context, status model.RequestStatus) ([]*model.PremiumRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*model.PremiumRequest
	for _, req := range s.requests {
		if status != "" && req.Status != status {
			continue
		}
		result = append(result, req)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Storage) DeletePremiumRequest(ctx context.Context, id model.RequestID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.requests, id)
	return nil
}

// earthRadiusMeters is the mean earth radius used for haversine distances
const earthRadiusMeters = 6371000

// haversineMeters returns the great-circle distance between two points
func haversineMeters(a, b model.Point) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
