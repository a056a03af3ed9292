package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// Documents are stored as JSON values; uniqueness, recency, leaderboard and
// geospatial lookups are served by companion index keys kept in sync through
// pipelined writes.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Drop stale index entries when username/email change
	old, err := s.GetUser(ctx, user.ID)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	if old != nil {
		if old.Email != user.Email {
			pipe.Del(ctx, emailIndexKey(old.Email))
		}
		if old.Username != user.Username {
			pipe.Del(ctx, usernameIndexKey(old.Username))
		}
	}
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, emailIndexKey(user.Email), string(user.ID), 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	pipe.SAdd(ctx, usersIndexKey(), string(user.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	id, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return s.GetUser(ctx, model.UserID(id))
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	id, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return s.GetUser(ctx, model.UserID(id))
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	ids, err := s.client.SMembers(ctx, usersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.GetUser(ctx, model.UserID(id))
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

// Celebrity operations

func (s *Storage) SaveCelebrity(ctx context.Context, celebrity *model.Celebrity) error {
	data, err := json.Marshal(celebrity)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, celebrityKey(celebrity.ID), data, 0)
	pipe.SAdd(ctx, celebritiesIndexKey(), string(celebrity.ID))
	pipe.GeoAdd(ctx, celebrityGeoKey(), &redis.GeoLocation{
		Name:      string(celebrity.ID),
		Longitude: celebrity.Location.Longitude,
		Latitude:  celebrity.Location.Latitude,
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCelebrity(ctx context.Context, id model.CelebrityID) (*model.Celebrity, error) {
	data, err := s.client.Get(ctx, celebrityKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCelebrityNotFound
		}
		return nil, err
	}

	var celebrity model.Celebrity
	if err := json.Unmarshal(data, &celebrity); err != nil {
		return nil, err
	}
	return &celebrity, nil
}

func (s *Storage) ListCelebrities(ctx context.Context, filter storage.CelebrityFilter) ([]*model.Celebrity, error) {
	ids, err := s.client.SMembers(ctx, celebritiesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(filter.Search)
	var result []*model.Celebrity
	for _, id := range ids {
		c, err := s.GetCelebrity(ctx, model.CelebrityID(id))
		if err != nil {
			if errors.Is(err, model.ErrCelebrityNotFound) {
				continue
			}
			return nil, err
		}
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
	ids, err := s.client.SMembers(ctx, celebritiesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	var result []*model.Celebrity
	for _, id := range ids {
		c, err := s.GetCelebrity(ctx, model.CelebrityID(id))
		if err != nil {
			if errors.Is(err, model.ErrCelebrityNotFound) {
				continue
			}
			return nil, err
		}
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
	locations, err := s.client.GeoRadius(ctx, celebrityGeoKey(), center.Longitude, center.Latitude, &redis.GeoRadiusQuery{
		Radius: radiusMeters,
		Unit:   "m",
		Sort:   "ASC",
	}).Result()
	if err != nil {
		return nil, err
	}

	var result []*model.Celebrity
	for _, loc := range locations {
		c, err := s.GetCelebrity(ctx, model.CelebrityID(loc.Name))
		if err != nil {
			if errors.Is(err, model.ErrCelebrityNotFound) {
				continue
			}
			return nil, err
		}
		// Soft-deleted entries stay in the GEO index; filter them here
		if c.Active {
			result = append(result, c)
		}
	}
	return result, nil
}

// Game score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.GameScore) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, scoreKey(score.ID), data, 0)
	pipe.ZAdd(ctx, userScoresIndexKey(score.UserID), redis.Z{
		Score:  float64(score.CreatedAt.UnixMilli()),
		Member: string(score.ID),
	})
	pipe.ZAdd(ctx, leaderboardKey(""), redis.Z{
		Score:  float64(score.Score),
		Member: string(score.ID),
	})
	pipe.ZAdd(ctx, leaderboardKey(score.Difficulty), redis.Z{
		Score:  float64(score.Score),
		Member: string(score.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) getScore(ctx context.Context, id model.ScoreID) (*model.GameScore, error) {
	data, err := s.client.Get(ctx, scoreKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrScoreNotFound
		}
		return nil, err
	}

	var score model.GameScore
	if err := json.Unmarshal(data, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

func (s *Storage) LatestScoreSince(ctx context.Context, userID model.UserID, since time.Time) (*model.GameScore, error) {
	ids, err := s.client.ZRevRangeByScore(ctx, userScoresIndexKey(userID), &redis.ZRangeBy{
		Min:   strconv.FormatInt(since.UnixMilli(), 10),
		Max:   "+inf",
		Count: 1,
	}).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, model.ErrScoreNotFound
	}
	return s.getScore(ctx, model.ScoreID(ids[0]))
}

func (s *Storage) ListScoresForUser(ctx context.Context, userID model.UserID, filter storage.ScoreFilter) ([]*model.GameScore, error) {
	// Newest first from the recency index; the difficulty filter is applied
	// after fetching, so fetch everything and trim at the end
	ids, err := s.client.ZRevRange(ctx, userScoresIndexKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var result []*model.GameScore
	for _, id := range ids {
		score, err := s.getScore(ctx, model.ScoreID(id))
		if err != nil {
			if errors.Is(err, model.ErrScoreNotFound) {
				continue
			}
			return nil, err
		}
		if filter.Difficulty != "" && score.Difficulty != filter.Difficulty {
			continue
		}
		result = append(result, score)
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
	}
	return result, nil
}

func (s *Storage) TopScores(ctx context.Context, difficulty model.Difficulty, limit int) ([]*model.GameScore, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	ids, err := s.client.ZRevRange(ctx, leaderboardKey(difficulty), 0, stop).Result()
	if err != nil {
		return nil, err
	}

	result := make([]*model.GameScore, 0, len(ids))
	for _, id := range ids {
		score, err := s.getScore(ctx, model.ScoreID(id))
		if err != nil {
			if errors.Is(err, model.ErrScoreNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, score)
	}
	return result, nil
}

// Premium request operations

func (s *Storage) SavePremiumRequest(ctx context.Context, req *model.PremiumRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}

	createdAt := float64(req.CreatedAt.UnixMilli())

	pipe := s.client.Pipeline()
	pipe.Set(ctx, requestKey(req.ID), data, 0)
	pipe.ZAdd(ctx, requestsIndexKey(), redis.Z{Score: createdAt, Member: string(req.ID)})
	pipe.ZAdd(ctx, userRequestsIndexKey(req.UserID), redis.Z{Score: createdAt, Member: string(req.ID)})
	if req.Status == model.StatusPending {
		pipe.Set(ctx, pendingRequestKey(req.UserID), string(req.ID), 0)
	} else {
		// Leaving pending clears the pending marker
		pipe.Del(ctx, pendingRequestKey(req.UserID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPremiumRequest(ctx context.Context, id model.RequestID) (*model.PremiumRequest, error) {
	data, err := s.client.Get(ctx, requestKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRequestNotFound
		}
		return nil, err
	}

	var req model.PremiumRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Storage) PendingRequestForUser(ctx context.Context, userID model.UserID) (*model.PremiumRequest, error) {
	id, err := s.client.Get(ctx, pendingRequestKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRequestNotFound
		}
		return nil, err
	}
	return s.GetPremiumRequest(ctx, model.RequestID(id))
}

func (s *Storage) ListPremiumRequestsForUser(ctx context.Context, userID model.UserID) ([]*model.PremiumRequest, error) {
	ids, err := s.client.ZRevRange(ctx, userRequestsIndexKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return s.fetchRequests(ctx, ids, "")
}

func (s *Storage) ListPremiumRequests(ctx context.Context, status model.RequestStatus) ([]*model.PremiumRequest, error) {
	ids, err := s.client.ZRevRange(ctx, requestsIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return s.fetchRequests(ctx, ids, status)
}

func (s *Storage) fetchRequests(ctx context.Context, ids []string, status model.RequestStatus) ([]*model.PremiumRequest, error) {
	var result []*model.PremiumRequest
	for _, id := range ids {
		req, err := s.GetPremiumRequest(ctx, model.RequestID(id))
		if err != nil {
			if errors.Is(err, model.ErrRequestNotFound) {
				continue
			}
			return nil, err
		}
		if status != "" && req.Status != status {
			continue
		}
		result = append(result, req)
	}
	return result, nil
}

func (s *Storage) DeletePremiumRequest(ctx context.Context, id model.RequestID) error {
	req, err := s.GetPremiumRequest(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrRequestNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, requestKey(id))
	pipe.ZRem(ctx, requestsIndexKey(), string(id))
	pipe.ZRem(ctx, userRequestsIndexKey(req.UserID), string(id))
	if req.Status == model.StatusPending {
		pipe.Del(ctx, pendingRequestKey(req.UserID))
	}
	_, err = pipe.Exec(ctx)
	return err
}
