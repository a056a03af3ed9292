package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
	base    time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
	s.base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) user(id, username string, createdAt time.Time) *model.User {
	return &model.User{
		ID:        model.UserID(id),
		Username:  username,
		Email:     username + "@example.com",
		Role:      model.RolePlayer,
		CreatedAt: createdAt,
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := s.user("user-1", "alice", s.base)
	user.Stats.Apply(500, 8, 2)
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	got, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("alice", got.Username)
	s.Equal(1, got.Stats.TotalGames)
	s.Equal(500, got.Stats.HighScore)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestLookupByEmailAndUsername() {
	user := s.user("user-1", "alice", s.base)
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	byEmail, err := s.storage.GetUserByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, byEmail.ID)

	byUsername, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, byUsername.ID)
}

func (s *StorageSuite) TestEmailChangeDropsStaleIndex() {
	user := s.user("user-1", "alice", s.base)
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	user.Email = "new@example.com"
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	_, err := s.storage.GetUserByEmail(s.ctx, "alice@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)

	got, err := s.storage.GetUserByEmail(s.ctx, "new@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)
}

func (s *StorageSuite) TestListUsersOldestFirst() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.user("user-2", "bob", s.base.Add(time.Hour))))
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.user("user-1", "alice", s.base)))

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Username)
	s.Equal("bob", users[1].Username)
}

// Celebrity tests

func (s *StorageSuite) celebrity(id, name, province string, lng, lat float64, active bool, createdAt time.Time) *model.Celebrity {
	return &model.Celebrity{
		ID:            model.CelebrityID(id),
		Name:          name,
		BirthProvince: province,
		Category:      "test",
		Location:      model.Point{Longitude: lng, Latitude: lat},
		Active:        active,
		CreatedAt:     createdAt,
	}
}

func (s *StorageSuite) TestSaveAndGetCelebrity() {
	c := s.celebrity("c1", "Ada Lovelace", "London", -0.1276, 51.5072, true, s.base)
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, c))

	got, err := s.storage.GetCelebrity(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal("Ada Lovelace", got.Name)
	s.InDelta(-0.1276, got.Location.Longitude, 1e-9)
}

func (s *StorageSuite) TestGetCelebrityNotFound() {
	_, err := s.storage.GetCelebrity(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrCelebrityNotFound)
}

func (s *StorageSuite) TestListCelebritiesFilters() {
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, s.celebrity("c1", "Ada Lovelace", "London", 0, 0, true, s.base)))
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, s.celebrity("c2", "Alan Turing", "London", 0, 0, false, s.base.Add(time.Minute))))

	active, err := s.storage.ListCelebrities(s.ctx, storage.CelebrityFilter{ActiveOnly: true})
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("Ada Lovelace", active[0].Name)

	search, err := s.storage.ListCelebrities(s.ctx, storage.CelebrityFilter{Search: "turing"})
	s.Require().NoError(err)
	s.Require().Len(search, 1)
	s.Equal("Alan Turing", search[0].Name)
}

func (s *StorageSuite) TestListCelebritiesByProvinceActiveOnly() {
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, s.celebrity("c1", "Ada Lovelace", "London", 0, 0, true, s.base)))
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, s.celebrity("c2", "Alan Turing", "London", 0, 0, false, s.base.Add(time.Minute))))
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, s.celebrity("c3", "Freddie Mercury", "Zanzibar", 0, 0, true, s.base.Add(2*time.Minute))))

	result, err := s.storage.ListCelebritiesByProvince(s.ctx, "London")
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("Ada Lovelace", result[0].Name)
}

func (s *StorageSuite) TestFindCelebritiesNearby() {
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, s.celebrity("c1", "Near", "A", 0, 0.1, true, s.base)))
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, s.celebrity("c2", "Far", "B", 0, 0.5, true, s.base)))
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, s.celebrity("c3", "Outside", "C", 0, 5, true, s.base)))

	result, err := s.storage.FindCelebritiesNearby(s.ctx, model.Point{}, 100000)
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal("Near", result[0].Name)
	s.Equal("Far", result[1].Name)
}

func (s *StorageSuite) TestFindCelebritiesNearbyExcludesInactive() {
	s.Require().NoError(s.storage.SaveCelebrity(s.ctx, s.celebrity("c1", "Gone", "A", 0, 0.1, false, s.base)))

	result, err := s.storage.FindCelebritiesNearby(s.ctx, model.Point{}, 100000)
	s.Require().NoError(err)
	s.Empty(result)
}

// Score tests

func (s *StorageSuite) score(id, userID string, difficulty model.Difficulty, points int, createdAt time.Time) *model.GameScore {
	return &model.GameScore{
		ID:         model.ScoreID(id),
		UserID:     model.UserID(userID),
		Difficulty: difficulty,
		Score:      points,
		CreatedAt:  createdAt,
	}
}

func (s *StorageSuite) TestLatestScoreSince() {
	s.Require().NoError(s.storage.SaveScore(s.ctx, s.score("s1", "user-1", model.DifficultyNormal, 100, s.base)))
	s.Require().NoError(s.storage.SaveScore(s.ctx, s.score("s2", "user-1", model.DifficultyNormal, 200, s.base.Add(time.Minute))))

	latest, err := s.storage.LatestScoreSince(s.ctx, "user-1", s.base.Add(30*time.Second))
	s.Require().NoError(err)
	s.Equal(model.ScoreID("s2"), latest.ID)

	_, err = s.storage.LatestScoreSince(s.ctx, "user-1", s.base.Add(2*time.Minute))
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *StorageSuite) TestListScoresForUserNewestFirstWithFilter() {
	s.Require().NoError(s.storage.SaveScore(s.ctx, s.score("s1", "user-1", model.DifficultyNormal, 100, s.base)))
	s.Require().NoError(s.storage.SaveScore(s.ctx, s.score("s2", "user-1", model.DifficultyHard, 200, s.base.Add(time.Minute))))
	s.Require().NoError(s.storage.SaveScore(s.ctx, s.score("s3", "user-1", model.DifficultyNormal, 300, s.base.Add(2*time.Minute))))

	all, err := s.storage.ListScoresForUser(s.ctx, "user-1", storage.ScoreFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(model.ScoreID("s3"), all[0].ID)

	hard, err := s.storage.ListScoresForUser(s.ctx, "user-1", storage.ScoreFilter{Difficulty: model.DifficultyHard})
	s.Require().NoError(err)
	s.Require().Len(hard, 1)
	s.Equal(model.ScoreID("s2"), hard[0].ID)

	limited, err := s.storage.ListScoresForUser(s.ctx, "user-1", storage.ScoreFilter{Limit: 2})
	s.Require().NoError(err)
	s.Len(limited, 2)
}

func (s *StorageSuite) TestTopScoresGlobalAndPerDifficulty() {
	s.Require().NoError(s.storage.SaveScore(s.ctx, s.score("s1", "user-1", model.DifficultyNormal, 200, s.base)))
	s.Require().NoError(s.storage.SaveScore(s.ctx, s.score("s2", "user-2", model.DifficultyHard, 300, s.base.Add(time.Minute))))
	s.Require().NoError(s.storage.SaveScore(s.ctx, s.score("s3", "user-3", model.DifficultyNormal, 100, s.base.Add(2*time.Minute))))

	top, err := s.storage.TopScores(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(model.ScoreID("s2"), top[0].ID)
	s.Equal(model.ScoreID("s1"), top[1].ID)

	normal, err := s.storage.TopScores(s.ctx, model.DifficultyNormal, 0)
	s.Require().NoError(err)
	s.Require().Len(normal, 2)
	s.Equal(model.ScoreID("s1"), normal[0].ID)

	limited, err := s.storage.TopScores(s.ctx, "", 1)
	s.Require().NoError(err)
	s.Len(limited, 1)
}

// Premium request tests

func (s *StorageSuite) request(id, userID string, status model.RequestStatus, createdAt time.Time) *model.PremiumRequest {
	return &model.PremiumRequest{
		ID:        model.RequestID(id),
		UserID:    model.UserID(userID),
		Status:    status,
		CreatedAt: createdAt,
	}
}

func (s *StorageSuite) TestPendingMarkerFollowsStatus() {
	req := s.request("r1", "user-1", model.StatusPending, s.base)
	s.Require().NoError(s.storage.SavePremiumRequest(s.ctx, req))

	pending, err := s.storage.PendingRequestForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(model.RequestID("r1"), pending.ID)

	req.Status = model.StatusApproved
	s.Require().NoError(s.storage.SavePremiumRequest(s.ctx, req))

	_, err = s.storage.PendingRequestForUser(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrRequestNotFound)
}

func (s *StorageSuite) TestListPremiumRequestsNewestFirstWithStatusFilter() {
	s.Require().NoError(s.storage.SavePremiumRequest(s.ctx, s.request("r1", "user-1", model.StatusApproved, s.base)))
	s.Require().NoError(s.storage.SavePremiumRequest(s.ctx, s.request("r2", "user-2", model.StatusPending, s.base.Add(time.Minute))))

	all, err := s.storage.ListPremiumRequests(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(model.RequestID("r2"), all[0].ID)

	pending, err := s.storage.ListPremiumRequests(s.ctx, model.StatusPending)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(model.RequestID("r2"), pending[0].ID)
}

func (s *StorageSuite) TestListPremiumRequestsForUser() {
	s.Require().NoError(s.storage.SavePremiumRequest(s.ctx, s.request("r1", "user-1", model.StatusRejected, s.base)))
	s.Require().NoError(s.storage.SavePremiumRequest(s.ctx, s.request("r2", "user-1", model.StatusPending, s.base.Add(time.Minute))))
	s.Require().NoError(s.storage.SavePremiumRequest(s.ctx, s.request("r3", "user-2", model.StatusPending, s.base)))

	result, err := s.storage.ListPremiumRequestsForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(model.RequestID("r2"), result[0].ID)
	s.Equal(model.RequestID("r1"), result[1].ID)
}

func (s *StorageSuite) TestDeletePremiumRequestCleansIndexes() {
	s.Require().NoError(s.storage.SavePremiumRequest(s.ctx, s.request("r1", "user-1", model.StatusPending, s.base)))

	s.Require().NoError(s.storage.DeletePremiumRequest(s.ctx, "r1"))

	_, err := s.storage.GetPremiumRequest(s.ctx, "r1")
	s.ErrorIs(err, model.ErrRequestNotFound)

	_, err = s.storage.PendingRequestForUser(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrRequestNotFound)

	all, err := s.storage.ListPremiumRequests(s.ctx, "")
	s.Require().NoError(err)
	s.Empty(all)
}
