package game

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/famousguessr/famousguessr-go/internal/dependencies/clock"
	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage"
)

// DuplicateWindow is the trailing interval within which a repeated score
// submission from the same user is treated as a client retry rather than a
// new game. Fixed on purpose; two genuinely distinct plays inside the window
// are indistinguishable from a retry and the second is dropped.
const DuplicateWindow = 30 * time.Second

// DefaultLimit is the fallback result count for score list queries
const DefaultLimit = 10

// SubmitInput is a completed game to record
type SubmitInput struct {
	Difficulty        model.Difficulty
	Score             int
	QuestionsAnswered int
	CorrectAnswers    int
	TimeSpent         int
}

// LeaderboardEntry is a top score enriched with its owner's username and
// current stats. The stats are a snapshot at query time, not at score
// creation time.
type LeaderboardEntry struct {
	Score    *model.GameScore
	Username string
	Stats    model.Stats
}

// DifficultyStats aggregates a user's scores for one difficulty
type DifficultyStats struct {
	Difficulty      model.Difficulty
	TotalGames      int
	AverageScore    float64
	HighScore       int
	TotalQuestions  int
	TotalCorrect    int
	AverageAccuracy float64
}

// Service records game results and serves leaderboard and stats reads
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new game service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// SubmitScore records a completed game for the user and folds it into their
// stats. When the user already has a score inside the duplicate window, the
// existing record is returned with alreadySaved=true and nothing is written:
// callers must treat that as success, not as an error.
func (s *Service) SubmitScore(ctx context.Context, userID model.UserID, input SubmitInput) (score *model.GameScore, alreadySaved bool, err error) {
	now := s.clock.Now()

	existing, err := s.storage.LatestScoreSince(ctx, userID, now.Add(-DuplicateWindow))
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, model.ErrScoreNotFound) {
		return nil, false, err
	}

	score = &model.GameScore{
		ID:                model.ScoreID(uuid.NewString()),
		UserID:            userID,
		Difficulty:        input.Difficulty,
		Score:             input.Score,
		QuestionsAnswered: input.QuestionsAnswered,
		CorrectAnswers:    input.CorrectAnswers,
		TimeSpent:         input.TimeSpent,
		Accuracy:          model.ComputeAccuracy(input.CorrectAnswers, input.QuestionsAnswered),
		CreatedAt:         now,
	}

	if err := s.storage.SaveScore(ctx, score); err != nil {
		return nil, false, err
	}

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	wrongAnswers := input.QuestionsAnswered - input.CorrectAnswers
	user.Stats.Apply(input.Score, input.CorrectAnswers, wrongAnswers)
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, false, err
	}

	return score, false, nil
}

// MyScores returns the user's scores, newest first
func (s *Service) MyScores(ctx context.Context, userID model.UserID, difficulty model.Difficulty, limit int) ([]*model.GameScore, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.storage.ListScoresForUser(ctx, userID, storage.ScoreFilter{
		Difficulty: difficulty,
		Limit:      limit,
	})
}

// Leaderboard returns the top scores ordered by score descending, optionally
// filtered by difficulty, each enriched with its owner's username and current
// stats
func (s *Service) Leaderboard(ctx context.Context, difficulty model.Difficulty, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	scores, err := s.storage.TopScores(ctx, difficulty, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		user, err := s.storage.GetUser(ctx, score.UserID)
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			Score:    score,
			Username: user.Username,
			Stats:    user.Stats,
		})
	}
	return entries, nil
}

// StatsByDifficulty groups the user's scores by difficulty, one row per
// difficulty the user has played, in the fixed normal/hard/duo order
func (s *Service) StatsByDifficulty(ctx context.Context, userID model.UserID) ([]DifficultyStats, error) {
	scores, err := s.storage.ListScoresForUser(ctx, userID, storage.ScoreFilter{})
	if err != nil {
		return nil, err
	}

	byDifficulty := make(map[model.Difficulty]*DifficultyStats)
	for _, score := range scores {
		row, ok := byDifficulty[score.Difficulty]
		if !ok {
			row = &DifficultyStats{Difficulty: score.Difficulty}
			byDifficulty[score.Difficulty] = row
		}
		row.TotalGames++
		row.AverageScore += float64(score.Score)
		if score.Score > row.HighScore {
			row.HighScore = score.Score
		}
		row.TotalQuestions += score.QuestionsAnswered
		row.TotalCorrect += score.CorrectAnswers
		row.AverageAccuracy += score.Accuracy
	}

	var result []DifficultyStats
	for _, d := range []model.Difficulty{model.DifficultyNormal, model.DifficultyHard, model.DifficultyDuo} {
		row, ok := byDifficulty[d]
		if !ok {
			continue
		}
		row.AverageScore /= float64(row.TotalGames)
		row.AverageAccuracy /= float64(row.TotalGames)
		result = append(result, *row)
	}
	return result, nil
}

// RebuildStats re-derives a user's stats from scratch by folding over all of
// their stored scores. Users with no scores are reset to zero stats.
func (s *Service) RebuildStats(ctx context.Context, userID model.UserID) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	scores, err := s.storage.ListScoresForUser(ctx, userID, storage.ScoreFilter{})
	if err != nil {
		return nil, err
	}

	var stats model.Stats
	for _, score := range scores {
		stats.Apply(score.Score, score.CorrectAnswers, score.QuestionsAnswered-score.CorrectAnswers)
	}

	user.Stats = stats
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RebuildAllStats runs RebuildStats for every user and returns the number of
// users repaired
func (s *Service) RebuildAllStats(ctx context.Context) (int, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return 0, err
	}

	for i, user := range users {
		if _, err := s.RebuildStats(ctx, user.ID); err != nil {
			return i, err
		}
	}
	return len(users), nil
}
