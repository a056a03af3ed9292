package response

import (
	"time"

	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/services/game"
)

// Stats represents user statistics in API responses. GamesPlayed mirrors
// TotalGames; both are populated from the single stored counter.
type Stats struct {
	TotalGames     int     `json:"totalGames"`
	GamesPlayed    int     `json:"gamesPlayed"`
	TotalScore     int     `json:"totalScore"`
	HighScore      int     `json:"highScore"`
	AverageScore   float64 `json:"averageScore"`
	CorrectAnswers int     `json:"correctAnswers"`
	WrongAnswers   int     `json:"wrongAnswers"`
}

// StatsFromModel converts model.Stats
func StatsFromModel(s model.Stats) Stats {
	return Stats{
		TotalGames:     s.TotalGames,
		GamesPlayed:    s.GamesPlayed(),
		TotalScore:     s.TotalScore,
		HighScore:      s.HighScore,
		AverageScore:   s.AverageScore,
		CorrectAnswers: s.CorrectAnswers,
		WrongAnswers:   s.WrongAnswers,
	}
}

// User represents a user in API responses. The credential hash is never
// included.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Stats     Stats      `json:"stats"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	var lastLogin *time.Time
	if !u.LastLogin.IsZero() {
		t := u.LastLogin
		lastLogin = &t
	}
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		Stats:     StatsFromModel(u.Stats),
		CreatedAt: u.CreatedAt,
		LastLogin: lastLogin,
	}
}

// RegisterData is the payload returned after registration
type RegisterData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// LoginData is the payload returned after login
type LoginData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Stats    Stats  `json:"stats"`
	Token    string `json:"token"`
}

// Location is a GeoJSON-style point, coordinates ordered [longitude, latitude]
type Location struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Celebrity represents a catalog entry in API responses
type Celebrity struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	BirthProvince string    `json:"birthProvince"`
	Category      string    `json:"category"`
	Photo         string    `json:"photo"`
	Location      Location  `json:"location"`
	Bio           string    `json:"bio,omitempty"`
	BirthYear     int       `json:"birthYear,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedBy     string    `json:"createdBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CelebrityFromModel converts a model.Celebrity to a response Celebrity
func CelebrityFromModel(c *model.Celebrity) Celebrity {
	return Celebrity{
		ID:            string(c.ID),
		Name:          c.Name,
		BirthProvince: c.BirthProvince,
		Category:      c.Category,
		Photo:         c.Photo,
		Location: Location{
			Type:        "Point",
			Coordinates: [2]float64{c.Location.Longitude, c.Location.Latitude},
		},
		Bio:       c.Bio,
		BirthYear: c.BirthYear,
		IsActive:  c.Active,
		CreatedBy: string(c.CreatedBy),
		CreatedAt: c.CreatedAt,
	}
}

// CelebritiesFromModel converts a slice of celebrities
func CelebritiesFromModel(cs []*model.Celebrity) []Celebrity {
	result := make([]Celebrity, len(cs))
	for i, c := range cs {
		result[i] = CelebrityFromModel(c)
	}
	return result
}

// GameScore represents a stored score in API responses
type GameScore struct {
	ID                string    `json:"id"`
	User              string    `json:"user"`
	Difficulty        string    `json:"difficulty"`
	Score             int       `json:"score"`
	QuestionsAnswered int       `json:"questionsAnswered"`
	CorrectAnswers    int       `json:"correctAnswers"`
	TimeSpent         int       `json:"timeSpent"`
	Accuracy          float64   `json:"accuracy"`
	CreatedAt         time.Time `json:"createdAt"`
}

// GameScoreFromModel converts a model.GameScore
func GameScoreFromModel(s *model.GameScore) GameScore {
	return GameScore{
		ID:                string(s.ID),
		User:              string(s.UserID),
		Difficulty:        string(s.Difficulty),
		Score:             s.Score,
		QuestionsAnswered: s.QuestionsAnswered,
		CorrectAnswers:    s.CorrectAnswers,
		TimeSpent:         s.TimeSpent,
		Accuracy:          s.Accuracy,
		CreatedAt:         s.CreatedAt,
	}
}

// GameScoresFromModel converts a slice of scores
func GameScoresFromModel(ss []*model.GameScore) []GameScore {
	result := make([]GameScore, len(ss))
	for i, s := range ss {
		result[i] = GameScoreFromModel(s)
	}
	return result
}

// LeaderboardUser is the owner snapshot embedded in a leaderboard entry
type LeaderboardUser struct {
	Username string `json:"username"`
	Stats    Stats  `json:"stats"`
}

// LeaderboardEntry is a top score with its owner's username and current stats
type LeaderboardEntry struct {
	GameScore
	User LeaderboardUser `json:"user"`
}

// LeaderboardFromModel converts game.LeaderboardEntry values
func LeaderboardFromModel(entries []game.LeaderboardEntry) []LeaderboardEntry {
	result := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		score := GameScoreFromModel(e.Score)
		score.User = ""
		result[i] = LeaderboardEntry{
			GameScore: score,
			User: LeaderboardUser{
				Username: e.Username,
				Stats:    StatsFromModel(e.Stats),
			},
		}
	}
	return result
}

// DifficultyStats is one aggregate row of a user's scores
type DifficultyStats struct {
	Difficulty             string  `json:"difficulty"`
	TotalGames             int     `json:"totalGames"`
	AverageScore           float64 `json:"averageScore"`
	HighScore              int     `json:"highScore"`
	TotalQuestionsAnswered int     `json:"totalQuestionsAnswered"`
	TotalCorrectAnswers    int     `json:"totalCorrectAnswers"`
	AverageAccuracy        float64 `json:"averageAccuracy"`
}

// DifficultyStatsFromModel converts game.DifficultyStats values
func DifficultyStatsFromModel(rows []game.DifficultyStats) []DifficultyStats {
	result := make([]DifficultyStats, len(rows))
	for i, r := range rows {
		result[i] = DifficultyStats{
			Difficulty:             string(r.Difficulty),
			TotalGames:             r.TotalGames,
			AverageScore:           r.AverageScore,
			HighScore:              r.HighScore,
			TotalQuestionsAnswered: r.TotalQuestions,
			TotalCorrectAnswers:    r.TotalCorrect,
			AverageAccuracy:        r.AverageAccuracy,
		}
	}
	return result
}

// PremiumRequest represents a premium request in API responses
type PremiumRequest struct {
	ID            string     `json:"id"`
	User          string     `json:"user"`
	Status        string     `json:"status"`
	Message       string     `json:"message,omitempty"`
	AdminResponse string     `json:"adminResponse,omitempty"`
	ProcessedBy   string     `json:"processedBy,omitempty"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// PremiumRequestFromModel converts a model.PremiumRequest
func PremiumRequestFromModel(r *model.PremiumRequest) PremiumRequest {
	var processedAt *time.Time
	if !r.ProcessedAt.IsZero() {
		t := r.ProcessedAt
		processedAt = &t
	}
	return PremiumRequest{
		ID:            string(r.ID),
		User:          string(r.UserID),
		Status:        string(r.Status),
		Message:       r.Message,
		AdminResponse: r.AdminResponse,
		ProcessedBy:   string(r.ProcessedBy),
		ProcessedAt:   processedAt,
		CreatedAt:     r.CreatedAt,
	}
}

// PremiumRequestsFromModel converts a slice of premium requests
func PremiumRequestsFromModel(rs []*model.PremiumRequest) []PremiumRequest {
	result := make([]PremiumRequest, len(rs))
	for i, r := range rs {
		result[i] = PremiumRequestFromModel(r)
	}
	return result
}
