package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents a registered account
type User struct {
	ID           UserID
	Username     string // unique
	Email        string // unique, stored lowercase
	PasswordHash string // bcrypt hash, never exposed in API responses
	Role         Role
	Stats        Stats
	CreatedAt    time.Time
	LastLogin    time.Time
}

// Stats holds a user's running game statistics, embedded in User.
//
// GamesPlayed is deliberately not a stored field: it mirrors TotalGames and
// is exposed through an accessor so the two counters cannot drift.
type Stats struct {
	TotalGames     int
	TotalScore     int
	HighScore      int
	AverageScore   float64
	CorrectAnswers int
	WrongAnswers   int
}

// GamesPlayed mirrors TotalGames
func (s Stats) GamesPlayed() int {
	return s.TotalGames
}

// Apply folds a completed game into the stats. wrongAnswers is derived by the
// caller as questionsAnswered - correctAnswers.
//
// The fold is order-independent for the totals and the max; the average is
// recomputed as an exact quotient each time, so refolding a user's full score
// history from scratch reproduces identical stats.
func (s *Stats) Apply(score, correctAnswers, wrongAnswers int) {
	s.TotalGames++
	s.TotalScore += score
	if score > s.HighScore {
		s.HighScore = score
	}
	s.AverageScore = float64(s.TotalScore) / float64(s.TotalGames)
	s.CorrectAnswers += correctAnswers
	s.WrongAnswers += wrongAnswers
}
