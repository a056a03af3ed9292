package model

import "time"

// ScoreID uniquely identifies a game score record
type ScoreID string

// Difficulty is one of the three game modes
type Difficulty string

// Game difficulties
const (
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyDuo    Difficulty = "duo"
)

// ParseDifficulty validates a difficulty string
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyNormal, DifficultyHard, DifficultyDuo:
		return Difficulty(s), nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// GameScore records a single completed game. Immutable once created.
type GameScore struct {
	ID                ScoreID
	UserID            UserID
	Difficulty        Difficulty
	Score             int
	QuestionsAnswered int
	CorrectAnswers    int
	TimeSpent         int // seconds
	Accuracy          float64
	CreatedAt         time.Time
}

// ComputeAccuracy returns the percentage of correct answers, 0 when no
// questions were answered.
func ComputeAccuracy(correctAnswers, questionsAnswered int) float64 {
	if questionsAnswered == 0 {
		return 0
	}
	return float64(correctAnswers) / float64(questionsAnswered) * 100
}
