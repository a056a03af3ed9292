package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		for i, u := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printUser(u)
		}
	case AuthData:
		o.printAuthData(v)
	case Celebrity:
		o.printCelebrity(v)
	case []Celebrity:
		for i, c := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printCelebrity(c)
		}
	case GameScore:
		o.printGameScore(v)
	case []GameScore:
		for _, s := range v {
			o.printGameScore(s)
		}
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case []DifficultyStats:
		o.printDifficultyStats(v)
	case PremiumRequest:
		o.printPremiumRequest(v)
	case []PremiumRequest:
		for i, r := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printPremiumRequest(r)
		}
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Stats response type (matches API)
type Stats struct {
	TotalGames     int     `json:"totalGames"`
	GamesPlayed    int     `json:"gamesPlayed"`
	TotalScore     int     `json:"totalScore"`
	HighScore      int     `json:"highScore"`
	AverageScore   float64 `json:"averageScore"`
	CorrectAnswers int     `json:"correctAnswers"`
	WrongAnswers   int     `json:"wrongAnswers"`
}

// User response type
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Stats     Stats      `json:"stats"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

// AuthData is the register/login payload
type AuthData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// Location response type, coordinates ordered [longitude, latitude]
type Location struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Celebrity response type
type Celebrity struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BirthProvince string   `json:"birthProvince"`
	Category      string   `json:"category"`
	Photo         string   `json:"photo"`
	Location      Location `json:"location"`
	Bio           string   `json:"bio"`
	BirthYear     int      `json:"birthYear"`
	IsActive      bool     `json:"isActive"`
}

// GameScore response type
type GameScore struct {
	ID                string    `json:"id"`
	Difficulty        string    `json:"difficulty"`
	Score             int       `json:"score"`
	QuestionsAnswered int       `json:"questionsAnswered"`
	CorrectAnswers    int       `json:"correctAnswers"`
	TimeSpent         int       `json:"timeSpent"`
	Accuracy          float64   `json:"accuracy"`
	CreatedAt         time.Time `json:"createdAt"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	GameScore
	User struct {
		Username string `json:"username"`
		Stats    Stats  `json:"stats"`
	} `json:"user"`
}

// DifficultyStats response type
type DifficultyStats struct {
	Difficulty             string  `json:"difficulty"`
	TotalGames             int     `json:"totalGames"`
	AverageScore           float64 `json:"averageScore"`
	HighScore              int     `json:"highScore"`
	TotalQuestionsAnswered int     `json:"totalQuestionsAnswered"`
	TotalCorrectAnswers    int     `json:"totalCorrectAnswers"`
	AverageAccuracy        float64 `json:"averageAccuracy"`
}

// PremiumRequest response type
type PremiumRequest struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	AdminResponse string    `json:"adminResponse"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Role: %s\n", u.Role)
	fmt.Printf("Games: %d  High Score: %d  Average: %.1f\n",
		u.Stats.TotalGames, u.Stats.HighScore, u.Stats.AverageScore)
}

func (o *Output) printAuthData(a AuthData) {
	fmt.Printf("User: %s (%s)\n", a.Username, a.ID)
	fmt.Printf("Email: %s\n", a.Email)
	fmt.Printf("Role: %s\n", a.Role)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printCelebrity(c Celebrity) {
	fmt.Printf("Celebrity: %s (%s)\n", c.Name, c.ID)
	fmt.Printf("Province: %s  Category: %s\n", c.BirthProvince, c.Category)
	fmt.Printf("Location: %.5f, %.5f\n", c.Location.Coordinates[1], c.Location.Coordinates[0])
	if c.BirthYear != 0 {
		fmt.Printf("Born: %d\n", c.BirthYear)
	}
	if !c.IsActive {
		fmt.Println("Inactive")
	}
}

func (o *Output) printGameScore(s GameScore) {
	fmt.Printf("%s  %s  score=%d  accuracy=%.1f%%  (%d/%d correct)\n",
		s.CreatedAt.Format(time.RFC3339), s.Difficulty, s.Score,
		s.Accuracy, s.CorrectAnswers, s.QuestionsAnswered)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	for i, e := range entries {
		fmt.Printf("%2d. %-20s %6d  (%s, %.1f%%)\n",
			i+1, e.User.Username, e.Score, e.Difficulty, e.Accuracy)
	}
}

func (o *Output) printDifficultyStats(rows []DifficultyStats) {
	for _, r := range rows {
		fmt.Printf("%s: games=%d high=%d avg=%.1f accuracy=%.1f%%\n",
			r.Difficulty, r.TotalGames, r.HighScore, r.AverageScore, r.AverageAccuracy)
	}
}

func (o *Output) printPremiumRequest(r PremiumRequest) {
	fmt.Printf("Request: %s\n", r.ID)
	fmt.Printf("Status: %s\n", r.Status)
	if r.Message != "" {
		fmt.Printf("Message: %s\n", r.Message)
	}
	if r.AdminResponse != "" {
		fmt.Printf("Response: %s\n", r.AdminResponse)
	}
}
