package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Score and leaderboard commands",
	}

	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGameScoresCmd())
	cmd.AddCommand(newGameLeaderboardCmd())
	cmd.AddCommand(newGameStatsCmd())

	return cmd
}

func newGameSubmitCmd() *cobra.Command {
	var difficulty string
	var score, questions, correct, timeSpent int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a finished game's score",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"difficulty":        difficulty,
				"score":             score,
				"questionsAnswered": questions,
				"correctAnswers":    correct,
				"timeSpent":         timeSpent,
			}

			var result GameScore
			res, err := client.Post("/api/games/score", req, &result)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if res.Message != "" {
				out.PrintMessage(res.Message)
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "normal", "Difficulty: normal, hard, duo")
	cmd.Flags().IntVar(&score, "score", 0, "Final score (required)")
	cmd.Flags().IntVar(&questions, "questions", 0, "Questions answered (required)")
	cmd.Flags().IntVar(&correct, "correct", 0, "Correct answers (required)")
	cmd.Flags().IntVar(&timeSpent, "time", 0, "Time spent in seconds")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("questions")
	_ = cmd.MarkFlagRequired("correct")

	return cmd
}

func newGameScoresCmd() *cobra.Command {
	var difficulty string
	var limit int

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show your recent scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []GameScore
			if _, err := client.Get("/api/games/my-scores?"+scoreQuery(difficulty, limit), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Filter by difficulty")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results")

	return cmd
}

func newGameLeaderboardCmd() *cobra.Command {
	var difficulty string
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LeaderboardEntry
			if _, err := client.Get("/api/games/leaderboard?"+scoreQuery(difficulty, limit), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Filter by difficulty")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results")

	return cmd
}

func newGameStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your per-difficulty stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []DifficultyStats
			if _, err := client.Get("/api/games/stats", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func scoreQuery(difficulty string, limit int) string {
	q := url.Values{}
	if difficulty != "" {
		q.Set("difficulty", difficulty)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	return q.Encode()
}
