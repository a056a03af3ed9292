package handler

import (
	"net/http"
	"strconv"

	"github.com/famousguessr/famousguessr-go/internal/api/middleware"
	"github.com/famousguessr/famousguessr-go/internal/api/request"
	"github.com/famousguessr/famousguessr-go/internal/api/response"
	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/services/game"
)

// GameHandler handles score submission, leaderboard and stats endpoints
type GameHandler struct {
	gameService *game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *game.Service) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// SubmitScore handles POST /api/games/score
func (h *GameHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SubmitScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	correct := 0
	if req.CorrectAnswers != nil {
		correct = *req.CorrectAnswers
	}

	score, alreadySaved, err := h.gameService.SubmitScore(r.Context(), user.ID, game.SubmitInput{
		Difficulty:        difficulty,
		Score:             *req.Score,
		QuestionsAnswered: *req.QuestionsAnswered,
		CorrectAnswers:    correct,
		TimeSpent:         req.TimeSpent,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	if alreadySaved {
		response.JSONWithMessage(w, http.StatusOK, response.GameScoreFromModel(score), "Score already saved")
		return
	}

	response.JSON(w, http.StatusCreated, response.GameScoreFromModel(score))
}

// MyScores handles GET /api/games/my-scores
func (h *GameHandler) MyScores(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	difficulty, limit, err := scoreQueryParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	scores, err := h.gameService.MyScores(r.Context(), user.ID, difficulty, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoCache(w)
	response.JSONWithCount(w, http.StatusOK, response.GameScoresFromModel(scores), len(scores))
}

// Leaderboard handles GET /api/games/leaderboard
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	difficulty, limit, err := scoreQueryParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	entries, err := h.gameService.Leaderboard(r.Context(), difficulty, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoCache(w)
	response.JSONWithCount(w, http.StatusOK, response.LeaderboardFromModel(entries), len(entries))
}

// Stats handles GET /api/games/stats
func (h *GameHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	rows, err := h.gameService.StatsByDifficulty(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoCache(w)
	response.JSON(w, http.StatusOK, response.DifficultyStatsFromModel(rows))
}

// scoreQueryParams parses the optional difficulty and limit query params
// shared by the score list endpoints
func scoreQueryParams(r *http.Request) (model.Difficulty, int, error) {
	q := r.URL.Query()

	var difficulty model.Difficulty
	if raw := q.Get("difficulty"); raw != "" {
		d, err := model.ParseDifficulty(raw)
		if err != nil {
			return "", 0, err
		}
		difficulty = d
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return "", 0, NewInvalidRequestError("limit must be a positive integer")
		}
		limit = n
	}

	return difficulty, limit, nil
}
