package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/famousguessr/famousguessr-go/internal/api/handler"
	apimiddleware "github.com/famousguessr/famousguessr-go/internal/api/middleware"
	"github.com/famousguessr/famousguessr-go/internal/middleware"
	"github.com/famousguessr/famousguessr-go/internal/services/auth"
	"github.com/famousguessr/famousguessr-go/internal/services/celebrity"
	"github.com/famousguessr/famousguessr-go/internal/services/game"
	"github.com/famousguessr/famousguessr-go/internal/services/premium"
	"github.com/famousguessr/famousguessr-go/internal/services/user"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	CelebrityService *celebrity.Service
	GameService      *game.Service
	PremiumService   *premium.Service
	UserService      *user.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	celebrityHandler := handler.NewCelebrityHandler(cfg.CelebrityService)
	gameHandler := handler.NewGameHandler(cfg.GameService)
	premiumHandler := handler.NewPremiumHandler(cfg.PremiumService)
	userHandler := handler.NewUserHandler(cfg.UserService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", authHandler.UpdateProfile).Methods(http.MethodPut)

	// Celebrity reads are public. The fixed paths must register before the
	// {id} route so "nearby" is not matched as an id.
	api.HandleFunc("/celebrities", celebrityHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/celebrities/nearby", celebrityHandler.Nearby).Methods(http.MethodGet)
	api.HandleFunc("/celebrities/province/{province}", celebrityHandler.ByProvince).Methods(http.MethodGet)
	api.HandleFunc("/celebrities/{id}", celebrityHandler.Get).Methods(http.MethodGet)

	// Celebrity writes require an admin
	celebrityAdmin := api.PathPrefix("/celebrities").Subrouter()
	celebrityAdmin.Use(authMiddleware, apimiddleware.RequireAdmin)
	celebrityAdmin.HandleFunc("", celebrityHandler.Create).Methods(http.MethodPost)
	celebrityAdmin.HandleFunc("/{id}", celebrityHandler.Update).Methods(http.MethodPut)
	celebrityAdmin.HandleFunc("/{id}", celebrityHandler.Delete).Methods(http.MethodDelete)

	// Game routes; the leaderboard is public
	api.HandleFunc("/games/leaderboard", gameHandler.Leaderboard).Methods(http.MethodGet)

	gameProtected := api.PathPrefix("/games").Subrouter()
	gameProtected.Use(authMiddleware)
	gameProtected.HandleFunc("/score", gameHandler.SubmitScore).Methods(http.MethodPost)
	gameProtected.HandleFunc("/my-scores", gameHandler.MyScores).Methods(http.MethodGet)
	gameProtected.HandleFunc("/stats", gameHandler.Stats).Methods(http.MethodGet)

	// Premium request routes
	premiumProtected := api.PathPrefix("/premium").Subrouter()
	premiumProtected.Use(authMiddleware)
	premiumProtected.HandleFunc("/request", premiumHandler.Request).Methods(http.MethodPost)
	premiumProtected.HandleFunc("/my-requests", premiumHandler.MyRequests).Methods(http.MethodGet)

	premiumAdmin := api.PathPrefix("/premium/requests").Subrouter()
	premiumAdmin.Use(authMiddleware, apimiddleware.RequireAdmin)
	premiumAdmin.HandleFunc("", premiumHandler.List).Methods(http.MethodGet)
	premiumAdmin.HandleFunc("/{id}", premiumHandler.Process).Methods(http.MethodPut)
	premiumAdmin.HandleFunc("/{id}", premiumHandler.Delete).Methods(http.MethodDelete)

	// Admin user management
	users := api.PathPrefix("/users").Subrouter()
	users.Use(authMiddleware, apimiddleware.RequireAdmin)
	users.HandleFunc("", userHandler.List).Methods(http.MethodGet)
	users.HandleFunc("/{id}", userHandler.Get).Methods(http.MethodGet)
	users.HandleFunc("/{id}/role", userHandler.UpdateRole).Methods(http.MethodPut)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
