package factory

import (
	"errors"

	"github.com/famousguessr/famousguessr-go/internal/dependencies/clock"
	"github.com/famousguessr/famousguessr-go/internal/services/auth"
	"github.com/famousguessr/famousguessr-go/internal/services/celebrity"
	"github.com/famousguessr/famousguessr-go/internal/services/game"
	"github.com/famousguessr/famousguessr-go/internal/services/premium"
	"github.com/famousguessr/famousguessr-go/internal/services/user"
	"github.com/famousguessr/famousguessr-go/internal/storage"
	"github.com/famousguessr/famousguessr-go/internal/storage/memory"
	redisstorage "github.com/famousguessr/famousguessr-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock

	AuthService      *auth.Service
	CelebrityService *celebrity.Service
	GameService      *game.Service
	PremiumService   *premium.Service
	UserService      *user.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	authCfg := cfg.AuthConfig
	if authCfg.TokenTTL == 0 {
		authCfg = auth.Config{JWTSecret: authCfg.JWTSecret, TokenTTL: auth.DefaultConfig().TokenTTL}
	}

	return newWithDependencies(store, clk, authCfg), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config) *App {
	return &App{
		Storage:          store,
		Clock:            clk,
		AuthService:      auth.New(store, clk, authCfg),
		CelebrityService: celebrity.New(store, clk),
		GameService:      game.New(store, clk),
		PremiumService:   premium.New(store, clk),
		UserService:      user.New(store),
	}
}
