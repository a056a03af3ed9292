package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/famousguessr/famousguessr-go/internal/dependencies/clock"
	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Config holds configuration for the auth service
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenTTL: 24 * time.Hour,
	}
}

// Service handles registration, login and token verification
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	tokens  *TokenMaker
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, cfg Config) *Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultConfig().TokenTTL
	}
	return &Service{
		storage: storage,
		clock:   clock,
		tokens:  NewTokenMaker(cfg.JWTSecret, cfg.TokenTTL, clock),
	}
}

// Register creates a new account and returns it with a signed token.
// The role defaults to player when empty.
func (s *Service) Register(ctx context.Context, username, email, password, role string) (*model.User, string, error) {
	email = NormalizeEmail(email)

	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, "", model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, "", err
	}

	if _, err := s.storage.GetUserByUsername(ctx, username); err == nil {
		return nil, "", model.ErrUsernameTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, "", err
	}

	userRole := model.RolePlayer
	if role != "" {
		parsed, err := model.ParseRole(role)
		if err != nil {
			return nil, "", err
		}
		userRole = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         userRole,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by email and password, records the login time and
// returns the user with a fresh token. Unknown email and wrong password
// produce the same error so callers cannot probe for accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.storage.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	user.LastLogin = s.clock.Now()
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to its user. The user is loaded from
// storage rather than trusted from the claims, so role changes apply
// immediately.
func (s *Service) Authenticate(ctx context.Context, tokenStr string) (*model.User, error) {
	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUser(ctx, model.UserID(claims.Subject))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes a user's own username and/or email. Empty arguments
// leave the field unchanged; uniqueness is re-checked for changed values.
func (s *Service) UpdateProfile(ctx context.Context, userID model.UserID, username, email string) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != "" && username != user.Username {
		if _, err := s.storage.GetUserByUsername(ctx, username); err == nil {
			return nil, model.ErrUsernameTaken
		} else if !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		user.Username = username
	}

	if email != "" {
		email = NormalizeEmail(email)
		if email != user.Email {
			if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
				return nil, model.ErrEmailTaken
			} else if !errors.Is(err, model.ErrUserNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// NormalizeEmail lowercases and trims an email address; emails are stored
// and looked up in this form only.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
