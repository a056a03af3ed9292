package factory

import (
	"time"

	"github.com/famousguessr/famousguessr-go/internal/dependencies/mocks"
	"github.com/famousguessr/famousguessr-go/internal/services/auth"
	"github.com/famousguessr/famousguessr-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mock clock for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	authCfg := auth.DefaultConfig()
	authCfg.JWTSecret = "test-secret"

	app := newWithDependencies(store, mockClock, authCfg)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
