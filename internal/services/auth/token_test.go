package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famousguessr/famousguessr-go/internal/dependencies/mocks"
	"github.com/famousguessr/famousguessr-go/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:       model.UserID("user-1"),
		Username: "alice",
		Role:     model.RolePlayer,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	maker := NewTokenMaker("secret", time.Hour, clk)

	token, err := maker.Generate(testUser())
	require.NoError(t, err)

	claims, err := maker.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "player", claims.Role)
}

func TestTokenExpires(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	maker := NewTokenMaker("secret", time.Hour, clk)

	token, err := maker.Generate(testUser())
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)

	_, err = maker.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	maker := NewTokenMaker("secret", time.Hour, clk)
	other := NewTokenMaker("different", time.Hour, clk)

	token, err := maker.Generate(testUser())
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsTampering(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	maker := NewTokenMaker("secret", time.Hour, clk)

	token, err := maker.Generate(testUser())
	require.NoError(t, err)

	_, err = maker.Parse(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
