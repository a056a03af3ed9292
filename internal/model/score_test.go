package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAccuracy(t *testing.T) {
	assert.Equal(t, 80.0, ComputeAccuracy(8, 10))
	assert.Equal(t, 100.0, ComputeAccuracy(10, 10))
	assert.Equal(t, 0.0, ComputeAccuracy(0, 10))
}

func TestComputeAccuracyZeroQuestions(t *testing.T) {
	assert.Equal(t, 0.0, ComputeAccuracy(0, 0))
}

func TestParseDifficulty(t *testing.T) {
	for _, raw := range []string{"normal", "hard", "duo"} {
		d, err := ParseDifficulty(raw)
		assert.NoError(t, err)
		assert.Equal(t, Difficulty(raw), d)
	}

	_, err := ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"player", "premium-player", "admin"} {
		r, err := ParseRole(raw)
		assert.NoError(t, err)
		assert.Equal(t, Role(raw), r)
	}

	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRolePredicates(t *testing.T) {
	assert.False(t, RolePlayer.IsAdmin())
	assert.False(t, RolePremiumPlayer.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())

	assert.False(t, RolePlayer.HasPremiumAccess())
	assert.True(t, RolePremiumPlayer.HasPremiumAccess())
	assert.True(t, RoleAdmin.HasPremiumAccess())
}
