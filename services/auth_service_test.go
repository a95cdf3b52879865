package services

import (
	"testing"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/apperror"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDerivesInitialGoals(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(RegisterRequest{
		Username:      "ravi",
		Email:         "Ravi@Example.com",
		Password:      "secret123",
		Age:           28,
		Gender:        "Male",
		HeightCm:      178,
		WeightKg:      75,
		ActivityLevel: "Moderately Active",
	})
	require.NoError(t, err)

	// Mifflin-St Jeor: 10*75 + 6.25*178 - 5*28 + 5 = 1727.5; TDEE = *1.55
	assert.InDelta(t, 2677.6, user.CalorieGoal, 0.1)
	assert.Greater(t, user.ProteinGoal, 0.0)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.True(t, utils.CheckPasswordHash("secret123", user.Password))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	req := RegisterRequest{
		Username: "ravi", Email: "ravi@example.com", Password: "secret123",
		Age: 28, HeightCm: 178, WeightKg: 75,
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Email: "a@b.c", Password: "secret123", Age: 20, HeightCm: 170, WeightKg: 60}},
		{"short password", RegisterRequest{Username: "a", Email: "a@b.c", Password: "123", Age: 20, HeightCm: 170, WeightKg: 60}},
		{"zero height", RegisterRequest{Username: "a", Email: "a@b.c", Password: "secret123", Age: 20, WeightKg: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.req)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(RegisterRequest{
		Username: "ravi", Email: "ravi@example.com", Password: "secret123",
		Age: 28, HeightCm: 178, WeightKg: 75,
	})
	require.NoError(t, err)

	token, user, err := svc.Login("ravi", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ravi", user.Username)

	// email works as identifier too
	_, _, err = svc.Login("ravi@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login("ravi", "wrong")
	assert.Error(t, err)
}
