package database

import (
	"context"
	"errors"
	"testing"

	"github.com/sangkips/marketplace-api/internal/config"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		in          string
		first, last string
	}{
		{"", "Platform", "Admin"},
		{"Wanjiku", "Wanjiku", ""},
		{"Wanjiku Kamau", "Wanjiku", "Kamau"},
		{"  Ada  Lovelace King ", "Ada", "Lovelace King"},
	}
	for _, c := range cases {
		first, last := splitName(c.in)
		assert.Equal(t, c.first, first, c.in)
		assert.Equal(t, c.last, last, c.in)
	}
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	cfg := config.AdminConfig{Email: "admin@example.com", Password: "s3cret!", Name: "Ada Lovelace"}

	t.Run("creates missing admin", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		users.On("GetByEmail", mock.Anything, cfg.Email).Return(nil, nil)

		var created *entity.User
		users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*entity.User) }).
			Return(nil)

		require.NoError(t, SeedAdmin(ctx, users, cfg))
		require.NotNil(t, created)
		assert.Equal(t, enum.UserRoleAdmin, created.Role)
		assert.Equal(t, "Ada", created.FirstName)
		assert.True(t, created.IsActive)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(cfg.Password)))
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		users.On("GetByEmail", mock.Anything, cfg.Email).Return(&entity.User{Email: cfg.Email}, nil)

		require.NoError(t, SeedAdmin(ctx, users, cfg))
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("not configured", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		require.NoError(t, SeedAdmin(ctx, users, config.AdminConfig{}))
	})

	t.Run("lookup failure", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		users.On("GetByEmail", mock.Anything, cfg.Email).Return(nil, errors.New("db down"))
		assert.Error(t, SeedAdmin(ctx, users, cfg))
	})
}
