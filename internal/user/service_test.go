// AngelaMos | 2026
// service_test.go

package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/taskvault/internal/core"
	"github.com/angelamos/taskvault/internal/store"
	"github.com/angelamos/taskvault/internal/user"
)

func newService(t *testing.T) *user.Service {
	t.Helper()
	return user.NewService(store.NewMemory(10))
}

func TestRegister(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, user.RegisterRequest{
		Name:     "Ana",
		Username: "ana",
	})
	require.NoError(t, err)

	require.True(t, core.IsValidID(u.ID))
	require.Equal(t, "Ana", u.Name)
	require.Equal(t, "ana", u.Username)
	require.False(t, u.Pro)
	require.Empty(t, u.Todos)
	require.False(t, u.CreatedAt.IsZero())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, user.RegisterRequest{
		Name:     "Ana",
		Username: "ana",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, user.RegisterRequest{
		Name:     "Other Ana",
		Username: "ana",
	})
	require.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestGetByID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, user.RegisterRequest{
		Name:     "Ana",
		Username: "ana",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = svc.GetByID(ctx, core.NewID())
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpgradeToPro(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, user.RegisterRequest{
		Name:     "Ana",
		Username: "ana",
	})
	require.NoError(t, err)

	upgraded, err := svc.UpgradeToPro(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, upgraded.Pro)

	_, err = svc.UpgradeToPro(ctx, created.ID)
	require.ErrorIs(t, err, core.ErrAlreadyPro)
}
