package mysql

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/qa_service/models/entities"
	"github.com/Xushengqwer/qa_service/models/enums"
)

func newTestUser(id string, role enums.UserRole) *entities.User {
	return &entities.User{
		ID:       id,
		Username: "user-" + id,
		Email:    id + "@example.com",
		Password: "hash",
		Role:     role,
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	user := newTestUser("u-1", enums.RoleUser)
	require.NoError(t, repo.CreateUser(ctx, user))

	got, err := repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "user-u-1", got.Username)
	assert.Equal(t, enums.RoleUser, got.Role)
	assert.False(t, got.Banned)

	// ID 为空时自动生成 UUID
	auto := &entities.User{Username: "auto", Email: "auto@example.com", Password: "hash"}
	require.NoError(t, repo.CreateUser(ctx, auto))
	assert.Len(t, auto.ID, 36)

	_, err = repo.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestUserRepository_ListNonAdminUserIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, newTestUser("u-1", enums.RoleUser)))
	require.NoError(t, repo.CreateUser(ctx, newTestUser("u-2", enums.RoleAdmin)))
	require.NoError(t, repo.CreateUser(ctx, newTestUser("u-3", enums.RoleUser)))

	ids, err := repo.ListNonAdminUserIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u-1", "u-3"}, ids)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUserRepository_SetBanned(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, newTestUser("u-1", enums.RoleUser)))

	require.NoError(t, repo.SetBanned(ctx, "u-1", true))
	got, err := repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, got.Banned)

	require.NoError(t, repo.SetBanned(ctx, "u-1", false))
	got, err = repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.False(t, got.Banned)

	assert.ErrorIs(t, repo.SetBanned(ctx, "missing", true), commonerrors.ErrRepoNotFound)
}

func TestUserRepository_AddReputation(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, newTestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, newTestUser("u-1", enums.RoleUser)))

	require.NoError(t, repo.AddReputation(ctx, "u-1", 15))
	require.NoError(t, repo.AddReputation(ctx, "u-1", -5))

	got, err := repo.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.EqualValues(t, 10, got.Reputation)

	assert.ErrorIs(t, repo.AddReputation(ctx, "missing", 1), commonerrors.ErrRepoNotFound)
}
