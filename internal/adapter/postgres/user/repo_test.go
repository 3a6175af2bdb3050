package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguatrack/backend/internal/adapter/postgres/testhelper"
	"github.com/linguatrack/backend/internal/adapter/postgres/user"
	"github.com/linguatrack/backend/internal/domain"
)

func newRepo(t *testing.T) (*user.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return user.New(pool), pool
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	u := domain.User{
		ID:           uuid.New(),
		Username:     "alice-" + suffix,
		Email:        "alice-" + suffix + "@example.com",
		PasswordHash: "$2a$10$abcdefabcdefabcdefabcdef",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Username, got.Username)
	assert.Equal(t, u.Email, got.Email)
	assert.Nil(t, got.TelegramID)
}

func TestRepo_Create_DuplicateUsername(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	existing := testhelper.SeedUser(t, pool)

	dup := domain.User{
		ID:           uuid.New(),
		Username:     existing.Username,
		Email:        "other-" + uuid.New().String()[:8] + "@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	}
	err := repo.Create(ctx, dup)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_GetByUsername_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "no-such-user-"+uuid.New().String()[:8])
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_LinkTelegram_AndGetByTelegramID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)

	tgID := time.Now().UnixNano()
	tgName := "tg_" + uuid.New().String()[:8]
	require.NoError(t, repo.LinkTelegram(ctx, u.ID, &tgID, &tgName))

	got, err := repo.GetByTelegramID(ctx, tgID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	require.NotNil(t, got.TelegramUsername)
	assert.Equal(t, tgName, *got.TelegramUsername)

	// Unlink.
	require.NoError(t, repo.LinkTelegram(ctx, u.ID, nil, nil))
	_, err = repo.GetByTelegramID(ctx, tgID)
	require.ErrorIs(t, err, domain.ErrNotFound, "after unlink")
}

func TestRepo_LinkTelegram_AlreadyLinkedElsewhere(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	first := testhelper.SeedUser(t, pool)
	second := testhelper.SeedUser(t, pool)

	tgID := time.Now().UnixNano()
	require.NoError(t, repo.LinkTelegram(ctx, first.ID, &tgID, nil))

	err := repo.LinkTelegram(ctx, second.ID, &tgID, nil)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_LinkTelegram_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	tgID := time.Now().UnixNano()
	err := repo.LinkTelegram(ctx, uuid.New(), &tgID, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_ListWithTelegram(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	linked := testhelper.SeedUser(t, pool)
	_ = testhelper.SeedUser(t, pool) // unlinked, must not appear

	tgID := time.Now().UnixNano()
	require.NoError(t, repo.LinkTelegram(ctx, linked.ID, &tgID, nil))

	users, err := repo.ListWithTelegram(ctx)
	require.NoError(t, err)

	found := false
	for _, u := range users {
		if u.ID == linked.ID {
			found = true
		}
		assert.NotNil(t, u.TelegramID, "user %s in linked listing", u.ID)
	}
	assert.True(t, found, "linked user missing from ListWithTelegram")
}
