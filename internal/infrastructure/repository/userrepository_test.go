package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/deskhub/internal/domain/user"
	vo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

func createUser(t *testing.T, repo *UserRepository, email, name string, role authorization.UserRole) *user.User {
	t.Helper()
	addr, err := vo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser(addr, name, role, "hash")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository_CRUD(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	u := createUser(t, repo, "jane@example.com", "Jane Doe", authorization.RoleEmployee)

	byEmail, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID(), byEmail.ID())
	assert.True(t, byEmail.ReceiveNotifications())

	require.NoError(t, u.UpdateEmployment("Jane Smith", "Analyst", "Finance"))
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", found.FullName())
	assert.Equal(t, "Finance", found.Department())

	exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	none, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewNop())
	createUser(t, repo, "jane@example.com", "Jane Doe", authorization.RoleEmployee)

	addr, err := vo.NewEmail("jane@example.com")
	require.NoError(t, err)
	dup, err := user.NewUser(addr, "Other Jane", authorization.RoleEmployee, "hash")
	require.NoError(t, err)

	err = repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestUserRepository_QueriesAndCounts(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	emp := createUser(t, repo, "emp@example.com", "Eve Employee", authorization.RoleEmployee)
	tech := createUser(t, repo, "tech@example.com", "Tom Tech", authorization.RoleITStaff)
	boss := createUser(t, repo, "boss@example.com", "Ada Admin", authorization.RoleAdmin)
	gone := createUser(t, repo, "gone@example.com", "Gus Gone", authorization.RoleITStaff)
	require.NoError(t, gone.SetActive(false, boss.ID()))
	require.NoError(t, repo.Update(ctx, gone))

	names, err := repo.GetNames(ctx, []uint{emp.ID(), tech.ID(), 999})
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{emp.ID(): "Eve Employee", tech.ID(): "Tom Tech"}, names)

	staff, err := repo.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "Ada Admin", staff[0].FullName())
	assert.Equal(t, "Tom Tech", staff[1].FullName())

	role := authorization.RoleITStaff
	users, total, err := repo.List(ctx, user.ListFilter{Role: &role, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	_, total, err = repo.List(ctx, user.ListFilter{Search: "ADA"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	byRole, err := repo.CountByRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byRole[authorization.RoleEmployee])
	assert.Equal(t, int64(2), byRole[authorization.RoleITStaff])
	assert.Equal(t, int64(1), byRole[authorization.RoleAdmin])
}
