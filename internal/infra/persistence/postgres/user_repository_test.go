package postgres

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerRole() entity.Role {
	return entity.Role{ID: entity.RoleCustomer, Name: entity.RoleCustomer.Name()}
}

func createUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "hash", Roles: entity.Roles{customerRole()}}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := createUser(t, repo, "alice@shop.test")
	assert.Positive(t, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@shop.test", byID.Email)
	assert.Equal(t, "hash", byID.PasswordHash)
	assert.Equal(t, entity.Roles{customerRole()}, byID.Roles)

	byEmail, err := repo.FindByEmail(ctx, "alice@shop.test")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@shop.test")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = repo.FindByID(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDoesNotTouchRoles(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &entity.User{
		Email:        "bob@shop.test",
		PasswordHash: "hash",
		Roles:        entity.Roles{{ID: entity.RoleCustomer, Name: "Renamed"}},
	}
	require.NoError(t, repo.Create(context.Background(), user))

	role, err := NewRoleRepository(db).FindByID(context.Background(), entity.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, "Customer", role.Name)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "dup@shop.test")

	err := repo.Create(context.Background(), &entity.User{Email: "dup@shop.test", PasswordHash: "other"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	alice := createUser(t, repo, "alice@shop.test")
	createUser(t, repo, "taken@shop.test")

	alice.Email = "alice2@shop.test"
	alice.PasswordHash = "new-hash"
	require.NoError(t, repo.Update(ctx, alice))

	got, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2@shop.test", got.Email)
	assert.Equal(t, "new-hash", got.PasswordHash)

	alice.Email = "taken@shop.test"
	assert.ErrorIs(t, repo.Update(ctx, alice), repository.ErrDuplicateEmail)

	assert.ErrorIs(t, repo.Update(ctx, &entity.User{ID: 404, Email: "x@shop.test"}), repository.ErrUserNotFound)
}

func TestUserRepository_AssignRoleAndList(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	alice := createUser(t, repo, "alice@shop.test")
	createUser(t, repo, "bob@shop.test")

	require.NoError(t, repo.AssignRole(ctx, alice.ID, entity.RoleMerchant))
	require.NoError(t, repo.AssignRole(ctx, alice.ID, entity.RoleMerchant), "assigning twice is a no-op")

	got, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer", "Merchant"}, got.Roles.Names())

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice@shop.test", users[0].Email)
	assert.Len(t, users[1].Roles, 1)

	assert.ErrorIs(t, repo.AssignRole(ctx, 404, entity.RoleAdmin), repository.ErrUserNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	alice := createUser(t, repo, "alice@shop.test")

	require.NoError(t, repo.Delete(ctx, alice.ID))

	_, err := repo.FindByID(ctx, alice.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, alice.ID), repository.ErrUserNotFound)
}

func TestReferenceData_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	roles := NewRoleRepository(db)
	categories := NewCategoryRepository(db)

	require.NoError(t, roles.Upsert(ctx, entity.DefaultRoles()))
	require.NoError(t, categories.Upsert(ctx, entity.DefaultCategories()))

	allRoles, err := roles.List(ctx)
	require.NoError(t, err)
	assert.Len(t, allRoles, 3)
	assert.Equal(t, "Merchant", allRoles[2].Name)

	allCategories, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, allCategories, 2)

	_, err = roles.FindByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrRoleNotFound)
	_, err = categories.FindByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		createUser(t, factory.NewUserRepository(), "rollback@shop.test")

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = NewUserRepository(db).FindByEmail(ctx, "rollback@shop.test")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		user := createUser(t, factory.NewUserRepository(), "commit@shop.test")

		return factory.NewUserRepository().AssignRole(ctx, user.ID, entity.RoleAdmin)
	})
	require.NoError(t, err)

	got, err := NewUserRepository(db).FindByEmail(ctx, "commit@shop.test")
	require.NoError(t, err)
	assert.True(t, got.HasRole(entity.RoleAdmin))
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
			createUser(t, factory.NewUserRepository(), "panic@shop.test")
			panic("kaboom")
		})
	})

	// The single pooled connection is free again only if the rollback ran.
	_, err := NewUserRepository(db).FindByEmail(ctx, "panic@shop.test")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
