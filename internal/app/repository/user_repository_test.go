package repository

import (
	"testing"

	"github.com/minseokim/coordi-backend/internal/app/model"
	"github.com/minseokim/coordi-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) (*gorm.DB, UserRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewUserRepository(testDB)
	return testDB, repo
}

func TestUserRepository_Create(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{
		Email:        "kim@example.com",
		PasswordHash: "hashed-password",
		Name:         "김민석",
		Role:         model.RoleUser,
	}

	err := repo.Create(user)
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	first := &model.User{Email: "kim@example.com", PasswordHash: "hash", Name: "김민석", Role: model.RoleUser}
	require.NoError(t, repo.Create(first))

	dup := &model.User{Email: "kim@example.com", PasswordHash: "hash2", Name: "다른사람", Role: model.RoleUser}
	assert.Error(t, repo.Create(dup))
}

func TestUserRepository_FindByEmail(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{Email: "kim@example.com", PasswordHash: "hash", Name: "김민석", Role: model.RoleUser}
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByEmail("kim@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{Email: "kim@example.com", PasswordHash: "hash", Name: "김민석", Role: model.RoleUser}
	require.NoError(t, repo.Create(user))

	user.Name = "김민석2"
	require.NoError(t, repo.Update(user))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "김민석2", found.Name)
}

func TestUserRepository_Delete(t *testing.T) {
	testDB, repo := setupUserTest(t)
	defer db.CleanupTestDB(testDB)

	user := &model.User{Email: "kim@example.com", PasswordHash: "hash", Name: "김민석", Role: model.RoleUser}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.Delete(user.ID))

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
