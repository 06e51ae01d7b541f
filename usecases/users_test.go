package usecases

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipe-server/db"
	"recipe-server/entities"
	"recipe-server/repositories"
)

func newTestDB(t *testing.T) db.Database {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(
		&entities.User{},
		&entities.Tag{},
		&entities.Recipe{},
		&entities.AuthToken{},
	))

	return &db.GormDatabase{DB: gormDB}
}

func newUserUseCase(database db.Database) *UserUseCase {
	return NewUserUseCase(
		repositories.NewUserPgRepository(database),
		repositories.NewAuthTokenPgRepository(database),
	)
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.COM", "test4@example.com"},
	}

	uc := newUserUseCase(newTestDB(t))
	for _, tt := range tests {
		user, err := uc.CreateUser(tt.input, "testpass123", "")
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, user.Email)
	}
}

func TestCreateUserRequiresEmail(t *testing.T) {
	uc := newUserUseCase(newTestDB(t))

	_, err := uc.CreateUser("", "testpass123", "")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestCreateUserHashesPassword(t *testing.T) {
	uc := newUserUseCase(newTestDB(t))

	user, err := uc.CreateUser("user@example.com", "testpass123", "Test User")
	require.NoError(t, err)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "testpass123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("testpass123")))
	assert.True(t, user.IsActive)
}

func TestCreateUserWithoutPassword(t *testing.T) {
	uc := newUserUseCase(newTestDB(t))

	user, err := uc.CreateUser("user@example.com", "", "")
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	// an account without a usable password can never authenticate
	_, err = uc.Authenticate("user@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	uc := newUserUseCase(newTestDB(t))

	_, err := uc.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	_, err = uc.CreateUser("user@example.com", "otherpass123", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateSuperuser(t *testing.T) {
	uc := newUserUseCase(newTestDB(t))

	user, err := uc.CreateSuperuser("admin@example.com", "testpass123")
	require.NoError(t, err)

	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)

	stored, err := uc.GetUser(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsStaff)
	assert.True(t, stored.IsSuperuser)
}

func TestAuthenticate(t *testing.T) {
	uc := newUserUseCase(newTestDB(t))

	created, err := uc.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	user, err := uc.Authenticate("user@example.com", "testpass123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// domain case does not matter, the stored email is normalized
	user, err = uc.Authenticate("user@EXAMPLE.COM", "testpass123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthenticateFailures(t *testing.T) {
	uc := newUserUseCase(newTestDB(t))

	user, err := uc.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	_, err = uc.Authenticate("user@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Authenticate("nobody@example.com", "testpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user.IsActive = false
	require.NoError(t, uc.UserRepo.Update(user))

	_, err = uc.Authenticate("user@example.com", "testpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateUserProfile(t *testing.T) {
	uc := newUserUseCase(newTestDB(t))

	user, err := uc.CreateUser("user@example.com", "testpass123", "Old Name")
	require.NoError(t, err)

	newName := "New Name"
	updated, err := uc.UpdateUser(user.ID, UserUpdate{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "user@example.com", updated.Email)
}

func TestSetPassword(t *testing.T) {
	uc := newUserUseCase(newTestDB(t))

	user, err := uc.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	require.NoError(t, uc.SetPassword(user, "freshpass456"))

	_, err = uc.Authenticate("user@example.com", "testpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Authenticate("user@example.com", "freshpass456")
	assert.NoError(t, err)
}

func TestUpdateUserRejectedPasswordLeavesProfileUntouched(t *testing.T) {
	database := newTestDB(t)
	uc := newUserUseCase(database)
	tokens := NewTokenUseCase(uc, repositories.NewAuthTokenPgRepository(database))

	user, err := uc.CreateUser("user@example.com", "testpass123", "Old Name")
	require.NoError(t, err)

	key, err := tokens.IssueToken("user@example.com", "testpass123")
	require.NoError(t, err)

	// bcrypt rejects passwords over 72 bytes; the update must fail as
	// a whole, not persist the name and then error
	newName := "Changed"
	longPassword := strings.Repeat("b", 100)
	_, err = uc.UpdateUser(user.ID, UserUpdate{Name: &newName, Password: &longPassword})
	require.Error(t, err)

	stored, err := uc.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Old Name", stored.Name)

	_, err = uc.Authenticate("user@example.com", "testpass123")
	assert.NoError(t, err)

	_, err = tokens.ResolveToken(key)
	assert.NoError(t, err)
}

func TestUpdateUserPasswordRevokesToken(t *testing.T) {
	database := newTestDB(t)
	uc := newUserUseCase(database)
	tokens := NewTokenUseCase(uc, repositories.NewAuthTokenPgRepository(database))

	user, err := uc.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	key, err := tokens.IssueToken("user@example.com", "testpass123")
	require.NoError(t, err)

	newPassword := "freshpass456"
	_, err = uc.UpdateUser(user.ID, UserUpdate{Password: &newPassword})
	require.NoError(t, err)

	_, err = tokens.ResolveToken(key)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = uc.Authenticate("user@example.com", "testpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Authenticate("user@example.com", "freshpass456")
	assert.NoError(t, err)
}
