package services

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenandcrys/auth-me/models"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserID: 42}, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestGetUserIDFromTokenRejectsTampering(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserID: 42}, 60)
	require.NoError(t, err)

	// Flip the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA"

	_, err = GetUserIDFromToken(tampered)
	assert.Error(t, err)
}

func TestGetUserIDFromTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	token, err := GenerateToken(UserInfo{UserID: 42}, 60)
	require.NoError(t, err)

	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "other-secret")
	_, err = GetUserIDFromToken(token)
	assert.Error(t, err)
}

func TestGetUserIDFromTokenGarbage(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	_, err := GetUserIDFromToken("not.a.token")
	assert.Error(t, err)
}

func TestNormalizeCredential(t *testing.T) {
	assert.Equal(t, "demo@user.io", normalizeCredential(" Demo@User.io "))
	assert.Equal(t, "demouser", normalizeCredential("DemoUser"))
	assert.Equal(t, "", normalizeCredential("   "))
}

func TestCreateUserStoresNormalizedCredentials(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("demo@user.io", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE username = \$1`).
		WithArgs("demouser", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user, err := CreateUser(db, models.User{
		FirstName:      "Demo",
		LastName:       "User",
		Username:       "DemoUser",
		Email:          "Demo@User.io",
		HashedPassword: "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "demo@user.io", user.Email)
	assert.Equal(t, "demouser", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A mixed-case signup must remain reachable by a mixed-case login.
func TestGetUserByCredentialMixedCase(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE .*email = \$1 OR username = \$2`).
		WithArgs("demo@user.io", "demo@user.io", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username"}).
			AddRow(4, "demo@user.io", "demouser"))

	user, err := GetUserByCredential(db, " Demo@User.io ")
	require.NoError(t, err)
	assert.Equal(t, uint(4), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, CheckPassword(hash, "password123"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
}
