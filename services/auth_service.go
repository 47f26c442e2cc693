package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"github.com/kenandcrys/auth-me/config"
	"github.com/kenandcrys/auth-me/errors"
	"github.com/kenandcrys/auth-me/models"
)

// UserInfo is the claim payload embedded in every issued token.
type UserInfo struct {
	UserID uint `json:"userId"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
}

// GenerateToken signs an HS256 token carrying the user id.
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// SetTokenCookie delivers the session token as an http cookie alongside
// the JSON body.
func SetTokenCookie(c *gin.Context, accessToken string) {
	c.SetCookie(
		"token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		false,
		true,
	)
}

func ClearTokenCookie(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// normalizeCredential folds email and username to the canonical stored
// form. Signup and login both go through it, so lookups always match the
// stored row regardless of the casing the user typed.
func normalizeCredential(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GetUserByCredential resolves a login credential that may be either an
// email address or a username.
func GetUserByCredential(db *gorm.DB, credential string) (models.User, error) {
	var user models.User
	credential = normalizeCredential(credential)

	result := db.Where("email = ? OR username = ?", credential, credential).First(&user)
	if result.Error != nil {
		if gorm.ErrRecordNotFound == result.Error {
			return user, errors.ErrUserNotFound
		}
		return user, result.Error
	}
	return user, nil
}

// CreateUser persists a new account after uniqueness checks. Email and
// username are stored in their normalized form.
func CreateUser(db *gorm.DB, user models.User) (models.User, error) {
	user.Email = normalizeCredential(user.Email)
	user.Username = normalizeCredential(user.Username)

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists, "User with that email already exists", errors.ErrUserAlreadyExists)
	}
	if err := db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists, "User with that username already exists", errors.ErrUserAlreadyExists)
	}

	if err := db.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "failed to create user", err)
	}
	return user, nil
}

// VerifyGoogleIDToken validates a Google-issued ID token against our
// client id and returns its payload.
func VerifyGoogleIDToken(ctx context.Context, tokenID string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, tokenID, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid Google ID token", err)
	}
	return payload, nil
}

// FindOrCreateGoogleUser maps a verified Google payload onto a local
// account, creating one with an unusable random password when absent.
func FindOrCreateGoogleUser(db *gorm.DB, email, givenName, familyName string) (models.User, error) {
	email = normalizeCredential(email)

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		return user, nil
	}

	hashed, err := HashPassword(fmt.Sprintf("google-%d", time.Now().UnixNano()))
	if err != nil {
		return models.User{}, err
	}

	user = models.User{
		FirstName:      givenName,
		LastName:       familyName,
		Username:       strings.Split(email, "@")[0] + fmt.Sprintf("%d", time.Now().Unix()%100000),
		Email:          email,
		HashedPassword: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "failed to create user", err)
	}
	return user, nil
}
