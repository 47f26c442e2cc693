package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/kenandcrys/auth-me/config"
	"github.com/kenandcrys/auth-me/dto"
	apperrors "github.com/kenandcrys/auth-me/errors"
	"github.com/kenandcrys/auth-me/middleware"
	"github.com/kenandcrys/auth-me/models"
	"github.com/kenandcrys/auth-me/response"
	"github.com/kenandcrys/auth-me/services"
	"github.com/kenandcrys/auth-me/validator"
)

func safeUser(user models.User) dto.SafeUser {
	return dto.SafeUser{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
	}
}

func issueSession(c *gin.Context, user models.User) (string, error) {
	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID}, 60*24*3)
	if err != nil {
		return "", err
	}
	services.SetTokenCookie(c, token)
	return token, nil
}

// Login authenticates with an email-or-username credential.
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, map[string]string{
			"credential": "Email or username is required",
			"password":   "Password is required",
		})
		return
	}

	user, err := services.GetUserByCredential(config.DB, input.Credential)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := services.CheckPassword(user.HashedPassword, input.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := issueSession(c, user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{User: safeUser(user), Token: token})
}

// Logout clears the session cookie.
func Logout(c *gin.Context) {
	services.ClearTokenCookie(c)
	response.Success(c, gin.H{"message": "Logout successful"})
}

// GetSession restores the current user, returning null for anonymous
// requests rather than failing.
func GetSession(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		response.Success(c, dto.SessionResponse{User: nil})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.Success(c, dto.SessionResponse{User: nil})
		return
	}

	u := safeUser(user)
	response.Success(c, dto.SessionResponse{User: &u})
}

// RegisterUser signs up a new account and logs it in.
func RegisterUser(c *gin.Context) {
	var input dto.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Bad Request")
		return
	}

	if err := validator.ValidateSignup(input.Email, input.Username, input.Password); err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	hashed, err := services.HashPassword(input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	user, err := services.CreateUser(config.DB, models.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: hashed,
	})
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Code == apperrors.ErrCodeUserExists {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	if _, err := issueSession(c, user); err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, safeUser(user))
}

// AuthGoogle signs in with a verified Google ID token, creating the local
// account on first sight.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "idToken is required")
		return
	}

	payload, err := services.VerifyGoogleIDToken(c.Request.Context(), input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}

	user, err := services.FindOrCreateGoogleUser(config.DB, email, givenName, familyName)
	if err != nil {
		response.ServerError(c)
		return
	}

	token, err := issueSession(c, user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{User: safeUser(user), Token: token})
}
