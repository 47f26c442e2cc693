package dto

type LoginInput struct {
	Credential string `json:"credential" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type SignupInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required,min=4,alphanum"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// SafeUser is the only shape a user is ever serialized in. The password
// hash never leaves the models package.
type SafeUser struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

type SessionResponse struct {
	User *SafeUser `json:"user"`
}

type LoginResponse struct {
	User  SafeUser `json:"user"`
	Token string   `json:"token"`
}
