// Data transfer objects for the auth endpoints.
package auth

// RegisterRequest is the registration payload. The validate tags reference
// the custom rules registered in validate.go.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,username_format" example:"newUser01"`
	Name      string `json:"name" validate:"required,display_name" example:"Display Name"`
	Password  string `json:"password" validate:"required,password_format" example:"hunter22"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// SignInRequest is the sign-in payload.
type SignInRequest struct {
	Username string `json:"username" validate:"required" example:"newUser01"`
	Password string `json:"password" validate:"required" example:"hunter22"`
}

// TokenRequest carries a credential in the request body. This API transports
// tokens as the JSON body field "token", not as a header.
type TokenRequest struct {
	Token string `json:"token"`
}

// TokenEnvelope wraps a token pair for responses shaped {"token": {...}}.
type TokenEnvelope struct {
	Token *TokenPair `json:"token"`
}

// UserEnvelope wraps a user for responses shaped {"user": {...}}.
type UserEnvelope struct {
	User *User `json:"user"`
}

// SignInResponse is returned on successful sign-in.
type SignInResponse struct {
	User  *User      `json:"user"`
	Token *TokenPair `json:"token"`
}
