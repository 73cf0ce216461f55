package auth

// User represents a registered user. The identity key is the username; the
// stored password is a bcrypt hash and never leaves the server.
type User struct {
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Password  string  `json:"-"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
