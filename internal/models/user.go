package models

// User is the profile returned alongside a token by login and register.
type User struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
}
