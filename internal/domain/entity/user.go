package entity

// User é o usuário autenticado retornado pelo endpoint de login.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session pairs the opaque bearer token with its owner. The invariant is
// both-or-nothing: a persisted session never holds a user without a token.
type Session struct {
	Token string `json:"auth_token"`
	User  *User  `json:"current_user,omitempty"`
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
