// Package models defines the persisted data model of the anime gallery:
// user accounts, anime entries with their tagged format details, and the
// top-level database aggregate.
package models

// Role describes the permission level of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account is one registered login identity. The JSON field is named
// "password" for compatibility with the persisted layout, but it always
// holds a bcrypt hash, never the plaintext password.
type Account struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Role         Role   `json:"role"`
}

// Database is the top-level persisted aggregate: every account plus a
// mapping from username to that user's anime list (newest first).
type Database struct {
	Users     []Account          `json:"users"`
	AnimeData map[string][]Anime `json:"animeData"`
}
