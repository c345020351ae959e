// Package entity defines the core business entities for the domain layer.
package entity

// User is the single local account. The tracker is single-user by design;
// signup overwrites whatever account existed before. PasswordHash is a bcrypt
// hash; the plaintext never persists.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}
