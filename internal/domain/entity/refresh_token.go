package entity

import "time"

// RefreshToken token de renovación persistido por usuario. Se revoca en lugar
// de borrarse para conservar auditoría.
type RefreshToken struct {
	ID        int64
	Token     string
	UserID    int64
	Revoked   bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reporta si el token ya venció respecto a now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
