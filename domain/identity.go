package domain

import "time"

// Identity represents a registered account. PasswordHash is never serialized
// and never leaves the service boundary.
type Identity struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicIdentity is the projection of an Identity returned to callers.
type PublicIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public strips the credential material from an identity.
func (i *Identity) Public() PublicIdentity {
	if i == nil {
		return PublicIdentity{}
	}
	return PublicIdentity{
		ID:       i.ID,
		Username: i.Username,
		Email:    i.Email,
	}
}

func (i *Identity) Touch() {
	if i == nil {
		return
	}
	i.UpdatedAt = time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = i.UpdatedAt
	}
}
