package dto

type GoogleAuthInput struct {
	TokenID string `json:"tokenId" binding:"required"`
}

type EmailSignInInput struct {
	Email string `json:"email" binding:"required"`
}

// SessionUser is the identity snapshot exposed to clients: a stable user_id
// plus denormalized profile fields.
type SessionUser struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	GoogleID string `json:"googleId,omitempty"`
	Image    string `json:"image,omitempty"`
}

type SessionResponse struct {
	User        SessionUser `json:"user"`
	AccessToken string      `json:"accessToken"`
}
