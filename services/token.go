package services

import (
	"time"

	"farmpro/config"
	"farmpro/dto"
	"farmpro/errors"
	"farmpro/models"

	"github.com/dgrijalva/jwt-go"
	"gorm.io/gorm"
)

// Sessions are stateless; the signed token is the only session artifact.
const sessionTTL = 30 * 24 * time.Hour

// SessionClaims carries the identity snapshot between requests: a stable
// user_id plus denormalized profile fields copied from the user row.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	GoogleID string `json:"googleId,omitempty"`
	Image    string `json:"image,omitempty"`
	jwt.StandardClaims
}

func sessionSecret() []byte {
	return []byte(config.GetEnv("AUTH_SECRET"))
}

// SessionUserOf builds the externally visible session object for a user.
func SessionUserOf(user *models.User) dto.SessionUser {
	return dto.SessionUser{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		GoogleID: user.GoogleID,
		Image:    user.Image,
	}
}

func GenerateSessionToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		GoogleID: user.GoogleID,
		Image:    user.Image,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(sessionTTL).Unix(),
			IssuedAt:  now.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid or expired session token", err)
	}
	return claims, nil
}

// RefreshSession re-reads the user row and re-embeds the denormalized
// profile fields before re-signing. The snapshot is refreshed on every
// call, so name/email/avatar changes since issuance are picked up.
func RefreshSession(db *gorm.DB, userID string) (*dto.SessionResponse, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("User not found")
		}
		return nil, errors.Internal("Failed to load user", err)
	}

	token, err := GenerateSessionToken(&user)
	if err != nil {
		return nil, errors.Internal("Failed to sign session token", err)
	}

	return &dto.SessionResponse{
		User:        SessionUserOf(&user),
		AccessToken: token,
	}, nil
}
