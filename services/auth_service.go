package services

import (
	"context"
	stderrors "errors"

	"farmpro/config"
	"farmpro/errors"
	"farmpro/models"
	"farmpro/services/logger"

	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const googleProvider = "google"

// GoogleProfile is the subset of the verified ID-token payload the sign-in
// flow cares about.
type GoogleProfile struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
	IDToken       string
}

type AuthService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		DB:  db,
		Log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// SignInWithGoogle verifies the ID token against our client id and resolves
// it to a local user, linking or creating as needed.
func (s *AuthService) SignInWithGoogle(ctx context.Context, tokenID string) (*models.User, error) {
	payload, err := idtoken.Validate(ctx, tokenID, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, errors.Unauthorized("Failed to verify Google token", err)
	}

	verified, _ := payload.Claims["email_verified"].(bool)
	profile := GoogleProfile{
		Subject:       payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		EmailVerified: verified,
		Name:          claimString(payload.Claims, "name"),
		Picture:       claimString(payload.Claims, "picture"),
		IDToken:       tokenID,
	}

	if !profile.EmailVerified {
		return nil, errors.Validation("Email has not been verified")
	}

	return s.LinkGoogleUser(profile)
}

// LinkGoogleUser implements the federated sign-in callback. An existing user
// found by email and not yet linked gets the provider's subject id, display
// name and avatar plus a linking row; a missing user is created. Re-running
// with the same identifiers changes nothing, and the flow never rejects a
// verified profile.
func (s *AuthService) LinkGoogleUser(profile GoogleProfile) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", profile.Email).First(&user).Error

	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Name:     profile.Name,
			Email:    profile.Email,
			Image:    profile.Picture,
			GoogleID: profile.Subject,
		}
		if err := s.DB.Create(&user).Error; err != nil {
			s.Log.Error("Error creating Google user: %v", err)
			return nil, errors.Internal("Failed to create user", err)
		}

	case err != nil:
		s.Log.Error("Error looking up user by email: %v", err)
		return nil, errors.Internal("Failed to look up user", err)

	case user.GoogleID == "":
		updates := map[string]interface{}{
			"google_id": profile.Subject,
			"name":      profile.Name,
			"image":     profile.Picture,
		}
		if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
			s.Log.Error("Error linking Google account: %v", err)
			return nil, errors.Internal("Failed to link Google account", err)
		}
		user.GoogleID = profile.Subject
		user.Name = profile.Name
		user.Image = profile.Picture
	}

	account := models.Account{
		UserID:            user.ID,
		Type:              "oauth",
		Provider:          googleProvider,
		ProviderAccountID: profile.Subject,
		IDToken:           profile.IDToken,
	}
	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider"}, {Name: "provider_account_id"}},
		DoNothing: true,
	}).Create(&account).Error; err != nil {
		s.Log.Error("Error upserting account link: %v", err)
		return nil, errors.Internal("Failed to link account", err)
	}

	return &user, nil
}

// FindOrCreateByEmail resolves a passwordless sign-in to a user row.
func (s *AuthService) FindOrCreateByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Email: email}
		if err := s.DB.Create(&user).Error; err != nil {
			s.Log.Error("Error creating user for %s: %v", email, err)
			return nil, errors.Internal("Failed to create user", err)
		}
		return &user, nil
	}
	if err != nil {
		s.Log.Error("Error looking up user by email: %v", err)
		return nil, errors.Internal("Failed to look up user", err)
	}
	return &user, nil
}
