package services

import (
	"testing"

	apperrors "farmpro/errors"
	"farmpro/models"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	user := &models.User{
		ID:       "u1",
		Name:     "Ramesh",
		Email:    "ramesh@example.com",
		GoogleID: "google-sub-1",
		Image:    "https://example.com/a.png",
	}

	token, err := GenerateSessionToken(user)
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken() error = %v", err)
	}

	if claims.UserID != "u1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "u1")
	}
	if claims.Email != "ramesh@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "ramesh@example.com")
	}
	if claims.GoogleID != "google-sub-1" {
		t.Errorf("GoogleID = %q, want %q", claims.GoogleID, "google-sub-1")
	}
}

func TestParseSessionTokenRejectsTampering(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	token, err := GenerateSessionToken(&models.User{ID: "u1", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if _, err := ParseSessionToken(token + "x"); err == nil {
		t.Error("ParseSessionToken() accepted a tampered token")
	}

	t.Setenv("AUTH_SECRET", "different-secret")
	if _, err := ParseSessionToken(token); err == nil {
		t.Error("ParseSessionToken() accepted a token signed with another secret")
	}
}

func TestRefreshSessionReEmbedsProfileFields(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	db := newTestDB(t)

	user := models.User{ID: "u1", Name: "Old Name", Email: "ramesh@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// profile changed after the first token was issued
	if err := db.Model(&user).Update("name", "New Name").Error; err != nil {
		t.Fatalf("update user: %v", err)
	}

	session, err := RefreshSession(db, "u1")
	if err != nil {
		t.Fatalf("RefreshSession() error = %v", err)
	}

	if session.User.Name != "New Name" {
		t.Errorf("refreshed Name = %q, want %q", session.User.Name, "New Name")
	}
	if session.User.UserID != "u1" {
		t.Errorf("UserID = %q, want %q", session.User.UserID, "u1")
	}

	claims, err := ParseSessionToken(session.AccessToken)
	if err != nil {
		t.Fatalf("ParseSessionToken() error = %v", err)
	}
	if claims.Name != "New Name" {
		t.Errorf("token Name = %q, want %q", claims.Name, "New Name")
	}
}

func TestRefreshSessionUnknownUser(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	db := newTestDB(t)

	_, err := RefreshSession(db, "missing")
	if apperrors.CodeOf(err) != apperrors.ErrCodeNotFound {
		t.Errorf("RefreshSession(missing): code = %v, want NOT_FOUND", apperrors.CodeOf(err))
	}
}
