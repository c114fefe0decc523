package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	stderrors "errors"
	"time"

	"farmpro/errors"

	"github.com/redis/go-redis/v9"
)

// Passwordless sign-in tokens are single use and expire on their own; Redis
// TTL is the only cleanup needed.
const loginTokenTTL = 10 * time.Minute

const loginTokenPrefix = "signin_token:"

func generateLoginToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IssueLoginToken stores a fresh single-use token for email and returns it.
func IssueLoginToken(ctx context.Context, rdb *redis.Client, email string) (string, error) {
	token, err := generateLoginToken()
	if err != nil {
		return "", errors.Internal("Failed to generate sign-in token", err)
	}

	if err := rdb.Set(ctx, loginTokenPrefix+token, email, loginTokenTTL).Err(); err != nil {
		return "", errors.Internal("Failed to store sign-in token", err)
	}
	return token, nil
}

// ConsumeLoginToken redeems a token exactly once and returns the email it
// was issued for.
func ConsumeLoginToken(ctx context.Context, rdb *redis.Client, token string) (string, error) {
	email, err := rdb.GetDel(ctx, loginTokenPrefix+token).Result()
	if stderrors.Is(err, redis.Nil) {
		return "", errors.Unauthorized("Sign-in link is invalid or has expired", nil)
	}
	if err != nil {
		return "", errors.Internal("Failed to verify sign-in token", err)
	}
	return email, nil
}
