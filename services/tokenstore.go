package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ResetTokenTTL bounds how long a password-reset token can be redeemed.
const ResetTokenTTL = time.Hour

var errResetTokenInvalid = errors.New("reset token invalid or expired")

// TokenStore keeps the sign-out deny-list and one-time reset tokens in Redis.
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

func revokedKey(jti string) string { return "revoked:" + jti }

func resetKey(token string) string { return "pwreset:" + token }

// Revoke denies jti until exp; the key disappears once the token would have
// expired anyway.
func (s *TokenStore) Revoke(ctx context.Context, jti string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedKey(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

// IssueReset creates a one-time password-reset token for userID.
func (s *TokenStore) IssueReset(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, resetKey(token), userID, ResetTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// ConsumeReset redeems a reset token and returns the user it was issued to.
// A token can only be redeemed once.
func (s *TokenStore) ConsumeReset(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.GetDel(ctx, resetKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", errResetTokenInvalid
	}
	if err != nil {
		return "", fmt.Errorf("redeem reset token: %w", err)
	}
	return userID, nil
}
