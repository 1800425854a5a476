package data

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventAdmin/internal/models"
	"eventAdmin/internal/storage"
)

// CreateSession signs a short-lived admin token and records it under the
// admin_session key. Only the most recent session is kept.
func (s *Service) CreateSession(user, secret string, ttl time.Duration) (models.Session, error) {
	const op = "data.CreateSession"

	now := s.clock.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   user,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	sess := models.Session{
		Token:     signed,
		User:      user,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err = s.writeJSON(storage.KeyAdminSession, sess); err != nil {
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	return sess, nil
}
