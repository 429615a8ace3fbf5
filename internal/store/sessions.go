package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const sessionTTL = 30 * 24 * time.Hour

// CreateSession stores a new session row and returns its token.
func (s *Store) CreateSession(userID string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	expires := time.Now().Add(sessionTTL)

	_, err := s.db.Exec(
		"INSERT INTO sessions (user_id, token, expires_at) VALUES (?, ?, ?)",
		userID, token, expires,
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return token, nil
}

// GetUserBySession resolves a session token to its user. Expired
// sessions are deleted on sight and reported as ErrNotFound.
func (s *Store) GetUserBySession(token string) (*User, error) {
	var userID string
	var expiresAt time.Time
	err := s.db.QueryRow(
		"SELECT user_id, expires_at FROM sessions WHERE token = ?", token,
	).Scan(&userID, &expiresAt)
	if err != nil {
		return nil, ErrNotFound
	}
	if time.Now().After(expiresAt) {
		s.db.Exec("DELETE FROM sessions WHERE token = ?", token)
		return nil, ErrNotFound
	}
	return s.GetUserByID(userID)
}

func (s *Store) DeleteSession(token string) {
	s.db.Exec("DELETE FROM sessions WHERE token = ?", token)
}
