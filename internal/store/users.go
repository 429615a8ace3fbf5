package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Seed credentials for the bootstrap admin account.
const (
	AdminUsername = "Admin"
	AdminPassword = "123123"
	AdminEmail    = "admin@example.com"
)

func (s *Store) CreateUser(u *User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		"INSERT INTO users (id, email, username, password, role) VALUES (?, ?, ?, ?, ?)",
		u.ID, u.Email, u.Username, u.Password, u.Role,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Store) GetUserByID(id string) (*User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT id, email, username, password, role, created_at FROM users WHERE id = ?", id))
}

func (s *Store) GetUserByUsername(username string) (*User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT id, email, username, password, role, created_at FROM users WHERE username = ?", username))
}

func (s *Store) scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Password, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// ListUsers returns all users in creation order.
func (s *Store) ListUsers() ([]User, error) {
	rows, err := s.db.Query(
		"SELECT id, email, username, password, role, created_at FROM users ORDER BY created_at, username")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.Password, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// EnsureAdmin creates the seed admin account if no user named Admin
// exists. Safe to call on every startup.
func (s *Store) EnsureAdmin() error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)", AdminUsername).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return nil
	}
	return s.CreateUser(&User{
		Email:    AdminEmail,
		Username: AdminUsername,
		Password: AdminPassword,
		Role:     "admin",
	})
}
