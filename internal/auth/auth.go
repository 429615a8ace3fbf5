// Package auth covers credential checks, session cookies and the
// role specifier used to gate handlers.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/kidandcat/issues/internal/store"
)

const SessionCookie = "session"

var (
	ErrIncorrectUsername = errors.New("incorrect username")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// Authenticate checks a username and password against the store.
// Passwords are compared with plain string equality, matching how they
// are stored.
func Authenticate(s *store.Store, username, password string) (*store.User, error) {
	u, err := s.GetUserByUsername(username)
	if err == store.ErrNotFound {
		return nil, ErrIncorrectUsername
	}
	if err != nil {
		return nil, err
	}
	if u.Password != password {
		return nil, ErrIncorrectPassword
	}
	return u, nil
}

func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   SessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

type contextKey string

const userKey contextKey = "user"

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, u *store.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// CurrentUser returns the authenticated user the session middleware
// attached to the request, or nil.
func CurrentUser(r *http.Request) *store.User {
	if u, ok := r.Context().Value(userKey).(*store.User); ok {
		return u
	}
	return nil
}
