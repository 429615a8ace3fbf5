package store

import "testing"

func TestSessions(t *testing.T) {
	s := setupTestStore(t)

	u := &User{Username: "dev", Password: "x", Role: "user"}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := s.CreateSession(u.ID)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	got, err := s.GetUserBySession(token)
	if err != nil {
		t.Fatalf("failed to resolve session: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("user = %q, want %q", got.ID, u.ID)
	}

	s.DeleteSession(token)
	if _, err := s.GetUserBySession(token); err != ErrNotFound {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
}

func TestGetUserBySession_UnknownToken(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.GetUserBySession("bogus"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
