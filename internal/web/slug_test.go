package web

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My First Bug!", "my-first-bug"},
		{"Tracker", "tracker"},
		{"  Spaced   Out  ", "spaced-out"},
		{"C++ & Go (v2)", "c-go-v2"},
		{"under_score kept", "under_score-kept"},
		{"ALL CAPS", "all-caps"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	titles := []string{"My First Bug!", "Spaced   Out", "c-go-v2", "tracker"}
	for _, title := range titles {
		once := Slugify(title)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent: %q -> %q -> %q", title, once, twice)
		}
	}
}
