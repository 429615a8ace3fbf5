package store

import "time"

type User struct {
	ID        string
	Email     string
	Username  string
	Password  string
	Role      string
	CreatedAt time.Time
}

// Project owns its issues: they are stored as a single JSON document in
// the project row, and every mutation writes the whole document back.
type Project struct {
	ID        string
	Name      string // unique slug derived from Title
	Title     string
	Issues    []Issue
	CreatedAt time.Time
}

type Issue struct {
	Ordinal    int       `json:"ordinal"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
	Progress   string    `json:"progress"`
	Severity   int       `json:"severity"`
	AssignedID string    `json:"assigned"`
	Comments   []Comment `json:"comments"`

	Assignee *User `json:"-"` // joined
}

type Comment struct {
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
	UserID string    `json:"user"`

	User *User `json:"-"` // joined
}

const (
	DefaultProgress = "Open"
	DefaultSeverity = 1
)

// NextOrdinal returns one past the highest ordinal among the project's
// issues. Deleted ordinals are never reused; an empty project yields 1.
func (p *Project) NextOrdinal() int {
	max := 0
	for _, i := range p.Issues {
		if i.Ordinal > max {
			max = i.Ordinal
		}
	}
	return max + 1
}

// FindIssue returns the first issue with the given ordinal, or nil.
func (p *Project) FindIssue(ordinal int) *Issue {
	for i := range p.Issues {
		if p.Issues[i].Ordinal == ordinal {
			return &p.Issues[i]
		}
	}
	return nil
}

// RemoveIssue deletes the first issue with the given ordinal and reports
// whether one was removed. Other issues keep their ordinals.
func (p *Project) RemoveIssue(ordinal int) bool {
	for i := range p.Issues {
		if p.Issues[i].Ordinal == ordinal {
			p.Issues = append(p.Issues[:i], p.Issues[i+1:]...)
			return true
		}
	}
	return false
}
