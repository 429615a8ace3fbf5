package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

func (s *Store) CreateProject(p *Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	doc, err := json.Marshal(p.Issues)
	if err != nil {
		return fmt.Errorf("marshal issues: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO projects (id, name, title, issues) VALUES (?, ?, ?, ?)",
		p.ID, p.Name, p.Title, string(doc),
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (s *Store) GetProjectByName(name string) (*Project, error) {
	return s.scanProject(s.db.QueryRow(
		"SELECT id, name, title, issues, created_at FROM projects WHERE name = ?", name))
}

func (s *Store) scanProject(row *sql.Row) (*Project, error) {
	var p Project
	var doc string
	err := row.Scan(&p.ID, &p.Name, &p.Title, &doc, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan project: %w", err)
	}
	if err := json.Unmarshal([]byte(doc), &p.Issues); err != nil {
		return nil, fmt.Errorf("unmarshal issues: %w", err)
	}
	return &p, nil
}

// ListProjects returns all projects in store order.
func (s *Store) ListProjects() ([]Project, error) {
	rows, err := s.db.Query("SELECT id, name, title, issues, created_at FROM projects")
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var doc string
		if err := rows.Scan(&p.ID, &p.Name, &p.Title, &doc, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if err := json.Unmarshal([]byte(doc), &p.Issues); err != nil {
			return nil, fmt.Errorf("unmarshal issues: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// SaveProject writes the whole issue document back onto the project row.
// Two writers that loaded the same snapshot will race: the second save
// replaces the first wholesale. Tolerated; issues are embedded in their
// project and there is no per-issue row to lock.
func (s *Store) SaveProject(p *Project) error {
	doc, err := json.Marshal(p.Issues)
	if err != nil {
		return fmt.Errorf("marshal issues: %w", err)
	}
	res, err := s.db.Exec(
		"UPDATE projects SET title = ?, issues = ? WHERE id = ?",
		p.Title, string(doc), p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteProjectByName(name string) error {
	res, err := s.db.Exec("DELETE FROM projects WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolveAssignees joins each issue's assignee id (and each comment's
// author id) against the users table, filling the joined fields. Unknown
// references are left nil rather than failing the whole load.
func (s *Store) ResolveAssignees(p *Project) error {
	cache := map[string]*User{}
	lookup := func(id string) (*User, error) {
		if id == "" {
			return nil, nil
		}
		if u, ok := cache[id]; ok {
			return u, nil
		}
		u, err := s.GetUserByID(id)
		if err == ErrNotFound {
			cache[id] = nil
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		cache[id] = u
		return u, nil
	}

	for i := range p.Issues {
		u, err := lookup(p.Issues[i].AssignedID)
		if err != nil {
			return fmt.Errorf("resolve assignee: %w", err)
		}
		p.Issues[i].Assignee = u

		for c := range p.Issues[i].Comments {
			u, err := lookup(p.Issues[i].Comments[c].UserID)
			if err != nil {
				return fmt.Errorf("resolve commenter: %w", err)
			}
			p.Issues[i].Comments[c].User = u
		}
	}
	return nil
}
