package domain

import (
	"fmt"
	"strings"
	"time"
)

// Schedule is a named, saved expression.
type Schedule struct {
	ID         string
	Name       string
	Expression string
	Shape      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// maxNameLen bounds schedule names so they fit in table output.
const maxNameLen = 64

// ValidateName checks that Name is non-empty, trimmed, and free of
// whitespace other than single inner spaces.
func (s *Schedule) ValidateName() error {
	if s.Name == "" {
		return fmt.Errorf("schedule name is required")
	}
	if strings.TrimSpace(s.Name) != s.Name {
		return fmt.Errorf("schedule name %q must not start or end with whitespace", s.Name)
	}
	if len(s.Name) > maxNameLen {
		return fmt.Errorf("schedule name %q is longer than %d characters", s.Name, maxNameLen)
	}
	if strings.ContainsAny(s.Name, "\t\n\r") {
		return fmt.Errorf("schedule name %q must not contain tabs or newlines", s.Name)
	}
	return nil
}

// DisplayID returns the first 8 characters of ID.
func (s *Schedule) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}
