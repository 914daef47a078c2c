// AngelaMos | 2026
// entity.go

package todo

import (
	"time"
)

// Todo is owned by exactly one user; it has no identity outside the
// owner's list and its ID is only unique within that list's owner.
type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
}

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDeadline parses a client-supplied deadline best-effort. An
// unparseable value is accepted as the zero time; the API contract
// tolerates invalid deadlines rather than rejecting the todo.
func ParseDeadline(s string) time.Time {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
