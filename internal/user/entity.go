// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/angelamos/taskvault/internal/todo"
)

// User owns its todos by composition: the sequence lives inside the
// record and todos are never referenced from anywhere else. Username
// is unique across all users, case-sensitive. Users are never deleted.
type User struct {
	ID        string
	Name      string
	Username  string
	Pro       bool
	CreatedAt time.Time
	Todos     []todo.Todo
}
