// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/angelamos/taskvault/internal/todo"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Username string `json:"username" validate:"required,min=1,max=64"`
}

type UserResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Username  string              `json:"username"`
	Pro       bool                `json:"pro"`
	CreatedAt time.Time           `json:"created_at"`
	Todos     []todo.TodoResponse `json:"todos"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Pro:       u.Pro,
		CreatedAt: u.CreatedAt,
		Todos:     todo.ToTodoResponseList(u.Todos),
	}
}
