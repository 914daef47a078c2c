// AngelaMos | 2026
// dto.go

package todo

import (
	"time"
)

type CreateTodoRequest struct {
	Title    string `json:"title"    validate:"required,min=1,max=255"`
	Deadline string `json:"deadline" validate:"omitempty,max=64"`
}

type UpdateTodoRequest struct {
	Title    *string `json:"title,omitempty"    validate:"omitempty,max=255"`
	Deadline *string `json:"deadline,omitempty" validate:"omitempty,max=64"`
}

type TodoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTodoResponse(t *Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Done:      t.Done,
		Deadline:  t.Deadline,
		CreatedAt: t.CreatedAt,
	}
}

func ToTodoResponseList(todos []Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		responses = append(responses, ToTodoResponse(&t))
	}
	return responses
}
