// AngelaMos | 2026
// memory.go

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angelamos/taskvault/internal/core"
	"github.com/angelamos/taskvault/internal/middleware"
	"github.com/angelamos/taskvault/internal/todo"
	"github.com/angelamos/taskvault/internal/user"
)

// Memory is the process-lifetime user collection. One RWMutex guards
// every read and mutation so concurrent requests cannot corrupt the
// shared sequences; all lookups are linear scans, which the contract
// accepts at this scale. Reads hand out copies, never interior
// pointers, so nothing escapes the lock.
type Memory struct {
	mu        sync.RWMutex
	users     []*user.User
	freeLimit int
}

func NewMemory(freeTodoLimit int) *Memory {
	return &Memory{
		users:     make([]*user.User, 0),
		freeLimit: freeTodoLimit,
	}
}

var (
	_ user.Repository            = (*Memory)(nil)
	_ todo.Repository            = (*Memory)(nil)
	_ middleware.AccountResolver = (*Memory)(nil)
)

func (m *Memory) Insert(_ context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == u.Username {
			return fmt.Errorf("insert user: %w", core.ErrDuplicateKey)
		}
	}

	m.users = append(m.users, copyUser(u))
	return nil
}

func (m *Memory) GetByID(_ context.Context, id string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u := m.findByID(id)
	if u == nil {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}

	return copyUser(u), nil
}

func (m *Memory) GetByUsername(
	_ context.Context,
	username string,
) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u := m.findByUsername(username)
	if u == nil {
		return nil, fmt.Errorf("get user by username: %w", core.ErrNotFound)
	}

	return copyUser(u), nil
}

func (m *Memory) ExistsByUsername(
	_ context.Context,
	username string,
) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.findByUsername(username) != nil, nil
}

// SetPro rejects an already-pro user under the write lock, so two
// concurrent upgrades cannot both succeed.
func (m *Memory) SetPro(_ context.Context, id string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := m.findByID(id)
	if u == nil {
		return nil, fmt.Errorf("set pro: %w", core.ErrNotFound)
	}

	if u.Pro {
		return nil, fmt.Errorf("set pro: %w", core.ErrAlreadyPro)
	}

	u.Pro = true
	return copyUser(u), nil
}

func (m *Memory) ListByOwner(
	_ context.Context,
	ownerID string,
) ([]todo.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u := m.findByID(ownerID)
	if u == nil {
		return nil, fmt.Errorf("list todos: %w", core.ErrNotFound)
	}

	todos := make([]todo.Todo, len(u.Todos))
	copy(todos, u.Todos)
	return todos, nil
}

// Append re-checks the free quota under the write lock; the middleware
// check gives the documented error precedence, this one makes the
// limit immune to concurrent creates.
func (m *Memory) Append(
	_ context.Context,
	ownerID string,
	t *todo.Todo,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := m.findByID(ownerID)
	if u == nil {
		return fmt.Errorf("append todo: %w", core.ErrNotFound)
	}

	if !u.Pro && len(u.Todos) >= m.freeLimit {
		return fmt.Errorf("append todo: %w", core.ErrQuotaExceeded)
	}

	u.Todos = append(u.Todos, *t)
	return nil
}

func (m *Memory) Update(
	_ context.Context,
	ownerID, todoID string,
	title *string,
	deadline *time.Time,
) (*todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.findTodo(ownerID, todoID)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	if title != nil {
		t.Title = *title
	}
	if deadline != nil {
		t.Deadline = *deadline
	}

	updated := *t
	return &updated, nil
}

func (m *Memory) Complete(
	_ context.Context,
	ownerID, todoID string,
) (*todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.findTodo(ownerID, todoID)
	if err != nil {
		return nil, fmt.Errorf("complete todo: %w", err)
	}

	t.Done = true

	completed := *t
	return &completed, nil
}

// Remove deletes by matching id, never by value comparison.
func (m *Memory) Remove(_ context.Context, ownerID, todoID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := m.findByID(ownerID)
	if u == nil {
		return fmt.Errorf("remove todo: %w", core.ErrNotFound)
	}

	for i := range u.Todos {
		if u.Todos[i].ID == todoID {
			u.Todos = append(u.Todos[:i], u.Todos[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("remove todo: %w", core.ErrNotFound)
}

func (m *Memory) AccountByUsername(
	_ context.Context,
	username string,
) (*middleware.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u := m.findByUsername(username)
	if u == nil {
		return nil, fmt.Errorf("resolve account: %w", core.ErrNotFound)
	}

	return toAccount(u), nil
}

func (m *Memory) AccountByID(
	_ context.Context,
	id string,
) (*middleware.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u := m.findByID(id)
	if u == nil {
		return nil, fmt.Errorf("resolve account: %w", core.ErrNotFound)
	}

	return toAccount(u), nil
}

func (m *Memory) AccountTodoExists(
	_ context.Context,
	accountID, todoID string,
) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u := m.findByID(accountID)
	if u == nil {
		return false, fmt.Errorf("resolve todo: %w", core.ErrNotFound)
	}

	for i := range u.Todos {
		if u.Todos[i].ID == todoID {
			return true, nil
		}
	}

	return false, nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}

// Stats reports user and todo counts for the readiness report.
func (m *Memory) Stats() (users, todos int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users = len(m.users)
	for _, u := range m.users {
		todos += len(u.Todos)
	}
	return users, todos
}

func (m *Memory) findByID(id string) *user.User {
	for _, u := range m.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (m *Memory) findByUsername(username string) *user.User {
	for _, u := range m.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (m *Memory) findTodo(ownerID, todoID string) (*todo.Todo, error) {
	u := m.findByID(ownerID)
	if u == nil {
		return nil, core.ErrNotFound
	}

	for i := range u.Todos {
		if u.Todos[i].ID == todoID {
			return &u.Todos[i], nil
		}
	}

	return nil, core.ErrNotFound
}

func copyUser(u *user.User) *user.User {
	clone := *u
	clone.Todos = make([]todo.Todo, len(u.Todos))
	copy(clone.Todos, u.Todos)
	return &clone
}

func toAccount(u *user.User) *middleware.Account {
	return &middleware.Account{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Pro:       u.Pro,
		TodoCount: len(u.Todos),
	}
}
