// AngelaMos | 2026
// memory_test.go

package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/angelamos/taskvault/internal/core"
	"github.com/angelamos/taskvault/internal/store"
	"github.com/angelamos/taskvault/internal/todo"
	"github.com/angelamos/taskvault/internal/user"
)

const freeLimit = 10

func newUser(username string) *user.User {
	return &user.User{
		ID:        core.NewID(),
		Name:      "Test User",
		Username:  username,
		Pro:       false,
		CreatedAt: time.Now().UTC(),
		Todos:     []todo.Todo{},
	}
}

func newTodo(title string) *todo.Todo {
	return &todo.Todo{
		ID:        core.NewID(),
		Title:     title,
		Done:      false,
		Deadline:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
	}
}

func TestInsertRejectsDuplicateUsername(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	require.NoError(t, m.Insert(ctx, newUser("ana")))

	err := m.Insert(ctx, newUser("ana"))
	require.ErrorIs(t, err, core.ErrDuplicateKey)

	users, _ := m.Stats()
	require.Equal(t, 1, users)
}

func TestUsernameIsCaseSensitive(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	require.NoError(t, m.Insert(ctx, newUser("ana")))
	require.NoError(t, m.Insert(ctx, newUser("Ana")))
}

func TestGetByIDReturnsCopy(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))
	require.NoError(t, m.Append(ctx, u.ID, newTodo("buy milk")))

	got, err := m.GetByID(ctx, u.ID)
	require.NoError(t, err)

	got.Todos[0].Title = "mutated"
	got.Pro = true

	fresh, err := m.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "buy milk", fresh.Todos[0].Title)
	require.False(t, fresh.Pro)
}

func TestGetByIDMiss(t *testing.T) {
	m := store.NewMemory(freeLimit)

	_, err := m.GetByID(context.Background(), core.NewID())
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestAppendEnforcesFreeQuota(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))

	for i := 0; i < freeLimit; i++ {
		err := m.Append(ctx, u.ID, newTodo(fmt.Sprintf("todo %d", i)))
		require.NoError(t, err)
	}

	err := m.Append(ctx, u.ID, newTodo("one too many"))
	require.ErrorIs(t, err, core.ErrQuotaExceeded)

	todos, err := m.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, todos, freeLimit)
}

func TestProAccountHasNoQuota(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))

	_, err := m.SetPro(ctx, u.ID)
	require.NoError(t, err)

	for i := 0; i < freeLimit*2; i++ {
		err := m.Append(ctx, u.ID, newTodo(fmt.Sprintf("todo %d", i)))
		require.NoError(t, err)
	}
}

func TestSetProRejectsAlreadyPro(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))

	upgraded, err := m.SetPro(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, upgraded.Pro)

	_, err = m.SetPro(ctx, u.ID)
	require.ErrorIs(t, err, core.ErrAlreadyPro)

	fresh, err := m.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, fresh.Pro)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		require.NoError(t, m.Append(ctx, u.ID, newTodo(title)))
	}

	todos, err := m.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, todos, len(titles))
	for i, title := range titles {
		require.Equal(t, title, todos[i].Title)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))

	orig := newTodo("buy milk")
	require.NoError(t, m.Append(ctx, u.ID, orig))

	newTitle := "buy oat milk"
	updated, err := m.Update(ctx, u.ID, orig.ID, &newTitle, nil)
	require.NoError(t, err)
	require.Equal(t, "buy oat milk", updated.Title)
	require.Equal(t, orig.Deadline, updated.Deadline)
	require.Equal(t, orig.CreatedAt, updated.CreatedAt)

	newDeadline := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	updated, err = m.Update(ctx, u.ID, orig.ID, nil, &newDeadline)
	require.NoError(t, err)
	require.Equal(t, "buy oat milk", updated.Title)
	require.Equal(t, newDeadline, updated.Deadline)
}

func TestUpdateMiss(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))

	title := "whatever"
	_, err := m.Update(ctx, u.ID, core.NewID(), &title, nil)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestCompleteIsIdempotent(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))

	item := newTodo("buy milk")
	require.NoError(t, m.Append(ctx, u.ID, item))

	done, err := m.Complete(ctx, u.ID, item.ID)
	require.NoError(t, err)
	require.True(t, done.Done)

	done, err = m.Complete(ctx, u.ID, item.ID)
	require.NoError(t, err)
	require.True(t, done.Done)
}

func TestRemoveDeletesByID(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))

	keep := newTodo("keep me")
	drop := newTodo("drop me")
	require.NoError(t, m.Append(ctx, u.ID, keep))
	require.NoError(t, m.Append(ctx, u.ID, drop))

	require.NoError(t, m.Remove(ctx, u.ID, drop.ID))

	todos, err := m.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, keep.ID, todos[0].ID)

	err = m.Remove(ctx, u.ID, drop.ID)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestAccountResolution(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))
	require.NoError(t, m.Append(ctx, u.ID, newTodo("buy milk")))

	account, err := m.AccountByUsername(ctx, "ana")
	require.NoError(t, err)
	require.Equal(t, u.ID, account.ID)
	require.Equal(t, 1, account.TodoCount)
	require.False(t, account.Pro)

	account, err = m.AccountByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "ana", account.Username)

	_, err = m.AccountByUsername(ctx, "nobody")
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestAccountTodoExists(t *testing.T) {
	m := store.NewMemory(freeLimit)
	ctx := context.Background()

	u := newUser("ana")
	require.NoError(t, m.Insert(ctx, u))

	item := newTodo("buy milk")
	require.NoError(t, m.Append(ctx, u.ID, item))

	exists, err := m.AccountTodoExists(ctx, u.ID, item.ID)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = m.AccountTodoExists(ctx, u.ID, core.NewID())
	require.NoError(t, err)
	require.False(t, exists)

	_, err = m.AccountTodoExists(ctx, core.NewID(), item.ID)
	require.ErrorIs(t, err, core.ErrNotFound)
}
