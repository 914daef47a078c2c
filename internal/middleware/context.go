// AngelaMos | 2026
// context.go

package middleware

import (
	"context"
)

type contextKey string

const (
	AccountKey   contextKey = "account"
	TodoIDKey    contextKey = "todo_id"
	RequestIDKey contextKey = "request_id"
)

// Account is the resolved-user projection bound into the request
// context by the resolution middleware. Handlers that need the full
// record fetch it through their service; the projection carries what
// the downstream checks need.
type Account struct {
	ID        string
	Name      string
	Username  string
	Pro       bool
	TodoCount int
}

func GetAccount(ctx context.Context) *Account {
	if account, ok := ctx.Value(AccountKey).(*Account); ok {
		return account
	}
	return nil
}

func GetTodoID(ctx context.Context) string {
	if id, ok := ctx.Value(TodoIDKey).(string); ok {
		return id
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
