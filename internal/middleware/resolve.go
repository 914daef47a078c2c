// AngelaMos | 2026
// resolve.go

package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/taskvault/internal/core"
	"github.com/angelamos/taskvault/internal/metrics"
)

// AccountResolver is the store surface the resolution chain needs.
// Misses are reported as errors wrapping core.ErrNotFound.
type AccountResolver interface {
	AccountByUsername(ctx context.Context, username string) (*Account, error)
	AccountByID(ctx context.Context, id string) (*Account, error)
	AccountTodoExists(
		ctx context.Context,
		accountID, todoID string,
	) (bool, error)
}

// ResolveAccountByUsername resolves the account named by the trusted
// "username" header and binds it into the request context. Unknown
// usernames terminate the chain with 404.
func ResolveAccountByUsername(
	resolver AccountResolver,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := r.Header.Get("username")

			account, err := resolver.AccountByUsername(r.Context(), username)
			if err != nil {
				core.NotFound(w, "user")
				return
			}

			ctx := context.WithValue(r.Context(), AccountKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveAccountByID resolves the account named by the {userID} path
// parameter and binds it into the request context.
func ResolveAccountByID(
	resolver AccountResolver,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "userID")

			account, err := resolver.AccountByID(r.Context(), id)
			if err != nil {
				core.NotFound(w, "user")
				return
			}

			ctx := context.WithValue(r.Context(), AccountKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EnforceCreationQuota rejects todo creation for free accounts at the
// limit. It must run after account resolution; a missing binding is a
// wiring bug and is treated as unauthorized access to the route.
func EnforceCreationQuota(freeLimit int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account := GetAccount(r.Context())
			if account == nil {
				core.NotFound(w, "user")
				return
			}

			if !account.Pro && account.TodoCount >= freeLimit {
				metrics.QuotaRejections.Inc()
				core.Forbidden(w, "free plan todo limit reached")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ResolveTodoByID validates and resolves the {todoID} path parameter
// for the account named by the "username" header. Check order is part
// of the contract: malformed id (400), then unknown user (404), then
// missing todo (404).
func ResolveTodoByID(
	resolver AccountResolver,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			todoID := chi.URLParam(r, "todoID")

			if !core.IsValidID(todoID) {
				core.JSONError(w, core.InvalidIDError())
				return
			}

			username := r.Header.Get("username")

			account, err := resolver.AccountByUsername(r.Context(), username)
			if err != nil {
				core.NotFound(w, "user")
				return
			}

			exists, err := resolver.AccountTodoExists(
				r.Context(),
				account.ID,
				todoID,
			)
			if err != nil || !exists {
				core.NotFound(w, "todo")
				return
			}

			ctx := context.WithValue(r.Context(), AccountKey, account)
			ctx = context.WithValue(ctx, TodoIDKey, todoID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
