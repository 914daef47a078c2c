// AngelaMos | 2026
// handler.go

package todo

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/taskvault/internal/core"
	"github.com/angelamos/taskvault/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes wires the todo surface. The resolution middleware is
// injected so the chain order stays visible at the call site: account
// resolution always precedes the quota check, and the todo routes use
// the combined id-validation + account + todo resolver.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	resolveAccount, enforceQuota, resolveTodo func(http.Handler) http.Handler,
) {
	r.Route("/todos", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(resolveAccount)

			r.Get("/", h.List)
		})

		r.Group(func(r chi.Router) {
			r.Use(resolveAccount)
			r.Use(enforceQuota)

			r.Post("/", h.Create)
		})

		r.Group(func(r chi.Router) {
			r.Use(resolveTodo)

			r.Put("/{todoID}", h.Update)
			r.Patch("/{todoID}/done", h.Complete)
			r.Delete("/{todoID}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	todos, err := h.service.List(r.Context(), account.ID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToTodoResponseList(todos))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.Create(r.Context(), account.ID, req)
	if err != nil {
		if errors.Is(err, core.ErrQuotaExceeded) {
			core.Forbidden(w, "free plan todo limit reached")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToTodoResponse(t))
}

// Update returns 201 on success; the original API contract used 201
// for mutations of an existing todo and clients depend on it.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())
	todoID := middleware.GetTodoID(r.Context())

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.Update(r.Context(), account.ID, todoID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "todo")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToTodoResponse(t))
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())
	todoID := middleware.GetTodoID(r.Context())

	t, err := h.service.Complete(r.Context(), account.ID, todoID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "todo")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToTodoResponse(t))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())
	todoID := middleware.GetTodoID(r.Context())

	if err := h.service.Delete(r.Context(), account.ID, todoID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "todo")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
