// AngelaMos | 2026
// handler.go

package user

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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	resolveByID func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(resolveByID)

			r.Get("/{userID}", h.GetByID)
			r.Patch("/{userID}/pro", h.UpgradeToPro)
		})
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("username"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToUserResponse(u))
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	u, err := h.service.GetByID(r.Context(), account.ID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToUserResponse(u))
}

func (h *Handler) UpgradeToPro(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	u, err := h.service.UpgradeToPro(r.Context(), account.ID)
	if err != nil {
		if errors.Is(err, core.ErrAlreadyPro) {
			core.BadRequest(w, "user already has the pro plan")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToUserResponse(u))
}
