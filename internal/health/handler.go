// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
)

type Checker interface {
	Ping(ctx context.Context) error
}

// StatsFunc reports the store's user and todo counts.
type StatsFunc func() (users, todos int)

type Handler struct {
	store      Checker
	redis      Checker
	storeStats StatsFunc
	ready      atomic.Bool
	shutdown   atomic.Bool
}

// NewHandler builds the health surface. redis may be nil when the rate
// limiter runs on its local fallback.
func NewHandler(store Checker, redis Checker, stats StatsFunc) *Handler {
	h := &Handler{
		store:      store,
		redis:      redis,
		storeStats: stats,
	}
	h.ready.Store(true)
	return h
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
		})
		return
	}

	h.writeStatus(w, http.StatusOK, StatusResponse{
		Status: "ok",
	})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
		})
		return
	}

	if !h.ready.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "not_ready",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := h.runHealthChecks(ctx)

	allHealthy := true
	for _, check := range checks {
		if !check.Healthy {
			allHealthy = false
			break
		}
	}

	status := "ok"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	resp := ReadinessResponse{
		Status: status,
		Checks: checks,
	}

	if h.storeStats != nil {
		users, todos := h.storeStats()
		resp.Store = &StoreStats{Users: users, Todos: todos}
	}

	h.writeStatus(w, statusCode, resp)
}

func (h *Handler) runHealthChecks(ctx context.Context) []HealthCheck {
	checkers := []struct {
		name    string
		checker Checker
	}{
		{"store", h.store},
		{"redis", h.redis},
	}

	var wg sync.WaitGroup
	checks := make([]HealthCheck, 0, len(checkers))

	for _, c := range checkers {
		if c.checker == nil {
			continue
		}
		checks = append(checks, HealthCheck{Name: c.name})
	}

	idx := 0
	for _, c := range checkers {
		if c.checker == nil {
			continue
		}

		wg.Add(1)
		go func(i int, checker Checker) {
			defer wg.Done()
			checks[i] = h.runCheck(ctx, checks[i].Name, checker)
		}(idx, c.checker)
		idx++
	}

	wg.Wait()
	return checks
}

func (h *Handler) runCheck(
	ctx context.Context,
	name string,
	checker Checker,
) HealthCheck {
	check := HealthCheck{
		Name:    name,
		Healthy: true,
	}

	start := time.Now()
	err := checker.Ping(ctx)
	check.Latency = time.Since(start).String()

	if err != nil {
		check.Healthy = false
		check.Message = "ping failed"
	}

	return check
}

func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handler) SetShutdown(shutdown bool) {
	h.shutdown.Store(shutdown)
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(data)
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []HealthCheck `json:"checks"`
	Store  *StoreStats   `json:"store,omitempty"`
}

type StoreStats struct {
	Users int `json:"users"`
	Todos int `json:"todos"`
}

type HealthCheck struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
