package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-stock-dashboard/internal/app"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. A positive timeout bounds every request.
func (h *Handler) Init(timeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if timeout > 0 {
		router.Use(middleware.Timeout(timeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Post("/api/optimize", h.optimize)
		r.Post("/api/calculate-rop", h.calculateROP)
		r.Get("/api/dashboard", h.dashboard)

		r.Route("/api/history", func(r chi.Router) {
			r.Get("/", h.listHistory)
			r.Get("/{id}", h.getCalculation)
			r.Delete("/{id}", h.deleteCalculation)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	return router
}
