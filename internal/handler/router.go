package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mtbank/coffeebank/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware демо-приложения.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/onboarding", func(r chi.Router) {
			r.Post("/nickname", h.CheckNickname)
			r.Post("/complete", h.CompleteOnboarding)
		})

		r.Post("/coffee", h.BuyCoffee)
		r.Post("/transaction", h.SimulateTransaction)
		r.Post("/day", h.AdvanceDay)

		r.Get("/dashboard", h.GetDashboard)
		r.Get("/deposits", h.GetDeposits)
		r.Get("/analytics", h.GetAnalytics)
		r.Get("/tasks", h.GetTasks)

		r.Route("/card", func(r chi.Router) {
			r.Get("/", h.GetCard)
			r.Post("/color", h.SetCardColor)
			r.Post("/photo", h.SetCardPhoto)
		})

		r.Post("/theme", h.SetTheme)

		r.Route("/animation", func(r chi.Router) {
			r.Get("/", h.GetAnimation)
			r.Post("/stop", h.StopAnimation)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
