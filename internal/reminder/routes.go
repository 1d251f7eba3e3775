package reminder

import (
	"github.com/go-chi/chi/v5"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/auth"
)

func RegisterRoutes(r chi.Router, h *Handler, verifier auth.Verifier) {
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(verifier))

		r.Post("/reminders", h.HandleCreate)
		r.Get("/reminders", h.HandleList)
		r.Patch("/reminders/{id}/done", h.HandleMarkDone)
	})
}
