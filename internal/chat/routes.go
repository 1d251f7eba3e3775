package chat

import (
	"github.com/go-chi/chi/v5"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/auth"
)

func RegisterRoutes(r chi.Router, h *Handler, verifier auth.Verifier) {
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(verifier))

		r.Post("/chat", h.HandleMessage)
		r.Get("/chat/history", h.HandleHistory)
		r.Get("/chat/session/{id}", h.HandleSession)
		r.Delete("/chat/clear", h.HandleClear)
		r.Post("/emergency", h.HandleEmergency)
	})
}
