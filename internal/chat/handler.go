package chat

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/auth"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type messageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type emergencyRequest struct {
	Message   string   `json:"message"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	reply, err := h.svc.HandleMessage(r.Context(), identity, req.Message, req.SessionID)
	if err != nil {
		h.logger.Error("Chat handler error", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"reply": reply})
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	turns, err := h.svc.History(r.Context(), identity.UserID, 50)
	if err != nil {
		h.logger.Error("History handler error", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, turns)
}

func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID := chi.URLParam(r, "id")
	turns, err := h.svc.Session(r.Context(), identity.UserID, sessionID)
	if err != nil {
		h.logger.Error("Session handler error", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, turns)
}

func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	deleted, err := h.svc.Clear(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("Clear handler error", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int64{"deleted": deleted})
}

// HandleEmergency fires a one-shot alert with the user's message and,
// when the client captured it, their location.
func (h *Handler) HandleEmergency(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req emergencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		req.Message = "Emergency assistance requested"
	}

	message := req.Message
	if req.Latitude != nil && req.Longitude != nil {
		message = fmt.Sprintf("%s\nLocation: https://maps.google.com/?q=%f,%f",
			message, *req.Latitude, *req.Longitude)
	}

	if err := h.svc.Escalate(r.Context(), identity, message); err != nil {
		h.logger.Error("Emergency alert failed", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "failed to send alert", http.StatusBadGateway)
		return
	}

	writeJSON(w, map[string]string{"status": "alert sent"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
