package reminder

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/auth"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/storage"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type createRequest struct {
	Title string    `json:"title"`
	Time  time.Time `json:"time"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	reminder, err := h.svc.Create(r.Context(), identity.UserID, req.Title, req.Time)
	if errors.Is(err, ErrMissingFields) {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("Create reminder error", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, reminder)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	reminders, err := h.svc.List(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("List reminders error", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, reminders)
}

func (h *Handler) HandleMarkDone(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	reminder, err := h.svc.MarkDone(r.Context(), identity.UserID, chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "reminder not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("Mark reminder done error", zap.Error(err), zap.String("user_id", identity.UserID))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, reminder)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
