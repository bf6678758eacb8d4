package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pankajyadav-dev/ocean/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PublicReports interface {
	SubmitReport(ctx context.Context, req domain.CreateReportRequest) (uuid.UUID, error)
	RegisterRecipient(ctx context.Context, req domain.RegisterRecipientRequest) (uuid.UUID, error)
	UpdateRecipientLocation(ctx context.Context, id uuid.UUID, req domain.UpdateLocationRequest) error
	RecentHazards(ctx context.Context) ([]domain.BroadcastPayload, error)
}

type Handler struct {
	logger  *slog.Logger
	Reports PublicReports
}

func NewHandler(logger *slog.Logger, reports PublicReports) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
	}
}

func (h *Handler) PublicReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateReportRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	id, err := h.Reports.SubmitReport(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("hazard report submitted",
		slog.String("id", id.String()),
		slog.String("kind", string(req.Kind)),
		slog.Int("severity", req.Severity),
	)
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) PublicRecipientRegister(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RegisterRecipientRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	id, err := h.Reports.RegisterRecipient(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("recipient registered", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) PublicRecipientLocation(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateLocationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.Reports.UpdateRecipientLocation(r.Context(), id, req); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) PublicRecentHazards(w http.ResponseWriter, r *http.Request) {
	hazards, err := h.Reports.RecentHazards(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	if hazards == nil {
		hazards = []domain.BroadcastPayload{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"hazards": hazards})
}

// decodeJSON rejects malformed bodies, unknown fields and trailing data.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		h.log(r).Warn("invalid JSON", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	return true
}
