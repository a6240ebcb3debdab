package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Centers interface {
	Create(ctx context.Context, draft domain.CenterDraft) (*capacity.CenterView, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateCenterRequest) (*capacity.CenterView, error)
	Get(ctx context.Context, id uuid.UUID) (*capacity.CenterView, error)
	List(ctx context.Context, req domain.ListCentersRequest) ([]capacity.CenterView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*capacity.CenterView, error)
	UpdateOccupancy(ctx context.Context, id uuid.UUID, req domain.UpdateOccupancyRequest) (*capacity.CenterView, error)
}

type Barangays interface {
	Create(ctx context.Context, req domain.CreateBarangayRequest) (*domain.Barangay, error)
	List(ctx context.Context) ([]domain.Barangay, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.LocationStats, error)
}

type Handler struct {
	logger    *slog.Logger
	Centers   Centers
	Barangays Barangays
	Stats     StatsGetter
}

func NewHandler(logger *slog.Logger, centers Centers, barangays Barangays, stats StatsGetter) *Handler {
	return &Handler{
		logger:    logger,
		Centers:   centers,
		Barangays: barangays,
		Stats:     stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminCenterCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminCenterCreate", slog.String("remote", r.RemoteAddr))

	var draft domain.CenterDraft
	if !h.decode(w, r, &draft) {
		return
	}

	l.Info("creating center",
		slog.String("name", draft.Name),
		slog.String("barangay_ref", draft.BarangayRef),
		slog.Int("capacity", draft.Capacity),
	)

	view, err := h.Centers.Create(r.Context(), draft)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("center created", slog.String("id", view.ID.String()), slog.String("status", string(view.Status)))
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) AdminCenterList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminCenterList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	req := domain.ListCentersRequest{
		Query:      q.Get("q"),
		Status:     q.Get("status"),
		ActiveOnly: parseBool(q.Get("active_only")),
		BarangayID: q.Get("barangay_id"),
	}

	views, err := h.Centers.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("centers listed", slog.Int("count", len(views)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"centers": views,
		"total":   len(views),
	})
}

func (h *Handler) AdminCenterGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	view, err := h.Centers.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) AdminCenterUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminCenterUpdate", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateCenterRequest
	if !h.decode(w, r, &req) {
		return
	}

	view, err := h.Centers.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("center updated", slog.String("id", id.String()), slog.Int64("version", view.Version))
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) AdminCenterDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Centers.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminCenterSetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.SetActiveRequest
	if !h.decode(w, r, &req) {
		return
	}

	view, err := h.Centers.SetActive(r.Context(), id, req.Active)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) AdminCenterOccupancy(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateOccupancyRequest
	if !h.decode(w, r, &req) {
		return
	}

	view, err := h.Centers.UpdateOccupancy(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("occupancy updated",
		slog.String("id", id.String()),
		slog.Int("occupancy", view.Occupancy),
		slog.String("status", string(view.Status)),
	)
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) AdminBarangayCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBarangayRequest
	if !h.decode(w, r, &req) {
		return
	}

	b, err := h.Barangays.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("barangay created", slog.String("id", b.ID.String()), slog.String("municipality", string(b.Municipality)))
	h.writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) AdminBarangayList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Barangays.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Barangay{}
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"barangays":      list,
		"municipalities": domain.Municipalities(),
	})
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
