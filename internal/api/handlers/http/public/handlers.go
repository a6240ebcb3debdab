package public

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CenterReader interface {
	List(ctx context.Context, req domain.ListCentersRequest) ([]capacity.CenterView, error)
	Get(ctx context.Context, id uuid.UUID) (*capacity.CenterView, error)
}

type SummaryReader interface {
	Overall(ctx context.Context) (capacity.Summary, error)
	ByBarangay(ctx context.Context) (map[uuid.UUID]capacity.Summary, error)
	ByMunicipality(ctx context.Context) (map[domain.Municipality]capacity.Summary, error)
}

type LocationChecker interface {
	CheckLocation(ctx context.Context, req domain.LocationCheckRequest) (domain.LocationCheckResponse, error)
}

type Handler struct {
	logger   *slog.Logger
	Centers  CenterReader
	Summary  SummaryReader
	Location LocationChecker
}

func NewHandler(logger *slog.Logger, centers CenterReader, summary SummaryReader, location LocationChecker) *Handler {
	return &Handler{
		logger:   logger,
		Centers:  centers,
		Summary:  summary,
		Location: location,
	}
}

// PublicCenterList serves the evacuee-facing search. Inactive centers are never shown.
func (h *Handler) PublicCenterList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.ListCentersRequest{
		Query:      q.Get("q"),
		Status:     q.Get("status"),
		ActiveOnly: true,
		BarangayID: q.Get("barangay_id"),
	}

	views, err := h.Centers.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"centers": views,
		"total":   len(views),
	})
}

func (h *Handler) PublicCenterGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	view, err := h.Centers.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !view.Active {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

type summaryRow struct {
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
	capacity.Summary
}

// PublicSummary answers ?by=overall (default), barangay or municipality.
func (h *Handler) PublicSummary(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	by := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("by")))

	switch by {
	case "", "overall":
		s, err := h.Summary.Overall(r.Context())
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]any{"by": "overall", "summary": s})

	case "barangay":
		m, err := h.Summary.ByBarangay(r.Context())
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		rows := make([]summaryRow, 0, len(m))
		for id, s := range m {
			rows = append(rows, summaryRow{Key: id.String(), Summary: s})
		}
		sortRows(rows)
		h.writeJSON(w, http.StatusOK, map[string]any{"by": "barangay", "rows": rows})

	case "municipality":
		m, err := h.Summary.ByMunicipality(r.Context())
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		rows := make([]summaryRow, 0, len(m))
		for mun, s := range m {
			rows = append(rows, summaryRow{Key: string(mun), Name: string(mun), Summary: s})
		}
		sortRows(rows)
		h.writeJSON(w, http.StatusOK, map[string]any{"by": "municipality", "rows": rows})

	default:
		l.Warn("invalid summary grouping", slog.String("by", by))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "by must be overall, barangay or municipality"})
	}
}

func (h *Handler) PublicLocationCheck(w http.ResponseWriter, r *http.Request) {
	var req domain.LocationCheckRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.Location.CheckLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func sortRows(rows []summaryRow) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
}
