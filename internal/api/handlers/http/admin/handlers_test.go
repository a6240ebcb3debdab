package admin_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/api/handlers/http/admin"
	mock_admin "github.com/JENIELPUSA/DisasterAppServer-sub000/internal/api/handlers/http/admin/mocks"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/capacity"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

type fixture struct {
	centers   *mock_admin.MockCenters
	barangays *mock_admin.MockBarangays
	stats     *mock_admin.MockStatsGetter
	router    chi.Router
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		centers:   mock_admin.NewMockCenters(ctrl),
		barangays: mock_admin.NewMockBarangays(ctrl),
		stats:     mock_admin.NewMockStatsGetter(ctrl),
	}
	h := admin.NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), f.centers, f.barangays, f.stats)

	r := chi.NewRouter()
	r.Post("/centers", h.AdminCenterCreate)
	r.Get("/centers", h.AdminCenterList)
	r.Get("/centers/{id}", h.AdminCenterGet)
	r.Put("/centers/{id}", h.AdminCenterUpdate)
	r.Delete("/centers/{id}", h.AdminCenterDelete)
	r.Put("/centers/{id}/active", h.AdminCenterSetActive)
	r.Put("/centers/{id}/occupancy", h.AdminCenterOccupancy)
	r.Get("/barangays", h.AdminBarangayList)
	r.Post("/barangays", h.AdminBarangayCreate)
	r.Get("/stats", h.AdminStats)
	f.router = r
	return f
}

func (f fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
	return m
}

func sampleView(capacityN, occupancy int) *capacity.CenterView {
	v := capacity.View(domain.EvacuationCenter{
		ID:        uuid.New(),
		Name:      "Naval Gym",
		Capacity:  capacityN,
		Occupancy: occupancy,
		Active:    true,
		Version:   1,
	})
	return &v
}

func TestAdminCenterCreate_Created(t *testing.T) {
	f := newFixture(t)

	draft := domain.CenterDraft{Name: "Naval Gym", Capacity: 100, BarangayRef: uuid.NewString()}
	f.centers.EXPECT().Create(gomock.Any(), draft).Return(sampleView(100, 95), nil)

	rr := f.do(http.MethodPost, "/centers", draft)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["status"] != "full" || body["available"] != float64(5) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAdminCenterCreate_InvalidJSON(t *testing.T) {
	f := newFixture(t)

	for _, body := range []string{`{`, `{"name":"x","unknown":1}`, `{"name":"x"}{"name":"y"}`} {
		rr := f.do(http.MethodPost, "/centers", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rr.Code)
		}
	}
}

func TestAdminCenterCreate_ValidationErrorListsAllFields(t *testing.T) {
	f := newFixture(t)

	verr := &e.ValidationError{}
	verr.Add("phone", "is required")
	verr.Add("capacity", "must be at least 1")
	f.centers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, verr)

	rr := f.do(http.MethodPost, "/centers", domain.CenterDraft{})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rr.Code)
	}
	fields, ok := decodeBody(t, rr)["fields"].([]any)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected two field errors, got %s", rr.Body.String())
	}
}

func TestAdminCenterCreate_UnresolvedBarangay(t *testing.T) {
	f := newFixture(t)

	f.centers.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &e.ReferenceError{Field: "barangay_ref", ID: "abc"})

	rr := f.do(http.MethodPost, "/centers", domain.CenterDraft{})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rr.Code)
	}
	if decodeBody(t, rr)["field"] != "barangay_ref" {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestAdminCenterList_PassesQuery(t *testing.T) {
	f := newFixture(t)

	want := domain.ListCentersRequest{Query: "gym", Status: "high", ActiveOnly: true, BarangayID: "b1"}
	f.centers.EXPECT().List(gomock.Any(), want).Return([]capacity.CenterView{*sampleView(10, 8)}, nil)

	rr := f.do(http.MethodGet, "/centers?q=gym&status=high&active_only=true&barangay_id=b1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if decodeBody(t, rr)["total"] != float64(1) {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestAdminCenterGet_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", e.ErrNotFound, http.StatusNotFound},
		{"invalid", e.ErrInvalidInput, http.StatusBadRequest},
		{"timeout", e.ErrDeadline, http.StatusGatewayTimeout},
		{"internal", e.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			id := uuid.New()
			f.centers.EXPECT().Get(gomock.Any(), id).Return(nil, tc.err)

			rr := f.do(http.MethodGet, "/centers/"+id.String(), nil)
			if rr.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, rr.Code)
			}
		})
	}
}

func TestAdminCenterGet_InvalidID(t *testing.T) {
	f := newFixture(t)
	rr := f.do(http.MethodGet, "/centers/not-a-uuid", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestAdminCenterUpdate_Conflict(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	f.centers.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, e.Wrap("service.Center.Update", e.ErrConflict))

	rr := f.do(http.MethodPut, "/centers/"+id.String(), domain.UpdateCenterRequest{Version: 2})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rr.Code)
	}
}

func TestAdminCenterDelete_NoContent(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	f.centers.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rr := f.do(http.MethodDelete, "/centers/"+id.String(), nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
}

func TestAdminCenterSetActive_And_Occupancy(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	f.centers.EXPECT().SetActive(gomock.Any(), id, false).Return(sampleView(10, 0), nil)
	f.centers.EXPECT().
		UpdateOccupancy(gomock.Any(), id, domain.UpdateOccupancyRequest{Occupancy: 7}).
		Return(sampleView(10, 7), nil)

	if rr := f.do(http.MethodPut, "/centers/"+id.String()+"/active", domain.SetActiveRequest{Active: false}); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	rr := f.do(http.MethodPut, "/centers/"+id.String()+"/occupancy", domain.UpdateOccupancyRequest{Occupancy: 7})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if decodeBody(t, rr)["status"] != "high" {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestAdminBarangays(t *testing.T) {
	f := newFixture(t)

	f.barangays.EXPECT().List(gomock.Any()).Return(nil, nil)
	rr := f.do(http.MethodGet, "/barangays", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if list, ok := body["barangays"].([]any); !ok || len(list) != 0 {
		t.Fatalf("expected empty list, got %s", rr.Body.String())
	}
	if muns, ok := body["municipalities"].([]any); !ok || len(muns) != 8 {
		t.Fatalf("expected 8 municipalities, got %s", rr.Body.String())
	}

	f.barangays.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, e.Wrap("postgres.Barangay.Create", e.ErrUniqueViolation))
	rr = f.do(http.MethodPost, "/barangays", domain.CreateBarangayRequest{Name: "Poblacion", Municipality: domain.MunicipalityNaval})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rr.Code)
	}
}

func TestAdminStats(t *testing.T) {
	f := newFixture(t)

	f.stats.EXPECT().GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(&domain.LocationStats{Minutes: 60, TotalChecks: 3}, nil)

	rr := f.do(http.MethodGet, "/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	for _, q := range []string{"0", "1441", "abc"} {
		if rr := f.do(http.MethodGet, "/stats?minutes="+q, nil); rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for minutes=%s got %d", q, rr.Code)
		}
	}
}
