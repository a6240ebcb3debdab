package system

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestSystemHealth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("refused") })

	cases := []struct {
		name string
		deps map[string]Pinger
		want int
		body string
	}{
		{"all up", map[string]Pinger{"postgres": up, "redis": up}, http.StatusOK, `"status":"ok"`},
		{"redis down", map[string]Pinger{"postgres": up, "redis": down}, http.StatusServiceUnavailable, `"redis":"down"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			NewHandler(logger, tc.deps).SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
			if rr.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, rr.Code)
			}
			if !strings.Contains(rr.Body.String(), tc.body) {
				t.Fatalf("expected %s in %s", tc.body, rr.Body.String())
			}
		})
	}
}
