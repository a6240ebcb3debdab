package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/config"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/service"
	mock_service "github.com/JENIELPUSA/DisasterAppServer-sub000/internal/service/mocks"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

func TestAlertSender_Deliver_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		if n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		var a domain.CapacityAlert
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil || a.Current != "full" {
			t.Errorf("unexpected body: %+v err=%v", a, err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sender := service.NewAlertSender(discardLogger, config.AlertsConfig{WebhookURL: srv.URL}, nil, service.WithBackoff(time.Millisecond))

	err := sender.Deliver(context.Background(), domain.CapacityAlert{CenterID: uuid.New(), Current: "full"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestAlertSender_Deliver_GivesUp(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sender := service.NewAlertSender(discardLogger, config.AlertsConfig{WebhookURL: srv.URL}, nil, service.WithBackoff(time.Millisecond))

	if err := sender.Deliver(context.Background(), domain.CapacityAlert{}); err == nil {
		t.Fatalf("expected error after retries")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestAlertSender_Run_DrainsQueueUntilCanceled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	delivered := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		select {
		case delivered <- struct{}{}:
		default:
		}
	}))
	defer srv.Close()

	queue := mock_service.NewMockAlertQueue(ctrl)
	first := queue.EXPECT().
		BRPop(gomock.Any(), gomock.Any()).
		Return(domain.CapacityAlert{CenterID: uuid.New(), Current: "full"}, nil)
	queue.EXPECT().
		BRPop(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Duration) (domain.CapacityAlert, error) {
			select {
			case <-ctx.Done():
			case <-time.After(10 * time.Millisecond):
			}
			return domain.CapacityAlert{}, e.ErrAlertQueueEmpty
		}).
		After(first).
		AnyTimes()

	sender := service.NewAlertSender(discardLogger, config.AlertsConfig{WebhookURL: srv.URL}, queue, service.WithBackoff(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sender.Run(ctx)
		close(done)
	}()

	select {
	case <-delivered:
	case <-time.After(5 * time.Second):
		t.Fatalf("alert was not delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("sender did not stop")
	}
}
