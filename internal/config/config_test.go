package config

import (
	"testing"
	"time"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/geo"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("ALERT_DISABLED", "true")

	cfg := FromEnv()
	if cfg.Bounds != geo.Biliran {
		t.Fatalf("expected Biliran bounds, got %+v", cfg.Bounds)
	}
	if cfg.Summary.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected cache ttl %v", cfg.Summary.CacheTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestFromEnv_BoundsOverride(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("ALERT_DISABLED", "true")
	t.Setenv("BOUNDS_NORTH", "12.5")
	t.Setenv("BOUNDS_SOUTH", "12.0")
	t.Setenv("BOUNDS_EAST", "125.1")
	t.Setenv("BOUNDS_WEST", "124.7")

	cfg := FromEnv()
	want := geo.Bounds{North: 12.5, South: 12.0, East: 125.1, West: 124.7}
	if cfg.Bounds != want {
		t.Fatalf("got %+v want %+v", cfg.Bounds, want)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"bad port":        {"API_KEY": "k", "ALERT_DISABLED": "true", "HTTP_PORT": "8080"},
		"missing api key": {"ALERT_DISABLED": "true"},
		"inverted bounds": {"API_KEY": "k", "ALERT_DISABLED": "true", "BOUNDS_SOUTH": "12.0"},
		"no webhook":      {"API_KEY": "k"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"API_KEY", "ALERT_DISABLED", "HTTP_PORT", "BOUNDS_SOUTH", "ALERT_WEBHOOK_URL"} {
				t.Setenv(k, "")
			}
			for k, v := range env {
				t.Setenv(k, v)
			}
			if err := FromEnv().Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
