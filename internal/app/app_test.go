package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/heartmarshall/coach-admin/internal/config"
	"github.com/heartmarshall/coach-admin/internal/loader"
)

func testConfig() *config.Config {
	return &config.Config{
		API:     config.APIConfig{BaseURL: "http://127.0.0.1:1/api", ProfilePath: "profile"},
		Session: config.SessionConfig{Store: config.SessionStoreMemory, Key: "auth_token"},
		UI:      config.UIConfig{PerPage: 25},
		Log:     config.LogConfig{Level: "debug", Format: "text"},
	}
}

func TestNew_WiresServices(t *testing.T) {
	var buf bytes.Buffer
	a, err := New(testConfig(), &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if a.Auth == nil || a.Users == nil || a.Gyms == nil || a.DietPlans == nil || a.Profiles == nil || a.Dashboard == nil {
		t.Fatal("every service must be wired")
	}
	if a.Auth.Authenticated() {
		t.Error("a fresh memory session must not be authenticated")
	}
	if !strings.Contains(buf.String(), "application wired") {
		t.Errorf("expected wiring log, got %q", buf.String())
	}
}

func TestNew_RejectsBadSessionStore(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Store = "redis"

	if _, err := New(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown session store")
	}
}

func TestApp_Filter(t *testing.T) {
	a, err := New(testConfig(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	f := a.Filter(map[string]any{"search": "", "role": "trainer"})
	if f.Page != 1 {
		t.Errorf("page = %d, want 1", f.Page)
	}
	if got := f.Key(); got != "page=1&per_page=25&role=trainer" {
		t.Errorf("key = %q", got)
	}
}

func TestApp_Context(t *testing.T) {
	a, err := New(testConfig(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := a.Context(context.Background())
	if loader.FromContext(ctx) == nil {
		t.Error("command context must carry loaders")
	}
}
