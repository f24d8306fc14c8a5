// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"regsite/internal/ai"
	"regsite/internal/audit"
	"regsite/internal/config"
	"regsite/internal/handlers"
	"regsite/internal/middleware"
	"regsite/internal/models"
	"regsite/internal/obs"
	"regsite/internal/token"
)

type noUsers struct{}

func (noUsers) FindByID(id uuid.UUID) (*models.User, error) { return nil, nil }

func testRouter() http.Handler {
	cfg := &config.Config{Env: "testing", CORSOrigin: "*"}
	tokens := token.NewService("test-secret", "test-refresh-secret", time.Minute, time.Hour)
	trail := audit.NewRecorder(nil)
	gate := middleware.NewGate(tokens, noUsers{})
	api := handlers.NewAPI(cfg, tokens, trail, handlers.Stores{}, nil, nil, ai.NewAssistant(ai.ProviderConfig{}))
	return New(cfg, gate, api)
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestHealthRoute(t *testing.T) {
	obs.Init()
	mux := testRouter()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/health", nil)
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("GET /api/health: got %d, want 200", w.Code)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	mux := testRouter()

	cases := []struct {
		method string
		path   string
	}{
		{"POST", "/api/news"},
		{"PUT", "/api/settings"},
		{"GET", "/api/users"},
		{"GET", "/api/audit"},
		{"GET", "/api/contact"},
		{"POST", "/api/upload"},
		{"GET", "/api/dashboard/stats"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(tc.method, tc.path, nil)
		mux.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: got %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	mux := testRouter()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/nope", nil)
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("unknown route: got %d, want 404", w.Code)
	}
}
