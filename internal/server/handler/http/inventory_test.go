package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atinyakov/MacguffinTracker/internal/middleware"
	"github.com/atinyakov/MacguffinTracker/internal/models"
	"github.com/atinyakov/MacguffinTracker/internal/service"
	"github.com/atinyakov/MacguffinTracker/internal/token"
)

// fakeInventoryService records calls and returns preconfigured results.
type fakeInventoryService struct {
	recordedUserID    string
	recordedEmail     string
	recordedMacguffin int64
	recordReturn      *models.FindEvent
	recordErr         error

	listReturn []models.FindEvent
	listErr    error
}

func (f *fakeInventoryService) RecordFind(ctx context.Context, userID, userEmail string, macguffinID int64) (*models.FindEvent, error) {
	f.recordedUserID = userID
	f.recordedEmail = userEmail
	f.recordedMacguffin = macguffinID
	return f.recordReturn, f.recordErr
}

func (f *fakeInventoryService) ListInventory(ctx context.Context, userID string) ([]models.FindEvent, error) {
	return f.listReturn, f.listErr
}

func authedRequest(method, target string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	claims := &token.Claims{UserID: "u1", Email: "alice@example.com"}
	return req.WithContext(middleware.ContextWithIdentity(req.Context(), claims))
}

func TestInventoryHandler_List(t *testing.T) {
	newer := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	fake := &fakeInventoryService{listReturn: []models.FindEvent{
		{ID: 2, MacguffinID: 3, MacguffinName: "Orb", Timestamp: newer},
		{ID: 1, MacguffinID: 3, MacguffinName: "Orb", Timestamp: older},
	}}
	h := &InventoryHandler{InventoryService: fake}

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/api/user/inventory", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	var got []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	// Wire format carries the denormalized snapshot, not the live catalog.
	if got[0]["macguffin_name"] != "Orb" || got[0]["id"].(float64) != 2 {
		t.Errorf("unexpected first row: %+v", got[0])
	}
	if _, ok := got[0]["user_email"]; ok {
		t.Error("inventory rows must not expose user_email")
	}
}

func TestInventoryHandler_List_EmptyIsArray(t *testing.T) {
	h := &InventoryHandler{InventoryService: &fakeInventoryService{}}

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/api/user/inventory", nil))

	if body := bytes.TrimSpace(rec.Body.Bytes()); !bytes.Equal(body, []byte("[]")) {
		t.Errorf("body = %q; want %q", body, "[]")
	}
}

func TestInventoryHandler_List_NoIdentity(t *testing.T) {
	h := &InventoryHandler{InventoryService: &fakeInventoryService{}}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/user/inventory", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestInventoryHandler_Record(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeInventoryService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "bad json",
			body:           `nope`,
			service:        &fakeInventoryService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "macguffin_id required",
		},
		{
			name:           "missing id",
			body:           `{}`,
			service:        &fakeInventoryService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "macguffin_id required",
		},
		{
			name:           "unknown macguffin",
			body:           `{"macguffin_id":99}`,
			service:        &fakeInventoryService{recordErr: service.ErrMacguffinNotFound},
			expectedCode:   http.StatusNotFound,
			expectedSubstr: "macguffin not found",
		},
		{
			name:           "service error",
			body:           `{"macguffin_id":3}`,
			service:        &fakeInventoryService{recordErr: errors.New("db down")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "failed to add macguffin",
		},
		{
			name: "success",
			body: `{"macguffin_id":3}`,
			service: &fakeInventoryService{recordReturn: &models.FindEvent{
				ID: 1, MacguffinID: 3, MacguffinName: "Orb", Timestamp: time.Now(),
			}},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &InventoryHandler{InventoryService: tt.service}
			rec := httptest.NewRecorder()
			h.Record(rec, authedRequest(http.MethodPost, "/api/user/inventory", bytes.NewBufferString(tt.body)))

			if rec.Code != tt.expectedCode {
				t.Fatalf("status = %d; want %d", rec.Code, tt.expectedCode)
			}

			if tt.expectedSubstr != "" {
				if !bytes.Contains(rec.Body.Bytes(), []byte(tt.expectedSubstr)) {
					t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
				}
				return
			}

			var payload map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
				t.Fatalf("failed to decode JSON: %v", err)
			}
			if payload["success"] != true || payload["macguffin"] != "Orb" {
				t.Errorf("unexpected payload: %+v", payload)
			}
			if tt.service.recordedUserID != "u1" || tt.service.recordedEmail != "alice@example.com" {
				t.Errorf("identity passed = %q/%q; want u1/alice@example.com",
					tt.service.recordedUserID, tt.service.recordedEmail)
			}
			if tt.service.recordedMacguffin != 3 {
				t.Errorf("macguffin id passed = %d; want 3", tt.service.recordedMacguffin)
			}
		})
	}
}

func TestLeaderboardHandler_Get(t *testing.T) {
	fake := &fakeLeaderboardService{entries: []models.LeaderboardEntry{
		{UserID: "u1", UserEmail: "alice@example.com", Count: 3},
		{UserID: "u2", UserEmail: "bob@example.com", Count: 2},
	}}
	h := &LeaderboardHandler{LeaderboardService: fake}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	var got []models.LeaderboardEntry
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(got) != 2 || got[0].Count != 3 || got[1].Count != 2 {
		t.Errorf("unexpected leaderboard: %+v", got)
	}
}

func TestLeaderboardHandler_EmptyIsArray(t *testing.T) {
	h := &LeaderboardHandler{LeaderboardService: &fakeLeaderboardService{}}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))

	if body := bytes.TrimSpace(rec.Body.Bytes()); !bytes.Equal(body, []byte("[]")) {
		t.Errorf("body = %q; want %q", body, "[]")
	}
}

// fakeLeaderboardService implements LeaderboardService for testing.
type fakeLeaderboardService struct {
	entries []models.LeaderboardEntry
	err     error
}

func (f *fakeLeaderboardService) Compute(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return f.entries, f.err
}
