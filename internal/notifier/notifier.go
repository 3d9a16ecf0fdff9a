// Package notifier rings the bell: a best-effort webhook call made after a
// find event is recorded. Failures are logged and never propagated.
package notifier

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Bell posts find notifications to an external endpoint. A Bell with an
// empty URL is a valid no-op.
type Bell struct {
	// URL is the webhook destination. Empty disables notification entirely.
	URL string
	// APIKey is sent as a bearer token on each call.
	APIKey string
	// Client is the HTTP client used for calls. A short timeout keeps a slow
	// bell from piling up goroutines.
	Client *http.Client
	// Log receives the outcome of each ring.
	Log *zap.Logger
}

// NewBell constructs a Bell for the given destination.
func NewBell(url, apiKey string, log *zap.Logger) *Bell {
	return &Bell{
		URL:    url,
		APIKey: apiKey,
		Client: &http.Client{Timeout: 10 * time.Second},
		Log:    log,
	}
}

// payload is the wire format of a bell ring.
type payload struct {
	MacguffinName string    `json:"macguffin_name"`
	UserID        string    `json:"user_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// Notify rings the bell for one recorded find. It is safe to call from a
// detached goroutine: every failure path ends in a log line.
func (b *Bell) Notify(macguffinName, userID string, timestamp time.Time) {
	if b.URL == "" {
		b.Log.Debug("bell not configured, skipping ring")
		return
	}

	body, err := json.Marshal(payload{
		MacguffinName: macguffinName,
		UserID:        userID,
		Timestamp:     timestamp,
	})
	if err != nil {
		b.Log.Error("failed to encode bell payload", zap.Error(err))
		return
	}

	req, err := http.NewRequest(http.MethodPost, b.URL, bytes.NewReader(body))
	if err != nil {
		b.Log.Error("failed to build bell request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if b.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.APIKey)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		b.Log.Error("bell ring failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b.Log.Error("bell ring rejected", zap.Int("status", resp.StatusCode))
		return
	}

	b.Log.Info("bell rung",
		zap.String("user", userID),
		zap.String("macguffin", macguffinName),
	)
}
