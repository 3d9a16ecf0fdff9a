package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atinyakov/MacguffinTracker/internal/models"
)

// LedgerRepository defines the persistence operations needed by the InventoryService.
type LedgerRepository interface {
	// Append inserts a find event and returns it with its assigned id.
	Append(ctx context.Context, event *models.FindEvent) (*models.FindEvent, error)
	// ListByUser retrieves the user's find events, most recent first.
	ListByUser(ctx context.Context, userID string) ([]models.FindEvent, error)
}

// CatalogGetter resolves catalog entries at record time.
type CatalogGetter interface {
	// GetByID fetches a catalog entry. Returns sql.ErrNoRows if absent.
	GetByID(ctx context.Context, id int64) (*models.Macguffin, error)
}

// Notifier is told about recorded finds. Implementations must not block the
// caller and must swallow their own failures.
type Notifier interface {
	Notify(macguffinName, userID string, timestamp time.Time)
}

// InventoryService implements the find-event ledger business logic.
type InventoryService struct {
	ledger   LedgerRepository
	catalog  CatalogGetter
	notifier Notifier
}

// NewInventoryService constructs an InventoryService. notifier may be a no-op
// implementation but must not be nil.
func NewInventoryService(ledger LedgerRepository, catalog CatalogGetter, notifier Notifier) *InventoryService {
	return &InventoryService{ledger: ledger, catalog: catalog, notifier: notifier}
}

// RecordFind appends a find event for the given identity and macguffin.
// The event snapshots the caller's email and the catalog name as they are
// right now; later catalog edits never rewrite it. Repeated finds of the
// same macguffin are legitimate and each produce a distinct row.
// Fails with ErrMacguffinNotFound if the catalog id does not exist.
func (s *InventoryService) RecordFind(ctx context.Context, userID, userEmail string, macguffinID int64) (*models.FindEvent, error) {
	macguffin, err := s.catalog.GetByID(ctx, macguffinID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMacguffinNotFound
		}
		return nil, fmt.Errorf("get macguffin: %w", err)
	}

	event := &models.FindEvent{
		UserID:        userID,
		UserEmail:     userEmail,
		MacguffinID:   macguffin.ID,
		MacguffinName: macguffin.Name,
		Timestamp:     time.Now().UTC(),
	}
	event, err = s.ledger.Append(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("append find: %w", err)
	}

	// The find is durable once the append commits; the bell ring happens in
	// the background and its outcome never reaches the caller.
	go s.notifier.Notify(event.MacguffinName, event.UserID, event.Timestamp)

	return event, nil
}

// ListInventory returns the user's find events, most recent first.
// An empty inventory is a valid result.
func (s *InventoryService) ListInventory(ctx context.Context, userID string) ([]models.FindEvent, error) {
	return s.ledger.ListByUser(ctx, userID)
}
