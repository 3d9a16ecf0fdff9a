package service

import (
	"context"

	"github.com/atinyakov/MacguffinTracker/internal/models"
)

// CatalogRepository defines the persistence operations needed by the CatalogService.
type CatalogRepository interface {
	// List retrieves all catalog entries ordered by name.
	List(ctx context.Context) ([]models.Macguffin, error)
	// Create inserts a new catalog entry and returns it with its assigned id.
	Create(ctx context.Context, name string) (*models.Macguffin, error)
	// Rename updates the name of the entry with the given id.
	Rename(ctx context.Context, id int64, name string) error
	// Delete removes the entry with the given id.
	Delete(ctx context.Context, id int64) error
}

// CatalogService implements catalog administration business logic.
// Admin authorization is enforced upstream, before any call reaches here.
type CatalogService struct {
	// repo is the underlying persistence repository.
	repo CatalogRepository
}

// NewCatalogService constructs a CatalogService with the provided CatalogRepository.
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns all catalog entries ordered by name.
func (s *CatalogService) List(ctx context.Context) ([]models.Macguffin, error) {
	return s.repo.List(ctx)
}

// Create adds a catalog entry with the given name and returns it.
func (s *CatalogService) Create(ctx context.Context, name string) (*models.Macguffin, error) {
	return s.repo.Create(ctx, name)
}

// Rename changes the name of the entry with the given id. A nonexistent id
// affects zero rows and still succeeds.
func (s *CatalogService) Rename(ctx context.Context, id int64, name string) (*models.Macguffin, error) {
	if err := s.repo.Rename(ctx, id, name); err != nil {
		return nil, err
	}
	return &models.Macguffin{ID: id, Name: name}, nil
}

// Delete removes the entry with the given id. Historical find events
// referencing the id keep their name snapshots. A nonexistent id still succeeds.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
