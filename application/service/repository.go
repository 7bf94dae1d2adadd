package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/internal/database"
)

// Registration errors.
var (
	ErrRepositoryExists   = errors.New("repository is already registered")
	ErrRepositoryNotFound = errors.New("repository is not registered")
)

// RepositoryService manages the set of registered repositories and their
// configured branches.
type RepositoryService struct {
	db      database.Database
	stores  StoresFactory
	clients ClientFactory
	logger  *slog.Logger
}

func NewRepositoryService(db database.Database, stores StoresFactory, clients ClientFactory, logger *slog.Logger) *RepositoryService {
	return &RepositoryService{
		db:      db,
		stores:  stores,
		clients: clients,
		logger:  logger.With("component", "repository"),
	}
}

// Add registers a repository after probing that it is reachable. The probe
// runs before anything is written, so an unreachable or misspelled URL
// never leaves a row behind.
func (s *RepositoryService) Add(ctx context.Context, kind scm.Kind, url string, branches []string) (scm.Repository, error) {
	repo := scm.NewRepository(kind, url, branches)

	client, err := s.clients.ClientFor(repo)
	if err != nil {
		return scm.Repository{}, err
	}
	exists, err := client.Exists(ctx)
	if err != nil {
		return scm.Repository{}, err
	}
	if !exists {
		return scm.Repository{}, scm.NewAccessError(url, errors.New("repository not found"))
	}

	stores := s.stores(s.db)
	saved, err := stores.Repositories.Save(ctx, repo)
	if database.IsDuplicateKey(err) {
		return scm.Repository{}, fmt.Errorf("%s: %w", url, ErrRepositoryExists)
	}
	if err != nil {
		return scm.Repository{}, err
	}

	s.logger.InfoContext(ctx, "registered repository", "kind", kind, "url", url)
	return saved, nil
}

// Get returns the registered repository with the given URL.
func (s *RepositoryService) Get(ctx context.Context, url string) (scm.Repository, error) {
	stores := s.stores(s.db)
	repo, err := stores.Repositories.FindOne(ctx, scm.WithURL(url))
	if errors.Is(err, database.ErrNotFound) {
		return scm.Repository{}, fmt.Errorf("%s: %w", url, ErrRepositoryNotFound)
	}
	return repo, err
}

// List returns all registered repositories.
func (s *RepositoryService) List(ctx context.Context) ([]scm.Repository, error) {
	return s.stores(s.db).Repositories.Find(ctx)
}

// Remove unregisters the repository with the given URL. Imported history
// stays in place; only the registration and its branch list go away.
func (s *RepositoryService) Remove(ctx context.Context, url string) error {
	repo, err := s.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := s.stores(s.db).Repositories.Delete(ctx, repo); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "removed repository", "url", url)
	return nil
}

// AddBranch configures an additional branch for synchronization.
func (s *RepositoryService) AddBranch(ctx context.Context, url, branch string) (scm.Repository, error) {
	repo, err := s.Get(ctx, url)
	if err != nil {
		return scm.Repository{}, err
	}
	if repo.HasBranch(branch) {
		return repo, nil
	}
	return s.stores(s.db).Repositories.Save(ctx, repo.WithBranch(branch))
}

// RemoveBranch stops synchronizing the named branch.
func (s *RepositoryService) RemoveBranch(ctx context.Context, url, branch string) (scm.Repository, error) {
	repo, err := s.Get(ctx, url)
	if err != nil {
		return scm.Repository{}, err
	}
	if !repo.HasBranch(branch) {
		return repo, nil
	}
	return s.stores(s.db).Repositories.Save(ctx, repo.WithoutBranch(branch))
}
