package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/domain/service"
	"github.com/xray4scm/xray/internal/database"
)

// ClientFactory builds a version-control client bound to a repository.
// The git and svn adapters each register a factory for their kind.
type ClientFactory interface {
	ClientFor(repo scm.Repository) (service.Client, error)
}

// ClientFactoryFunc adapts a function to the ClientFactory interface.
type ClientFactoryFunc func(repo scm.Repository) (service.Client, error)

func (f ClientFactoryFunc) ClientFor(repo scm.Repository) (service.Client, error) {
	return f(repo)
}

// syncConcurrency bounds how many repositories SyncAll works on at once.
const syncConcurrency = 4

// RepositorySynchronizer walks all configured branches of a repository and
// hands each to the branch synchronizer, then stamps the repository with
// the sync completion time.
type RepositorySynchronizer struct {
	db       database.Database
	stores   StoresFactory
	branches *BranchSynchronizer
	clients  ClientFactory
	now      func() time.Time
	logger   *slog.Logger
}

func NewRepositorySynchronizer(db database.Database, stores StoresFactory, branches *BranchSynchronizer, clients ClientFactory, logger *slog.Logger) *RepositorySynchronizer {
	return &RepositorySynchronizer{
		db:       db,
		stores:   stores,
		branches: branches,
		clients:  clients,
		now:      time.Now,
		logger:   logger.With("component", "sync"),
	}
}

// Sync synchronizes every configured branch of repo. Empty and up-to-date
// branches are reported and skipped; they do not fail the run or stop the
// remaining branches. Any other branch error aborts the repository without
// stamping it as updated.
func (s *RepositorySynchronizer) Sync(ctx context.Context, repo scm.Repository) error {
	client, err := s.clients.ClientFor(repo)
	if err != nil {
		return err
	}

	for _, branch := range repo.Branches() {
		err := s.branches.Sync(ctx, repo, client, branch)
		switch {
		case errors.Is(err, scm.ErrUpToDate):
			s.logger.InfoContext(ctx, "branch is up to date",
				"url", repo.URL(), "branch", branch)
		case errors.Is(err, scm.ErrNoRevisions):
			s.logger.WarnContext(ctx, "branch has no revisions",
				"url", repo.URL(), "branch", branch)
		case err != nil:
			return err
		}
	}

	stores := s.stores(s.db)
	_, err = stores.Repositories.Save(ctx, repo.MarkUpdated(s.now()))
	return err
}

// SyncAll synchronizes every registered repository, a bounded number at a
// time. Each repository's failure is independent; the first error is
// returned after the remaining repositories finish.
func (s *RepositorySynchronizer) SyncAll(ctx context.Context) error {
	stores := s.stores(s.db)
	repos, err := stores.Repositories.Find(ctx)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(syncConcurrency)
	for _, repo := range repos {
		repo := repo
		g.Go(func() error {
			if err := s.Sync(ctx, repo); err != nil {
				s.logger.ErrorContext(ctx, "repository sync failed",
					"url", repo.URL(), "error", err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}
