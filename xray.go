// Package xray provides a library for mirroring version-control history
// into a relational store with per-revision line-count metrics.
//
// xray walks a repository's revision log branch by branch, records every
// revision and file change, and classifies text content into code, comment,
// and blank line counts per language. Synchronization is incremental: each
// revision commits atomically and a re-run resumes after the last imported
// revision.
//
// Basic usage:
//
//	client, err := xray.New(
//	    xray.WithSQLite(".xray/xray.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	repo, err := client.Repositories.Add(ctx, scm.KindGit,
//	    "https://github.com/git/git.git", []string{"master"})
//
//	err = client.Sync.Sync(ctx, repo)
package xray

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/xray4scm/xray/application/service"
	"github.com/xray4scm/xray/infrastructure/cloc"
	"github.com/xray4scm/xray/infrastructure/git"
	"github.com/xray4scm/xray/infrastructure/persistence"
	"github.com/xray4scm/xray/internal/database"
	"github.com/xray4scm/xray/internal/log"
)

// ErrNoDatabase is returned by New when no database option was given.
var ErrNoDatabase = errors.New("no database configured: use WithSQLite or WithPostgres")

// Client is the main entry point for the xray library.
//
// Access resources via struct fields:
//
//	client.Repositories.Add(ctx, kind, url, branches)
//	client.Sync.SyncAll(ctx)
type Client struct {
	Repositories *service.RepositoryService
	Sync         *service.RepositorySynchronizer

	db     database.Database
	logger *slog.Logger
	closed atomic.Bool
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dbURL == "" {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.New(log.FormatPretty, "info")
	}

	dataDir, err := prepareDir(cfg.dataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}
	cloneDir := cfg.cloneDir
	if cloneDir == "" {
		cloneDir = filepath.Join(dataDir, "clones")
	}
	if _, err := prepareDir(cloneDir); err != nil {
		return nil, fmt.Errorf("prepare clone dir: %w", err)
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}
	if err := persistence.CheckVersion(ctx, db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(err, errClose)
	}

	stores := func(conn database.Conn) service.Stores {
		s := persistence.NewStores(conn)
		return service.Stores{
			Repositories: s.Repositories,
			Authors:      s.Authors,
			Branches:     s.Branches,
			Tags:         s.Tags,
			Languages:    s.Languages,
			Files:        s.Files,
			Paths:        s.Paths,
			FilePaths:    s.FilePaths,
			Revisions:    s.Revisions,
			Changes:      s.Changes,
			Locs:         s.Locs,
		}
	}

	clients := cfg.clients
	if clients == nil {
		clients = git.NewFactory(cloneDir, logger)
	}

	classifier := cfg.classifier
	if classifier == nil {
		classifier = cloc.NewClassifier()
	}

	importer := service.NewRevisionImporter(db, stores, classifier, logger)
	branchSync := service.NewBranchSynchronizer(db, stores, importer, logger)

	return &Client{
		Repositories: service.NewRepositoryService(db, stores, clients, logger),
		Sync:         service.NewRepositorySynchronizer(db, stores, branchSync, clients, logger),
		db:           db,
		logger:       logger,
	}, nil
}

// Close releases the database connection. Safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.db.Close()
}

func prepareDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.New("empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
