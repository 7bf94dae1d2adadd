package service

import (
	"context"
	"log/slog"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/domain/service"
	"github.com/xray4scm/xray/internal/database"
)

// BranchSynchronizer brings one branch of a repository up to date. Sync
// picks up where the previous run stopped: revisions up to the highest
// imported number are done (each was committed atomically), so the next
// run starts one past it.
type BranchSynchronizer struct {
	db       database.Database
	stores   StoresFactory
	importer *RevisionImporter
	logger   *slog.Logger
}

func NewBranchSynchronizer(db database.Database, stores StoresFactory, importer *RevisionImporter, logger *slog.Logger) *BranchSynchronizer {
	return &BranchSynchronizer{
		db:       db,
		stores:   stores,
		importer: importer,
		logger:   logger.With("component", "sync"),
	}
}

// Sync imports the pending revisions of branch. It returns
// scm.ErrNoRevisions when the branch has no history at all and
// scm.ErrUpToDate when everything is already imported; both are statuses,
// not failures. Any other error aborted the run partway, leaving already
// imported revisions in place.
func (s *BranchSynchronizer) Sync(ctx context.Context, repo scm.Repository, client service.Client, branch string) error {
	client.SetBranch(branch)

	first, last, err := client.RevisionRange(ctx)
	if err != nil {
		return err
	}

	stores := s.stores(s.db)
	imported, ok, err := stores.Revisions.MaxNumber(ctx, repo.ID())
	if err != nil {
		return err
	}

	start := first
	if ok {
		start = imported + 1
	} else if first == 0 && last == 0 {
		return scm.ErrNoRevisions
	}
	if start > last {
		return scm.ErrUpToDate
	}

	s.logger.InfoContext(ctx, "syncing branch",
		"url", repo.URL(), "branch", branch, "from", start, "to", last)

	iter := client.Revisions(ctx, start, last)
	for {
		rec, ok := iter.Next(ctx)
		if !ok {
			break
		}
		if _, valid := rec.Date(); !valid {
			// Tombstone log entries carry no commit date and nothing
			// worth recording.
			s.logger.WarnContext(ctx, "skipping revision without date",
				"url", repo.URL(), "revision", rec.Number())
			continue
		}
		if err := s.importer.Import(ctx, repo, rec); err != nil {
			return err
		}
		s.logger.DebugContext(ctx, "imported revision",
			"url", repo.URL(), "revision", rec.Number())
	}
	return iter.Err()
}
