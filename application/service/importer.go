package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/domain/service"
	"github.com/xray4scm/xray/internal/database"
)

// RevisionImporter persists one revision log entry: the revision row, its
// changes, and per-language line counts for text file contents. All writes
// of one revision share a single transaction, so a failure mid-revision
// leaves no partial rows behind and the next run re-imports the revision
// from scratch.
type RevisionImporter struct {
	db         database.Database
	stores     StoresFactory
	classifier service.Classifier
	logger     *slog.Logger
}

func NewRevisionImporter(db database.Database, stores StoresFactory, classifier service.Classifier, logger *slog.Logger) *RevisionImporter {
	return &RevisionImporter{
		db:         db,
		stores:     stores,
		classifier: classifier,
		logger:     logger.With("component", "importer"),
	}
}

// Import records rec for repo. Re-importing an already persisted revision
// is a no-op for rows that exist and fills in any that are missing.
func (i *RevisionImporter) Import(ctx context.Context, repo scm.Repository, rec service.RevisionRecord) error {
	return database.WithTransaction(ctx, i.db, func(tx *database.Transaction) error {
		stores := i.stores(tx)
		resolver := NewIdentityResolver(stores)

		rev, err := i.ensureRevision(ctx, stores, resolver, repo, rec)
		if err != nil {
			return err
		}

		changes := rec.Changes(ctx)
		for {
			cr, ok := changes.Next(ctx)
			if !ok {
				break
			}
			if err := i.importChange(ctx, stores, resolver, rev, cr); err != nil {
				return fmt.Errorf("revision %d, path %s: %w", rec.Number(), cr.Path(), err)
			}
		}
		return changes.Err()
	})
}

func (i *RevisionImporter) ensureRevision(ctx context.Context, stores Stores, resolver *IdentityResolver, repo scm.Repository, rec service.RevisionRecord) (scm.Revision, error) {
	author, err := resolver.Author(ctx, rec.Author())
	if err != nil {
		return scm.Revision{}, err
	}

	committedAt, valid := rec.Date()
	if !valid {
		return scm.Revision{}, fmt.Errorf("revision %d has no commit date", rec.Number())
	}

	rev, err := stores.Revisions.Create(ctx,
		scm.NewRevision(rec.Number(), repo.ID(), author.ID(), rec.Message(), committedAt))
	if err == nil {
		return rev, nil
	}
	if !database.IsDuplicateKey(err) {
		return scm.Revision{}, err
	}
	// Already imported by an earlier, partially completed run or a
	// concurrent one. Reuse the existing row.
	return stores.Revisions.FindOne(ctx,
		scm.WithRevisionNumber(rec.Number()), scm.WithRepositoryID(repo.ID()))
}

func (i *RevisionImporter) importChange(ctx context.Context, stores Stores, resolver *IdentityResolver, rev scm.Revision, cr service.ChangeRecord) error {
	changeType, err := scm.ParseChangeType(cr.Type())
	if err != nil {
		return err
	}

	var branchID, tagID int64
	if name := cr.Branch(); name != "" {
		branch, err := resolver.Branch(ctx, name)
		if err != nil {
			return err
		}
		branchID = branch.ID()
	}
	if name := cr.Tag(); name != "" {
		tag, err := resolver.Tag(ctx, name)
		if err != nil {
			return err
		}
		tagID = tag.ID()
	}

	filePath, err := resolver.Path(ctx, cr.Path())
	if err != nil {
		return err
	}

	change, err := stores.Changes.Create(ctx,
		scm.NewChange(rev.ID(), filePath.ID(), changeType, branchID, tagID))
	if err != nil {
		if !database.IsDuplicateKey(err) {
			return err
		}
		change, err = stores.Changes.FindOne(ctx,
			scm.WithRevisionID(rev.ID()), scm.WithFilePathID(filePath.ID()))
		if err != nil {
			return err
		}
	}

	// Deleted paths have no content at this revision, so there is nothing
	// to count.
	if changeType.IsDelete() {
		return nil
	}

	return i.countLines(ctx, stores, resolver, change, cr)
}

func (i *RevisionImporter) countLines(ctx context.Context, stores Stores, resolver *IdentityResolver, change scm.Change, cr service.ChangeRecord) error {
	isDir, err := cr.IsDirectory(ctx)
	if err != nil {
		return err
	}
	if isDir {
		return nil
	}
	isBinary, err := cr.IsBinary(ctx)
	if err != nil {
		return err
	}
	if isBinary {
		return nil
	}

	content, err := cr.Content(ctx)
	if err != nil {
		return err
	}

	_, basename := scm.SplitPath(cr.Path())
	counts, err := i.classifier.Classify(basename, content)
	if err != nil {
		// The change row is still recorded; only the line counts are
		// missing for content the classifier cannot make sense of.
		i.logger.WarnContext(ctx, "skipping line count", "path", cr.Path(), "error", err)
		return nil
	}

	for _, count := range counts {
		language, err := resolver.Language(ctx, count.Language)
		if err != nil {
			return err
		}
		_, err = stores.Locs.Create(ctx,
			scm.NewLoc(language.ID(), change.ID(), count.Code, count.Comments, count.Blanks))
		if err != nil && !database.IsDuplicateKey(err) {
			return err
		}
	}
	return nil
}
