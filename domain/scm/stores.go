package scm

import "context"

// RepositoryStore persists registered repositories.
type RepositoryStore interface {
	Find(ctx context.Context, options ...Option) ([]Repository, error)
	FindOne(ctx context.Context, options ...Option) (Repository, error)
	Save(ctx context.Context, repo Repository) (Repository, error)
	Delete(ctx context.Context, repo Repository) error
}

// IdentityStore is the shape shared by every deduplicated reference table:
// a unique-key lookup plus an insert that fails on duplicates. Create never
// upserts: the lookup-or-create retry protocol depends on the insert
// surfacing a duplicate-key error when it loses a race.
type IdentityStore[T any] interface {
	FindOne(ctx context.Context, options ...Option) (T, error)
	Create(ctx context.Context, entity T) (T, error)
}

// Identity table stores.
type (
	AuthorStore   interface{ IdentityStore[Author] }
	BranchStore   interface{ IdentityStore[Branch] }
	TagStore      interface{ IdentityStore[Tag] }
	LanguageStore interface{ IdentityStore[Language] }
	FileStore     interface{ IdentityStore[File] }
	PathStore     interface{ IdentityStore[Path] }
	FilePathStore interface{ IdentityStore[FilePath] }
)

// RevisionStore persists imported revisions.
type RevisionStore interface {
	FindOne(ctx context.Context, options ...Option) (Revision, error)
	Create(ctx context.Context, rev Revision) (Revision, error)

	// MaxNumber returns the highest imported revision number for a
	// repository. ok is false when no revision has been imported yet.
	MaxNumber(ctx context.Context, repositoryID int64) (number int64, ok bool, err error)
}

// ChangeStore persists per-revision file changes.
type ChangeStore interface {
	Find(ctx context.Context, options ...Option) ([]Change, error)
	FindOne(ctx context.Context, options ...Option) (Change, error)
	Create(ctx context.Context, change Change) (Change, error)
}

// LocStore persists per-language line counts for changes.
type LocStore interface {
	Find(ctx context.Context, options ...Option) ([]Loc, error)
	Create(ctx context.Context, loc Loc) (Loc, error)
}
