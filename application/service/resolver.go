package service

import (
	"context"
	"errors"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/internal/database"
)

// IdentityResolver maps names observed in revision history onto rows of
// the shared dictionaries (authors, branches, tags, languages, files,
// paths). Lookups come first; a miss inserts, and an insert that loses a
// race to a concurrent writer falls back to one final lookup.
type IdentityResolver struct {
	stores Stores
}

func NewIdentityResolver(stores Stores) *IdentityResolver {
	return &IdentityResolver{stores: stores}
}

func resolve[T any](ctx context.Context, store scm.IdentityStore[T], fresh T, lookup ...scm.Option) (T, error) {
	found, err := store.FindOne(ctx, lookup...)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		var zero T
		return zero, err
	}
	created, err := store.Create(ctx, fresh)
	if err == nil {
		return created, nil
	}
	if !database.IsDuplicateKey(err) {
		var zero T
		return zero, err
	}
	// Another writer inserted the same name between our lookup and
	// insert. The row exists now, so the retry must succeed.
	return store.FindOne(ctx, lookup...)
}

// Author resolves a committer name, substituting the placeholder for
// empty names.
func (r *IdentityResolver) Author(ctx context.Context, name string) (scm.Author, error) {
	author := scm.NewAuthor(name)
	return resolve(ctx, r.stores.Authors, author, scm.WithName(author.Name()))
}

func (r *IdentityResolver) Branch(ctx context.Context, name string) (scm.Branch, error) {
	return resolve(ctx, r.stores.Branches, scm.NewBranch(name), scm.WithName(name))
}

func (r *IdentityResolver) Tag(ctx context.Context, name string) (scm.Tag, error) {
	return resolve(ctx, r.stores.Tags, scm.NewTag(name), scm.WithName(name))
}

func (r *IdentityResolver) Language(ctx context.Context, name string) (scm.Language, error) {
	return resolve(ctx, r.stores.Languages, scm.NewLanguage(name), scm.WithName(name))
}

// Path resolves a full repository path into its file/path/file-path
// triple, creating whichever parts are missing.
func (r *IdentityResolver) Path(ctx context.Context, fullPath string) (scm.FilePath, error) {
	directory, basename := scm.SplitPath(fullPath)

	file, err := resolve(ctx, r.stores.Files, scm.NewFile(basename), scm.WithName(basename))
	if err != nil {
		return scm.FilePath{}, err
	}
	path, err := resolve(ctx, r.stores.Paths, scm.NewPath(directory), scm.WithDirectory(directory))
	if err != nil {
		return scm.FilePath{}, err
	}
	return resolve(ctx, r.stores.FilePaths,
		scm.NewFilePath(file.ID(), path.ID()),
		scm.WithFileID(file.ID()), scm.WithPathID(path.ID()))
}
