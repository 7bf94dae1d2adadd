package persistence

import (
	"context"
	"fmt"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/internal/database"
)

// identityStore is the shared implementation behind every deduplicated
// reference table. Create deliberately uses a plain INSERT: when two
// resolutions race on the same key, the loser must see the duplicate-key
// error so the lookup-or-create protocol can re-run its lookup. An upsert
// here would mask the race and break idempotence accounting.
type identityStore[D any, E any] struct {
	database.Repository[D, E]
}

// Create inserts a new identity row.
func (s identityStore[D, E]) Create(ctx context.Context, entity D) (D, error) {
	model := s.Mapper().ToModel(entity)
	if result := s.DB(ctx).Create(&model); result.Error != nil {
		var zero D
		return zero, fmt.Errorf("create %s: %w", s.Label(), result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// AuthorStore implements scm.AuthorStore using GORM.
type AuthorStore struct {
	identityStore[scm.Author, AuthorModel]
}

// NewAuthorStore creates a new AuthorStore bound to conn.
func NewAuthorStore(conn database.Conn) AuthorStore {
	return AuthorStore{identityStore[scm.Author, AuthorModel]{
		database.NewRepository[scm.Author, AuthorModel](conn, AuthorMapper{}, "author"),
	}}
}

// BranchStore implements scm.BranchStore using GORM.
type BranchStore struct {
	identityStore[scm.Branch, BranchModel]
}

// NewBranchStore creates a new BranchStore bound to conn.
func NewBranchStore(conn database.Conn) BranchStore {
	return BranchStore{identityStore[scm.Branch, BranchModel]{
		database.NewRepository[scm.Branch, BranchModel](conn, BranchMapper{}, "branch"),
	}}
}

// TagStore implements scm.TagStore using GORM.
type TagStore struct {
	identityStore[scm.Tag, TagModel]
}

// NewTagStore creates a new TagStore bound to conn.
func NewTagStore(conn database.Conn) TagStore {
	return TagStore{identityStore[scm.Tag, TagModel]{
		database.NewRepository[scm.Tag, TagModel](conn, TagMapper{}, "tag"),
	}}
}

// LanguageStore implements scm.LanguageStore using GORM.
type LanguageStore struct {
	identityStore[scm.Language, LanguageModel]
}

// NewLanguageStore creates a new LanguageStore bound to conn.
func NewLanguageStore(conn database.Conn) LanguageStore {
	return LanguageStore{identityStore[scm.Language, LanguageModel]{
		database.NewRepository[scm.Language, LanguageModel](conn, LanguageMapper{}, "language"),
	}}
}

// FileStore implements scm.FileStore using GORM.
type FileStore struct {
	identityStore[scm.File, FileModel]
}

// NewFileStore creates a new FileStore bound to conn.
func NewFileStore(conn database.Conn) FileStore {
	return FileStore{identityStore[scm.File, FileModel]{
		database.NewRepository[scm.File, FileModel](conn, FileMapper{}, "file"),
	}}
}

// PathStore implements scm.PathStore using GORM.
type PathStore struct {
	identityStore[scm.Path, PathModel]
}

// NewPathStore creates a new PathStore bound to conn.
func NewPathStore(conn database.Conn) PathStore {
	return PathStore{identityStore[scm.Path, PathModel]{
		database.NewRepository[scm.Path, PathModel](conn, PathMapper{}, "path"),
	}}
}

// FilePathStore implements scm.FilePathStore using GORM.
type FilePathStore struct {
	identityStore[scm.FilePath, FilePathModel]
}

// NewFilePathStore creates a new FilePathStore bound to conn.
func NewFilePathStore(conn database.Conn) FilePathStore {
	return FilePathStore{identityStore[scm.FilePath, FilePathModel]{
		database.NewRepository[scm.FilePath, FilePathModel](conn, FilePathMapper{}, "file path"),
	}}
}
