package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/internal/database"
)

// RevisionStore implements scm.RevisionStore using GORM.
type RevisionStore struct {
	database.Repository[scm.Revision, RevisionModel]
}

// NewRevisionStore creates a new RevisionStore bound to conn.
func NewRevisionStore(conn database.Conn) RevisionStore {
	return RevisionStore{
		Repository: database.NewRepository[scm.Revision, RevisionModel](conn, RevisionMapper{}, "revision"),
	}
}

// Create inserts a revision row. Plain INSERT: the importer relies on
// duplicate-key errors to detect re-imports of an already-committed
// revision number.
func (s RevisionStore) Create(ctx context.Context, rev scm.Revision) (scm.Revision, error) {
	model := s.Mapper().ToModel(rev)
	model.CreatedAt = time.Now()

	if result := s.DB(ctx).Create(&model); result.Error != nil {
		return scm.Revision{}, fmt.Errorf("create revision: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// MaxNumber returns the highest imported revision number for a repository,
// with ok=false when nothing has been imported yet.
func (s RevisionStore) MaxNumber(ctx context.Context, repositoryID int64) (int64, bool, error) {
	var max sql.NullInt64
	result := s.DB(ctx).
		Model(&RevisionModel{}).
		Where("repository_id = ?", repositoryID).
		Select("MAX(number)").
		Scan(&max)
	if result.Error != nil {
		return 0, false, fmt.Errorf("max revision number: %w", result.Error)
	}
	if !max.Valid {
		return 0, false, nil
	}
	return max.Int64, true, nil
}
