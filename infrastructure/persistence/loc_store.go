package persistence

import (
	"context"
	"fmt"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/internal/database"
)

// LocStore implements scm.LocStore using GORM.
type LocStore struct {
	database.Repository[scm.Loc, LocModel]
}

// NewLocStore creates a new LocStore bound to conn.
func NewLocStore(conn database.Conn) LocStore {
	return LocStore{
		Repository: database.NewRepository[scm.Loc, LocModel](conn, LocMapper{}, "loc"),
	}
}

// Create inserts a line-count row for one (language, change) pair.
func (s LocStore) Create(ctx context.Context, loc scm.Loc) (scm.Loc, error) {
	model := s.Mapper().ToModel(loc)
	if result := s.DB(ctx).Create(&model); result.Error != nil {
		return scm.Loc{}, fmt.Errorf("create loc: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}
