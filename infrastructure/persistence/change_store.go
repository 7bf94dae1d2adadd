package persistence

import (
	"context"
	"fmt"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/internal/database"
)

// ChangeStore implements scm.ChangeStore using GORM.
type ChangeStore struct {
	database.Repository[scm.Change, ChangeModel]
}

// NewChangeStore creates a new ChangeStore bound to conn.
func NewChangeStore(conn database.Conn) ChangeStore {
	return ChangeStore{
		Repository: database.NewRepository[scm.Change, ChangeModel](conn, ChangeMapper{}, "change"),
	}
}

// Create inserts a change row. Plain INSERT so duplicate (revision,
// file path) pairs surface as conflicts for the retry protocol.
func (s ChangeStore) Create(ctx context.Context, change scm.Change) (scm.Change, error) {
	model := s.Mapper().ToModel(change)
	if result := s.DB(ctx).Create(&model); result.Error != nil {
		return scm.Change{}, fmt.Errorf("create change: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}
