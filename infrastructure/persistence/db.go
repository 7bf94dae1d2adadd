// Package persistence provides GORM-backed storage for the scm domain.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/xray4scm/xray/internal/database"
	"gorm.io/gorm"
)

// ErrSchemaVersion indicates the database was created by an incompatible
// schema generation.
var ErrSchemaVersion = errors.New("invalid database schema version")

func allModels() []any {
	return []any{
		&MetadataModel{},
		&RepositoryModel{},
		&RepositoryBranchModel{},
		&AuthorModel{},
		&BranchModel{},
		&TagModel{},
		&LanguageModel{},
		&FileModel{},
		&PathModel{},
		&FilePathModel{},
		&RevisionModel{},
		&ChangeModel{},
		&LocModel{},
	}
}

// AutoMigrate runs GORM auto migration for all models and stamps the
// schema version on first creation.
func AutoMigrate(db database.Database) error {
	if err := db.Session(context.Background()).AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return stampVersion(db)
}

func stampVersion(db database.Database) error {
	ctx := context.Background()
	var count int64
	if err := db.Session(ctx).Model(&MetadataModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count metadata: %w", err)
	}
	if count > 0 {
		return nil
	}
	row := MetadataModel{Version: SchemaVersion}
	if err := db.Session(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("stamp schema version: %w", err)
	}
	return nil
}

// CheckVersion verifies the stored schema version matches this build.
func CheckVersion(ctx context.Context, db database.Database) error {
	var row MetadataModel
	err := db.Session(ctx).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no version recorded", ErrSchemaVersion)
		}
		return fmt.Errorf("read schema version: %w", err)
	}
	if row.Version != SchemaVersion {
		return fmt.Errorf("%w: have %s, want %s", ErrSchemaVersion, row.Version, SchemaVersion)
	}
	return nil
}
