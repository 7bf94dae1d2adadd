package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xray4scm/xray/internal/database"
)

func TestAutoMigrate_StampsVersionOnce(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, AutoMigrate(db))
	require.NoError(t, CheckVersion(ctx, db))

	// Running again must not add a second version row.
	require.NoError(t, AutoMigrate(db))

	var count int64
	require.NoError(t, db.Session(ctx).Model(&MetadataModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCheckVersion_Mismatch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, db.Session(ctx).
		Model(&MetadataModel{}).
		Where("version = ?", SchemaVersion).
		Update("version", "0").Error)

	err := CheckVersion(ctx, db)
	assert.ErrorIs(t, err, ErrSchemaVersion)
}

func TestCheckVersion_NoVersionRecorded(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, db.Session(ctx).
		Where("1 = 1").
		Delete(&MetadataModel{}).Error)

	err := CheckVersion(ctx, db)
	assert.ErrorIs(t, err, ErrSchemaVersion)
}
