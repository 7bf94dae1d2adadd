package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/internal/database"
)

func seedRevisionFixtures(t *testing.T, db database.Database) (repoID, authorID int64) {
	t.Helper()
	ctx := context.Background()

	repo, err := NewRepositoryStore(db).Save(ctx, scm.NewRepository(
		scm.KindSVN, "svn://example.org/project", []string{"trunk"},
	))
	require.NoError(t, err)

	author, err := NewAuthorStore(db).Create(ctx, scm.NewAuthor("alice"))
	require.NoError(t, err)

	return repo.ID(), author.ID()
}

func TestRevisionStore_CreateAndFindOne(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repoID, authorID := seedRevisionFixtures(t, db)
	store := NewRevisionStore(db)

	committedAt := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := store.Create(ctx, scm.NewRevision(1, repoID, authorID, "initial import", committedAt))
	require.NoError(t, err)
	assert.NotZero(t, created.ID())

	found, err := store.FindOne(ctx, scm.WithRevisionNumber(1), scm.WithRepositoryID(repoID))
	require.NoError(t, err)
	assert.Equal(t, created.ID(), found.ID())
	assert.Equal(t, "initial import", found.Message())
	assert.True(t, found.CommittedAt().Equal(committedAt))
}

func TestRevisionStore_DuplicateNumberPerRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repoID, authorID := seedRevisionFixtures(t, db)
	store := NewRevisionStore(db)

	_, err := store.Create(ctx, scm.NewRevision(1, repoID, authorID, "first", time.Now()))
	require.NoError(t, err)

	_, err = store.Create(ctx, scm.NewRevision(1, repoID, authorID, "again", time.Now()))
	require.Error(t, err)
	assert.True(t, database.IsDuplicateKey(err))

	// The same number under another repository is fine.
	other, err := NewRepositoryStore(db).Save(ctx, scm.NewRepository(
		scm.KindSVN, "svn://example.org/other", nil,
	))
	require.NoError(t, err)
	_, err = store.Create(ctx, scm.NewRevision(1, other.ID(), authorID, "first", time.Now()))
	assert.NoError(t, err)
}

func TestRevisionStore_MaxNumber(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repoID, authorID := seedRevisionFixtures(t, db)
	store := NewRevisionStore(db)

	_, ok, err := store.MaxNumber(ctx, repoID)
	require.NoError(t, err)
	assert.False(t, ok, "empty repository should report no max")

	for n := int64(1); n <= 3; n++ {
		_, err := store.Create(ctx, scm.NewRevision(n, repoID, authorID, "rev", time.Now()))
		require.NoError(t, err)
	}

	max, ok, err := store.MaxNumber(ctx, repoID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), max)
}
