package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/domain/service"
	"github.com/xray4scm/xray/internal/database"
)

func newTestRepoSync(t *testing.T, client service.Client) (database.Database, *RepositorySynchronizer) {
	t.Helper()
	db, importer := newTestImporter(t, &lineClassifier{})
	branches := NewBranchSynchronizer(db, testStoresFactory, importer, testLogger())
	clients := ClientFactoryFunc(func(scm.Repository) (service.Client, error) {
		return client, nil
	})
	return db, NewRepositorySynchronizer(db, testStoresFactory, branches, clients, testLogger())
}

func TestRepositorySynchronizer_StampsAfterSuccess(t *testing.T) {
	client := &fakeClient{revisions: simpleRevisions(1, 3)}
	db, sync := newTestRepoSync(t, client)
	repo := newTestRepository(t, db, "trunk")
	ctx := context.Background()

	require.NoError(t, sync.Sync(ctx, repo))

	stored, err := testStoresFactory(db).Repositories.FindOne(ctx, scm.WithID(repo.ID()))
	require.NoError(t, err)
	require.False(t, stored.LastUpdatedAt().IsZero())
}

func TestRepositorySynchronizer_ToleratesEmptyAndUpToDateBranches(t *testing.T) {
	// No revisions at all: every branch reports ErrNoRevisions, which is a
	// status rather than a failure, so the repository is still stamped.
	client := &fakeClient{}
	db, sync := newTestRepoSync(t, client)
	repo := newTestRepository(t, db, "trunk", "stable")
	ctx := context.Background()

	require.NoError(t, sync.Sync(ctx, repo))

	stored, err := testStoresFactory(db).Repositories.FindOne(ctx, scm.WithID(repo.ID()))
	require.NoError(t, err)
	require.False(t, stored.LastUpdatedAt().IsZero())
}

func TestRepositorySynchronizer_FailureSkipsStamp(t *testing.T) {
	client := &fakeClient{rangeErr: errors.New("svn: connection refused")}
	db, sync := newTestRepoSync(t, client)
	repo := newTestRepository(t, db, "trunk")
	ctx := context.Background()

	require.Error(t, sync.Sync(ctx, repo))

	stored, err := testStoresFactory(db).Repositories.FindOne(ctx, scm.WithID(repo.ID()))
	require.NoError(t, err)
	require.True(t, stored.LastUpdatedAt().IsZero())
}

func TestRepositorySynchronizer_SyncAll(t *testing.T) {
	client := &fakeClient{revisions: simpleRevisions(1, 2)}
	db, sync := newTestRepoSync(t, client)
	ctx := context.Background()

	stores := testStoresFactory(db)
	_, err := stores.Repositories.Save(ctx,
		scm.NewRepository(scm.KindSVN, "svn://example.org/a", []string{"trunk"}))
	require.NoError(t, err)
	_, err = stores.Repositories.Save(ctx,
		scm.NewRepository(scm.KindGit, "https://example.org/b.git", []string{"main"}))
	require.NoError(t, err)

	require.NoError(t, sync.SyncAll(ctx))

	repos, err := stores.Repositories.Find(ctx)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	for _, repo := range repos {
		require.False(t, repo.LastUpdatedAt().IsZero())
	}
}
