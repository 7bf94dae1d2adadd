package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/domain/service"
	"github.com/xray4scm/xray/internal/database"
	"github.com/xray4scm/xray/internal/testdb"
)

func newTestRepositoryService(t *testing.T, client *fakeClient) (database.Database, *RepositoryService) {
	t.Helper()
	db := testdb.New(t)
	clients := ClientFactoryFunc(func(scm.Repository) (service.Client, error) {
		return client, nil
	})
	return db, NewRepositoryService(db, testStoresFactory, clients, testLogger())
}

func TestRepositoryService_AddAndList(t *testing.T) {
	_, svc := newTestRepositoryService(t, &fakeClient{exists: true})
	ctx := context.Background()

	repo, err := svc.Add(ctx, scm.KindSVN, "svn://example.org/project", []string{"trunk"})
	require.NoError(t, err)
	require.NotZero(t, repo.ID())
	require.Equal(t, []string{"trunk"}, repo.Branches())

	repos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, repos, 1)
	require.Equal(t, "svn://example.org/project", repos[0].URL())
}

func TestRepositoryService_AddRejectsUnreachable(t *testing.T) {
	_, svc := newTestRepositoryService(t, &fakeClient{exists: false})

	_, err := svc.Add(context.Background(), scm.KindSVN, "svn://example.org/missing", nil)
	var accessErr *scm.AccessError
	require.ErrorAs(t, err, &accessErr)

	repos, listErr := svc.List(context.Background())
	require.NoError(t, listErr)
	require.Empty(t, repos)
}

func TestRepositoryService_AddRejectsDuplicates(t *testing.T) {
	_, svc := newTestRepositoryService(t, &fakeClient{exists: true})
	ctx := context.Background()

	_, err := svc.Add(ctx, scm.KindSVN, "svn://example.org/project", nil)
	require.NoError(t, err)

	_, err = svc.Add(ctx, scm.KindSVN, "svn://example.org/project", nil)
	require.ErrorIs(t, err, ErrRepositoryExists)
}

func TestRepositoryService_Remove(t *testing.T) {
	_, svc := newTestRepositoryService(t, &fakeClient{exists: true})
	ctx := context.Background()

	_, err := svc.Add(ctx, scm.KindSVN, "svn://example.org/project", []string{"trunk"})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, "svn://example.org/project"))

	repos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, repos)

	err = svc.Remove(ctx, "svn://example.org/project")
	require.ErrorIs(t, err, ErrRepositoryNotFound)
}

func TestRepositoryService_BranchManagement(t *testing.T) {
	_, svc := newTestRepositoryService(t, &fakeClient{exists: true})
	ctx := context.Background()

	_, err := svc.Add(ctx, scm.KindSVN, "svn://example.org/project", []string{"trunk"})
	require.NoError(t, err)

	repo, err := svc.AddBranch(ctx, "svn://example.org/project", "stable")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"trunk", "stable"}, repo.Branches())

	// Adding twice is a no-op.
	repo, err = svc.AddBranch(ctx, "svn://example.org/project", "stable")
	require.NoError(t, err)
	require.Len(t, repo.Branches(), 2)

	repo, err = svc.RemoveBranch(ctx, "svn://example.org/project", "trunk")
	require.NoError(t, err)
	require.Equal(t, []string{"stable"}, repo.Branches())
}

func TestRepositoryService_AddPropagatesProbeError(t *testing.T) {
	probeErr := scm.NewAccessError("svn://example.org/project", errors.New("authorization failed"))
	_, svc := newTestRepositoryService(t, &fakeClient{existsErr: probeErr})

	_, err := svc.Add(context.Background(), scm.KindSVN, "svn://example.org/project", nil)
	require.ErrorIs(t, err, probeErr)
}
