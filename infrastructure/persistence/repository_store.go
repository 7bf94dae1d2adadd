package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/xray4scm/xray/domain/scm"
	"github.com/xray4scm/xray/internal/database"
)

// RepositoryStore implements scm.RepositoryStore using GORM. Configured
// branch names live in a child table and are attached on every read.
type RepositoryStore struct {
	database.Repository[scm.Repository, RepositoryModel]
}

// NewRepositoryStore creates a new RepositoryStore bound to conn.
func NewRepositoryStore(conn database.Conn) RepositoryStore {
	return RepositoryStore{
		Repository: database.NewRepository[scm.Repository, RepositoryModel](conn, RepositoryMapper{}, "repository"),
	}
}

// Find retrieves repositories matching the given options, with their
// configured branch lists attached.
func (s RepositoryStore) Find(ctx context.Context, options ...scm.Option) ([]scm.Repository, error) {
	repos, err := s.Repository.Find(ctx, options...)
	if err != nil {
		return nil, err
	}
	for i, repo := range repos {
		withBranches, err := s.attachBranches(ctx, repo)
		if err != nil {
			return nil, err
		}
		repos[i] = withBranches
	}
	return repos, nil
}

// FindOne retrieves a single repository with its branch list attached.
func (s RepositoryStore) FindOne(ctx context.Context, options ...scm.Option) (scm.Repository, error) {
	repo, err := s.Repository.FindOne(ctx, options...)
	if err != nil {
		return scm.Repository{}, err
	}
	return s.attachBranches(ctx, repo)
}

// Save creates or updates a repository and reconciles its branch rows.
func (s RepositoryStore) Save(ctx context.Context, repo scm.Repository) (scm.Repository, error) {
	model := s.Mapper().ToModel(repo)
	model.UpdatedAt = time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = model.UpdatedAt
	}

	if result := s.DB(ctx).Save(&model); result.Error != nil {
		return scm.Repository{}, fmt.Errorf("save repository: %w", result.Error)
	}

	if err := s.saveBranches(ctx, model.ID, repo.Branches()); err != nil {
		return scm.Repository{}, err
	}

	return s.attachBranches(ctx, s.Mapper().ToDomain(model))
}

// Delete removes a repository and its branch configuration.
func (s RepositoryStore) Delete(ctx context.Context, repo scm.Repository) error {
	if result := s.DB(ctx).Where("repository_id = ?", repo.ID()).Delete(&RepositoryBranchModel{}); result.Error != nil {
		return fmt.Errorf("delete repository branches: %w", result.Error)
	}
	if result := s.DB(ctx).Where("id = ?", repo.ID()).Delete(&RepositoryModel{}); result.Error != nil {
		return fmt.Errorf("delete repository: %w", result.Error)
	}
	return nil
}

func (s RepositoryStore) attachBranches(ctx context.Context, repo scm.Repository) (scm.Repository, error) {
	var rows []RepositoryBranchModel
	result := s.DB(ctx).
		Where("repository_id = ?", repo.ID()).
		Order("name ASC").
		Find(&rows)
	if result.Error != nil {
		return scm.Repository{}, fmt.Errorf("find repository branches: %w", result.Error)
	}

	branches := make([]string, len(rows))
	for i, row := range rows {
		branches[i] = row.Name
	}

	return scm.ReconstructRepository(
		repo.ID(),
		repo.Kind(),
		repo.URL(),
		repo.Options(),
		branches,
		repo.LastUpdatedAt(),
		repo.CreatedAt(),
	), nil
}

func (s RepositoryStore) saveBranches(ctx context.Context, repositoryID int64, branches []string) error {
	if result := s.DB(ctx).Where("repository_id = ?", repositoryID).Delete(&RepositoryBranchModel{}); result.Error != nil {
		return fmt.Errorf("reset repository branches: %w", result.Error)
	}
	if len(branches) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]RepositoryBranchModel, len(branches))
	for i, name := range branches {
		rows[i] = RepositoryBranchModel{
			RepositoryID: repositoryID,
			Name:         name,
			CreatedAt:    now,
		}
	}
	if result := s.DB(ctx).Create(&rows); result.Error != nil {
		return fmt.Errorf("save repository branches: %w", result.Error)
	}
	return nil
}
