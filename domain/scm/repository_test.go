package scm

import (
	"testing"
	"time"
)

func TestRepository_BranchManagement(t *testing.T) {
	repo := NewRepository(KindSVN, "svn://example.org/project", []string{"trunk"})

	if !repo.HasBranch("trunk") {
		t.Error("expected trunk to be configured")
	}
	if repo.HasBranch("stable") {
		t.Error("stable should not be configured yet")
	}

	repo = repo.WithBranch("stable")
	if got := repo.Branches(); len(got) != 2 || got[1] != "stable" {
		t.Errorf("Branches() = %v, want [trunk stable]", got)
	}

	// Adding twice is a no-op.
	repo = repo.WithBranch("stable")
	if got := len(repo.Branches()); got != 2 {
		t.Errorf("expected 2 branches after duplicate add, got %d", got)
	}

	repo = repo.WithoutBranch("trunk")
	if repo.HasBranch("trunk") {
		t.Error("trunk should have been removed")
	}
	if !repo.HasBranch("stable") {
		t.Error("stable should remain")
	}
}

func TestRepository_BranchesReturnsCopy(t *testing.T) {
	repo := NewRepository(KindGit, "https://example.org/p.git", []string{"main"})

	branches := repo.Branches()
	branches[0] = "mutated"

	if got := repo.Branches()[0]; got != "main" {
		t.Errorf("internal branch list mutated: %v", got)
	}
}

func TestRepository_MarkUpdated(t *testing.T) {
	repo := NewRepository(KindGit, "https://example.org/p.git", nil)
	if !repo.LastUpdatedAt().IsZero() {
		t.Error("new repository should have zero LastUpdatedAt")
	}

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stamped := repo.MarkUpdated(at)

	if !stamped.LastUpdatedAt().Equal(at) {
		t.Errorf("LastUpdatedAt() = %v, want %v", stamped.LastUpdatedAt(), at)
	}
	if !repo.LastUpdatedAt().IsZero() {
		t.Error("MarkUpdated should not mutate the receiver")
	}
}

func TestRepository_Options(t *testing.T) {
	repo := ReconstructRepository(
		7, KindSVN, "svn://example.org/project",
		map[string]string{"trunk": "/trunk"},
		[]string{"trunk"},
		time.Time{}, time.Now(),
	)

	if got := repo.Option("trunk"); got != "/trunk" {
		t.Errorf("Option(trunk) = %q", got)
	}
	if got := repo.Option("missing"); got != "" {
		t.Errorf("Option(missing) = %q, want empty", got)
	}

	opts := repo.Options()
	opts["trunk"] = "/other"
	if got := repo.Option("trunk"); got != "/trunk" {
		t.Errorf("internal options mutated: %q", got)
	}
}
