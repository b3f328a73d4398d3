package professional

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/repos/testutil"
	types "github.com/oficiolab/promarket-backend/internal/domain"
)

func TestPortfolioProjectRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewPortfolioProjectRepo(db, testutil.Logger(t))

	owner := testutil.SeedProfessional(t, ctx, tx, "Owner")

	rated := testutil.SeedProject(t, ctx, tx, owner.ID, "Kitchen", types.ProjectStatusCompleted, testutil.PtrFloat(4.5))
	unrated := testutil.SeedProject(t, ctx, tx, owner.ID, "Bathroom", types.ProjectStatusCompleted, nil)
	inProgress := testutil.SeedProject(t, ctx, tx, owner.ID, "Roof", types.ProjectStatusInProgress, nil)

	got, err := repo.GetActiveForProfessional(ctx, tx, owner.ID, rated.ID)
	if err != nil {
		t.Fatalf("GetActiveForProfessional: %v", err)
	}
	if got.ClientRating == nil || *got.ClientRating != 4.5 {
		t.Fatalf("expected rating 4.5, got %+v", got.ClientRating)
	}

	if _, err := repo.GetActiveForProfessional(ctx, tx, uuid.New(), rated.ID); err == nil {
		t.Fatalf("foreign owner must not resolve the project")
	}

	// only completed, rated projects feed the score
	ratings, err := repo.CompletedRatings(ctx, tx, owner.ID)
	if err != nil {
		t.Fatalf("CompletedRatings: %v", err)
	}
	if len(ratings) != 1 || ratings[0] != 4.5 {
		t.Fatalf("expected [4.5], got %v", ratings)
	}

	if _, err := repo.DeactivateByIDs(ctx, tx, owner.ID, []uuid.UUID{unrated.ID, inProgress.ID}); err != nil {
		t.Fatalf("DeactivateByIDs: %v", err)
	}
	rows, err := repo.ListActiveByProfessional(ctx, tx, owner.ID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected 1 active project, err=%v len=%d", err, len(rows))
	}
}

func TestProjectImageRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewProjectImageRepo(db, testutil.Logger(t))

	owner := testutil.SeedProfessional(t, ctx, tx, "Owner")
	project := testutil.SeedProject(t, ctx, tx, owner.ID, "Kitchen", types.ProjectStatusInProgress, nil)

	before := testutil.SeedProjectImage(t, ctx, tx, project.ID, types.ImageStageBefore, 0)
	after := testutil.SeedProjectImage(t, ctx, tx, project.ID, types.ImageStageAfter, 1)

	rows, err := repo.ListByProjectIDs(ctx, tx, []uuid.UUID{project.ID})
	if err != nil {
		t.Fatalf("ListByProjectIDs: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != before.ID {
		t.Fatalf("expected position order [before, after], got %d rows", len(rows))
	}

	// images are removed outright, not soft-deactivated
	affected, err := repo.HardDeleteForProject(ctx, tx, project.ID, after.ID)
	if err != nil || affected != 1 {
		t.Fatalf("HardDeleteForProject: err=%v affected=%d", err, affected)
	}
	rows, err = repo.ListByProjectIDs(ctx, tx, []uuid.UUID{project.ID})
	if err != nil || len(rows) != 1 || rows[0].ID != before.ID {
		t.Fatalf("expected only the before image left, err=%v len=%d", err, len(rows))
	}

	affected, err = repo.HardDeleteForProject(ctx, tx, uuid.New(), before.ID)
	if err != nil || affected != 0 {
		t.Fatalf("foreign delete must touch no rows: err=%v affected=%d", err, affected)
	}
}
