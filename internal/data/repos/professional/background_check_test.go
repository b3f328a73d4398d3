package professional

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/repos/testutil"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"gorm.io/gorm"
)

func TestBackgroundCheckRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewBackgroundCheckRepo(db, testutil.Logger(t))

	owner := testutil.SeedProfessional(t, ctx, tx, "Owner")
	police := testutil.SeedBackgroundCheck(t, ctx, tx, owner.ID, types.CheckTypePolice, true)
	testutil.SeedBackgroundCheck(t, ctx, tx, owner.ID, types.CheckTypeCriminal, false)

	got, err := repo.GetActiveByType(ctx, tx, owner.ID, types.CheckTypePolice)
	if err != nil {
		t.Fatalf("GetActiveByType: %v", err)
	}
	if got.ID != police.ID {
		t.Fatalf("expected %s, got %s", police.ID, got.ID)
	}

	if _, err := repo.GetActiveByType(ctx, tx, owner.ID, types.CheckTypeJudicial); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found for absent type, got %v", err)
	}

	count, err := repo.CountVerified(ctx, tx, owner.ID)
	if err != nil || count != 1 {
		t.Fatalf("CountVerified: err=%v count=%d", err, count)
	}

	// a deactivated check frees its type slot and stops counting as verified
	if _, err := repo.DeactivateByIDs(ctx, tx, owner.ID, []uuid.UUID{police.ID}); err != nil {
		t.Fatalf("DeactivateByIDs: %v", err)
	}
	if _, err := repo.GetActiveByType(ctx, tx, owner.ID, types.CheckTypePolice); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deactivated check must not resolve as active, got %v", err)
	}
	count, err = repo.CountVerified(ctx, tx, owner.ID)
	if err != nil || count != 0 {
		t.Fatalf("CountVerified after deactivate: err=%v count=%d", err, count)
	}
}
