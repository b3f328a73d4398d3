package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/repos/testutil"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/dbctx"
)

var specialtyRule = CeilingRule{
	ParentTable:  "professional",
	ParentColumn: "professional_id",
	ChildTable:   "specialty",
	Ceiling:      types.MaxActiveSpecialties,
}

func TestCheckAndReserveRequiresTransaction(t *testing.T) {
	guard := NewCardinalityGuard(nil)
	_, err := guard.CheckAndReserve(dbctx.Context{Ctx: context.Background()}, specialtyRule, uuid.New())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error without tx, got %v", err)
	}
}

func TestCheckAndReserveCountsActiveChildren(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	pro := testutil.SeedProfessional(t, ctx, tx, "Guard")
	testutil.SeedSpecialty(t, ctx, tx, pro.ID, "plumbing", true)
	testutil.SeedSpecialty(t, ctx, tx, pro.ID, "heating", false)

	guard := NewCardinalityGuard(db)
	count, err := guard.CheckAndReserve(dbc, specialtyRule, pro.ID)
	if err != nil {
		t.Fatalf("CheckAndReserve: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
}

func TestCheckAndReserveDeniesAtCeiling(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	pro := testutil.SeedProfessional(t, ctx, tx, "Full")
	testutil.SeedSpecialty(t, ctx, tx, pro.ID, "plumbing", true)
	testutil.SeedSpecialty(t, ctx, tx, pro.ID, "heating", false)
	testutil.SeedSpecialty(t, ctx, tx, pro.ID, "gas", false)

	guard := NewCardinalityGuard(db)
	_, err := guard.CheckAndReserve(dbc, specialtyRule, pro.ID)
	if !errors.Is(err, ErrCardinality) {
		t.Fatalf("expected cardinality error at ceiling, got %v", err)
	}
	var cardErr *CardinalityError
	if !errors.As(err, &cardErr) || cardErr.Ceiling != types.MaxActiveSpecialties {
		t.Fatalf("expected CardinalityError with ceiling %d, got %v", types.MaxActiveSpecialties, err)
	}
}

func TestCheckAndReserveIgnoresInactiveChildren(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	pro := testutil.SeedProfessional(t, ctx, tx, "Reuse")
	for i := 0; i < 3; i++ {
		s := testutil.SeedSpecialty(t, ctx, tx, pro.ID, "old", false)
		if err := tx.Model(&types.Specialty{}).Where("id = ?", s.ID).Update("active", false).Error; err != nil {
			t.Fatalf("deactivate seed: %v", err)
		}
	}

	guard := NewCardinalityGuard(db)
	count, err := guard.CheckAndReserve(dbc, specialtyRule, pro.ID)
	if err != nil {
		t.Fatalf("deactivated children must free up slots: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero active children, got %d", count)
	}
}

func TestCheckAndReserveCountAllIncludesEveryRow(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	pro := testutil.SeedProfessional(t, ctx, tx, "Images")
	project := testutil.SeedProject(t, ctx, tx, pro.ID, "Kitchen", types.ProjectStatusInProgress, nil)
	for i := 0; i < types.MaxProjectImages; i++ {
		testutil.SeedProjectImage(t, ctx, tx, project.ID, types.ImageStageProcess, i)
	}

	rule := CeilingRule{
		ParentTable:  "portfolio_project",
		ParentColumn: "project_id",
		ChildTable:   "project_image",
		Ceiling:      types.MaxProjectImages,
		CountAll:     true,
	}
	guard := NewCardinalityGuard(db)
	_, err := guard.CheckAndReserve(dbc, rule, project.ID)
	if !errors.Is(err, ErrCardinality) {
		t.Fatalf("expected cardinality error for full image set, got %v", err)
	}
}

func TestCheckAndReserveMissingParentIsNotFound(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	guard := NewCardinalityGuard(db)
	_, err := guard.CheckAndReserve(dbc, specialtyRule, uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for missing parent, got %v", err)
	}
}

func TestLockParentMissingRowIsNotFound(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	guard := NewCardinalityGuard(db)
	if err := guard.LockParent(dbc, "professional", uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
