package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/repos/testutil"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/dbctx"
	"gorm.io/gorm"
)

var specialtyScope = PrincipalScope{
	Table:        "specialty",
	ParentColumn: "professional_id",
}

func countPrincipals(t *testing.T, dbc dbctx.Context, professionalID uuid.UUID) int64 {
	t.Helper()
	var count int64
	if err := dbc.Tx.Model(&types.Specialty{}).
		Where("professional_id = ? AND active = ? AND is_principal = ?", professionalID, true, true).
		Count(&count).Error; err != nil {
		t.Fatalf("count principals: %v", err)
	}
	return count
}

func TestSetPrincipalRequiresTransaction(t *testing.T) {
	selector := NewPrincipalSelector(nil)
	err := selector.SetPrincipal(dbctx.Context{Ctx: context.Background()}, specialtyScope, uuid.New(), uuid.New())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error without tx, got %v", err)
	}
}

func TestSetPrincipalSwapsExactlyOne(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	pro := testutil.SeedProfessional(t, ctx, tx, "Swap")
	old := testutil.SeedSpecialty(t, ctx, tx, pro.ID, "plumbing", true)
	next := testutil.SeedSpecialty(t, ctx, tx, pro.ID, "heating", false)

	selector := NewPrincipalSelector(db)
	if err := selector.SetPrincipal(dbc, specialtyScope, pro.ID, next.ID); err != nil {
		t.Fatalf("SetPrincipal: %v", err)
	}

	if got := countPrincipals(t, dbc, pro.ID); got != 1 {
		t.Fatalf("expected exactly one principal, got %d", got)
	}
	var reloaded types.Specialty
	if err := tx.Where("id = ?", old.ID).Take(&reloaded).Error; err != nil {
		t.Fatalf("reload old principal: %v", err)
	}
	if reloaded.IsPrincipal {
		t.Fatalf("old principal should have been unset")
	}
}

func TestSetPrincipalMissingTargetRollsBack(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	pro := testutil.SeedProfessional(t, ctx, tx, "Missing")
	testutil.SeedSpecialty(t, ctx, tx, pro.ID, "plumbing", true)

	selector := NewPrincipalSelector(db)
	err := tx.Transaction(func(inner *gorm.DB) error {
		return selector.SetPrincipal(dbctx.Context{Ctx: ctx, Tx: inner}, specialtyScope, pro.ID, uuid.New())
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for missing target, got %v", err)
	}

	// the unset-all step must have been rolled back with the failed swap
	if got := countPrincipals(t, dbctx.Context{Ctx: ctx, Tx: tx}, pro.ID); got != 1 {
		t.Fatalf("expected original principal intact after rollback, got %d", got)
	}
}

func TestSetPrincipalForeignChildRollsBack(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	owner := testutil.SeedProfessional(t, ctx, tx, "Owner")
	other := testutil.SeedProfessional(t, ctx, tx, "Other")
	testutil.SeedSpecialty(t, ctx, tx, owner.ID, "plumbing", true)
	foreign := testutil.SeedSpecialty(t, ctx, tx, other.ID, "roofing", true)

	selector := NewPrincipalSelector(db)
	err := tx.Transaction(func(inner *gorm.DB) error {
		return selector.SetPrincipal(dbctx.Context{Ctx: ctx, Tx: inner}, specialtyScope, owner.ID, foreign.ID)
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign child must read as not found, got %v", err)
	}
	if got := countPrincipals(t, dbctx.Context{Ctx: ctx, Tx: tx}, owner.ID); got != 1 {
		t.Fatalf("expected owner's principal intact, got %d", got)
	}
}
