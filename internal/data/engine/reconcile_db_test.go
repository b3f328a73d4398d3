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

func activePlatforms(t *testing.T, tx *gorm.DB, professionalID uuid.UUID) []string {
	t.Helper()
	var platforms []string
	if err := tx.Model(&types.SocialAccount{}).
		Where("professional_id = ? AND active = ?", professionalID, true).
		Order("platform ASC").
		Pluck("platform", &platforms).Error; err != nil {
		t.Fatalf("list platforms: %v", err)
	}
	return platforms
}

func TestApplyPlanRequiresTransaction(t *testing.T) {
	err := ApplyPlan(dbctx.Context{Ctx: context.Background()}, Plan[desiredRow]{}, ApplyOps[desiredRow]{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error without tx, got %v", err)
	}
}

func TestApplyPlanWritesAllBuckets(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	pro := testutil.SeedProfessional(t, ctx, tx, "Reconcile")
	kept := testutil.SeedSocialAccount(t, ctx, tx, pro.ID, "facebook")
	dropped := testutil.SeedSocialAccount(t, ctx, tx, pro.ID, "twitter")

	desired := []desiredRow{
		{id: ptr(kept.ID), platform: "facebook"},
		{platform: "tiktok"},
	}
	plan, err := PlanReconcile([]uuid.UUID{kept.ID, dropped.ID}, desired)
	if err != nil {
		t.Fatalf("PlanReconcile: %v", err)
	}

	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	err = ApplyPlan(dbc, plan, ApplyOps[desiredRow]{
		Deactivate: func(dbc dbctx.Context, ids []uuid.UUID) error {
			return dbc.Tx.Model(&types.SocialAccount{}).
				Where("id IN ? AND professional_id = ?", ids, pro.ID).
				Update("active", false).Error
		},
		Update: func(dbc dbctx.Context, item desiredRow) error {
			return dbc.Tx.Model(&types.SocialAccount{}).
				Where("id = ?", *item.id).
				Update("platform", item.platform).Error
		},
		Insert: func(dbc dbctx.Context, item desiredRow) error {
			return dbc.Tx.Create(&types.SocialAccount{
				ID:             uuid.New(),
				ProfessionalID: pro.ID,
				Platform:       item.platform,
				URL:            "https://" + item.platform + ".example/u",
				Active:         true,
			}).Error
		},
	})
	if err != nil {
		t.Fatalf("ApplyPlan: %v", err)
	}

	got := activePlatforms(t, tx, pro.ID)
	want := []string{"facebook", "tiktok"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected active platforms %v, got %v", want, got)
	}
}

func TestApplyPlanFailureLeavesStateUntouched(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	pro := testutil.SeedProfessional(t, ctx, tx, "Atomic")
	a := testutil.SeedSocialAccount(t, ctx, tx, pro.ID, "facebook")
	b := testutil.SeedSocialAccount(t, ctx, tx, pro.ID, "twitter")

	desired := []desiredRow{
		{id: ptr(a.ID), platform: "facebook"},
		{platform: "tiktok"},
	}
	plan, err := PlanReconcile([]uuid.UUID{a.ID, b.ID}, desired)
	if err != nil {
		t.Fatalf("PlanReconcile: %v", err)
	}

	boom := errors.New("insert failed")
	err = tx.Transaction(func(inner *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: inner}
		return ApplyPlan(dbc, plan, ApplyOps[desiredRow]{
			Deactivate: func(dbc dbctx.Context, ids []uuid.UUID) error {
				return dbc.Tx.Model(&types.SocialAccount{}).
					Where("id IN ? AND professional_id = ?", ids, pro.ID).
					Update("active", false).Error
			},
			Update: func(dbc dbctx.Context, item desiredRow) error {
				return nil
			},
			Insert: func(dbc dbctx.Context, item desiredRow) error {
				return boom
			},
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected insert failure to surface, got %v", err)
	}

	got := activePlatforms(t, tx, pro.ID)
	want := []string{"facebook", "twitter"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("partial reconciliation leaked: expected %v, got %v", want, got)
	}
}
