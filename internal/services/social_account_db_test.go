package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/repos"
	"github.com/oficiolab/promarket-backend/internal/data/repos/testutil"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	domaineng "github.com/oficiolab/promarket-backend/internal/domain/engine"
)

func TestReplaceSocialAccountsDesiredState(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	log := testutil.Logger(t)
	svc := NewSocialAccountService(tx, log, repos.NewSocialAccountRepo(tx, log))

	pro := testutil.SeedProfessional(t, ctx, tx, "Social")
	kept := testutil.SeedSocialAccount(t, ctx, tx, pro.ID, "facebook")
	dropped := testutil.SeedSocialAccount(t, ctx, tx, pro.ID, "twitter")

	result, err := svc.Replace(ctx, pro.ID, []SocialAccountInput{
		{ID: testutil.PtrUUID(kept.ID), Platform: "Facebook", URL: "https://facebook.example/new", Username: "pro"},
		{Platform: "Instagram", URL: "https://instagram.example/u", Username: "pro"},
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 active accounts, got %d", len(result))
	}

	byPlatform := make(map[string]*types.SocialAccount, len(result))
	for _, row := range result {
		byPlatform[row.Platform] = row
	}
	fb, ok := byPlatform["facebook"]
	if !ok || fb.ID != kept.ID || fb.URL != "https://facebook.example/new" {
		t.Fatalf("expected facebook updated in place with normalized platform, got %+v", fb)
	}
	ig, ok := byPlatform["instagram"]
	if !ok || ig.ID == uuid.Nil || ig.ID == kept.ID {
		t.Fatalf("expected a fresh instagram row, got %+v", ig)
	}
	if _, ok := byPlatform["twitter"]; ok {
		t.Fatalf("twitter should have been deactivated")
	}

	// deactivated, not deleted
	var old types.SocialAccount
	if err := tx.First(&old, "id = ?", dropped.ID).Error; err != nil {
		t.Fatalf("load dropped account: %v", err)
	}
	if old.Active {
		t.Fatalf("dropped account still active")
	}

	// resubmitting the same desired list is stable
	again, err := svc.Replace(ctx, pro.ID, []SocialAccountInput{
		{ID: testutil.PtrUUID(fb.ID), Platform: fb.Platform, URL: fb.URL, Username: fb.Username},
		{ID: testutil.PtrUUID(ig.ID), Platform: ig.Platform, URL: ig.URL, Username: ig.Username},
	})
	if err != nil || len(again) != 2 {
		t.Fatalf("resubmit: err=%v len=%d", err, len(again))
	}

	// a foreign id aborts the whole batch and leaves state untouched
	foreign := uuid.New()
	_, err = svc.Replace(ctx, pro.ID, []SocialAccountInput{
		{ID: &foreign, Platform: "facebook", URL: "https://facebook.example/x"},
	})
	if domaineng.CodeOf(err) != domaineng.CodeNotFound {
		t.Fatalf("expected not found for foreign id, got %v", err)
	}
	after, err := svc.List(ctx, pro.ID)
	if err != nil || len(after) != 2 {
		t.Fatalf("state changed after failed batch: err=%v len=%d", err, len(after))
	}
}
