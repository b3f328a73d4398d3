package services

import (
	"context"
	"testing"
	"time"

	"github.com/oficiolab/promarket-backend/internal/data/repos"
	"github.com/oficiolab/promarket-backend/internal/data/repos/testutil"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	domaineng "github.com/oficiolab/promarket-backend/internal/domain/engine"
)

func TestAddBackgroundCheckDuplicateTypeConflicts(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	log := testutil.Logger(t)
	svc := NewBackgroundCheckService(tx, log, repos.NewBackgroundCheckRepo(tx, log))

	pro := testutil.SeedProfessional(t, ctx, tx, "Checked")

	issued := time.Now().UTC()
	created, err := svc.Add(ctx, pro.ID, BackgroundCheckInput{
		Type:        " Police ",
		DocumentURL: "https://docs.example/police.pdf",
		IssuedAt:    &issued,
	})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if created.Type != types.CheckTypePolice {
		t.Fatalf("expected normalized type police, got %q", created.Type)
	}
	if created.IssuedAt == nil {
		t.Fatalf("expected issued date to be stored")
	}

	_, err = svc.Add(ctx, pro.ID, BackgroundCheckInput{
		Type:        "police",
		DocumentURL: "https://docs.example/police-v2.pdf",
	})
	if domaineng.CodeOf(err) != domaineng.CodeConflict {
		t.Fatalf("expected conflict for duplicate active type, got %v", err)
	}

	// a different type still has a free slot
	if _, err := svc.Add(ctx, pro.ID, BackgroundCheckInput{
		Type:        "criminal",
		DocumentURL: "https://docs.example/criminal.pdf",
	}); err != nil {
		t.Fatalf("add criminal: %v", err)
	}

	checks, err := svc.List(ctx, pro.ID)
	if err != nil || len(checks) != 2 {
		t.Fatalf("expected 2 active checks, err=%v len=%d", err, len(checks))
	}
	for _, c := range checks {
		if c.Type == types.CheckTypePolice && c.IssuedAt == nil {
			t.Fatalf("issued date lost on reload")
		}
	}
}
