package engine

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	domaineng "github.com/oficiolab/promarket-backend/internal/domain/engine"
	"gorm.io/gorm"
)

func TestMapErrorNil(t *testing.T) {
	if got := MapError("op", nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestMapErrorSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domaineng.ErrorCode
	}{
		{"validation", ValidationError("bad input"), domaineng.CodeValidation},
		{"cardinality", &CardinalityError{Table: "specialty", Count: 3, Ceiling: 3}, domaineng.CodeCardinalityExceeded},
		{"conflict", ConflictError("duplicate"), domaineng.CodeConflict},
		{"not found", NotFoundError("missing"), domaineng.CodeNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, domaineng.CodeNotFound},
		{"unknown", errors.New("boom"), domaineng.CodeStorage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError("op", tc.err)
			if got := domaineng.CodeOf(mapped); got != tc.want {
				t.Fatalf("expected code %s, got %s (%v)", tc.want, got, mapped)
			}
		})
	}
}

func TestMapErrorPostgresCodes(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	if got := domaineng.CodeOf(MapError("op", unique)); got != domaineng.CodeConflict {
		t.Fatalf("unique violation should map to conflict, got %s", got)
	}

	deadlock := &pgconn.PgError{Code: "40P01"}
	if got := domaineng.CodeOf(MapError("op", deadlock)); got != domaineng.CodeStorage {
		t.Fatalf("deadlock should map to storage, got %s", got)
	}
}

func TestMapErrorKeepsExistingDomainError(t *testing.T) {
	orig := domaineng.NewError(domaineng.CodeConflict, "specialty.add", "already exists", nil)
	if got := MapError("other.op", orig); got != orig {
		t.Fatalf("already-mapped errors must pass through unchanged")
	}
}
