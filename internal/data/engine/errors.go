package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	domaineng "github.com/oficiolab/promarket-backend/internal/domain/engine"
	"gorm.io/gorm"
)

var (
	// ErrValidation indicates caller input validation failure.
	ErrValidation = errors.New("engine validation")
	// ErrCardinality indicates a ceiling-bound collection is full.
	ErrCardinality = errors.New("engine cardinality")
	// ErrConflict indicates a uniqueness invariant would be violated.
	ErrConflict = errors.New("engine conflict")
	// ErrNotFound indicates a missing row or an ownership mismatch.
	ErrNotFound = errors.New("engine not found")
)

// ValidationError tags an error as validation failure.
func ValidationError(msg string) error {
	return errors.Join(ErrValidation, errors.New(strings.TrimSpace(msg)))
}

// ConflictError tags an error as conflict failure.
func ConflictError(msg string) error {
	return errors.Join(ErrConflict, errors.New(strings.TrimSpace(msg)))
}

// NotFoundError tags an error as a missing-row/ownership failure.
func NotFoundError(msg string) error {
	return errors.Join(ErrNotFound, errors.New(strings.TrimSpace(msg)))
}

// MapError maps infrastructure failures into canonical engine error codes.
// Anything not recognized is a storage failure: logged in detail by callers,
// surfaced generically.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*domaineng.Error); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrValidation):
		return domaineng.Wrap(domaineng.CodeValidation, op, err)
	case errors.Is(err, ErrCardinality):
		return domaineng.Wrap(domaineng.CodeCardinalityExceeded, op, err)
	case errors.Is(err, ErrConflict):
		return domaineng.Wrap(domaineng.CodeConflict, op, err)
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return domaineng.Wrap(domaineng.CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domaineng.Wrap(domaineng.CodeStorage, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return domaineng.Wrap(domaineng.CodeConflict, op, err) // unique_violation
		case "40001", "40P01", "55P03":
			return domaineng.Wrap(domaineng.CodeStorage, op, err) // serialization/deadlock/lock_not_available
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "already exists") {
		return domaineng.Wrap(domaineng.CodeConflict, op, err)
	}
	return domaineng.Wrap(domaineng.CodeStorage, op, err)
}
