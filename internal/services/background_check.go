package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/engine"
	"github.com/oficiolab/promarket-backend/internal/data/repos"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/dbctx"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type BackgroundCheckInput struct {
	Type        string
	DocumentURL string
	IssuedAt    *time.Time
}

type BackgroundCheckService interface {
	Add(ctx context.Context, professionalID uuid.UUID, in BackgroundCheckInput) (*types.BackgroundCheck, error)
	UpdateDocument(ctx context.Context, professionalID, checkID uuid.UUID, documentURL string, issuedAt *time.Time) (*types.BackgroundCheck, error)
	Verify(ctx context.Context, professionalID, checkID uuid.UUID) (*types.BackgroundCheck, error)
	Deactivate(ctx context.Context, professionalID, checkID uuid.UUID) error
	List(ctx context.Context, professionalID uuid.UUID) ([]*types.BackgroundCheck, error)
}

type backgroundCheckService struct {
	db     *gorm.DB
	log    *logger.Logger
	repo   repos.BackgroundCheckRepo
	runner engine.TxRunner
	guard  engine.CardinalityGuard
}

func NewBackgroundCheckService(db *gorm.DB, log *logger.Logger, repo repos.BackgroundCheckRepo) BackgroundCheckService {
	serviceLog := log.With("service", "BackgroundCheckService")
	return &backgroundCheckService{
		db:     db,
		log:    serviceLog,
		repo:   repo,
		runner: engine.NewGormTxRunner(db),
		guard:  engine.NewCardinalityGuard(db),
	}
}

// Add registers a background check document. At most one active check per
// type may exist; the parent row is locked so two concurrent submissions of
// the same type cannot both pass the existence probe.
func (s *backgroundCheckService) Add(ctx context.Context, professionalID uuid.UUID, in BackgroundCheckInput) (*types.BackgroundCheck, error) {
	const op = "background_check.add"
	checkType := types.NormalizeCheckType(in.Type)
	if !checkType.Valid() {
		return nil, engine.MapError(op, engine.ValidationError("check type must be police, criminal or judicial"))
	}
	in.DocumentURL = strings.TrimSpace(in.DocumentURL)
	if in.DocumentURL == "" {
		return nil, engine.MapError(op, engine.ValidationError("document url is required"))
	}

	var created *types.BackgroundCheck
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		if err := s.guard.LockParent(dbc, "professional", professionalID); err != nil {
			return err
		}
		existing, err := s.repo.GetActiveByType(dbc.Ctx, dbc.Tx, professionalID, checkType)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing != nil {
			return engine.ConflictError("an active check of this type already exists")
		}
		row := &types.BackgroundCheck{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			Type:           checkType,
			DocumentURL:    in.DocumentURL,
			IssuedAt:       in.IssuedAt,
			Active:         true,
		}
		if _, err := s.repo.Create(dbc.Ctx, dbc.Tx, []*types.BackgroundCheck{row}); err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		s.log.Warn("Add background check failed", "professional_id", professionalID, "type", checkType, "error", err)
		return nil, engine.MapError(op, err)
	}
	return created, nil
}

// UpdateDocument is the owner path. Replacing the document invalidates any
// prior verification, so verified is reset alongside.
func (s *backgroundCheckService) UpdateDocument(ctx context.Context, professionalID, checkID uuid.UUID, documentURL string, issuedAt *time.Time) (*types.BackgroundCheck, error) {
	const op = "background_check.update_document"
	documentURL = strings.TrimSpace(documentURL)
	if documentURL == "" {
		return nil, engine.MapError(op, engine.ValidationError("document url is required"))
	}

	var updated *types.BackgroundCheck
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.UpdateFields(dbc.Ctx, dbc.Tx, professionalID, checkID, map[string]any{
			"document_url": documentURL,
			"issued_at":    issuedAt,
			"verified":     false,
			"verified_at":  nil,
			"updated_at":   time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("background check not found")
		}
		fresh, err := s.getActive(dbc.Ctx, dbc.Tx, professionalID, checkID)
		if err != nil {
			return err
		}
		updated = fresh
		return nil
	})
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	return updated, nil
}

// Verify marks a check as reviewed. Only the admin surface routes here.
func (s *backgroundCheckService) Verify(ctx context.Context, professionalID, checkID uuid.UUID) (*types.BackgroundCheck, error) {
	const op = "background_check.verify"
	var verified *types.BackgroundCheck
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		now := time.Now().UTC()
		rows, err := s.repo.UpdateFields(dbc.Ctx, dbc.Tx, professionalID, checkID, map[string]any{
			"verified":    true,
			"verified_at": now,
			"updated_at":  now,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("background check not found")
		}
		fresh, err := s.getActive(dbc.Ctx, dbc.Tx, professionalID, checkID)
		if err != nil {
			return err
		}
		verified = fresh
		return nil
	})
	if err != nil {
		s.log.Warn("Verify background check failed", "professional_id", professionalID, "check_id", checkID, "error", err)
		return nil, engine.MapError(op, err)
	}
	return verified, nil
}

func (s *backgroundCheckService) Deactivate(ctx context.Context, professionalID, checkID uuid.UUID) error {
	const op = "background_check.deactivate"
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.DeactivateByIDs(dbc.Ctx, dbc.Tx, professionalID, []uuid.UUID{checkID})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("background check not found")
		}
		return nil
	})
	if err != nil {
		return engine.MapError(op, err)
	}
	return nil
}

func (s *backgroundCheckService) List(ctx context.Context, professionalID uuid.UUID) ([]*types.BackgroundCheck, error) {
	const op = "background_check.list"
	checks, err := s.repo.ListActiveByProfessional(ctx, nil, professionalID)
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	return checks, nil
}

func (s *backgroundCheckService) getActive(ctx context.Context, tx *gorm.DB, professionalID, checkID uuid.UUID) (*types.BackgroundCheck, error) {
	rows, err := s.repo.GetByIDs(ctx, tx, []uuid.UUID{checkID})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.ProfessionalID == professionalID {
			return row, nil
		}
	}
	return nil, engine.NotFoundError("background check not found")
}
