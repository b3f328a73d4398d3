package services

import (
	"context"
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

// CertificationInput is the owner-side write shape for certifications.
type CertificationInput struct {
	Title    string
	Issuer   string
	IssuedAt *time.Time
}

type CertificationService interface {
	Add(ctx context.Context, professionalID uuid.UUID, in CertificationInput) (*types.Certification, error)
	Update(ctx context.Context, professionalID, certificationID uuid.UUID, in CertificationInput) (*types.Certification, error)
	Reorder(ctx context.Context, professionalID uuid.UUID, orderedIDs []uuid.UUID) error
	Deactivate(ctx context.Context, professionalID, certificationID uuid.UUID) error
	List(ctx context.Context, professionalID uuid.UUID) ([]*types.Certification, error)
}

type certificationService struct {
	db     *gorm.DB
	log    *logger.Logger
	repo   repos.CertificationRepo
	runner engine.TxRunner
	guard  engine.CardinalityGuard
}

func NewCertificationService(db *gorm.DB, log *logger.Logger, repo repos.CertificationRepo) CertificationService {
	serviceLog := log.With("service", "CertificationService")
	return &certificationService{
		db:     db,
		log:    serviceLog,
		repo:   repo,
		runner: engine.NewGormTxRunner(db),
		guard:  engine.NewCardinalityGuard(db),
	}
}

func (s *certificationService) Add(ctx context.Context, professionalID uuid.UUID, in CertificationInput) (*types.Certification, error) {
	const op = "certification.add"
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, engine.MapError(op, engine.ValidationError("certification title is required"))
	}

	var created *types.Certification
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		if err := s.guard.LockParent(dbc, "professional", professionalID); err != nil {
			return err
		}
		position, err := s.repo.NextPosition(dbc.Ctx, dbc.Tx, professionalID)
		if err != nil {
			return err
		}
		row := &types.Certification{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			Title:          in.Title,
			Issuer:         strings.TrimSpace(in.Issuer),
			IssuedAt:       in.IssuedAt,
			Position:       position,
			Active:         true,
		}
		if _, err := s.repo.Create(dbc.Ctx, dbc.Tx, []*types.Certification{row}); err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		s.log.Warn("Add certification failed", "professional_id", professionalID, "error", err)
		return nil, engine.MapError(op, err)
	}
	return created, nil
}

func (s *certificationService) Update(ctx context.Context, professionalID, certificationID uuid.UUID, in CertificationInput) (*types.Certification, error) {
	const op = "certification.update"
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, engine.MapError(op, engine.ValidationError("certification title is required"))
	}

	var updated *types.Certification
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.UpdateFields(dbc.Ctx, dbc.Tx, professionalID, certificationID, map[string]any{
			"title":      in.Title,
			"issuer":     strings.TrimSpace(in.Issuer),
			"issued_at":  in.IssuedAt,
			"updated_at": time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("certification not found")
		}
		found, err := s.repo.GetByIDs(dbc.Ctx, dbc.Tx, []uuid.UUID{certificationID})
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return engine.NotFoundError("certification not found")
		}
		updated = found[0]
		return nil
	})
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	return updated, nil
}

// Reorder rewrites display positions to match the given id order. The list
// must name every active certification exactly once.
func (s *certificationService) Reorder(ctx context.Context, professionalID uuid.UUID, orderedIDs []uuid.UUID) error {
	const op = "certification.reorder"
	if len(orderedIDs) == 0 {
		return engine.MapError(op, engine.ValidationError("ordered id list must not be empty"))
	}

	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		if err := s.guard.LockParent(dbc, "professional", professionalID); err != nil {
			return err
		}
		current, err := s.repo.ListActiveByProfessional(dbc.Ctx, dbc.Tx, professionalID)
		if err != nil {
			return err
		}
		if len(current) != len(orderedIDs) {
			return engine.ValidationError("ordered id list must cover all active certifications")
		}
		active := make(map[uuid.UUID]struct{}, len(current))
		for _, c := range current {
			active[c.ID] = struct{}{}
		}
		seen := make(map[uuid.UUID]struct{}, len(orderedIDs))
		for position, id := range orderedIDs {
			if _, ok := active[id]; !ok {
				return engine.NotFoundError("certification not found")
			}
			if _, dup := seen[id]; dup {
				return engine.ValidationError("ordered id list repeats an id")
			}
			seen[id] = struct{}{}
			if _, err := s.repo.UpdateFields(dbc.Ctx, dbc.Tx, professionalID, id, map[string]any{
				"position":   position,
				"updated_at": time.Now().UTC(),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Reorder certifications failed", "professional_id", professionalID, "error", err)
		return engine.MapError(op, err)
	}
	return nil
}

func (s *certificationService) Deactivate(ctx context.Context, professionalID, certificationID uuid.UUID) error {
	const op = "certification.deactivate"
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.DeactivateByIDs(dbc.Ctx, dbc.Tx, professionalID, []uuid.UUID{certificationID})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("certification not found")
		}
		return nil
	})
	if err != nil {
		return engine.MapError(op, err)
	}
	return nil
}

func (s *certificationService) List(ctx context.Context, professionalID uuid.UUID) ([]*types.Certification, error) {
	const op = "certification.list"
	rows, err := s.repo.ListActiveByProfessional(ctx, nil, professionalID)
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	return rows, nil
}
