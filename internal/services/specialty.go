package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/engine"
	"github.com/oficiolab/promarket-backend/internal/data/repos"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/dbctx"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

var specialtyCeiling = engine.CeilingRule{
	ParentTable:  "professional",
	ParentColumn: "professional_id",
	ChildTable:   "specialty",
	Ceiling:      types.MaxActiveSpecialties,
}

var specialtyPrincipalScope = engine.PrincipalScope{
	Table:        "specialty",
	ParentColumn: "professional_id",
}

type SpecialtyService interface {
	Add(ctx context.Context, professionalID uuid.UUID, name string) (*types.Specialty, error)
	SetPrincipal(ctx context.Context, professionalID, specialtyID uuid.UUID) error
	Deactivate(ctx context.Context, professionalID, specialtyID uuid.UUID) error
	List(ctx context.Context, professionalID uuid.UUID) ([]*types.Specialty, error)
}

type specialtyService struct {
	db       *gorm.DB
	log      *logger.Logger
	repo     repos.SpecialtyRepo
	runner   engine.TxRunner
	guard    engine.CardinalityGuard
	selector engine.PrincipalSelector
}

func NewSpecialtyService(db *gorm.DB, log *logger.Logger, repo repos.SpecialtyRepo) SpecialtyService {
	serviceLog := log.With("service", "SpecialtyService")
	return &specialtyService{
		db:       db,
		log:      serviceLog,
		repo:     repo,
		runner:   engine.NewGormTxRunner(db),
		guard:    engine.NewCardinalityGuard(db),
		selector: engine.NewPrincipalSelector(db),
	}
}

func (s *specialtyService) Add(ctx context.Context, professionalID uuid.UUID, name string) (*types.Specialty, error) {
	const op = "specialty.add"
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, engine.MapError(op, engine.ValidationError("specialty name is required"))
	}

	var created *types.Specialty
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		count, err := s.guard.CheckAndReserve(dbc, specialtyCeiling, professionalID)
		if err != nil {
			return err
		}
		row := &types.Specialty{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			Name:           name,
			// the first active specialty is the principal one
			IsPrincipal: count == 0,
			Active:      true,
		}
		if _, err := s.repo.Create(dbc.Ctx, dbc.Tx, []*types.Specialty{row}); err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		mapped := engine.MapError(op, err)
		s.log.Warn("Add specialty failed", "professional_id", professionalID, "error", err)
		return nil, mapped
	}
	return created, nil
}

func (s *specialtyService) SetPrincipal(ctx context.Context, professionalID, specialtyID uuid.UUID) error {
	const op = "specialty.set_principal"
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		return s.selector.SetPrincipal(dbc, specialtyPrincipalScope, professionalID, specialtyID)
	})
	if err != nil {
		s.log.Warn("Set principal specialty failed", "professional_id", professionalID, "specialty_id", specialtyID, "error", err)
		return engine.MapError(op, err)
	}
	return nil
}

func (s *specialtyService) Deactivate(ctx context.Context, professionalID, specialtyID uuid.UUID) error {
	const op = "specialty.deactivate"
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.DeactivateByIDs(dbc.Ctx, dbc.Tx, professionalID, []uuid.UUID{specialtyID})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("specialty not found")
		}
		return nil
	})
	if err != nil {
		return engine.MapError(op, err)
	}
	return nil
}

func (s *specialtyService) List(ctx context.Context, professionalID uuid.UUID) ([]*types.Specialty, error) {
	const op = "specialty.list"
	rows, err := s.repo.ListActiveByProfessional(ctx, nil, professionalID)
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	return rows, nil
}
