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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfessionalInput struct {
	FirstName       string
	LastName        string
	Profession      string
	Bio             string
	YearsExperience int
	Metadata        datatypes.JSON
}

type ProfessionalService interface {
	Create(ctx context.Context, in ProfessionalInput) (*types.Professional, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Professional, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, in ProfessionalInput) (*types.Professional, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*types.Professional, error)
	Verify(ctx context.Context, id uuid.UUID) (*types.Professional, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type professionalService struct {
	db     *gorm.DB
	log    *logger.Logger
	repo   repos.ProfessionalRepo
	runner engine.TxRunner
}

func NewProfessionalService(db *gorm.DB, log *logger.Logger, repo repos.ProfessionalRepo) ProfessionalService {
	serviceLog := log.With("service", "ProfessionalService")
	return &professionalService{
		db:     db,
		log:    serviceLog,
		repo:   repo,
		runner: engine.NewGormTxRunner(db),
	}
}

func validateProfessionalInput(in *ProfessionalInput) error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Profession = strings.TrimSpace(in.Profession)
	in.Bio = strings.TrimSpace(in.Bio)
	if in.FirstName == "" || in.LastName == "" {
		return engine.ValidationError("first and last name are required")
	}
	if in.YearsExperience < 0 {
		return engine.ValidationError("years of experience must not be negative")
	}
	return nil
}

func (s *professionalService) Create(ctx context.Context, in ProfessionalInput) (*types.Professional, error) {
	const op = "professional.create"
	if err := validateProfessionalInput(&in); err != nil {
		return nil, engine.MapError(op, err)
	}

	row := &types.Professional{
		ID:              uuid.New(),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Profession:      in.Profession,
		Bio:             in.Bio,
		YearsExperience: in.YearsExperience,
		Metadata:        in.Metadata,
		Available:       true,
		Active:          true,
	}
	if _, err := s.repo.Create(ctx, nil, []*types.Professional{row}); err != nil {
		s.log.Warn("Create professional failed", "error", err)
		return nil, engine.MapError(op, err)
	}
	return row, nil
}

func (s *professionalService) Get(ctx context.Context, id uuid.UUID) (*types.Professional, error) {
	const op = "professional.get"
	row, err := s.repo.GetActiveByID(ctx, nil, id)
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	return row, nil
}

// UpdateProfile is the owner path: verified is never writable here.
func (s *professionalService) UpdateProfile(ctx context.Context, id uuid.UUID, in ProfessionalInput) (*types.Professional, error) {
	const op = "professional.update_profile"
	if err := validateProfessionalInput(&in); err != nil {
		return nil, engine.MapError(op, err)
	}

	var updated *types.Professional
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		updates := map[string]any{
			"first_name":       in.FirstName,
			"last_name":        in.LastName,
			"profession":       in.Profession,
			"bio":              in.Bio,
			"years_experience": in.YearsExperience,
			"updated_at":       time.Now().UTC(),
		}
		if in.Metadata != nil {
			updates["metadata"] = in.Metadata
		}
		rows, err := s.repo.UpdateFields(dbc.Ctx, dbc.Tx, id, updates)
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("professional not found")
		}
		fresh, err := s.repo.GetActiveByID(dbc.Ctx, dbc.Tx, id)
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

func (s *professionalService) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*types.Professional, error) {
	const op = "professional.set_availability"
	var updated *types.Professional
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]any{
			"available":  available,
			"updated_at": time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("professional not found")
		}
		fresh, err := s.repo.GetActiveByID(dbc.Ctx, dbc.Tx, id)
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

// Verify flips the account-level verification flag. Admin surface only.
func (s *professionalService) Verify(ctx context.Context, id uuid.UUID) (*types.Professional, error) {
	const op = "professional.verify"
	var verified *types.Professional
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.UpdateFields(dbc.Ctx, dbc.Tx, id, map[string]any{
			"verified":   true,
			"updated_at": time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("professional not found")
		}
		fresh, err := s.repo.GetActiveByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		verified = fresh
		return nil
	})
	if err != nil {
		s.log.Warn("Verify professional failed", "professional_id", id, "error", err)
		return nil, engine.MapError(op, err)
	}
	return verified, nil
}

func (s *professionalService) Deactivate(ctx context.Context, id uuid.UUID) error {
	const op = "professional.deactivate"
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.Deactivate(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("professional not found")
		}
		return nil
	})
	if err != nil {
		return engine.MapError(op, err)
	}
	return nil
}
