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

var addressCeiling = engine.CeilingRule{
	ParentTable:  "professional",
	ParentColumn: "professional_id",
	ChildTable:   "address",
	Ceiling:      types.MaxActiveAddresses,
}

var addressPrincipalScope = engine.PrincipalScope{
	Table:        "address",
	ParentColumn: "professional_id",
}

type AddressInput struct {
	Street     string
	City       string
	Region     string
	PostalCode string
}

type AddressService interface {
	Add(ctx context.Context, professionalID uuid.UUID, in AddressInput) (*types.Address, error)
	Update(ctx context.Context, professionalID, addressID uuid.UUID, in AddressInput) (*types.Address, error)
	SetPrincipal(ctx context.Context, professionalID, addressID uuid.UUID) error
	Deactivate(ctx context.Context, professionalID, addressID uuid.UUID) error
	List(ctx context.Context, professionalID uuid.UUID) ([]*types.Address, error)
}

type addressService struct {
	db       *gorm.DB
	log      *logger.Logger
	repo     repos.AddressRepo
	runner   engine.TxRunner
	guard    engine.CardinalityGuard
	selector engine.PrincipalSelector
}

func NewAddressService(db *gorm.DB, log *logger.Logger, repo repos.AddressRepo) AddressService {
	serviceLog := log.With("service", "AddressService")
	return &addressService{
		db:       db,
		log:      serviceLog,
		repo:     repo,
		runner:   engine.NewGormTxRunner(db),
		guard:    engine.NewCardinalityGuard(db),
		selector: engine.NewPrincipalSelector(db),
	}
}

func validateAddressInput(in *AddressInput) error {
	in.Street = strings.TrimSpace(in.Street)
	in.City = strings.TrimSpace(in.City)
	in.Region = strings.TrimSpace(in.Region)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	if in.Street == "" {
		return engine.ValidationError("street is required")
	}
	if in.City == "" {
		return engine.ValidationError("city is required")
	}
	return nil
}

func (s *addressService) Add(ctx context.Context, professionalID uuid.UUID, in AddressInput) (*types.Address, error) {
	const op = "address.add"
	if err := validateAddressInput(&in); err != nil {
		return nil, engine.MapError(op, err)
	}

	var created *types.Address
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		count, err := s.guard.CheckAndReserve(dbc, addressCeiling, professionalID)
		if err != nil {
			return err
		}
		row := &types.Address{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			Street:         in.Street,
			City:           in.City,
			Region:         in.Region,
			PostalCode:     in.PostalCode,
			// the first active address is the principal one
			IsPrincipal: count == 0,
			Active:      true,
		}
		if _, err := s.repo.Create(dbc.Ctx, dbc.Tx, []*types.Address{row}); err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		s.log.Warn("Add address failed", "professional_id", professionalID, "error", err)
		return nil, engine.MapError(op, err)
	}
	return created, nil
}

func (s *addressService) Update(ctx context.Context, professionalID, addressID uuid.UUID, in AddressInput) (*types.Address, error) {
	const op = "address.update"
	if err := validateAddressInput(&in); err != nil {
		return nil, engine.MapError(op, err)
	}

	var updated *types.Address
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.UpdateFields(dbc.Ctx, dbc.Tx, professionalID, addressID, map[string]any{
			"street":      in.Street,
			"city":        in.City,
			"region":      in.Region,
			"postal_code": in.PostalCode,
			"updated_at":  time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("address not found")
		}
		fresh, err := s.repo.GetByIDs(dbc.Ctx, dbc.Tx, []uuid.UUID{addressID})
		if err != nil {
			return err
		}
		if len(fresh) == 0 {
			return engine.NotFoundError("address not found")
		}
		updated = fresh[0]
		return nil
	})
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	return updated, nil
}

func (s *addressService) SetPrincipal(ctx context.Context, professionalID, addressID uuid.UUID) error {
	const op = "address.set_principal"
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		return s.selector.SetPrincipal(dbc, addressPrincipalScope, professionalID, addressID)
	})
	if err != nil {
		s.log.Warn("Set principal address failed", "professional_id", professionalID, "address_id", addressID, "error", err)
		return engine.MapError(op, err)
	}
	return nil
}

func (s *addressService) Deactivate(ctx context.Context, professionalID, addressID uuid.UUID) error {
	const op = "address.deactivate"
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.repo.DeactivateByIDs(dbc.Ctx, dbc.Tx, professionalID, []uuid.UUID{addressID})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("address not found")
		}
		return nil
	})
	if err != nil {
		return engine.MapError(op, err)
	}
	return nil
}

func (s *addressService) List(ctx context.Context, professionalID uuid.UUID) ([]*types.Address, error) {
	const op = "address.list"
	rows, err := s.repo.ListActiveByProfessional(ctx, nil, professionalID)
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	return rows, nil
}
