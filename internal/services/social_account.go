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

// SocialAccountInput is one element of a desired-state list. An element with
// an ID targets an existing row; one without describes a new account.
type SocialAccountInput struct {
	ID       *uuid.UUID
	Platform string
	URL      string
	Username string
}

func (in SocialAccountInput) DesiredID() *uuid.UUID { return in.ID }

type SocialAccountService interface {
	Replace(ctx context.Context, professionalID uuid.UUID, desired []SocialAccountInput) ([]*types.SocialAccount, error)
	List(ctx context.Context, professionalID uuid.UUID) ([]*types.SocialAccount, error)
}

type socialAccountService struct {
	db     *gorm.DB
	log    *logger.Logger
	repo   repos.SocialAccountRepo
	runner engine.TxRunner
	guard  engine.CardinalityGuard
}

func NewSocialAccountService(db *gorm.DB, log *logger.Logger, repo repos.SocialAccountRepo) SocialAccountService {
	serviceLog := log.With("service", "SocialAccountService")
	return &socialAccountService{
		db:     db,
		log:    serviceLog,
		repo:   repo,
		runner: engine.NewGormTxRunner(db),
		guard:  engine.NewCardinalityGuard(db),
	}
}

// Replace treats the desired list as the complete set of social accounts the
// professional should have. Accounts on file but absent from the list are
// deactivated, accounts referenced by id are updated in place, and entries
// without an id are created. The whole batch commits or none of it does, and
// resubmitting the same list is a no-op at the data level.
func (s *socialAccountService) Replace(ctx context.Context, professionalID uuid.UUID, desired []SocialAccountInput) ([]*types.SocialAccount, error) {
	const op = "social_account.replace"
	normalized := make([]SocialAccountInput, 0, len(desired))
	for _, in := range desired {
		in.Platform = types.NormalizePlatform(in.Platform)
		in.URL = strings.TrimSpace(in.URL)
		in.Username = strings.TrimSpace(in.Username)
		if in.Platform == "" {
			return nil, engine.MapError(op, engine.ValidationError("platform is required"))
		}
		if in.URL == "" {
			return nil, engine.MapError(op, engine.ValidationError("url is required"))
		}
		normalized = append(normalized, in)
	}

	var result []*types.SocialAccount
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		if err := s.guard.LockParent(dbc, "professional", professionalID); err != nil {
			return err
		}
		current, err := s.repo.ListActiveByProfessional(dbc.Ctx, dbc.Tx, professionalID)
		if err != nil {
			return err
		}
		currentIDs := make([]uuid.UUID, 0, len(current))
		for _, row := range current {
			currentIDs = append(currentIDs, row.ID)
		}

		plan, err := engine.PlanReconcile(currentIDs, normalized)
		if err != nil {
			return err
		}
		if err := engine.ApplyPlan(dbc, plan, engine.ApplyOps[SocialAccountInput]{
			Deactivate: func(dbc dbctx.Context, ids []uuid.UUID) error {
				_, err := s.repo.DeactivateByIDs(dbc.Ctx, dbc.Tx, professionalID, ids)
				return err
			},
			Update: func(dbc dbctx.Context, item SocialAccountInput) error {
				rows, err := s.repo.UpdateFields(dbc.Ctx, dbc.Tx, professionalID, *item.ID, map[string]any{
					"platform":   item.Platform,
					"url":        item.URL,
					"username":   item.Username,
					"updated_at": time.Now().UTC(),
				})
				if err != nil {
					return err
				}
				if rows == 0 {
					return engine.NotFoundError("social account not found")
				}
				return nil
			},
			Insert: func(dbc dbctx.Context, item SocialAccountInput) error {
				row := &types.SocialAccount{
					ID:             uuid.New(),
					ProfessionalID: professionalID,
					Platform:       item.Platform,
					URL:            item.URL,
					Username:       item.Username,
					Active:         true,
				}
				_, err := s.repo.Create(dbc.Ctx, dbc.Tx, []*types.SocialAccount{row})
				return err
			},
		}); err != nil {
			return err
		}

		fresh, err := s.repo.ListActiveByProfessional(dbc.Ctx, dbc.Tx, professionalID)
		if err != nil {
			return err
		}
		result = fresh
		return nil
	})
	if err != nil {
		s.log.Warn("Replace social accounts failed", "professional_id", professionalID, "error", err)
		return nil, engine.MapError(op, err)
	}
	return result, nil
}

func (s *socialAccountService) List(ctx context.Context, professionalID uuid.UUID) ([]*types.SocialAccount, error) {
	const op = "social_account.list"
	accounts, err := s.repo.ListActiveByProfessional(ctx, nil, professionalID)
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	return accounts, nil
}
