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

var projectCeiling = engine.CeilingRule{
	ParentTable:  "professional",
	ParentColumn: "professional_id",
	ChildTable:   "portfolio_project",
	Ceiling:      types.MaxActiveProjects,
}

// Images carry no active flag; every stored row counts against the ceiling.
var projectImageCeiling = engine.CeilingRule{
	ParentTable:  "portfolio_project",
	ParentColumn: "project_id",
	ChildTable:   "project_image",
	Ceiling:      types.MaxProjectImages,
	CountAll:     true,
}

// ProjectInput is the owner-side write shape for portfolio projects. Client
// rating fields are deliberately absent: the owner path can never set them.
type ProjectInput struct {
	Title       string
	Description string
	Status      string
	CompletedAt *time.Time
	Metadata    datatypes.JSON
}

// ProjectRating is the client-side write shape. Write-once.
type ProjectRating struct {
	Rating  float64
	Comment string
}

type ProjectImageInput struct {
	Stage    string
	URL      string
	Position int
}

type PortfolioService interface {
	AddProject(ctx context.Context, professionalID uuid.UUID, in ProjectInput) (*types.PortfolioProject, error)
	UpdateProject(ctx context.Context, professionalID, projectID uuid.UUID, in ProjectInput) (*types.PortfolioProject, error)
	RateProject(ctx context.Context, professionalID, projectID uuid.UUID, in ProjectRating) (*types.PortfolioProject, error)
	DeactivateProject(ctx context.Context, professionalID, projectID uuid.UUID) error
	AddImage(ctx context.Context, professionalID, projectID uuid.UUID, in ProjectImageInput) (*types.ProjectImage, error)
	DeleteImage(ctx context.Context, professionalID, projectID, imageID uuid.UUID) error
	List(ctx context.Context, professionalID uuid.UUID) ([]*types.PortfolioProject, error)
}

type portfolioService struct {
	db        *gorm.DB
	log       *logger.Logger
	projects  repos.PortfolioProjectRepo
	images    repos.ProjectImageRepo
	runner    engine.TxRunner
	guard     engine.CardinalityGuard
}

func NewPortfolioService(db *gorm.DB, log *logger.Logger, projects repos.PortfolioProjectRepo, images repos.ProjectImageRepo) PortfolioService {
	serviceLog := log.With("service", "PortfolioService")
	return &portfolioService{
		db:       db,
		log:      serviceLog,
		projects: projects,
		images:   images,
		runner:   engine.NewGormTxRunner(db),
		guard:    engine.NewCardinalityGuard(db),
	}
}

func validateProjectInput(in *ProjectInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return engine.ValidationError("project title is required")
	}
	if in.Status == "" {
		in.Status = types.ProjectStatusInProgress
	}
	if in.Status != types.ProjectStatusInProgress && in.Status != types.ProjectStatusCompleted {
		return engine.ValidationError("project status must be in_progress or completed")
	}
	if in.Status == types.ProjectStatusCompleted && in.CompletedAt == nil {
		now := time.Now().UTC()
		in.CompletedAt = &now
	}
	return nil
}

func (s *portfolioService) AddProject(ctx context.Context, professionalID uuid.UUID, in ProjectInput) (*types.PortfolioProject, error) {
	const op = "portfolio.add_project"
	if err := validateProjectInput(&in); err != nil {
		return nil, engine.MapError(op, err)
	}

	var created *types.PortfolioProject
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		if _, err := s.guard.CheckAndReserve(dbc, projectCeiling, professionalID); err != nil {
			return err
		}
		row := &types.PortfolioProject{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			Title:          in.Title,
			Description:    in.Description,
			Status:         in.Status,
			CompletedAt:    in.CompletedAt,
			Metadata:       in.Metadata,
			Active:         true,
		}
		if _, err := s.projects.Create(dbc.Ctx, dbc.Tx, []*types.PortfolioProject{row}); err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		s.log.Warn("Add project failed", "professional_id", professionalID, "error", err)
		return nil, engine.MapError(op, err)
	}
	return created, nil
}

// UpdateProject is the owner path: it never touches client_rating or
// client_comment, and ownership never changes.
func (s *portfolioService) UpdateProject(ctx context.Context, professionalID, projectID uuid.UUID, in ProjectInput) (*types.PortfolioProject, error) {
	const op = "portfolio.update_project"
	if err := validateProjectInput(&in); err != nil {
		return nil, engine.MapError(op, err)
	}

	var updated *types.PortfolioProject
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		updates := map[string]any{
			"title":        in.Title,
			"description":  in.Description,
			"status":       in.Status,
			"completed_at": in.CompletedAt,
			"updated_at":   time.Now().UTC(),
		}
		if in.Metadata != nil {
			updates["metadata"] = in.Metadata
		}
		rows, err := s.projects.UpdateFields(dbc.Ctx, dbc.Tx, professionalID, projectID, updates)
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("project not found")
		}
		fresh, err := s.projects.GetActiveForProfessional(dbc.Ctx, dbc.Tx, professionalID, projectID)
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

// RateProject is the client path and the only writer of the rating fields.
// A project is rated once; later attempts conflict.
func (s *portfolioService) RateProject(ctx context.Context, professionalID, projectID uuid.UUID, in ProjectRating) (*types.PortfolioProject, error) {
	const op = "portfolio.rate_project"
	if in.Rating < 1 || in.Rating > 5 {
		return nil, engine.MapError(op, engine.ValidationError("rating must be between 1 and 5"))
	}

	var rated *types.PortfolioProject
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		// Lock the project row so concurrent ratings serialize; the second
		// reader must observe the first rating and conflict.
		if err := s.guard.LockParent(dbc, "portfolio_project", projectID); err != nil {
			return err
		}
		project, err := s.projects.GetActiveForProfessional(dbc.Ctx, dbc.Tx, professionalID, projectID)
		if err != nil {
			return err
		}
		if project.Status != types.ProjectStatusCompleted {
			return engine.ConflictError("only completed projects can be rated")
		}
		if project.ClientRating != nil {
			return engine.ConflictError("project already rated")
		}
		if _, err := s.projects.UpdateFields(dbc.Ctx, dbc.Tx, professionalID, projectID, map[string]any{
			"client_rating":  in.Rating,
			"client_comment": strings.TrimSpace(in.Comment),
			"updated_at":     time.Now().UTC(),
		}); err != nil {
			return err
		}
		fresh, err := s.projects.GetActiveForProfessional(dbc.Ctx, dbc.Tx, professionalID, projectID)
		if err != nil {
			return err
		}
		rated = fresh
		return nil
	})
	if err != nil {
		s.log.Warn("Rate project failed", "professional_id", professionalID, "project_id", projectID, "error", err)
		return nil, engine.MapError(op, err)
	}
	return rated, nil
}

func (s *portfolioService) DeactivateProject(ctx context.Context, professionalID, projectID uuid.UUID) error {
	const op = "portfolio.deactivate_project"
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		rows, err := s.projects.DeactivateByIDs(dbc.Ctx, dbc.Tx, professionalID, []uuid.UUID{projectID})
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("project not found")
		}
		return nil
	})
	if err != nil {
		return engine.MapError(op, err)
	}
	return nil
}

func (s *portfolioService) AddImage(ctx context.Context, professionalID, projectID uuid.UUID, in ProjectImageInput) (*types.ProjectImage, error) {
	const op = "portfolio.add_image"
	stage := types.NormalizeImageStage(in.Stage)
	if !stage.Valid() {
		return nil, engine.MapError(op, engine.ValidationError("image stage must be before, after, process or general"))
	}
	in.URL = strings.TrimSpace(in.URL)
	if in.URL == "" {
		return nil, engine.MapError(op, engine.ValidationError("image url is required"))
	}

	var created *types.ProjectImage
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		// ownership check first so a foreign project id reads as missing
		if _, err := s.projects.GetActiveForProfessional(dbc.Ctx, dbc.Tx, professionalID, projectID); err != nil {
			return err
		}
		if _, err := s.guard.CheckAndReserve(dbc, projectImageCeiling, projectID); err != nil {
			return err
		}
		row := &types.ProjectImage{
			ID:        uuid.New(),
			ProjectID: projectID,
			Stage:     stage,
			URL:       in.URL,
			Position:  in.Position,
		}
		if _, err := s.images.Create(dbc.Ctx, dbc.Tx, []*types.ProjectImage{row}); err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		s.log.Warn("Add project image failed", "professional_id", professionalID, "project_id", projectID, "error", err)
		return nil, engine.MapError(op, err)
	}
	return created, nil
}

// DeleteImage removes the row permanently. Project images are the one child
// type that is hard-deleted rather than soft-deactivated.
func (s *portfolioService) DeleteImage(ctx context.Context, professionalID, projectID, imageID uuid.UUID) error {
	const op = "portfolio.delete_image"
	err := s.runner.InTx(ctx, func(dbc dbctx.Context) error {
		if _, err := s.projects.GetActiveForProfessional(dbc.Ctx, dbc.Tx, professionalID, projectID); err != nil {
			return err
		}
		rows, err := s.images.HardDeleteForProject(dbc.Ctx, dbc.Tx, projectID, imageID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return engine.NotFoundError("project image not found")
		}
		return nil
	})
	if err != nil {
		return engine.MapError(op, err)
	}
	return nil
}

func (s *portfolioService) List(ctx context.Context, professionalID uuid.UUID) ([]*types.PortfolioProject, error) {
	const op = "portfolio.list"
	projects, err := s.projects.ListActiveByProfessional(ctx, nil, professionalID)
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	if len(projects) == 0 {
		return projects, nil
	}

	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	images, err := s.images.ListByProjectIDs(ctx, nil, ids)
	if err != nil {
		return nil, engine.MapError(op, err)
	}
	byProject := make(map[uuid.UUID][]*types.ProjectImage, len(projects))
	for _, img := range images {
		byProject[img.ProjectID] = append(byProject[img.ProjectID], img)
	}
	for _, p := range projects {
		p.Images = byProject[p.ID]
	}
	return projects, nil
}
