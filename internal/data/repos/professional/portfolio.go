package professional

import (
	"context"

	"github.com/google/uuid"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type PortfolioProjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.PortfolioProject) ([]*types.PortfolioProject, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.PortfolioProject, error)
	GetActiveForProfessional(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID) (*types.PortfolioProject, error)
	ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.PortfolioProject, error)
	CompletedRatings(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]float64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error)
	DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type portfolioProjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPortfolioProjectRepo(db *gorm.DB, baseLog *logger.Logger) PortfolioProjectRepo {
	repoLog := baseLog.With("repo", "PortfolioProjectRepo")
	return &portfolioProjectRepo{db: db, log: repoLog}
}

func (r *portfolioProjectRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.PortfolioProject) ([]*types.PortfolioProject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.PortfolioProject{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *portfolioProjectRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.PortfolioProject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.PortfolioProject
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *portfolioProjectRepo) GetActiveForProfessional(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID) (*types.PortfolioProject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.PortfolioProject
	if err := transaction.WithContext(ctx).
		Where("id = ? AND professional_id = ? AND active = ?", id, professionalID, true).
		Take(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *portfolioProjectRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.PortfolioProject, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.PortfolioProject
	if err := transaction.WithContext(ctx).
		Where("professional_id = ? AND active = ?", professionalID, true).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *portfolioProjectRepo) CompletedRatings(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var ratings []float64
	if err := transaction.WithContext(ctx).
		Model(&types.PortfolioProject{}).
		Where("professional_id = ? AND active = ? AND status = ? AND client_rating IS NOT NULL",
			professionalID, true, types.ProjectStatusCompleted).
		Pluck("client_rating", &ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *portfolioProjectRepo) UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.PortfolioProject{}).
		Where("id = ? AND professional_id = ? AND active = ?", id, professionalID, true).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *portfolioProjectRepo) DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.PortfolioProject{}).
		Where("id IN ? AND professional_id = ? AND active = ?", ids, professionalID, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}

type ProjectImageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ProjectImage) ([]*types.ProjectImage, error)
	ListByProjectIDs(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.ProjectImage, error)
	HardDeleteForProject(ctx context.Context, tx *gorm.DB, projectID, id uuid.UUID) (int64, error)
}

type projectImageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectImageRepo(db *gorm.DB, baseLog *logger.Logger) ProjectImageRepo {
	repoLog := baseLog.With("repo", "ProjectImageRepo")
	return &projectImageRepo{db: db, log: repoLog}
}

func (r *projectImageRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ProjectImage) ([]*types.ProjectImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.ProjectImage{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *projectImageRepo) ListByProjectIDs(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.ProjectImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ProjectImage
	if len(projectIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Order("position ASC, created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectImageRepo) HardDeleteForProject(ctx context.Context, tx *gorm.DB, projectID, id uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ? AND project_id = ?", id, projectID).
		Delete(&types.ProjectImage{})
	return res.RowsAffected, res.Error
}
