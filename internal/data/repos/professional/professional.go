package professional

import (
	"context"

	"github.com/google/uuid"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type ProfessionalRepo interface {
	Create(ctx context.Context, tx *gorm.DB, pros []*types.Professional) ([]*types.Professional, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Professional, error)
	GetActiveByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Professional, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (int64, error)
	Deactivate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)
}

type professionalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfessionalRepo(db *gorm.DB, baseLog *logger.Logger) ProfessionalRepo {
	repoLog := baseLog.With("repo", "ProfessionalRepo")
	return &professionalRepo{db: db, log: repoLog}
}

func (r *professionalRepo) Create(ctx context.Context, tx *gorm.DB, pros []*types.Professional) ([]*types.Professional, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(pros) == 0 {
		return []*types.Professional{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}

func (r *professionalRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Professional, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Professional
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

func (r *professionalRepo) GetActiveByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Professional, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Professional
	if err := transaction.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		Take(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *professionalRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Professional{}).
		Where("id = ? AND active = ?", id, true).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *professionalRepo) Deactivate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Professional{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}
