package professional

import (
	"context"

	"github.com/google/uuid"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type BackgroundCheckRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.BackgroundCheck) ([]*types.BackgroundCheck, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.BackgroundCheck, error)
	GetActiveByType(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, checkType types.CheckType) (*types.BackgroundCheck, error)
	ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.BackgroundCheck, error)
	CountVerified(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) (int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error)
	DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type backgroundCheckRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBackgroundCheckRepo(db *gorm.DB, baseLog *logger.Logger) BackgroundCheckRepo {
	repoLog := baseLog.With("repo", "BackgroundCheckRepo")
	return &backgroundCheckRepo{db: db, log: repoLog}
}

func (r *backgroundCheckRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.BackgroundCheck) ([]*types.BackgroundCheck, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.BackgroundCheck{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *backgroundCheckRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.BackgroundCheck, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BackgroundCheck
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

func (r *backgroundCheckRepo) GetActiveByType(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, checkType types.CheckType) (*types.BackgroundCheck, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.BackgroundCheck
	if err := transaction.WithContext(ctx).
		Where("professional_id = ? AND type = ? AND active = ?", professionalID, checkType, true).
		Take(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *backgroundCheckRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.BackgroundCheck, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BackgroundCheck
	if err := transaction.WithContext(ctx).
		Where("professional_id = ? AND active = ?", professionalID, true).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *backgroundCheckRepo) CountVerified(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.BackgroundCheck{}).
		Where("professional_id = ? AND active = ? AND verified = ?", professionalID, true, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *backgroundCheckRepo) UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.BackgroundCheck{}).
		Where("id = ? AND professional_id = ? AND active = ?", id, professionalID, true).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *backgroundCheckRepo) DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.BackgroundCheck{}).
		Where("id IN ? AND professional_id = ? AND active = ?", ids, professionalID, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}
