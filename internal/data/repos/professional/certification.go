package professional

import (
	"context"

	"github.com/google/uuid"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type CertificationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Certification) ([]*types.Certification, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Certification, error)
	ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.Certification, error)
	CountActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) (int64, error)
	NextPosition(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) (int, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error)
	DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type certificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCertificationRepo(db *gorm.DB, baseLog *logger.Logger) CertificationRepo {
	repoLog := baseLog.With("repo", "CertificationRepo")
	return &certificationRepo{db: db, log: repoLog}
}

func (r *certificationRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Certification) ([]*types.Certification, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Certification{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *certificationRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Certification, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Certification
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

func (r *certificationRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.Certification, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Certification
	if err := transaction.WithContext(ctx).
		Where("professional_id = ? AND active = ?", professionalID, true).
		Order("position ASC, created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *certificationRepo) CountActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Certification{}).
		Where("professional_id = ? AND active = ?", professionalID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *certificationRepo) NextPosition(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var max *int
	if err := transaction.WithContext(ctx).
		Model(&types.Certification{}).
		Select("MAX(position)").
		Where("professional_id = ? AND active = ?", professionalID, true).
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

func (r *certificationRepo) UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Certification{}).
		Where("id = ? AND professional_id = ? AND active = ?", id, professionalID, true).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *certificationRepo) DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.Certification{}).
		Where("id IN ? AND professional_id = ? AND active = ?", ids, professionalID, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}
