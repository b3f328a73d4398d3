package professional

import (
	"context"

	"github.com/google/uuid"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type SocialAccountRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.SocialAccount) ([]*types.SocialAccount, error)
	ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.SocialAccount, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error)
	DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type socialAccountRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSocialAccountRepo(db *gorm.DB, baseLog *logger.Logger) SocialAccountRepo {
	repoLog := baseLog.With("repo", "SocialAccountRepo")
	return &socialAccountRepo{db: db, log: repoLog}
}

func (r *socialAccountRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.SocialAccount) ([]*types.SocialAccount, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.SocialAccount{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *socialAccountRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.SocialAccount, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.SocialAccount
	if err := transaction.WithContext(ctx).
		Where("professional_id = ? AND active = ?", professionalID, true).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *socialAccountRepo) UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.SocialAccount{}).
		Where("id = ? AND professional_id = ? AND active = ?", id, professionalID, true).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *socialAccountRepo) DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.SocialAccount{}).
		Where("id IN ? AND professional_id = ? AND active = ?", ids, professionalID, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}
