package professional

import (
	"context"

	"github.com/google/uuid"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type AddressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Address) ([]*types.Address, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Address, error)
	ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.Address, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error)
	DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error)
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	repoLog := baseLog.With("repo", "AddressRepo")
	return &addressRepo{db: db, log: repoLog}
}

func (r *addressRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Address) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Address{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *addressRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Address
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

func (r *addressRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Address
	if err := transaction.WithContext(ctx).
		Where("professional_id = ? AND active = ?", professionalID, true).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *addressRepo) UpdateFields(ctx context.Context, tx *gorm.DB, professionalID, id uuid.UUID, updates map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Address{}).
		Where("id = ? AND professional_id = ? AND active = ?", id, professionalID, true).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *addressRepo) DeactivateByIDs(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, ids []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.Address{}).
		Where("id IN ? AND professional_id = ? AND active = ?", ids, professionalID, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}
