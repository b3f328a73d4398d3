package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/pkg/dbctx"
	"gorm.io/gorm"
)

// PrincipalScope identifies the active set a principal swap operates on.
type PrincipalScope struct {
	Table        string
	ParentColumn string

	// Optional discriminator narrowing the set (e.g. background-check type).
	DiscrColumn string
	DiscrValue  any
}

// PrincipalSelector ensures exactly one principal child per (parent,
// discriminator). The unset-all and set-one updates run inside the caller's
// transaction; an observer never sees zero or two principals for an active set.
type PrincipalSelector struct {
	db *gorm.DB
}

func NewPrincipalSelector(db *gorm.DB) PrincipalSelector {
	return PrincipalSelector{db: db}
}

// SetPrincipal unsets every active principal in scope, then flags the target.
// When the target update touches no row (missing, inactive, or owned by
// another parent) the whole transaction rolls back with not found.
func (s PrincipalSelector) SetPrincipal(dbc dbctx.Context, scope PrincipalScope, parentID, childID uuid.UUID) error {
	if dbc.Tx == nil {
		return ValidationError("principal swap requires an open transaction")
	}
	if strings.TrimSpace(scope.Table) == "" || strings.TrimSpace(scope.ParentColumn) == "" {
		return ValidationError("principal scope requires table and parent column")
	}
	if parentID == uuid.Nil || childID == uuid.Nil {
		return ValidationError("parent and child ids are required")
	}
	db := dbc.Tx.WithContext(dbc.Ctx)

	unset := db.Table(scope.Table).
		Where(scope.ParentColumn+" = ? AND active = ?", parentID, true)
	if scope.DiscrColumn != "" {
		unset = unset.Where(scope.DiscrColumn+" = ?", scope.DiscrValue)
	}
	if err := unset.Update("is_principal", false).Error; err != nil {
		return err
	}

	res := db.Table(scope.Table).
		Where("id = ? AND "+scope.ParentColumn+" = ? AND active = ?", childID, parentID, true).
		Updates(map[string]any{
			"is_principal": true,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFoundError(scope.Table + " target not found for principal swap")
	}
	return nil
}
