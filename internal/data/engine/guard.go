package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/pkg/dbctx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CeilingRule describes a ceiling-bound child collection.
type CeilingRule struct {
	ParentTable  string
	ParentColumn string
	ChildTable   string
	Ceiling      int

	// CountAll counts every child row instead of only active ones. Used for
	// hard-deleted child types that carry no active flag.
	CountAll bool
}

// CardinalityError reports a denied insert against a full collection.
type CardinalityError struct {
	Table   string
	Count   int64
	Ceiling int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s: %d active of %d allowed", e.Table, e.Count, e.Ceiling)
}

func (e *CardinalityError) Unwrap() error { return ErrCardinality }

// CardinalityGuard checks a parent's active-child count against a fixed
// ceiling before allowing insertion. CheckAndReserve must run inside the same
// transaction as the subsequent insert: it locks the parent row first so
// concurrent same-parent inserts serialize instead of racing the count.
type CardinalityGuard struct {
	db *gorm.DB
}

func NewCardinalityGuard(db *gorm.DB) CardinalityGuard {
	return CardinalityGuard{db: db}
}

func (g CardinalityGuard) baseDB(dbc dbctx.Context) (*gorm.DB, error) {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx), nil
	}
	return nil, ValidationError("cardinality check requires an open transaction")
}

// LockParent takes the parent row lock without a count. Uniqueness-guarded
// inserts (one active background check per type) and bulk reconciliation use
// it to serialize same-parent writers.
func (g CardinalityGuard) LockParent(dbc dbctx.Context, parentTable string, parentID uuid.UUID) error {
	db, err := g.baseDB(dbc)
	if err != nil {
		return err
	}
	if strings.TrimSpace(parentTable) == "" || parentID == uuid.Nil {
		return ValidationError("parent table and id are required")
	}
	var locked struct {
		ID uuid.UUID
	}
	if err := db.Table(parentTable).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ? AND active = ?", parentID, true).
		Take(&locked).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return NotFoundError(parentTable + " not found")
		}
		return err
	}
	return nil
}

// CheckAndReserve locks the parent row, counts active children and denies the
// insert when the ceiling is reached. It returns the current active count so
// callers can apply first-child rules (e.g. first specialty becomes principal).
func (g CardinalityGuard) CheckAndReserve(dbc dbctx.Context, rule CeilingRule, parentID uuid.UUID) (int64, error) {
	db, err := g.baseDB(dbc)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(rule.ChildTable) == "" || strings.TrimSpace(rule.ParentTable) == "" {
		return 0, ValidationError("ceiling rule requires parent and child tables")
	}
	if rule.Ceiling <= 0 {
		return 0, ValidationError("ceiling must be positive")
	}
	if parentID == uuid.Nil {
		return 0, ValidationError("parent id is required")
	}

	var locked struct {
		ID uuid.UUID
	}
	if err := db.Table(rule.ParentTable).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ? AND active = ?", parentID, true).
		Take(&locked).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, NotFoundError(rule.ParentTable + " not found")
		}
		return 0, err
	}

	var count int64
	childQuery := db.Table(rule.ChildTable).Where(rule.ParentColumn+" = ?", parentID)
	if !rule.CountAll {
		childQuery = childQuery.Where("active = ?", true)
	}
	if err := childQuery.Count(&count).Error; err != nil {
		return 0, err
	}
	if count >= int64(rule.Ceiling) {
		return count, &CardinalityError{Table: rule.ChildTable, Count: count, Ceiling: rule.Ceiling}
	}
	return count, nil
}
