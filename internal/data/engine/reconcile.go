package engine

import (
	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/pkg/dbctx"
)

// DesiredChild is one element of a caller-supplied desired-state list. An
// element carrying an existing id is an update target; one without is a new
// record.
type DesiredChild interface {
	DesiredID() *uuid.UUID
}

// Plan is the computed diff between stored rows and a desired list.
type Plan[T DesiredChild] struct {
	Deactivate []uuid.UUID
	Update     []T
	Insert     []T
}

// PlanReconcile diffs the current active ids against the desired list.
// The desired list is the caller's complete intent: rows absent from it are
// deactivated, rows with ids are updated, rows without ids are inserted.
// An empty desired list is a validation error, not a delete-all. A desired id
// that is not among the current rows is not found - ownership and existence
// checks are fused so foreign ids are indistinguishable from missing ones.
func PlanReconcile[T DesiredChild](currentIDs []uuid.UUID, desired []T) (Plan[T], error) {
	var plan Plan[T]
	if len(desired) == 0 {
		return plan, ValidationError("desired list must not be empty")
	}

	current := make(map[uuid.UUID]struct{}, len(currentIDs))
	for _, id := range currentIDs {
		current[id] = struct{}{}
	}

	keep := make(map[uuid.UUID]struct{}, len(desired))
	for _, item := range desired {
		id := item.DesiredID()
		if id == nil || *id == uuid.Nil {
			plan.Insert = append(plan.Insert, item)
			continue
		}
		if _, ok := current[*id]; !ok {
			return Plan[T]{}, NotFoundError("desired row does not exist")
		}
		if _, dup := keep[*id]; dup {
			return Plan[T]{}, ValidationError("desired list repeats an id")
		}
		keep[*id] = struct{}{}
		plan.Update = append(plan.Update, item)
	}

	for _, id := range currentIDs {
		if _, ok := keep[id]; !ok {
			plan.Deactivate = append(plan.Deactivate, id)
		}
	}
	return plan, nil
}

// ApplyOps are the per-type write callbacks a reconcile plan is applied with.
// Each callback runs inside the transaction held by dbc.
type ApplyOps[T DesiredChild] struct {
	Deactivate func(dbc dbctx.Context, ids []uuid.UUID) error
	Update     func(dbc dbctx.Context, item T) error
	Insert     func(dbc dbctx.Context, item T) error
}

// ApplyPlan executes a reconcile plan as one unit: deactivations, then in-place
// updates, then inserts. Any failure aborts the whole batch - partial
// reconciliation must never be visible, so callers run this inside InTx.
func ApplyPlan[T DesiredChild](dbc dbctx.Context, plan Plan[T], ops ApplyOps[T]) error {
	if dbc.Tx == nil {
		return ValidationError("reconcile requires an open transaction")
	}
	if len(plan.Deactivate) > 0 {
		if ops.Deactivate == nil {
			return ValidationError("reconcile ops missing deactivate")
		}
		if err := ops.Deactivate(dbc, plan.Deactivate); err != nil {
			return err
		}
	}
	for _, item := range plan.Update {
		if ops.Update == nil {
			return ValidationError("reconcile ops missing update")
		}
		if err := ops.Update(dbc, item); err != nil {
			return err
		}
	}
	for _, item := range plan.Insert {
		if ops.Insert == nil {
			return ValidationError("reconcile ops missing insert")
		}
		if err := ops.Insert(dbc, item); err != nil {
			return err
		}
	}
	return nil
}
