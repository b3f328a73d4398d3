package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// Engine primitives and repos accept it so multi-statement operations can
// share one transaction boundary.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
