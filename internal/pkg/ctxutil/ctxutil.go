package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const requestDataKey contextKey = "request_data"

// Role of the acting caller, resolved by the auth middleware.
type Role string

const (
	RoleProfessional Role = "professional"
	RoleClient       Role = "client"
	RoleAdmin        Role = "admin"
)

// RequestData carries the identity resolved from the inbound request.
type RequestData struct {
	ProfessionalID uuid.UUID
	Role           Role
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, ok := ctx.Value(requestDataKey).(*RequestData)
	if !ok {
		return nil
	}
	return rd
}
