package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oficiolab/promarket-backend/internal/pkg/ctxutil"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
)

// Claims carried by access tokens. Subject is the professional id for
// professional tokens and the client id otherwise.
type Claims struct {
	Role           string `json:"role"`
	ProfessionalID string `json:"professional_id,omitempty"`
	jwt.RegisteredClaims
}

type AuthMiddleware struct {
	log       *logger.Logger
	secretKey string
}

func NewAuthMiddleware(log *logger.Logger, secretKey string) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, secretKey: secretKey}
}

// RequireAuth validates the bearer token and resolves the caller identity
// into the request context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing or invalid token", "code": "unauthorized"},
			})
			return
		}
		rd, err := am.parse(tokenString)
		if err != nil {
			am.log.Debug("Token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing or invalid token", "code": "unauthorized"},
			})
			return
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), rd)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Runs after RequireAuth.
func (am *AuthMiddleware) RequireRole(role ctxutil.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		if rd == nil || rd.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "forbidden", "code": "forbidden"},
			})
			return
		}
		c.Next()
	}
}

func (am *AuthMiddleware) parse(tokenString string) (*ctxutil.RequestData, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(am.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	rd := &ctxutil.RequestData{Role: ctxutil.Role(claims.Role)}
	switch rd.Role {
	case ctxutil.RoleProfessional:
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return nil, fmt.Errorf("invalid subject: %w", err)
		}
		rd.ProfessionalID = id
	case ctxutil.RoleClient, ctxutil.RoleAdmin:
		if claims.ProfessionalID != "" {
			id, err := uuid.Parse(claims.ProfessionalID)
			if err != nil {
				return nil, fmt.Errorf("invalid professional id: %w", err)
			}
			rd.ProfessionalID = id
		}
	default:
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	return rd, nil
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
