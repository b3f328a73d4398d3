package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oficiolab/promarket-backend/internal/pkg/ctxutil"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string, subject uuid.UUID) string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newAuthRouter(t *testing.T) (*gin.Engine, *AuthMiddleware) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	am := NewAuthMiddleware(logger.NewNop(), testSecret)
	r := gin.New()
	return r, am
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	r, am := newAuthRouter(t)
	r.GET("/me", am.RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuthRejectsBadSignature(t *testing.T) {
	r, am := newAuthRouter(t)
	r.GET("/me", am.RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	claims := Claims{
		Role: string(ctxutil.RoleProfessional),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %d", rec.Code)
	}
}

func TestRequireAuthResolvesProfessionalIdentity(t *testing.T) {
	r, am := newAuthRouter(t)
	proID := uuid.New()

	var seen *ctxutil.RequestData
	r.GET("/me", am.RequireAuth(), func(c *gin.Context) {
		seen = ctxutil.GetRequestData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, string(ctxutil.RoleProfessional), proID))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen == nil || seen.ProfessionalID != proID || seen.Role != ctxutil.RoleProfessional {
		t.Fatalf("request data not resolved: %+v", seen)
	}
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	r, am := newAuthRouter(t)
	r.POST("/admin/verify",
		am.RequireAuth(),
		am.RequireRole(ctxutil.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodPost, "/admin/verify", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, string(ctxutil.RoleProfessional), uuid.New()))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong role, got %d", rec.Code)
	}
}
