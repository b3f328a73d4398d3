package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/oficiolab/promarket-backend/internal/http/handlers"
	httpMW "github.com/oficiolab/promarket-backend/internal/http/middleware"
	"github.com/oficiolab/promarket-backend/internal/pkg/ctxutil"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *httpMW.AuthMiddleware

	ProfessionalHandler    *httpH.ProfessionalHandler
	SpecialtyHandler       *httpH.SpecialtyHandler
	CertificationHandler   *httpH.CertificationHandler
	PortfolioHandler       *httpH.PortfolioHandler
	BackgroundCheckHandler *httpH.BackgroundCheckHandler
	SocialAccountHandler   *httpH.SocialAccountHandler
	AddressHandler         *httpH.AddressHandler
	ProfileHandler         *httpH.ProfileHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Public reads
		if cfg.ProfessionalHandler != nil {
			api.POST("/professionals", cfg.ProfessionalHandler.Create)
			api.GET("/professionals/:id", cfg.ProfessionalHandler.Get)
		}
		if cfg.ProfileHandler != nil {
			api.GET("/professionals/:id/profile", cfg.ProfileHandler.GetFullProfile)
			api.GET("/professionals/:id/score", cfg.ProfileHandler.GetScore)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Owner surface (me)
		me := protected.Group("/me")
		if cfg.AuthMiddleware != nil {
			me.Use(cfg.AuthMiddleware.RequireRole(ctxutil.RoleProfessional))
		}
		{
			if cfg.ProfessionalHandler != nil {
				me.PATCH("/profile", cfg.ProfessionalHandler.UpdateMyProfile)
				me.PATCH("/availability", cfg.ProfessionalHandler.SetMyAvailability)
				me.DELETE("", cfg.ProfessionalHandler.DeactivateMe)
			}

			if cfg.SpecialtyHandler != nil {
				me.GET("/specialties", cfg.SpecialtyHandler.List)
				me.POST("/specialties", cfg.SpecialtyHandler.Add)
				me.POST("/specialties/:id/principal", cfg.SpecialtyHandler.SetPrincipal)
				me.DELETE("/specialties/:id", cfg.SpecialtyHandler.Deactivate)
			}

			if cfg.CertificationHandler != nil {
				me.GET("/certifications", cfg.CertificationHandler.List)
				me.POST("/certifications", cfg.CertificationHandler.Add)
				me.PUT("/certifications/order", cfg.CertificationHandler.Reorder)
				me.PATCH("/certifications/:id", cfg.CertificationHandler.Update)
				me.DELETE("/certifications/:id", cfg.CertificationHandler.Deactivate)
			}

			if cfg.PortfolioHandler != nil {
				me.GET("/projects", cfg.PortfolioHandler.List)
				me.POST("/projects", cfg.PortfolioHandler.AddProject)
				me.PATCH("/projects/:id", cfg.PortfolioHandler.UpdateProject)
				me.DELETE("/projects/:id", cfg.PortfolioHandler.DeactivateProject)
				me.POST("/projects/:id/images", cfg.PortfolioHandler.AddImage)
				me.DELETE("/projects/:id/images/:image_id", cfg.PortfolioHandler.DeleteImage)
			}

			if cfg.BackgroundCheckHandler != nil {
				me.GET("/background-checks", cfg.BackgroundCheckHandler.List)
				me.POST("/background-checks", cfg.BackgroundCheckHandler.Add)
				me.PATCH("/background-checks/:id", cfg.BackgroundCheckHandler.UpdateDocument)
				me.DELETE("/background-checks/:id", cfg.BackgroundCheckHandler.Deactivate)
			}

			if cfg.SocialAccountHandler != nil {
				me.GET("/social-accounts", cfg.SocialAccountHandler.List)
				me.PUT("/social-accounts", cfg.SocialAccountHandler.Replace)
			}

			if cfg.AddressHandler != nil {
				me.GET("/addresses", cfg.AddressHandler.List)
				me.POST("/addresses", cfg.AddressHandler.Add)
				me.PATCH("/addresses/:id", cfg.AddressHandler.Update)
				me.POST("/addresses/:id/principal", cfg.AddressHandler.SetPrincipal)
				me.DELETE("/addresses/:id", cfg.AddressHandler.Deactivate)
			}
		}

		// Client surface
		client := protected.Group("/")
		if cfg.AuthMiddleware != nil {
			client.Use(cfg.AuthMiddleware.RequireRole(ctxutil.RoleClient))
		}
		{
			if cfg.PortfolioHandler != nil {
				client.POST("/professionals/:id/projects/:project_id/rating", cfg.PortfolioHandler.RateProject)
			}
		}

		// Admin surface
		admin := protected.Group("/admin")
		if cfg.AuthMiddleware != nil {
			admin.Use(cfg.AuthMiddleware.RequireRole(ctxutil.RoleAdmin))
		}
		{
			if cfg.ProfessionalHandler != nil {
				admin.POST("/professionals/:id/verify", cfg.ProfessionalHandler.Verify)
			}
			if cfg.BackgroundCheckHandler != nil {
				admin.POST("/professionals/:id/background-checks/:check_id/verify", cfg.BackgroundCheckHandler.Verify)
			}
		}
	}

	return r
}
