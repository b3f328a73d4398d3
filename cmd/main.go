package main

import (
	"fmt"
	"os"

	"github.com/oficiolab/promarket-backend/internal/data/db"
	"github.com/oficiolab/promarket-backend/internal/data/repos"
	httpServer "github.com/oficiolab/promarket-backend/internal/http"
	httpH "github.com/oficiolab/promarket-backend/internal/http/handlers"
	httpMW "github.com/oficiolab/promarket-backend/internal/http/middleware"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"github.com/oficiolab/promarket-backend/internal/services"
	"github.com/oficiolab/promarket-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	professionalRepo := repos.NewProfessionalRepo(thePG, log)
	specialtyRepo := repos.NewSpecialtyRepo(thePG, log)
	certificationRepo := repos.NewCertificationRepo(thePG, log)
	portfolioProjectRepo := repos.NewPortfolioProjectRepo(thePG, log)
	projectImageRepo := repos.NewProjectImageRepo(thePG, log)
	backgroundCheckRepo := repos.NewBackgroundCheckRepo(thePG, log)
	socialAccountRepo := repos.NewSocialAccountRepo(thePG, log)
	addressRepo := repos.NewAddressRepo(thePG, log)

	// Services
	log.Info("Setting up services from main...")
	professionalService := services.NewProfessionalService(thePG, log, professionalRepo)
	specialtyService := services.NewSpecialtyService(thePG, log, specialtyRepo)
	certificationService := services.NewCertificationService(thePG, log, certificationRepo)
	portfolioService := services.NewPortfolioService(thePG, log, portfolioProjectRepo, projectImageRepo)
	backgroundCheckService := services.NewBackgroundCheckService(thePG, log, backgroundCheckRepo)
	socialAccountService := services.NewSocialAccountService(thePG, log, socialAccountRepo)
	addressService := services.NewAddressService(thePG, log, addressRepo)
	scoreService := services.NewScoreService(thePG, log, professionalRepo, portfolioProjectRepo, certificationRepo, backgroundCheckRepo)
	profileService := services.NewProfileService(
		thePG,
		log,
		professionalRepo,
		specialtyRepo,
		certificationRepo,
		portfolioProjectRepo,
		projectImageRepo,
		backgroundCheckRepo,
		socialAccountRepo,
		addressRepo,
		scoreService,
	)

	// Handlers
	log.Info("Setting up handlers from main...")
	professionalHandler := httpH.NewProfessionalHandler(professionalService)
	specialtyHandler := httpH.NewSpecialtyHandler(specialtyService)
	certificationHandler := httpH.NewCertificationHandler(certificationService)
	portfolioHandler := httpH.NewPortfolioHandler(portfolioService)
	backgroundCheckHandler := httpH.NewBackgroundCheckHandler(backgroundCheckService)
	socialAccountHandler := httpH.NewSocialAccountHandler(socialAccountService)
	addressHandler := httpH.NewAddressHandler(addressService)
	profileHandler := httpH.NewProfileHandler(profileService, scoreService)
	healthHandler := httpH.NewHealthHandler()

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := httpMW.NewAuthMiddleware(log, jwtSecretKey)

	// Router
	log.Info("Setting up router from main...")
	server := httpServer.NewServer(httpServer.RouterConfig{
		Log:                    log,
		AuthMiddleware:         authMiddleware,
		ProfessionalHandler:    professionalHandler,
		SpecialtyHandler:       specialtyHandler,
		CertificationHandler:   certificationHandler,
		PortfolioHandler:       portfolioHandler,
		BackgroundCheckHandler: backgroundCheckHandler,
		SocialAccountHandler:   socialAccountHandler,
		AddressHandler:         addressHandler,
		ProfileHandler:         profileHandler,
		HealthHandler:          healthHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := server.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
