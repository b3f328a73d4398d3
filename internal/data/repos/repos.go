package repos

import (
	"github.com/oficiolab/promarket-backend/internal/data/repos/professional"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type ProfessionalRepo = professional.ProfessionalRepo
type SpecialtyRepo = professional.SpecialtyRepo
type CertificationRepo = professional.CertificationRepo
type PortfolioProjectRepo = professional.PortfolioProjectRepo
type ProjectImageRepo = professional.ProjectImageRepo
type BackgroundCheckRepo = professional.BackgroundCheckRepo
type SocialAccountRepo = professional.SocialAccountRepo
type AddressRepo = professional.AddressRepo

func NewProfessionalRepo(db *gorm.DB, baseLog *logger.Logger) ProfessionalRepo {
	return professional.NewProfessionalRepo(db, baseLog)
}

func NewSpecialtyRepo(db *gorm.DB, baseLog *logger.Logger) SpecialtyRepo {
	return professional.NewSpecialtyRepo(db, baseLog)
}

func NewCertificationRepo(db *gorm.DB, baseLog *logger.Logger) CertificationRepo {
	return professional.NewCertificationRepo(db, baseLog)
}

func NewPortfolioProjectRepo(db *gorm.DB, baseLog *logger.Logger) PortfolioProjectRepo {
	return professional.NewPortfolioProjectRepo(db, baseLog)
}

func NewProjectImageRepo(db *gorm.DB, baseLog *logger.Logger) ProjectImageRepo {
	return professional.NewProjectImageRepo(db, baseLog)
}

func NewBackgroundCheckRepo(db *gorm.DB, baseLog *logger.Logger) BackgroundCheckRepo {
	return professional.NewBackgroundCheckRepo(db, baseLog)
}

func NewSocialAccountRepo(db *gorm.DB, baseLog *logger.Logger) SocialAccountRepo {
	return professional.NewSocialAccountRepo(db, baseLog)
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	return professional.NewAddressRepo(db, baseLog)
}
