package domain

import (
	"github.com/oficiolab/promarket-backend/internal/domain/professional"
)

type Professional = professional.Professional
type Specialty = professional.Specialty
type Certification = professional.Certification
type PortfolioProject = professional.PortfolioProject
type ProjectImage = professional.ProjectImage
type BackgroundCheck = professional.BackgroundCheck
type SocialAccount = professional.SocialAccount
type Address = professional.Address
type ProfileView = professional.ProfileView

type CheckType = professional.CheckType
type ImageStage = professional.ImageStage
type SliceStatus = professional.SliceStatus

const (
	MaxActiveSpecialties = professional.MaxActiveSpecialties
	MaxActiveProjects    = professional.MaxActiveProjects
	MaxProjectImages     = professional.MaxProjectImages
	MaxActiveAddresses   = professional.MaxActiveAddresses

	ProjectStatusInProgress = professional.ProjectStatusInProgress
	ProjectStatusCompleted  = professional.ProjectStatusCompleted

	CheckTypePolice   = professional.CheckTypePolice
	CheckTypeCriminal = professional.CheckTypeCriminal
	CheckTypeJudicial = professional.CheckTypeJudicial

	ImageStageBefore  = professional.ImageStageBefore
	ImageStageAfter   = professional.ImageStageAfter
	ImageStageProcess = professional.ImageStageProcess
	ImageStageGeneral = professional.ImageStageGeneral

	SliceOK     = professional.SliceOK
	SliceEmpty  = professional.SliceEmpty
	SliceFailed = professional.SliceFailed
)

func NormalizePlatform(raw string) string { return professional.NormalizePlatform(raw) }
func NormalizeCheckType(raw string) CheckType {
	return professional.NormalizeCheckType(raw)
}
func NormalizeImageStage(raw string) ImageStage {
	return professional.NormalizeImageStage(raw)
}
