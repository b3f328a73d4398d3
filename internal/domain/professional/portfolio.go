package professional

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	// MaxActiveProjects is the ceiling of active portfolio projects per professional.
	MaxActiveProjects = 20
	// MaxProjectImages is the ceiling of images per portfolio project.
	MaxProjectImages = 5
)

const (
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
)

type PortfolioProject struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfessionalID uuid.UUID      `gorm:"type:uuid;not null;index;column:professional_id" json:"professional_id"`
	Title          string         `gorm:"not null;column:title" json:"title"`
	Description    string         `gorm:"type:text;column:description" json:"description"`
	Status         string         `gorm:"not null;default:'in_progress';column:status" json:"status"`
	CompletedAt    *time.Time     `gorm:"column:completed_at" json:"completed_at,omitempty"`
	ClientRating   *float64       `gorm:"column:client_rating" json:"client_rating,omitempty"`
	ClientComment  string         `gorm:"type:text;column:client_comment" json:"client_comment,omitempty"`
	Metadata       datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	Active         bool           `gorm:"not null;default:true;column:active" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Images []*ProjectImage `gorm:"-" json:"images,omitempty"`
}

func (PortfolioProject) TableName() string { return "portfolio_project" }

// ImageStage is the discriminator for portfolio project images.
type ImageStage string

const (
	ImageStageBefore  ImageStage = "before"
	ImageStageAfter   ImageStage = "after"
	ImageStageProcess ImageStage = "process"
	ImageStageGeneral ImageStage = "general"
)

func (s ImageStage) Valid() bool {
	switch s {
	case ImageStageBefore, ImageStageAfter, ImageStageProcess, ImageStageGeneral:
		return true
	}
	return false
}

// NormalizeImageStage lowercases/trims raw input; empty input maps to general.
func NormalizeImageStage(raw string) ImageStage {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ImageStageGeneral
	}
	return ImageStage(raw)
}

// ProjectImage rows are the one hard-deleted child type.
type ProjectImage struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID uuid.UUID  `gorm:"type:uuid;not null;index;column:project_id" json:"project_id"`
	Stage     ImageStage `gorm:"not null;default:'general';column:stage" json:"stage"`
	URL       string     `gorm:"not null;column:url" json:"url"`
	Position  int        `gorm:"not null;default:0;column:position" json:"position"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProjectImage) TableName() string { return "project_image" }
