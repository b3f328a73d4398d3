package professional

import (
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfessionalID uuid.UUID  `gorm:"type:uuid;not null;index;column:professional_id" json:"professional_id"`
	Title          string     `gorm:"not null;column:title" json:"title"`
	Issuer         string     `gorm:"column:issuer" json:"issuer"`
	IssuedAt       *time.Time `gorm:"column:issued_at" json:"issued_at,omitempty"`
	Position       int        `gorm:"not null;default:0;column:position" json:"position"`
	Active         bool       `gorm:"not null;default:true;column:active" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Certification) TableName() string { return "certification" }
