package professional

import (
	"time"

	"github.com/google/uuid"
)

// MaxActiveSpecialties is the ceiling of active specialties per professional.
const MaxActiveSpecialties = 3

type Specialty struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index;column:professional_id" json:"professional_id"`
	Name           string    `gorm:"not null;column:name" json:"name"`
	IsPrincipal    bool      `gorm:"not null;default:false;column:is_principal" json:"is_principal"`
	Active         bool      `gorm:"not null;default:true;column:active" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Specialty) TableName() string { return "specialty" }
