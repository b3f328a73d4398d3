package professional

import (
	"time"

	"github.com/google/uuid"
)

// MaxActiveAddresses is the ceiling of active addresses per professional.
const MaxActiveAddresses = 3

type Address struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index;column:professional_id" json:"professional_id"`
	Street         string    `gorm:"not null;column:street" json:"street"`
	City           string    `gorm:"not null;column:city" json:"city"`
	Region         string    `gorm:"column:region" json:"region"`
	PostalCode     string    `gorm:"column:postal_code" json:"postal_code"`
	IsPrincipal    bool      `gorm:"not null;default:false;column:is_principal" json:"is_principal"`
	Active         bool      `gorm:"not null;default:true;column:active" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Address) TableName() string { return "address" }
