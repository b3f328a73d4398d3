package professional

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Professional struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName       string         `gorm:"not null;column:first_name" json:"first_name"`
	LastName        string         `gorm:"not null;column:last_name" json:"last_name"`
	Profession      string         `gorm:"column:profession" json:"profession"`
	Bio             string         `gorm:"type:text;column:bio" json:"bio"`
	YearsExperience int            `gorm:"not null;default:0;column:years_experience" json:"years_experience"`
	Verified        bool           `gorm:"not null;default:false;column:verified" json:"verified"`
	Available       bool           `gorm:"not null;default:true;column:available" json:"available"`
	Active          bool           `gorm:"not null;default:true;column:active" json:"active"`
	Metadata        datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Professional) TableName() string { return "professional" }
