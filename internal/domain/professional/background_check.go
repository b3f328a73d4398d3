package professional

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CheckType is the discriminator for background-check records. At most one
// active record per type may exist for a professional.
type CheckType string

const (
	CheckTypePolice   CheckType = "police"
	CheckTypeCriminal CheckType = "criminal"
	CheckTypeJudicial CheckType = "judicial"
)

func (t CheckType) Valid() bool {
	switch t {
	case CheckTypePolice, CheckTypeCriminal, CheckTypeJudicial:
		return true
	}
	return false
}

func NormalizeCheckType(raw string) CheckType {
	return CheckType(strings.ToLower(strings.TrimSpace(raw)))
}

type BackgroundCheck struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfessionalID uuid.UUID  `gorm:"type:uuid;not null;index;column:professional_id" json:"professional_id"`
	Type           CheckType  `gorm:"not null;column:type" json:"type"`
	DocumentURL    string     `gorm:"not null;column:document_url" json:"document_url"`
	IssuedAt       *time.Time `gorm:"column:issued_at" json:"issued_at,omitempty"`
	Verified       bool       `gorm:"not null;default:false;column:verified" json:"verified"`
	VerifiedAt     *time.Time `gorm:"column:verified_at" json:"verified_at,omitempty"`
	Active         bool       `gorm:"not null;default:true;column:active" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (BackgroundCheck) TableName() string { return "background_check" }
