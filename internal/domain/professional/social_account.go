package professional

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type SocialAccount struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index;column:professional_id" json:"professional_id"`
	Platform       string    `gorm:"not null;column:platform" json:"platform"`
	URL            string    `gorm:"not null;column:url" json:"url"`
	Username       string    `gorm:"column:username" json:"username"`
	Active         bool      `gorm:"not null;default:true;column:active" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SocialAccount) TableName() string { return "social_account" }

// NormalizePlatform lowercases and trims the platform discriminator so
// "Facebook" and "facebook" reconcile to the same account.
func NormalizePlatform(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
