package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"gorm.io/gorm"
)

func SeedProfessional(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Professional {
	tb.Helper()
	p := &types.Professional{
		ID:         uuid.New(),
		FirstName:  name,
		LastName:   "Seed",
		Profession: "plumber",
		Active:     true,
		Available:  true,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed professional: %v", err)
	}
	return p
}

func SeedSpecialty(tb testing.TB, ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, name string, principal bool) *types.Specialty {
	tb.Helper()
	s := &types.Specialty{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		Name:           name,
		IsPrincipal:    principal,
		Active:         true,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed specialty: %v", err)
	}
	return s
}

func SeedCertification(tb testing.TB, ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, title string, position int) *types.Certification {
	tb.Helper()
	c := &types.Certification{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		Title:          title,
		Issuer:         "issuer",
		Position:       position,
		Active:         true,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed certification: %v", err)
	}
	return c
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, title, status string, rating *float64) *types.PortfolioProject {
	tb.Helper()
	p := &types.PortfolioProject{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		Title:          title,
		Status:         status,
		ClientRating:   rating,
		Active:         true,
	}
	if status == types.ProjectStatusCompleted {
		p.CompletedAt = PtrTime(time.Now().UTC())
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedProjectImage(tb testing.TB, ctx context.Context, tx *gorm.DB, projectID uuid.UUID, stage types.ImageStage, position int) *types.ProjectImage {
	tb.Helper()
	img := &types.ProjectImage{
		ID:        uuid.New(),
		ProjectID: projectID,
		Stage:     stage,
		URL:       "https://img.example/p.jpg",
		Position:  position,
	}
	if err := tx.WithContext(ctx).Create(img).Error; err != nil {
		tb.Fatalf("seed project image: %v", err)
	}
	return img
}

func SeedBackgroundCheck(tb testing.TB, ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, checkType types.CheckType, verified bool) *types.BackgroundCheck {
	tb.Helper()
	bc := &types.BackgroundCheck{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		Type:           checkType,
		DocumentURL:    "https://docs.example/check.pdf",
		Verified:       verified,
		Active:         true,
	}
	if verified {
		bc.VerifiedAt = PtrTime(time.Now().UTC())
	}
	if err := tx.WithContext(ctx).Create(bc).Error; err != nil {
		tb.Fatalf("seed background check: %v", err)
	}
	return bc
}

func SeedSocialAccount(tb testing.TB, ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, platform string) *types.SocialAccount {
	tb.Helper()
	sa := &types.SocialAccount{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		Platform:       platform,
		URL:            "https://" + platform + ".example/u",
		Active:         true,
	}
	if err := tx.WithContext(ctx).Create(sa).Error; err != nil {
		tb.Fatalf("seed social account: %v", err)
	}
	return sa
}

func SeedAddress(tb testing.TB, ctx context.Context, tx *gorm.DB, professionalID uuid.UUID, street string, principal bool) *types.Address {
	tb.Helper()
	a := &types.Address{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		Street:         street,
		City:           "Springfield",
		IsPrincipal:    principal,
		Active:         true,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed address: %v", err)
	}
	return a
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }

func PtrTime(v time.Time) *time.Time { return &v }

func PtrFloat(v float64) *float64 { return &v }
