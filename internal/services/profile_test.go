package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/repos"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type stubProfessionalRepo struct {
	repos.ProfessionalRepo
	pro *types.Professional
	err error
}

func (s *stubProfessionalRepo) GetActiveByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Professional, error) {
	return s.pro, s.err
}

type stubSpecialtyRepo struct {
	repos.SpecialtyRepo
	rows []*types.Specialty
	err  error
}

func (s *stubSpecialtyRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.Specialty, error) {
	return s.rows, s.err
}

type stubCertificationRepo struct {
	repos.CertificationRepo
	rows []*types.Certification
	err  error
}

func (s *stubCertificationRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.Certification, error) {
	return s.rows, s.err
}

type stubProjectRepo struct {
	repos.PortfolioProjectRepo
	rows []*types.PortfolioProject
	err  error
}

func (s *stubProjectRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.PortfolioProject, error) {
	return s.rows, s.err
}

type stubImageRepo struct {
	repos.ProjectImageRepo
	rows []*types.ProjectImage
	err  error
}

func (s *stubImageRepo) ListByProjectIDs(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.ProjectImage, error) {
	return s.rows, s.err
}

type stubCheckRepo struct {
	repos.BackgroundCheckRepo
	rows []*types.BackgroundCheck
	err  error
}

func (s *stubCheckRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.BackgroundCheck, error) {
	return s.rows, s.err
}

type stubSocialRepo struct {
	repos.SocialAccountRepo
	rows []*types.SocialAccount
	err  error
}

func (s *stubSocialRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.SocialAccount, error) {
	return s.rows, s.err
}

type stubAddressRepo struct {
	repos.AddressRepo
	rows []*types.Address
	err  error
}

func (s *stubAddressRepo) ListActiveByProfessional(ctx context.Context, tx *gorm.DB, professionalID uuid.UUID) ([]*types.Address, error) {
	return s.rows, s.err
}

type stubScoreService struct {
	score float64
	err   error
}

func (s *stubScoreService) ComputeScore(ctx context.Context, professionalID uuid.UUID) (float64, error) {
	return s.score, s.err
}

func newTestProfileService(
	pros *stubProfessionalRepo,
	specialties *stubSpecialtyRepo,
	certs *stubCertificationRepo,
	projects *stubProjectRepo,
	images *stubImageRepo,
	checks *stubCheckRepo,
	socials *stubSocialRepo,
	addresses *stubAddressRepo,
	score ScoreService,
) ProfileService {
	return NewProfileService(nil, logger.NewNop(), pros, specialties, certs, projects, images, checks, socials, addresses, score)
}

func TestBuildFullProfileMissingProfessionalIsFatal(t *testing.T) {
	svc := newTestProfileService(
		&stubProfessionalRepo{err: gorm.ErrRecordNotFound},
		&stubSpecialtyRepo{}, &stubCertificationRepo{}, &stubProjectRepo{}, &stubImageRepo{},
		&stubCheckRepo{}, &stubSocialRepo{}, &stubAddressRepo{}, &stubScoreService{},
	)
	if _, err := svc.BuildFullProfile(context.Background(), uuid.New()); err == nil {
		t.Fatalf("missing base row must fail the whole composition")
	}
}

func TestBuildFullProfileIsolatesSliceFailures(t *testing.T) {
	id := uuid.New()
	pro := &types.Professional{ID: id, FirstName: "Ada", LastName: "Doe", Active: true}
	specialties := []*types.Specialty{{ID: uuid.New(), ProfessionalID: id, Name: "plumbing", IsPrincipal: true, Active: true}}

	svc := newTestProfileService(
		&stubProfessionalRepo{pro: pro},
		&stubSpecialtyRepo{rows: specialties},
		&stubCertificationRepo{err: errors.New("certifications table unavailable")},
		&stubProjectRepo{}, &stubImageRepo{},
		&stubCheckRepo{rows: []*types.BackgroundCheck{
			{ID: uuid.New(), ProfessionalID: id, Type: types.CheckTypePolice, Verified: true, Active: true},
			{ID: uuid.New(), ProfessionalID: id, Type: types.CheckTypeCriminal, Active: true},
		}},
		&stubSocialRepo{}, &stubAddressRepo{},
		&stubScoreService{score: 4.2},
	)

	view, err := svc.BuildFullProfile(context.Background(), id)
	if err != nil {
		t.Fatalf("slice failures must not abort the composition: %v", err)
	}

	if view.SliceStatuses[SliceCertifications] != types.SliceFailed {
		t.Fatalf("expected certifications slice marked failed, got %s", view.SliceStatuses[SliceCertifications])
	}
	if len(view.Certifications) != 0 {
		t.Fatalf("failed slice must come back empty")
	}
	if view.SliceStatuses[SliceSpecialties] != types.SliceOK || len(view.Specialties) != 1 {
		t.Fatalf("healthy slice should be intact, got %s with %d rows", view.SliceStatuses[SliceSpecialties], len(view.Specialties))
	}
	if view.SliceStatuses[SliceProjects] != types.SliceEmpty {
		t.Fatalf("empty slice should be marked empty, got %s", view.SliceStatuses[SliceProjects])
	}
	if view.VerifiedCheckCount != 1 {
		t.Fatalf("expected 1 verified check, got %d", view.VerifiedCheckCount)
	}
	if view.Score != 4.2 || view.SliceStatuses[SliceScore] != types.SliceOK {
		t.Fatalf("expected score 4.2 marked ok, got %v (%s)", view.Score, view.SliceStatuses[SliceScore])
	}
}

func TestBuildFullProfileScoreFailureIsNonFatal(t *testing.T) {
	id := uuid.New()
	svc := newTestProfileService(
		&stubProfessionalRepo{pro: &types.Professional{ID: id, Active: true}},
		&stubSpecialtyRepo{}, &stubCertificationRepo{}, &stubProjectRepo{}, &stubImageRepo{},
		&stubCheckRepo{}, &stubSocialRepo{}, &stubAddressRepo{},
		&stubScoreService{err: errors.New("score backend down")},
	)

	view, err := svc.BuildFullProfile(context.Background(), id)
	if err != nil {
		t.Fatalf("score failure must not abort the composition: %v", err)
	}
	if view.SliceStatuses[SliceScore] != types.SliceFailed {
		t.Fatalf("expected score slice marked failed, got %s", view.SliceStatuses[SliceScore])
	}
	if view.Score != 0 {
		t.Fatalf("failed score must read as zero, got %v", view.Score)
	}
}
