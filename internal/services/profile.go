package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/engine"
	"github.com/oficiolab/promarket-backend/internal/data/repos"
	types "github.com/oficiolab/promarket-backend/internal/domain"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	SliceSpecialties      = "specialties"
	SliceCertifications   = "certifications"
	SliceProjects         = "projects"
	SliceBackgroundChecks = "background_checks"
	SliceSocialAccounts   = "social_accounts"
	SliceAddresses        = "addresses"
	SliceScore            = "score"
)

type ProfileService interface {
	BuildFullProfile(ctx context.Context, professionalID uuid.UUID) (*types.ProfileView, error)
}

type profileService struct {
	db            *gorm.DB
	log           *logger.Logger
	professionals repos.ProfessionalRepo
	specialties   repos.SpecialtyRepo
	certs         repos.CertificationRepo
	projects      repos.PortfolioProjectRepo
	images        repos.ProjectImageRepo
	checks        repos.BackgroundCheckRepo
	socials       repos.SocialAccountRepo
	addresses     repos.AddressRepo
	score         ScoreService
}

func NewProfileService(
	db *gorm.DB,
	log *logger.Logger,
	professionals repos.ProfessionalRepo,
	specialties repos.SpecialtyRepo,
	certs repos.CertificationRepo,
	projects repos.PortfolioProjectRepo,
	images repos.ProjectImageRepo,
	checks repos.BackgroundCheckRepo,
	socials repos.SocialAccountRepo,
	addresses repos.AddressRepo,
	score ScoreService,
) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{
		db:            db,
		log:           serviceLog,
		professionals: professionals,
		specialties:   specialties,
		certs:         certs,
		projects:      projects,
		images:        images,
		checks:        checks,
		socials:       socials,
		addresses:     addresses,
		score:         score,
	}
}

// BuildFullProfile composes the full read model. The base professional row is
// mandatory; every child slice and the score are fetched concurrently and are
// best-effort. A failed slice comes back empty with its status set to failed,
// never aborting the whole composition.
func (s *profileService) BuildFullProfile(ctx context.Context, professionalID uuid.UUID) (*types.ProfileView, error) {
	const op = "profile.build_full"
	pro, err := s.professionals.GetActiveByID(ctx, nil, professionalID)
	if err != nil {
		return nil, engine.MapError(op, err)
	}

	view := &types.ProfileView{
		Professional:     pro,
		Specialties:      []*types.Specialty{},
		Certifications:   []*types.Certification{},
		Projects:         []*types.PortfolioProject{},
		BackgroundChecks: []*types.BackgroundCheck{},
		SocialAccounts:   []*types.SocialAccount{},
		Addresses:        []*types.Address{},
		SliceStatuses:    make(map[string]types.SliceStatus, 7),
	}

	var mu sync.Mutex
	setSlice := func(name string, failed bool, empty bool, apply func()) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case failed:
			view.SliceStatuses[name] = types.SliceFailed
		case empty:
			view.SliceStatuses[name] = types.SliceEmpty
		default:
			view.SliceStatuses[name] = types.SliceOK
			apply()
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.specialties.ListActiveByProfessional(gctx, nil, professionalID)
		if err != nil {
			s.log.Warn("Profile slice fetch failed", "slice", SliceSpecialties, "professional_id", professionalID, "error", err)
		}
		setSlice(SliceSpecialties, err != nil, len(rows) == 0, func() { view.Specialties = rows })
		return nil
	})

	g.Go(func() error {
		rows, err := s.certs.ListActiveByProfessional(gctx, nil, professionalID)
		if err != nil {
			s.log.Warn("Profile slice fetch failed", "slice", SliceCertifications, "professional_id", professionalID, "error", err)
		}
		setSlice(SliceCertifications, err != nil, len(rows) == 0, func() { view.Certifications = rows })
		return nil
	})

	g.Go(func() error {
		rows, err := s.projects.ListActiveByProfessional(gctx, nil, professionalID)
		if err == nil && len(rows) > 0 {
			ids := make([]uuid.UUID, 0, len(rows))
			for _, p := range rows {
				ids = append(ids, p.ID)
			}
			images, imgErr := s.images.ListByProjectIDs(gctx, nil, ids)
			if imgErr != nil {
				s.log.Warn("Profile slice fetch failed", "slice", SliceProjects, "professional_id", professionalID, "error", imgErr)
				err = imgErr
			} else {
				byProject := make(map[uuid.UUID][]*types.ProjectImage, len(rows))
				for _, img := range images {
					byProject[img.ProjectID] = append(byProject[img.ProjectID], img)
				}
				for _, p := range rows {
					p.Images = byProject[p.ID]
				}
			}
		} else if err != nil {
			s.log.Warn("Profile slice fetch failed", "slice", SliceProjects, "professional_id", professionalID, "error", err)
		}
		setSlice(SliceProjects, err != nil, len(rows) == 0, func() { view.Projects = rows })
		return nil
	})

	g.Go(func() error {
		rows, err := s.checks.ListActiveByProfessional(gctx, nil, professionalID)
		if err != nil {
			s.log.Warn("Profile slice fetch failed", "slice", SliceBackgroundChecks, "professional_id", professionalID, "error", err)
		}
		setSlice(SliceBackgroundChecks, err != nil, len(rows) == 0, func() {
			view.BackgroundChecks = rows
			for _, check := range rows {
				if check.Verified {
					view.VerifiedCheckCount++
				}
			}
		})
		return nil
	})

	g.Go(func() error {
		rows, err := s.socials.ListActiveByProfessional(gctx, nil, professionalID)
		if err != nil {
			s.log.Warn("Profile slice fetch failed", "slice", SliceSocialAccounts, "professional_id", professionalID, "error", err)
		}
		setSlice(SliceSocialAccounts, err != nil, len(rows) == 0, func() { view.SocialAccounts = rows })
		return nil
	})

	g.Go(func() error {
		rows, err := s.addresses.ListActiveByProfessional(gctx, nil, professionalID)
		if err != nil {
			s.log.Warn("Profile slice fetch failed", "slice", SliceAddresses, "professional_id", professionalID, "error", err)
		}
		setSlice(SliceAddresses, err != nil, len(rows) == 0, func() { view.Addresses = rows })
		return nil
	})

	g.Go(func() error {
		score, err := s.score.ComputeScore(gctx, professionalID)
		if err != nil {
			s.log.Warn("Profile slice fetch failed", "slice", SliceScore, "professional_id", professionalID, "error", err)
		}
		setSlice(SliceScore, err != nil, false, func() { view.Score = score })
		return nil
	})

	_ = g.Wait()
	return view, nil
}
