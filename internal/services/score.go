package services

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/oficiolab/promarket-backend/internal/data/engine"
	"github.com/oficiolab/promarket-backend/internal/data/repos"
	"github.com/oficiolab/promarket-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

// Score signal weights. They sum to 1; the composite is scaled to 0-10.
const (
	weightRating     = 0.40
	weightCerts      = 0.20
	weightChecks     = 0.20
	weightExperience = 0.10
	weightBio        = 0.10
	certSaturation   = 5
	checkSaturation  = 3
	yearsSaturation  = 20
	bioMinLength     = 40
	scoreScale       = 10
)

// ScoreSignals are the raw inputs to the trust score. Zero values are valid
// and simply contribute nothing.
type ScoreSignals struct {
	Ratings         []float64
	CertCount       int64
	VerifiedChecks  int64
	YearsExperience int
	BioLength       int
}

// ComputeFromSignals is the pure scoring function. Each signal is normalized
// to [0,1], weighted, and the composite is scaled to [0,10] rounded to two
// decimals. Saturating caps keep any single signal from dominating past its
// weight.
func ComputeFromSignals(sig ScoreSignals) float64 {
	var rating float64
	if len(sig.Ratings) > 0 {
		var sum float64
		for _, r := range sig.Ratings {
			sum += r
		}
		rating = (sum / float64(len(sig.Ratings))) / 5
	}

	certs := math.Min(float64(sig.CertCount), certSaturation) / certSaturation
	checks := math.Min(float64(sig.VerifiedChecks), checkSaturation) / checkSaturation
	years := math.Min(float64(sig.YearsExperience), yearsSaturation) / yearsSaturation
	var bio float64
	if sig.BioLength >= bioMinLength {
		bio = 1
	}

	composite := rating*weightRating +
		certs*weightCerts +
		checks*weightChecks +
		years*weightExperience +
		bio*weightBio

	score := composite * scoreScale
	if score < 0 {
		score = 0
	}
	if score > scoreScale {
		score = scoreScale
	}
	return math.Round(score*100) / 100
}

type ScoreService interface {
	ComputeScore(ctx context.Context, professionalID uuid.UUID) (float64, error)
}

type scoreService struct {
	db            *gorm.DB
	log           *logger.Logger
	professionals repos.ProfessionalRepo
	projects      repos.PortfolioProjectRepo
	certs         repos.CertificationRepo
	checks        repos.BackgroundCheckRepo
}

func NewScoreService(
	db *gorm.DB,
	log *logger.Logger,
	professionals repos.ProfessionalRepo,
	projects repos.PortfolioProjectRepo,
	certs repos.CertificationRepo,
	checks repos.BackgroundCheckRepo,
) ScoreService {
	serviceLog := log.With("service", "ScoreService")
	return &scoreService{
		db:            db,
		log:           serviceLog,
		professionals: professionals,
		projects:      projects,
		certs:         certs,
		checks:        checks,
	}
}

// ComputeScore recomputes the trust score from live data. The score is never
// stored. The professional row itself must exist; signal reads that fail are
// logged and score as zero so one degraded collection cannot block the rest.
func (s *scoreService) ComputeScore(ctx context.Context, professionalID uuid.UUID) (float64, error) {
	const op = "score.compute"
	pro, err := s.professionals.GetActiveByID(ctx, nil, professionalID)
	if err != nil {
		return 0, engine.MapError(op, err)
	}

	sig := ScoreSignals{
		YearsExperience: pro.YearsExperience,
		BioLength:       len(pro.Bio),
	}

	if ratings, err := s.projects.CompletedRatings(ctx, nil, professionalID); err != nil {
		s.log.Warn("Score signal read failed", "signal", "ratings", "professional_id", professionalID, "error", err)
	} else {
		sig.Ratings = ratings
	}
	if n, err := s.certs.CountActiveByProfessional(ctx, nil, professionalID); err != nil {
		s.log.Warn("Score signal read failed", "signal", "certifications", "professional_id", professionalID, "error", err)
	} else {
		sig.CertCount = n
	}
	if n, err := s.checks.CountVerified(ctx, nil, professionalID); err != nil {
		s.log.Warn("Score signal read failed", "signal", "verified_checks", "professional_id", professionalID, "error", err)
	} else {
		sig.VerifiedChecks = n
	}

	return ComputeFromSignals(sig), nil
}
