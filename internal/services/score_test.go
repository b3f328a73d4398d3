package services

import (
	"math"
	"testing"
)

func TestComputeFromSignalsZero(t *testing.T) {
	if got := ComputeFromSignals(ScoreSignals{}); got != 0 {
		t.Fatalf("empty signals must score 0, got %v", got)
	}
}

func TestComputeFromSignalsExperienceOnly(t *testing.T) {
	got := ComputeFromSignals(ScoreSignals{YearsExperience: 2})
	// 2 of 20 years at weight 0.10, scaled to 10
	if got != 0.1 {
		t.Fatalf("expected 0.1, got %v", got)
	}
}

func TestComputeFromSignalsFullMarks(t *testing.T) {
	got := ComputeFromSignals(ScoreSignals{
		Ratings:         []float64{5, 5, 5},
		CertCount:       5,
		VerifiedChecks:  3,
		YearsExperience: 20,
		BioLength:       120,
	})
	if got != 10 {
		t.Fatalf("expected perfect 10, got %v", got)
	}
}

func TestComputeFromSignalsSaturatingCaps(t *testing.T) {
	atCap := ComputeFromSignals(ScoreSignals{CertCount: 5, VerifiedChecks: 3, YearsExperience: 20})
	overCap := ComputeFromSignals(ScoreSignals{CertCount: 40, VerifiedChecks: 9, YearsExperience: 55})
	if atCap != overCap {
		t.Fatalf("signals past their caps must not raise the score: %v vs %v", atCap, overCap)
	}
}

func TestComputeFromSignalsAveragesRatings(t *testing.T) {
	got := ComputeFromSignals(ScoreSignals{Ratings: []float64{4}})
	// 4 of 5 at weight 0.40, scaled to 10
	if got != 3.2 {
		t.Fatalf("expected 3.2, got %v", got)
	}
}

func TestComputeFromSignalsBioThreshold(t *testing.T) {
	short := ComputeFromSignals(ScoreSignals{BioLength: bioMinLength - 1})
	long := ComputeFromSignals(ScoreSignals{BioLength: bioMinLength})
	if short != 0 {
		t.Fatalf("short bio must not contribute, got %v", short)
	}
	if long != 1 {
		t.Fatalf("bio at threshold contributes its full weight, got %v", long)
	}
}

func TestComputeFromSignalsRoundsToTwoDecimals(t *testing.T) {
	got := ComputeFromSignals(ScoreSignals{Ratings: []float64{3, 4, 5}, YearsExperience: 7})
	scaled := got * 100
	if scaled != math.Trunc(scaled) {
		t.Fatalf("score must carry at most two decimals, got %v", got)
	}
}
