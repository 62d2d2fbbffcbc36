package services

import (
	"strings"
	"time"

	"github.com/purplecow/recruiting/internal/domain/models"
)

// Factor weight ceilings. The seven factors are strictly additive and each
// contributes a non-negative integer, so a raw score never goes below zero.
const (
	weightSpecialty        = 30
	weightLocation         = 25
	weightExperience       = 20
	weightAvailability     = 15
	weightContractDuration = 5
	weightShiftPreference  = 3
	weightHousing          = 2
)

// calculateMatchScore sums the seven factor scores and clamps the raw total
// to 100 before any rule adjustments are applied by the caller.
func calculateMatchScore(candidate *models.Candidate, job *models.Job) int {
	score := scoreSpecialty(candidate, job) +
		scoreLocation(candidate, job) +
		scoreExperience(candidate, job) +
		scoreAvailability(candidate, job) +
		scoreContractDuration(candidate, job) +
		scoreShiftPreference(candidate, job) +
		scoreHousing(candidate, job)

	if score > 100 {
		score = 100
	}
	return score
}

func scoreSpecialty(candidate *models.Candidate, job *models.Job) int {
	if candidate.PrimarySpecialty == "" || job.SpecialtyRequired == "" {
		return 0
	}

	if strings.EqualFold(candidate.PrimarySpecialty, job.SpecialtyRequired) {
		return weightSpecialty
	}

	if candidate.SubSpecialties.Contains(job.SpecialtyRequired) {
		return 25
	}

	if job.SubSpecialtiesAccepted.Contains(candidate.PrimarySpecialty) {
		return 20
	}

	return 0
}

func scoreLocation(candidate *models.Candidate, job *models.Job) int {
	if job.State == "" {
		return 0
	}

	// No stated preference at all: assume the candidate is flexible. An
	// explicitly empty list is a real preference and scores zero below.
	if candidate.PreferredStates == nil {
		return 10
	}

	if candidate.PreferredStates.Contains(job.State) {
		return weightLocation
	}

	if candidate.PreferredRegions != nil &&
		candidate.PreferredRegions.Contains(StateRegion(job.State)) {
		return 15
	}

	return 0
}

func scoreExperience(candidate *models.Candidate, job *models.Job) int {
	if candidate.YearsExperience == nil || job.MinYearsExperience == nil {
		return 10
	}

	expDiff := *candidate.YearsExperience - *job.MinYearsExperience

	switch {
	case expDiff >= 5:
		return weightExperience
	case expDiff >= 2:
		return 18
	case expDiff >= 0:
		return 15
	case expDiff >= -1:
		return 8
	default:
		return 0
	}
}

func scoreAvailability(candidate *models.Candidate, job *models.Job) int {
	if candidate.AvailabilityDate == nil || job.StartDate == nil {
		return 5
	}

	daysDiff := daysBetween(*candidate.AvailabilityDate, *job.StartDate)

	switch {
	case daysDiff >= 0 && daysDiff <= 7:
		return weightAvailability
	case daysDiff > 7 && daysDiff <= 14:
		return 12
	case daysDiff > 14 && daysDiff <= 30:
		return 8
	case daysDiff < 0 && daysDiff >= -7:
		return 10
	default:
		return 0
	}
}

func scoreContractDuration(candidate *models.Candidate, job *models.Job) int {
	if candidate.DesiredContractWeeks == nil || job.ContractWeeks == nil {
		return 2
	}

	diff := *candidate.DesiredContractWeeks - *job.ContractWeeks
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return weightContractDuration
	case diff <= 4:
		return 3
	default:
		return 1
	}
}

func scoreShiftPreference(candidate *models.Candidate, job *models.Job) int {
	if candidate.PreferredShift == nil || *candidate.PreferredShift == "" ||
		job.ShiftType == nil || *job.ShiftType == "" {
		return 1
	}

	if strings.EqualFold(*candidate.PreferredShift, *job.ShiftType) {
		return weightShiftPreference
	}

	return 0
}

func scoreHousing(candidate *models.Candidate, job *models.Job) int {
	if candidate.NeedsHousing == nil || !*candidate.NeedsHousing {
		return 1
	}

	if job.HousingStipend != nil && *job.HousingStipend > 0 {
		return weightHousing
	}

	return 0
}

// daysBetween counts whole calendar days from one date to another, ignoring
// the time-of-day component.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
