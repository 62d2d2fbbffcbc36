package services

import (
	"testing"

	"github.com/purplecow/recruiting/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func Test_MatchDetails_ReasonsAndConcernsAgreeWithScore(t *testing.T) {

	candidate := &models.Candidate{
		PrimarySpecialty: "ICU",
		PreferredStates:  models.StringList{"CA"},
		YearsExperience:  intPtr(5),
		AvailabilityDate: datePtr(date(2025, 6, 1)),
	}
	job := &models.Job{
		SpecialtyRequired:  "ICU",
		State:              "TX",
		MinYearsExperience: intPtr(8),
		StartDate:          datePtr(date(2025, 6, 10)),
	}

	details := matchDetails(candidate, job)

	assert.True(t, details.SpecialtyMatch)
	assert.False(t, details.LocationMatch)
	assert.False(t, details.ExperienceMatch)
	assert.True(t, details.AvailabilityMatch)
	assert.Len(t, details.Reasons, 2)
	assert.Len(t, details.Concerns, 2)
}

func Test_MatchDetails_SilentWhenInputsAbsent(t *testing.T) {

	details := matchDetails(&models.Candidate{}, &models.Job{})

	assert.False(t, details.SpecialtyMatch)
	assert.False(t, details.LocationMatch)
	assert.Empty(t, details.Reasons)
	assert.Empty(t, details.Concerns)
	assert.NotNil(t, details.Reasons)
	assert.NotNil(t, details.Concerns)
}

func Test_MatchDetails_AvailabilityWindowIsFourteenDays(t *testing.T) {

	job := &models.Job{StartDate: datePtr(date(2025, 6, 15))}

	onTime := &models.Candidate{AvailabilityDate: datePtr(date(2025, 6, 1))}
	assert.True(t, matchDetails(onTime, job).AvailabilityMatch)

	late := &models.Candidate{AvailabilityDate: datePtr(date(2025, 6, 16))}
	assert.False(t, matchDetails(late, job).AvailabilityMatch)

	tooEarly := &models.Candidate{AvailabilityDate: datePtr(date(2025, 5, 1))}
	assert.False(t, matchDetails(tooEarly, job).AvailabilityMatch)
}
