package services

import (
	"fmt"
	"strings"

	"github.com/purplecow/recruiting/internal/domain/models"
)

// matchDetails regenerates the human-readable explanation of a pairing for
// display. It must agree in judgment with the scoring factors, though its
// booleans are coarser than the score tiering (e.g. experience "matches"
// whenever the candidate meets the minimum, regardless of partial credit).
func matchDetails(candidate *models.Candidate, job *models.Job) models.MatchDetails {
	details := models.MatchDetails{
		Reasons:  []string{},
		Concerns: []string{},
	}

	if candidate.PrimarySpecialty != "" && job.SpecialtyRequired != "" {
		if strings.EqualFold(candidate.PrimarySpecialty, job.SpecialtyRequired) {
			details.SpecialtyMatch = true
			details.Reasons = append(details.Reasons,
				fmt.Sprintf("Perfect specialty match: %s", candidate.PrimarySpecialty))
		} else {
			details.Concerns = append(details.Concerns,
				fmt.Sprintf("Specialty mismatch: %s vs %s", candidate.PrimarySpecialty, job.SpecialtyRequired))
		}
	}

	if job.State != "" {
		if candidate.PreferredStates.Contains(job.State) {
			details.LocationMatch = true
			details.Reasons = append(details.Reasons,
				fmt.Sprintf("Preferred state: %s", job.State))
		} else {
			details.Concerns = append(details.Concerns,
				fmt.Sprintf("Not in preferred states: %s", job.State))
		}
	}

	if candidate.YearsExperience != nil && job.MinYearsExperience != nil {
		if *candidate.YearsExperience >= *job.MinYearsExperience {
			details.ExperienceMatch = true
			details.Reasons = append(details.Reasons,
				fmt.Sprintf("Meets experience requirement: %d years", *candidate.YearsExperience))
		} else {
			details.Concerns = append(details.Concerns,
				fmt.Sprintf("Below experience requirement: %d vs %d years",
					*candidate.YearsExperience, *job.MinYearsExperience))
		}
	}

	if candidate.AvailabilityDate != nil && job.StartDate != nil {
		daysDiff := daysBetween(*candidate.AvailabilityDate, *job.StartDate)
		if daysDiff >= 0 && daysDiff <= 14 {
			details.AvailabilityMatch = true
			details.Reasons = append(details.Reasons,
				fmt.Sprintf("Available on time (%d days)", daysDiff))
		} else {
			details.Concerns = append(details.Concerns,
				fmt.Sprintf("Availability mismatch: %d days difference", daysDiff))
		}
	}

	return details
}
