package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/purplecow/recruiting/internal/domain/models"
	"github.com/purplecow/recruiting/internal/events"
)

type jobRequest struct {
	Title                  string   `json:"title"`
	SpecialtyRequired      string   `json:"specialty_required" validate:"required"`
	SubSpecialtiesAccepted []string `json:"sub_specialties_accepted"`

	Facility string `json:"facility"`
	City     string `json:"city"`
	State    string `json:"state" validate:"omitempty,len=2"`

	ShiftType          *string  `json:"shift_type"`
	MinYearsExperience *int     `json:"min_years_experience" validate:"omitempty,min=0"`
	ContractWeeks      *int     `json:"contract_weeks" validate:"omitempty,min=1"`
	StartDate          *string  `json:"start_date"`
	HousingStipend     *float64 `json:"housing_stipend" validate:"omitempty,min=0"`
	PayRateWeekly      *float64 `json:"pay_rate_weekly" validate:"omitempty,min=0"`

	Status       string `json:"status" validate:"omitempty,oneof=open filled closed cancelled"`
	UrgencyLevel string `json:"urgency_level"`
}

func (r *jobRequest) toModel() (*models.Job, error) {
	startDate, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	status := r.Status
	if status == "" {
		status = models.JobStatusOpen
	}
	urgency := r.UrgencyLevel
	if urgency == "" {
		urgency = "normal"
	}

	return &models.Job{
		Title:                  r.Title,
		SpecialtyRequired:      r.SpecialtyRequired,
		SubSpecialtiesAccepted: r.SubSpecialtiesAccepted,
		Facility:               r.Facility,
		City:                   r.City,
		State:                  r.State,
		ShiftType:              r.ShiftType,
		MinYearsExperience:     r.MinYearsExperience,
		ContractWeeks:          r.ContractWeeks,
		StartDate:              startDate,
		HousingStipend:         r.HousingStipend,
		PayRateWeekly:          r.PayRateWeekly,
		Status:                 status,
		UrgencyLevel:           urgency,
	}, nil
}

func (s *Server) createJob(c fiber.Ctx) error {
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	job, err := req.toModel()
	if err != nil {
		return badRequest(c, err)
	}

	if err := s.jobs.Add(c.Context(), job); err != nil {
		return s.dbError(c, err)
	}

	if job.Status == models.JobStatusOpen {
		s.bus.Publish(events.JobOpenedTopic, events.JobOpened{
			JobID:     job.JobID,
			Specialty: job.SpecialtyRequired,
			State:     job.State,
		})
	}

	return success(c, fiber.StatusCreated, job)
}

func (s *Server) listJobs(c fiber.Ctx) error {
	if c.Query("status") == models.JobStatusOpen {
		jobs, err := s.jobs.GetOpen(c.Context())
		if err != nil {
			return s.dbError(c, err)
		}
		return success(c, fiber.StatusOK, jobs)
	}

	jobs, err := s.jobs.Get(c.Context(), queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, jobs)
}

func (s *Server) getJob(c fiber.Ctx) error {
	job, err := s.jobs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if job == nil {
		return notFound(c, "job")
	}
	return success(c, fiber.StatusOK, job)
}

func (s *Server) updateJob(c fiber.Ctx) error {
	existing, err := s.jobs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if existing == nil {
		return notFound(c, "job")
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	job, err := req.toModel()
	if err != nil {
		return badRequest(c, err)
	}
	job.JobID = existing.JobID

	if err := s.jobs.Update(c.Context(), job); err != nil {
		return s.dbError(c, err)
	}

	if existing.Status != models.JobStatusOpen && job.Status == models.JobStatusOpen {
		s.bus.Publish(events.JobOpenedTopic, events.JobOpened{
			JobID:     job.JobID,
			Specialty: job.SpecialtyRequired,
			State:     job.State,
		})
	}

	return success(c, fiber.StatusOK, job)
}

func (s *Server) deleteJob(c fiber.Ctx) error {
	if err := s.jobs.Remove(c.Context(), c.Params("id")); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, nil)
}
