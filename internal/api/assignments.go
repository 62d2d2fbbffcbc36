package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/purplecow/recruiting/internal/domain/models"
)

type assignmentRequest struct {
	CandidateID string  `json:"candidate_id" validate:"required"`
	JobID       string  `json:"job_id" validate:"required"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      string  `json:"status" validate:"omitempty,oneof=active completed cancelled"`
}

func (r *assignmentRequest) toModel() (*models.Assignment, error) {
	startDate, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	status := r.Status
	if status == "" {
		status = models.AssignmentStatusActive
	}

	return &models.Assignment{
		CandidateID: r.CandidateID,
		JobID:       r.JobID,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
	}, nil
}

func (s *Server) createAssignment(c fiber.Ctx) error {
	var req assignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	candidate, err := s.candidates.GetByID(c.Context(), req.CandidateID)
	if err != nil {
		return s.dbError(c, err)
	}
	if candidate == nil {
		return notFound(c, "candidate")
	}

	job, err := s.jobs.GetByID(c.Context(), req.JobID)
	if err != nil {
		return s.dbError(c, err)
	}
	if job == nil {
		return notFound(c, "job")
	}

	assignment, err := req.toModel()
	if err != nil {
		return badRequest(c, err)
	}

	if err := s.assignments.Add(c.Context(), assignment); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusCreated, assignment)
}

func (s *Server) listAssignments(c fiber.Ctx) error {
	assignments, err := s.assignments.Get(c.Context(), queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, assignments)
}

func (s *Server) getAssignment(c fiber.Ctx) error {
	assignment, err := s.assignments.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if assignment == nil {
		return notFound(c, "assignment")
	}
	return success(c, fiber.StatusOK, assignment)
}

func (s *Server) updateAssignment(c fiber.Ctx) error {
	existing, err := s.assignments.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if existing == nil {
		return notFound(c, "assignment")
	}

	var req assignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	assignment, err := req.toModel()
	if err != nil {
		return badRequest(c, err)
	}
	assignment.AssignmentID = existing.AssignmentID

	if err := s.assignments.Update(c.Context(), assignment); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, assignment)
}
