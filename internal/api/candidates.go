package api

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/purplecow/recruiting/internal/domain/models"
)

type candidateRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`

	PrimarySpecialty string   `json:"primary_specialty"`
	SubSpecialties   []string `json:"sub_specialties"`
	YearsExperience  *int     `json:"years_experience" validate:"omitempty,min=0"`

	PreferredStates  []string `json:"preferred_states"`
	PreferredRegions []string `json:"preferred_regions"`

	AvailabilityDate     *string `json:"availability_date"`
	DesiredContractWeeks *int    `json:"desired_contract_weeks" validate:"omitempty,min=1"`
	PreferredShift       *string `json:"preferred_shift"`
	NeedsHousing         *bool   `json:"needs_housing"`

	Status string `json:"status" validate:"omitempty,oneof=active inactive pending expired passed"`
	Source string `json:"source"`
	Notes  string `json:"notes"`
}

func (r *candidateRequest) toModel() (*models.Candidate, error) {
	availability, err := parseOptionalDate(r.AvailabilityDate)
	if err != nil {
		return nil, err
	}

	status := r.Status
	if status == "" {
		status = models.CandidateStatusActive
	}

	return &models.Candidate{
		FirstName:            r.FirstName,
		LastName:             r.LastName,
		Email:                r.Email,
		Phone:                r.Phone,
		PrimarySpecialty:     r.PrimarySpecialty,
		SubSpecialties:       r.SubSpecialties,
		YearsExperience:      r.YearsExperience,
		PreferredStates:      r.PreferredStates,
		PreferredRegions:     r.PreferredRegions,
		AvailabilityDate:     availability,
		DesiredContractWeeks: r.DesiredContractWeeks,
		PreferredShift:       r.PreferredShift,
		NeedsHousing:         r.NeedsHousing,
		Status:               status,
		Source:               r.Source,
		Notes:                r.Notes,
	}, nil
}

func (s *Server) createCandidate(c fiber.Ctx) error {
	var req candidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	candidate, err := req.toModel()
	if err != nil {
		return badRequest(c, err)
	}

	if err := s.candidates.Add(c.Context(), candidate); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusCreated, candidate)
}

func (s *Server) listCandidates(c fiber.Ctx) error {
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	candidates, err := s.candidates.Get(c.Context(), limit, offset)
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, candidates)
}

func (s *Server) getCandidate(c fiber.Ctx) error {
	candidate, err := s.candidates.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if candidate == nil {
		return notFound(c, "candidate")
	}
	return success(c, fiber.StatusOK, candidate)
}

func (s *Server) updateCandidate(c fiber.Ctx) error {
	existing, err := s.candidates.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if existing == nil {
		return notFound(c, "candidate")
	}

	var req candidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	candidate, err := req.toModel()
	if err != nil {
		return badRequest(c, err)
	}
	candidate.CandidateID = existing.CandidateID

	if err := s.candidates.Update(c.Context(), candidate); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, candidate)
}

func (s *Server) deleteCandidate(c fiber.Ctx) error {
	if err := s.candidates.Remove(c.Context(), c.Params("id")); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, nil)
}

func (s *Server) candidateDocuments(c fiber.Ctx) error {
	documents, err := s.documents.GetByCandidate(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, documents)
}

func (s *Server) candidateExpenses(c fiber.Ctx) error {
	expenses, err := s.expenses.GetByCandidate(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, expenses)
}

func (s *Server) candidateCommunications(c fiber.Ctx) error {
	entries, err := s.comms.GetByCandidate(c.Context(), c.Params("id"), queryInt(c, "limit", 50))
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, entries)
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
