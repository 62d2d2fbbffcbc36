package api

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/purplecow/recruiting/internal/domain/models"
)

type expenseRequest struct {
	CandidateID  string  `json:"candidate_id" validate:"required"`
	AssignmentID *string `json:"assignment_id"`
	ExpenseType  string  `json:"expense_type" validate:"required"`
	Amount       float64 `json:"amount" validate:"min=0"`
	Description  string  `json:"description"`
	Status       string  `json:"status" validate:"omitempty,oneof=pending approved rejected paid"`
}

func (r *expenseRequest) toModel() *models.Expense {
	status := r.Status
	if status == "" {
		status = "pending"
	}
	return &models.Expense{
		CandidateID:  r.CandidateID,
		AssignmentID: r.AssignmentID,
		ExpenseType:  r.ExpenseType,
		Amount:       r.Amount,
		Description:  r.Description,
		Status:       status,
		SubmittedAt:  time.Now(),
	}
}

func (s *Server) createExpense(c fiber.Ctx) error {
	var req expenseRequest
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

	expense := req.toModel()
	if err := s.expenses.Add(c.Context(), expense); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusCreated, expense)
}

func (s *Server) getExpense(c fiber.Ctx) error {
	expense, err := s.expenses.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if expense == nil {
		return notFound(c, "expense")
	}
	return success(c, fiber.StatusOK, expense)
}

func (s *Server) updateExpense(c fiber.Ctx) error {
	existing, err := s.expenses.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if existing == nil {
		return notFound(c, "expense")
	}

	var req expenseRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	expense := req.toModel()
	expense.ExpenseID = existing.ExpenseID
	expense.SubmittedAt = existing.SubmittedAt

	if err := s.expenses.Update(c.Context(), expense); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, expense)
}

func (s *Server) deleteExpense(c fiber.Ctx) error {
	if err := s.expenses.Remove(c.Context(), c.Params("id")); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, nil)
}
