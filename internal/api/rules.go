package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/purplecow/recruiting/internal/domain/models"
)

type ruleRequest struct {
	RuleName    string         `json:"rule_name" validate:"required"`
	Description string         `json:"description"`
	Conditions  map[string]any `json:"conditions" validate:"required"`
	Action      string         `json:"action" validate:"required,oneof=disqualify bonus penalty"`
	Points      int            `json:"points"`
	Priority    int            `json:"priority"`
	IsActive    *bool          `json:"is_active"`
}

func (r *ruleRequest) toModel() *models.MatchingRule {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	priority := r.Priority
	if priority == 0 {
		priority = 1
	}
	return &models.MatchingRule{
		RuleName:    r.RuleName,
		Description: r.Description,
		Conditions:  r.Conditions,
		Action:      r.Action,
		Points:      r.Points,
		Priority:    priority,
		IsActive:    active,
	}
}

func (s *Server) createRule(c fiber.Ctx) error {
	var req ruleRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	rule := req.toModel()
	if err := s.rules.Add(c.Context(), rule); err != nil {
		return s.dbError(c, err)
	}

	s.engine.InvalidateRuleCache()
	return success(c, fiber.StatusCreated, rule)
}

func (s *Server) listRules(c fiber.Ctx) error {
	rules, err := s.rules.Get(c.Context())
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, rules)
}

func (s *Server) getRule(c fiber.Ctx) error {
	rule, err := s.rules.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if rule == nil {
		return notFound(c, "rule")
	}
	return success(c, fiber.StatusOK, rule)
}

func (s *Server) updateRule(c fiber.Ctx) error {
	existing, err := s.rules.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if existing == nil {
		return notFound(c, "rule")
	}

	var req ruleRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	rule := req.toModel()
	rule.RuleID = existing.RuleID

	if err := s.rules.Update(c.Context(), rule); err != nil {
		return s.dbError(c, err)
	}

	s.engine.InvalidateRuleCache()
	return success(c, fiber.StatusOK, rule)
}

func (s *Server) deleteRule(c fiber.Ctx) error {
	if err := s.rules.Remove(c.Context(), c.Params("id")); err != nil {
		return s.dbError(c, err)
	}

	s.engine.InvalidateRuleCache()
	return success(c, fiber.StatusOK, nil)
}
