package api

import (
	"github.com/gofiber/fiber/v3"
)

func (s *Server) listUnreadAlerts(c fiber.Ctx) error {
	alerts, err := s.alerts.GetUnread(c.Context(), queryInt(c, "limit", 100))
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, alerts)
}

func (s *Server) markAlertRead(c fiber.Ctx) error {
	alert, err := s.alerts.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if alert == nil {
		return notFound(c, "alert")
	}

	if err := s.alerts.MarkRead(c.Context(), alert.AlertID); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, nil)
}
