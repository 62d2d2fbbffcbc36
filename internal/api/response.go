package api

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/purplecow/recruiting/internal/logger"
	log "github.com/sirupsen/logrus"
)

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func success(c fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(envelope{Status: status, Message: "OK", Data: data})
}

func fail(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Status: status, Message: message, Data: nil})
}

func notFound(c fiber.Ctx, what string) error {
	return fail(c, fiber.StatusNotFound, what+" not found")
}

func badRequest(c fiber.Ctx, err error) error {
	return fail(c, fiber.StatusBadRequest, err.Error())
}

func (s *Server) dbError(c fiber.Ctx, err error) error {
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
		Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return fail(c, fiber.StatusInternalServerError, "internal error")
}

// parseDate accepts the calendar-date format the record store uses.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
