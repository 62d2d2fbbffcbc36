package api

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	gocache "github.com/patrickmn/go-cache"
	"github.com/purplecow/recruiting/internal/services"
)

// Match rankings are deterministic for a fixed record set, so responses are
// cached briefly to keep repeated dashboard polls off the scoring loop.

func (s *Server) jobMatches(c fiber.Ctx) error {
	jobID := c.Params("id")
	minScore := queryInt(c, "min_score", services.DefaultMinScore)

	cacheKey := fmt.Sprintf("job|%s|%d", jobID, minScore)
	if cached, found := s.matchCache.Get(cacheKey); found {
		return success(c, fiber.StatusOK, cached)
	}

	matches, err := s.engine.FindMatchesForJob(c.Context(), jobID, minScore)
	if err != nil {
		return s.dbError(c, err)
	}

	s.matchCache.Set(cacheKey, matches, gocache.DefaultExpiration)
	return success(c, fiber.StatusOK, matches)
}

func (s *Server) candidateMatches(c fiber.Ctx) error {
	candidateID := c.Params("id")
	minScore := queryInt(c, "min_score", services.DefaultMinScore)

	cacheKey := fmt.Sprintf("candidate|%s|%d", candidateID, minScore)
	if cached, found := s.matchCache.Get(cacheKey); found {
		return success(c, fiber.StatusOK, cached)
	}

	matches, err := s.engine.FindMatchesForCandidate(c.Context(), candidateID, minScore)
	if err != nil {
		return s.dbError(c, err)
	}

	s.matchCache.Set(cacheKey, matches, gocache.DefaultExpiration)
	return success(c, fiber.StatusOK, matches)
}

type notifyMatchesRequest struct {
	AutoSend bool `json:"auto_send"`
}

func (s *Server) notifyJobMatches(c fiber.Ctx) error {
	var req notifyMatchesRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return badRequest(c, err)
		}
	}

	created, err := s.sweeper.NotifyNewJobMatches(c.Context(), c.Params("id"), req.AutoSend)
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{"alerts_created": created})
}

type batchMatchRequest struct {
	MinScore int `json:"min_score" validate:"omitempty,min=0,max=100"`
}

func (s *Server) runBatchMatching(c fiber.Ctx) error {
	req := batchMatchRequest{MinScore: 70}
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return badRequest(c, err)
		}
		if err := s.validate.Struct(req); err != nil {
			return badRequest(c, err)
		}
	}

	result, err := s.sweeper.BatchMatchAllCandidates(c.Context(), req.MinScore)
	if err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, result)
}
