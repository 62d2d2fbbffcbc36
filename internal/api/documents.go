package api

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/purplecow/recruiting/internal/domain/models"
)

type documentRequest struct {
	CandidateID    string  `json:"candidate_id" validate:"required"`
	DocumentType   string  `json:"document_type" validate:"required"`
	FileName       string  `json:"file_name"`
	ExpirationDate *string `json:"expiration_date"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
}

func (r *documentRequest) toModel() (*models.Document, error) {
	expiration, err := parseOptionalDate(r.ExpirationDate)
	if err != nil {
		return nil, err
	}

	status := r.Status
	if status == "" {
		status = "pending"
	}

	return &models.Document{
		CandidateID:    r.CandidateID,
		DocumentType:   r.DocumentType,
		FileName:       r.FileName,
		ExpirationDate: expiration,
		Status:         status,
		Notes:          r.Notes,
		UploadedAt:     time.Now(),
	}, nil
}

func (s *Server) createDocument(c fiber.Ctx) error {
	var req documentRequest
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

	document, err := req.toModel()
	if err != nil {
		return badRequest(c, err)
	}

	if err := s.documents.Add(c.Context(), document); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusCreated, document)
}

func (s *Server) getDocument(c fiber.Ctx) error {
	document, err := s.documents.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if document == nil {
		return notFound(c, "document")
	}
	return success(c, fiber.StatusOK, document)
}

func (s *Server) updateDocument(c fiber.Ctx) error {
	existing, err := s.documents.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return s.dbError(c, err)
	}
	if existing == nil {
		return notFound(c, "document")
	}

	var req documentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	document, err := req.toModel()
	if err != nil {
		return badRequest(c, err)
	}
	document.DocumentID = existing.DocumentID
	document.UploadedAt = existing.UploadedAt

	if err := s.documents.Update(c.Context(), document); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, document)
}

func (s *Server) deleteDocument(c fiber.Ctx) error {
	if err := s.documents.Remove(c.Context(), c.Params("id")); err != nil {
		return s.dbError(c, err)
	}
	return success(c, fiber.StatusOK, nil)
}
