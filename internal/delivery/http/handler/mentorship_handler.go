package handler

import (
	"errors"

	"career-connect/internal/delivery/http/dto"
	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/pkg/response"
	"career-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MentorshipHandler struct {
	uc usecase.MentorshipUsecase
}

func NewMentorshipHandler(uc usecase.MentorshipUsecase) *MentorshipHandler {
	return &MentorshipHandler{uc: uc}
}

func (h *MentorshipHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/mentorship")
	grp.Post("/requests", h.CreateRequest)
	grp.Put("/requests/:request_id/respond", h.Respond)
	grp.Get("/users/:user_id/requests", h.RequestsFor)
}

func (h *MentorshipHandler) CreateRequest(c fiber.Ctx) error {
	var req dto.CreateMentorshipRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	mentorID, err := uuid.Parse(req.MentorID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid mentor id", nil, err)
	}
	menteeID, err := uuid.Parse(req.MenteeID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid mentee id", nil, err)
	}

	created, err := h.uc.CreateRequest(c.Context(), mentorID, menteeID, req.Message)
	if err != nil {
		return mapMentorshipUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromMentorshipRequest(created))
}

func (h *MentorshipHandler) Respond(c fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("request_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request id", nil, err)
	}

	var req dto.RespondMentorshipRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.uc.Respond(c.Context(), requestID, req.Status)
	if err != nil {
		return mapMentorshipUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMentorshipRequest(updated))
}

func (h *MentorshipHandler) RequestsFor(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	requests, err := h.uc.RequestsFor(c.Context(), userID)
	if err != nil {
		return mapMentorshipUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMentorshipRequests(requests))
}

func mapMentorshipUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Mentorship request not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
