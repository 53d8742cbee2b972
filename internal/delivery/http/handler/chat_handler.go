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

type ChatHandler struct {
	uc usecase.ChatUsecase
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/chat")
	grp.Post("/career", h.SendCareerMessage)
	grp.Get("/career/:user_id", h.CareerHistory)
	grp.Delete("/career/:user_id", h.ClearCareerHistory)
	grp.Get("/rooms/:room_id/messages", h.RoomHistory)
}

func (h *ChatHandler) SendCareerMessage(c fiber.Ctx) error {
	var req dto.CareerChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	reply, err := h.uc.SendCareerMessage(c.Context(), userID, req.Message)
	if err != nil {
		return mapChatUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAIChatMessage(reply))
}

func (h *ChatHandler) CareerHistory(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	history, err := h.uc.CareerHistory(c.Context(), userID)
	if err != nil {
		return mapChatUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAIChatMessages(history))
}

func (h *ChatHandler) ClearCareerHistory(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	if err := h.uc.ClearCareerHistory(c.Context(), userID); err != nil {
		return mapChatUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ChatHandler) RoomHistory(c fiber.Ctx) error {
	roomID := c.Params("room_id")
	if roomID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid room id", nil, nil)
	}

	history, err := h.uc.RoomHistory(c.Context(), roomID)
	if err != nil {
		return mapChatUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoomMessages(history))
}

func mapChatUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
