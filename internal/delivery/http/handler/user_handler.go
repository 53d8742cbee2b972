package handler

import (
	"errors"
	"strconv"
	"strings"

	"career-connect/internal/delivery/http/dto"
	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/pkg/response"
	"career-connect/internal/repository"
	"career-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	users    usecase.UserUsecase
	matching usecase.MatchingUsecase
}

func NewUserHandler(users usecase.UserUsecase, matching usecase.MatchingUsecase) *UserHandler {
	return &UserHandler{users: users, matching: matching}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	users := r.Group("/users")
	users.Post("/", h.Create)
	users.Get("/", h.List)
	users.Get("/:user_id", h.Get)
	users.Put("/:user_id", h.Update)
	users.Put("/:user_id/target-companies", h.SetTargetCompanies)
	users.Get("/:user_id/matches", h.GetMatches)

	r.Get("/mentors", h.ListMentors)
}

func (h *UserHandler) Create(c fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.users.Create(c.Context(), req.ToDomain())
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.FromUser(created))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	u, err := h.users.Get(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(u))
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	in := req.ToDomain()
	in.ID = userID
	updated, err := h.users.Update(c.Context(), in)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(updated))
}

func (h *UserHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 100)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	users, err := h.users.List(c.Context(), c.Query("role"), limit)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(users))
}

func (h *UserHandler) SetTargetCompanies(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	var req dto.TargetCompaniesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.users.SetTargetCompanies(c.Context(), userID, req.Companies); err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *UserHandler) GetMatches(c fiber.Ctx) error {
	menteeID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	matches, err := h.matching.RankMatches(c.Context(), menteeID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatches(matches))
}

func (h *UserHandler) ListMentors(c fiber.Ctx) error {
	filter := repository.MentorFilter{
		Expertise: parseListQuery(c.Query("expertise")),
	}
	if s := c.Query("available"); s != "" {
		available, err := strconv.ParseBool(s)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid available flag", nil, err)
		}
		filter.Available = &available
	}

	mentors, err := h.matching.ListMentors(c.Context(), filter)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(mentors))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func parseListQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func mapUserUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", nil, err)
	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
