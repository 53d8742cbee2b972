package handler

import (
	"errors"
	"strconv"

	"career-connect/internal/delivery/http/dto"
	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/pkg/response"
	"career-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	questions   usecase.QuestionUsecase
	submissions usecase.SubmissionUsecase
	readiness   usecase.ReadinessUsecase
}

func NewInterviewHandler(questions usecase.QuestionUsecase, submissions usecase.SubmissionUsecase, readiness usecase.ReadinessUsecase) *InterviewHandler {
	return &InterviewHandler{questions: questions, submissions: submissions, readiness: readiness}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/interview")
	grp.Get("/questions", h.GetQuestions)
	grp.Get("/questions/:question_id", h.GetQuestion)
	grp.Post("/submissions", h.Submit)
	grp.Get("/students/:student_id/submissions", h.RecentSubmissions)
	grp.Get("/students/:student_id/progress", h.Progress)
	grp.Get("/students/:student_id/readiness", h.Readiness)
	grp.Put("/students/:student_id/target-companies", h.SetTargetCompanies)
}

func (h *InterviewHandler) GetQuestions(c fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid student id", nil, err)
	}

	company := c.Query("company")
	force := false
	if s := c.Query("force"); s != "" {
		force, err = strconv.ParseBool(s)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid force flag", nil, err)
		}
	}

	batch, cached, err := h.questions.QuestionsForCompany(c.Context(), studentID, company, force)
	if err != nil {
		return mapInterviewUsecaseError(err)
	}

	out := dto.QuestionBatchResponse{
		Company:   company,
		Cached:    cached,
		Questions: dto.FromQuestions(batch),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *InterviewHandler) GetQuestion(c fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("question_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid question id", nil, err)
	}

	q, err := h.questions.GetQuestion(c.Context(), questionID)
	if err != nil {
		return mapInterviewUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromQuestion(q))
}

func (h *InterviewHandler) Submit(c fiber.Ctx) error {
	var req dto.SubmitCodeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid student id", nil, err)
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid question id", nil, err)
	}

	sub, profile, err := h.submissions.Submit(c.Context(), studentID, questionID, req.Code, req.Language)
	if err != nil {
		return mapInterviewUsecaseError(err)
	}

	out := dto.SubmissionOutcomeResponse{
		Submission: dto.FromSubmission(sub),
		Progress:   dto.FromPrepProfile(profile),
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, out)
}

func (h *InterviewHandler) RecentSubmissions(c fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid student id", nil, err)
	}
	limit, err := parseQueryInt(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	subs, err := h.submissions.RecentSubmissions(c.Context(), studentID, limit)
	if err != nil {
		return mapInterviewUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSubmissions(subs))
}

func (h *InterviewHandler) Progress(c fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid student id", nil, err)
	}

	profile, err := h.readiness.Progress(c.Context(), studentID)
	if err != nil {
		return mapInterviewUsecaseError(err)
	}
	recent, err := h.submissions.RecentSubmissions(c.Context(), studentID, 10)
	if err != nil {
		return mapInterviewUsecaseError(err)
	}

	out := dto.ProgressResponse{
		Profile:           dto.FromPrepProfile(profile),
		RecentSubmissions: dto.FromSubmissions(recent),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *InterviewHandler) Readiness(c fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid student id", nil, err)
	}

	report, err := h.readiness.Report(c.Context(), studentID)
	if err != nil {
		return mapInterviewUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromReadinessReport(report))
}

func (h *InterviewHandler) SetTargetCompanies(c fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid student id", nil, err)
	}

	var req dto.TargetCompaniesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.readiness.SetTargetCompanies(c.Context(), studentID, req.Companies); err != nil {
		return mapInterviewUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapInterviewUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", nil, err)
	case errors.Is(err, usecase.ErrQuestionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Question not found", nil, err)
	case errors.Is(err, usecase.ErrGenerationFailed):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Question generation unavailable", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
