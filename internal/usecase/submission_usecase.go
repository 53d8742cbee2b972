package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-connect/internal/clock"
	"career-connect/internal/domain/grading"
	"career-connect/internal/domain/interview"
	"career-connect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CodeExecutor runs submitted code against every test case and returns one
// execution per case, in order.
type CodeExecutor interface {
	Run(ctx context.Context, code, language string, testCases []interview.TestCase) ([]grading.Execution, error)
}

type SubmissionUsecase interface {
	Submit(ctx context.Context, studentID, questionID uuid.UUID, code, language string) (interview.CodeSubmission, interview.PrepProfile, error)
	RecentSubmissions(ctx context.Context, studentID uuid.UUID, limit int) ([]interview.CodeSubmission, error)
}

type Submissions struct {
	questions   repository.QuestionRepository
	submissions repository.SubmissionRepository
	executor    CodeExecutor
	readiness   ReadinessUsecase
	clock       clock.Clock
	logger      *zap.Logger
}

func NewSubmissionUsecase(
	questions repository.QuestionRepository,
	submissions repository.SubmissionRepository,
	executor CodeExecutor,
	readiness ReadinessUsecase,
	clk clock.Clock,
	log *zap.Logger,
) *Submissions {
	return &Submissions{
		questions:   questions,
		submissions: submissions,
		executor:    executor,
		readiness:   readiness,
		clock:       clk,
		logger:      log,
	}
}

// Submit runs the code against the question's test cases, grades it, persists
// the submission and folds the verdict into the student's prep profile. The
// submission record is immutable once written.
func (u *Submissions) Submit(ctx context.Context, studentID, questionID uuid.UUID, code, language string) (interview.CodeSubmission, interview.PrepProfile, error) {
	if strings.TrimSpace(code) == "" {
		return interview.CodeSubmission{}, interview.PrepProfile{}, fmt.Errorf("%w: code is required", ErrValidation)
	}

	question, err := u.questions.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return interview.CodeSubmission{}, interview.PrepProfile{}, ErrQuestionNotFound
		}
		return interview.CodeSubmission{}, interview.PrepProfile{}, err
	}

	execs, err := u.executor.Run(ctx, code, language, question.TestCases)
	if err != nil {
		return interview.CodeSubmission{}, interview.PrepProfile{}, fmt.Errorf("execute submission: %w", err)
	}

	results, status := grading.Grade(question.TestCases, execs)

	sub := interview.CodeSubmission{
		ID:          uuid.New(),
		StudentID:   studentID,
		QuestionID:  questionID,
		Code:        code,
		Language:    language,
		Status:      status,
		TestResults: results,
		SubmittedAt: u.clock.Now(),
	}
	if err := u.submissions.Create(ctx, sub); err != nil {
		return interview.CodeSubmission{}, interview.PrepProfile{}, fmt.Errorf("persist submission: %w", err)
	}

	profile, err := u.readiness.RecordSubmission(ctx, studentID, questionID, question.Category, status == interview.StatusAccepted)
	if err != nil {
		return interview.CodeSubmission{}, interview.PrepProfile{}, fmt.Errorf("record submission result: %w", err)
	}

	u.logger.Info("submission graded",
		zap.String("submission_id", sub.ID.String()),
		zap.String("student_id", studentID.String()),
		zap.String("question_id", questionID.String()),
		zap.String("status", status),
	)
	return sub, profile, nil
}

func (u *Submissions) RecentSubmissions(ctx context.Context, studentID uuid.UUID, limit int) ([]interview.CodeSubmission, error) {
	return u.submissions.ListRecentByStudent(ctx, studentID, limit)
}
