package usecase

import (
	"context"
	"errors"
	"testing"

	"career-connect/internal/clock"
	"career-connect/internal/domain/grading"
	"career-connect/internal/domain/interview"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func twoSumQuestion() interview.CodingQuestion {
	return interview.CodingQuestion{
		ID:       uuid.New(),
		Title:    "Two Sum",
		Category: "Array",
		TestCases: []interview.TestCase{
			{Input: "[2,7,11,15]\n9", ExpectedOutput: "[0,1]"},
			{Input: "[3,2,4]\n6", ExpectedOutput: "[1,2]"},
		},
	}
}

func newSubmissionFixture(question interview.CodingQuestion, executor *mockExecutor) (*Submissions, *mockSubmissionRepo, *mockPrepRepo) {
	questions := newMockQuestionRepo(question)
	submissions := &mockSubmissionRepo{}
	prep := newMockPrepRepo()
	readiness := NewReadinessUsecase(prep, questions, newMockUserRepo(), newMockCache(), clock.Fixed{Time: testInstant}, zap.NewNop())
	uc := NewSubmissionUsecase(questions, submissions, executor, readiness, clock.Fixed{Time: testInstant}, zap.NewNop())
	return uc, submissions, prep
}

func TestSubmissions_Submit_Accepted(t *testing.T) {
	question := twoSumQuestion()
	executor := &mockExecutor{execs: []grading.Execution{
		{Output: "[0, 1]\n"},
		{Output: "[1,2]"},
	}}
	uc, submissions, _ := newSubmissionFixture(question, executor)

	studentID := uuid.New()
	sub, profile, err := uc.Submit(context.Background(), studentID, question.ID, "def solve(): ...", "python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sub.Status != interview.StatusAccepted {
		t.Fatalf("expected accepted, got %s", sub.Status)
	}
	if len(sub.TestResults) != 2 {
		t.Fatalf("expected 2 results, got %d", len(sub.TestResults))
	}
	if len(submissions.created) != 1 {
		t.Fatalf("submission not persisted")
	}
	if len(profile.SolvedQuestions) != 1 || profile.SolvedQuestions[0] != question.ID.String() {
		t.Fatalf("solved set wrong: %v", profile.SolvedQuestions)
	}
	if len(profile.StrongTopics) != 1 || profile.StrongTopics[0] != "Array" {
		t.Fatalf("strong topics wrong: %v", profile.StrongTopics)
	}
	// 1 of 50 solved.
	if profile.ReadinessScore != 2.0 {
		t.Fatalf("expected readiness 2.0, got %v", profile.ReadinessScore)
	}
}

func TestSubmissions_Submit_WrongAnswer(t *testing.T) {
	question := twoSumQuestion()
	executor := &mockExecutor{execs: []grading.Execution{
		{Output: "[0,1]"},
		{Output: "[2,1]"},
	}}
	uc, _, _ := newSubmissionFixture(question, executor)

	sub, profile, err := uc.Submit(context.Background(), uuid.New(), question.ID, "def solve(): ...", "python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sub.Status != interview.StatusWrongAnswer {
		t.Fatalf("expected wrong_answer, got %s", sub.Status)
	}
	if len(profile.SolvedQuestions) != 0 {
		t.Fatalf("wrong answer landed in solved set: %v", profile.SolvedQuestions)
	}
	if len(profile.FailedQuestions) != 1 {
		t.Fatalf("failed set wrong: %v", profile.FailedQuestions)
	}
	if len(profile.WeakTopics) != 1 || profile.WeakTopics[0] != "Array" {
		t.Fatalf("weak topics wrong: %v", profile.WeakTopics)
	}
	if profile.ReadinessScore != 0 {
		t.Fatalf("expected readiness 0, got %v", profile.ReadinessScore)
	}
}

func TestSubmissions_Submit_ExecutorErrorFailsThatTest(t *testing.T) {
	question := twoSumQuestion()
	executor := &mockExecutor{execs: []grading.Execution{
		{Output: "[0,1]"},
		{Error: "runtime error"},
	}}
	uc, _, _ := newSubmissionFixture(question, executor)

	sub, _, err := uc.Submit(context.Background(), uuid.New(), question.ID, "code", "python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sub.Status != interview.StatusWrongAnswer {
		t.Fatalf("expected wrong_answer, got %s", sub.Status)
	}
	if !sub.TestResults[0].Passed || sub.TestResults[1].Passed {
		t.Fatalf("unexpected verdicts: %+v", sub.TestResults)
	}
}

func TestSubmissions_Submit_UnknownQuestion(t *testing.T) {
	uc, _, _ := newSubmissionFixture(twoSumQuestion(), &mockExecutor{})
	_, _, err := uc.Submit(context.Background(), uuid.New(), uuid.New(), "code", "python")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestSubmissions_Submit_EmptyCode(t *testing.T) {
	question := twoSumQuestion()
	uc, _, _ := newSubmissionFixture(question, &mockExecutor{})
	_, _, err := uc.Submit(context.Background(), uuid.New(), question.ID, "   ", "python")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSubmissions_Submit_ResolveIsIdempotent(t *testing.T) {
	question := twoSumQuestion()
	executor := &mockExecutor{execs: []grading.Execution{
		{Output: "[0,1]"},
		{Output: "[1,2]"},
	}}
	uc, _, _ := newSubmissionFixture(question, executor)

	studentID := uuid.New()
	if _, _, err := uc.Submit(context.Background(), studentID, question.ID, "code", "python"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, profile, err := uc.Submit(context.Background(), studentID, question.ID, "code", "python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(profile.SolvedQuestions) != 1 {
		t.Fatalf("solved set grew on re-solve: %v", profile.SolvedQuestions)
	}
	if profile.ReadinessScore != 2.0 {
		t.Fatalf("expected readiness 2.0, got %v", profile.ReadinessScore)
	}
}
