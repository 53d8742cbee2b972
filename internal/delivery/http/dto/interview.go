package dto

import (
	"time"

	"career-connect/internal/domain/interview"
	"career-connect/internal/usecase"
)

type ExamplePayload struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type TestCasePayload struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

type QuestionResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Difficulty   string            `json:"difficulty"`
	Category     string            `json:"category"`
	Description  string            `json:"description"`
	InputFormat  string            `json:"input_format"`
	OutputFormat string            `json:"output_format"`
	Examples     []ExamplePayload  `json:"examples"`
	Constraints  []string          `json:"constraints"`
	TestCases    []TestCasePayload `json:"test_cases"`
	Companies    []string          `json:"companies"`
	Frequency    string            `json:"frequency,omitempty"`
	Hint         string            `json:"hint,omitempty"`
	CreatedAt    string            `json:"created_at"`
}

type QuestionBatchResponse struct {
	Company   string             `json:"company"`
	Cached    bool               `json:"cached"`
	Questions []QuestionResponse `json:"questions"`
}

func FromQuestion(q interview.CodingQuestion) QuestionResponse {
	examples := make([]ExamplePayload, 0, len(q.Examples))
	for _, e := range q.Examples {
		examples = append(examples, ExamplePayload{Input: e.Input, Output: e.Output})
	}
	testCases := make([]TestCasePayload, 0, len(q.TestCases))
	for _, tc := range q.TestCases {
		testCases = append(testCases, TestCasePayload{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput})
	}
	return QuestionResponse{
		ID:           q.ID.String(),
		Title:        q.Title,
		Difficulty:   q.Difficulty,
		Category:     q.Category,
		Description:  q.Description,
		InputFormat:  q.InputFormat,
		OutputFormat: q.OutputFormat,
		Examples:     examples,
		Constraints:  emptySlice(q.Constraints),
		TestCases:    testCases,
		Companies:    emptySlice(q.Companies),
		Frequency:    q.Frequency,
		Hint:         q.Hint,
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromQuestions(questions []interview.CodingQuestion) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, FromQuestion(q))
	}
	return out
}

type SubmitCodeRequest struct {
	StudentID  string `json:"student_id"`
	QuestionID string `json:"question_id"`
	Code       string `json:"code"`
	Language   string `json:"language"`
}

type TestResultPayload struct {
	TestCase TestCasePayload `json:"test_case"`
	Passed   bool            `json:"passed"`
	Output   string          `json:"output"`
	Error    string          `json:"error,omitempty"`
	TimeSec  float64         `json:"time"`
	MemoryKB float64         `json:"memory"`
}

type SubmissionResponse struct {
	ID          string              `json:"id"`
	StudentID   string              `json:"student_id"`
	QuestionID  string              `json:"question_id"`
	Language    string              `json:"language"`
	Status      string              `json:"status"`
	TestResults []TestResultPayload `json:"test_results"`
	SubmittedAt string              `json:"submitted_at"`
}

type SubmissionOutcomeResponse struct {
	Submission SubmissionResponse  `json:"submission"`
	Progress   PrepProfileResponse `json:"progress"`
}

func FromSubmission(sub interview.CodeSubmission) SubmissionResponse {
	results := make([]TestResultPayload, 0, len(sub.TestResults))
	for _, r := range sub.TestResults {
		results = append(results, TestResultPayload{
			TestCase: TestCasePayload{Input: r.TestCase.Input, ExpectedOutput: r.TestCase.ExpectedOutput},
			Passed:   r.Passed,
			Output:   r.Output,
			Error:    r.Error,
			TimeSec:  r.TimeSec,
			MemoryKB: r.MemoryKB,
		})
	}
	return SubmissionResponse{
		ID:          sub.ID.String(),
		StudentID:   sub.StudentID.String(),
		QuestionID:  sub.QuestionID.String(),
		Language:    sub.Language,
		Status:      sub.Status,
		TestResults: results,
		SubmittedAt: sub.SubmittedAt.UTC().Format(time.RFC3339),
	}
}

func FromSubmissions(subs []interview.CodeSubmission) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubmission(s))
	}
	return out
}

type PrepProfileResponse struct {
	StudentID          string   `json:"student_id"`
	TargetCompanies    []string `json:"target_companies"`
	SolvedQuestions    []string `json:"solved_questions"`
	AttemptedQuestions []string `json:"attempted_questions"`
	FailedQuestions    []string `json:"failed_questions"`
	StrongTopics       []string `json:"strong_topics"`
	WeakTopics         []string `json:"weak_topics"`
	ReadinessScore     float64  `json:"readiness_score"`
	LastPracticed      string   `json:"last_practiced,omitempty"`
}

func FromPrepProfile(p interview.PrepProfile) PrepProfileResponse {
	res := PrepProfileResponse{
		StudentID:          p.StudentID.String(),
		TargetCompanies:    emptySlice(p.TargetCompanies),
		SolvedQuestions:    emptySlice(p.SolvedQuestions),
		AttemptedQuestions: emptySlice(p.AttemptedQuestions),
		FailedQuestions:    emptySlice(p.FailedQuestions),
		StrongTopics:       emptySlice(p.StrongTopics),
		WeakTopics:         emptySlice(p.WeakTopics),
		ReadinessScore:     p.ReadinessScore,
	}
	if p.LastPracticed != nil {
		res.LastPracticed = p.LastPracticed.UTC().Format(time.RFC3339)
	}
	return res
}

type ProgressResponse struct {
	Profile           PrepProfileResponse  `json:"profile"`
	RecentSubmissions []SubmissionResponse `json:"recent_submissions"`
}

type TargetCompaniesRequest struct {
	Companies []string `json:"companies"`
}

type CompanyReadinessPayload struct {
	Company       string  `json:"company"`
	Percent       float64 `json:"percent"`
	QuestionCount int     `json:"question_count"`
	SolvedCount   int     `json:"solved_count"`
}

type ReadinessReportResponse struct {
	StudentID      string                    `json:"student_id"`
	ReadinessScore float64                   `json:"readiness_score"`
	SolvedCount    int                       `json:"solved_count"`
	SkillLevel     string                    `json:"skill_level"`
	Companies      []CompanyReadinessPayload `json:"companies"`
}

func FromReadinessReport(r usecase.ReadinessReport) ReadinessReportResponse {
	companies := make([]CompanyReadinessPayload, 0, len(r.Companies))
	for _, c := range r.Companies {
		companies = append(companies, CompanyReadinessPayload{
			Company:       c.Company,
			Percent:       c.Percent,
			QuestionCount: c.QuestionCount,
			SolvedCount:   c.SolvedCount,
		})
	}
	return ReadinessReportResponse{
		StudentID:      r.StudentID,
		ReadinessScore: r.ReadinessScore,
		SolvedCount:    r.SolvedCount,
		SkillLevel:     r.SkillLevel,
		Companies:      companies,
	}
}
