package interview

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusAccepted    = "accepted"
	StatusWrongAnswer = "wrong_answer"
)

// Staleness is the validity window of a generated question batch. Batches
// older than this are replaced wholesale, never patched.
const Staleness = 24 * time.Hour

// BatchSize is the number of questions generated and served per company.
const BatchSize = 5

type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type CodingQuestion struct {
	ID           uuid.UUID
	Title        string
	Difficulty   string
	Category     string
	Description  string
	InputFormat  string
	OutputFormat string
	Examples     []Example
	Constraints  []string
	TestCases    []TestCase
	Companies    []string
	Frequency    string
	Hint         string
	CreatedAt    time.Time
}

// TestResult is the verdict for a single test case. Order matches the
// question's test case order.
type TestResult struct {
	TestCase TestCase `json:"test_case"`
	Passed   bool     `json:"passed"`
	Output   string   `json:"output"`
	Error    string   `json:"error"`
	TimeSec  float64  `json:"time"`
	MemoryKB float64  `json:"memory"`
}

// CodeSubmission is immutable once persisted.
type CodeSubmission struct {
	ID          uuid.UUID
	StudentID   uuid.UUID
	QuestionID  uuid.UUID
	Code        string
	Language    string
	Status      string
	TestResults []TestResult
	SubmittedAt time.Time
}

// PrepProfile tracks a student's interview preparation state, keyed by
// student id and mutated only through keyed upserts with set semantics.
type PrepProfile struct {
	StudentID          uuid.UUID
	TargetCompanies    []string
	SolvedQuestions    []string
	AttemptedQuestions []string
	FailedQuestions    []string
	StrongTopics       []string
	WeakTopics         []string
	ReadinessScore     float64
	LastPracticed      *time.Time
}
