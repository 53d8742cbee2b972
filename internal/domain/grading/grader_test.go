package grading

import (
	"testing"

	"career-connect/internal/domain/interview"
)

func TestGrade_Normalization(t *testing.T) {
	cases := []struct {
		name     string
		output   string
		expected string
		passed   bool
	}{
		{"array spacing ignored", "[1, 2]", "[1,2]", true},
		{"surrounding whitespace trimmed", " 5\n", "5", true},
		{"wrong value", "5", "6", false},
		{"array wrong value", "[1,2]", "[1,3]", false},
		{"array prefix on one side only", "[1, 2]", "1, 2", false},
		{"exact match", "hello world", "hello world", true},
		{"internal spaces kept for non-arrays", "a  b", "a b", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results, _ := Grade(
				[]interview.TestCase{{Input: "x", ExpectedOutput: tc.expected}},
				[]Execution{{Output: tc.output}},
			)
			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d", len(results))
			}
			if results[0].Passed != tc.passed {
				t.Fatalf("output %q vs expected %q: passed=%v, want %v",
					tc.output, tc.expected, results[0].Passed, tc.passed)
			}
		})
	}
}

func TestGrade_ExecutionErrorFailsTest(t *testing.T) {
	results, status := Grade(
		[]interview.TestCase{
			{Input: "1", ExpectedOutput: "1"},
			{Input: "2", ExpectedOutput: "2"},
		},
		[]Execution{
			{Output: "1", Error: "runtime error: index out of range"},
			{Output: "2"},
		},
	)

	if status != interview.StatusWrongAnswer {
		t.Fatalf("expected wrong_answer, got %s", status)
	}
	if results[0].Passed {
		t.Fatalf("errored test must not pass even with matching output")
	}
	if results[0].Error == "" {
		t.Fatalf("error must be preserved on the verdict")
	}
	if !results[1].Passed {
		t.Fatalf("remaining tests must still be graded after an error")
	}
}

func TestGrade_AllPassAccepted(t *testing.T) {
	results, status := Grade(
		[]interview.TestCase{
			{Input: "a", ExpectedOutput: "[0,1]"},
			{Input: "b", ExpectedOutput: "true"},
		},
		[]Execution{
			{Output: "[0, 1]\n", TimeSec: 0.02, MemoryKB: 256},
			{Output: "true"},
		},
	)

	if status != interview.StatusAccepted {
		t.Fatalf("expected accepted, got %s", status)
	}
	for i, r := range results {
		if !r.Passed {
			t.Fatalf("test %d unexpectedly failed", i)
		}
	}
}

func TestGrade_MissingExecutionFails(t *testing.T) {
	results, status := Grade(
		[]interview.TestCase{
			{Input: "a", ExpectedOutput: "1"},
			{Input: "b", ExpectedOutput: "2"},
		},
		[]Execution{{Output: "1"}},
	)

	if status != interview.StatusWrongAnswer {
		t.Fatalf("expected wrong_answer, got %s", status)
	}
	if !results[0].Passed || results[1].Passed {
		t.Fatalf("unexpected verdicts: %+v", results)
	}
}

func TestGrade_VerdictOrderMatchesTestCases(t *testing.T) {
	tcs := []interview.TestCase{
		{Input: "first", ExpectedOutput: "1"},
		{Input: "second", ExpectedOutput: "2"},
		{Input: "third", ExpectedOutput: "3"},
	}
	results, _ := Grade(tcs, []Execution{{Output: "1"}, {Output: "x"}, {Output: "3"}})

	for i, r := range results {
		if r.TestCase.Input != tcs[i].Input {
			t.Fatalf("verdict %d is for test %q, want %q", i, r.TestCase.Input, tcs[i].Input)
		}
	}
}
