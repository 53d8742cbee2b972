package grading

import (
	"strings"

	"career-connect/internal/domain/interview"
)

// Execution is the raw outcome the code executor reports for one test case,
// in the same order the test cases were submitted.
type Execution struct {
	Output   string
	Error    string
	TimeSec  float64
	MemoryKB float64
}

// Grade compares executed outputs against the expected outputs and returns
// per-test verdicts plus the aggregate status. A missing execution (executor
// returned fewer entries than test cases) counts as a failed test.
func Grade(testCases []interview.TestCase, execs []Execution) ([]interview.TestResult, string) {
	results := make([]interview.TestResult, 0, len(testCases))
	allPassed := true

	for i, tc := range testCases {
		var exec Execution
		if i < len(execs) {
			exec = execs[i]
		} else {
			exec = Execution{Error: "no execution result"}
		}

		passed := judge(exec, tc)
		if !passed {
			allPassed = false
		}

		results = append(results, interview.TestResult{
			TestCase: tc,
			Passed:   passed,
			Output:   strings.TrimSpace(exec.Output),
			Error:    exec.Error,
			TimeSec:  exec.TimeSec,
			MemoryKB: exec.MemoryKB,
		})
	}

	if len(results) == 0 {
		allPassed = false
	}

	status := interview.StatusWrongAnswer
	if allPassed {
		status = interview.StatusAccepted
	}
	return results, status
}

func judge(exec Execution, tc interview.TestCase) bool {
	if exec.Error != "" {
		return false
	}

	output := strings.TrimSpace(exec.Output)
	expected := strings.TrimSpace(tc.ExpectedOutput)

	// Array-like outputs are compared ignoring internal spacing, so
	// "[1, 2]" and "[1,2]" are the same answer.
	if strings.HasPrefix(output, "[") && strings.HasPrefix(expected, "[") {
		output = strings.ReplaceAll(output, " ", "")
		expected = strings.ReplaceAll(expected, " ", "")
	}

	return output == expected
}
