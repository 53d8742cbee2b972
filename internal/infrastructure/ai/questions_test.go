package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"career-connect/internal/domain/interview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response string
	err      error
}

func (s stubGenerator) GenerateContent(context.Context, string) (string, error) {
	return s.response, s.err
}

func draftsJSON(n int) string {
	out := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"title":"Problem %d","difficulty":"Easy","category":"Array","test_cases":[{"input":"1","expected_output":"1"}]}`, i)
	}
	return out + "]"
}

func TestQuestionGenerator_Generate(t *testing.T) {
	gen := NewQuestionGenerator(stubGenerator{response: draftsJSON(5)}, zap.NewNop())

	drafts, err := gen.Generate(context.Background(), "Acme", interview.ProfileSummary{SolvedCount: 12})
	require.NoError(t, err)
	require.Len(t, drafts, 5)
	assert.Equal(t, "Problem 0", drafts[0].Title)
	assert.Equal(t, "Easy", drafts[0].Difficulty)
	require.Len(t, drafts[0].TestCases, 1)
}

func TestQuestionGenerator_Generate_StripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + draftsJSON(2) + "\n```"
	gen := NewQuestionGenerator(stubGenerator{response: fenced}, zap.NewNop())

	drafts, err := gen.Generate(context.Background(), "Acme", interview.ProfileSummary{})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
}

func TestQuestionGenerator_Generate_TruncatesOversizedBatch(t *testing.T) {
	gen := NewQuestionGenerator(stubGenerator{response: draftsJSON(8)}, zap.NewNop())

	drafts, err := gen.Generate(context.Background(), "Acme", interview.ProfileSummary{})
	require.NoError(t, err)
	assert.Len(t, drafts, interview.BatchSize)
}

func TestQuestionGenerator_Generate_RejectsDuplicateTitles(t *testing.T) {
	dup := `[{"title":"Same"},{"title":"Same"}]`
	gen := NewQuestionGenerator(stubGenerator{response: dup}, zap.NewNop())

	_, err := gen.Generate(context.Background(), "Acme", interview.ProfileSummary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate title")
}

func TestQuestionGenerator_Generate_InvalidJSON(t *testing.T) {
	gen := NewQuestionGenerator(stubGenerator{response: "sorry, I cannot do that"}, zap.NewNop())
	_, err := gen.Generate(context.Background(), "Acme", interview.ProfileSummary{})
	require.Error(t, err)
}

func TestQuestionGenerator_Generate_BackendError(t *testing.T) {
	backendErr := errors.New("quota exceeded")
	gen := NewQuestionGenerator(stubGenerator{err: backendErr}, zap.NewNop())

	_, err := gen.Generate(context.Background(), "Acme", interview.ProfileSummary{})
	require.ErrorIs(t, err, backendErr)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[1,2]\n```", "[1,2]"},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"surrounding whitespace", "  \n[1]\n ", "[1]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.in))
		})
	}
}

func TestProfileSummary_SkillLevel(t *testing.T) {
	assert.Equal(t, "Beginner", interview.ProfileSummary{SolvedCount: 0}.SkillLevel())
	assert.Equal(t, "Beginner", interview.ProfileSummary{SolvedCount: 9}.SkillLevel())
	assert.Equal(t, "Intermediate", interview.ProfileSummary{SolvedCount: 10}.SkillLevel())
	assert.Equal(t, "Intermediate", interview.ProfileSummary{SolvedCount: 49}.SkillLevel())
	assert.Equal(t, "Advanced", interview.ProfileSummary{SolvedCount: 50}.SkillLevel())
}
