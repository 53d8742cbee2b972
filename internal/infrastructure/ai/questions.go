package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"career-connect/internal/domain/interview"
	"career-connect/internal/logger"

	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// QuestionGenerator produces personalized interview question batches through
// the model. Title uniqueness within a batch is enforced here, not by the
// cache layer.
type QuestionGenerator struct {
	generator contentGenerator
	logger    *zap.Logger
}

func NewQuestionGenerator(generator contentGenerator, log *zap.Logger) *QuestionGenerator {
	return &QuestionGenerator{generator: generator, logger: log}
}

func (g *QuestionGenerator) Generate(ctx context.Context, company string, profile interview.ProfileSummary) ([]interview.QuestionDraft, error) {
	prompt := buildQuestionPrompt(company, profile)

	g.logger.Debug("question generation request",
		zap.String("company", company),
		zap.String("skill_level", profile.SkillLevel()),
		zap.Int("solved_count", profile.SolvedCount),
	)

	raw, err := g.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("question generation response",
		zap.String("company", company),
		zap.String("preview", logger.TruncateForLog(raw, 150)),
	)

	var drafts []interview.QuestionDraft
	if err := json.Unmarshal([]byte(extractJSON(raw)), &drafts); err != nil {
		return nil, fmt.Errorf("parse generated questions: %w", err)
	}

	if len(drafts) > interview.BatchSize {
		drafts = drafts[:interview.BatchSize]
	}

	titles := make(map[string]struct{}, len(drafts))
	for _, d := range drafts {
		if _, dup := titles[d.Title]; dup {
			return nil, fmt.Errorf("generator returned duplicate title %q", d.Title)
		}
		titles[d.Title] = struct{}{}
	}

	return drafts, nil
}

func buildQuestionPrompt(company string, profile interview.ProfileSummary) string {
	strong := "None"
	if len(profile.StrongTopics) > 0 {
		strong = strings.Join(profile.StrongTopics, ", ")
	}
	weak := "All"
	if len(profile.WeakTopics) > 0 {
		weak = strings.Join(profile.WeakTopics, ", ")
	}

	return fmt.Sprintf(`Generate %d DIFFERENT coding interview questions for %s.

Student: %s level, solved %d problems
Strong topics: %s
Weak topics: %s

Return ONLY a valid JSON array (no markdown, no explanations) with %d UNIQUE questions:
[
  {
    "title": "Two Sum",
    "difficulty": "Easy",
    "category": "Array",
    "description": "Problem description",
    "input_format": "nums: List[int], target: int",
    "output_format": "List[int]",
    "examples": [{"input": "[2,7,11,15], 9", "output": "[0,1]"}],
    "constraints": ["2 <= nums.length <= 10^4"],
    "test_cases": [
      {"input": "[2,7,11,15]\n9", "expected_output": "[0,1]"},
      {"input": "[3,2,4]\n6", "expected_output": "[1,2]"}
    ],
    "frequency": "High",
    "hint": "Use hash map"
  }
]

Generate %d different questions with unique titles only.`,
		interview.BatchSize, company,
		profile.SkillLevel(), profile.SolvedCount,
		strong, weak,
		interview.BatchSize, interview.BatchSize,
	)
}

// extractJSON strips the markdown code fences models like to wrap JSON in.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
