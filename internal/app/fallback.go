package app

import (
	"context"
	"errors"

	"career-connect/internal/domain/interview"
)

var errAIDisabled = errors.New("ai backend is not configured")

// unavailableGenerator stands in when no API key is configured. Question
// requests that need generation then fail cleanly instead of panicking.
type unavailableGenerator struct{}

func (unavailableGenerator) Generate(context.Context, string, interview.ProfileSummary) ([]interview.QuestionDraft, error) {
	return nil, errAIDisabled
}

type unavailableAdvisor struct{}

func (unavailableAdvisor) Reply(context.Context, string, string) (string, error) {
	return "", errAIDisabled
}
