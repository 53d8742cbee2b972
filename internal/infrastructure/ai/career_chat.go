package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CareerAdvisor turns a user message plus optional profile context into a
// career-advice reply.
type CareerAdvisor struct {
	generator contentGenerator
	logger    *zap.Logger
}

func NewCareerAdvisor(generator contentGenerator, log *zap.Logger) *CareerAdvisor {
	return &CareerAdvisor{generator: generator, logger: log}
}

func (a *CareerAdvisor) Reply(ctx context.Context, message string, profileContext string) (string, error) {
	var b strings.Builder
	b.WriteString("You are a concise career mentor for students and early-career engineers. ")
	b.WriteString("Answer practically, in a few short paragraphs, without markdown headings.\n\n")
	if strings.TrimSpace(profileContext) != "" {
		fmt.Fprintf(&b, "Student context:\n%s\n\n", profileContext)
	}
	fmt.Fprintf(&b, "Question:\n%s", message)

	reply, err := a.generator.GenerateContent(ctx, b.String())
	if err != nil {
		a.logger.Warn("career chat generation failed", zap.Error(err))
		return "", err
	}
	return reply, nil
}
