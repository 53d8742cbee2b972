package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-connect/internal/clock"
	"career-connect/internal/domain/interview"
	"career-connect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// regenerationLockTTL bounds how long a crashed generator can hold the
// per-company lock.
const regenerationLockTTL = 60 * time.Second

// QuestionGenerator produces a fresh question batch for a company,
// personalized to the student's preparation profile.
type QuestionGenerator interface {
	Generate(ctx context.Context, company string, profile interview.ProfileSummary) ([]interview.QuestionDraft, error)
}

type QuestionUsecase interface {
	QuestionsForCompany(ctx context.Context, studentID uuid.UUID, company string, force bool) ([]interview.CodingQuestion, bool, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (interview.CodingQuestion, error)
}

type Questions struct {
	questions repository.QuestionRepository
	profiles  repository.PrepProfileRepository
	generator QuestionGenerator
	cache     Cache
	clock     clock.Clock
	logger    *zap.Logger
}

func NewQuestionUsecase(
	questions repository.QuestionRepository,
	profiles repository.PrepProfileRepository,
	generator QuestionGenerator,
	cache Cache,
	clk clock.Clock,
	log *zap.Logger,
) *Questions {
	return &Questions{
		questions: questions,
		profiles:  profiles,
		generator: generator,
		cache:     cache,
		clock:     clk,
		logger:    log,
	}
}

// QuestionsForCompany serves a full batch of questions for the company. A
// batch younger than the staleness window is served from storage; otherwise
// the old batch is replaced wholesale with freshly generated questions. The
// second return value reports whether the batch came from storage.
func (u *Questions) QuestionsForCompany(ctx context.Context, studentID uuid.UUID, company string, force bool) ([]interview.CodingQuestion, bool, error) {
	if company == "" {
		return nil, false, fmt.Errorf("%w: company is required", ErrValidation)
	}

	now := u.clock.Now()
	since := now.Add(-interview.Staleness)

	if !force {
		fresh, err := u.questions.FindFreshByCompany(ctx, company, since, interview.BatchSize)
		if err != nil {
			return nil, false, err
		}
		if len(fresh) >= interview.BatchSize {
			return fresh[:interview.BatchSize], true, nil
		}
	}

	lockKey := "questions:regen:" + company
	acquired, _ := u.cache.SetIfNotExists(ctx, lockKey, studentID.String(), regenerationLockTTL)
	if !acquired {
		// Another request is regenerating. Serve whatever batch it has
		// written so far rather than generating a duplicate one.
		fresh, err := u.questions.FindFreshByCompany(ctx, company, since, interview.BatchSize)
		if err != nil {
			return nil, false, err
		}
		if len(fresh) > 0 {
			return fresh, true, nil
		}
		return nil, false, fmt.Errorf("%w: generation for %s already in progress", ErrGenerationFailed, company)
	}
	defer func() {
		_ = u.cache.Delete(ctx, lockKey)
	}()

	batch, err := u.regenerate(ctx, studentID, company, now)
	if err != nil {
		return nil, false, err
	}
	return batch, false, nil
}

func (u *Questions) regenerate(ctx context.Context, studentID uuid.UUID, company string, now time.Time) ([]interview.CodingQuestion, error) {
	drafts, err := u.generator.Generate(ctx, company, u.profileSummary(ctx, studentID))
	if err != nil {
		u.logger.Warn("question generation failed",
			zap.String("company", company),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: generator returned no questions", ErrGenerationFailed)
	}

	batch := make([]interview.CodingQuestion, 0, len(drafts))
	for _, d := range drafts {
		batch = append(batch, interview.CodingQuestion{
			ID:           uuid.New(),
			Title:        d.Title,
			Difficulty:   d.Difficulty,
			Category:     d.Category,
			Description:  d.Description,
			InputFormat:  d.InputFormat,
			OutputFormat: d.OutputFormat,
			Examples:     d.Examples,
			Constraints:  d.Constraints,
			TestCases:    d.TestCases,
			Companies:    []string{company},
			Frequency:    d.Frequency,
			Hint:         d.Hint,
			CreatedAt:    now,
		})
	}

	// Replace, never patch: the old batch goes away in full before the new
	// one is written.
	if err := u.questions.DeleteByCompany(ctx, company); err != nil {
		return nil, err
	}
	if err := u.questions.InsertBatch(ctx, batch); err != nil {
		return nil, err
	}

	u.logger.Info("question batch regenerated",
		zap.String("company", company),
		zap.Int("count", len(batch)),
	)
	return batch, nil
}

// profileSummary is best-effort personalization context. A student with no
// prep profile yet gets the zero summary, which the prompt treats as a
// beginner.
func (u *Questions) profileSummary(ctx context.Context, studentID uuid.UUID) interview.ProfileSummary {
	profile, err := u.profiles.GetByStudent(ctx, studentID)
	if err != nil {
		if !errors.Is(err, repository.ErrPrepProfileNotFound) {
			u.logger.Warn("prep profile lookup failed", zap.Error(err))
		}
		return interview.ProfileSummary{}
	}
	return interview.ProfileSummary{
		SolvedCount:  len(profile.SolvedQuestions),
		WeakTopics:   profile.WeakTopics,
		StrongTopics: profile.StrongTopics,
	}
}

func (u *Questions) GetQuestion(ctx context.Context, id uuid.UUID) (interview.CodingQuestion, error) {
	q, err := u.questions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return interview.CodingQuestion{}, ErrQuestionNotFound
		}
		return interview.CodingQuestion{}, err
	}
	return q, nil
}
