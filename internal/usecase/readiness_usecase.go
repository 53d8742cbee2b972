package usecase

import (
	"context"
	"errors"
	"time"

	"career-connect/internal/clock"
	"career-connect/internal/domain/interview"
	"career-connect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// readinessTarget is the solved-question count that maps to a 100% score,
// overall and per company alike.
const readinessTarget = 50.0

const readinessReportTTL = 10 * time.Minute

// CompanyReadiness is the per-company slice of a readiness report.
type CompanyReadiness struct {
	Company       string  `json:"company"`
	Percent       float64 `json:"percent"`
	QuestionCount int     `json:"question_count"`
	SolvedCount   int     `json:"solved_count"`
}

type ReadinessReport struct {
	StudentID      string             `json:"student_id"`
	ReadinessScore float64            `json:"readiness_score"`
	SolvedCount    int                `json:"solved_count"`
	SkillLevel     string             `json:"skill_level"`
	Companies      []CompanyReadiness `json:"companies"`
}

type ReadinessUsecase interface {
	RecordSubmission(ctx context.Context, studentID, questionID uuid.UUID, category string, solved bool) (interview.PrepProfile, error)
	Progress(ctx context.Context, studentID uuid.UUID) (interview.PrepProfile, error)
	Report(ctx context.Context, studentID uuid.UUID) (ReadinessReport, error)
	SetTargetCompanies(ctx context.Context, studentID uuid.UUID, companies []string) error
}

type Readiness struct {
	profiles  repository.PrepProfileRepository
	questions repository.QuestionRepository
	users     repository.UserRepository
	cache     Cache
	clock     clock.Clock
	logger    *zap.Logger
}

func NewReadinessUsecase(profiles repository.PrepProfileRepository, questions repository.QuestionRepository, users repository.UserRepository, cache Cache, clk clock.Clock, log *zap.Logger) *Readiness {
	return &Readiness{profiles: profiles, questions: questions, users: users, cache: cache, clock: clk, logger: log}
}

// RecordSubmission folds one graded submission into the student's profile and
// recomputes the overall readiness score from the solved set. Re-solving a
// question leaves the sets and the score unchanged.
func (u *Readiness) RecordSubmission(ctx context.Context, studentID, questionID uuid.UUID, category string, solved bool) (interview.PrepProfile, error) {
	profile, err := u.profiles.RecordResult(ctx, studentID, questionID, category, solved, u.clock.Now())
	if err != nil {
		return interview.PrepProfile{}, err
	}

	score := readinessPercent(len(profile.SolvedQuestions))
	if score != profile.ReadinessScore {
		if err := u.profiles.SetReadiness(ctx, studentID, score); err != nil {
			return interview.PrepProfile{}, err
		}
		profile.ReadinessScore = score
	}

	if err := u.cache.Delete(ctx, reportCacheKey(studentID)); err != nil {
		u.logger.Warn("readiness report cache invalidation failed", zap.Error(err))
	}
	return profile, nil
}

// Progress returns the profile as stored. A student who never submitted gets
// the zero profile rather than a not-found error.
func (u *Readiness) Progress(ctx context.Context, studentID uuid.UUID) (interview.PrepProfile, error) {
	profile, err := u.profiles.GetByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrPrepProfileNotFound) {
			return emptyProfile(studentID), nil
		}
		return interview.PrepProfile{}, err
	}
	return profile, nil
}

// Report computes per-company readiness across the student's target
// companies. A company with no stored questions scores 0%. Reports are cached
// briefly and invalidated on every recorded submission.
func (u *Readiness) Report(ctx context.Context, studentID uuid.UUID) (ReadinessReport, error) {
	key := reportCacheKey(studentID)

	var cached ReadinessReport
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	profile, err := u.Progress(ctx, studentID)
	if err != nil {
		return ReadinessReport{}, err
	}

	solved := make(map[string]struct{}, len(profile.SolvedQuestions))
	for _, id := range profile.SolvedQuestions {
		solved[id] = struct{}{}
	}

	summary := interview.ProfileSummary{SolvedCount: len(profile.SolvedQuestions)}
	report := ReadinessReport{
		StudentID:      studentID.String(),
		ReadinessScore: profile.ReadinessScore,
		SolvedCount:    len(profile.SolvedQuestions),
		SkillLevel:     summary.SkillLevel(),
		Companies:      make([]CompanyReadiness, 0, len(profile.TargetCompanies)),
	}

	for _, company := range profile.TargetCompanies {
		ids, err := u.questions.IDsByCompany(ctx, company)
		if err != nil {
			return ReadinessReport{}, err
		}

		solvedHere := 0
		for _, id := range ids {
			if _, ok := solved[id]; ok {
				solvedHere++
			}
		}

		report.Companies = append(report.Companies, CompanyReadiness{
			Company:       company,
			Percent:       readinessPercent(solvedHere),
			QuestionCount: len(ids),
			SolvedCount:   solvedHere,
		})
	}

	if err := u.cache.SetJSON(ctx, key, report, readinessReportTTL); err != nil {
		u.logger.Warn("readiness report cache write failed", zap.Error(err))
	}
	return report, nil
}

// SetTargetCompanies writes the target list to the prep profile and mirrors
// it onto the user record when one exists.
func (u *Readiness) SetTargetCompanies(ctx context.Context, studentID uuid.UUID, companies []string) error {
	if err := u.profiles.SetTargetCompanies(ctx, studentID, companies); err != nil {
		return err
	}
	if err := u.users.SetTargetCompanies(ctx, studentID, companies); err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	return u.cache.Delete(ctx, reportCacheKey(studentID))
}

func readinessPercent(solvedCount int) float64 {
	pct := float64(solvedCount) / readinessTarget * 100
	if pct > 100 {
		pct = 100
	}
	return round1(pct)
}

func reportCacheKey(studentID uuid.UUID) string {
	return "readiness:report:" + studentID.String()
}

func emptyProfile(studentID uuid.UUID) interview.PrepProfile {
	return interview.PrepProfile{
		StudentID:          studentID,
		TargetCompanies:    []string{},
		SolvedQuestions:    []string{},
		AttemptedQuestions: []string{},
		FailedQuestions:    []string{},
		StrongTopics:       []string{},
		WeakTopics:         []string{},
	}
}
