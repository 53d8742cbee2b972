package usecase

import (
	"context"
	"errors"
	"math"
	"sort"

	"career-connect/internal/domain/matching"
	"career-connect/internal/domain/user"
	"career-connect/internal/repository"

	"github.com/google/uuid"
)

// MaxMatches caps how many ranked mentors a mentee sees.
const MaxMatches = 5

type Match struct {
	Mentor user.User
	Score  float64
}

type MatchingUsecase interface {
	RankMatches(ctx context.Context, menteeID uuid.UUID) ([]Match, error)
	ListMentors(ctx context.Context, filter repository.MentorFilter) ([]user.User, error)
}

type Matching struct {
	users repository.UserRepository
}

func NewMatchingUsecase(users repository.UserRepository) *Matching {
	return &Matching{users: users}
}

// RankMatches scores every available mentor against the mentee and returns
// the top matches, best first. Ties keep the repository's fetch order.
func (u *Matching) RankMatches(ctx context.Context, menteeID uuid.UUID) ([]Match, error) {
	mentee, err := u.users.GetByID(ctx, menteeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	mentors, err := u.users.FindAvailableMentors(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(mentors))
	for _, m := range mentors {
		if !m.CanMentor() {
			continue
		}
		score := matching.Score(m, mentee)
		matches = append(matches, Match{Mentor: m, Score: round2(score)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches, nil
}

func (u *Matching) ListMentors(ctx context.Context, filter repository.MentorFilter) ([]user.User, error) {
	return u.users.FindMentors(ctx, filter)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
