package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"career-connect/internal/domain/user"

	"github.com/google/uuid"
)

func testMentee() user.User {
	return user.User{
		ID:       uuid.New(),
		Role:     user.RoleStudent,
		Skills:   []string{"python"},
		Location: "Jakarta",
		MenteeProfile: &user.MenteeProfile{
			SeekingMentor: true,
			SkillsToLearn: []string{"go", "sql"},
		},
	}
}

func TestMatching_RankMatches_OrdersByScore(t *testing.T) {
	mentee := testMentee()

	full := user.User{
		ID:       uuid.New(),
		Name:     "full match",
		Role:     user.RoleMentor,
		Skills:   []string{"python", "go"},
		Location: "jakarta",
		MentorProfile: &user.MentorProfile{
			IsAvailable:     true,
			Expertise:       []string{"go", "sql"},
			YearsExperience: 6,
		},
	}
	partial := user.User{
		ID:     uuid.New(),
		Name:   "partial match",
		Role:   user.RoleMentor,
		Skills: []string{"python"},
		MentorProfile: &user.MentorProfile{
			IsAvailable:     true,
			Expertise:       []string{"go"},
			YearsExperience: 3,
		},
	}
	none := user.User{
		ID:   uuid.New(),
		Name: "no match",
		Role: user.RoleMentor,
		MentorProfile: &user.MentorProfile{
			IsAvailable: true,
			Expertise:   []string{"rust"},
		},
	}

	repo := newMockUserRepo(mentee)
	repo.mentors = []user.User{none, partial, full}

	uc := NewMatchingUsecase(repo)
	matches, err := uc.RankMatches(context.Background(), mentee.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if matches[0].Mentor.ID != full.ID {
		t.Fatalf("expected full match first, got %s", matches[0].Mentor.Name)
	}
	if matches[0].Score != 100 {
		t.Fatalf("expected score 100, got %v", matches[0].Score)
	}
	if matches[1].Mentor.ID != partial.ID {
		t.Fatalf("expected partial match second, got %s", matches[1].Mentor.Name)
	}
	if matches[1].Score != 55 {
		t.Fatalf("expected score 55, got %v", matches[1].Score)
	}
	if matches[2].Score != 0 {
		t.Fatalf("expected score 0, got %v", matches[2].Score)
	}
}

func TestMatching_RankMatches_SkipsNonMentorRoles(t *testing.T) {
	mentee := testMentee()
	student := user.User{
		ID:   uuid.New(),
		Role: user.RoleStudent,
		MentorProfile: &user.MentorProfile{
			IsAvailable: true,
			Expertise:   []string{"go", "sql"},
		},
	}

	repo := newMockUserRepo(mentee)
	repo.mentors = []user.User{student}

	matches, err := NewMatchingUsecase(repo).RankMatches(context.Background(), mentee.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
}

func TestMatching_RankMatches_TruncatesToMaxMatches(t *testing.T) {
	mentee := testMentee()
	repo := newMockUserRepo(mentee)
	for i := 0; i < MaxMatches+3; i++ {
		repo.mentors = append(repo.mentors, user.User{
			ID:   uuid.New(),
			Name: fmt.Sprintf("mentor-%d", i),
			Role: user.RoleMentor,
			MentorProfile: &user.MentorProfile{
				IsAvailable:     true,
				YearsExperience: i,
			},
		})
	}

	matches, err := NewMatchingUsecase(repo).RankMatches(context.Background(), mentee.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != MaxMatches {
		t.Fatalf("expected %d matches, got %d", MaxMatches, len(matches))
	}
}

func TestMatching_RankMatches_UnknownMentee(t *testing.T) {
	repo := newMockUserRepo()
	_, err := NewMatchingUsecase(repo).RankMatches(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
