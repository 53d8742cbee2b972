package matching

import (
	"strings"

	"career-connect/internal/domain/user"
)

// Term weights of the compatibility score. Expertise overlap dominates
// because it measures what the mentee actually wants to learn.
const (
	expertiseWeight = 0.40
	skillWeight     = 0.25
	seniorExpBonus  = 0.20
	midExpBonus     = 0.10
	locationBonus   = 0.15
	seniorExpYears  = 5
	midExpYears     = 3
)

// Score computes the mentor/mentee compatibility score in [0, 100].
// It is deterministic and intentionally asymmetric: the mentor's expertise is
// measured against the mentee's learning goals, never the other way around.
func Score(mentor user.User, mentee user.User) float64 {
	score := 0.0

	var expertise []string
	years := 0
	if mentor.MentorProfile != nil {
		expertise = mentor.MentorProfile.Expertise
		years = mentor.MentorProfile.YearsExperience
	}

	var skillsToLearn []string
	if mentee.MenteeProfile != nil {
		skillsToLearn = mentee.MenteeProfile.SkillsToLearn
	}

	if len(expertise) > 0 && len(skillsToLearn) > 0 {
		overlap := intersectCount(expertise, skillsToLearn)
		score += float64(overlap) / float64(max(len(skillsToLearn), 1)) * expertiseWeight
	}

	if len(mentor.Skills) > 0 && len(mentee.Skills) > 0 {
		overlap := intersectCount(mentor.Skills, mentee.Skills)
		score += float64(overlap) / float64(max(len(mentee.Skills), 1)) * skillWeight
	}

	switch {
	case years >= seniorExpYears:
		score += seniorExpBonus
	case years >= midExpYears:
		score += midExpBonus
	}

	if mentor.Location != "" && mentee.Location != "" &&
		strings.EqualFold(mentor.Location, mentee.Location) {
		score += locationBonus
	}

	return min(score*100, 100)
}

func intersectCount(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}

	n := 0
	seen := make(map[string]struct{}, len(b))
	for _, s := range b {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := set[s]; ok {
			n++
		}
	}
	return n
}
