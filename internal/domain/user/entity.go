package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleBoth    = "both"
)

// MentorProfile is present on users offering mentorship (role mentor or both).
type MentorProfile struct {
	IsAvailable     bool     `json:"is_available"`
	Expertise       []string `json:"expertise"`
	YearsExperience int      `json:"years_experience"`
	MaxMentees      int      `json:"max_mentees"`
	Availability    string   `json:"availability"`
}

// MenteeProfile is present on users looking for a mentor.
type MenteeProfile struct {
	SeekingMentor       bool     `json:"seeking_mentor"`
	CareerGoals         []string `json:"career_goals"`
	SkillsToLearn       []string `json:"skills_to_learn"`
	PreferredMentorType string   `json:"preferred_mentor_type"`
}

type Experience struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Duration string `json:"duration"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	Role            string
	College         string
	GraduationYear  string
	CurrentRole     string
	Bio             string
	Location        string
	ProfilePic      string
	Skills          []string
	TargetCompanies []string
	Experience      []Experience
	Education       []Education
	MentorProfile   *MentorProfile
	MenteeProfile   *MenteeProfile
	Connections     []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanMentor reports whether the user may appear on the mentor side of a
// match. Students never qualify, regardless of any stale mentor profile.
func (u User) CanMentor() bool {
	return u.Role == RoleMentor || u.Role == RoleBoth
}
