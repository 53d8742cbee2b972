package dto

import (
	"time"

	"career-connect/internal/domain/user"
)

type MentorProfilePayload struct {
	IsAvailable     bool     `json:"is_available"`
	Expertise       []string `json:"expertise"`
	YearsExperience int      `json:"years_experience"`
	MaxMentees      int      `json:"max_mentees"`
	Availability    string   `json:"availability"`
}

type MenteeProfilePayload struct {
	SeekingMentor       bool     `json:"seeking_mentor"`
	CareerGoals         []string `json:"career_goals"`
	SkillsToLearn       []string `json:"skills_to_learn"`
	PreferredMentorType string   `json:"preferred_mentor_type"`
}

type ExperiencePayload struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Duration string `json:"duration"`
}

type EducationPayload struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

type CreateUserRequest struct {
	Email           string                `json:"email"`
	Name            string                `json:"name"`
	Role            string                `json:"role"`
	College         string                `json:"college"`
	GraduationYear  string                `json:"graduation_year"`
	CurrentRole     string                `json:"current_role"`
	Bio             string                `json:"bio"`
	Location        string                `json:"location"`
	ProfilePic      string                `json:"profile_pic"`
	Skills          []string              `json:"skills"`
	TargetCompanies []string              `json:"target_companies"`
	Experience      []ExperiencePayload   `json:"experience"`
	Education       []EducationPayload    `json:"education"`
	MentorProfile   *MentorProfilePayload `json:"mentor_profile"`
	MenteeProfile   *MenteeProfilePayload `json:"mentee_profile"`
}

type UpdateUserRequest struct {
	Name            string                `json:"name"`
	Role            string                `json:"role"`
	College         string                `json:"college"`
	GraduationYear  string                `json:"graduation_year"`
	CurrentRole     string                `json:"current_role"`
	Bio             string                `json:"bio"`
	Location        string                `json:"location"`
	ProfilePic      string                `json:"profile_pic"`
	Skills          []string              `json:"skills"`
	TargetCompanies []string              `json:"target_companies"`
	Experience      []ExperiencePayload   `json:"experience"`
	Education       []EducationPayload    `json:"education"`
	MentorProfile   *MentorProfilePayload `json:"mentor_profile"`
	MenteeProfile   *MenteeProfilePayload `json:"mentee_profile"`
}

type UserResponse struct {
	ID              string                `json:"id"`
	Email           string                `json:"email"`
	Name            string                `json:"name"`
	Role            string                `json:"role"`
	College         string                `json:"college,omitempty"`
	GraduationYear  string                `json:"graduation_year,omitempty"`
	CurrentRole     string                `json:"current_role,omitempty"`
	Bio             string                `json:"bio,omitempty"`
	Location        string                `json:"location,omitempty"`
	ProfilePic      string                `json:"profile_pic,omitempty"`
	Skills          []string              `json:"skills"`
	TargetCompanies []string              `json:"target_companies"`
	Experience      []ExperiencePayload   `json:"experience"`
	Education       []EducationPayload    `json:"education"`
	MentorProfile   *MentorProfilePayload `json:"mentor_profile,omitempty"`
	MenteeProfile   *MenteeProfilePayload `json:"mentee_profile,omitempty"`
	Connections     []string              `json:"connections"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

func (r CreateUserRequest) ToDomain() user.User {
	return user.User{
		Email:           r.Email,
		Name:            r.Name,
		Role:            r.Role,
		College:         r.College,
		GraduationYear:  r.GraduationYear,
		CurrentRole:     r.CurrentRole,
		Bio:             r.Bio,
		Location:        r.Location,
		ProfilePic:      r.ProfilePic,
		Skills:          r.Skills,
		TargetCompanies: r.TargetCompanies,
		Experience:      experienceToDomain(r.Experience),
		Education:       educationToDomain(r.Education),
		MentorProfile:   mentorProfileToDomain(r.MentorProfile),
		MenteeProfile:   menteeProfileToDomain(r.MenteeProfile),
	}
}

func (r UpdateUserRequest) ToDomain() user.User {
	return user.User{
		Name:            r.Name,
		Role:            r.Role,
		College:         r.College,
		GraduationYear:  r.GraduationYear,
		CurrentRole:     r.CurrentRole,
		Bio:             r.Bio,
		Location:        r.Location,
		ProfilePic:      r.ProfilePic,
		Skills:          r.Skills,
		TargetCompanies: r.TargetCompanies,
		Experience:      experienceToDomain(r.Experience),
		Education:       educationToDomain(r.Education),
		MentorProfile:   mentorProfileToDomain(r.MentorProfile),
		MenteeProfile:   menteeProfileToDomain(r.MenteeProfile),
	}
}

func FromUser(u user.User) UserResponse {
	res := UserResponse{
		ID:              u.ID.String(),
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		College:         u.College,
		GraduationYear:  u.GraduationYear,
		CurrentRole:     u.CurrentRole,
		Bio:             u.Bio,
		Location:        u.Location,
		ProfilePic:      u.ProfilePic,
		Skills:          emptySlice(u.Skills),
		TargetCompanies: emptySlice(u.TargetCompanies),
		Experience:      experienceFromDomain(u.Experience),
		Education:       educationFromDomain(u.Education),
		Connections:     emptySlice(u.Connections),
		CreatedAt:       u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       u.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if u.MentorProfile != nil {
		res.MentorProfile = &MentorProfilePayload{
			IsAvailable:     u.MentorProfile.IsAvailable,
			Expertise:       emptySlice(u.MentorProfile.Expertise),
			YearsExperience: u.MentorProfile.YearsExperience,
			MaxMentees:      u.MentorProfile.MaxMentees,
			Availability:    u.MentorProfile.Availability,
		}
	}
	if u.MenteeProfile != nil {
		res.MenteeProfile = &MenteeProfilePayload{
			SeekingMentor:       u.MenteeProfile.SeekingMentor,
			CareerGoals:         emptySlice(u.MenteeProfile.CareerGoals),
			SkillsToLearn:       emptySlice(u.MenteeProfile.SkillsToLearn),
			PreferredMentorType: u.MenteeProfile.PreferredMentorType,
		}
	}
	return res
}

func FromUsers(users []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

func mentorProfileToDomain(p *MentorProfilePayload) *user.MentorProfile {
	if p == nil {
		return nil
	}
	return &user.MentorProfile{
		IsAvailable:     p.IsAvailable,
		Expertise:       p.Expertise,
		YearsExperience: p.YearsExperience,
		MaxMentees:      p.MaxMentees,
		Availability:    p.Availability,
	}
}

func menteeProfileToDomain(p *MenteeProfilePayload) *user.MenteeProfile {
	if p == nil {
		return nil
	}
	return &user.MenteeProfile{
		SeekingMentor:       p.SeekingMentor,
		CareerGoals:         p.CareerGoals,
		SkillsToLearn:       p.SkillsToLearn,
		PreferredMentorType: p.PreferredMentorType,
	}
}

func experienceToDomain(in []ExperiencePayload) []user.Experience {
	out := make([]user.Experience, 0, len(in))
	for _, e := range in {
		out = append(out, user.Experience{Company: e.Company, Role: e.Role, Duration: e.Duration})
	}
	return out
}

func educationToDomain(in []EducationPayload) []user.Education {
	out := make([]user.Education, 0, len(in))
	for _, e := range in {
		out = append(out, user.Education{Institution: e.Institution, Degree: e.Degree, Year: e.Year})
	}
	return out
}

func experienceFromDomain(in []user.Experience) []ExperiencePayload {
	out := make([]ExperiencePayload, 0, len(in))
	for _, e := range in {
		out = append(out, ExperiencePayload{Company: e.Company, Role: e.Role, Duration: e.Duration})
	}
	return out
}

func educationFromDomain(in []user.Education) []EducationPayload {
	out := make([]EducationPayload, 0, len(in))
	for _, e := range in {
		out = append(out, EducationPayload{Institution: e.Institution, Degree: e.Degree, Year: e.Year})
	}
	return out
}

func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
