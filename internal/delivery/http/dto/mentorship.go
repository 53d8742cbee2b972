package dto

import (
	"time"

	"career-connect/internal/domain/mentorship"
	"career-connect/internal/usecase"
)

type CreateMentorshipRequest struct {
	MentorID string `json:"mentor_id"`
	MenteeID string `json:"mentee_id"`
	Message  string `json:"message"`
}

type RespondMentorshipRequest struct {
	Status string `json:"status"`
}

type MentorshipRequestResponse struct {
	ID                 string  `json:"id"`
	MentorID           string  `json:"mentor_id"`
	MenteeID           string  `json:"mentee_id"`
	Status             string  `json:"status"`
	CompatibilityScore float64 `json:"compatibility_score"`
	Message            string  `json:"message,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

func FromMentorshipRequest(req mentorship.Request) MentorshipRequestResponse {
	return MentorshipRequestResponse{
		ID:                 req.ID.String(),
		MentorID:           req.MentorID.String(),
		MenteeID:           req.MenteeID.String(),
		Status:             req.Status,
		CompatibilityScore: req.CompatibilityScore,
		Message:            req.Message,
		CreatedAt:          req.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromMentorshipRequests(reqs []mentorship.Request) []MentorshipRequestResponse {
	out := make([]MentorshipRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromMentorshipRequest(r))
	}
	return out
}

type MatchResponse struct {
	Mentor UserResponse `json:"mentor"`
	Score  float64      `json:"score"`
}

func FromMatches(matches []usecase.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchResponse{Mentor: FromUser(m.Mentor), Score: m.Score})
	}
	return out
}
