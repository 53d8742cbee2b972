package mentorship

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Request carries the compatibility score frozen at creation time; match
// rankings recompute live, requests never do.
type Request struct {
	ID                 uuid.UUID
	MentorID           uuid.UUID
	MenteeID           uuid.UUID
	Status             string
	CompatibilityScore float64
	Message            string
	CreatedAt          time.Time
}

// Terminal reports whether the request left the pending state. Accepted and
// rejected are both terminal; there is no re-opening.
func Terminal(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}
