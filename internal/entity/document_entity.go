package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "Pending"
	DocumentStatusApproved DocumentStatus = "Approved"
	DocumentStatusRejected DocumentStatus = "Rejected"
	DocumentStatusClaimed  DocumentStatus = "Claimed"
)

// DocumentSubmission is a citizen's request for one or more barangay
// documents. The numeric id is surfaced as the REF-{id} token. Submissions
// are created once, mutated only by the administrative status update, and
// never deleted.
type DocumentSubmission struct {
	Id            int64
	UserId        *uuid.UUID
	FullName      string
	Area          string
	Purpose       string
	Copies        int
	DocumentTypes []string
	Status        DocumentStatus
	PickupDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
