package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationLog records one completed chat turn for the admin report.
// Logging is best-effort and never blocks the citizen-facing reply.
type ConversationLog struct {
	Id         int64
	UserInput  string
	AiResponse string
	UserId     *uuid.UUID
	CreatedAt  time.Time
}

// WebsiteVisit is the per-day landing page counter.
type WebsiteVisit struct {
	VisitDate  time.Time
	VisitCount int
}

// DocumentRequestStat tallies document requests per day and type.
type DocumentRequestStat struct {
	RequestDate  time.Time
	DocumentType string
	RequestCount int
}

// ConversationReportRow is one day of the admin AI report.
type ConversationReportRow struct {
	Date               time.Time
	TotalConversations int64
	AvgUserInputLen    float64
	AvgAiResponseLen   float64
}
