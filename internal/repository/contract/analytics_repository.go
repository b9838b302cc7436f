package contract

import (
	"context"
	"time"

	"github.com/Vaujx/BAAC/internal/entity"
)

type AnalyticsRepository interface {
	InsertConversationLog(ctx context.Context, log *entity.ConversationLog) error
	ConversationReport(ctx context.Context, days int) ([]entity.ConversationReportRow, error)

	IncrementWebsiteVisit(ctx context.Context, date time.Time) error
	VisitCount(ctx context.Context, date time.Time) (int, error)
	VisitSeries(ctx context.Context, limit int) ([]entity.WebsiteVisit, error)

	IncrementDocumentRequest(ctx context.Context, date time.Time, documentType string) error
	RequestTotal(ctx context.Context, date time.Time) (int, error)
	RequestSeries(ctx context.Context, limit int) ([]entity.DocumentRequestStat, error)
}
