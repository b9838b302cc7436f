package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/model"
	"github.com/Vaujx/BAAC/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) contract.AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) InsertConversationLog(ctx context.Context, log *entity.ConversationLog) error {
	m := &model.ConversationLog{
		UserInput:  log.UserInput,
		AiResponse: log.AiResponse,
		UserId:     log.UserId,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.Id = m.Id
	log.CreatedAt = m.CreatedAt
	return nil
}

func (r *AnalyticsRepositoryImpl) ConversationReport(ctx context.Context, days int) ([]entity.ConversationReportRow, error) {
	var rows []entity.ConversationReportRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT DATE(created_at) AS date,
		       COUNT(*) AS total_conversations,
		       AVG(LENGTH(user_input)) AS avg_user_input_len,
		       AVG(LENGTH(ai_response)) AS avg_ai_response_len
		FROM conversation_logs
		WHERE created_at >= NOW() - make_interval(days => ?)
		GROUP BY DATE(created_at)
		ORDER BY date DESC`, days).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepositoryImpl) IncrementWebsiteVisit(ctx context.Context, date time.Time) error {
	visit := &model.WebsiteVisit{
		VisitDate:  truncateToDate(date),
		VisitCount: 1,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visit_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"visit_count": gorm.Expr("website_visits.visit_count + 1")}),
	}).Create(visit).Error
}

func (r *AnalyticsRepositoryImpl) VisitCount(ctx context.Context, date time.Time) (int, error) {
	var m model.WebsiteVisit
	err := r.db.WithContext(ctx).
		Where("visit_date = ?", truncateToDate(date)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return m.VisitCount, nil
}

func (r *AnalyticsRepositoryImpl) VisitSeries(ctx context.Context, limit int) ([]entity.WebsiteVisit, error) {
	var models []model.WebsiteVisit
	err := r.db.WithContext(ctx).
		Order("visit_date DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	visits := make([]entity.WebsiteVisit, 0, len(models))
	for _, m := range models {
		visits = append(visits, entity.WebsiteVisit{
			VisitDate:  m.VisitDate,
			VisitCount: m.VisitCount,
		})
	}
	return visits, nil
}

func (r *AnalyticsRepositoryImpl) IncrementDocumentRequest(ctx context.Context, date time.Time, documentType string) error {
	stat := &model.DocumentRequestStat{
		RequestDate:  truncateToDate(date),
		DocumentType: documentType,
		RequestCount: 1,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "request_date"}, {Name: "document_type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"request_count": gorm.Expr("document_requests.request_count + 1")}),
	}).Create(stat).Error
}

func (r *AnalyticsRepositoryImpl) RequestTotal(ctx context.Context, date time.Time) (int, error) {
	var total *int
	err := r.db.WithContext(ctx).Model(&model.DocumentRequestStat{}).
		Select("SUM(request_count)").
		Where("request_date = ?", truncateToDate(date)).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// RequestSeries sums request counts across document types so each returned
// row is one day's total; the limit bounds days, not raw rows.
func (r *AnalyticsRepositoryImpl) RequestSeries(ctx context.Context, limit int) ([]entity.DocumentRequestStat, error) {
	var rows []struct {
		RequestDate  time.Time
		RequestCount int
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT request_date,
		       SUM(request_count) AS request_count
		FROM document_requests
		GROUP BY request_date
		ORDER BY request_date DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	stats := make([]entity.DocumentRequestStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.DocumentRequestStat{
			RequestDate:  row.RequestDate,
			RequestCount: row.RequestCount,
		})
	}
	return stats, nil
}

func truncateToDate(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
