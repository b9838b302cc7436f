package service

import (
	"context"
	"time"

	"github.com/Vaujx/BAAC/internal/config"
	"github.com/Vaujx/BAAC/internal/dto"
	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/pkg/logger"
	"github.com/Vaujx/BAAC/internal/repository/unitofwork"
)

const statsWindowDays = 7

type IAdminService interface {
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
	AiReport(ctx context.Context) ([]dto.AiReportRow, error)
	ReloadSettings(ctx context.Context) (*dto.ReloadSettingsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	settings   *config.Settings
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, settings *config.Settings, sysLogger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		settings:   settings,
		logger:     sysLogger,
	}
}

func (s *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	analytics := uow.AnalyticsRepository()
	today := time.Now()

	todayVisits, err := analytics.VisitCount(ctx, today)
	if err != nil {
		return nil, err
	}

	todayRequests, err := analytics.RequestTotal(ctx, today)
	if err != nil {
		return nil, err
	}

	visits, err := analytics.VisitSeries(ctx, statsWindowDays)
	if err != nil {
		return nil, err
	}

	requests, err := analytics.RequestSeries(ctx, statsWindowDays)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdminStatsResponse{
		TodayVisits:   todayVisits,
		TodayRequests: todayRequests,
		VisitsData:    make([]dto.DailyVisitRow, 0, len(visits)),
		RequestsData:  make([]dto.DailyRequestRow, 0, len(requests)),
	}
	for _, v := range visits {
		resp.VisitsData = append(resp.VisitsData, dto.DailyVisitRow{
			Date:  v.VisitDate,
			Count: v.VisitCount,
		})
	}
	for _, r := range requests {
		resp.RequestsData = append(resp.RequestsData, dto.DailyRequestRow{
			Date:  r.RequestDate,
			Count: r.RequestCount,
		})
	}
	return resp, nil
}

func (s *adminService) AiReport(ctx context.Context) ([]dto.AiReportRow, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.AnalyticsRepository().ConversationReport(ctx, statsWindowDays)
	if err != nil {
		return nil, err
	}

	report := make([]dto.AiReportRow, 0, len(rows))
	for _, row := range rows {
		report = append(report, dto.AiReportRow{
			Date:               row.Date,
			TotalConversations: row.TotalConversations,
			AvgUserInputLen:    row.AvgUserInputLen,
			AvgAiResponseLen:   row.AvgAiResponseLen,
		})
	}
	return report, nil
}

// ReloadSettings refreshes the in-process admin credential pair from the
// settings table. Missing rows leave the environment-derived values in place.
func (s *adminService) ReloadSettings(ctx context.Context) (*dto.ReloadSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings := uow.SettingRepository()

	keyRow, err := settings.Get(ctx, entity.SettingAdminKey)
	if err != nil {
		return nil, err
	}
	passRow, err := settings.Get(ctx, entity.SettingAdminPass)
	if err != nil {
		return nil, err
	}

	if keyRow != nil && passRow != nil {
		s.settings.SetAdminCredentials(keyRow.Value, passRow.Value)
		s.logger.Info("admin", "admin credentials reloaded from settings", nil)
		return &dto.ReloadSettingsResponse{Reloaded: true}, nil
	}

	s.logger.Info("admin", "no credential override rows, keeping current settings", nil)
	return &dto.ReloadSettingsResponse{Reloaded: false}, nil
}
