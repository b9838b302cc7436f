package dto

import "time"

type DailyVisitRow struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

type DailyRequestRow struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

type AdminStatsResponse struct {
	TodayVisits   int               `json:"today_visits"`
	TodayRequests int               `json:"today_requests"`
	VisitsData    []DailyVisitRow   `json:"visits_data"`
	RequestsData  []DailyRequestRow `json:"requests_data"`
}

type AiReportRow struct {
	Date               time.Time `json:"date"`
	TotalConversations int64     `json:"total_conversations"`
	AvgUserInputLen    float64   `json:"avg_user_input_length"`
	AvgAiResponseLen   float64   `json:"avg_ai_response_length"`
}

type ReloadSettingsResponse struct {
	Reloaded bool `json:"reloaded"`
}
