package model

import (
	"time"

	"github.com/google/uuid"
)

type ConversationLog struct {
	Id         int64      `gorm:"primaryKey;autoIncrement"`
	UserInput  string     `gorm:"type:text;not null"`
	AiResponse string     `gorm:"type:text;not null"`
	UserId     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index"`
}

func (ConversationLog) TableName() string {
	return "conversation_logs"
}

type WebsiteVisit struct {
	VisitDate  time.Time `gorm:"type:date;primaryKey"`
	VisitCount int       `gorm:"not null;default:0"`
}

func (WebsiteVisit) TableName() string {
	return "website_visits"
}

type DocumentRequestStat struct {
	RequestDate  time.Time `gorm:"type:date;primaryKey"`
	DocumentType string    `gorm:"type:varchar(100);primaryKey"`
	RequestCount int       `gorm:"not null;default:0"`
}

func (DocumentRequestStat) TableName() string {
	return "document_requests"
}

type AdminSetting struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (AdminSetting) TableName() string {
	return "admin_settings"
}
