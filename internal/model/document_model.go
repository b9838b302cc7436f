package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentSubmission struct {
	Id            int64      `gorm:"primaryKey;autoIncrement"`
	UserId        *uuid.UUID `gorm:"type:uuid;index"`
	FullName      string     `gorm:"type:varchar(255);not null"`
	Area          string     `gorm:"type:varchar(255)"`
	Purpose       string     `gorm:"type:text"`
	Copies        int        `gorm:"not null;default:1"`
	DocumentTypes string     `gorm:"type:text;not null"` // comma-separated
	Status        string     `gorm:"type:varchar(50);not null;default:'Pending';index"`
	PickupDate    *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (DocumentSubmission) TableName() string {
	return "document_submissions"
}
