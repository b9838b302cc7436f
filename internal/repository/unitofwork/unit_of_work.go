package unitofwork

import (
	"context"

	"github.com/Vaujx/BAAC/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatRepository() contract.ChatRepository
	ChatMessageRepository() contract.ChatMessageRepository
	DocumentRepository() contract.DocumentRepository
	AnalyticsRepository() contract.AnalyticsRepository
	SettingRepository() contract.SettingRepository
}
