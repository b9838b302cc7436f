package contract

import (
	"context"

	"github.com/Vaujx/BAAC/internal/entity"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (*entity.AdminSetting, error)
	Upsert(ctx context.Context, setting *entity.AdminSetting) error
}
