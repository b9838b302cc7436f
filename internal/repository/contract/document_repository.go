package contract

import (
	"context"
	"time"

	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/repository/specification"
)

type DocumentRepository interface {
	Create(ctx context.Context, submission *entity.DocumentSubmission) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentSubmission, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentSubmission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// UpdateStatus stamps pickupDate only when provided; other transitions
	// leave it untouched.
	UpdateStatus(ctx context.Context, id int64, status string, pickupDate *time.Time) error
}
