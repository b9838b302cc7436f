package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/mapper"
	"github.com/Vaujx/BAAC/internal/model"
	"github.com/Vaujx/BAAC/internal/repository/contract"
	"github.com/Vaujx/BAAC/internal/repository/specification"

	"gorm.io/gorm"
)

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentRepository(db *gorm.DB) contract.DocumentRepository {
	return &DocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentRepositoryImpl) Create(ctx context.Context, submission *entity.DocumentSubmission) error {
	m := r.mapper.ToModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.ToEntity(m)
	return nil
}

func (r *DocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentSubmission, error) {
	var m model.DocumentSubmission
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentSubmission, error) {
	var models []model.DocumentSubmission
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	submissions := make([]*entity.DocumentSubmission, 0, len(models))
	for i := range models {
		submissions = append(submissions, r.mapper.ToEntity(&models[i]))
	}
	return submissions, nil
}

func (r *DocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.DocumentSubmission{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DocumentRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status string, pickupDate *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if pickupDate != nil {
		updates["pickup_date"] = *pickupDate
	}
	return r.db.WithContext(ctx).Model(&model.DocumentSubmission{}).
		Where("id = ?", id).
		Updates(updates).Error
}
