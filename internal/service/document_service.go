package service

import (
	"context"
	"errors"
	"time"

	"github.com/Vaujx/BAAC/internal/dto"
	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/repository/specification"
	"github.com/Vaujx/BAAC/internal/repository/unitofwork"
	"github.com/Vaujx/BAAC/pkg/intent"

	"github.com/google/uuid"
)

var ErrSubmissionNotFound = errors.New("document submission not found")

type IDocumentService interface {
	Submit(ctx context.Context, userID uuid.UUID, req *dto.SubmitDocumentRequest) (*dto.SubmitDocumentResponse, error)
	List(ctx context.Context) ([]dto.DocumentSubmissionResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateDocumentStatusRequest) error
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory) IDocumentService {
	return &documentService{
		uowFactory: uowFactory,
	}
}

func (s *documentService) Submit(ctx context.Context, userID uuid.UUID, req *dto.SubmitDocumentRequest) (*dto.SubmitDocumentResponse, error) {
	submission := &entity.DocumentSubmission{
		UserId:        &userID,
		FullName:      req.FullName,
		Area:          req.Area,
		Purpose:       req.Purpose,
		Copies:        req.Copies,
		DocumentTypes: req.DocumentTypes,
		Status:        entity.DocumentStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DocumentRepository().Create(ctx, submission); err != nil {
		return nil, err
	}

	return &dto.SubmitDocumentResponse{
		Id:        submission.Id,
		Reference: intent.FormatReference(submission.Id),
	}, nil
}

func (s *documentService) List(ctx context.Context) ([]dto.DocumentSubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	submissions, err := uow.DocumentRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DocumentSubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		items = append(items, dto.DocumentSubmissionResponse{
			Id:            sub.Id,
			Reference:     intent.FormatReference(sub.Id),
			FullName:      sub.FullName,
			Area:          sub.Area,
			Purpose:       sub.Purpose,
			Copies:        sub.Copies,
			DocumentTypes: sub.DocumentTypes,
			Status:        string(sub.Status),
			PickupDate:    sub.PickupDate,
			CreatedAt:     sub.CreatedAt,
		})
	}
	return items, nil
}

// UpdateStatus accepts any status string; choosing a sane transition is the
// operator's call. Entering Claimed always stamps today's date as the pickup
// date, every other status leaves it untouched.
func (s *documentService) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateDocumentStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	submission, err := uow.DocumentRepository().FindOne(ctx, specification.ByNumericID{ID: id})
	if err != nil {
		return err
	}
	if submission == nil {
		return ErrSubmissionNotFound
	}

	var pickupDate *time.Time
	if entity.DocumentStatus(req.Status) == entity.DocumentStatusClaimed {
		now := time.Now()
		pickupDate = &now
	}

	return uow.DocumentRepository().UpdateStatus(ctx, id, req.Status, pickupDate)
}
