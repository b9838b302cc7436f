package mapper

import (
	"strings"

	"github.com/Vaujx/BAAC/internal/entity"
	"github.com/Vaujx/BAAC/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.DocumentSubmission) *entity.DocumentSubmission {
	if d == nil {
		return nil
	}
	var types []string
	if d.DocumentTypes != "" {
		types = strings.Split(d.DocumentTypes, ",")
	}
	return &entity.DocumentSubmission{
		Id:            d.Id,
		UserId:        d.UserId,
		FullName:      d.FullName,
		Area:          d.Area,
		Purpose:       d.Purpose,
		Copies:        d.Copies,
		DocumentTypes: types,
		Status:        entity.DocumentStatus(d.Status),
		PickupDate:    d.PickupDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.DocumentSubmission) *model.DocumentSubmission {
	if d == nil {
		return nil
	}
	return &model.DocumentSubmission{
		Id:            d.Id,
		UserId:        d.UserId,
		FullName:      d.FullName,
		Area:          d.Area,
		Purpose:       d.Purpose,
		Copies:        d.Copies,
		DocumentTypes: strings.Join(d.DocumentTypes, ","),
		Status:        string(d.Status),
		PickupDate:    d.PickupDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
