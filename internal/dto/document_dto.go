package dto

import "time"

type SubmitDocumentRequest struct {
	FullName      string   `json:"full_name" validate:"required"`
	Area          string   `json:"area" validate:"required"`
	Purpose       string   `json:"purpose" validate:"required"`
	Copies        int      `json:"copies" validate:"required,min=1,max=10"`
	DocumentTypes []string `json:"document_types" validate:"required,min=1,dive,required"`
}

type SubmitDocumentResponse struct {
	Id        int64  `json:"id"`
	Reference string `json:"reference"`
}

type UpdateDocumentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type DocumentSubmissionResponse struct {
	Id            int64      `json:"id"`
	Reference     string     `json:"reference"`
	FullName      string     `json:"full_name"`
	Area          string     `json:"area"`
	Purpose       string     `json:"purpose"`
	Copies        int        `json:"copies"`
	DocumentTypes []string   `json:"document_types"`
	Status        string     `json:"status"`
	PickupDate    *time.Time `json:"pickup_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
