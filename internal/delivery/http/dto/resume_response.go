package dto

import "github.com/google/uuid"

type UploadResumeResponse struct {
	ResumeID uuid.UUID `json:"resume_id"`
	Skills   []string  `json:"skills"`
}
