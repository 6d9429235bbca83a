package dto

import (
	"strings"

	"github.com/google/uuid"

	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
)

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateSubjectRequest struct {
	Name        string `json:"subject_name" validate:"required,min=1,max=100"`
	Code        string `json:"subject_code" validate:"required,min=1,max=20"`
	Description string `json:"subject_desc" validate:"max=2000"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateSubjectRequest) ToModel() subjectModel.SubjectModel {
	return subjectModel.SubjectModel{
		SubjectName: r.Name,
		SubjectCode: r.Code,
		SubjectDesc: r.Description,
	}
}

type UpdateSubjectRequest struct {
	Name        *string `json:"subject_name" validate:"omitempty,min=1,max=100"`
	Code        *string `json:"subject_code" validate:"omitempty,min=1,max=20"`
	Description *string `json:"subject_desc" validate:"omitempty,max=2000"`
}

func (r *UpdateSubjectRequest) Normalize() {
	trim := func(pp **string) {
		if *pp == nil {
			return
		}
		v := strings.TrimSpace(**pp)
		*pp = &v
	}
	trim(&r.Name)
	trim(&r.Code)
	trim(&r.Description)
}

func (r *UpdateSubjectRequest) Apply(m *subjectModel.SubjectModel) {
	if r.Name != nil {
		m.SubjectName = *r.Name
	}
	if r.Code != nil {
		m.SubjectCode = *r.Code
	}
	if r.Description != nil {
		m.SubjectDesc = *r.Description
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

type SubjectResponse struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	SubjectCode string    `json:"subject_code"`
	SubjectDesc string    `json:"subject_desc"`
}

func FromSubjectModel(m subjectModel.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:   m.SubjectID,
		SubjectName: m.SubjectName,
		SubjectCode: m.SubjectCode,
		SubjectDesc: m.SubjectDesc,
	}
}

func FromSubjectModels(ms []subjectModel.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromSubjectModel(m))
	}
	return out
}
