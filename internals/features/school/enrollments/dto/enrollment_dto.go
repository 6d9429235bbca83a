package dto

import (
	"time"

	"github.com/google/uuid"

	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	subjectDTO "sekolahku_backend/internals/features/school/subjects/dto"
)

type EnrollRequest struct {
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"required,min=1,dive,required"`
}

type EnrollmentResponse struct {
	EnrollmentID   uuid.UUID                   `json:"enrollment_id"`
	StudentID      uuid.UUID                   `json:"student_id"`
	SubjectID      uuid.UUID                   `json:"subject_id"`
	EnrollmentDate string                      `json:"enrollment_date"`
	Subject        *subjectDTO.SubjectResponse `json:"subject,omitempty"`
}

func FromEnrollmentModel(m enrollmentModel.EnrollmentModel) EnrollmentResponse {
	resp := EnrollmentResponse{
		EnrollmentID:   m.EnrollmentID,
		StudentID:      m.StudentID,
		SubjectID:      m.SubjectID,
		EnrollmentDate: m.EnrollmentDate.Format(time.DateOnly),
	}
	if m.Subject != nil {
		s := subjectDTO.FromSubjectModel(*m.Subject)
		resp.Subject = &s
	}
	return resp
}

func FromEnrollmentModels(ms []enrollmentModel.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromEnrollmentModel(m))
	}
	return out
}
