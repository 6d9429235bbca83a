package dto

import (
	"github.com/google/uuid"

	resultModel "sekolahku_backend/internals/features/school/results/model"
)

type AddResultRequest struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	MarksObtained int       `json:"marks_obtained" validate:"gte=0"`
	TotalMarks    int       `json:"total_marks" validate:"gt=0"`
}

// ExamResultResponse carries read-only student_name/subject_name convenience
// fields next to the raw ids.
type ExamResultResponse struct {
	ExamResultID  uuid.UUID `json:"exam_result_id"`
	StudentID     uuid.UUID `json:"student_id"`
	SubjectID     uuid.UUID `json:"subject_id"`
	MarksObtained int       `json:"marks_obtained"`
	TotalMarks    int       `json:"total_marks"`
	StudentName   string    `json:"student_name,omitempty"`
	SubjectName   string    `json:"subject_name,omitempty"`
}

func FromExamResultModel(m resultModel.ExamResultModel) ExamResultResponse {
	resp := ExamResultResponse{
		ExamResultID:  m.ExamResultID,
		StudentID:     m.StudentID,
		SubjectID:     m.SubjectID,
		MarksObtained: m.MarksObtained,
		TotalMarks:    m.TotalMarks,
	}
	if m.Student != nil && m.Student.User != nil {
		resp.StudentName = m.Student.User.UserName
	}
	if m.Subject != nil {
		resp.SubjectName = m.Subject.SubjectName
	}
	return resp
}

func FromExamResultModels(ms []resultModel.ExamResultModel) []ExamResultResponse {
	out := make([]ExamResultResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromExamResultModel(m))
	}
	return out
}
