package dto

import (
	"strings"

	"github.com/google/uuid"

	studentModel "sekolahku_backend/internals/features/school/students/model"
	subjectDTO "sekolahku_backend/internals/features/school/subjects/dto"
	userDTO "sekolahku_backend/internals/features/users/user/dto"
)

/* =========================================================
   CREATE (account + profile, one unit)
   ========================================================= */

type CreateStudentAccountRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=150"`
	Password   string `json:"password" validate:"required,min=8"`
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	RollNumber string `json:"roll_number" validate:"required,min=1,max=20"`
	Course     string `json:"course" validate:"required,min=1,max=100"`
	Semester   int    `json:"semester" validate:"required,gt=0"`
}

func (r *CreateStudentAccountRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.RollNumber = strings.TrimSpace(r.RollNumber)
	r.Course = strings.TrimSpace(r.Course)
}

/* =========================================================
   RESPONSES
   ========================================================= */

type StudentResponse struct {
	StudentID  uuid.UUID                    `json:"student_id"`
	RollNumber string                       `json:"roll_number"`
	Course     string                       `json:"course"`
	Semester   int                          `json:"semester"`
	User       *userDTO.UserLite            `json:"user"`
	Subjects   []subjectDTO.SubjectResponse `json:"subjects,omitempty"`
}

func FromStudentModel(m studentModel.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:  m.StudentID,
		RollNumber: m.RollNumber,
		Course:     m.Course,
		Semester:   m.Semester,
		User:       userDTO.FromUserModel(m.User),
	}
}

func FromStudentModels(ms []studentModel.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentModel(m))
	}
	return out
}
