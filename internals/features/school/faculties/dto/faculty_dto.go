package dto

import (
	"strings"

	"github.com/google/uuid"

	facultyModel "sekolahku_backend/internals/features/school/faculties/model"
	subjectDTO "sekolahku_backend/internals/features/school/subjects/dto"
	userDTO "sekolahku_backend/internals/features/users/user/dto"
)

/* =========================================================
   CREATE (account + profile, one unit)
   ========================================================= */

type CreateFacultyAccountRequest struct {
	Username   string      `json:"username" validate:"required,min=3,max=150"`
	Password   string      `json:"password" validate:"required,min=8"`
	Email      string      `json:"email" validate:"required,email"`
	FirstName  string      `json:"first_name" validate:"required,max=100"`
	LastName   string      `json:"last_name" validate:"required,max=100"`
	Department string      `json:"department" validate:"required,min=1,max=100"`
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"omitempty,dive,required"`
}

func (r *CreateFacultyAccountRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Department = strings.TrimSpace(r.Department)
}

/* =========================================================
   RESPONSES
   ========================================================= */

type FacultyResponse struct {
	FacultyID  uuid.UUID                    `json:"faculty_id"`
	Department string                       `json:"department"`
	User       *userDTO.UserLite            `json:"user"`
	Subjects   []subjectDTO.SubjectResponse `json:"subjects"`
}

func FromFacultyModel(m facultyModel.FacultyModel) FacultyResponse {
	return FacultyResponse{
		FacultyID:  m.FacultyID,
		Department: m.Department,
		User:       userDTO.FromUserModel(m.User),
		Subjects:   subjectDTO.FromSubjectModels(m.Subjects),
	}
}

func FromFacultyModels(ms []facultyModel.FacultyModel) []FacultyResponse {
	out := make([]FacultyResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromFacultyModel(m))
	}
	return out
}
