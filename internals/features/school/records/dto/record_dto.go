package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
   PROFILE RECORDS (partial updates)
   ========================================================= */

type UpdateStudentRecordRequest struct {
	RollNumber *string `json:"roll_number" validate:"omitempty,min=1,max=20"`
	Course     *string `json:"course" validate:"omitempty,min=1,max=100"`
	Semester   *int    `json:"semester" validate:"omitempty,gt=0"`
}

type UpdateFacultyRecordRequest struct {
	Department *string      `json:"department" validate:"omitempty,min=1,max=100"`
	SubjectIDs *[]uuid.UUID `json:"subject_ids" validate:"omitempty,dive,required"`
}

/* =========================================================
   ATTENDANCE RECORDS
   ========================================================= */

type CreateAttendanceRecordRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string    `json:"status" validate:"required,oneof=Present Absent"`
}

type UpdateAttendanceRecordRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=Present Absent"`
	Date   *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   RESULT RECORDS
   ========================================================= */

type CreateResultRecordRequest struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	SubjectID     uuid.UUID `json:"subject_id" validate:"required"`
	MarksObtained int       `json:"marks_obtained" validate:"gte=0"`
	TotalMarks    int       `json:"total_marks" validate:"gt=0"`
}

type UpdateResultRecordRequest struct {
	MarksObtained *int `json:"marks_obtained" validate:"omitempty,gte=0"`
	TotalMarks    *int `json:"total_marks" validate:"omitempty,gt=0"`
}
