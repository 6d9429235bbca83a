package dto

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
)

/* =========================================================
   MARKING
   ========================================================= */

// MarkAttendanceRequest maps enrolled-student ids to a status. Omitted
// students simply get no record for that date.
type MarkAttendanceRequest struct {
	Date    string            `json:"date" validate:"required,datetime=2006-01-02"`
	Entries map[string]string `json:"entries" validate:"required,min=1,dive,oneof=Present Absent"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

// AttendanceResponse carries read-only student_name/subject_name convenience
// fields next to the raw ids.
type AttendanceResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	StudentID    uuid.UUID `json:"student_id"`
	SubjectID    uuid.UUID `json:"subject_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	StudentName  string    `json:"student_name,omitempty"`
	SubjectName  string    `json:"subject_name,omitempty"`
}

func FromAttendanceModel(m attendanceModel.AttendanceModel) AttendanceResponse {
	resp := AttendanceResponse{
		AttendanceID: m.AttendanceID,
		StudentID:    m.StudentID,
		SubjectID:    m.SubjectID,
		Date:         m.Date.Format(time.DateOnly),
		Status:       m.Status,
	}
	if m.Student != nil && m.Student.User != nil {
		resp.StudentName = m.Student.User.UserName
	}
	if m.Subject != nil {
		resp.SubjectName = m.Subject.SubjectName
	}
	return resp
}

func FromAttendanceModels(ms []attendanceModel.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromAttendanceModel(m))
	}
	return out
}
