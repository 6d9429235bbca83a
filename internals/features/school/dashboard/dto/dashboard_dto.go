package dto

import (
	enrollmentDTO "sekolahku_backend/internals/features/school/enrollments/dto"
	resultDTO "sekolahku_backend/internals/features/school/results/dto"
	subjectDTO "sekolahku_backend/internals/features/school/subjects/dto"
	userDTO "sekolahku_backend/internals/features/users/user/dto"
)

// DashboardResponse is a variant payload: exactly one of the role sections is
// set, matching the resolved role of the caller. A plain account gets only the
// role string and the user summary.
type DashboardResponse struct {
	Role    string            `json:"role"`
	User    *userDTO.UserLite `json:"user,omitempty"`
	Admin   *AdminDashboard   `json:"admin,omitempty"`
	Faculty *FacultyDashboard `json:"faculty,omitempty"`
	Student *StudentDashboard `json:"student,omitempty"`
}

type AdminDashboard struct {
	TotalStudents int64 `json:"total_students"`
	TotalFaculty  int64 `json:"total_faculty"`
	TotalSubjects int64 `json:"total_subjects"`
}

type FacultyDashboard struct {
	Department string                       `json:"department"`
	Subjects   []subjectDTO.SubjectResponse `json:"subjects"`
}

type StudentDashboard struct {
	RollNumber        string                             `json:"roll_number"`
	Course            string                             `json:"course"`
	Semester          int                                `json:"semester"`
	Enrollments       []enrollmentDTO.EnrollmentResponse `json:"enrollments"`
	AttendancePercent float64                            `json:"attendance_percent"`
	Results           []resultDTO.ExamResultResponse     `json:"results"`
}
