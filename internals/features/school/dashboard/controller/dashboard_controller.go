package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceService "sekolahku_backend/internals/features/school/attendance/service"
	dashboardDTO "sekolahku_backend/internals/features/school/dashboard/dto"
	enrollmentDTO "sekolahku_backend/internals/features/school/enrollments/dto"
	enrollmentService "sekolahku_backend/internals/features/school/enrollments/service"
	facultyModel "sekolahku_backend/internals/features/school/faculties/model"
	facultyService "sekolahku_backend/internals/features/school/faculties/service"
	resultDTO "sekolahku_backend/internals/features/school/results/dto"
	resultService "sekolahku_backend/internals/features/school/results/service"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	subjectDTO "sekolahku_backend/internals/features/school/subjects/dto"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	userDTO "sekolahku_backend/internals/features/users/user/dto"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/u/dashboard
// One endpoint, role-shaped payload. The role is resolved fresh per request,
// so a newly provisioned profile takes effect on the next call.
func (h *DashboardController) Dashboard(c *fiber.Ctx) error {
	role, err := helperAuth.RoleFromCtx(c, h.DB)
	if err != nil {
		return err
	}

	resp := dashboardDTO.DashboardResponse{
		Role: string(role.Kind),
		User: userDTO.FromUserModel(role.User),
	}

	switch role.Kind {
	case helperAuth.RoleAdministrator:
		admin, err := h.adminSection()
		if err != nil {
			return err
		}
		resp.Admin = admin
	case helperAuth.RoleFaculty:
		faculty, err := h.facultySection(role.Faculty)
		if err != nil {
			return err
		}
		resp.Faculty = faculty
	case helperAuth.RoleStudent:
		student, err := h.studentSection(role.Student)
		if err != nil {
			return err
		}
		resp.Student = student
	}

	return helper.JsonOK(c, "Dashboard", resp)
}

func (h *DashboardController) adminSection() (*dashboardDTO.AdminDashboard, error) {
	var section dashboardDTO.AdminDashboard

	if err := h.DB.Model(&studentModel.StudentModel{}).Count(&section.TotalStudents).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}
	if err := h.DB.Model(&facultyModel.FacultyModel{}).Count(&section.TotalFaculty).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to count faculty")
	}
	if err := h.DB.Model(&subjectModel.SubjectModel{}).Count(&section.TotalSubjects).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to count subjects")
	}
	return &section, nil
}

func (h *DashboardController) facultySection(f *facultyModel.FacultyModel) (*dashboardDTO.FacultyDashboard, error) {
	subjects, err := facultyService.SubjectsTaughtBy(h.DB, f.FacultyID)
	if err != nil {
		return nil, err
	}
	return &dashboardDTO.FacultyDashboard{
		Department: f.Department,
		Subjects:   subjectDTO.FromSubjectModels(subjects),
	}, nil
}

func (h *DashboardController) studentSection(s *studentModel.StudentModel) (*dashboardDTO.StudentDashboard, error) {
	enrollments, err := enrollmentService.EnrollmentsOf(h.DB, s.StudentID)
	if err != nil {
		return nil, err
	}
	pct, err := attendanceService.AttendancePercent(h.DB, s.StudentID)
	if err != nil {
		return nil, err
	}
	results, err := resultService.ResultsOf(h.DB, s.StudentID)
	if err != nil {
		return nil, err
	}
	return &dashboardDTO.StudentDashboard{
		RollNumber:        s.RollNumber,
		Course:            s.Course,
		Semester:          s.Semester,
		Enrollments:       enrollmentDTO.FromEnrollmentModels(enrollments),
		AttendancePercent: pct,
		Results:           resultDTO.FromExamResultModels(results),
	}, nil
}
