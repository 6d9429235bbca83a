package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/school/students/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// AttendanceModel holds one row per (student, subject, date). Marking the
// same triple again overwrites the status, never duplicates.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey" json:"attendance_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_subject_date" json:"student_id"`
	SubjectID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_subject_date" json:"subject_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_subject_date" json:"date"`
	Status       string    `gorm:"size:10;not null" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Student *studentModel.StudentModel `gorm:"belongsTo;foreignKey:StudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Subject *subjectModel.SubjectModel `gorm:"belongsTo;foreignKey:SubjectID;references:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.AttendanceID == uuid.Nil {
		a.AttendanceID = uuid.New()
	}
	return nil
}
