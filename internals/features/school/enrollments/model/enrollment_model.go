package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/school/students/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
)

// EnrollmentModel links one student to one subject. The pair is unique and
// the enrollment date is set once at creation; there is no update path.
type EnrollmentModel struct {
	EnrollmentID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"enrollment_id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_subject" json:"student_id"`
	SubjectID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_subject" json:"subject_id"`
	EnrollmentDate time.Time `gorm:"type:date;not null" json:"enrollment_date"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Student *studentModel.StudentModel `gorm:"belongsTo;foreignKey:StudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Subject *subjectModel.SubjectModel `gorm:"belongsTo;foreignKey:SubjectID;references:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func (e *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if e.EnrollmentID == uuid.Nil {
		e.EnrollmentID = uuid.New()
	}
	if e.EnrollmentDate.IsZero() {
		e.EnrollmentDate = time.Now().UTC().Truncate(24 * time.Hour)
	}
	return nil
}
