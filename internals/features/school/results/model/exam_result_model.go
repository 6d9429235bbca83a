package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/school/students/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
)

// ExamResultModel has no uniqueness constraint on (student, subject): a pair
// may collect several results over a term.
type ExamResultModel struct {
	ExamResultID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"exam_result_id"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;index:idx_exam_results_student" json:"student_id"`
	SubjectID     uuid.UUID `gorm:"type:uuid;not null;index:idx_exam_results_subject" json:"subject_id"`
	MarksObtained int       `gorm:"not null" json:"marks_obtained"`
	TotalMarks    int       `gorm:"not null" json:"total_marks"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Student *studentModel.StudentModel `gorm:"belongsTo;foreignKey:StudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Subject *subjectModel.SubjectModel `gorm:"belongsTo;foreignKey:SubjectID;references:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty"`
}

func (ExamResultModel) TableName() string {
	return "exam_results"
}

func (r *ExamResultModel) BeforeCreate(tx *gorm.DB) error {
	if r.ExamResultID == uuid.Nil {
		r.ExamResultID = uuid.New()
	}
	return nil
}
