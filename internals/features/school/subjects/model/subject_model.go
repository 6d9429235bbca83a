package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel is the root of the cascade: enrollments, attendance and exam
// results referencing a subject are removed with it.
type SubjectModel struct {
	SubjectID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"subject_id"`
	SubjectName string    `gorm:"size:100;not null" json:"subject_name"`
	SubjectCode string    `gorm:"size:20;not null;uniqueIndex:uq_subjects_code" json:"subject_code"`
	SubjectDesc string    `gorm:"type:text" json:"subject_desc"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}

func (s *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if s.SubjectID == uuid.Nil {
		s.SubjectID = uuid.New()
	}
	return nil
}
