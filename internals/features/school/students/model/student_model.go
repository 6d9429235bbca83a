package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

// StudentModel extends exactly one account. The subject list is never stored
// here; it is always derived through enrollments.
type StudentModel struct {
	StudentID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"student_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_user_id" json:"user_id"`
	RollNumber string    `gorm:"size:20;not null;uniqueIndex:uq_students_roll_number" json:"roll_number"`
	Course     string    `gorm:"size:100;not null" json:"course"`
	Semester   int       `gorm:"not null" json:"semester"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.StudentID == uuid.Nil {
		s.StudentID = uuid.New()
	}
	return nil
}
