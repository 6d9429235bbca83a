package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// FacultyModel extends exactly one account with teaching data. Deleting the
// account removes the profile; the taught-subject set is an unordered
// many-to-many.
type FacultyModel struct {
	FacultyID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"faculty_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_faculties_user_id" json:"user_id"`
	Department string    `gorm:"size:100;not null" json:"department"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User     *userModel.UserModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Subjects []subjectModel.SubjectModel `gorm:"many2many:faculty_subjects;joinForeignKey:FacultyID;joinReferences:SubjectID;constraint:OnDelete:CASCADE" json:"subjects,omitempty"`
}

func (FacultyModel) TableName() string {
	return "faculties"
}

func (f *FacultyModel) BeforeCreate(tx *gorm.DB) error {
	if f.FacultyID == uuid.Nil {
		f.FacultyID = uuid.New()
	}
	return nil
}
