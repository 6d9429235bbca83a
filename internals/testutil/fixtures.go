package testutil

import (
	"testing"

	"gorm.io/gorm"

	facultyModel "sekolahku_backend/internals/features/school/faculties/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Fixture builders keep test setup short. They fail the test on error rather
// than returning one.

func SeedUser(t *testing.T, db *gorm.DB, username string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName: username,
		Email:    username + "@test.local",
		Password: "x",
		IsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func SeedAdmin(t *testing.T, db *gorm.DB, username string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName: username,
		Email:    username + "@test.local",
		Password: "x",
		IsAdmin:  true,
		IsStaff:  true,
		IsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed admin %s: %v", username, err)
	}
	return u
}

func SeedSubject(t *testing.T, db *gorm.DB, code string) subjectModel.SubjectModel {
	t.Helper()
	s := subjectModel.SubjectModel{
		SubjectName: "Subject " + code,
		SubjectCode: code,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed subject %s: %v", code, err)
	}
	return s
}

func SeedStudent(t *testing.T, db *gorm.DB, username, roll string) studentModel.StudentModel {
	t.Helper()
	u := SeedUser(t, db, username)
	s := studentModel.StudentModel{
		UserID:     u.ID,
		RollNumber: roll,
		Course:     "BSc",
		Semester:   1,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed student %s: %v", roll, err)
	}
	s.User = &u
	return s
}

func SeedFaculty(t *testing.T, db *gorm.DB, username string, subjects ...subjectModel.SubjectModel) facultyModel.FacultyModel {
	t.Helper()
	u := SeedUser(t, db, username)
	f := facultyModel.FacultyModel{
		UserID:     u.ID,
		Department: "Science",
		Subjects:   subjects,
	}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("seed faculty %s: %v", username, err)
	}
	f.User = &u
	return f
}
