package database

import (
	"gorm.io/gorm"

	"github.com/sdp-portal/projectbank-backend/models"
)

type Database struct {
	userRepo    *UserRepo
	teacherRepo *TeacherRepo
	studentRepo *StudentRepo
	projectRepo *ProjectRepo
	likesRepo   *LikesRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		teacherRepo: NewTeacherRepo(db),
		studentRepo: NewStudentRepo(db),
		projectRepo: NewProjectRepo(db),
		likesRepo:   NewLikesRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) TeacherRepo() *TeacherRepo {
	return d.teacherRepo
}

func (d Database) StudentRepo() *StudentRepo {
	return d.studentRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) LikesRepo() *LikesRepo {
	return d.likesRepo
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Teacher{},
		&models.Student{},
		&models.Project{},
		&models.LikesLedger{},
	)
}
