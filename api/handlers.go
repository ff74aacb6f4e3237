package api

import (
	"github.com/sdp-portal/projectbank-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, c map[string]string) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(c, database.UserRepo(), database.TeacherRepo(), database.StudentRepo()),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		teacherHandler: newTeacherHandler(database.TeacherRepo()),
		studentHandler: newStudentHandler(database.StudentRepo(), database.TeacherRepo(), database.ProjectRepo(), database.LikesRepo()),
	}
}
