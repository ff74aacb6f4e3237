package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the full REST surface the frontend calls.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// OAuth & session endpoints
		r.Get("/auth/google", handlers.authHandler.googleLogin())
		r.Get("/auth/google/callback", handlers.authHandler.googleCallback())
		r.Get("/login/success", handlers.authHandler.loginSuccess())
		r.Get("/logout", handlers.authHandler.logout())
		r.Get("/users/{userId}", handlers.authHandler.getUser())

		// Project endpoints
		r.Get("/projects/{teacherId}", handlers.projectHandler.getTeacherProjects())
		r.Get("/projectdata/{projectId}", handlers.projectHandler.getProjectData())
		r.Post("/saveProject", handlers.projectHandler.saveProject())
		r.Put("/updateProject/{projectId}", handlers.projectHandler.updateProject())
		r.Delete("/deleteProject/{id}", handlers.projectHandler.deleteProject())

		// Teacher profile endpoints
		r.Get("/teachers/{userId}", handlers.teacherHandler.getTeacher())
		r.Put("/teachers/{userId}", handlers.teacherHandler.updateTeacher())

		// Student profile, project bank, likes and draft endpoints
		r.Get("/students/getProjectsData/{userId}", handlers.studentHandler.getProjectBank())
		r.Get("/students/{userId}", handlers.studentHandler.getStudent())
		r.Put("/students/{userId}", handlers.studentHandler.updateStudent())
		r.Get("/likes/{studentId}", handlers.studentHandler.getLikedProjects())
		r.Post("/likes/{studentId}/{projectId}", handlers.studentHandler.likeProject())
		r.Delete("/likes/{studentId}/{projectId}", handlers.studentHandler.unlikeProject())
		r.Post("/saveDraft", handlers.studentHandler.saveDraft())
		r.Get("/drafts/{studentId}/{projectId}", handlers.studentHandler.getDraft())
	})
}
