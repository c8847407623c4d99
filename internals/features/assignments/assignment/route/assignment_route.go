package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "belajarku_backend/internals/features/assignments/assignment/controller"
	submissionController "belajarku_backend/internals/features/assignments/submission/controller"
)

// Panggil dengan: route.AssignmentUserRoutes(app.Group("/api/u"), db)
func AssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	assignmentCtl := &assignmentController.AssignmentController{DB: db}
	submissionCtl := &submissionController.SubmissionController{DB: db}

	r.Get("/courses/:courseId/assignments", assignmentCtl.ListForStudent)
	r.Post("/assignments/:assignmentId/submissions", submissionCtl.Submit)
}

// Panggil dengan: route.AssignmentAdminRoutes(app.Group("/api/a"), db)
func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	assignmentCtl := &assignmentController.AssignmentController{DB: db}
	submissionCtl := &submissionController.SubmissionController{DB: db}

	r.Post("/courses/:courseId/assignments", assignmentCtl.Create)
	r.Get("/courses/:courseId/assignments", assignmentCtl.ListAdmin)

	assignments := r.Group("/assignments")
	assignments.Put("/:id", assignmentCtl.Update)
	assignments.Delete("/:id", assignmentCtl.Delete)
	assignments.Get("/:assignmentId/submissions", submissionCtl.ListByAssignment)

	r.Patch("/submissions/:id/grade", submissionCtl.Grade)
}
