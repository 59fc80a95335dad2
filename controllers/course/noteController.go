package controllers

import (
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateNote creates a scratch note attached to a course
func CreateNote(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedNote").(*struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	note := courseModels.CourseNote{
		UserID:   userID,
		CourseID: uint(courseID),
		Title:    reqData.Title,
		Content:  reqData.Content,
	}

	if err := database.Database.Db.Create(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Note created successfully!", note)
}

// GetCourseNotes lists the caller's notes for a course
func GetCourseNotes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var notes []courseModels.CourseNote
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Order("created_at desc").Find(&notes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", fiber.Map{
		"notes": notes,
		"total": len(notes),
	})
}

// UpdateNote updates a note's title or content
func UpdateNote(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	noteID := c.Locals("noteID").(int)

	reqData, ok := c.Locals("validatedNote").(*struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	var note courseModels.CourseNote
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", noteID, userID, false).First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	note.Title = reqData.Title
	note.Content = reqData.Content

	if err := database.Database.Db.Save(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note updated successfully!", note)
}

// DeleteNote soft-deletes a note
func DeleteNote(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	noteID := c.Locals("noteID").(int)

	var note courseModels.CourseNote
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", noteID, userID, false).First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	note.IsDeleted = true
	if err := database.Database.Db.Save(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note deleted successfully!", nil)
}
