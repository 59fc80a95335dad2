package calendarController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetEvents lists the caller's calendar items, soonest first
func GetEvents(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&models.Event{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	if c.Query("upcoming") == "true" {
		db = db.Where("due_at >= ? AND completed = ?", time.Now(), false)
	}

	var events []models.Event
	if err := db.Order("due_at asc").Find(&events).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch events!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully!", fiber.Map{
		"events": events,
		"total":  len(events),
	})
}

// CreateEvent adds a calendar item
func CreateEvent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEvent").(*struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		EventType   string    `json:"event_type"`
		DueAt       time.Time `json:"due_at"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	event := models.Event{
		UserID:      userID,
		Title:       reqData.Title,
		Description: reqData.Description,
		EventType:   reqData.EventType,
		DueAt:       reqData.DueAt,
	}
	if event.EventType == "" {
		event.EventType = "TASK"
	}

	if err := database.Database.Db.Create(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Event created successfully!", event)
}

// UpdateEvent updates a calendar item the caller owns
func UpdateEvent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	eventID := c.Locals("eventID").(int)

	reqData, ok := c.Locals("validatedEvent").(*struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		EventType   string    `json:"event_type"`
		DueAt       time.Time `json:"due_at"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", eventID, userID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	if reqData.Title != "" {
		event.Title = reqData.Title
	}
	if reqData.Description != "" {
		event.Description = reqData.Description
	}
	if reqData.EventType != "" {
		event.EventType = reqData.EventType
	}
	if !reqData.DueAt.IsZero() {
		event.DueAt = reqData.DueAt
		event.Reminded = false // a moved event gets a fresh reminder
	}

	if err := database.Database.Db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event updated successfully!", event)
}

// CompleteEvent marks an item done
func CompleteEvent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", eventID, userID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	event.Completed = true
	if err := database.Database.Db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event completed successfully!", event)
}

// DeleteEvent soft-deletes a calendar item
func DeleteEvent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", eventID, userID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	event.IsDeleted = true
	if err := database.Database.Db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event deleted successfully!", nil)
}
