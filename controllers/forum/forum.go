package forumController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetDiscussions lists forum threads, newest first, optionally by category
func GetDiscussions(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&models.ForumDiscussion{}).Where("is_deleted = ?", false)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var discussions []models.ForumDiscussion
	if err := db.Order("created_at desc").Limit(100).Find(&discussions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch discussions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discussions fetched successfully!", fiber.Map{
		"discussions": discussions,
		"total":       len(discussions),
	})
}

// CreateDiscussion opens a new forum thread
func CreateDiscussion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDiscussion").(*struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	discussion := models.ForumDiscussion{
		UserID:   userID,
		Title:    reqData.Title,
		Content:  reqData.Content,
		Category: reqData.Category,
	}
	if discussion.Category == "" {
		discussion.Category = "general"
	}

	if err := database.Database.Db.Create(&discussion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create discussion!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Discussion created successfully!", discussion)
}

// GetDiscussionDetail returns a thread with its replies
func GetDiscussionDetail(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	discussionID := c.Locals("discussionID").(int)

	var discussion models.ForumDiscussion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", discussionID, false).First(&discussion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discussion not found!", nil)
	}

	var replies []models.ForumReply
	database.Database.Db.Where("discussion_id = ? AND is_deleted = ?", discussionID, false).
		Order("created_at asc").Find(&replies)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discussion fetched successfully!", fiber.Map{
		"discussion": discussion,
		"replies":    replies,
	})
}

// ReplyToDiscussion appends a reply to a thread
func ReplyToDiscussion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	discussionID := c.Locals("discussionID").(int)

	reqData, ok := c.Locals("validatedReply").(*struct {
		Content string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	var discussion models.ForumDiscussion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", discussionID, false).First(&discussion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discussion not found!", nil)
	}

	reply := models.ForumReply{
		DiscussionID: uint(discussionID),
		UserID:       userID,
		Content:      reqData.Content,
	}

	if err := database.Database.Db.Create(&reply).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply posted successfully!", reply)
}
