package userController

import (
	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseModels "learnhub/models/course"
	"learnhub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller's profile with learning statistics
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Password = ""

	db := database.Database.Db

	var enrolled, completed, certificates, badges int64
	db.Model(&courseModels.CourseProgress{}).Where("user_id = ? AND is_deleted = ?", userID, false).Count(&enrolled)
	db.Model(&courseModels.CourseProgress{}).Where("user_id = ? AND completed = ? AND is_deleted = ?", userID, true, false).Count(&completed)
	db.Model(&courseModels.Certificate{}).Where("user_id = ? AND is_deleted = ?", userID, false).Count(&certificates)
	db.Model(&models.UserBadge{}).Where("user_id = ? AND is_deleted = ?", userID, false).Count(&badges)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user": user,
		"stats": fiber.Map{
			"enrolled_courses":  enrolled,
			"completed_courses": completed,
			"certificates":      certificates,
			"badges":            badges,
		},
	})
}

// UpdateProfile updates name, field, and bio
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name  string `json:"name"`
		Field string `json:"field"`
		Bio   string `json:"bio"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Field != "" {
		user.Field = reqData.Field
	}
	if reqData.Bio != "" {
		user.Bio = reqData.Bio
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// UploadAvatar accepts a multipart file upload or a remote image URL
func UploadAvatar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var savedPath string

	if file, err := c.FormFile("avatar"); err == nil {
		savedPath, err = utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving uploaded avatar: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save avatar!", nil)
		}
	} else {
		// Fall back to a remote image URL in the JSON body
		reqData := new(struct {
			AvatarURL string `json:"avatar_url"`
		})
		if err := c.BodyParser(reqData); err != nil || reqData.AvatarURL == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Provide an avatar file or avatar_url!", nil)
		}

		savedPath, err = utils.FetchRemoteFile(reqData.AvatarURL, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error fetching remote avatar: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to fetch avatar from URL!", nil)
		}
	}

	user.ProfileImage = utils.GetFileURL(savedPath)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update avatar!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Avatar updated successfully!", fiber.Map{
		"profile_image": user.ProfileImage,
	})
}
