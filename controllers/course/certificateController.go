package controllers

import (
	"learnhub/apperrors"
	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseModels "learnhub/models/course"
	"learnhub/utils"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// GetCourseCertificate returns the caller's certificate for a course,
// issuing it when the course is completed and none exists yet.
func GetCourseCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	progress, err := fetchProgressRow(database.Database.Db, userID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	if !progress.Completed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	}

	cert, err := progressService.GenerateCertificate(userID, uint(courseID))
	if err != nil {
		log.Printf("Error issuing certificate: %v", err)
		return middleware.JsonResponse(c, apperrors.HTTPStatus(err), false, apperrors.UserMessage(err), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", cert)
}

// DownloadCertificate renders the printable certificate artifact on first
// request and serves the PNG.
func DownloadCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certID := c.Locals("certificateID").(int)

	var cert courseModels.Certificate
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", certID, userID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if cert.ArtifactURL == "" {
		var user models.User
		if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load user!", nil)
		}

		var course courseModels.Course
		if err := database.Database.Db.Where("id = ?", cert.CourseID).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		path, err := utils.RenderCertificatePNG(
			user.Name,
			course.Title,
			cert.CertificateNumber,
			cert.EarnedAt.Format("January 2, 2006"),
			config.AppConfig.UploadDir,
		)
		if err != nil {
			log.Printf("Error rendering certificate %s: %v", cert.CertificateNumber, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render certificate!", nil)
		}

		cert.ArtifactURL = utils.GetFileURL(path)
		if err := database.Database.Db.Save(&cert).Error; err != nil {
			log.Printf("Error saving certificate artifact URL: %v", err)
		}
	}

	filePath := filepath.Join(config.AppConfig.UploadDir, filepath.Base(cert.ArtifactURL))
	return c.SendFile(filePath)
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseTitle string `json:"course_title"`
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("earned_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseTitle: course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}
