package utils

import (
	"learnhub/database"
	"learnhub/models"
	"learnhub/services"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processEventReminders emails users about calendar items due within the next
// 24 hours and marks them reminded so they only fire once.
func processEventReminders() {
	db := database.Database.Db
	now := time.Now()
	horizon := now.Add(24 * time.Hour)

	var events []models.Event
	if err := db.Where("due_at > ? AND due_at <= ? AND completed = ? AND reminded = ? AND is_deleted = ?",
		now, horizon, false, false, false).Find(&events).Error; err != nil {
		logScheduler("Error fetching upcoming events: " + err.Error())
		return
	}

	for _, event := range events {
		var user models.User
		if err := db.Select("name, email").First(&user, event.UserID).Error; err != nil || user.Email == "" {
			continue
		}

		if err := SendEventReminderEmail(user.Email, user.Name, event.Title, event.DueAt.Format("Jan 2, 2006 15:04")); err != nil {
			logScheduler("Error sending reminder for event " + event.Title + ": " + err.Error())
			continue
		}

		event.Reminded = true
		if err := db.Save(&event).Error; err != nil {
			logScheduler("Error marking event reminded: " + err.Error())
		}
	}

	if len(events) > 0 {
		logScheduler("Processed event reminders")
	}
}

// StartScheduler wires the recurring jobs: daily event reminders and an
// hourly sweep of expired cached assessments.
func StartScheduler(assessments *services.AssessmentService) *cron.Cron {
	c := cron.New()

	// Event reminders every morning at 08:00.
	if _, err := c.AddFunc("0 8 * * *", processEventReminders); err != nil {
		log.Printf("Error scheduling event reminders: %v", err)
	}

	// Drop generated assessments nobody submitted within 2 hours.
	if _, err := c.AddFunc("@hourly", func() {
		if removed := assessments.SweepExpired(2 * time.Hour); removed > 0 {
			logScheduler("Swept expired assessments")
		}
	}); err != nil {
		log.Printf("Error scheduling assessment sweep: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")
	return c
}
