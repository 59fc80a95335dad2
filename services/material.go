package services

import (
	"context"
	"fmt"
	"learnhub/apperrors"
	"learnhub/llm"
	courseModels "learnhub/models/course"

	"gorm.io/gorm"
)

// GeneratedMaterial is the lesson content produced by the provider.
type GeneratedMaterial struct {
	Content string `json:"content"`
	Title   string `json:"title"`
	Type    string `json:"type"`
}

// MaterialService generates lesson content on demand. Unlike assessment
// generation there is no fallback: a provider failure surfaces as
// GenerationError.
type MaterialService struct {
	db       *gorm.DB
	provider llm.Provider
}

// NewMaterialService builds a MaterialService.
func NewMaterialService(db *gorm.DB, provider llm.Provider) *MaterialService {
	return &MaterialService{db: db, provider: provider}
}

// Generate produces material for one lesson of a course. customPrompt, when
// non-empty, replaces the default instruction.
func (s *MaterialService) Generate(ctx context.Context, courseID, lessonID uint, customPrompt string) (*GeneratedMaterial, error) {
	var courseRow courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&courseRow).Error; err != nil {
		return nil, apperrors.New(apperrors.NotFound, "Course not found!")
	}

	var lesson courseModels.Lesson
	if err := s.db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return nil, apperrors.New(apperrors.NotFound, "Lesson not found!")
	}

	if s.provider == nil {
		return nil, apperrors.New(apperrors.GenerationError, "Content generation is not configured!")
	}

	prompt := customPrompt
	if prompt == "" {
		prompt = fmt.Sprintf(
			"Write the full learning material for lesson %d (%q, type %s) of the course %q (field: %s, level: %s). "+
				"Use clear headings and short paragraphs suitable for self-paced study.",
			lesson.OrderIndex, lesson.Title, lesson.LessonType, courseRow.Title, courseRow.Field, courseRow.Level,
		)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      "You are a course author producing complete, accurate lesson material.",
		Prompt:      prompt,
		MaxTokens:   4000,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.GenerationError, "Failed to generate course material!", err)
	}

	return &GeneratedMaterial{
		Content: string(resp.Content),
		Title:   lesson.Title,
		Type:    lesson.LessonType,
	}, nil
}
