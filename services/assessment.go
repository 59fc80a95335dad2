package services

import (
	"context"
	"encoding/json"
	"fmt"
	"learnhub/apperrors"
	"learnhub/llm"
	courseModels "learnhub/models/course"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question counts per difficulty tier.
var difficultyQuestionCount = map[string]int{
	"beginner":     5,
	"intermediate": 8,
	"advanced":     10,
}

const passingScore = 70

// Assessment is an ephemeral generated quiz. It lives in memory only; the
// persisted trace of an attempt is the AssessmentResult row.
type Assessment struct {
	ID          string     `json:"id"`
	CourseID    uint       `json:"course_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  string     `json:"difficulty"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"-"`
}

// Question is a single multiple-choice question. CorrectAnswer is the index
// into Options and never leaves the server before grading.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuestionView is the client-facing shape of a question, with the correct
// answer redacted.
type QuestionView struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// AssessmentView is the client-facing shape of an assessment.
type AssessmentView struct {
	ID          string         `json:"id"`
	CourseID    uint           `json:"course_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Difficulty  string         `json:"difficulty"`
	Questions   []QuestionView `json:"questions"`
}

// QuestionOutcome reports grading of one question back to the client.
type QuestionOutcome struct {
	QuestionID    string `json:"question_id"`
	Selected      int    `json:"selected"`
	CorrectAnswer int    `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// SubmissionResult is the outcome of grading a full submission.
type SubmissionResult struct {
	Score    int                          `json:"score"`
	Passed   bool                         `json:"passed"`
	Outcomes []QuestionOutcome            `json:"outcomes"`
	Progress *courseModels.CourseProgress `json:"progress"`
}

// AssessmentService generates, stores, and grades ephemeral assessments.
// Generation prefers the LLM provider and falls back to a locally
// synthesized placeholder set so callers never block on provider failure.
type AssessmentService struct {
	db       *gorm.DB
	provider llm.Provider
	progress *ProgressService

	mu    sync.Mutex
	store map[string]*Assessment
}

// NewAssessmentService builds an AssessmentService. provider may be nil, in
// which case every generation uses the static fallback.
func NewAssessmentService(db *gorm.DB, provider llm.Provider, progress *ProgressService) *AssessmentService {
	return &AssessmentService{
		db:       db,
		provider: provider,
		progress: progress,
		store:    make(map[string]*Assessment),
	}
}

// Generate produces an assessment for the course at the given difficulty and
// caches it server-side for grading. The returned view has correct answers
// redacted.
func (s *AssessmentService) Generate(ctx context.Context, courseID uint, difficulty string) (*AssessmentView, error) {
	count, ok := difficultyQuestionCount[difficulty]
	if !ok {
		return nil, apperrors.New(apperrors.ValidationError, "Difficulty must be beginner, intermediate, or advanced!")
	}

	var courseRow courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&courseRow).Error; err != nil {
		return nil, apperrors.New(apperrors.NotFound, "Course not found!")
	}

	assessment, err := s.generateWithProvider(ctx, &courseRow, difficulty, count)
	if err != nil {
		log.Printf("Assessment generation via provider failed, using fallback: %v", err)
		assessment = fallbackAssessment(&courseRow, difficulty, count)
	}

	s.mu.Lock()
	s.store[assessment.ID] = assessment
	s.mu.Unlock()

	return redact(assessment), nil
}

// Submit grades a cached assessment. Every question must be answered;
// answers maps question ID to the selected option index. An assessment is
// single-use: the submission that claims it removes it from the store, so a
// concurrent duplicate sees NotFound. An incomplete submission does not
// consume the assessment.
func (s *AssessmentService) Submit(userID uint, assessmentID string, answers map[string]int) (*SubmissionResult, error) {
	s.mu.Lock()
	assessment, ok := s.store[assessmentID]
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.New(apperrors.NotFound, "Assessment not found or expired!")
	}
	for _, q := range assessment.Questions {
		if _, answered := answers[q.ID]; !answered {
			s.mu.Unlock()
			return nil, apperrors.New(apperrors.ValidationError, "Please answer all questions before submitting!")
		}
	}
	delete(s.store, assessmentID)
	s.mu.Unlock()

	correct := 0
	outcomes := make([]QuestionOutcome, len(assessment.Questions))
	for i, q := range assessment.Questions {
		selected := answers[q.ID]
		isCorrect := selected == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		outcomes[i] = QuestionOutcome{
			QuestionID:    q.ID,
			Selected:      selected,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       isCorrect,
			Explanation:   q.Explanation,
		}
	}

	score := int(math.Round(float64(correct) / float64(len(assessment.Questions)) * 100))

	result := courseModels.AssessmentResult{
		UserID:      userID,
		CourseID:    assessment.CourseID,
		Score:       score,
		Difficulty:  assessment.Difficulty,
		CompletedAt: time.Now(),
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.PersistenceError, "Failed to save assessment result!", err)
	}

	progress, err := s.progress.ApplyAssessmentScore(userID, assessment.CourseID, score)
	if err != nil {
		return nil, err
	}

	return &SubmissionResult{
		Score:    score,
		Passed:   score >= passingScore,
		Outcomes: outcomes,
		Progress: progress,
	}, nil
}

// SweepExpired drops cached assessments older than maxAge. Called from the
// cron scheduler.
func (s *AssessmentService) SweepExpired(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, a := range s.store {
		if a.CreatedAt.Before(cutoff) {
			delete(s.store, id)
			removed++
		}
	}
	return removed
}

// assessmentSchema is the structured-output contract sent to the provider.
func assessmentSchema(questionCount int) *llm.Schema {
	return &llm.Schema{
		Name: "course-assessment",
		Definition: map[string]any{
			"type":     "object",
			"required": []string{"title", "description", "questions"},
			"properties": map[string]any{
				"title":       map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"questions": map[string]any{
					"type":     "array",
					"minItems": questionCount,
					"maxItems": questionCount,
					"items": map[string]any{
						"type":     "object",
						"required": []string{"text", "options", "correct_answer"},
						"properties": map[string]any{
							"text": map[string]any{"type": "string"},
							"options": map[string]any{
								"type":     "array",
								"minItems": 4,
								"maxItems": 4,
								"items":    map[string]any{"type": "string"},
							},
							"correct_answer": map[string]any{
								"type":    "integer",
								"minimum": 0,
								"maximum": 3,
							},
							"explanation": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	}
}

type generatedQuestion struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type generatedAssessment struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Questions   []generatedQuestion `json:"questions"`
}

func (s *AssessmentService) generateWithProvider(ctx context.Context, courseRow *courseModels.Course, difficulty string, count int) (*Assessment, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no provider configured")
	}

	prompt := fmt.Sprintf(
		"Create a %s-level multiple choice assessment with exactly %d questions for the course %q (field: %s, level: %s). "+
			"Each question has exactly 4 options and one correct answer index (0-3). Include a short explanation per question.",
		difficulty, count, courseRow.Title, courseRow.Field, courseRow.Level,
	)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      "You are an instructional designer writing rigorous but fair course assessments. Respond with JSON only.",
		Prompt:      prompt,
		Schema:      assessmentSchema(count),
		MaxTokens:   4000,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, err
	}

	var parsed generatedAssessment
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("parse generated assessment: %w", err)
	}
	if len(parsed.Questions) != count {
		return nil, fmt.Errorf("expected %d questions, got %d", count, len(parsed.Questions))
	}

	assessment := &Assessment{
		ID:          uuid.NewString(),
		CourseID:    courseRow.ID,
		Title:       parsed.Title,
		Description: parsed.Description,
		Difficulty:  difficulty,
		CreatedAt:   time.Now(),
	}
	for _, q := range parsed.Questions {
		if len(q.Options) != 4 || q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			return nil, fmt.Errorf("malformed question in generated assessment")
		}
		assessment.Questions = append(assessment.Questions, Question{
			ID:            uuid.NewString(),
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	return assessment, nil
}

// fallbackAssessment synthesizes a placeholder assessment with the same shape
// the provider would return. Correct answers are randomly assigned.
func fallbackAssessment(courseRow *courseModels.Course, difficulty string, count int) *Assessment {
	assessment := &Assessment{
		ID:          uuid.NewString(),
		CourseID:    courseRow.ID,
		Title:       fmt.Sprintf("%s Assessment", courseRow.Title),
		Description: fmt.Sprintf("A %s-level review of key concepts from %s.", difficulty, courseRow.Title),
		Difficulty:  difficulty,
		CreatedAt:   time.Now(),
	}

	for i := 1; i <= count; i++ {
		assessment.Questions = append(assessment.Questions, Question{
			ID:   uuid.NewString(),
			Text: fmt.Sprintf("Question %d: Which statement best describes a core concept of %s?", i, courseRow.Title),
			Options: []string{
				fmt.Sprintf("A foundational principle covered in %s", courseRow.Title),
				"A concept from an unrelated discipline",
				"A deprecated practice no longer in use",
				"None of the above",
			},
			CorrectAnswer: rand.Intn(4),
			Explanation:   "Placeholder question generated while the assessment service was unavailable.",
		})
	}

	return assessment
}

func redact(a *Assessment) *AssessmentView {
	view := &AssessmentView{
		ID:          a.ID,
		CourseID:    a.CourseID,
		Title:       a.Title,
		Description: a.Description,
		Difficulty:  a.Difficulty,
	}
	for _, q := range a.Questions {
		view.Questions = append(view.Questions, QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		})
	}
	return view
}
