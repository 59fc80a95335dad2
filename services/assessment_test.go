package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"learnhub/apperrors"
	"learnhub/llm"
	courseModels "learnhub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssessmentService(t *testing.T, provider llm.Provider) (*AssessmentService, *ProgressService, *courseModels.Course) {
	t.Helper()

	db := newTestDB(t)
	seedUser(t, db)
	course, _ := seedCourse(t, db, 3)

	progress := NewProgressService(db, BadgeSingleGrant, nil)
	return NewAssessmentService(db, provider, progress), progress, course
}

func TestGenerateFallbackQuestionCounts(t *testing.T) {
	tests := []struct {
		difficulty string
		want       int
	}{
		{"beginner", 5},
		{"intermediate", 8},
		{"advanced", 10},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			svc, _, course := newAssessmentService(t, nil)

			view, err := svc.Generate(context.Background(), course.ID, tt.difficulty)
			require.NoError(t, err)
			assert.Len(t, view.Questions, tt.want)
			assert.Equal(t, tt.difficulty, view.Difficulty)
			assert.Equal(t, course.ID, view.CourseID)

			// Each cached question has 4 options and a valid answer index.
			stored := svc.store[view.ID]
			require.NotNil(t, stored)
			for _, q := range stored.Questions {
				assert.Len(t, q.Options, 4)
				assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
				assert.LessOrEqual(t, q.CorrectAnswer, 3)
			}
		})
	}
}

func TestGenerateRejectsUnknownDifficulty(t *testing.T) {
	svc, _, course := newAssessmentService(t, nil)

	_, err := svc.Generate(context.Background(), course.ID, "expert")
	require.Error(t, err)
	assert.Equal(t, apperrors.ValidationError, apperrors.KindOf(err))
}

func TestGenerateRejectsUnknownCourse(t *testing.T) {
	svc, _, _ := newAssessmentService(t, nil)

	_, err := svc.Generate(context.Background(), 424242, "beginner")
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func mockAssessmentJSON(t *testing.T, count int) json.RawMessage {
	t.Helper()

	questions := make([]map[string]any, count)
	for i := range questions {
		questions[i] = map[string]any{
			"text":           fmt.Sprintf("Generated question %d", i+1),
			"options":        []string{"option a", "option b", "option c", "option d"},
			"correct_answer": i % 4,
			"explanation":    "because",
		}
	}

	raw, err := json.Marshal(map[string]any{
		"title":       "Generated Assessment",
		"description": "Provider-built question set",
		"questions":   questions,
	})
	require.NoError(t, err)
	return raw
}

func TestGenerateUsesProvider(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: mockAssessmentJSON(t, 5)})
	svc, _, course := newAssessmentService(t, provider)

	view, err := svc.Generate(context.Background(), course.ID, "beginner")
	require.NoError(t, err)

	assert.Equal(t, "Generated Assessment", view.Title)
	assert.Len(t, view.Questions, 5)

	require.Len(t, provider.Calls, 1)
	require.NotNil(t, provider.Calls[0].Schema)
	assert.Equal(t, "course-assessment", provider.Calls[0].Schema.Name)
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: fmt.Errorf("rate limited")})
	svc, _, course := newAssessmentService(t, provider)

	view, err := svc.Generate(context.Background(), course.ID, "intermediate")
	require.NoError(t, err)
	assert.Len(t, view.Questions, 8)
}

func TestGenerateFallsBackOnMalformedJSON(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title": "broken`)})
	svc, _, course := newAssessmentService(t, provider)

	view, err := svc.Generate(context.Background(), course.ID, "advanced")
	require.NoError(t, err)
	assert.Len(t, view.Questions, 10)
}

func TestGenerateFallsBackOnWrongQuestionCount(t *testing.T) {
	// Provider returns 3 questions where 5 are required.
	provider := llm.NewMockProvider(llm.MockResponse{Content: mockAssessmentJSON(t, 3)})
	svc, _, course := newAssessmentService(t, provider)

	view, err := svc.Generate(context.Background(), course.ID, "beginner")
	require.NoError(t, err)
	assert.Len(t, view.Questions, 5)
}

func TestSubmitGradesAndRecordsResult(t *testing.T) {
	svc, _, course := newAssessmentService(t, nil)

	view, err := svc.Generate(context.Background(), course.ID, "beginner")
	require.NoError(t, err)

	stored := svc.store[view.ID]
	require.NotNil(t, stored)

	answers := make(map[string]int, len(stored.Questions))
	for _, q := range stored.Questions {
		answers[q.ID] = q.CorrectAnswer
	}

	result, err := svc.Submit(1, view.ID, answers)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
	assert.Len(t, result.Outcomes, 5)
	for _, o := range result.Outcomes {
		assert.True(t, o.Correct)
	}

	// No lessons completed yet: blended progress is 30% of the score.
	require.NotNil(t, result.Progress)
	assert.Equal(t, 30, result.Progress.ProgressPercentage)

	var rows int64
	svc.db.Model(&courseModels.AssessmentResult{}).Where("user_id = ? AND course_id = ?", 1, course.ID).Count(&rows)
	assert.EqualValues(t, 1, rows)

	// A graded assessment is single-use.
	_, err = svc.Submit(1, view.ID, answers)
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestSubmitScoreRounding(t *testing.T) {
	svc, _, course := newAssessmentService(t, nil)

	view, err := svc.Generate(context.Background(), course.ID, "intermediate")
	require.NoError(t, err)

	stored := svc.store[view.ID]
	require.NotNil(t, stored)

	// 7 of 8 correct: round(87.5) = 88, above the passing threshold.
	answers := make(map[string]int, len(stored.Questions))
	for i, q := range stored.Questions {
		if i == 0 {
			answers[q.ID] = (q.CorrectAnswer + 1) % 4
		} else {
			answers[q.ID] = q.CorrectAnswer
		}
	}

	result, err := svc.Submit(1, view.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, 88, result.Score)
	assert.True(t, result.Passed)
}

func TestSubmitFailingScore(t *testing.T) {
	svc, _, course := newAssessmentService(t, nil)

	view, err := svc.Generate(context.Background(), course.ID, "beginner")
	require.NoError(t, err)

	stored := svc.store[view.ID]
	require.NotNil(t, stored)

	// 3 of 5 correct: 60, below the passing threshold of 70.
	answers := make(map[string]int, len(stored.Questions))
	for i, q := range stored.Questions {
		if i < 3 {
			answers[q.ID] = q.CorrectAnswer
		} else {
			answers[q.ID] = (q.CorrectAnswer + 1) % 4
		}
	}

	result, err := svc.Submit(1, view.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, 60, result.Score)
	assert.False(t, result.Passed)
}

func TestSubmitRequiresAllAnswers(t *testing.T) {
	svc, _, course := newAssessmentService(t, nil)

	view, err := svc.Generate(context.Background(), course.ID, "beginner")
	require.NoError(t, err)

	stored := svc.store[view.ID]
	require.NotNil(t, stored)

	// Leave the last question unanswered.
	answers := make(map[string]int)
	for _, q := range stored.Questions[:len(stored.Questions)-1] {
		answers[q.ID] = q.CorrectAnswer
	}

	_, err = svc.Submit(1, view.ID, answers)
	require.Error(t, err)
	assert.Equal(t, apperrors.ValidationError, apperrors.KindOf(err))

	// Nothing was persisted and the assessment is still gradable.
	var rows int64
	svc.db.Model(&courseModels.AssessmentResult{}).Count(&rows)
	assert.EqualValues(t, 0, rows)
	assert.Contains(t, svc.store, view.ID)
}

func TestSubmitSingleUseUnderConcurrency(t *testing.T) {
	svc, _, course := newAssessmentService(t, nil)

	view, err := svc.Generate(context.Background(), course.ID, "beginner")
	require.NoError(t, err)

	stored := svc.store[view.ID]
	require.NotNil(t, stored)

	answers := make(map[string]int, len(stored.Questions))
	for _, q := range stored.Questions {
		answers[q.ID] = q.CorrectAnswer
	}

	// Two racing submissions: exactly one claims the assessment, the other
	// gets NotFound.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Submit(1, view.ID, answers)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
		}
	}
	assert.Equal(t, 1, succeeded)

	var rows int64
	svc.db.Model(&courseModels.AssessmentResult{}).Where("user_id = ? AND course_id = ?", 1, course.ID).Count(&rows)
	assert.EqualValues(t, 1, rows)
}

func TestSubmitUnknownAssessment(t *testing.T) {
	svc, _, _ := newAssessmentService(t, nil)

	_, err := svc.Submit(1, "missing-id", map[string]int{"q": 0})
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestSweepExpired(t *testing.T) {
	svc, _, course := newAssessmentService(t, nil)

	fresh, err := svc.Generate(context.Background(), course.ID, "beginner")
	require.NoError(t, err)
	stale, err := svc.Generate(context.Background(), course.ID, "beginner")
	require.NoError(t, err)

	svc.mu.Lock()
	svc.store[stale.ID].CreatedAt = time.Now().Add(-3 * time.Hour)
	svc.mu.Unlock()

	removed := svc.SweepExpired(2 * time.Hour)
	assert.Equal(t, 1, removed)
	assert.Contains(t, svc.store, fresh.ID)
	assert.NotContains(t, svc.store, stale.ID)
}
