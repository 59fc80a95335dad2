package services

import (
	"context"
	"fmt"
	"testing"

	"learnhub/apperrors"
	"learnhub/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialGenerateRequiresCourseAndLesson(t *testing.T) {
	db := newTestDB(t)
	course, lessons := seedCourse(t, db, 2)
	svc := NewMaterialService(db, llm.NewMockProvider())

	_, err := svc.Generate(context.Background(), 424242, lessons[0].ID, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))

	_, err = svc.Generate(context.Background(), course.ID, 424242, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestMaterialGenerateWithoutProvider(t *testing.T) {
	db := newTestDB(t)
	course, lessons := seedCourse(t, db, 1)
	svc := NewMaterialService(db, nil)

	_, err := svc.Generate(context.Background(), course.ID, lessons[0].ID, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.GenerationError, apperrors.KindOf(err))
}

func TestMaterialGenerateProviderFailure(t *testing.T) {
	db := newTestDB(t)
	course, lessons := seedCourse(t, db, 1)
	svc := NewMaterialService(db, llm.NewMockProvider(llm.MockResponse{Err: fmt.Errorf("timeout")}))

	// No fallback here: a provider failure is surfaced to the caller.
	_, err := svc.Generate(context.Background(), course.ID, lessons[0].ID, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.GenerationError, apperrors.KindOf(err))
}

func TestMaterialGenerate(t *testing.T) {
	db := newTestDB(t)
	course, lessons := seedCourse(t, db, 1)
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte("## Lesson 1\n\nMaterial body.")})
	svc := NewMaterialService(db, provider)

	material, err := svc.Generate(context.Background(), course.ID, lessons[0].ID, "")
	require.NoError(t, err)
	assert.Equal(t, "## Lesson 1\n\nMaterial body.", material.Content)
	assert.Equal(t, lessons[0].Title, material.Title)
	assert.Equal(t, "READING", material.Type)

	require.Len(t, provider.Calls, 1)
	assert.Contains(t, provider.Calls[0].Prompt, course.Title)
}

func TestMaterialGenerateCustomPrompt(t *testing.T) {
	db := newTestDB(t)
	course, lessons := seedCourse(t, db, 1)
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte("custom output")})
	svc := NewMaterialService(db, provider)

	_, err := svc.Generate(context.Background(), course.ID, lessons[0].ID, "Summarize in five bullet points")
	require.NoError(t, err)

	require.Len(t, provider.Calls, 1)
	assert.Equal(t, "Summarize in five bullet points", provider.Calls[0].Prompt)
}
