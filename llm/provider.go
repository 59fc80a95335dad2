package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the chat-completion backend used for
// assessment and course-material generation.
type Provider interface {
	// Generate sends a prompt and returns the model output. When the
	// request carries a Schema, the returned Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message. Generation here is single-turn.
	Prompt string

	// Schema, when set, instructs the provider to return JSON conforming
	// to it via the native structured-output mechanism.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "course-assessment".
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// requested, raw text bytes otherwise.
	Content json.RawMessage

	// Model is the actual model that served the request.
	Model string
}
