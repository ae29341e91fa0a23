package ai

import (
	"context"
	"errors"
	"fmt"
)

// Provider is the interface a text-generation backend implements.
type Provider interface {
	// Name returns the provider name (e.g., "gemini").
	Name() string

	// Complete sends a prompt and returns the complete response.
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// Request represents a completion request.
type Request struct {
	// Prompt is the user's input text.
	Prompt string

	// System is an optional system message to set context.
	System string

	// Model is an optional model override (if empty, uses provider default).
	Model string

	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// ResponseMIMEType asks for a structured reply, e.g. "application/json".
	ResponseMIMEType string

	// ResponseSchema constrains a JSON reply. Only honoured together with
	// ResponseMIMEType "application/json".
	ResponseSchema *Schema
}

// Schema is the subset of OpenAPI schema accepted for structured output.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// SchemaType names a JSON value type.
type SchemaType string

const (
	TypeString SchemaType = "STRING"
	TypeArray  SchemaType = "ARRAY"
	TypeObject SchemaType = "OBJECT"
)

// MIMEJSON requests a JSON response body.
const MIMEJSON = "application/json"

// Response represents a completion response.
type Response struct {
	// Content is the generated text.
	Content string

	// Model is the actual model that was used.
	Model string

	// Usage contains token counts.
	Usage Usage
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewRequest creates a request with sensible defaults.
func NewRequest(prompt string) *Request {
	return &Request{
		Prompt:      prompt,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Validate reports whether the request can be sent.
func (r *Request) Validate() error {
	if r.Prompt == "" {
		return errors.New("prompt is required")
	}
	if r.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", r.MaxTokens)
	}
	if r.Temperature < 0 || r.Temperature > 1 {
		return fmt.Errorf("temperature must be between 0 and 1, got %g", r.Temperature)
	}
	if r.ResponseSchema != nil && r.ResponseMIMEType != MIMEJSON {
		return errors.New("response schema requires a JSON response type")
	}
	return nil
}

// ProviderError reports a failure talking to a provider.
type ProviderError struct {
	Provider string
	// Status is the HTTP status code, or 0 when the request never completed.
	Status int
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ErrNoKey is returned when no API key is configured for a provider.
var ErrNoKey = errors.New("no API key configured")
