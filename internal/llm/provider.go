package llm

import "context"

// Provider defines the interface for LLM providers
// All providers MUST support structured output (JSON Schema) for reliable response parsing
type Provider interface {
	// Resolve asks the LLM to describe a chord or scale using structured output.
	// The provider MUST enforce the OutputSchema to ensure valid JSON responses
	Resolve(ctx context.Context, request *ResolveRequest) (*ResolveResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// ResolveRequest contains all parameters needed for a resolution call
type ResolveRequest struct {
	Model        string
	SystemPrompt string
	UserText     string
	// Structured output schema - REQUIRED for reliable JSON parsing
	OutputSchema *OutputSchema
}

// OutputSchema defines the expected JSON output structure
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// ResolveResponse contains the result from the LLM
type ResolveResponse struct {
	RawOutput string `json:"-"` // Raw JSON text output
	Usage     any    `json:"usage"`
}
