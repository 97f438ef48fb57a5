package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"
)

const (
	providerNameGemini = "gemini"
	mimeTypeJSON       = "application/json"
	geminiUserRole     = "user"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// Resolve implements a single structured-output call using Gemini's API
func (p *GeminiProvider) Resolve(ctx context.Context, request *ResolveRequest) (*ResolveResponse, error) {
	startTime := time.Now()
	log.Printf("🎵 GEMINI RESOLUTION REQUEST STARTED (Model: %s)", request.Model)

	// Start Sentry transaction
	transaction := sentry.StartTransaction(ctx, "gemini.resolve")
	defer transaction.Finish()

	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", "gemini")

	contents := []*genai.Content{
		{
			Role:  geminiUserRole,
			Parts: []*genai.Part{{Text: request.UserText}},
		},
	}

	// Configure generation with structured output
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: request.SystemPrompt}},
		},
	}

	if request.OutputSchema != nil {
		config.ResponseMIMEType = mimeTypeJSON
		config.ResponseSchema = p.convertSchemaToGemini()
	}

	// Call Gemini API
	span := transaction.StartChild("gemini.api_call")
	apiStartTime := time.Now()
	result, err := p.client.Models.GenerateContent(ctx, request.Model, contents, config)
	apiDuration := time.Since(apiStartTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ GEMINI REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	log.Printf("⏱️  GEMINI API CALL COMPLETED in %v", apiDuration)

	textOutput := result.Text()
	if textOutput == "" {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("gemini response did not include any output text")
	}

	var usage any
	if result.UsageMetadata != nil {
		usage = map[string]interface{}{
			"input_tokens":  int64(result.UsageMetadata.PromptTokenCount),
			"output_tokens": int64(result.UsageMetadata.CandidatesTokenCount),
			"total_tokens":  int64(result.UsageMetadata.TotalTokenCount),
		}
		log.Printf("📊 USAGE: input=%d, output=%d, total=%d",
			result.UsageMetadata.PromptTokenCount,
			result.UsageMetadata.CandidatesTokenCount,
			result.UsageMetadata.TotalTokenCount)
	}

	log.Printf("✅ GEMINI RESOLUTION COMPLETED in %v", time.Since(startTime))

	transaction.SetTag("success", "true")
	return &ResolveResponse{
		RawOutput: textOutput,
		Usage:     usage,
	}, nil
}

// convertSchemaToGemini converts the resolution schema to Gemini's schema format
func (p *GeminiProvider) convertSchemaToGemini() *genai.Schema {
	// Gemini uses a specific Schema type rather than raw JSON Schema maps
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"root":  {Type: genai.TypeString},
			"label": {Type: genai.TypeString},
			"tones": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"note":   {Type: genai.TypeString},
						"degree": {Type: genai.TypeString},
					},
					Required: []string{"note", "degree"},
				},
			},
		},
		Required: []string{"root", "label", "tones"},
	}
}
