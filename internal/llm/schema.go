package llm

// GetResolutionSchema returns the JSON schema for chord/scale resolution output.
// Every field is required and additionalProperties is false: a response that
// does not decode cleanly against this shape is rejected whole, never
// partially salvaged.
// Note: OpenAI requires additionalProperties: false, which means all properties must be in 'required'
func GetResolutionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"root": map[string]any{
				"type":        "string",
				"description": "Root note name with optional accidental, e.g. 'C#', 'Bb'",
			},
			"label": map[string]any{
				"type":        "string",
				"description": "Canonical display label for the chord or scale",
			},
			"tones": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"note": map[string]any{
							"type":        "string",
							"description": "Note name with optional accidental",
						},
						"degree": map[string]any{
							"type":        "string",
							"description": "Degree label relative to the root, e.g. '1', 'b3', '#5'",
						},
					},
					"required":             []string{"note", "degree"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"root", "label", "tones"},
		"additionalProperties": false,
	}
}
