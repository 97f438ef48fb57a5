package prompt

import (
	"strings"
	"testing"
)

func TestNewPromptLoader(t *testing.T) {
	loader := NewPromptLoader()
	if loader == nil {
		t.Fatal("NewPromptLoader() returned nil")
	}
}

func TestGetChordSystemPrompt(t *testing.T) {
	loader := NewPromptLoader()
	content := loader.GetChordSystemPrompt()

	if content == "" {
		t.Fatal("GetChordSystemPrompt() returned empty string")
	}

	// Check for expected content
	if !strings.Contains(content, "chord") {
		t.Error("GetChordSystemPrompt() does not mention chords")
	}
	if !strings.Contains(content, "degree") {
		t.Error("GetChordSystemPrompt() does not describe degree labels")
	}

	// Ensure no excessive whitespace
	if strings.HasPrefix(content, "\n") || strings.HasSuffix(content, "\n") {
		t.Error("GetChordSystemPrompt() is not trimmed")
	}
}

func TestGetScaleSystemPrompt(t *testing.T) {
	loader := NewPromptLoader()
	content := loader.GetScaleSystemPrompt()

	if content == "" {
		t.Fatal("GetScaleSystemPrompt() returned empty string")
	}

	if !strings.Contains(content, "scale") {
		t.Error("GetScaleSystemPrompt() does not mention scales")
	}
	if !strings.Contains(content, "tonic") {
		t.Error("GetScaleSystemPrompt() does not describe the tonic")
	}
}
