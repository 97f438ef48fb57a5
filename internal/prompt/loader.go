package prompt

import (
	"strings"

	"github.com/fretsound/fretboard-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetChordSystemPrompt loads the system prompt for chord resolution
func (l *Loader) GetChordSystemPrompt() string {
	return strings.TrimSpace(string(embedded.ChordResolutionPromptTxt))
}

// GetScaleSystemPrompt loads the system prompt for scale resolution
func (l *Loader) GetScaleSystemPrompt() string {
	return strings.TrimSpace(string(embedded.ScaleResolutionPromptTxt))
}
