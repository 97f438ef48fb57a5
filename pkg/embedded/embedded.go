package embedded

import (
	_ "embed"
)

// Embed all prompt data files
//
//go:embed data/prompts/chord_resolution_prompt.txt
var ChordResolutionPromptTxt []byte

//go:embed data/prompts/scale_resolution_prompt.txt
var ScaleResolutionPromptTxt []byte
