package models

import "fmt"

// ResolvedTone is one tone of an LLM-described chord or scale.
type ResolvedTone struct {
	Note   string `json:"note"`
	Degree string `json:"degree"`
}

// Resolution is the structured payload returned by the resolution service for
// both chords and scales.
type Resolution struct {
	Root  string         `json:"root"`
	Label string         `json:"label"`
	Tones []ResolvedTone `json:"tones"`
}

// Validate checks the structural shape of a resolution. Musical validity
// (whether the note names parse) is the caller's concern; this only rejects
// payloads with missing pieces.
func (r *Resolution) Validate() error {
	if r.Root == "" {
		return fmt.Errorf("resolution missing root")
	}
	if len(r.Tones) == 0 {
		return fmt.Errorf("resolution has no tones")
	}
	for i, tone := range r.Tones {
		if tone.Note == "" {
			return fmt.Errorf("tone %d missing note", i)
		}
		if tone.Degree == "" {
			return fmt.Errorf("tone %d missing degree", i)
		}
	}
	return nil
}
