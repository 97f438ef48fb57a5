package theory

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownChord is returned when the local grammar has no reading for a
// chord symbol. Callers are expected to fall back to the resolution service.
var ErrUnknownChord = errors.New("unrecognized chord symbol")

// Chord source markers.
const (
	SourceLocal = "local"
	SourceLLM   = "llm"
)

// Chord is a set of pitch classes with a root. Degrees is populated for
// externally resolved chords; locally parsed chords resolve degrees through
// the fixed interval table instead.
type Chord struct {
	Root         Note           `json:"root"`
	PitchClasses []int          `json:"pitch_classes"`
	Degrees      map[int]string `json:"degrees,omitempty"`
	Label        string         `json:"label"`
	Source       string         `json:"source"`
}

// Triad intervals per quality token. The empty token is a plain major triad.
var qualityIntervals = map[string][]int{
	"":     {0, 4, 7},
	"maj":  {0, 4, 7},
	"M":    {0, 4, 7},
	"+":    {0, 4, 8},
	"aug":  {0, 4, 8},
	"m":    {0, 3, 7},
	"min":  {0, 3, 7},
	"-":    {0, 3, 7},
	"dim":  {0, 3, 6},
	"o":    {0, 3, 6},
	"sus2": {0, 2, 7},
	"sus4": {0, 5, 7},
}

// Longest match first, so "maj" is never read as "m" + "aj".
var qualityTokens = []string{"sus2", "sus4", "maj", "min", "dim", "aug", "m", "M", "o", "+", "-"}

var chordRootRe = regexp.MustCompile(`^[A-Ga-g][#b]?`)

// Anything left after the root and quality must be built from these tokens.
var chordExtensionRe = regexp.MustCompile(`^(maj7|dim5|b13|b9|b5|#5|\+5|13|11|9|7)*$`)

// chordDegreeNames is the fixed interval-to-degree table used when a chord
// has no explicit degree map.
var chordDegreeNames = [12]string{"1", "b2", "2", "b3", "3", "4", "b5", "5", "#5", "6", "b7", "7"}

// DegreeForInterval returns the degree label for a semitone offset from the
// chord root.
func DegreeForInterval(semitones int) string {
	return chordDegreeNames[NormalizePitchClass(semitones)]
}

// ParseChord parses a chord symbol like "Cmaj7", "F#m7b5" or "Bbsus4" with
// the local grammar. The grammar is deliberately partial: symbols it cannot
// read return ErrUnknownChord and are expected to go through the resolution
// service instead.
func ParseChord(text string) (*Chord, error) {
	text = strings.TrimSpace(text)

	rootToken := chordRootRe.FindString(text)
	if rootToken == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChord, text)
	}
	root, err := ParseNote(rootToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChord, text)
	}

	suffix := text[len(rootToken):]
	working := suffix

	// Extract maj7 before anything else so the quality scan can't corrupt it
	// into "m" + "aj7", and so the bare-7 test below can't see its 7.
	majorSeventh := strings.Contains(working, "maj7")
	working = strings.ReplaceAll(working, "maj7", "")

	quality := ""
	for _, token := range qualityTokens {
		if strings.HasPrefix(working, token) {
			quality = token
			working = working[len(token):]
			break
		}
	}

	if !chordExtensionRe.MatchString(working) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChord, text)
	}

	intervals := make([]int, len(qualityIntervals[quality]))
	copy(intervals, qualityIntervals[quality])

	// Extension and alteration tokens are presence tests, order-insensitive.
	// Altered tensions are additive: "b9" does not remove a plain "9".
	if majorSeventh {
		intervals = append(intervals, 11)
	}
	if strings.Contains(working, "7") {
		intervals = append(intervals, 10)
	}
	if strings.Contains(working, "9") {
		intervals = append(intervals, 14)
	}
	if strings.Contains(working, "11") {
		intervals = append(intervals, 17)
	}
	if strings.Contains(working, "13") {
		intervals = append(intervals, 21)
	}
	if strings.Contains(working, "b9") {
		intervals = append(intervals, 13)
	}
	if strings.Contains(working, "b13") {
		intervals = append(intervals, 20)
	}
	if strings.Contains(working, "b5") || strings.Contains(working, "dim5") {
		intervals = replaceFifth(intervals, 6)
	}
	if strings.Contains(working, "#5") || strings.Contains(working, "+5") {
		intervals = replaceFifth(intervals, 8)
	}

	pcs := make([]int, 0, len(intervals)+1)
	pcs = append(pcs, root.PitchClass)
	for _, iv := range intervals {
		pcs = append(pcs, root.PitchClass+iv)
	}

	return &Chord{
		Root:         root,
		PitchClasses: UniquePitchClasses(pcs),
		Label:        root.Name + suffix,
		Source:       SourceLocal,
	}, nil
}

// replaceFifth swaps the perfect fifth of the triad for an altered one.
func replaceFifth(intervals []int, altered int) []int {
	for i, iv := range intervals {
		if iv == 7 {
			intervals[i] = altered
			return intervals
		}
	}
	return append(intervals, altered)
}

// ChordFromTones builds a Chord from an externally resolved tone list. The
// root pitch class is always a member and always maps to degree "1".
func ChordFromTones(label string, root Note, tones []ToneDegree, source string) *Chord {
	pcs := make([]int, 0, len(tones)+1)
	pcs = append(pcs, root.PitchClass)
	for _, t := range tones {
		pcs = append(pcs, t.Note.PitchClass)
	}

	return &Chord{
		Root:         root,
		PitchClasses: UniquePitchClasses(pcs),
		Degrees:      BuildDegreeMap(root.PitchClass, tones),
		Label:        label,
		Source:       source,
	}
}

// Contains reports whether a pitch class belongs to the chord.
func (c *Chord) Contains(pc int) bool {
	if c == nil {
		return false
	}
	pc = NormalizePitchClass(pc)
	for _, member := range c.PitchClasses {
		if member == pc {
			return true
		}
	}
	return false
}

// DegreeOf returns the degree label for a pitch class relative to the chord:
// the explicit degree map first, then the fixed interval table. The interval
// fallback answers for any pitch class, member or not, so consumers can label
// arbitrary fretboard positions against the active chord.
func (c *Chord) DegreeOf(pc int) string {
	if c == nil {
		return ""
	}
	pc = NormalizePitchClass(pc)
	if c.Degrees != nil {
		if d, ok := c.Degrees[pc]; ok {
			return d
		}
	}
	return DegreeForInterval(pc - c.Root.PitchClass)
}
