package theory

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidNote is returned when a note token cannot be parsed.
var ErrInvalidNote = errors.New("invalid note")

// Note is a parsed note token: a canonical spelling (e.g. "C#", "Bb") plus its
// pitch class, with an optional octave for contexts that carry one (tuning
// strings do, chord tones don't).
type Note struct {
	Name       string `json:"name"`
	PitchClass int    `json:"pitch_class"`
	Octave     *int   `json:"octave,omitempty"`
}

// noteOffsets maps every accepted spelling to its semitone offset from C.
// Both members of each enharmonic pair are present, plus the theoretical
// spellings (B#, Cb, E#, Fb).
var noteOffsets = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D":  2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G":  7,
	"G#": 8, "Ab": 8,
	"A":  9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Accepts a letter A-G (case-insensitive), an optional single accidental, and
// an optional integer octave (may be negative). Double accidentals and solfege
// are rejected.
var noteRe = regexp.MustCompile(`^([A-Ga-g])([#b]?)(-?\d+)?$`)

// NormalizePitchClass maps any semitone count into [0,11].
func NormalizePitchClass(n int) int {
	return ((n % 12) + 12) % 12
}

// ParseNote parses a note token like "C#", "bb3" or "E-1" into a Note.
func ParseNote(text string) (Note, error) {
	m := noteRe.FindStringSubmatch(text)
	if m == nil {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, text)
	}

	letter := m[1]
	if letter[0] >= 'a' {
		letter = string(letter[0] - 'a' + 'A')
	}
	name := letter + m[2]

	offset, ok := noteOffsets[name]
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, text)
	}

	note := Note{
		Name:       name,
		PitchClass: NormalizePitchClass(offset),
	}

	if m[3] != "" {
		octave, err := strconv.Atoi(m[3])
		if err != nil {
			return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, text)
		}
		note.Octave = &octave
	}

	return note, nil
}

// PitchClassName returns the display spelling for a pitch class, using one of
// two fixed 12-entry tables. The input is normalized first.
func PitchClassName(pc int, preferSharps bool) string {
	pc = NormalizePitchClass(pc)
	if preferSharps {
		return sharpNames[pc]
	}
	return flatNames[pc]
}

// NoteForPitch converts an absolute pitch (MIDI-style, C4 = 60) into a Note
// with its octave filled in.
func NoteForPitch(pitch int, preferSharps bool) Note {
	pc := NormalizePitchClass(pitch)
	// Floor division so negative pitches land in the right octave (C-1 = 0).
	octave := (pitch-pc)/12 - 1
	return Note{
		Name:       PitchClassName(pc, preferSharps),
		PitchClass: pc,
		Octave:     &octave,
	}
}

// Label returns the display string for a note, including the octave when the
// note carries one (e.g. "E2").
func (n Note) Label() string {
	if n.Octave == nil {
		return n.Name
	}
	return n.Name + strconv.Itoa(*n.Octave)
}

// AbsolutePitch returns the MIDI-style pitch number for a note with an
// octave, using (octave+1)*12 + pitchClass so that C4 = 60.
func (n Note) AbsolutePitch() (int, bool) {
	if n.Octave == nil {
		return 0, false
	}
	return (*n.Octave+1)*12 + n.PitchClass, true
}

// UniquePitchClasses normalizes and deduplicates a list of pitch classes,
// keeping the first occurrence of each.
func UniquePitchClasses(list []int) []int {
	seen := make(map[int]bool, len(list))
	out := make([]int, 0, len(list))
	for _, n := range list {
		pc := NormalizePitchClass(n)
		if seen[pc] {
			continue
		}
		seen[pc] = true
		out = append(out, pc)
	}
	return out
}
