package theory

import "fmt"

// Tuning presets.
const (
	PresetStandard = "standard"
	PresetFourths  = "fourths"
	PresetCustom   = "custom"
)

const (
	// Octave used when a custom tuning note omits one.
	defaultCustomOctave = 3
	// Note used to pad a custom tuning that supplies fewer strings than
	// requested.
	defaultCustomNote = "E3"
	// Interval subtracted when extending a tuning below its base: a fourth.
	extensionInterval = 5
)

// StringNote is one instrument string: a display label plus the open-string
// pitch. Strings are ordered low to high and immutable once built.
type StringNote struct {
	Label         string `json:"label"`
	PitchClass    int    `json:"pitch_class"`
	AbsolutePitch int    `json:"absolute_pitch"`
}

// Tuning is an ordered sequence of string base pitches.
type Tuning struct {
	Preset  string       `json:"preset"`
	Strings []StringNote `json:"strings"`
}

// Six-string bases, low to high.
var standardBase = []string{"E2", "A2", "D3", "G3", "B3", "E4"}
var fourthsBase = []string{"E2", "A2", "D3", "G3", "C4", "F4"}

// Four and five strings get bass bases rather than a truncated guitar base:
// instruments with five or fewer strings are treated as basses. These are
// deliberate product tables, not derivations from the guitar base.
var bassBase4 = []string{"E1", "A1", "D2", "G2"}
var bassBase5 = []string{"B0", "E1", "A1", "D2", "G2"}

// BuildTuning converts a preset name (or explicit per-string note tokens for
// the custom preset) into an ordered tuning. Custom parse failures are
// collected per string and never abort the build; the returned tuning holds
// every string that parsed.
func BuildTuning(preset string, stringCount int, custom []string) (Tuning, []string) {
	if preset == PresetCustom {
		return buildCustomTuning(stringCount, custom)
	}

	base := standardBase
	if preset == PresetFourths {
		base = fourthsBase
	}

	names := scaleStringCount(base, stringCount)
	strings := make([]StringNote, 0, len(names))
	for _, name := range names {
		note, err := ParseNote(name)
		if err != nil {
			// The preset tables are fixed; a parse failure here is a defect.
			panic(fmt.Sprintf("theory: bad preset note %q: %v", name, err))
		}
		strings = append(strings, stringNote(note))
	}

	return Tuning{Preset: preset, Strings: strings}, nil
}

// scaleStringCount adapts a base note list to the requested string count.
// Counts of 4 and 5 switch to the bass bases; smaller counts drop strings
// from the low end; larger counts extend downward by fourths.
func scaleStringCount(base []string, stringCount int) []string {
	switch {
	case stringCount <= 0 || stringCount == len(base):
		return base
	case stringCount == 4:
		return bassBase4
	case stringCount == 5:
		return bassBase5
	case stringCount < len(base):
		return base[len(base)-stringCount:]
	}

	// Extend below the base by repeatedly subtracting a fourth from the
	// current lowest string.
	lowest, err := ParseNote(base[0])
	if err != nil {
		panic(fmt.Sprintf("theory: bad preset note %q: %v", base[0], err))
	}
	pitch, _ := lowest.AbsolutePitch()

	extended := make([]string, 0, stringCount)
	for i := 0; i < stringCount-len(base); i++ {
		pitch -= extensionInterval
		extended = append([]string{NoteForPitch(pitch, true).Label()}, extended...)
	}
	return append(extended, base...)
}

func buildCustomTuning(stringCount int, custom []string) (Tuning, []string) {
	if stringCount <= 0 {
		stringCount = len(custom)
	}

	inputs := make([]string, stringCount)
	for i := range inputs {
		if i < len(custom) {
			inputs[i] = custom[i]
		} else {
			inputs[i] = defaultCustomNote
		}
	}

	strings := make([]StringNote, 0, stringCount)
	var errs []string
	for i, raw := range inputs {
		note, err := ParseNote(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("String %d: invalid note %q", i+1, raw))
			continue
		}
		if note.Octave == nil {
			octave := defaultCustomOctave
			note.Octave = &octave
		}
		strings = append(strings, stringNote(note))
	}

	return Tuning{Preset: PresetCustom, Strings: strings}, errs
}

func stringNote(note Note) StringNote {
	pitch, _ := note.AbsolutePitch()
	return StringNote{
		Label:         note.Label(),
		PitchClass:    note.PitchClass,
		AbsolutePitch: pitch,
	}
}
