package theory

import "math"

// DefaultFretCount is the fret range of the continuous view.
const DefaultFretCount = 24

// ViewMode selects how markers are generated.
type ViewMode int

const (
	// ViewContinuous generates one marker per fret 0..N per string.
	ViewContinuous ViewMode = iota
	// ViewHarmonic generates one marker per natural-harmonic point per string.
	ViewHarmonic
)

// MarkerMode is the tagged mode dispatched once at the top of BuildMarkers.
type MarkerMode struct {
	View      ViewMode
	FretCount int
}

// ContinuousMode returns the fretted-note view over frets 0..fretCount.
func ContinuousMode(fretCount int) MarkerMode {
	if fretCount <= 0 {
		fretCount = DefaultFretCount
	}
	return MarkerMode{View: ViewContinuous, FretCount: fretCount}
}

// HarmonicMode returns the natural-harmonic view.
func HarmonicMode() MarkerMode {
	return MarkerMode{View: ViewHarmonic}
}

// Marker is one renderable fretboard annotation. Markers are ephemeral:
// recomputed in full on every tuning/key/chord change, never persisted.
type Marker struct {
	Fret        float64 `json:"fret"`
	Label       string  `json:"label"`
	PitchClass  int     `json:"pitch_class"`
	Partial     int     `json:"partial,omitempty"`
	StringIndex int     `json:"string_index"`
	IsInKey     bool    `json:"is_in_key"`
	IsRoot      bool    `json:"is_root"`
	InChord     bool    `json:"in_chord"`
}

// BuildMarkers fuses a tuning with the active key and chord (either may be
// nil) into the marker list for one render. With no key and no chord every
// marker passes through untagged.
func BuildMarkers(tuning Tuning, key *KeySignature, chord *Chord, mode MarkerMode) []Marker {
	preferSharps := key == nil || !key.PreferFlats

	switch mode.View {
	case ViewHarmonic:
		return buildHarmonicMarkers(tuning, key, chord, preferSharps)
	default:
		return buildFrettedMarkers(tuning, key, chord, mode.FretCount, preferSharps)
	}
}

func buildFrettedMarkers(tuning Tuning, key *KeySignature, chord *Chord, fretCount int, preferSharps bool) []Marker {
	if fretCount <= 0 {
		fretCount = DefaultFretCount
	}

	markers := make([]Marker, 0, len(tuning.Strings)*(fretCount+1))
	for i, s := range tuning.Strings {
		for fret := 0; fret <= fretCount; fret++ {
			note := NoteForPitch(s.AbsolutePitch+fret, preferSharps)
			markers = append(markers, tagMarker(Marker{
				Fret:        float64(fret),
				Label:       note.Label(),
				PitchClass:  note.PitchClass,
				StringIndex: i,
			}, key, chord))
		}
	}
	return markers
}

func buildHarmonicMarkers(tuning Tuning, key *KeySignature, chord *Chord, preferSharps bool) []Marker {
	markers := make([]Marker, 0, len(tuning.Strings)*len(HarmonicPoints))
	for i, s := range tuning.Strings {
		for _, p := range HarmonicPoints {
			note := NoteForPitch(s.AbsolutePitch+p.SemitoneShift, preferSharps)
			markers = append(markers, tagMarker(Marker{
				Fret:        p.Fret,
				Label:       note.Label(),
				PitchClass:  note.PitchClass,
				Partial:     p.Partial,
				StringIndex: i,
			}, key, chord))
		}
	}
	return markers
}

// tagMarker applies the shared membership flags against the active key and
// chord. Nil key and nil chord leave every flag false.
func tagMarker(m Marker, key *KeySignature, chord *Chord) Marker {
	m.IsInKey = key.Contains(m.PitchClass)
	m.IsRoot = key.IsRoot(m.PitchClass)
	m.InChord = chord.Contains(m.PitchClass)
	return m
}

// DegreeLabelFor resolves the display degree of a pitch class against the
// active chord first, then the active key. It is a pure function of its
// inputs and is kept out of the marker itself.
func DegreeLabelFor(pc int, key *KeySignature, chord *Chord) string {
	if chord != nil {
		return chord.DegreeOf(pc)
	}
	if d, ok := key.DegreeOf(pc); ok {
		return d
	}
	return ""
}

// FretPosition maps a logical fret on a 0..24 range to a horizontal
// coordinate in [0,1], following real fret spacing: each fret sits
// 2^(-f/12) of the scale length from the bridge. Harmonic markers sit
// exactly at their (fractional) fret position.
func FretPosition(fret float64) float64 {
	return (1 - math.Pow(2, -fret/12)) / (1 - math.Pow(2, -float64(DefaultFretCount)/12))
}

// MarkerPosition is where a fretted-note marker is drawn: centered between
// its bounding fret wires, except fret 0 which sits on the nut.
func MarkerPosition(fret int) float64 {
	if fret <= 0 {
		return FretPosition(0)
	}
	return (FretPosition(float64(fret-1)) + FretPosition(float64(fret))) / 2
}
