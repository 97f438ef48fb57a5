package theory

import (
	"math"
	"reflect"
	"testing"
)

func standardTuning(t *testing.T) Tuning {
	t.Helper()
	tuning, errs := BuildTuning(PresetStandard, 6, nil)
	if len(errs) != 0 {
		t.Fatalf("BuildTuning: %v", errs)
	}
	return tuning
}

func TestBuildMarkersContinuous(t *testing.T) {
	tuning := standardTuning(t)
	markers := BuildMarkers(tuning, nil, nil, ContinuousMode(24))

	if len(markers) != 6*25 {
		t.Fatalf("got %d markers, want %d", len(markers), 6*25)
	}

	// Fret 0 on each string is the open-string pitch class.
	for i, s := range tuning.Strings {
		open := markers[i*25]
		if open.Fret != 0 {
			t.Errorf("string %d: first marker at fret %v", i, open.Fret)
		}
		if open.PitchClass != s.PitchClass {
			t.Errorf("string %d: open marker pc = %d, want %d", i, open.PitchClass, s.PitchClass)
		}
		next := markers[i*25+1]
		if next.PitchClass != NormalizePitchClass(s.PitchClass+1) {
			t.Errorf("string %d: fret 1 pc = %d, want %d", i, next.PitchClass, NormalizePitchClass(s.PitchClass+1))
		}
	}

	// No key, no chord: every marker is untagged.
	for _, m := range markers {
		if m.IsInKey || m.IsRoot || m.InChord {
			t.Fatalf("marker %+v tagged without key or chord", m)
		}
	}
}

func TestBuildMarkersWithKey(t *testing.T) {
	tuning := standardTuning(t)
	key, _ := KeyByLabel("C major")

	markers := BuildMarkers(tuning, key, nil, ContinuousMode(12))

	for _, m := range markers {
		if m.IsInKey != key.Contains(m.PitchClass) {
			t.Fatalf("marker %+v: IsInKey disagrees with key membership", m)
		}
		if m.IsRoot && m.PitchClass != 0 {
			t.Fatalf("marker %+v flagged root but is not C", m)
		}
	}
}

func TestBuildMarkersFlatKeySpelling(t *testing.T) {
	tuning := standardTuning(t)
	key, _ := KeyByLabel("Eb major")

	markers := BuildMarkers(tuning, key, nil, ContinuousMode(12))

	for _, m := range markers {
		if m.PitchClass == 3 && m.Label[:2] != "Eb" {
			t.Fatalf("pc 3 labelled %q in a flat key", m.Label)
		}
		if m.PitchClass == 10 && m.Label[:2] != "Bb" {
			t.Fatalf("pc 10 labelled %q in a flat key", m.Label)
		}
	}
}

func TestBuildMarkersWithChord(t *testing.T) {
	tuning := standardTuning(t)
	chord, err := ParseChord("Cmaj7")
	if err != nil {
		t.Fatal(err)
	}

	markers := BuildMarkers(tuning, nil, chord, ContinuousMode(12))
	for _, m := range markers {
		want := m.PitchClass == 0 || m.PitchClass == 4 || m.PitchClass == 7 || m.PitchClass == 11
		if m.InChord != want {
			t.Fatalf("marker %+v: InChord = %v, want %v", m, m.InChord, want)
		}
	}
}

func TestBuildMarkersHarmonic(t *testing.T) {
	tuning := standardTuning(t)
	markers := BuildMarkers(tuning, nil, nil, HarmonicMode())

	if len(markers) != 6*len(HarmonicPoints) {
		t.Fatalf("got %d markers, want %d", len(markers), 6*len(HarmonicPoints))
	}

	// Low E string, octave harmonic at fret 12 sounds E3.
	for _, m := range markers {
		if m.StringIndex == 0 && m.Fret == 12 {
			if m.Partial != 2 {
				t.Errorf("fret-12 harmonic partial = %d, want 2", m.Partial)
			}
			if m.Label != "E3" {
				t.Errorf("fret-12 harmonic on low E = %q, want E3", m.Label)
			}
			return
		}
	}
	t.Fatal("no fret-12 harmonic marker on the low E string")
}

// Markers are pure functions of their inputs: the same call yields the same
// list every time.
func TestBuildMarkersDeterministic(t *testing.T) {
	tuning := standardTuning(t)
	key, _ := KeyByLabel("A minor")
	chord, err := ParseChord("Am7")
	if err != nil {
		t.Fatal(err)
	}

	first := BuildMarkers(tuning, key, chord, ContinuousMode(24))
	second := BuildMarkers(tuning, key, chord, ContinuousMode(24))
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different marker lists")
	}
}

func TestFretPositionEndpoints(t *testing.T) {
	if got := FretPosition(0); got != 0 {
		t.Errorf("FretPosition(0) = %v, want 0", got)
	}
	if got := FretPosition(24); math.Abs(got-1) > 1e-12 {
		t.Errorf("FretPosition(24) = %v, want 1", got)
	}

	// Positions are strictly increasing with shrinking spacing.
	prev := 0.0
	prevGap := math.Inf(1)
	for f := 1; f <= 24; f++ {
		pos := FretPosition(float64(f))
		gap := pos - prev
		if gap <= 0 {
			t.Fatalf("fret %d: position not increasing", f)
		}
		if gap >= prevGap {
			t.Fatalf("fret %d: spacing not shrinking", f)
		}
		prev, prevGap = pos, gap
	}
}

func TestMarkerPosition(t *testing.T) {
	if got := MarkerPosition(0); got != 0 {
		t.Errorf("MarkerPosition(0) = %v, want 0", got)
	}
	want := (FretPosition(0) + FretPosition(1)) / 2
	if got := MarkerPosition(1); got != want {
		t.Errorf("MarkerPosition(1) = %v, want %v", got, want)
	}
}

func TestDegreeLabelFor(t *testing.T) {
	key, _ := KeyByLabel("C major")
	chord, err := ParseChord("G7")
	if err != nil {
		t.Fatal(err)
	}

	// Chord wins over key when both are active.
	if got := DegreeLabelFor(11, key, chord); got != "3" {
		t.Errorf("degree of B against G7 = %q, want \"3\"", got)
	}
	if got := DegreeLabelFor(11, key, nil); got != "7" {
		t.Errorf("degree of B against C major = %q, want \"7\"", got)
	}
	if got := DegreeLabelFor(1, key, nil); got != "" {
		t.Errorf("degree of Db against C major = %q, want empty", got)
	}
	if got := DegreeLabelFor(0, nil, nil); got != "" {
		t.Errorf("degree with no context = %q, want empty", got)
	}
}
