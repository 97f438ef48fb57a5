package theory

import "testing"

func TestHarmonicPoints(t *testing.T) {
	tests := []struct {
		fret    float64
		partial int
		shift   int
	}{
		{12, 2, 12},
		{7, 3, 19},
		{19, 3, 19},
		{5, 4, 24},
		{24, 4, 24},
		{4, 5, 28},
		{9, 5, 28},
		{16, 5, 28},
		{3.2, 6, 31},
	}

	byFret := make(map[float64]HarmonicPoint, len(HarmonicPoints))
	for _, p := range HarmonicPoints {
		byFret[p.Fret] = p
	}

	if len(HarmonicPoints) != len(tests) {
		t.Fatalf("got %d harmonic points, want %d", len(HarmonicPoints), len(tests))
	}

	for _, tt := range tests {
		p, ok := byFret[tt.fret]
		if !ok {
			t.Errorf("no harmonic point at fret %v", tt.fret)
			continue
		}
		if p.Partial != tt.partial {
			t.Errorf("fret %v: partial = %d, want %d", tt.fret, p.Partial, tt.partial)
		}
		if p.SemitoneShift != tt.shift {
			t.Errorf("fret %v: shift = %d, want %d", tt.fret, p.SemitoneShift, tt.shift)
		}
	}
}

func TestHarmonicNotesForString(t *testing.T) {
	// Open low E (E2 = 40). The 12th-fret harmonic sounds E3, the 7th B3.
	notes := HarmonicNotesForString(40, true)
	if len(notes) != len(HarmonicPoints) {
		t.Fatalf("got %d notes, want %d", len(notes), len(HarmonicPoints))
	}

	byShift := make(map[int]Note)
	for i, p := range HarmonicPoints {
		byShift[p.SemitoneShift] = notes[i]
	}

	if got := byShift[12].Label(); got != "E3" {
		t.Errorf("octave harmonic = %q, want E3", got)
	}
	if got := byShift[19].Label(); got != "B3" {
		t.Errorf("twelfth harmonic = %q, want B3", got)
	}
	if got := byShift[24].Label(); got != "E4" {
		t.Errorf("double-octave harmonic = %q, want E4", got)
	}
	if got := byShift[28].Label(); got != "G#4" {
		t.Errorf("fifth-partial harmonic = %q, want G#4", got)
	}
}
