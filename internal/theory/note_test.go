package theory

import "testing"

func TestParseNote(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantPC    int
		wantOct   *int
		expectErr bool
	}{
		{name: "natural", input: "C", wantName: "C", wantPC: 0},
		{name: "sharp", input: "F#", wantName: "F#", wantPC: 6},
		{name: "flat", input: "Bb", wantName: "Bb", wantPC: 10},
		{name: "lowercase letter", input: "eb", wantName: "Eb", wantPC: 3},
		{name: "with octave", input: "E2", wantName: "E", wantPC: 4, wantOct: intPtr(2)},
		{name: "negative octave", input: "C-1", wantName: "C", wantPC: 0, wantOct: intPtr(-1)},
		{name: "theoretical sharp", input: "B#", wantName: "B#", wantPC: 0},
		{name: "theoretical flat", input: "Cb", wantName: "Cb", wantPC: 11},
		{name: "E sharp", input: "E#", wantName: "E#", wantPC: 5},
		{name: "F flat", input: "Fb", wantName: "Fb", wantPC: 4},
		{name: "empty", input: "", expectErr: true},
		{name: "not a note letter", input: "H", expectErr: true},
		{name: "double accidental", input: "C##", expectErr: true},
		{name: "solfege", input: "Do", expectErr: true},
		{name: "trailing junk", input: "C#x", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := ParseNote(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("ParseNote(%q): expected error, got %+v", tt.input, note)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNote(%q): unexpected error: %v", tt.input, err)
			}
			if note.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", note.Name, tt.wantName)
			}
			if note.PitchClass != tt.wantPC {
				t.Errorf("PitchClass = %d, want %d", note.PitchClass, tt.wantPC)
			}
			if tt.wantOct == nil && note.Octave != nil {
				t.Errorf("Octave = %d, want nil", *note.Octave)
			}
			if tt.wantOct != nil {
				if note.Octave == nil {
					t.Errorf("Octave = nil, want %d", *tt.wantOct)
				} else if *note.Octave != *tt.wantOct {
					t.Errorf("Octave = %d, want %d", *note.Octave, *tt.wantOct)
				}
			}
		})
	}
}

func TestNormalizePitchClass(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{12, 0},
		{13, 1},
		{-1, 11},
		{-12, 0},
		{-13, 11},
		{25, 1},
	}

	for _, tt := range tests {
		if got := NormalizePitchClass(tt.input); got != tt.want {
			t.Errorf("NormalizePitchClass(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestEnharmonicPairsAgree(t *testing.T) {
	pairs := [][2]string{
		{"C#", "Db"},
		{"D#", "Eb"},
		{"F#", "Gb"},
		{"G#", "Ab"},
		{"A#", "Bb"},
		{"B#", "C"},
		{"Cb", "B"},
		{"E#", "F"},
		{"Fb", "E"},
	}

	for _, p := range pairs {
		a, err := ParseNote(p[0])
		if err != nil {
			t.Fatalf("ParseNote(%q): %v", p[0], err)
		}
		b, err := ParseNote(p[1])
		if err != nil {
			t.Fatalf("ParseNote(%q): %v", p[1], err)
		}
		if a.PitchClass != b.PitchClass {
			t.Errorf("%s (%d) and %s (%d) should share a pitch class", p[0], a.PitchClass, p[1], b.PitchClass)
		}
	}
}

func TestNoteForPitchRoundTrip(t *testing.T) {
	// C4 = 60 is the anchor of the pitch numbering.
	c4 := NoteForPitch(60, true)
	if c4.Label() != "C4" {
		t.Errorf("NoteForPitch(60) = %q, want C4", c4.Label())
	}

	for pitch := 0; pitch <= 120; pitch++ {
		note := NoteForPitch(pitch, true)
		back, ok := note.AbsolutePitch()
		if !ok {
			t.Fatalf("NoteForPitch(%d) returned note without octave", pitch)
		}
		if back != pitch {
			t.Errorf("round trip of pitch %d came back as %d (%s)", pitch, back, note.Label())
		}
	}
}

func TestPitchClassName(t *testing.T) {
	tests := []struct {
		pc           int
		preferSharps bool
		want         string
	}{
		{1, true, "C#"},
		{1, false, "Db"},
		{6, true, "F#"},
		{6, false, "Gb"},
		{10, true, "A#"},
		{10, false, "Bb"},
		{13, true, "C#"},
		{-2, false, "Bb"},
	}

	for _, tt := range tests {
		if got := PitchClassName(tt.pc, tt.preferSharps); got != tt.want {
			t.Errorf("PitchClassName(%d, %v) = %q, want %q", tt.pc, tt.preferSharps, got, tt.want)
		}
	}
}

func TestUniquePitchClasses(t *testing.T) {
	got := UniquePitchClasses([]int{0, 12, 4, 16, 7, -5})
	want := []int{0, 4, 7}
	if len(got) != len(want) {
		t.Fatalf("UniquePitchClasses = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UniquePitchClasses = %v, want %v", got, want)
		}
	}
}

func intPtr(n int) *int { return &n }
