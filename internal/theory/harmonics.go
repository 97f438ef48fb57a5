package theory

import "math"

// HarmonicPoint is a natural-harmonic location on a string: the (fractional)
// fret it sits over, the harmonic partial sounding there, and the interval in
// semitones above the open string. The set is fixed and tuning-independent.
type HarmonicPoint struct {
	Fret          float64 `json:"fret"`
	Partial       int     `json:"partial"`
	SemitoneShift int     `json:"semitone_shift"`
}

// The audible natural-harmonic nodes, as fret positions. These are empirical:
// the nodes do not fall on exact fret lines (the 5th-partial node is near
// fret 3.9, not 4), so each candidate is matched to the nearest
// simple-fraction node below.
var harmonicCandidates = []float64{3.2, 4, 5, 7, 9, 12, 16, 19, 24}

// Search bounds for the fraction match: string divisions from 1/2 to 11/12.
const (
	minHarmonicDivision = 2
	maxHarmonicDivision = 12
)

// HarmonicPoints is the fixed harmonic-position table, computed once at
// process start and never mutated.
var HarmonicPoints = computeHarmonicPoints()

func computeHarmonicPoints() []HarmonicPoint {
	points := make([]HarmonicPoint, 0, len(harmonicCandidates))
	for _, candidate := range harmonicCandidates {
		points = append(points, nearestHarmonic(candidate))
	}
	return points
}

// nearestHarmonic finds the string fraction k/n whose theoretical fret
// position -12*log2(1 - k/n) lies closest to the candidate fret. The winning
// n is the harmonic's partial; the sounding pitch is round(12*log2(n))
// semitones above the open string.
func nearestHarmonic(candidate float64) HarmonicPoint {
	bestPartial := minHarmonicDivision
	bestDistance := math.Inf(1)

	for n := minHarmonicDivision; n <= maxHarmonicDivision; n++ {
		for k := 1; k < n; k++ {
			fret := -12 * math.Log2(1-float64(k)/float64(n))
			if d := math.Abs(fret - candidate); d < bestDistance {
				bestDistance = d
				bestPartial = n
			}
		}
	}

	return HarmonicPoint{
		Fret:          candidate,
		Partial:       bestPartial,
		SemitoneShift: int(math.Round(12 * math.Log2(float64(bestPartial)))),
	}
}

// HarmonicNotesForString returns the notes sounded by each natural harmonic
// on a string with the given open pitch.
func HarmonicNotesForString(openPitch int, preferSharps bool) []Note {
	notes := make([]Note, 0, len(HarmonicPoints))
	for _, p := range HarmonicPoints {
		notes = append(notes, NoteForPitch(openPitch+p.SemitoneShift, preferSharps))
	}
	return notes
}
