package theory

import "strings"

// Mode names for the built-in signatures. LLM-described scales carry their
// free-form label instead.
const (
	ModeMajor = "major"
	ModeMinor = "minor"
)

// KeySignature is a root pitch class plus the scale it generates. For the 24
// built-in keys the scale follows the fixed major/natural-minor interval
// patterns; externally resolved scales supply their tones and degree labels
// directly.
type KeySignature struct {
	Root        int    `json:"root"`
	Label       string `json:"label"`
	Mode        string `json:"mode"`
	Scale       []int  `json:"scale"`
	PreferFlats bool   `json:"prefer_flats"`

	// degrees holds explicit degree labels for externally resolved scales.
	// Built-in keys resolve degrees positionally instead.
	degrees map[int]string
}

var majorIntervals = []int{0, 2, 4, 5, 7, 9, 11}
var minorIntervals = []int{0, 2, 3, 5, 7, 8, 10}

// Root spellings per mode. Keys conventionally spelled flat get flat names so
// the labels read "Eb major" rather than "D# major".
var majorRootNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}
var minorRootNames = [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "G#", "A", "Bb", "B"}

// Flat-side keys per mode: these render their notes with flat spellings.
var majorFlatKeys = map[int]bool{1: true, 3: true, 5: true, 8: true, 10: true}
var minorFlatKeys = map[int]bool{0: true, 2: true, 3: true, 5: true, 7: true, 10: true}

var (
	keySignatures []KeySignature
	keysByLabel   map[string]*KeySignature
)

func init() {
	keySignatures = make([]KeySignature, 0, 24)
	for root := 0; root < 12; root++ {
		keySignatures = append(keySignatures, buildSignature(root, ModeMajor))
	}
	for root := 0; root < 12; root++ {
		keySignatures = append(keySignatures, buildSignature(root, ModeMinor))
	}

	keysByLabel = make(map[string]*KeySignature, len(keySignatures))
	for i := range keySignatures {
		keysByLabel[strings.ToLower(keySignatures[i].Label)] = &keySignatures[i]
	}
}

func buildSignature(root int, mode string) KeySignature {
	intervals := majorIntervals
	rootName := majorRootNames[root]
	preferFlats := majorFlatKeys[root]
	if mode == ModeMinor {
		intervals = minorIntervals
		rootName = minorRootNames[root]
		preferFlats = minorFlatKeys[root]
	}

	scale := make([]int, len(intervals))
	for i, iv := range intervals {
		scale[i] = NormalizePitchClass(root + iv)
	}

	return KeySignature{
		Root:        root,
		Label:       rootName + " " + mode,
		Mode:        mode,
		Scale:       scale,
		PreferFlats: preferFlats,
	}
}

// Keys returns the 24 built-in major/minor signatures.
func Keys() []KeySignature {
	return keySignatures
}

// KeyByLabel looks up a built-in signature by its display label
// (case-insensitive, e.g. "Eb major", "c minor").
func KeyByLabel(label string) (*KeySignature, bool) {
	k, ok := keysByLabel[strings.ToLower(strings.TrimSpace(label))]
	return k, ok
}

// ToneDegree pairs a tone with its degree label, as supplied by the external
// resolution service.
type ToneDegree struct {
	Note   Note
	Degree string
}

// BuildDegreeMap builds a pitch-class to degree-label map from a tone list.
// The first label seen for a pitch class wins; the root's entry is then
// unconditionally forced to "1".
func BuildDegreeMap(rootPC int, tones []ToneDegree) map[int]string {
	degrees := make(map[int]string, len(tones))
	for _, t := range tones {
		pc := NormalizePitchClass(t.Note.PitchClass)
		if _, ok := degrees[pc]; !ok {
			degrees[pc] = t.Degree
		}
	}
	degrees[NormalizePitchClass(rootPC)] = "1"
	return degrees
}

// ScaleFromTones builds a KeySignature for an externally described scale.
// The root is always a member of the resulting scale even when the supplied
// tone list omits it.
func ScaleFromTones(label string, root Note, tones []ToneDegree) *KeySignature {
	rootPC := NormalizePitchClass(root.PitchClass)

	pcs := make([]int, 0, len(tones)+1)
	pcs = append(pcs, rootPC)
	for _, t := range tones {
		pcs = append(pcs, t.Note.PitchClass)
	}

	return &KeySignature{
		Root:        rootPC,
		Label:       label,
		Mode:        label,
		Scale:       UniquePitchClasses(pcs),
		PreferFlats: strings.ContainsRune(root.Name, 'b'),
		degrees:     BuildDegreeMap(rootPC, tones),
	}
}

// Contains reports whether a pitch class belongs to the scale.
func (k *KeySignature) Contains(pc int) bool {
	if k == nil {
		return false
	}
	pc = NormalizePitchClass(pc)
	for _, member := range k.Scale {
		if member == pc {
			return true
		}
	}
	return false
}

// IsRoot reports whether a pitch class is the key's root.
func (k *KeySignature) IsRoot(pc int) bool {
	return k != nil && NormalizePitchClass(pc) == k.Root
}

// DegreeOf returns the degree label for a pitch class: the explicit degree
// map when the scale came from the resolution service, otherwise the 1-based
// position within the scale.
func (k *KeySignature) DegreeOf(pc int) (string, bool) {
	if k == nil {
		return "", false
	}
	pc = NormalizePitchClass(pc)
	if k.degrees != nil {
		d, ok := k.degrees[pc]
		return d, ok
	}
	for i, member := range k.Scale {
		if member == pc {
			return scaleDegreeNames[i%len(scaleDegreeNames)], true
		}
	}
	return "", false
}

var scaleDegreeNames = [7]string{"1", "2", "3", "4", "5", "6", "7"}
