package model

// Muted marks a string that is not played.
const Muted = -1

const NumStrings = 4

type ChordCategory string

const (
	Major      ChordCategory = "major"
	Minor      ChordCategory = "minor"
	Seventh    ChordCategory = "seventh"
	Diminished ChordCategory = "diminished"
	Augmented  ChordCategory = "augmented"
	Suspended  ChordCategory = "suspended"
	Other      ChordCategory = "other"
)

// Fingering is one playable shape. Frets and Fingers are ordered the way the
// tuning lists its strings. A zero BarFret means no barre.
type Fingering struct {
	Frets   [NumStrings]int `json:"frets"`
	Fingers [NumStrings]int `json:"fingers"`
	BarFret int             `json:"bar_fret,omitempty"`
}

type Chord struct {
	Name     string        `json:"name"`
	FullName string        `json:"full_name"`
	Category ChordCategory `json:"category"`

	// canonical fingering
	Fingering

	Voicings []Fingering `json:"voicings,omitempty"`
}
