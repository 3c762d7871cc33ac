package model

type Progression struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Numerals    []Numeral `json:"numerals"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Examples    []string  `json:"examples,omitempty"`
}

// ResolvedChord is one slot of a progression played in a key. Chord is only
// meaningful when Found is true; otherwise Name is shown as plain text.
type ResolvedChord struct {
	Name    string  `json:"name"`
	Numeral Numeral `json:"numeral"`
	Degree  int     `json:"degree"`
	Found   bool    `json:"found"`
	Chord   *Chord  `json:"chord,omitempty"`
}
