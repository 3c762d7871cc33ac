package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type ResolveRequestBody struct {
	Key      Key       `json:"key"`
	Numerals []Numeral `json:"numerals"`
}

type ResolveResponse struct {
	Chords  []string `json:"chords"`
	Degrees []int    `json:"degrees"`
}

type NumeralInfo struct {
	Numeral Numeral `json:"numeral"`
	Degree  int     `json:"degree"`
}

type ProgressionResponse struct {
	Progression Progression     `json:"progression"`
	Key         Key             `json:"key"`
	Tuning      Tuning          `json:"tuning"`
	Chords      []ResolvedChord `json:"chords"`
}

type KeyChordsResponse struct {
	Key    Key             `json:"key"`
	Tuning Tuning          `json:"tuning"`
	Chords []ResolvedChord `json:"chords"`
}

type ChordResponse struct {
	Chord     Chord       `json:"chord"`
	Voicings  []Fingering `json:"voicings"`
	Preferred int         `json:"preferred"`
	Applied   Chord       `json:"applied"`
}

type VoicingPrefRequestBody struct {
	Index int `json:"index"`
}

type TuningRequestBody struct {
	Tuning Tuning `json:"tuning"`
}

type TuningResponse struct {
	Tuning Tuning `json:"tuning"`
	Chosen bool   `json:"chosen"`
	Label  string `json:"label"`
	Hint   string `json:"hint"`
}

type StarResponse struct {
	ID      string   `json:"id"`
	Starred bool     `json:"starred"`
	All     []string `json:"all"`
}

type ProgressionsResponse struct {
	Genres       []string      `json:"genres"`
	Progressions []Progression `json:"progressions"`
}

type ChordsResponse struct {
	Tuning Tuning  `json:"tuning"`
	Chords []Chord `json:"chords"`
}
