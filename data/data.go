// Package data holds the reference tables shipped with the binary: chord
// fingerings for each tuning and the progression catalog.
package data

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/jsphweid/ukulala/chord"
	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/music"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid reference data")

//go:embed standard.yaml
var standardYAML []byte

//go:embed baritone.yaml
var baritoneYAML []byte

//go:embed progressions.yaml
var progressionsYAML []byte

const maxFinger = 4

type rawFingering struct {
	Frets   []int `yaml:"frets"`
	Fingers []int `yaml:"fingers"`
	BarFret int   `yaml:"barFret"`
}

type rawChord struct {
	Name         string `yaml:"name"`
	FullName     string `yaml:"fullName"`
	Category     string `yaml:"category"`
	rawFingering `yaml:",inline"`
	Voicings     []rawFingering `yaml:"voicings"`
}

type rawProgression struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Numerals    []string `yaml:"numerals"`
	Genre       string   `yaml:"genre"`
	Description string   `yaml:"description"`
	Examples    []string `yaml:"examples"`
}

type tableResult struct {
	once  sync.Once
	table *chord.Table
	err   error
}

var tables = map[model.Tuning]*tableResult{
	model.Standard: {},
	model.Baritone: {},
}

var progs struct {
	once sync.Once
	list []model.Progression
	err  error
}

func source(t model.Tuning) ([]byte, error) {
	switch t {
	case model.Standard:
		return standardYAML, nil
	case model.Baritone:
		return baritoneYAML, nil
	}
	return nil, fmt.Errorf("no chord table for tuning %q", t)
}

// Chords returns the chord table for tuning. The table is decoded once and
// shared by every caller.
func Chords(t model.Tuning) (*chord.Table, error) {
	src, err := source(t)
	if err != nil {
		return nil, err
	}
	res := tables[t]
	res.once.Do(func() {
		res.table, res.err = ParseChords(src)
		if res.err != nil {
			res.err = fmt.Errorf("%s chords: %w", t, res.err)
		}
	})
	return res.table, res.err
}

// Tables loads the chord table of every tuning.
func Tables() (map[model.Tuning]*chord.Table, error) {
	res := make(map[model.Tuning]*chord.Table, len(model.Tunings))
	for _, t := range model.Tunings {
		table, err := Chords(t)
		if err != nil {
			return nil, err
		}
		res[t] = table
	}
	return res, nil
}

func Progressions() ([]model.Progression, error) {
	progs.once.Do(func() {
		progs.list, progs.err = ParseProgressions(progressionsYAML)
	})
	if progs.err != nil {
		return nil, progs.err
	}
	res := make([]model.Progression, len(progs.list))
	copy(res, progs.list)
	return res, nil
}

func toFingering(raw rawFingering) (model.Fingering, error) {
	var f model.Fingering
	if len(raw.Frets) != model.NumStrings || len(raw.Fingers) != model.NumStrings {
		return f, fmt.Errorf("%w: want %d frets and fingers, got %d and %d",
			ErrInvalid, model.NumStrings, len(raw.Frets), len(raw.Fingers))
	}
	for i := 0; i < model.NumStrings; i++ {
		if raw.Frets[i] < model.Muted {
			return f, fmt.Errorf("%w: fret %d on string %d", ErrInvalid, raw.Frets[i], i+1)
		}
		if raw.Fingers[i] < 0 || raw.Fingers[i] > maxFinger {
			return f, fmt.Errorf("%w: finger %d on string %d", ErrInvalid, raw.Fingers[i], i+1)
		}
		f.Frets[i] = raw.Frets[i]
		f.Fingers[i] = raw.Fingers[i]
	}
	if raw.BarFret < 0 {
		return f, fmt.Errorf("%w: barre fret %d", ErrInvalid, raw.BarFret)
	}
	f.BarFret = raw.BarFret
	return f, nil
}

func ParseChords(src []byte) (*chord.Table, error) {
	var raws []rawChord
	if err := yaml.Unmarshal(src, &raws); err != nil {
		return nil, fmt.Errorf("error decoding chords: %w", err)
	}

	chords := make([]model.Chord, 0, len(raws))
	for _, raw := range raws {
		if raw.Name == "" {
			return nil, fmt.Errorf("%w: chord without a name", ErrInvalid)
		}
		cat, err := chord.ParseCategory(raw.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: chord %q: %v", ErrInvalid, raw.Name, err)
		}
		canonical, err := toFingering(raw.rawFingering)
		if err != nil {
			return nil, fmt.Errorf("chord %q: %w", raw.Name, err)
		}
		c := model.Chord{
			Name:      raw.Name,
			FullName:  raw.FullName,
			Category:  cat,
			Fingering: canonical,
		}
		for i, v := range raw.Voicings {
			f, err := toFingering(v)
			if err != nil {
				return nil, fmt.Errorf("chord %q voicing %d: %w", raw.Name, i+1, err)
			}
			c.Voicings = append(c.Voicings, f)
		}
		chords = append(chords, c)
	}

	table, err := chord.NewTable(chords)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return table, nil
}

func ParseProgressions(src []byte) ([]model.Progression, error) {
	var raws []rawProgression
	if err := yaml.Unmarshal(src, &raws); err != nil {
		return nil, fmt.Errorf("error decoding progressions: %w", err)
	}

	seen := make(map[string]bool, len(raws))
	res := make([]model.Progression, 0, len(raws))
	for _, raw := range raws {
		if raw.ID == "" || seen[raw.ID] {
			return nil, fmt.Errorf("%w: missing or duplicate progression id %q", ErrInvalid, raw.ID)
		}
		seen[raw.ID] = true

		numerals, err := music.ParseNumerals(raw.Numerals)
		if err != nil {
			return nil, fmt.Errorf("%w: progression %q: %v", ErrInvalid, raw.ID, err)
		}
		res = append(res, model.Progression{
			ID:          raw.ID,
			Name:        raw.Name,
			Numerals:    numerals,
			Genre:       raw.Genre,
			Description: raw.Description,
			Examples:    raw.Examples,
		})
	}
	return res, nil
}
