package chord

import (
	"fmt"

	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/util"
)

// AllVoicings lists every fingering of c: the canonical one first, then the
// alternates in the order they are stored.
func AllVoicings(c model.Chord) []model.Fingering {
	res := make([]model.Fingering, 0, len(c.Voicings)+1)
	res = append(res, c.Fingering)
	res = append(res, c.Voicings...)
	return res
}

// ApplyVoicing returns c with its fingering replaced by voicing index (as
// numbered by AllVoicings). An index that no longer exists, e.g. a saved
// preference for a chord that has since lost alternates, leaves c unchanged.
func ApplyVoicing(c model.Chord, index int) model.Chord {
	if index <= 0 || index > len(c.Voicings) {
		return c
	}
	c.Fingering = c.Voicings[index-1]
	return c
}

func NextVoicing(c model.Chord, index int) int {
	return util.Mod(index+1, len(c.Voicings)+1)
}

func PrevVoicing(c model.Chord, index int) int {
	return util.Mod(index-1, len(c.Voicings)+1)
}

// Table is a read-only chord library for one tuning.
type Table struct {
	chords []model.Chord
	byName map[string]int
}

func NewTable(chords []model.Chord) (*Table, error) {
	t := &Table{
		chords: make([]model.Chord, len(chords)),
		byName: make(map[string]int, len(chords)),
	}
	copy(t.chords, chords)
	for i, c := range t.chords {
		if _, ok := t.byName[c.Name]; ok {
			return nil, fmt.Errorf("duplicate chord name %q", c.Name)
		}
		t.byName[c.Name] = i
	}
	return t, nil
}

// Find looks name up exactly as given; "am" does not match "Am".
func (t *Table) Find(name string) (model.Chord, bool) {
	i, ok := t.byName[name]
	if !ok {
		return model.Chord{}, false
	}
	return t.chords[i], true
}

func (t *Table) All() []model.Chord {
	res := make([]model.Chord, len(t.chords))
	copy(res, t.chords)
	return res
}

func (t *Table) ByCategory(cat model.ChordCategory) []model.Chord {
	var res []model.Chord
	for _, c := range t.chords {
		if c.Category == cat {
			res = append(res, c)
		}
	}
	return res
}

func (t *Table) Len() int {
	return len(t.chords)
}
