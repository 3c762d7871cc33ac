package progression

import (
	"math/rand"

	"github.com/jsphweid/ukulala/chord"
	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/music"
	"golang.org/x/exp/slices"
)

// Resolve plays numerals in key against one tuning's chord table, applying
// the preferred voicing of every chord the table has. Chords missing from the
// table come back with Found unset.
func Resolve(key model.Key, numerals []model.Numeral, table *chord.Table, prefs model.VoicingPrefs) ([]model.ResolvedChord, error) {
	names, err := music.ResolveProgression(key, numerals)
	if err != nil {
		return nil, err
	}

	res := make([]model.ResolvedChord, 0, len(names))
	for i, name := range names {
		degree, err := music.NumeralDegree(numerals[i])
		if err != nil {
			return nil, err
		}
		rc := model.ResolvedChord{Name: name, Numeral: numerals[i], Degree: degree}
		if c, ok := table.Find(name); ok {
			applied := chord.ApplyVoicing(c, prefs.Index(name))
			rc.Found = true
			rc.Chord = &applied
		}
		res = append(res, rc)
	}
	return res, nil
}

// Diatonic is the seven triads of key.
func Diatonic(key model.Key, table *chord.Table, prefs model.VoicingPrefs) ([]model.ResolvedChord, error) {
	return Resolve(key, music.DiatonicNumerals, table, prefs)
}

// Genres lists each genre once, in catalog order.
func Genres(ps []model.Progression) []string {
	var res []string
	for _, p := range ps {
		if !slices.Contains(res, p.Genre) {
			res = append(res, p.Genre)
		}
	}
	return res
}

func FilterByGenre(ps []model.Progression, genre string) []model.Progression {
	if genre == "" {
		return ps
	}
	var res []model.Progression
	for _, p := range ps {
		if p.Genre == genre {
			res = append(res, p)
		}
	}
	return res
}

func FindByID(ps []model.Progression, id string) (model.Progression, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return model.Progression{}, false
}

// Starred keeps the progressions whose id is in ids, in catalog order.
func Starred(ps []model.Progression, ids []string) []model.Progression {
	var res []model.Progression
	for _, p := range ps {
		if slices.Contains(ids, p.ID) {
			res = append(res, p)
		}
	}
	return res
}

func Pick(rng *rand.Rand, ps []model.Progression) model.Progression {
	return ps[rng.Intn(len(ps))]
}

// PickKey returns a random key other than except.
func PickKey(rng *rand.Rand, except model.Key) model.Key {
	for {
		k := music.AllKeys[rng.Intn(len(music.AllKeys))]
		if k != except {
			return k
		}
	}
}
