// Package music turns roman-numeral chord functions into chord names.
//
// Spelling is fixed: every semitone has exactly one label in AllKeys, so a
// numeral always resolves to the same name in a given key no matter how the
// key would conventionally be spelled.
package music

import (
	"errors"
	"fmt"

	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/util"
)

var (
	ErrUnknownKey     = errors.New("unknown key")
	ErrUnknownNumeral = errors.New("unknown numeral")
)

// AllKeys is indexed by semitone distance from C.
var AllKeys = [12]model.Key{
	"C", "Db", "D", "Eb", "E", "F",
	"F#", "G", "Ab", "A", "Bb", "B",
}

type numeralInfo struct {
	semitones int
	suffix    string
	degree    int
}

// order matters for Numerals()
var numeralOrder = []model.Numeral{
	"I", "ii", "iii", "IV", "V", "vi", "vii°",
	"I7", "ii7", "IV7", "V7", "vi7",
}

var numeralTable = map[model.Numeral]numeralInfo{
	"I":    {0, "", 1},
	"ii":   {2, "m", 2},
	"iii":  {4, "m", 3},
	"IV":   {5, "", 4},
	"V":    {7, "", 5},
	"vi":   {9, "m", 6},
	"vii°": {11, "dim", 7},
	"I7":   {0, "7", 1},
	"ii7":  {2, "m7", 2},
	"IV7":  {5, "7", 4},
	"V7":   {7, "7", 5},
	"vi7":  {9, "m7", 6},
}

var DiatonicNumerals = []model.Numeral{"I", "ii", "iii", "IV", "V", "vi", "vii°"}

// Numerals returns every supported numeral, triads first.
func Numerals() []model.Numeral {
	res := make([]model.Numeral, len(numeralOrder))
	copy(res, numeralOrder)
	return res
}

func keyIndex(key model.Key) (int, error) {
	for i, k := range AllKeys {
		if k == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

func lookup(numeral model.Numeral) (numeralInfo, error) {
	info, ok := numeralTable[numeral]
	if !ok {
		return info, fmt.Errorf("%w: %q", ErrUnknownNumeral, numeral)
	}
	return info, nil
}

// Transpose moves key by semitones, wrapping around the octave.
func Transpose(key model.Key, semitones int) (model.Key, error) {
	i, err := keyIndex(key)
	if err != nil {
		return "", err
	}
	return AllKeys[util.Mod(i+semitones, 12)], nil
}

// ResolveNumeral names the chord numeral stands for in key,
// e.g. ("G", "vi") => "Em".
func ResolveNumeral(key model.Key, numeral model.Numeral) (string, error) {
	info, err := lookup(numeral)
	if err != nil {
		return "", err
	}
	root, err := Transpose(key, info.semitones)
	if err != nil {
		return "", err
	}
	return string(root) + info.suffix, nil
}

// ResolveProgression resolves each numeral in order. The first invalid numeral
// aborts the whole progression.
func ResolveProgression(key model.Key, numerals []model.Numeral) ([]string, error) {
	if _, err := keyIndex(key); err != nil {
		return nil, err
	}
	res := make([]string, 0, len(numerals))
	for i, n := range numerals {
		name, err := ResolveNumeral(key, n)
		if err != nil {
			return nil, fmt.Errorf("chord %d of progression: %w", i+1, err)
		}
		res = append(res, name)
	}
	return res, nil
}

// NumeralDegree is the scale degree (1-7) of numeral, ignoring its suffix.
func NumeralDegree(numeral model.Numeral) (int, error) {
	info, err := lookup(numeral)
	if err != nil {
		return 0, err
	}
	return info.degree, nil
}

func ParseKey(s string) (model.Key, error) {
	key := model.Key(s)
	if _, err := keyIndex(key); err != nil {
		return "", err
	}
	return key, nil
}

// KeyOr returns s as a key, or fallback when s is not one of AllKeys.
func KeyOr(s string, fallback model.Key) model.Key {
	key, err := ParseKey(s)
	if err != nil {
		return fallback
	}
	return key
}

// ParseNumeral accepts "viio" as a typeable spelling of "vii°".
func ParseNumeral(s string) (model.Numeral, error) {
	if s == "viio" {
		s = "vii°"
	}
	n := model.Numeral(s)
	if _, err := lookup(n); err != nil {
		return "", err
	}
	return n, nil
}

func ParseNumerals(ss []string) ([]model.Numeral, error) {
	res := make([]model.Numeral, 0, len(ss))
	for _, s := range ss {
		n, err := ParseNumeral(s)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}
